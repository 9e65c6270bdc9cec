// Package fetch acquires play-by-play documents for the extraction
// engine.
//
// Three source kinds are accepted: an HTTP(S) URL, a local file path, or
// an already-in-memory markup string. [Client] retrieves URLs politely
// (browser-like headers, bounded retries) and reads files directly.
//
// The feed lazy-loads its pitch tables, so a plain GET usually returns
// collapsed accordions with no pitch data. [Renderer] drives a headless
// browser instead: it scrolls the page to force section loads, clicks
// every unexpanded accordion, waits for the pitch tables to materialize,
// and returns the fully-expanded document. The engine itself never
// fetches; it accepts whatever document this package hands it.
package fetch
