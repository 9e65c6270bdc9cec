// Package pbpdoc provides read-only access to a play-by-play HTML document.
//
// The feed offers no schema: plays are accordion widgets identified by CSS
// class conventions, with an expandable body holding the pitch table. A
// [Reader] parses the document once, resolves the competing team names from
// page metadata, and discovers every play container in document order. It
// never mutates or re-serializes the input.
//
// The CSS class conventions are carried as an immutable [Selectors] value
// so callers can adapt to markup revisions without forking the reader.
package pbpdoc
