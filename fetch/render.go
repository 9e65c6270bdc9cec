package fetch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// RenderOptions configures the headless-browser renderer.
type RenderOptions struct {
	UserAgent string
	// Timeout bounds the whole render, navigation included.
	Timeout time.Duration
	// ScrollPasses is the maximum number of scroll-to-bottom passes used
	// to force lazy sections to load.
	ScrollPasses int
	// ExpandPasses is how many times the accordion expansion runs, to
	// catch sections that load late.
	ExpandPasses int
	// MinPitchTables is the pitch-table count treated as "page is ready";
	// polling stops early once reached.
	MinPitchTables int
	// PollAttempts bounds the readiness polling after expansion.
	PollAttempts int
	// SavePath, when set, also writes the rendered document to this file.
	SavePath string
}

// DefaultRenderOptions returns the defaults tuned for the live feed.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		UserAgent:      DefaultUserAgent,
		Timeout:        90 * time.Second,
		ScrollPasses:   8,
		ExpandPasses:   3,
		MinPitchTables: 20,
		PollAttempts:   10,
	}
}

// accordion selectors mirrored into the page's own query language.
const (
	headerQuery     = `button.AtBatAccordion__header, .AtBatAccordion > button`
	pitchTableQuery = `div.Collapse.AtBatAccordion__body .PitchTable`
)

// Renderer fetches a URL through a headless browser, expanding every play
// accordion so the returned document contains all pitch tables.
type Renderer struct {
	opts RenderOptions
}

// NewRenderer creates a renderer with default options.
func NewRenderer() *Renderer {
	return NewRendererWithOptions(DefaultRenderOptions())
}

// NewRendererWithOptions creates a renderer with custom options.
func NewRendererWithOptions(opts RenderOptions) *Renderer {
	defaults := DefaultRenderOptions()
	if opts.UserAgent == "" {
		opts.UserAgent = defaults.UserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaults.Timeout
	}
	if opts.ScrollPasses <= 0 {
		opts.ScrollPasses = defaults.ScrollPasses
	}
	if opts.ExpandPasses <= 0 {
		opts.ExpandPasses = defaults.ExpandPasses
	}
	if opts.PollAttempts <= 0 {
		opts.PollAttempts = defaults.PollAttempts
	}
	return &Renderer{opts: opts}
}

// Render navigates to the URL, expands all at-bat accordions, and returns
// the fully-expanded document markup.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.UserAgent(r.opts.UserAgent),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, r.opts.Timeout)
	defer cancelRun()

	var rendered string
	err := chromedp.Run(runCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{
			"Accept-Language": "en-US,en;q=0.9",
		}),
		chromedp.Navigate(url),
		chromedp.ActionFunc(r.scrollToBottom),
		chromedp.ActionFunc(r.expandAccordions),
		chromedp.ActionFunc(r.awaitPitchTables),
		chromedp.ActionFunc(func(ctx context.Context) error {
			root, err := dom.GetDocument().Do(ctx)
			if err != nil {
				return err
			}
			rendered, err = dom.GetOuterHTML().WithNodeID(root.NodeID).Do(ctx)
			return err
		}),
	)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", url, err)
	}

	if r.opts.SavePath != "" {
		if err := os.WriteFile(r.opts.SavePath, []byte(rendered), 0o644); err != nil {
			return "", fmt.Errorf("saving rendered document: %w", err)
		}
	}

	return rendered, nil
}

// scrollToBottom scrolls in passes until the page height stops growing,
// forcing lazy sections to load.
func (r *Renderer) scrollToBottom(ctx context.Context) error {
	lastHeight := -1
	for i := 0; i < r.opts.ScrollPasses; i++ {
		if err := chromedp.Evaluate(`window.scrollBy(0, document.body.scrollHeight); document.body.scrollHeight`, &lastHeight).Do(ctx); err != nil {
			return err
		}
		if err := sleepCtx(ctx, 600*time.Millisecond); err != nil {
			return err
		}
		var height int
		if err := chromedp.Evaluate(`document.body.scrollHeight`, &height).Do(ctx); err != nil {
			return err
		}
		if height == lastHeight {
			break
		}
		lastHeight = height
	}
	return nil
}

// expandAccordions clicks every collapsed accordion header, in multiple
// passes to catch late-loading chunks.
func (r *Renderer) expandAccordions(ctx context.Context) error {
	script := fmt.Sprintf(
		`document.querySelectorAll(%q).forEach(function(btn) {
			if (btn.getAttribute("aria-expanded") !== "true") { btn.click(); }
		}); true`, headerQuery)

	for i := 0; i < r.opts.ExpandPasses; i++ {
		var ok bool
		if err := chromedp.Evaluate(script, &ok).Do(ctx); err != nil {
			return err
		}
		if err := sleepCtx(ctx, 300*time.Millisecond); err != nil {
			return err
		}
	}
	return nil
}

// awaitPitchTables polls until enough pitch tables are present, so slower
// connections are not raced. Best effort; running out of attempts is not
// an error.
func (r *Renderer) awaitPitchTables(ctx context.Context) error {
	script := fmt.Sprintf(`document.querySelectorAll(%q).length`, pitchTableQuery)

	for i := 0; i < r.opts.PollAttempts; i++ {
		var count int
		if err := chromedp.Evaluate(script, &count).Do(ctx); err != nil {
			return err
		}
		if count >= r.opts.MinPitchTables {
			return nil
		}
		if err := sleepCtx(ctx, 300*time.Millisecond); err != nil {
			return err
		}
	}
	return nil
}
