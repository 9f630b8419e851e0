// Package session manages the long-lived headless browser used for PDF
// rendering: launch, health probing, reuse across requests, and replacement
// after crashes or timeouts.
package session

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// RenderOptions control the physical page for one render.
type RenderOptions struct {
	// PageSize is "Letter" or "A4".
	PageSize string
}

// paper dimensions in inches.
const (
	letterWidth  = 8.5
	letterHeight = 11.0
	a4Width      = 8.27
	a4Height     = 11.69
)

func (o RenderOptions) paper() (width, height float64) {
	if o.PageSize == "Letter" {
		return letterWidth, letterHeight
	}
	return a4Width, a4Height
}

// Engine is one rendering session. Start and Stop are serialized by Manager;
// RenderPDF and Healthy may be called concurrently; each render runs in its
// own tab.
type Engine interface {
	// Start launches the session. Must be called before any render.
	Start(ctx context.Context) error
	// Healthy probes whether the session can still serve renders.
	Healthy(ctx context.Context) bool
	// RenderPDF renders a self-contained HTML document to PDF bytes.
	RenderPDF(ctx context.Context, html string, opts RenderOptions) ([]byte, error)
	// Stop tears the session down. Safe to call more than once.
	Stop()
}

// chromeEngine drives a headless Chrome via chromedp. The browser process is
// launched once and kept warm; each render runs in a fresh tab.
type chromeEngine struct {
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// NewChromeEngine returns an unstarted Chrome-backed engine. CHROME_PATH
// overrides the binary discovery when set.
func NewChromeEngine() Engine {
	return &chromeEngine{}
}

func (e *chromeEngine) Start(ctx context.Context) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	// The allocator and browser contexts must outlive the Start call, so
	// they hang off Background rather than the request context.
	e.allocCtx, e.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	e.browserCtx, e.browserCancel = chromedp.NewContext(e.allocCtx)

	// Run an empty navigation to force the browser process to launch now,
	// bounded by the caller's context.
	startCtx, cancel := context.WithTimeout(e.browserCtx, startupBudget(ctx))
	defer cancel()
	if err := chromedp.Run(startCtx, chromedp.Navigate("about:blank")); err != nil {
		e.Stop()
		return &SessionError{Op: "start browser", Cause: err}
	}
	log.Printf("[SESSION] browser session started")
	return nil
}

// startupBudget bounds browser launch by the request deadline, capped at a
// sane maximum.
func startupBudget(ctx context.Context) time.Duration {
	const max = 60 * time.Second
	deadline, ok := ctx.Deadline()
	if !ok {
		return max
	}
	if remaining := time.Until(deadline); remaining < max {
		return remaining
	}
	return max
}

func (e *chromeEngine) Healthy(ctx context.Context) bool {
	if e.browserCtx == nil || e.browserCtx.Err() != nil {
		return false
	}
	// Probe with a trivial evaluation in a short-lived tab. A dead browser
	// process fails here rather than mid-render.
	tab, cancel := chromedp.NewContext(e.browserCtx)
	defer cancel()
	probeCtx, probeCancel := context.WithTimeout(tab, 5*time.Second)
	defer probeCancel()

	var one int
	if err := chromedp.Run(probeCtx, chromedp.Evaluate("1", &one)); err != nil {
		return false
	}
	return one == 1
}

func (e *chromeEngine) RenderPDF(ctx context.Context, html string, opts RenderOptions) ([]byte, error) {
	if e.browserCtx == nil {
		return nil, &SessionError{Op: "render", Cause: context.Canceled}
	}
	tab, cancel := chromedp.NewContext(e.browserCtx)
	defer cancel()

	// Honor the caller's deadline inside the tab.
	renderCtx, renderCancel := context.WithCancel(tab)
	defer renderCancel()
	if deadline, ok := ctx.Deadline(); ok {
		renderCtx, renderCancel = context.WithDeadline(tab, deadline)
		defer renderCancel()
	}

	width, height := opts.paper()
	var pdf []byte
	var fontsReady bool
	err := chromedp.Run(renderCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		// Web fonts must finish loading or text measures wrong in the PDF.
		chromedp.Poll(`document.fonts.status === "loaded"`, &fontsReady, chromedp.WithPollingTimeout(10*time.Second)),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &SessionError{Op: "render pdf", Cause: err}
	}
	if len(pdf) == 0 {
		return nil, &SessionError{Op: "render pdf produced no bytes"}
	}
	return pdf, nil
}

func (e *chromeEngine) Stop() {
	if e.browserCancel != nil {
		e.browserCancel()
		e.browserCancel = nil
	}
	if e.allocCancel != nil {
		e.allocCancel()
		e.allocCancel = nil
	}
	e.browserCtx = nil
	e.allocCtx = nil
}
