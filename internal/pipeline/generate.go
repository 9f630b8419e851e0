// Package pipeline orchestrates document generation: normalization, default
// merging, section composition, layout assembly, and PDF rendering.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-studio/internal/coverletter"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/layout"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/session"
	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

// RenderFailedError reports a render that failed even after the session was
// replaced and retried.
type RenderFailedError struct {
	Cause error
}

func (e *RenderFailedError) Error() string {
	return fmt.Sprintf("render failed after retry: %v", e.Cause)
}

func (e *RenderFailedError) Unwrap() error {
	return e.Cause
}

// ProgressFunc receives stage names as generation advances. Used by the CLI
// for verbose output; nil disables reporting.
type ProgressFunc func(stage string)

// Request is one document generation job.
type Request struct {
	// Data is the raw decoded resume payload.
	Data map[string]any
	// Template selects the resume template; empty uses the default.
	Template     string
	CustomColors map[string]string
	// Country selects the physical page size ("us" prints Letter).
	Country string
	// CoverLetter, when non-nil, prepends a cover letter page.
	CoverLetter         *types.CoverLetterData
	CoverLetterTemplate string
}

func (r *Request) wantsCoverLetter() bool {
	return r.CoverLetter != nil || r.CoverLetterTemplate != ""
}

// Result is a finished generation.
type Result struct {
	RenderID uuid.UUID
	PDF      []byte
	HTML     string
	Template string
	Duration time.Duration
}

// Generator wires the composition stages to the rendering session and the
// optional history store.
type Generator struct {
	Sessions *session.Manager
	History  *db.History
	Progress ProgressFunc
}

func (g *Generator) report(stage string) {
	if g.Progress != nil {
		g.Progress(stage)
	}
}

// resolveTemplate returns the template for a request. An empty id falls back
// to the default; an unknown one surfaces ErrTemplateNotFound.
func resolveTemplate(id string) (*templates.TemplateConfig, error) {
	if strings.TrimSpace(id) == "" {
		return templates.Default(), nil
	}
	return templates.Get(id)
}

// mergeDefaults fills fields the normalized data leaves empty from the
// template's default data. Caller data always wins; defaults never overwrite.
func mergeDefaults(data types.ResumeData, defaults *types.ResumeData) types.ResumeData {
	if defaults == nil {
		return data
	}
	if data.Summary == "" {
		data.Summary = defaults.Summary
	}
	if data.Personal.JobTitle == "" {
		data.Personal.JobTitle = defaults.Personal.JobTitle
	}
	if len(data.Skills) == 0 && len(defaults.Skills) > 0 {
		data.Skills = append([]string(nil), defaults.Skills...)
	}
	if len(data.Experience) == 0 && len(defaults.Experience) > 0 {
		data.Experience = append([]types.Entry(nil), defaults.Experience...)
	}
	if len(data.Education) == 0 && len(defaults.Education) > 0 {
		data.Education = append([]types.Entry(nil), defaults.Education...)
	}
	if len(data.Achievements) == 0 && len(defaults.Achievements) > 0 {
		data.Achievements = append([]string(nil), defaults.Achievements...)
	}
	return data
}

// ComposeHTML runs every stage up to, but not including, PDF rendering.
// Useful for previews and debugging.
func (g *Generator) ComposeHTML(req Request) (string, error) {
	cfg, err := resolveTemplate(req.Template)
	if err != nil {
		return "", err
	}
	g.report("normalize")
	data := normalize.Normalize(req.Data)
	data = mergeDefaults(data, &cfg.DefaultData)

	in := layout.Input{
		Data:    &data,
		Config:  cfg,
		Styles:  cfg.Styles.WithColors(req.CustomColors),
		Country: req.Country,
	}

	// The cover letter and resume pages are independent; compose them
	// concurrently and stitch afterwards.
	var coverPage, resumePage string
	eg := new(errgroup.Group)
	if req.wantsCoverLetter() {
		eg.Go(func() error {
			var err error
			coverPage, err = coverletter.Compose(req.CoverLetter, &data, req.CoverLetterTemplate)
			return err
		})
	}
	eg.Go(func() error {
		var err error
		g.report("compose")
		resumePage, err = layout.Page(in)
		return err
	})
	if err := eg.Wait(); err != nil {
		return "", err
	}

	g.report("assemble")
	return layout.Document(in, coverPage, resumePage)
}

// GeneratePDF composes the document and renders it to PDF bytes. A session
// fault is retried once on a fresh session; the second failure surfaces as
// RenderFailedError.
func (g *Generator) GeneratePDF(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	html, err := g.ComposeHTML(req)
	if err != nil {
		return nil, err
	}

	g.report("render")
	opts := session.RenderOptions{PageSize: layout.PageSize(req.Country)}
	pdf, err := g.Sessions.RenderPDF(ctx, html, opts)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		// The manager discarded the faulted session; a fresh one serves the
		// retry transparently.
		log.Printf("[PIPELINE] render failed, retrying on fresh session: %v", err)
		pdf, err = g.Sessions.RenderPDF(ctx, html, opts)
		if err != nil {
			return nil, &RenderFailedError{Cause: err}
		}
	}

	result := &Result{
		RenderID: uuid.New(),
		PDF:      pdf,
		HTML:     html,
		Template: templateLabel(req.Template),
		Duration: time.Since(start),
	}
	g.record(ctx, req, result)
	return result, nil
}

func templateLabel(id string) string {
	if strings.TrimSpace(id) == "" {
		return templates.DefaultKey
	}
	return strings.ToLower(strings.TrimSpace(id))
}

// record stores the render in history. History failures are logged and never
// fail the render.
func (g *Generator) record(ctx context.Context, req Request, res *Result) {
	if g.History == nil {
		return
	}
	err := g.History.RecordRender(ctx, db.RenderRecord{
		ID:          res.RenderID,
		Template:    res.Template,
		CoverLetter: req.wantsCoverLetter(),
		Country:     req.Country,
		Bytes:       len(res.PDF),
		Duration:    res.Duration,
	})
	if err != nil {
		log.Printf("[PIPELINE] failed to record render %s: %v", res.RenderID, err)
	}
}
