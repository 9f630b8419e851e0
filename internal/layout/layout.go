// Package layout assembles composed resume sections into a complete printable
// HTML document: section ordering, sidebar/main partitioning, header variant,
// page CSS, and font loading.
package layout

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/compose"
	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

// AssembleError wraps failures while building the final document.
type AssembleError struct {
	Message string
	Cause   error
}

func (e *AssembleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("layout: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("layout: %s", e.Message)
}

func (e *AssembleError) Unwrap() error {
	return e.Cause
}

// Input carries everything Assemble needs for one document.
type Input struct {
	Data   *types.ResumeData
	Config *templates.TemplateConfig
	// Styles overrides Config.Styles when non-nil (per-request color overlay).
	Styles *templates.Styles
	// Country selects the physical page size: "us" prints Letter, anything
	// else A4.
	Country string
	// Prefix is prepended to the body ahead of the resume page, used for the
	// cover letter page.
	Prefix string
}

func (in *Input) styles() *templates.Styles {
	if in.Styles != nil {
		return in.Styles
	}
	return &in.Config.Styles
}

// PageSize returns the @page size keyword for a country code.
func PageSize(country string) string {
	if strings.EqualFold(country, "us") {
		return "Letter"
	}
	return "A4"
}

// EffectiveOrder merges the template's section order with whatever keys the
// data actually carries: ordered keys first, then data-present keys the
// template never mentioned, in canonical order. Keys the header already
// renders are removed.
func EffectiveOrder(data *types.ResumeData, lay *templates.Layout) []string {
	seen := make(map[string]bool, len(lay.SectionsOrder))
	order := make([]string, 0, len(lay.SectionsOrder)+2)
	for _, key := range lay.SectionsOrder {
		if seen[key] {
			continue
		}
		seen[key] = true
		order = append(order, key)
	}
	for _, key := range types.SectionKeys() {
		if !seen[key] && data.SectionPresent(key) {
			seen[key] = true
			order = append(order, key)
		}
	}
	if !lay.HasHeader() {
		return order
	}
	filtered := order[:0]
	for _, key := range order {
		if key == "personal" || key == "personal.photo" {
			continue
		}
		filtered = append(filtered, key)
	}
	return filtered
}

// Assemble renders the full document for one resume: the optional Prefix
// page, the resume page, and the shell around them.
func Assemble(in Input) (string, error) {
	page, err := Page(in)
	if err != nil {
		return "", err
	}
	return Document(in, in.Prefix, page)
}

// Page renders just the resume page div: header, section ordering, and the
// sidebar/main split. The result still needs the Document shell around it.
func Page(in Input) (string, error) {
	if in.Data == nil {
		return "", &AssembleError{Message: "no resume data"}
	}
	if in.Config == nil {
		return "", &AssembleError{Message: "no template config"}
	}
	st := in.styles()
	lay := &in.Config.Layout

	sidebarSet := make(map[string]bool, len(lay.SidebarSections))
	for _, key := range lay.SidebarSections {
		sidebarSet[key] = true
	}

	var main, sidebar []types.RenderedSection
	for _, key := range EffectiveOrder(in.Data, lay) {
		sec := compose.Section(key, in.Data, st, lay)
		if sec.Empty {
			continue
		}
		if lay.Columns == 2 && sidebarSet[key] {
			sidebar = append(sidebar, sec)
		} else {
			main = append(main, sec)
		}
	}

	var body strings.Builder
	body.WriteString(`<div class="page">`)
	body.WriteString(renderHeader(in.Data, in.Config, st))

	if len(sidebar) > 0 {
		width := lay.SidebarWidth
		if width == "" {
			width = "280px"
		}
		direction := "row"
		if lay.Sidebar == "right" {
			// The sidebar markup always comes first; direction alone flips
			// which side it lands on.
			direction = "row-reverse"
		}
		sidebarBg := st.Colors.Sidebar
		if sidebarBg == "" {
			sidebarBg = "#f8fafc"
		}
		body.WriteString(fmt.Sprintf(`<div style="display: flex; flex-direction: %s; gap: 24px; padding: 16px;">`, direction))
		body.WriteString(fmt.Sprintf(`<div style="width: %s; flex-shrink: 0; background: %s; padding: 16px; border-radius: 8px;">`, width, sidebarBg))
		writeSections(&body, sidebar, lay)
		body.WriteString(`</div>`)
		body.WriteString(fmt.Sprintf(`<div style="flex: 1; min-width: 0; width: calc(794px - %s - 24px);">`, width))
		writeSections(&body, main, lay)
		body.WriteString(`</div></div>`)
	} else {
		body.WriteString(`<div style="padding: 16px;">`)
		writeSections(&body, main, lay)
		body.WriteString(`</div>`)
	}
	body.WriteString(`</div>`)
	return body.String(), nil
}

// Document wraps pre-rendered pages in the document shell. Empty pages are
// skipped; the remaining ones appear in argument order.
func Document(in Input, pages ...string) (string, error) {
	if in.Config == nil {
		return "", &AssembleError{Message: "no template config"}
	}
	st := in.styles()

	title := "Resume"
	if in.Data != nil && in.Data.Personal.Name != "" {
		title = in.Data.Personal.Name + " - Resume"
	}

	var body strings.Builder
	for _, page := range pages {
		body.WriteString(page)
	}

	var out strings.Builder
	err := shellTemplate.Execute(&out, shellData{
		Title:      title,
		FontLink:   fontLink(st.FontFamily),
		FontFamily: st.FontFamily,
		FontSize:   st.FontSize,
		LineHeight: lineHeight(st),
		TextColor:  st.Colors.Text,
		Background: background(st),
		PageSize:   PageSize(in.Country),
		Body:       body.String(),
	})
	if err != nil {
		return "", &AssembleError{Message: "failed to execute document template", Cause: err}
	}
	return out.String(), nil
}

// writeSections emits the non-empty sections with dividers between
// consecutive ones, unless the template draws cards instead.
func writeSections(b *strings.Builder, sections []types.RenderedSection, lay *templates.Layout) {
	for i, sec := range sections {
		if i > 0 && lay.SectionDividers && !lay.SectionCard {
			b.WriteString(`<hr class="section-divider" />`)
		}
		b.WriteString(sec.HTML)
	}
}

func lineHeight(st *templates.Styles) string {
	if st.LineHeight != "" {
		return st.LineHeight
	}
	return "1.5"
}

func background(st *templates.Styles) string {
	if st.Colors.Background != "" {
		return st.Colors.Background
	}
	return "#ffffff"
}
