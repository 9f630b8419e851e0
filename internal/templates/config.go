// Package templates holds the built-in resume and cover letter template
// registry. Configs are immutable after startup; per-request customization
// happens on copies.
package templates

import "github.com/jonathan/resume-studio/internal/types"

// Layout controls section ordering and page structure for a resume template.
type Layout struct {
	// SectionsOrder lists section keys in render order. Keys present in the
	// data but absent here are appended after the ordered ones.
	SectionsOrder   []string `validate:"required,min=1"`
	SidebarSections []string
	// Sidebar is which side the sidebar column sits on.
	Sidebar         string `validate:"omitempty,oneof=left right"`
	SidebarWidth    string
	HeaderType      string `validate:"required,oneof=banner picture-left picture-top modern-tech executive-banner creative-hero medical-banner tech-banner official-header none"`
	SectionCard     bool
	SectionDividers bool
	Columns         int `validate:"min=1,max=2"`
}

// HasHeader reports whether the header variant renders the candidate's
// identity, which suppresses the standalone personal sections.
func (l *Layout) HasHeader() bool {
	return l.HeaderType != "" && l.HeaderType != "none"
}

// Colors is the template palette. Every value is a CSS color or gradient.
type Colors struct {
	Primary        string `validate:"required"`
	Secondary      string
	Accent         string
	Text           string `validate:"required"`
	Background     string
	Sidebar        string
	CardBg         string
	Border         string
	HeaderGradient string
}

// Photo controls how the candidate photo is framed.
type Photo struct {
	Size   string
	Shape  string `validate:"omitempty,oneof=circle rounded square"`
	Border string
	Shadow string
}

// Spacing holds vertical rhythm values.
type Spacing struct {
	SectionGap string
	ItemGap    string
}

// Styles is the visual half of a template config.
type Styles struct {
	FontFamily string `validate:"required"`
	FontSize   string `validate:"required"`
	LineHeight string
	Colors     Colors `validate:"required"`
	Photo      Photo
	Spacing    Spacing
}

// WithColors returns a copy with the given palette entries overlaid. The
// receiver is never mutated; registry configs stay pristine.
func (s *Styles) WithColors(overrides map[string]string) *Styles {
	out := *s
	if len(overrides) == 0 {
		return &out
	}
	apply := func(dst *string, key string) {
		if v, ok := overrides[key]; ok && v != "" {
			*dst = v
		}
	}
	apply(&out.Colors.Primary, "primary")
	apply(&out.Colors.Secondary, "secondary")
	apply(&out.Colors.Accent, "accent")
	apply(&out.Colors.Text, "text")
	apply(&out.Colors.Background, "background")
	apply(&out.Colors.Sidebar, "sidebar")
	apply(&out.Colors.CardBg, "cardBg")
	apply(&out.Colors.Border, "border")
	apply(&out.Colors.HeaderGradient, "headerGradient")
	return &out
}

// TemplateConfig is one built-in resume template.
type TemplateConfig struct {
	Key      string `validate:"required"`
	Name     string `validate:"required"`
	Category string
	Layout   Layout `validate:"required"`
	Styles   Styles `validate:"required"`
	// DefaultData fills fields the caller's resume leaves empty, so every
	// template renders something presentable out of the box.
	DefaultData types.ResumeData
	// Subtitle is the themed strapline some header variants print under the
	// candidate's name when the data carries no job title.
	Subtitle string
}

// CoverLetterDefaults is the placeholder-bearing boilerplate a cover letter
// template supplies for fields the request leaves empty. Bracketed tokens
// like [company] are substituted at compose time; unresolved ones remain
// visible so the candidate sees what still needs filling in.
type CoverLetterDefaults struct {
	Recipient string `validate:"required"`
	Intro     string `validate:"required"`
	Body      string `validate:"required"`
	Closing   string `validate:"required"`
}

// CoverLetterConfig is one built-in cover letter template.
type CoverLetterConfig struct {
	Key         string `validate:"required"`
	Name        string `validate:"required"`
	Category    string
	FontFamily  string `validate:"required"`
	FontSize    string `validate:"required"`
	LineHeight  string
	Colors      Colors              `validate:"required"`
	DefaultData CoverLetterDefaults `validate:"required"`
}
