// Package coverletter composes the optional cover letter page that precedes
// the resume in the rendered document.
package coverletter

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/compose"
	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

// firstNonEmpty returns the first non-empty candidate. The last entry acts as
// the default and is returned even when empty.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// resolved holds the fully resolved letter fields after the fallback chain:
// explicit request field, then the resume counterpart, then the template
// default.
type resolved struct {
	Name      string
	Email     string
	Phone     string
	Location  string
	JobTitle  string
	Company   string
	Recipient string
	Intro     string
	Body      string
	Closing   string
}

func resolve(cover *types.CoverLetterData, resume *types.ResumeData, cfg *templates.CoverLetterConfig) resolved {
	if cover == nil {
		cover = &types.CoverLetterData{}
	}
	var personal types.Personal
	var firstJob types.Entry
	if resume != nil {
		personal = resume.Personal
		if len(resume.Experience) > 0 {
			firstJob = resume.Experience[0]
		}
	}
	return resolved{
		Name:     firstNonEmpty(cover.Name, personal.Name, "Your Name"),
		Email:    firstNonEmpty(cover.Email, personal.Email, "email@example.com"),
		Phone:    firstNonEmpty(cover.Phone, personal.Phone, "123-456-7890"),
		Location: firstNonEmpty(cover.Location, personal.Location, "City, State"),
		// Unresolved jobTitle/company stay bracketed so the substituted
		// boilerplate keeps its placeholder tokens visible.
		JobTitle:  firstNonEmpty(cover.JobTitle, personal.JobTitle, firstJob.Title, "[jobTitle]"),
		Company:   firstNonEmpty(cover.Company, firstJob.Company, "[company]"),
		Recipient: firstNonEmpty(cover.Recipient, cfg.DefaultData.Recipient),
		Intro:     firstNonEmpty(cover.Intro, cfg.DefaultData.Intro),
		Body:      firstNonEmpty(cover.Body, cfg.DefaultData.Body),
		Closing:   firstNonEmpty(cover.Closing, cfg.DefaultData.Closing),
	}
}

// substitute fills the placeholder tokens we can resolve. Tokens with no
// source, like [previousCompany] or [achievement], remain bracketed for the
// candidate to fill in.
func substitute(text string, r *resolved) string {
	text = strings.ReplaceAll(text, "[jobTitle]", r.JobTitle)
	text = strings.ReplaceAll(text, "[company]", r.Company)
	return text
}

// Compose renders the cover letter as a full page div sharing the document
// shell contract (page class, break-after). The caller prepends it to the
// resume body.
func Compose(cover *types.CoverLetterData, resume *types.ResumeData, templateID string) (string, error) {
	cfg, err := templates.GetCoverLetter(templateID)
	if err != nil {
		return "", err
	}
	r := resolve(cover, resume, cfg)

	var b strings.Builder
	b.WriteString(fmt.Sprintf(
		`<div class="page cover-letter" style="font-family: %s; font-size: %s; line-height: %s; color: %s; background: %s; padding: 48px 56px; page-break-after: always;">`,
		cfg.FontFamily, cfg.FontSize, lineHeight(cfg), cfg.Colors.Text, background(cfg)))

	// Letterhead
	b.WriteString(fmt.Sprintf(`<div class="section-block" style="border-bottom: 2px solid %s; padding-bottom: 16px; margin-bottom: 24px;">`, cfg.Colors.Primary))
	b.WriteString(fmt.Sprintf(`<h1 style="color: %s; font-size: 18pt; font-weight: 700; margin: 0 0 6px;">%s</h1>`, cfg.Colors.Primary, compose.EscapeHTML(r.Name)))
	contact := strings.Join([]string{r.Email, r.Phone, r.Location}, " | ")
	b.WriteString(fmt.Sprintf(`<p style="color: %s; font-size: 9.5pt; margin: 0;">%s</p>`, cfg.Colors.Secondary, compose.EscapeHTML(contact)))
	b.WriteString(`</div>`)

	b.WriteString(fmt.Sprintf(`<p style="margin: 0 0 16px; font-weight: 600;">%s,</p>`, compose.EscapeHTML(r.Recipient)))
	for _, paragraph := range []string{r.Intro, r.Body, r.Closing} {
		b.WriteString(fmt.Sprintf(`<p style="margin: 0 0 14px; text-align: justify;">%s</p>`,
			compose.EscapeHTML(substitute(paragraph, &r))))
	}
	b.WriteString(fmt.Sprintf(`<p style="margin: 24px 0 4px;">Sincerely,</p><p style="font-weight: 600; color: %s; margin: 0;">%s</p>`,
		cfg.Colors.Primary, compose.EscapeHTML(r.Name)))
	b.WriteString(`</div>`)
	return b.String(), nil
}

func lineHeight(cfg *templates.CoverLetterConfig) string {
	if cfg.LineHeight != "" {
		return cfg.LineHeight
	}
	return "1.6"
}

func background(cfg *templates.CoverLetterConfig) string {
	if cfg.Colors.Background != "" {
		return cfg.Colors.Background
	}
	return "#ffffff"
}
