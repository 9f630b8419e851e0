package layout

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/compose"
	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

// headerGradient falls back to a primary→secondary gradient when the template
// does not define one.
func headerGradient(st *templates.Styles) string {
	if st.Colors.HeaderGradient != "" {
		return st.Colors.HeaderGradient
	}
	return fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", st.Colors.Primary, st.Colors.Secondary)
}

// headerPhoto renders the profile image, or nothing when the photo is absent
// or not an inline data URI. The surrounding flex layouts close up without a
// gap when it is omitted.
func headerPhoto(photo string, st *templates.Styles, size, radius, extra string) string {
	url := compose.PhotoURL(photo)
	if url == "" {
		return ""
	}
	if st.Photo.Size != "" {
		size = st.Photo.Size
	}
	if st.Photo.Shape == "circle" {
		radius = "50%"
	}
	border := st.Photo.Border
	if border == "" {
		border = "3px solid rgba(255,255,255,0.9)"
	}
	return fmt.Sprintf(
		`<img src="%s" alt="Profile" style="width: %s; height: %s; border-radius: %s; object-fit: cover; border: %s;%s" />`,
		url, size, size, radius, border, extra)
}

// subtitle picks the candidate's job title, or the template's themed
// strapline when the data carries none.
func subtitle(data *types.ResumeData, cfg *templates.TemplateConfig) string {
	if data.Personal.JobTitle != "" {
		return data.Personal.JobTitle
	}
	return cfg.Subtitle
}

func contactLine(p *types.Personal) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.Email, p.Phone, p.Location} {
		if s != "" {
			parts = append(parts, compose.EscapeHTML(s))
		}
	}
	return strings.Join(parts, " • ")
}

func headerName(p *types.Personal) string {
	if p.Name == "" {
		return "Your Name"
	}
	return compose.EscapeHTML(p.Name)
}

// renderHeader emits the identity banner for the template's header variant.
// Exactly one header is produced per document; "none" yields nothing and the
// personal sections render standalone instead.
func renderHeader(data *types.ResumeData, cfg *templates.TemplateConfig, st *templates.Styles) string {
	if !cfg.Layout.HasHeader() {
		return ""
	}
	p := &data.Personal
	sub := compose.EscapeHTML(subtitle(data, cfg))

	switch cfg.Layout.HeaderType {
	case "modern-tech":
		return fmt.Sprintf(`<div class="section-block" style="background: %s; color: #ffffff; border-radius: 15px 15px 0 0; padding: 24px; display: flex; align-items: center; gap: 16px;">%s<div style="flex: 1;"><h1 style="font-size: 20pt; font-weight: 700; margin: 0 0 8px; letter-spacing: -0.5px;">%s</h1><p style="font-size: 12pt; opacity: 0.9; margin: 0 0 4px; font-weight: 500;">%s</p><p style="font-size: 10pt; opacity: 0.8; margin: 0;">%s</p></div></div>`,
			headerGradient(st), headerPhoto(p.Photo, st, "80px", "12px", ""), headerName(p), sub, contactLine(p))

	case "executive-banner":
		return fmt.Sprintf(`<div class="section-block" style="background: %s; color: #ffffff; padding: 20px 24px; text-align: center; border-top: 4px solid %s;">%s<h1 style="font-size: 18pt; font-weight: 600; margin: 0 0 6px; letter-spacing: -0.3px;">%s</h1><p style="font-size: 11pt; opacity: 0.9; margin: 0 0 8px; font-weight: 500;">%s</p><p style="font-size: 9pt; opacity: 0.8; margin: 0;">%s</p></div>`,
			headerGradient(st), st.Colors.Accent, headerPhoto(p.Photo, st, "70px", "8px", " margin: 0 auto 12px; display: block;"), headerName(p), sub, contactLine(p))

	case "creative-hero":
		return fmt.Sprintf(`<div class="section-block" style="background: %s; color: #ffffff; border-radius: 20px 20px 0 0; padding: 28px 24px;"><div style="display: flex; align-items: center; gap: 20px;">%s<div style="flex: 1;"><h1 style="font-size: 22pt; font-weight: 700; margin: 0 0 8px; letter-spacing: -0.5px;">%s</h1><p style="font-size: 13pt; opacity: 0.9; margin: 0 0 6px; font-weight: 500;">%s</p><p style="font-size: 10pt; opacity: 0.8; margin: 0;">%s</p></div></div></div>`,
			headerGradient(st), headerPhoto(p.Photo, st, "90px", "15px", ""), headerName(p), sub, contactLine(p))

	case "medical-banner":
		return fmt.Sprintf(`<div class="section-block" style="background: %s; color: #ffffff; border-radius: 12px 12px 0 0; padding: 24px; text-align: center;">%s<h1 style="font-size: 18pt; font-weight: 600; margin: 0 0 6px;">%s</h1><p style="font-size: 12pt; opacity: 0.9; margin: 0 0 8px; font-weight: 500;">%s</p><p style="font-size: 10pt; opacity: 0.8; margin: 0;">%s</p></div>`,
			headerGradient(st), headerPhoto(p.Photo, st, "80px", "10px", " margin: 0 auto 12px; display: block;"), headerName(p), sub, contactLine(p))

	case "tech-banner":
		return fmt.Sprintf(`<div class="section-block" style="background: %s; color: #ffffff; border-radius: 8px 8px 0 0; padding: 20px 24px; font-family: monospace; border-top: 3px solid %s;"><div style="display: flex; align-items: center; gap: 16px;">%s<div style="flex: 1;"><h1 style="font-size: 20pt; font-weight: 700; margin: 0 0 6px;">%s</h1><p style="font-size: 12pt; opacity: 0.9; margin: 0 0 4px; font-weight: 500;">%s</p><p style="font-size: 9pt; opacity: 0.8; margin: 0;">%s</p></div></div></div>`,
			headerGradient(st), st.Colors.Accent, headerPhoto(p.Photo, st, "70px", "8px", ""), headerName(p), sub, contactLine(p))

	case "official-header":
		return fmt.Sprintf(`<div class="section-block" style="background: %s; color: #ffffff; padding: 16px 24px; text-align: center; border-bottom: 4px solid %s;">%s<h1 style="font-size: 16pt; font-weight: 600; margin: 0 0 4px;">%s</h1><p style="font-size: 11pt; opacity: 0.9; margin: 0 0 6px; font-weight: 500;">%s</p><p style="font-size: 9pt; opacity: 0.8; margin: 0;">%s</p></div>`,
			headerGradient(st), st.Colors.Accent, headerPhoto(p.Photo, st, "60px", "6px", " margin: 0 auto 10px; display: block;"), headerName(p), sub, contactLine(p))

	case "banner":
		return fmt.Sprintf(`<div class="section-block" style="background: %s; color: #ffffff; border-radius: 12px 12px 0 0; padding: 32px 24px; text-align: center;">%s<h1 style="font-size: 16pt; font-weight: bold; margin: 0 0 6px;">%s</h1><p style="font-size: 10pt; opacity: 0.9; margin: 0; letter-spacing: 0.02em;">%s</p></div>`,
			headerGradient(st), headerPhoto(p.Photo, st, "56px", "8px", " margin: 0 auto 6px; display: block;"), headerName(p), contactLine(p))

	case "picture-left":
		return fmt.Sprintf(`<div class="section-block" style="background: %s; color: #ffffff; border-radius: 12px 12px 0 0; padding: 32px 24px; display: flex; align-items: center; gap: 10px;">%s<div style="flex: 1;"><h1 style="font-size: 16pt; font-weight: bold; margin: 0 0 6px;">%s</h1><p style="font-size: 10pt; opacity: 0.9; margin: 0; letter-spacing: 0.02em;">%s</p></div></div>`,
			headerGradient(st), headerPhoto(p.Photo, st, "44px", "8px", ""), headerName(p), contactLine(p))

	case "picture-top":
		return fmt.Sprintf(`<div class="section-block" style="background: %s; color: #ffffff; border-radius: 12px 12px 0 0; padding: 12px 10px;"><div style="display: flex; align-items: center; gap: 10px;">%s<div><h1 style="font-size: 16pt; font-weight: bold; margin: 0 0 6px;">%s</h1><p style="font-size: 10pt; opacity: 0.9; margin: 0; letter-spacing: 0.02em;">%s</p></div></div></div>`,
			headerGradient(st), headerPhoto(p.Photo, st, "48px", "8px", ""), headerName(p), contactLine(p))
	}
	return ""
}
