package compose

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

// MaxSkillTags caps the number of skill tags rendered inline. Order is
// preserved and no truncation indicator is shown.
const MaxSkillTags = 12

// DedupPolicy controls which redundant first description lines are stripped
// from custom section items.
type DedupPolicy struct {
	// MatchExact strips a first line case-insensitively equal to the section
	// or item title.
	MatchExact bool
	// MatchAsTitle strips a first line containing "as <title>".
	MatchAsTitle bool
}

// DefaultDedupPolicy matches both redundancy forms.
var DefaultDedupPolicy = DedupPolicy{MatchExact: true, MatchAsTitle: true}

// Composer renders resume sections to HTML fragments.
type Composer struct {
	Dedup DedupPolicy
}

// Section renders one section with the default dedup policy.
func Section(key string, data *types.ResumeData, st *templates.Styles, lay *templates.Layout) types.RenderedSection {
	c := Composer{Dedup: DefaultDedupPolicy}
	return c.Section(key, data, st, lay)
}

// Section renders the section named by key to a self-contained fragment.
// Absent or empty data yields Empty=true with no markup.
func (c *Composer) Section(key string, data *types.ResumeData, st *templates.Styles, lay *templates.Layout) types.RenderedSection {
	var html string
	switch key {
	case "personal":
		html = c.personal(data, st, lay)
	case "personal.photo":
		html = c.photo(data, st, lay)
	case "summary":
		html = c.summary(data, st)
	case "experience":
		html = c.entries("Experience", data.Experience, st, lay)
	case "education":
		html = c.entries("Education", data.Education, st, lay)
	case "projects":
		html = c.entries("Projects", data.Projects, st, lay)
	case "certifications":
		html = c.entries("Certifications", data.Certifications, st, lay)
	case "skills":
		html = c.skills(data.Skills, st)
	case "languages":
		html = c.languages(data.Languages, st)
	case "achievements":
		html = c.achievements(data.Achievements, st)
	case "customSections":
		html = c.customSections(data.CustomSections, st, lay)
	}
	return types.RenderedSection{Key: key, HTML: html, Empty: html == ""}
}

// DateRange joins a start and end date, collapsing when one side is empty.
// Both empty yields "" so no date line is rendered at all.
func DateRange(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start
	default:
		return end
	}
}

// PhotoURL accepts only inline data URIs; remote URLs and arbitrary strings
// are rejected so the rendered document never fetches external resources.
func PhotoURL(photo string) string {
	if strings.HasPrefix(photo, "data:image") {
		return photo
	}
	return ""
}

// dedupStrings removes case-insensitive duplicates, keeping first-seen order
// and casing.
func dedupStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, item := range items {
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// joinPresent joins the non-empty parts with sep.
func joinPresent(sep string, parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, sep)
}

func heading(title string, st *templates.Styles) string {
	return fmt.Sprintf(
		`<h2 style="color: %s; font-size: 13pt; font-weight: 700; margin: 0 0 12px; letter-spacing: -0.2px;">%s</h2>`,
		st.Colors.Primary, EscapeHTML(title))
}

func (c *Composer) personal(data *types.ResumeData, st *templates.Styles, lay *templates.Layout) string {
	// The header variants already render identity; a second block would
	// duplicate it.
	if lay.HasHeader() {
		return ""
	}
	p := &data.Personal
	contact := joinPresent(" | ", p.Email, p.Phone, p.Location)
	if p.Name == "" && contact == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf(`<div class="section-block" style="text-align: center; border-bottom: 1px solid %s; padding-bottom: 12px; margin-bottom: 16px;">`, st.Colors.Primary))
	if p.Name != "" {
		b.WriteString(fmt.Sprintf(`<h1 style="font-size: 16pt; font-weight: bold; color: %s; margin: 0 0 4px;">%s</h1>`, st.Colors.Primary, EscapeHTML(p.Name)))
	}
	if p.JobTitle != "" {
		b.WriteString(fmt.Sprintf(`<p style="font-size: 11pt; color: %s; margin: 0 0 4px;">%s</p>`, st.Colors.Secondary, EscapeHTML(p.JobTitle)))
	}
	if contact != "" {
		b.WriteString(fmt.Sprintf(`<p style="font-size: 9pt; color: %s; margin: 0;">%s</p>`, st.Colors.Secondary, EscapeHTML(contact)))
	}
	links := joinPresent(" | ", p.LinkedIn, p.Portfolio)
	if links != "" {
		b.WriteString(fmt.Sprintf(`<p style="font-size: 9pt; color: %s; margin: 4px 0 0;">%s</p>`, st.Colors.Secondary, EscapeHTML(links)))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func (c *Composer) photo(data *types.ResumeData, st *templates.Styles, lay *templates.Layout) string {
	if lay.HasHeader() {
		return ""
	}
	url := PhotoURL(data.Personal.Photo)
	if url == "" {
		return ""
	}
	size := st.Photo.Size
	if size == "" {
		size = "100px"
	}
	radius := "8px"
	if st.Photo.Shape == "circle" {
		radius = "50%"
	}
	return fmt.Sprintf(
		`<div class="section-block" style="text-align: center; margin-bottom: 16px;"><img src="%s" alt="Profile" style="width: %s; height: %s; border-radius: %s; object-fit: cover; margin: 0 auto;" /></div>`,
		url, size, size, radius)
}

func (c *Composer) summary(data *types.ResumeData, st *templates.Styles) string {
	if data.Summary == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="section-block" style="margin-bottom: 16px;">`)
	b.WriteString(heading("Summary", st))
	b.WriteString(fmt.Sprintf(`<p style="color: %s; font-size: 10pt; line-height: 1.5; margin: 0;">%s</p>`, st.Colors.Text, EscapeHTML(data.Summary)))
	b.WriteString(`</div>`)
	return b.String()
}

func (c *Composer) entries(title string, items []types.Entry, st *templates.Styles, lay *templates.Layout) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="section-block" style="margin-bottom: 16px;">`)
	b.WriteString(heading(title, st))
	for i := range items {
		c.entry(&b, &items[i], st, lay, i < len(items)-1)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func (c *Composer) entry(b *strings.Builder, e *types.Entry, st *templates.Styles, lay *templates.Layout, divider bool) {
	style := "padding: 4px 0;"
	if lay.SectionCard {
		style = "padding: 8px 0;"
	}
	if divider {
		border := st.Colors.Border
		if border == "" {
			border = "#f0f0f0"
		}
		style += fmt.Sprintf(" border-bottom: 1px solid %s;", border)
	}
	b.WriteString(fmt.Sprintf(`<div class="item-block" style="%s">`, style))
	if e.Title != "" {
		b.WriteString(fmt.Sprintf(`<h3 style="color: %s; font-size: 11pt; font-weight: 600; margin: 0 0 2px; line-height: 1.3;">%s</h3>`, st.Colors.Text, EscapeHTML(e.Title)))
	}
	subtitle := joinPresent(", ", joinPresent("", e.Company, e.Institution), e.Location)
	if subtitle != "" {
		b.WriteString(fmt.Sprintf(`<p style="color: %s; font-size: 10pt; font-weight: 500; margin: 0 0 2px;">%s</p>`, st.Colors.Secondary, EscapeHTML(subtitle)))
	}
	if dates := DateRange(e.StartDate, e.EndDate); dates != "" {
		b.WriteString(fmt.Sprintf(`<p style="color: %s; font-size: 9pt; font-weight: 500; margin: 0 0 4px;">%s</p>`, st.Colors.Accent, EscapeHTML(dates)))
	}
	writeDescription(b, e.Description, st)
	for _, field := range e.Extra {
		b.WriteString(fmt.Sprintf(`<p style="color: %s; font-size: 10pt; margin: 0 0 2px;"><strong>%s:</strong> %s</p>`,
			st.Colors.Secondary, EscapeHTML(labelize(field.Key)), EscapeHTML(field.Value)))
	}
	b.WriteString(`</div>`)
}

// writeDescription renders a description, one paragraph per line.
func writeDescription(b *strings.Builder, description string, st *templates.Styles) {
	if description == "" {
		return
	}
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString(fmt.Sprintf(`<p style="color: %s; font-size: 10pt; line-height: 1.4; margin: 0 0 4px;">%s</p>`, st.Colors.Text, EscapeHTML(line)))
	}
}

// labelize turns a camelCase data key into a display label ("teamSize" →
// "Team size").
func labelize(key string) string {
	if key == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		switch {
		case i == 0:
			b.WriteRune(toUpper(r))
		case r >= 'A' && r <= 'Z':
			b.WriteByte(' ')
			b.WriteRune(r - 'A' + 'a')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

func (c *Composer) skills(skills []string, st *templates.Styles) string {
	if len(skills) == 0 {
		return ""
	}
	// Repeated skills collapse to their first occurrence, so the cap never
	// spends a slot on a duplicate.
	skills = dedupStrings(skills)
	if len(skills) > MaxSkillTags {
		skills = skills[:MaxSkillTags]
	}
	cardBg := st.Colors.CardBg
	if cardBg == "" {
		cardBg = "#f8fafc"
	}
	border := st.Colors.Border
	if border == "" {
		border = "#e2e8f0"
	}
	var b strings.Builder
	b.WriteString(`<div class="section-block" style="margin-bottom: 16px;">`)
	b.WriteString(heading("Skills", st))
	b.WriteString(`<div style="display: flex; flex-wrap: wrap; gap: 6px;">`)
	for _, skill := range skills {
		b.WriteString(fmt.Sprintf(
			`<span style="background: %s; color: %s; padding: 4px 8px; border-radius: 6px; font-size: 9pt; font-weight: 500; border: 1px solid %s; white-space: nowrap;">%s</span>`,
			cardBg, st.Colors.Primary, border, EscapeHTML(skill)))
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

func (c *Composer) languages(langs []types.Language, st *templates.Styles) string {
	if len(langs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="section-block" style="margin-bottom: 16px;">`)
	b.WriteString(heading("Languages", st))
	for _, lang := range langs {
		label := lang.Language
		if lang.Proficiency != "" {
			label = fmt.Sprintf("%s (%s)", lang.Language, lang.Proficiency)
		}
		b.WriteString(fmt.Sprintf(`<p style="color: %s; font-size: 10pt; margin: 0 0 4px;">%s</p>`, st.Colors.Text, EscapeHTML(label)))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func (c *Composer) achievements(items []string, st *templates.Styles) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="section-block" style="margin-bottom: 16px;">`)
	b.WriteString(heading("Achievements", st))
	b.WriteString(fmt.Sprintf(`<ul style="color: %s; font-size: 10pt; line-height: 1.5; margin: 0; padding-left: 18px;">`, st.Colors.Text))
	for _, item := range items {
		b.WriteString(fmt.Sprintf(`<li style="margin-bottom: 2px;">%s</li>`, EscapeHTML(item)))
	}
	b.WriteString(`</ul></div>`)
	return b.String()
}

// customSections groups items by type in first-seen order and renders one
// titled block per group.
func (c *Composer) customSections(sections []types.CustomSection, st *templates.Styles, lay *templates.Layout) string {
	if len(sections) == 0 {
		return ""
	}
	order := make([]string, 0, 4)
	groups := make(map[string][]*types.CustomSection)
	for i := range sections {
		cs := &sections[i]
		typ := cs.Type
		if typ == "" {
			typ = "project"
		}
		if _, seen := groups[typ]; !seen {
			order = append(order, typ)
		}
		groups[typ] = append(groups[typ], cs)
	}

	var b strings.Builder
	for _, typ := range order {
		title := pluralize(typ)
		b.WriteString(`<div class="section-block" style="margin-bottom: 16px;">`)
		b.WriteString(heading(title, st))
		items := groups[typ]
		for i, cs := range items {
			c.customItem(&b, cs, title, st, lay, i < len(items)-1)
		}
		b.WriteString(`</div>`)
	}
	return b.String()
}

func (c *Composer) customItem(b *strings.Builder, cs *types.CustomSection, groupTitle string, st *templates.Styles, lay *templates.Layout, divider bool) {
	style := "padding: 4px 0;"
	if lay.SectionCard {
		style = "padding: 8px 0;"
	}
	if divider {
		border := st.Colors.Border
		if border == "" {
			border = "#f0f0f0"
		}
		style += fmt.Sprintf(" border-bottom: 1px solid %s;", border)
	}
	b.WriteString(fmt.Sprintf(`<div class="item-block" style="%s">`, style))
	title := cs.DisplayTitle()
	if title != "" {
		b.WriteString(fmt.Sprintf(`<h3 style="color: %s; font-size: 11pt; font-weight: 600; margin: 0 0 2px;">%s</h3>`, st.Colors.Text, EscapeHTML(title)))
	}
	subtitle := joinPresent(", ", cs.Position, cs.Company, cs.Location)
	if subtitle != "" {
		b.WriteString(fmt.Sprintf(`<p style="color: %s; font-size: 10pt; font-weight: 500; margin: 0 0 2px;">%s</p>`, st.Colors.Secondary, EscapeHTML(subtitle)))
	}
	if cs.Date != "" {
		b.WriteString(fmt.Sprintf(`<p style="color: %s; font-size: 9pt; margin: 0 0 4px;">%s</p>`, st.Colors.Accent, EscapeHTML(cs.Date)))
	}
	writeDescription(b, c.dedupDescription(cs.Description, groupTitle, title), st)
	contact := joinPresent(" | ", cs.Email, cs.Phone)
	if contact != "" {
		b.WriteString(fmt.Sprintf(`<p style="color: %s; font-size: 9pt; margin: 0;">%s</p>`, st.Colors.Secondary, EscapeHTML(contact)))
	}
	b.WriteString(`</div>`)
}

// dedupDescription drops a first description line that merely restates the
// group or item title, which user-entered data carries surprisingly often.
func (c *Composer) dedupDescription(description string, titles ...string) string {
	if description == "" {
		return ""
	}
	lines := strings.SplitN(description, "\n", 2)
	first := strings.ToLower(strings.TrimSpace(lines[0]))
	for _, title := range titles {
		t := strings.ToLower(strings.TrimSpace(title))
		if t == "" {
			continue
		}
		if (c.Dedup.MatchExact && first == t) ||
			(c.Dedup.MatchAsTitle && strings.Contains(first, "as "+t)) {
			if len(lines) == 2 {
				return lines[1]
			}
			return ""
		}
	}
	return description
}

// typeLabels maps known custom section types to curated headings; naive
// pluralization misfires on several of them ("hobby" is not "Hobbys").
var typeLabels = map[string]string{
	"project":     "Projects",
	"volunteer":   "Volunteer Work",
	"publication": "Publications",
	"reference":   "References",
	"award":       "Awards",
	"hobby":       "Interests",
}

// pluralize produces a section heading from a lowercased type key: the
// curated label when there is one, otherwise capitalize-and-pluralize
// ("milestone" → "Milestones"; "references" stays "References").
func pluralize(typ string) string {
	if typ == "" {
		return ""
	}
	if label, ok := typeLabels[typ]; ok {
		return label
	}
	title := string(toUpper(rune(typ[0]))) + typ[1:]
	if strings.HasSuffix(typ, "s") {
		return title
	}
	return title + "s"
}
