// Package types provides type definitions for structured data used throughout the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Personal holds the identity block of a resume.
type Personal struct {
	Name      string `json:"name"`
	JobTitle  string `json:"jobTitle,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Photo     string `json:"photo,omitempty"`
}

// Entry represents a free-form job/education/project/certification record.
// Unrecognized source keys are preserved in Extra so no caller data is dropped.
type Entry struct {
	Title       string  `json:"title,omitempty"`
	Company     string  `json:"company,omitempty"`
	Institution string  `json:"institution,omitempty"`
	StartDate   string  `json:"startDate,omitempty"`
	EndDate     string  `json:"endDate,omitempty"`
	Location    string  `json:"location,omitempty"`
	Description string  `json:"description,omitempty"`
	Extra       []Field `json:"extra,omitempty"`
}

// Field is a labeled key/value pair carried through from unrecognized entry keys.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Language pairs a language with an optional proficiency level.
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}

// CustomSection is a user-defined section item, grouped for rendering by Type.
type CustomSection struct {
	Type        string `json:"type"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Company     string `json:"company,omitempty"`
	Position    string `json:"position,omitempty"`
	Location    string `json:"location,omitempty"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// ResumeData is the canonical, normalized resume model.
// After normalization every list field is a non-nil slice and every scalar is a
// plain string; downstream code never re-inspects raw shapes.
type ResumeData struct {
	Personal       Personal        `json:"personal"`
	Summary        string          `json:"summary"`
	Experience     []Entry         `json:"experience"`
	Education      []Entry         `json:"education"`
	Skills         []string        `json:"skills"`
	Projects       []Entry         `json:"projects"`
	Certifications []Entry         `json:"certifications"`
	Languages      []Language      `json:"languages"`
	Achievements   []string        `json:"achievements"`
	CustomSections []CustomSection `json:"customSections"`
}

// HasTitle reports whether the custom section has any heading-worthy text.
func (cs *CustomSection) HasTitle() bool {
	return cs.Title != "" || cs.Name != ""
}

// DisplayTitle returns the heading text for a custom section item.
func (cs *CustomSection) DisplayTitle() string {
	if cs.Name != "" {
		return cs.Name
	}
	return cs.Title
}

// SectionPresent reports whether a section key has any content to render.
// Keys mirror the template layout keys.
func (d *ResumeData) SectionPresent(key string) bool {
	switch key {
	case "personal":
		return d.Personal.Name != "" || d.Personal.Email != "" || d.Personal.Phone != ""
	case "personal.photo":
		return d.Personal.Photo != ""
	case "summary":
		return d.Summary != ""
	case "experience":
		return len(d.Experience) > 0
	case "education":
		return len(d.Education) > 0
	case "skills":
		return len(d.Skills) > 0
	case "projects":
		return len(d.Projects) > 0
	case "certifications":
		return len(d.Certifications) > 0
	case "languages":
		return len(d.Languages) > 0
	case "achievements":
		return len(d.Achievements) > 0
	case "customSections":
		return len(d.CustomSections) > 0
	default:
		return false
	}
}

// SectionKeys lists the canonical section keys in their default order.
// Used to union data-present sections into a template's declared order.
func SectionKeys() []string {
	return []string{
		"personal",
		"personal.photo",
		"summary",
		"experience",
		"education",
		"skills",
		"projects",
		"certifications",
		"languages",
		"achievements",
		"customSections",
	}
}
