// Package normalize coerces loosely-structured resume input into the canonical
// internal schema. Input arrives as decoded JSON (map[string]any) and may use
// any mix of strings, objects, arrays, and nulls for any field; normalization
// never fails, it only degrades malformed values to empty ones.
package normalize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// displayKeys is the priority list used to pull a display string out of an
// object supplied where a scalar was expected (e.g. a skill sent as
// {name, level}). Falling back to "" rather than stringifying the object keeps
// "[object Object]" out of rendered documents.
var displayKeys = []string{"value", "name", "label", "content", "title", "skill", "item"}

// DisplayString extracts a human-readable string from an arbitrary JSON value.
func DisplayString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case bool:
		return strconv.FormatBool(val)
	case float64:
		// JSON numbers decode as float64; render integers without a decimal point.
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := DisplayString(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		for _, key := range displayKeys {
			if s := DisplayString(val[key]); s != "" {
				return s
			}
		}
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}

// stringField resolves a scalar field from a map, trying each alias in order.
func stringField(m map[string]any, aliases ...string) string {
	for _, alias := range aliases {
		if v, ok := m[alias]; ok {
			if s := DisplayString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// listField returns the raw array behind any of the aliases, or nil.
func listField(m map[string]any, aliases ...string) []any {
	for _, alias := range aliases {
		if v, ok := m[alias].([]any); ok {
			return v
		}
	}
	return nil
}

// subMap returns a nested object field, or nil when absent/mis-shaped.
func subMap(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}

// Normalize converts raw decoded resume JSON into the canonical ResumeData.
// It never returns an error: absent or malformed fields become empty values so
// a single bad field cannot fail whole-document composition.
func Normalize(raw map[string]any) types.ResumeData {
	if raw == nil {
		raw = map[string]any{}
	}
	personal := subMap(raw, "personal")
	if personal == nil {
		personal = map[string]any{}
	}

	// Identity fields may arrive nested under personal or flat at the top
	// level; prefer the nested form, fall back to the flat one.
	pick := func(nested []string, flat []string) string {
		if s := stringField(personal, nested...); s != "" {
			return s
		}
		return stringField(raw, flat...)
	}

	data := types.ResumeData{
		Personal: types.Personal{
			Name:      pick([]string{"name"}, []string{"name"}),
			JobTitle:  pick([]string{"jobTitle", "title"}, []string{"jobTitle", "title"}),
			Email:     pick([]string{"email"}, []string{"email"}),
			Phone:     pick([]string{"phone"}, []string{"phone"}),
			Location:  pick([]string{"location", "address"}, []string{"location", "address"}),
			LinkedIn:  pick([]string{"linkedin"}, []string{"linkedin"}),
			Portfolio: pick([]string{"portfolio", "website"}, []string{"portfolio", "website"}),
			Photo:     photoValue(personal, raw),
		},
		Summary:        summaryValue(raw, personal),
		Experience:     normalizeEntries(listField(raw, "experience"), entryAliasExperience),
		Education:      normalizeEntries(listField(raw, "education"), entryAliasEducation),
		Skills:         normalizeStrings(listField(raw, "skills")),
		Projects:       normalizeEntries(listField(raw, "projects"), entryAliasProject),
		Certifications: normalizeEntries(listField(raw, "certifications"), entryAliasCertification),
		Languages:      normalizeLanguages(listField(raw, "languages")),
		Achievements:   normalizeStrings(listField(raw, "achievements")),
		CustomSections: normalizeCustomSections(listField(raw, "customSections")),
	}
	return data
}

// photoValue keeps the raw photo string intact (it may be a long data URI that
// DisplayString would trim but must otherwise not be reinterpreted).
func photoValue(personal, raw map[string]any) string {
	if s, ok := personal["photo"].(string); ok {
		return strings.TrimSpace(s)
	}
	if s, ok := raw["photo"].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func summaryValue(raw, personal map[string]any) string {
	if s := stringField(raw, "summary"); s != "" {
		return s
	}
	return stringField(personal, "summary")
}

// entryAlias maps canonical Entry fields to their accepted source keys.
// recognized holds the union of those keys plus the common scalar fields;
// everything outside it lands in Entry.Extra, so a key another section kind
// would consume (say "degree" on an experience entry) is still preserved.
type entryAlias struct {
	title       []string
	company     []string
	institution []string
	description []string
	recognized  map[string]bool
}

func newEntryAlias(a entryAlias) entryAlias {
	a.recognized = map[string]bool{
		"startDate": true, "endDate": true, "location": true,
	}
	for _, keys := range [][]string{a.title, a.company, a.institution, a.description} {
		for _, key := range keys {
			a.recognized[key] = true
		}
	}
	return a
}

var (
	entryAliasExperience = newEntryAlias(entryAlias{
		title:       []string{"title", "jobTitle", "position"},
		company:     []string{"company", "employer"},
		description: []string{"description"},
	})
	entryAliasEducation = newEntryAlias(entryAlias{
		title:       []string{"degree", "title"},
		institution: []string{"institution", "school"},
		description: []string{"description"},
	})
	entryAliasProject = newEntryAlias(entryAlias{
		title:       []string{"name", "title"},
		company:     []string{"company"},
		description: []string{"description"},
	})
	entryAliasCertification = newEntryAlias(entryAlias{
		title:       []string{"name", "title"},
		company:     []string{"issuer", "organization"},
		description: []string{"description"},
	})
)

func normalizeEntries(items []any, alias entryAlias) []types.Entry {
	entries := make([]types.Entry, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			// A bare string still makes a valid one-line entry.
			if s := DisplayString(item); s != "" {
				entries = append(entries, types.Entry{Description: s})
			}
			continue
		}
		entry := types.Entry{
			Title:       stringField(m, alias.title...),
			Company:     stringField(m, alias.company...),
			Institution: stringField(m, alias.institution...),
			StartDate:   stringField(m, "startDate"),
			EndDate:     stringField(m, "endDate"),
			Location:    stringField(m, "location"),
			Description: descriptionString(m, alias.description),
			Extra:       extraFields(m, alias.recognized),
		}
		if entryEmpty(&entry) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// descriptionString accepts a string or an array of lines for a description.
func descriptionString(m map[string]any, aliases []string) string {
	for _, alias := range aliases {
		switch v := m[alias].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case []any:
			lines := make([]string, 0, len(v))
			for _, line := range v {
				if s := DisplayString(line); s != "" {
					lines = append(lines, s)
				}
			}
			if len(lines) > 0 {
				return strings.Join(lines, "\n")
			}
		}
	}
	return ""
}

// extraFields collects keys the alias table does not consume, in
// sorted-stable order so rendering is deterministic regardless of map
// iteration.
func extraFields(m map[string]any, recognized map[string]bool) []types.Field {
	keys := make([]string, 0)
	for key := range m {
		if !recognized[key] {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)
	fields := make([]types.Field, 0, len(keys))
	for _, key := range keys {
		if val := DisplayString(m[key]); val != "" {
			fields = append(fields, types.Field{Key: key, Value: val})
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func entryEmpty(e *types.Entry) bool {
	return e.Title == "" && e.Company == "" && e.Institution == "" &&
		e.StartDate == "" && e.EndDate == "" && e.Location == "" &&
		e.Description == "" && len(e.Extra) == 0
}

func normalizeStrings(items []any) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		s := DisplayString(item)
		if s == "" || s == "[object Object]" {
			continue
		}
		// First occurrence wins; repeated values keep their original casing
		// from that first occurrence.
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func normalizeLanguages(items []any) []types.Language {
	out := make([]types.Language, 0, len(items))
	for _, item := range items {
		var lang types.Language
		switch v := item.(type) {
		case map[string]any:
			lang.Language = stringField(v, "language", "name")
			lang.Proficiency = stringField(v, "proficiency", "level")
		default:
			lang.Language = DisplayString(v)
		}
		if lang.Language == "" {
			continue
		}
		out = append(out, lang)
	}
	return out
}

func normalizeCustomSections(items []any) []types.CustomSection {
	out := make([]types.CustomSection, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		cs := types.CustomSection{
			Type:        strings.ToLower(stringField(m, "type")),
			Title:       stringField(m, "title"),
			Description: descriptionString(m, []string{"description"}),
			Date:        stringField(m, "date"),
			Company:     stringField(m, "company"),
			Position:    stringField(m, "position"),
			Location:    stringField(m, "location"),
			Name:        stringField(m, "name"),
			Email:       stringField(m, "email"),
			Phone:       stringField(m, "phone"),
		}
		if cs.Type == "" {
			cs.Type = "project"
		}
		if !customSectionDisplayable(&cs) {
			continue
		}
		out = append(out, cs)
	}
	return out
}

// customSectionDisplayable drops sections with nothing worth rendering.
func customSectionDisplayable(cs *types.CustomSection) bool {
	return cs.Title != "" || cs.Name != "" || cs.Description != "" ||
		cs.Company != "" || cs.Position != ""
}
