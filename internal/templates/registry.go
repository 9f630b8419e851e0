package templates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultKey is the documented fallback template.
const DefaultKey = "government_job"

// DefaultCoverLetterKey is the fallback cover letter template.
const DefaultCoverLetterKey = "classic"

// ErrTemplateNotFound is returned by Get for an unknown template id. It
// carries the sorted list of valid ids so API responses can enumerate them.
type ErrTemplateNotFound struct {
	ID    string
	Valid []string
}

func (e *ErrTemplateNotFound) Error() string {
	return fmt.Sprintf("unknown template %q (valid: %s)", e.ID, strings.Join(e.Valid, ", "))
}

var (
	registry            map[string]*TemplateConfig
	coverLetterRegistry map[string]*CoverLetterConfig
)

func init() {
	registry = buildRegistry()
	coverLetterRegistry = buildCoverLetterRegistry()
}

// buildRegistry assembles and validates the built-in resume templates. An
// invalid built-in config is a programming error, so it panics at startup
// rather than surfacing per-request.
func buildRegistry() map[string]*TemplateConfig {
	validate := validator.New()
	out := make(map[string]*TemplateConfig, len(builtinTemplates))
	for i := range builtinTemplates {
		cfg := &builtinTemplates[i]
		if err := validate.Struct(cfg); err != nil {
			panic(fmt.Sprintf("invalid built-in template %q: %v", cfg.Key, err))
		}
		if _, dup := out[cfg.Key]; dup {
			panic(fmt.Sprintf("duplicate template key %q", cfg.Key))
		}
		out[cfg.Key] = cfg
	}
	if _, ok := out[DefaultKey]; !ok {
		panic("default template missing from registry")
	}
	return out
}

func buildCoverLetterRegistry() map[string]*CoverLetterConfig {
	validate := validator.New()
	out := make(map[string]*CoverLetterConfig, len(builtinCoverLetters))
	for i := range builtinCoverLetters {
		cfg := &builtinCoverLetters[i]
		if err := validate.Struct(cfg); err != nil {
			panic(fmt.Sprintf("invalid built-in cover letter template %q: %v", cfg.Key, err))
		}
		out[cfg.Key] = cfg
	}
	if _, ok := out[DefaultCoverLetterKey]; !ok {
		panic("default cover letter template missing from registry")
	}
	return out
}

// Get returns the resume template for id. Lookup is case-insensitive.
func Get(id string) (*TemplateConfig, error) {
	cfg, ok := registry[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, &ErrTemplateNotFound{ID: id, Valid: IDs()}
	}
	return cfg, nil
}

// Default returns the fallback resume template. Only composition paths that
// must have some config use this; request handlers surface unknown ids as
// errors instead.
func Default() *TemplateConfig {
	return registry[DefaultKey]
}

// IDs lists all resume template ids, sorted.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// GetCoverLetter returns the cover letter template for id, falling back to
// the default when id is empty.
func GetCoverLetter(id string) (*CoverLetterConfig, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	if key == "" {
		key = DefaultCoverLetterKey
	}
	cfg, ok := coverLetterRegistry[key]
	if !ok {
		return nil, &ErrTemplateNotFound{ID: id, Valid: CoverLetterIDs()}
	}
	return cfg, nil
}

// CoverLetterIDs lists all cover letter template ids, sorted.
func CoverLetterIDs() []string {
	ids := make([]string, 0, len(coverLetterRegistry))
	for id := range coverLetterRegistry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
