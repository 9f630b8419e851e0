package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

func TestPrintResumeData(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	data := &types.ResumeData{
		Personal: types.Personal{Name: "Ada Lovelace", JobTitle: "Engineer"},
		Summary:  "Analytical engines.",
		Skills:   []string{"Go", "SQL", "Math", "Physics", "Chemistry", "Biology"},
		Experience: []types.Entry{
			{Title: "Analyst", Company: "Babbage & Co"},
		},
	}
	p.PrintResumeData(data)

	out := buf.String()
	assert.Contains(t, out, "NORMALIZED RESUME DATA")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "experience (1)")
	assert.Contains(t, out, "skills (6)")
	assert.Contains(t, out, "... and 1 more")
}

func TestPrintResumeData_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResumeData(nil)
	assert.Empty(t, buf.String())
}

func TestPrintTemplate(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	cfg, err := templates.Get("software_developer")
	require.NoError(t, err)
	p.PrintTemplate(cfg)

	out := buf.String()
	assert.Contains(t, out, "RESOLVED TEMPLATE")
	assert.Contains(t, out, "software_developer")
	assert.Contains(t, out, "modern-tech")
	assert.Contains(t, out, "Sidebar:")
}

func TestPrintTemplate_SingleColumnOmitsSidebar(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	cfg, err := templates.Get("government_job")
	require.NoError(t, err)
	p.PrintTemplate(cfg)

	assert.NotContains(t, buf.String(), "Sidebar:")
}

func TestPrintStage(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStage("render")
	assert.Equal(t, "→ render\n", buf.String())
}

func TestPrintRenderResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRenderResult("abc-123", "government_job", 2048, 1500*time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "RENDER COMPLETE")
	assert.Contains(t, out, "abc-123")
	assert.Contains(t, out, "2.0 KB")
	assert.Contains(t, out, "1.5s")
}
