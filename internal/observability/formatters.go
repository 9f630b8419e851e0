// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeData outputs a human-readable summary of the normalized resume.
func (p *Printer) PrintResumeData(data *types.ResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", data.Personal.Name))
	if data.Personal.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Title:    %s\n", data.Personal.JobTitle))
	}
	sb.WriteString("\n")

	sb.WriteString("Sections:\n")
	for _, key := range types.SectionKeys() {
		if key == "personal" || key == "personal.photo" {
			continue
		}
		if data.SectionPresent(key) {
			sb.WriteString(fmt.Sprintf("  • %s%s\n", key, sectionCount(data, key)))
		}
	}

	if len(data.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(data.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", data.Skills[i]))
		}
		if len(data.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Skills)-maxItemsToShow))
		}
	}

	p.printBox("NORMALIZED RESUME DATA", strings.TrimSuffix(sb.String(), "\n"))
}

func sectionCount(data *types.ResumeData, key string) string {
	var n int
	switch key {
	case "experience":
		n = len(data.Experience)
	case "education":
		n = len(data.Education)
	case "skills":
		n = len(data.Skills)
	case "projects":
		n = len(data.Projects)
	case "certifications":
		n = len(data.Certifications)
	case "languages":
		n = len(data.Languages)
	case "achievements":
		n = len(data.Achievements)
	case "customSections":
		n = len(data.CustomSections)
	default:
		return ""
	}
	return fmt.Sprintf(" (%d)", n)
}

// PrintTemplate outputs the resolved template configuration.
func (p *Printer) PrintTemplate(cfg *templates.TemplateConfig) {
	if cfg == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", cfg.Key))
	sb.WriteString(fmt.Sprintf("Name:     %s\n", cfg.Name))
	sb.WriteString(fmt.Sprintf("Category: %s\n", cfg.Category))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Header:   %s\n", cfg.Layout.HeaderType))
	if cfg.Layout.Columns == 2 {
		sb.WriteString(fmt.Sprintf("Sidebar:  %s (%s)\n", cfg.Layout.Sidebar, cfg.Layout.SidebarWidth))
	}
	sb.WriteString(fmt.Sprintf("Font:     %s\n", cfg.Styles.FontFamily))

	if len(cfg.Layout.SectionsOrder) > 0 {
		sb.WriteString("\nSection order:\n")
		count := min(len(cfg.Layout.SectionsOrder), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, cfg.Layout.SectionsOrder[i]))
		}
		if len(cfg.Layout.SectionsOrder) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cfg.Layout.SectionsOrder)-maxItemsToShow))
		}
	}

	p.printBox("RESOLVED TEMPLATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStage logs a pipeline stage transition in verbose mode.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStage(stage string) {
	fmt.Fprintf(p.out, "→ %s\n", stage)
}

// PrintRenderResult outputs a summary of a finished render.
func (p *Printer) PrintRenderResult(renderID string, template string, pdfBytes int, duration time.Duration) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Render:   %s\n", renderID))
	sb.WriteString(fmt.Sprintf("Template: %s\n", template))
	sb.WriteString(fmt.Sprintf("Size:     %.1f KB\n", float64(pdfBytes)/1024))
	sb.WriteString(fmt.Sprintf("Duration: %s", duration.Round(time.Millisecond)))

	p.printBox("RENDER COMPLETE", sb.String())
}
