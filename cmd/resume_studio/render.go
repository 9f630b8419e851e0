package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/pipeline"
	"github.com/jonathan/resume-studio/internal/session"
	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume to PDF or HTML from a JSON data file",
	Long: `Compose a resume from a JSON data file and render it to PDF using a headless browser.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runRender,
}

var (
	renderConfigPath  string
	renderDataPath    string
	renderTemplate    string
	renderOut         string
	renderCountry     string
	renderCoverPath   string
	renderCoverTmpl   string
	renderColors      map[string]string
	renderHTMLOnly    bool
	renderVerbose     bool
	renderTimeoutSecs int
)

func init() {
	renderCmd.Flags().StringVar(&renderConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	renderCmd.Flags().StringVarP(&renderDataPath, "data", "d", "", "Path to resume data JSON file (required)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Resume template id (defaults to the built-in default)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "resume.pdf", "Output file path")
	renderCmd.Flags().StringVar(&renderCountry, "country", "", "Country code for page size (us prints Letter, everything else A4)")
	renderCmd.Flags().StringVar(&renderCoverPath, "cover", "", "Path to cover letter JSON file (optional)")
	renderCmd.Flags().StringVar(&renderCoverTmpl, "cover-template", "", "Cover letter template id")
	renderCmd.Flags().StringToStringVar(&renderColors, "color", nil, "Color overrides as key=value pairs (e.g. primary=#1a365d)")
	renderCmd.Flags().BoolVar(&renderHTMLOnly, "html-only", false, "Write composed HTML instead of rendering a PDF")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print detailed progress information")
	renderCmd.Flags().IntVar(&renderTimeoutSecs, "timeout", 0, "Per-render timeout in seconds")

	_ = renderCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.FromEnv()
	if renderConfigPath != "" {
		loaded, err := config.LoadConfig(renderConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = renderTemplate
	}
	if cmd.Flags().Changed("country") {
		cfg.Country = renderCountry
	}
	if cmd.Flags().Changed("timeout") {
		cfg.RenderTimeoutSeconds = renderTimeoutSecs
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.ChromePath != "" {
		if err := os.Setenv("CHROME_PATH", cfg.ChromePath); err != nil {
			return err
		}
	}

	raw, err := readDataFile(renderDataPath)
	if err != nil {
		return err
	}

	var cover *types.CoverLetterData
	if renderCoverPath != "" {
		cover = &types.CoverLetterData{}
		if err := readJSONFile(renderCoverPath, cover); err != nil {
			return err
		}
	}

	req := pipeline.Request{
		Data:                raw,
		Template:            cfg.Template,
		CustomColors:        renderColors,
		Country:             cfg.Country,
		CoverLetter:         cover,
		CoverLetterTemplate: renderCoverTmpl,
	}

	printer := observability.NewPrinter(os.Stdout)
	gen := &pipeline.Generator{}
	if renderVerbose {
		gen.Progress = printer.PrintStage

		data := normalize.Normalize(raw)
		printer.PrintResumeData(&data)
		if tmpl, err := templates.Get(cfg.Template); err == nil {
			printer.PrintTemplate(tmpl)
		} else if cfg.Template == "" {
			printer.PrintTemplate(templates.Default())
		}
	}

	if renderHTMLOnly {
		html, err := gen.ComposeHTML(req)
		if err != nil {
			return err
		}
		if err := os.WriteFile(renderOut, []byte(html), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", renderOut, err)
		}
		fmt.Printf("Wrote %s\n", renderOut)
		return nil
	}

	sessionOpts := []session.Option{}
	if cfg.RenderTimeoutSeconds > 0 {
		sessionOpts = append(sessionOpts, session.WithTimeout(time.Duration(cfg.RenderTimeoutSeconds)*time.Second))
	}
	sessions := session.NewManager(sessionOpts...)
	defer sessions.Close()
	gen.Sessions = sessions

	result, err := gen.GeneratePDF(ctx, req)
	if err != nil {
		return err
	}

	if err := os.WriteFile(renderOut, result.PDF, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOut, err)
	}
	if renderVerbose {
		printer.PrintRenderResult(result.RenderID.String(), result.Template, len(result.PDF), result.Duration)
	}
	fmt.Printf("Wrote %s\n", renderOut)
	return nil
}

func readDataFile(path string) (map[string]any, error) {
	var raw map[string]any
	if err := readJSONFile(path, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("data file %s contains no resume data", path)
	}
	return raw, nil
}

func readJSONFile(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
