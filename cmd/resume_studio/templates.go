package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available resume and cover letter templates",
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Resume templates:")
	for _, id := range templates.IDs() {
		cfg, err := templates.Get(id)
		if err != nil {
			return err
		}
		marker := " "
		if id == templates.DefaultKey {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %-24s %s\n", marker, id, cfg.Name)
	}

	fmt.Fprintln(out, "\nCover letter templates:")
	for _, id := range templates.CoverLetterIDs() {
		cfg, err := templates.GetCoverLetter(id)
		if err != nil {
			return err
		}
		marker := " "
		if id == templates.DefaultCoverLetterKey {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %-24s %s\n", marker, id, cfg.Name)
	}
	return nil
}
