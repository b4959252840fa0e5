package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-factpage/pkg/audit"
	"github.com/goliatone/go-factpage/pkg/writer"
)

var auditCmd = &cobra.Command{
	Use:   "audit <slug|file.html>",
	Short: "Summarise the sections of a generated page",
	Args:  cobra.ExactArgs(1),
	RunE:  runAudit,
}

func runAudit(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !strings.HasSuffix(path, ".html") {
		path = writer.New(writer.WithOutputDir(cfg.OutputDir)).PathFor(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	summary, err := audit.Read(f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Page:      %s\n", path)
	fmt.Fprintf(out, "Title:     %s\n", summary.Title)
	fmt.Fprintf(out, "Heading:   %s\n", summary.Heading)
	fmt.Fprintf(out, "Sections:  %d\n", len(summary.Sections))
	fmt.Fprintf(out, "Targets:   %d\n", summary.Targets)
	fmt.Fprintf(out, "Problems:  %d\n", summary.ProblemRows)
	fmt.Fprintf(out, "Features:  %d\n", summary.FeatureRows)
	fmt.Fprintf(out, "Specs:     %d\n", summary.SpecItems)
	fmt.Fprintf(out, "Safety:    %d\n", summary.SafetyPoints)
	fmt.Fprintf(out, "FAQs:      %d\n", summary.FAQs)
	fmt.Fprintf(out, "Queries:   %d\n", summary.TriggerQueries)
	for _, section := range summary.EmptySections {
		fmt.Fprintf(out, "Empty:     %s\n", section)
	}
	return nil
}
