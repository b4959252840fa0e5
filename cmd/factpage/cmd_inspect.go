package main

import (
	"github.com/spf13/cobra"

	internalLoader "github.com/goliatone/go-factpage/internal/record/loader"
	"github.com/goliatone/go-factpage/pkg/inspect"
	"github.com/goliatone/go-factpage/pkg/record"
)

var (
	inspectInput string
	inspectAll   bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [slug]",
	Short: "Print a digest of a record to check its structure",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectInput, "input", "", "record file to inspect instead of a slug")
	inspectCmd.Flags().BoolVar(&inspectAll, "all", false, "print every problem and feature pair")
}

func runInspect(cmd *cobra.Command, args []string) error {
	src := record.SourceFromSlug(cfg.DefaultSlug)
	switch {
	case inspectInput != "":
		src = record.SourceFromFile(inspectInput)
	case len(args) == 1:
		src = record.SourceFromSlug(args[0])
	}

	loader := internalLoader.New(record.NewLoaderOptions(record.WithDataDir(cfg.DataDir)))
	doc, err := loader.Load(cmdContext(cmd), src)
	if err != nil {
		return err
	}
	rec, err := record.Parse(doc)
	if err != nil {
		return err
	}

	opts := inspect.Options{}
	if inspectAll {
		opts.PairLimit = -1
	}
	return inspect.Print(cmd.OutOrStdout(), rec, opts)
}
