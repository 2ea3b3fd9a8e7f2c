package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/viant/ngtooling/generator"
)

type generateOptions struct {
	check    bool
	strict   bool
	progress bool
}

func newGenerateCommand(opts *options) *cobra.Command {
	genOpts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate module index files",
		Long: `Regenerate every <name>.index.ts in the workspace.

Also collates the svg component index and samples metadata when
svgsPath and samplesPath are configured. Press Ctrl-C to stop after
the file currently being written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, genOpts)
		},
	}
	cmd.Flags().BoolVar(&genOpts.check, "check", false, "report stale files without writing (exit 1 when any is stale)")
	cmd.Flags().BoolVar(&genOpts.strict, "strict", false, "exit 1 when any output failed")
	cmd.Flags().BoolVar(&genOpts.progress, "progress", true, "show a progress bar")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *options, genOpts *generateOptions) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, opts)
	if err != nil {
		return err
	}
	logger := newLogger(opts.verbose)
	logger.Debug("workspace", "root", s.workspace.Root, "name", s.workspace.Name, "config", s.configFile)

	runOptions := []generator.Option{generator.WithFS(s.fs), generator.WithLogger(logger)}
	var reporter *progressReporter
	if genOpts.progress {
		reporter = newProgressReporter(cmd.ErrOrStderr())
		runOptions = append(runOptions, generator.WithReporter(reporter))
	}
	if genOpts.check {
		runOptions = append(runOptions, generator.WithCheck())
	}

	summary, err := generator.New(s.workspace.Root, s.config, runOptions...).Run(ctx)
	if reporter != nil {
		reporter.Done()
	}
	if err != nil {
		var discoveryErr *generator.DiscoveryError
		if errors.As(err, &discoveryErr) {
			fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Discovery failed: ")+discoveryErr.Root)
		}
		return err
	}
	printSummary(cmd.OutOrStdout(), s.workspace.Root, summary)

	switch {
	case summary.Cancelled:
		return &ExitError{Code: 130}
	case genOpts.check && len(summary.Stale) > 0:
		return &ExitError{Code: 1, Err: fmt.Errorf("%d stale file(s)", len(summary.Stale))}
	case genOpts.strict && len(summary.Failures) > 0:
		return &ExitError{Code: 1, Err: fmt.Errorf("%d output(s) failed", len(summary.Failures))}
	}
	return nil
}

func printSummary(out io.Writer, root string, summary *generator.Summary) {
	relative := func(location string) string {
		if rel, err := filepath.Rel(root, location); err == nil {
			return rel
		}
		return location
	}
	for _, location := range summary.Stale {
		fmt.Fprintf(out, "%s %s\n", WarningStyle.Render("stale"), PathStyle.Render(relative(location)))
	}
	for _, failure := range summary.Failures {
		fmt.Fprintf(out, "%s %s: %v\n", ErrorStyle.Render("failed"), PathStyle.Render(relative(failure.Path)), failure.Err)
	}
	if summary.Cancelled {
		fmt.Fprintln(out, WarningStyle.Render("Cancelled"))
	}
	fmt.Fprintf(out, "%s %d written (%s), %d unchanged, %d stale, %d skipped, %d failed\n",
		SuccessStyle.Render("Done."),
		len(summary.Written), humanize.Bytes(uint64(summary.Bytes)),
		len(summary.Unchanged), len(summary.Stale), len(summary.Skipped), len(summary.Failures))
}
