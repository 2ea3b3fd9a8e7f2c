// Command ngtool regenerates module index files of an Angular workspace.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// options holds global flags
type options struct {
	verbose bool
	config  string
	root    string
	dotEnv  bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "ngtool",
		Short: "Module index generator for Angular workspaces",
		Long: TitleStyle.Render("ngtool") + SubtitleStyle.Render(" - module index generator") + `

ngtool finds every *.module.ts file in a workspace and writes a
<name>.index.ts next to it, aggregating the DECLARATIONS and STATES
exported by the index.ts files that belong to the module.

` + SubtitleStyle.Render("Examples:") + `
  ngtool generate               Regenerate all index files
  ngtool generate --check       Report stale index files without writing
  ngtool scaffold src/app foo   Create a component skeleton
  ngtool config show            Show resolved configuration`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.config, "config", "", "config file (default is <root>/ngtooling.{json,yaml,yml})")
	rootCmd.PersistentFlags().StringVar(&opts.root, "root", "", "workspace root (default is detected from the working directory)")
	rootCmd.PersistentFlags().BoolVar(&opts.dotEnv, "dotenv", true, "load <root>/.env before reading environment overrides")

	rootCmd.AddCommand(newGenerateCommand(opts))
	rootCmd.AddCommand(newScaffoldCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))
	return rootCmd
}

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// newLogger creates the stderr logger; verbose enables debug output
func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "ngtool"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Execute runs the root command, exiting with the code carried by an ExitError
func Execute() {
	if err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
