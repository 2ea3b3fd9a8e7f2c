package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCommand(opts *options) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect ngtool configuration",
		Long: `Inspect ngtool configuration.

Configuration is read from <root>/ngtooling.{json,yaml,yml}, then
overridden by NGTOOLING_* environment variables (also from <root>/.env).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show resolved configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			source := SubtitleStyle.Render("(using defaults)")
			if s.configFile != "" {
				source = s.configFile
			}
			fmt.Fprintf(out, "%s: %s\n", PathStyle.Render("Workspace"), s.workspace.Root)
			fmt.Fprintf(out, "%s: %s\n\n", PathStyle.Render("Config file"), source)
			data, err := yaml.Marshal(s.config)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	})
	return cfgCmd
}
