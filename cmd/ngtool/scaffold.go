package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/viant/ngtooling/scaffold"
)

func newScaffoldCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scaffold <parent> <name>",
		Short: "Create a component folder with source, template, stylesheet and index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			parent, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			if opts.root == "" {
				opts.root = parent
			}
			s, err := openSession(ctx, opts)
			if err != nil {
				return err
			}
			result, err := scaffold.New(s.fs, s.config).Create(ctx, parent, args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", SuccessStyle.Render("Created"), TitleStyle.Render(result.Component.Class))
			for _, file := range result.Files {
				fmt.Fprintf(out, "  %s\n", PathStyle.Render(file))
			}
			return nil
		},
	}
}
