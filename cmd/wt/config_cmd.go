package main

import "github.com/spf13/cobra"

func newConfigCmd() *cobra.Command {
	var (
		showGlobal  bool
		showProject bool
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Show the effective configuration",
		GroupID: GroupConfig,
		Long: `Show the merged effective configuration as TOML, with every
default resolved. --global or --project print one layer's file
verbatim instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, showGlobal, showProject)
		},
	}

	cmd.Flags().BoolVar(&showGlobal, "global", false, "Show the global config file")
	cmd.Flags().BoolVar(&showProject, "project", false, "Show the project config file")
	cmd.MarkFlagsMutuallyExclusive("global", "project")

	return cmd
}
