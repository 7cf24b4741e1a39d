package main

import "github.com/spf13/cobra"

func newInitCmd() *cobra.Command {
	var (
		global bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Write a starter config file",
		GroupID: GroupConfig,
		Long: `Write a commented starter configuration.

By default a .wt.toml is created at the repository root; --global
writes ~/.config/wt/config.toml instead. Existing files are only
overwritten with --force.`,
		Example: `  wt init             # .wt.toml in this repo
  wt init --global    # ~/.config/wt/config.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, global, force)
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Write the global config")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
