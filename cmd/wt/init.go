package main

import (
	"github.com/spf13/cobra"

	"github.com/easydaniel/wt-tools/internal/config"
	"github.com/easydaniel/wt-tools/internal/gitignore"
	"github.com/easydaniel/wt-tools/internal/log"
)

func runInit(cmd *cobra.Command, global, force bool) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)

	if global {
		path, err := config.GlobalPath()
		if err != nil {
			return err
		}
		if err := config.Init(path, true, force); err != nil {
			return err
		}
		l.Printf("Created %s\n", path)
		return nil
	}

	rc, err := loadRepoContext(ctx)
	if err != nil {
		return err
	}

	path := config.ProjectPath(rc.repoRoot)
	if err := config.Init(path, false, force); err != nil {
		return err
	}
	l.Printf("Created %s\n", path)

	// The default worktree_dir lives inside the repo, offer to ignore it.
	_, err = gitignore.EnsureIgnored(rc.repoRoot, []string{".worktrees/"}, "wt worktrees", func(prompt string) bool {
		answer, err := askConfirm(prompt)
		return err == nil && answer
	})
	return err
}
