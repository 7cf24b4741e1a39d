package config

import (
	"errors"
	"os"
	"path/filepath"
)

const defaultGlobalConfig = `# wt configuration
#
# This file holds your global defaults. A repository can override or
# extend it with a .wt.toml file at its root: scalar values and
# settings from .wt.toml win, hook lists run global-first.

# Where new worktrees are created. Relative paths are inside the repo.
# Available placeholders:
#   {branch}     - branch name (slashes become hyphens)
#   {project}    - repository name
#   {date}       - today as YYYY-MM-DD
#   {short_hash} - first 7 chars of HEAD
# worktree_dir = ".worktrees/{branch}"

# Used instead of worktree_dir when the in-repo location is declined.
# worktree_dir_fallback = "~/.worktrees/{project}/{branch}"

# [settings]
# auto_cleanup = true     # prune stale worktree metadata after delete
# confirm_delete = true   # ask before removing a worktree
# track_remote = true     # set upstream when the branch exists on origin

# Hooks run at lifecycle events: post_create, pre_switch, post_delete.
# They execute in order; project hooks run after global ones.
#
# [[hooks.post_create]]
# name = "Install dependencies"
# command = "npm install"
# working_dir = "{path}"   # default
# timeout = 300            # seconds, default
# on_failure = "abort"     # abort, continue, or warn
#
# [[hooks.post_create]]
# name = "Copy env file"
# command = "cp {project}.env .env || true"
# on_failure = "warn"
# [hooks.post_create.env]
# BRANCH_TAG = "{branch}-{date}"
#
# Hook commands, working_dir, and env values support the placeholders
# listed above plus {path}, the absolute worktree path. Unknown
# {tokens} are left untouched.
`

const defaultProjectConfig = `# wt project configuration (.wt.toml)
#
# Overrides and extends the global ~/.config/wt/config.toml for this
# repository only. Scalars and settings here win; hooks here run after
# the global hooks for the same event.

# worktree_dir = ".worktrees/{branch}"

# [settings]
# confirm_delete = false

# [[hooks.post_create]]
# name = "Install dependencies"
# command = "make setup"
# on_failure = "abort"
`

// Init writes a commented starter config to path.
// If force is false and the file exists, an error is returned.
func Init(path string, global, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	content := defaultProjectConfig
	if global {
		content = defaultGlobalConfig
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
