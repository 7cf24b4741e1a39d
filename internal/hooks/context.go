package hooks

import (
	"strings"
	"time"
)

// Context holds the runtime values for placeholder substitution.
// It is built once per command invocation and not modified afterwards.
type Context struct {
	Branch    string // branch name, slashes replaced by hyphens
	Path      string // absolute worktree path
	Project   string // repository name
	Date      string // today as YYYY-MM-DD
	ShortHash string // first 7 chars of HEAD, empty if unavailable
}

// NewContext builds a Context for the given worktree. The branch is
// sanitized so it is always safe in file system paths.
func NewContext(branch, path, project, shortHash string) Context {
	if len(shortHash) > 7 {
		shortHash = shortHash[:7]
	}
	return Context{
		Branch:    SanitizeBranch(branch),
		Path:      path,
		Project:   project,
		Date:      time.Now().Format("2006-01-02"),
		ShortHash: shortHash,
	}
}

// SanitizeBranch replaces every slash in a branch name with a hyphen,
// so "feature/login" becomes "feature-login".
func SanitizeBranch(branch string) string {
	return strings.ReplaceAll(branch, "/", "-")
}
