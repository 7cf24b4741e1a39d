package worktree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/easydaniel/wt-tools/internal/hooks"
)

func TestResolvePath(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}

	hctx := hooks.Context{
		Branch:  "feature-login",
		Project: "shop",
	}
	repoRoot := "/work/shop"

	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{
			name:    "relative pattern joins repo root",
			pattern: ".worktrees/{branch}",
			want:    "/work/shop/.worktrees/feature-login",
		},
		{
			name:    "home pattern",
			pattern: "~/.worktrees/{project}/{branch}",
			want:    filepath.Join(home, ".worktrees", "shop", "feature-login"),
		},
		{
			name:    "absolute pattern kept",
			pattern: "/srv/trees/{project}",
			want:    "/srv/trees/shop",
		},
		{
			name:    "cleaned",
			pattern: ".worktrees//{branch}/.",
			want:    "/work/shop/.worktrees/feature-login",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ResolvePath(tt.pattern, hctx, repoRoot)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ResolvePath(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestIsInsideRepo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"/work/shop/.worktrees/x", true},
		{"/work/shop", true},
		{"/work/other", false},
		{"/home/user/.worktrees/shop/x", false},
	}

	for _, tt := range tests {
		if got := IsInsideRepo(tt.path, "/work/shop"); got != tt.want {
			t.Errorf("IsInsideRepo(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
