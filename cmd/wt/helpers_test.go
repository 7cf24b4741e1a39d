package main

import (
	"strings"
	"testing"

	"github.com/easydaniel/wt-tools/internal/config"
	"github.com/easydaniel/wt-tools/internal/git"
)

func TestIgnorePatternFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		repoRoot string
		want     string
	}{
		{"/repo/.worktrees/feature-x", "/repo", ".worktrees/"},
		{"/repo/trees/deep/nested", "/repo", "trees/"},
		{"/repo/direct", "/repo", "direct/"},
	}

	for _, tt := range tests {
		if got := ignorePatternFor(tt.path, tt.repoRoot); got != tt.want {
			t.Errorf("ignorePatternFor(%q, %q) = %q, want %q", tt.path, tt.repoRoot, got, tt.want)
		}
	}
}

func TestShortHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"1234567890abcdef", "1234567"},
		{"123", "123"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := shortHash(tt.in); got != tt.want {
			t.Errorf("shortHash(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeConfig_RoundTrips(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Hooks.PostCreate = []config.Hook{{
		Name:       "setup",
		Command:    "npm install",
		WorkingDir: "{path}",
		Timeout:    300,
		OnFailure:  config.FailAbort,
	}}

	encoded, err := encodeConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"worktree_dir", "[settings]", "[[hooks.post_create]]", "npm install"} {
		if !strings.Contains(encoded, want) {
			t.Errorf("encoded config missing %q:\n%s", want, encoded)
		}
	}
}

func TestUnknownBranchError(t *testing.T) {
	t.Parallel()

	worktrees := []git.Worktree{
		{Path: "/repo", Branch: "main"},
		{Path: "/repo/.worktrees/feature-login", Branch: "feature/login"},
		{Path: "/tmp/x", Branch: git.DetachedBranch},
	}

	t.Run("with suggestion", func(t *testing.T) {
		t.Parallel()
		err := unknownBranchError("featlogin", worktrees)
		if !strings.Contains(err.Error(), "did you mean") || !strings.Contains(err.Error(), "feature/login") {
			t.Errorf("error = %q, want fuzzy suggestion", err)
		}
	})

	t.Run("without suggestion", func(t *testing.T) {
		t.Parallel()
		err := unknownBranchError("zzz", worktrees)
		if strings.Contains(err.Error(), "did you mean") {
			t.Errorf("error = %q, want no suggestion", err)
		}
	})
}
