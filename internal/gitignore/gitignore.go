// Package gitignore manages the repository's .gitignore entries for
// in-repo worktree directories.
package gitignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsIgnored reports whether pattern already appears in the repo's
// .gitignore as an exact (trimmed) line. Comments don't count.
func IsIgnored(repoRoot, pattern string) (bool, error) {
	data, err := os.ReadFile(filepath.Join(repoRoot, ".gitignore"))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	want := strings.TrimSpace(pattern)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == want {
			return true, nil
		}
	}
	return false, nil
}

// Missing filters patterns down to the ones not yet in .gitignore.
func Missing(repoRoot string, patterns []string) ([]string, error) {
	var missing []string
	for _, p := range patterns {
		ignored, err := IsIgnored(repoRoot, p)
		if err != nil {
			return nil, err
		}
		if !ignored {
			missing = append(missing, p)
		}
	}
	return missing, nil
}

// Add appends patterns to the repo's .gitignore, creating the file if
// needed, with a "# comment" header line before the new block.
// Patterns already present are skipped.
func Add(repoRoot string, patterns []string, comment string) error {
	missing, err := Missing(repoRoot, patterns)
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}

	path := filepath.Join(repoRoot, ".gitignore")
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	var block strings.Builder
	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		block.WriteString("\n")
	}
	if comment != "" {
		fmt.Fprintf(&block, "# %s\n", comment)
	}
	for _, p := range missing {
		block.WriteString(p + "\n")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(block.String())
	return err
}

// EnsureIgnored makes sure patterns are in .gitignore, asking through
// confirm before writing. Returns true when all patterns end up
// ignored, false when the user declined.
func EnsureIgnored(repoRoot string, patterns []string, comment string, confirm func(prompt string) bool) (bool, error) {
	missing, err := Missing(repoRoot, patterns)
	if err != nil {
		return false, err
	}
	if len(missing) == 0 {
		return true, nil
	}

	prompt := fmt.Sprintf("Add %s to .gitignore?", strings.Join(missing, ", "))
	if !confirm(prompt) {
		return false, nil
	}

	if err := Add(repoRoot, missing, comment); err != nil {
		return false, err
	}
	return true, nil
}
