// Package ui renders terminal output for wt commands.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// WorktreeRow is one line of the wt list table.
type WorktreeRow struct {
	Branch string
	Path   string
	Head   string // short hash
	Status string // clean/modified, only filled in verbose mode
}

// FormatWorktreesTable renders the worktree list. With verbose a
// STATUS column is added.
func FormatWorktreesTable(rows []WorktreeRow, verbose bool) string {
	if len(rows) == 0 {
		return ""
	}

	maxBranchWidth := len("BRANCH")
	maxPathWidth := len("PATH")
	maxHeadWidth := len("HEAD")
	maxStatusWidth := len("STATUS")

	for _, r := range rows {
		if len(r.Branch) > maxBranchWidth {
			maxBranchWidth = len(r.Branch)
		}
		if len(r.Path) > maxPathWidth {
			maxPathWidth = len(r.Path)
		}
		if len(r.Head) > maxHeadWidth {
			maxHeadWidth = len(r.Head)
		}
		if len(r.Status) > maxStatusWidth {
			maxStatusWidth = len(r.Status)
		}
	}

	columns := []table.Column{
		{Title: "BRANCH", Width: maxBranchWidth + 2},
		{Title: "PATH", Width: maxPathWidth + 2},
		{Title: "HEAD", Width: maxHeadWidth + 2},
	}
	if verbose {
		columns = append(columns, table.Column{Title: "STATUS", Width: maxStatusWidth})
	}

	var tableRows []table.Row
	for _, r := range rows {
		row := table.Row{r.Branch, r.Path, r.Head}
		if verbose {
			row = append(row, r.Status)
		}
		tableRows = append(tableRows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(false),
		table.WithHeight(len(tableRows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Padding(0)
	s.Cell = lipgloss.NewStyle().Padding(0)
	s.Selected = lipgloss.NewStyle().Padding(0)
	t.SetStyles(s)

	var output strings.Builder
	output.WriteString(t.View())
	output.WriteString("\n")
	return output.String()
}
