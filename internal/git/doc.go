// Package git wraps the git binary for the operations wt needs:
// repository discovery, branch queries, and worktree management.
//
// Everything shells out to git with -C <dir> targeting. Errors carry
// git's stderr so failures read like git itself reported them.
package git
