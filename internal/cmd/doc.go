// Package cmd provides helpers for executing external commands with
// proper error handling.
//
// Commands are run through [RunContext] and [OutputContext], which
// capture stderr and fold it into the returned error, making failures
// informative without extra plumbing at call sites.
//
// # Design Notes
//
// The wt tool shells out to the git CLI rather than using a Go git
// library. This approach is simpler, more reliable, and ensures
// compatibility with user configurations (SSH keys, credential
// helpers, hooks, etc.).
package cmd
