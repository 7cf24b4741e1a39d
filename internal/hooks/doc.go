// Package hooks runs user-configured lifecycle hooks.
//
// A hook is a shell command from the config, executed at one of the
// worktree lifecycle events (post_create, pre_switch, post_delete).
// Commands, working directories, and env values support {placeholder}
// substitution from the runtime [Context].
//
// [Execute] runs one hook with a timeout watchdog and bounded output
// capture; [Run] drives a whole event's hook list sequentially,
// honoring each hook's on_failure policy.
package hooks
