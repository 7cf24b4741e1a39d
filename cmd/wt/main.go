package main

import (
	"fmt"
	"runtime"
)

// Release information, injected at build time by goreleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	Execute()
}

func versionString() string {
	return fmt.Sprintf("wt %s (commit %s, built %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}
