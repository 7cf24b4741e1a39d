package hooks

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/easydaniel/wt-tools/internal/config"
	"github.com/easydaniel/wt-tools/internal/log"
	"github.com/easydaniel/wt-tools/internal/ui/progress"
	"github.com/easydaniel/wt-tools/internal/ui/styles"
)

// Status summarizes how an event's hook run went.
type Status int

const (
	StatusSucceeded Status = iota // every hook succeeded (or none configured)
	StatusWarnings                // all hooks ran, some failed under continue/warn
	StatusFailed                  // an abort hook failed, remaining hooks skipped
)

func (s Status) String() string {
	switch s {
	case StatusWarnings:
		return "succeeded-with-warnings"
	case StatusFailed:
		return "failed"
	}
	return "succeeded"
}

// Result is the record of one event's hook run. Outcomes contains one
// entry per hook actually started, in execution order.
type Result struct {
	Event    config.Event
	Outcomes []Outcome
	Status   Status
}

// Clean reports whether every hook succeeded.
func (r Result) Clean() bool { return r.Status == StatusSucceeded }

// Err converts a non-clean result into a command-level error.
func (r Result) Err() error {
	switch r.Status {
	case StatusFailed:
		return fmt.Errorf("%s hooks failed", r.Event)
	case StatusWarnings:
		return fmt.Errorf("%s hooks completed with failures", r.Event)
	}
	return nil
}

// Run executes the hooks for one event, strictly sequentially and in
// declared order. An empty list is a trivial success with no
// subprocess spawned.
//
// Failure handling follows each hook's on_failure policy: abort stops
// the run immediately, continue keeps going silently, warn keeps going
// with a printed warning.
func Run(ctx context.Context, event config.Event, hooks []config.Hook, hctx Context) Result {
	result := Result{Event: event}
	if len(hooks) == 0 {
		return result
	}

	l := log.FromContext(ctx)
	l.Printf("Running %d %s hook(s)...\n", len(hooks), event)

	for i, hook := range hooks {
		// A spinner doesn't restart after Stop, so each hook gets its own.
		spin := spinnerFor(l)
		if spin != nil {
			spin.UpdateMessage(fmt.Sprintf("[%d/%d] %s", i+1, len(hooks), hook.Name))
			spin.Start()
		}

		outcome := Execute(ctx, hook, hctx)
		result.Outcomes = append(result.Outcomes, outcome)

		if spin != nil {
			spin.Stop()
		}

		if outcome.Succeeded {
			l.Printf("  %s %s (%s)\n", styles.SuccessStyle.Render("✓"), hook.Name, formatDuration(outcome.Duration))
			continue
		}

		l.Printf("  %s %s (%s): %s\n", styles.ErrorStyle.Render("✗"), hook.Name, formatDuration(outcome.Duration), failureReason(outcome))

		switch hook.OnFailure {
		case config.FailAbort:
			printCapturedStderr(l, outcome)
			result.Status = StatusFailed
			return result
		case config.FailWarn:
			l.Warnf("hook %q failed, continuing", hook.Name)
			result.Status = StatusWarnings
		default: // continue
			result.Status = StatusWarnings
		}
	}

	return result
}

// spinnerFor returns a spinner when stderr is an interactive terminal
// and the logger isn't already narrating, nil otherwise.
func spinnerFor(l *log.Logger) *progress.Spinner {
	if l.IsVerbose() || l.Quiet() {
		return nil
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return nil
	}
	return progress.NewSpinner("")
}

func failureReason(o Outcome) string {
	if o.TimedOut {
		return "timed out"
	}
	if o.ExitCode >= 0 {
		return fmt.Sprintf("exit code %d", o.ExitCode)
	}
	return "failed to start"
}

// printCapturedStderr shows the tail of the hook's stderr so abort
// failures are diagnosable without re-running.
func printCapturedStderr(l *log.Logger, o Outcome) {
	text := strings.TrimSpace(o.Stderr)
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		l.Printf("    %s\n", styles.MutedStyle.Render(line))
	}
	if o.Truncated {
		l.Printf("    %s\n", styles.MutedStyle.Render("(output truncated)"))
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
