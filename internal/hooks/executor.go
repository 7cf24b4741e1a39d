package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/easydaniel/wt-tools/internal/config"
)

// MaxCaptureBytes bounds how much of each output stream is kept.
const MaxCaptureBytes = 64 * 1024

// Outcome is the record of one hook execution.
type Outcome struct {
	HookName  string
	Command   string // command after substitution
	Succeeded bool
	ExitCode  int // -1 when no exit status was observed (timeout, spawn failure)
	TimedOut  bool
	Stdout    string
	Stderr    string
	Truncated bool // either stream hit MaxCaptureBytes
	Duration  time.Duration
}

// limitBuffer keeps at most max bytes and remembers whether anything
// was dropped. Write never fails so the subprocess is never
// back-pressured by a full capture.
type limitBuffer struct {
	buf       bytes.Buffer
	max       int
	truncated bool
}

func (b *limitBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if remaining := b.max - b.buf.Len(); remaining > 0 {
		if len(p) > remaining {
			p = p[:remaining]
			b.truncated = true
		}
		b.buf.Write(p)
	} else if n > 0 {
		b.truncated = true
	}
	return n, nil
}

// Execute runs a single hook and always returns an Outcome, never
// panics or crashes the process: every failure mode (missing working
// directory, spawn error, non-zero exit, timeout) is folded into the
// outcome.
//
// The command runs via `sh -c` in its own process group. When the
// hook's timeout elapses the whole group is killed, so children spawned
// by the hook don't outlive it.
func Execute(ctx context.Context, hook config.Hook, hctx Context) Outcome {
	outcome := Outcome{HookName: hook.Name, ExitCode: -1}
	start := time.Now()

	workDir, err := resolveWorkDir(hook.WorkingDir, hctx)
	if err != nil {
		outcome.Stderr = err.Error()
		outcome.Duration = time.Since(start)
		return outcome
	}

	env := os.Environ()
	extra := make(map[string]string, len(hook.Env))
	for key, value := range hook.Env {
		substituted := Substitute(value, hctx, nil)
		extra[key] = substituted
		// Appended after os.Environ(), so the hook env wins on collision.
		env = append(env, key+"="+substituted)
	}

	command := Substitute(hook.Command, hctx, extra)
	outcome.Command = command

	timeout := time.Duration(hook.Timeout) * time.Second
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stdout := &limitBuffer{max: MaxCaptureBytes}
	stderr := &limitBuffer{max: MaxCaptureBytes}

	cmd := exec.Command("sh", "-c", command)
	cmd.Dir = workDir
	cmd.Env = env
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		outcome.Stderr = err.Error()
		outcome.Duration = time.Since(start)
		return outcome
	}

	waitDone := make(chan error, 1)
	go func() { waitDone <- cmd.Wait() }()

	select {
	case err := <-waitDone:
		outcome.Duration = time.Since(start)
		if err == nil {
			outcome.Succeeded = true
			outcome.ExitCode = 0
		} else {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				outcome.ExitCode = exitErr.ExitCode()
			}
		}
	case <-runCtx.Done():
		killProcessGroup(cmd)
		<-waitDone
		outcome.Duration = time.Since(start)
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			outcome.TimedOut = true
		}
	}

	outcome.Stdout = stdout.buf.String()
	outcome.Stderr = stderr.buf.String()
	outcome.Truncated = stdout.truncated || stderr.truncated
	return outcome
}

// resolveWorkDir substitutes placeholders into the working_dir pattern,
// expands ~, and verifies the directory exists. A missing directory is
// reported as an error so the hook fails cleanly instead of surfacing
// an opaque shell message.
func resolveWorkDir(pattern string, hctx Context) (string, error) {
	dir := Substitute(pattern, hctx, nil)

	if dir == "~" || len(dir) >= 2 && dir[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~ in working_dir: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("working directory does not exist: %s", dir)
		}
		return "", fmt.Errorf("working directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("working directory is not a directory: %s", dir)
	}
	return dir, nil
}
