package hooks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/easydaniel/wt-tools/internal/config"
)

func testHook(command string) config.Hook {
	return config.Hook{
		Name:       "test",
		Command:    command,
		WorkingDir: "{path}",
		Timeout:    10,
		OnFailure:  config.FailAbort,
	}
}

func testContext(t *testing.T) Context {
	t.Helper()
	return Context{
		Branch:    "feature-x",
		Path:      t.TempDir(),
		Project:   "proj",
		Date:      "2026-08-23",
		ShortHash: "abc1234",
	}
}

func TestExecute_Success(t *testing.T) {
	t.Parallel()

	out := Execute(context.Background(), testHook("echo hello"), testContext(t))
	if !out.Succeeded {
		t.Fatalf("Succeeded = false, stderr: %s", out.Stderr)
	}
	if out.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", out.ExitCode)
	}
	if out.TimedOut {
		t.Error("TimedOut = true, want false")
	}
	if got := strings.TrimSpace(out.Stdout); got != "hello" {
		t.Errorf("Stdout = %q, want hello", got)
	}
	if out.Duration <= 0 {
		t.Error("Duration not recorded")
	}
}

func TestExecute_Failure(t *testing.T) {
	t.Parallel()

	out := Execute(context.Background(), testHook("echo oops >&2; exit 3"), testContext(t))
	if out.Succeeded {
		t.Fatal("Succeeded = true, want false")
	}
	if out.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", out.ExitCode)
	}
	if got := strings.TrimSpace(out.Stderr); got != "oops" {
		t.Errorf("Stderr = %q, want oops", got)
	}
}

func TestExecute_Timeout(t *testing.T) {
	t.Parallel()

	hook := testHook("sleep 5")
	hook.Timeout = 1

	start := time.Now()
	out := Execute(context.Background(), hook, testContext(t))
	elapsed := time.Since(start)

	if out.Succeeded {
		t.Fatal("Succeeded = true, want false")
	}
	if !out.TimedOut {
		t.Fatal("TimedOut = false, want true")
	}
	if out.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1 (no exit status on timeout)", out.ExitCode)
	}
	if elapsed > 2*time.Second {
		t.Errorf("Execute took %s, want well under 2s", elapsed)
	}
}

func TestExecute_TimeoutKillsChildren(t *testing.T) {
	t.Parallel()

	// The hook spawns a child that writes a marker after the timeout.
	// Killing the process group must prevent the marker from appearing.
	dir := t.TempDir()
	marker := filepath.Join(dir, "marker")
	hook := testHook("(sleep 3 && touch " + marker + ") & sleep 5")
	hook.Timeout = 1

	hctx := Context{Path: dir}
	out := Execute(context.Background(), hook, hctx)
	if !out.TimedOut {
		t.Fatal("TimedOut = false, want true")
	}

	time.Sleep(3 * time.Second)
	if _, err := os.Stat(marker); err == nil {
		t.Error("child process survived the process-group kill")
	}
}

func TestExecute_SubstitutesCommand(t *testing.T) {
	t.Parallel()

	hctx := testContext(t)
	out := Execute(context.Background(), testHook("echo {branch} > {path}/out.txt"), hctx)
	if !out.Succeeded {
		t.Fatalf("hook failed: %s", out.Stderr)
	}

	data, err := os.ReadFile(filepath.Join(hctx.Path, "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(data)); got != "feature-x" {
		t.Errorf("file content = %q, want feature-x", got)
	}
}

func TestExecute_EnvOverlay(t *testing.T) {
	// No t.Parallel: t.Setenv forbids it.
	t.Setenv("WT_TEST_FOO", "inherited")

	hook := testHook("echo $WT_TEST_FOO $WT_TEST_EXTRA")
	hook.Env = map[string]string{
		"WT_TEST_FOO":   "bar",
		"WT_TEST_EXTRA": "tag-{branch}",
	}

	out := Execute(context.Background(), hook, testContext(t))
	if !out.Succeeded {
		t.Fatalf("hook failed: %s", out.Stderr)
	}
	got := strings.TrimSpace(out.Stdout)
	if got != "bar tag-feature-x" {
		t.Errorf("Stdout = %q, want hook env to win and be substituted", got)
	}
}

func TestExecute_MissingWorkingDir(t *testing.T) {
	t.Parallel()

	hook := testHook("echo never runs")
	hook.WorkingDir = "/nonexistent/wt/dir"

	out := Execute(context.Background(), hook, testContext(t))
	if out.Succeeded {
		t.Fatal("Succeeded = true, want false")
	}
	if out.TimedOut {
		t.Error("TimedOut = true for missing dir")
	}
	if !strings.Contains(out.Stderr, "working directory does not exist") {
		t.Errorf("Stderr = %q, want missing-dir message", out.Stderr)
	}
}

func TestExecute_WorkingDirSubstituted(t *testing.T) {
	t.Parallel()

	hctx := testContext(t)
	sub := filepath.Join(hctx.Path, "feature-x")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	hook := testHook("pwd")
	hook.WorkingDir = "{path}/{branch}"

	out := Execute(context.Background(), hook, hctx)
	if !out.Succeeded {
		t.Fatalf("hook failed: %s", out.Stderr)
	}
	if got := strings.TrimSpace(out.Stdout); got != sub {
		t.Errorf("pwd = %q, want %q", got, sub)
	}
}

func TestExecute_OutputTruncated(t *testing.T) {
	t.Parallel()

	// ~200 KiB of output, well past the 64 KiB cap.
	out := Execute(context.Background(), testHook("head -c 200000 /dev/zero | tr '\\0' 'a'"), testContext(t))
	if !out.Succeeded {
		t.Fatalf("hook failed: %s", out.Stderr)
	}
	if !out.Truncated {
		t.Error("Truncated = false, want true")
	}
	if len(out.Stdout) != MaxCaptureBytes {
		t.Errorf("len(Stdout) = %d, want capped at %d", len(out.Stdout), MaxCaptureBytes)
	}
}

func TestLimitBuffer(t *testing.T) {
	t.Parallel()

	b := &limitBuffer{max: 4}
	n, err := b.Write([]byte("abcdef"))
	if err != nil || n != 6 {
		t.Fatalf("Write = (%d, %v), want (6, nil)", n, err)
	}
	if got := b.buf.String(); got != "abcd" {
		t.Errorf("kept %q, want abcd", got)
	}
	if !b.truncated {
		t.Error("truncated = false, want true")
	}

	// Further writes are swallowed without error.
	if n, err := b.Write([]byte("gh")); err != nil || n != 2 {
		t.Errorf("Write after full = (%d, %v), want (2, nil)", n, err)
	}
}
