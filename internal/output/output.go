// Package output routes primary command output to stdout, keeping it
// separate from the diagnostics the log package sends to stderr. The
// split matters for shell integration: `cd "$(wt switch ...)"` must
// see exactly the worktree path on stdout, never progress chatter.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
)

type ctxKey struct{}

// Printer writes primary output: worktree paths, tables, and TOML
// config dumps.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer for w to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from the context, falling back to
// one writing to os.Stdout.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Print writes output without a trailing newline. Used for
// pre-rendered blocks such as tables and encoded config.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a single line, typically a worktree path.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}
