// Package journal runs journalctl for a chosen filter. Output is streamed
// through as journalctl prints it.
package journal

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/thobiasn/sieve/internal/filter"
)

// DefaultPath is the journalctl binary looked up in PATH.
const DefaultPath = "journalctl"

// Runner builds journalctl invocations.
type Runner struct {
	Path  string   // binary, DefaultPath if empty
	Extra []string // appended after the filter arguments, e.g. "-o", "short-iso"
}

// Args returns the full argument list for opts, without the binary.
func (r Runner) Args(opts filter.Options) []string {
	args := []string{"--no-pager"}
	args = append(args, opts.JournalctlArgs()...)
	return append(args, r.Extra...)
}

// Command returns the journalctl command for opts.
func (r Runner) Command(ctx context.Context, opts filter.Options) *exec.Cmd {
	path := r.Path
	if path == "" {
		path = DefaultPath
	}
	return exec.CommandContext(ctx, path, r.Args(opts)...)
}

// Run executes journalctl for opts, writing its stdout to out and stderr to
// errOut.
func (r Runner) Run(ctx context.Context, opts filter.Options, out, errOut io.Writer) error {
	cmd := r.Command(ctx, opts)
	cmd.Stdout = out
	cmd.Stderr = errOut
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("journalctl: %w", err)
	}
	return nil
}
