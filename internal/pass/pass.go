// Package pass launches the pass(1) password manager with the small set of
// argument shapes the menu produces.
package pass

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/atomicstack/clip-keeper/internal/logging/events"
)

// DefaultBinary is looked up on PATH when no binary is configured.
const DefaultBinary = "pass"

// Invocation is one call of the form `pass <command> <flags> <argument>`.
type Invocation struct {
	Command  string
	Flags    string
	Argument string
}

// Show copies an existing entry to the clipboard.
func Show(entry string) Invocation {
	return Invocation{Command: "show", Flags: "-c", Argument: entry}
}

// Generate creates a new entry and copies it to the clipboard.
func Generate(name string) Invocation {
	return Invocation{Command: "generate", Flags: "-c", Argument: name}
}

// Regenerate overwrites an existing entry and copies the new value.
func Regenerate(name string) Invocation {
	return Invocation{Command: "generate", Flags: "-cf", Argument: name}
}

// Args returns the argument vector passed after the binary name.
func (i Invocation) Args() []string {
	return []string{i.Command, i.Flags, i.Argument}
}

func (i Invocation) String() string {
	return strings.Join(i.Args(), " ")
}

// ToolError reports a pass invocation that could not start or exited
// unsuccessfully.
type ToolError struct {
	Invocation Invocation
	Err        error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("pass %s: %v", e.Invocation, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// ExitCode returns the child's exit status, or -1 when it never ran to
// completion.
func (e *ToolError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Runner starts pass processes. The child gets no stdin and inherits the
// configured output streams.
type Runner struct {
	Binary   string
	StoreDir string
	Stdout   io.Writer
	Stderr   io.Writer
}

// Handle tracks a started invocation.
type Handle struct {
	invocation Invocation
	cmd        *exec.Cmd
}

// Start launches inv without waiting for it to finish.
func (r Runner) Start(inv Invocation) (*Handle, error) {
	binary := r.binary()
	cmd := exec.Command(binary, inv.Args()...)
	cmd.Stdin = nil
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if r.StoreDir != "" {
		cmd.Env = append(os.Environ(), "PASSWORD_STORE_DIR="+r.StoreDir)
	}
	if err := cmd.Start(); err != nil {
		events.Pass.Exit(inv.Args(), err)
		return nil, &ToolError{Invocation: inv, Err: err}
	}
	events.Pass.Start(binary, inv.Args(), cmd.Process.Pid)
	return &Handle{invocation: inv, cmd: cmd}, nil
}

// Run starts inv and waits for it.
func (r Runner) Run(inv Invocation) error {
	h, err := r.Start(inv)
	if err != nil {
		return err
	}
	return h.Wait()
}

func (r Runner) binary() string {
	if strings.TrimSpace(r.Binary) == "" {
		return DefaultBinary
	}
	return r.Binary
}

// Invocation returns what the handle was started with.
func (h *Handle) Invocation() Invocation {
	return h.invocation
}

// Pid returns the child's process id.
func (h *Handle) Pid() int {
	return h.cmd.Process.Pid
}

// Wait blocks until the child exits.
func (h *Handle) Wait() error {
	err := h.cmd.Wait()
	events.Pass.Exit(h.invocation.Args(), err)
	if err != nil {
		return &ToolError{Invocation: h.invocation, Err: err}
	}
	return nil
}

// Release detaches from the child without waiting for it.
func (h *Handle) Release() error {
	return h.cmd.Process.Release()
}

// LookPath verifies binary can be executed. The returned error wraps
// exec.ErrNotFound when it is missing.
func LookPath(binary string) (string, error) {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultBinary
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return "", fmt.Errorf("%s is not installed: %w", binary, err)
	}
	return path, nil
}
