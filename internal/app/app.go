package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/clip-keeper/internal/logging"
	"github.com/atomicstack/clip-keeper/internal/logging/events"
	"github.com/atomicstack/clip-keeper/internal/menu"
	"github.com/atomicstack/clip-keeper/internal/pass"
	"github.com/atomicstack/clip-keeper/internal/store"
	"github.com/atomicstack/clip-keeper/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	StoreDir       string
	PassBinary     string
	Width          int
	Height         int
	ShowFooter     bool
	Wait           bool
	StrictPaths    bool
	SkipUnreadable bool
	ListOnly       bool
}

// Run checks the store and the pass binary, shows the menu and carries out
// whatever the session ended with.
func Run(cfg Config) error {
	st := store.New(cfg.StoreDir, cfg.SkipUnreadable, cfg.StrictPaths)
	if cfg.ListOnly {
		return List(st, os.Stdout)
	}
	if err := preflight(st, cfg.PassBinary); err != nil {
		return err
	}

	model := ui.NewModel(menu.NewMachine(st), cfg.Width, cfg.Height, cfg.ShowFooter)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}
	return Finish(model.Outcome(), runnerFor(cfg), cfg.Wait, os.Stdout)
}

func preflight(st *store.Store, binary string) error {
	err := st.Check()
	events.Store.Check(st.Root, err)
	if err != nil {
		return err
	}
	if _, err := pass.LookPath(binary); err != nil {
		return err
	}
	return nil
}

// runnerFor exports the store root to pass unless pass would find the same
// root in its own environment.
func runnerFor(cfg Config) pass.Runner {
	runner := pass.Runner{Binary: cfg.PassBinary}
	if os.Getenv("PASSWORD_STORE_DIR") != cfg.StoreDir {
		runner.StoreDir = cfg.StoreDir
	}
	return runner
}

// List writes every entry of st to w, one per line.
func List(st *store.Store, w io.Writer) error {
	err := st.Check()
	events.Store.Check(st.Root, err)
	if err != nil {
		return err
	}
	files, err := st.Files()
	if err != nil {
		return err
	}
	for _, name := range files {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	events.App.List(st.Root, len(files))
	return nil
}

// Finish prints the session's record or echo to w and starts its pass
// invocation. The child is only waited for when wait is set.
func Finish(out ui.Outcome, runner pass.Runner, wait bool, w io.Writer) error {
	if out.Err != nil {
		return out.Err
	}
	res := out.Result
	lines := 0
	switch {
	case res.Record != nil:
		fmt.Fprintln(w, res.Record.String())
		lines++
	case res.Echo != "":
		fmt.Fprintln(w, res.Echo)
		lines++
	}
	invocation := ""
	if res.Invocation != nil {
		invocation = res.Invocation.String()
	}
	events.App.Finish(lines, invocation)
	if res.Invocation == nil {
		return nil
	}
	return dispatch(runner, *res.Invocation, wait)
}

func dispatch(runner pass.Runner, inv pass.Invocation, wait bool) error {
	handle, err := runner.Start(inv)
	if err != nil {
		logging.Error(err)
		return err
	}
	if wait {
		if err := handle.Wait(); err != nil {
			logging.Error(err)
			return err
		}
		return nil
	}
	if err := handle.Release(); err != nil {
		logging.Error(fmt.Errorf("release pass %s: %w", inv, err))
	}
	return nil
}
