package menu

import (
	"fmt"
	"path"

	"github.com/atomicstack/clip-keeper/internal/pass"
)

// Env supplies store listings, already in display form.
type Env interface {
	Files() ([]string, error)
	Directories() ([]string, error)
}

// Event is something the host reports to the machine.
type Event interface {
	Name() string
	isEvent()
}

// Autocomplete asks for the typed input to be expanded. Selected is the
// highlighted entry when HasSelected is set.
type Autocomplete struct {
	Selected    int
	HasSelected bool
}

// Confirm accepts the entry at Index.
type Confirm struct {
	Index int
}

// CustomInput submits the typed input as free text.
type CustomInput struct{}

// Cancel ends the session.
type Cancel struct{}

// Other is any host event the machine does not handle.
type Other struct {
	Kind string
}

func (Autocomplete) isEvent() {}
func (Confirm) isEvent()      {}
func (CustomInput) isEvent()  {}
func (Cancel) isEvent()       {}
func (Other) isEvent()        {}

func (Autocomplete) Name() string { return "autocomplete" }
func (Confirm) Name() string      { return "confirm" }
func (CustomInput) Name() string  { return "custom-input" }
func (Cancel) Name() string       { return "cancel" }
func (e Other) Name() string      { return "other:" + e.Kind }

// Directive tells the host what to do after an event.
type Directive int

const (
	// Reload redraws the list and replaces the input with Result.Input.
	Reload Directive = iota
	// Fallback leaves the event to the host's own handling.
	Fallback
	// Exit closes the menu. Any Invocation, Record or Echo is performed
	// afterwards.
	Exit
)

func (d Directive) String() string {
	switch d {
	case Reload:
		return "reload"
	case Fallback:
		return "fallback"
	case Exit:
		return "exit"
	}
	return "unknown"
}

// Flow names the journey a Record belongs to.
type Flow int

const (
	FlowAdd Flow = iota
	FlowChange
)

// Record confirms a choice that is completed outside the menu, such as
// entering a password by hand.
type Record struct {
	Flow      Flow
	Dir       string
	FileName  string
	EntryType EntryType
}

func (r Record) String() string {
	if r.Flow == FlowChange {
		return fmt.Sprintf("PASS_CHNG: [PASSWD_FILE_NAME: %s, PASSWD_ENTRY_TYPE: %s]", r.FileName, r.EntryType)
	}
	return fmt.Sprintf("PASS_ADD: [PASSWD_DIR: %s, PASSWD_FILE_NAME: %s, PASSWD_ENTRY_TYPE: %s]", r.Dir, r.FileName, r.EntryType)
}

// Result is the outcome of one Step.
type Result struct {
	Directive  Directive
	Input      string
	Invocation *pass.Invocation
	Record     *Record
	Echo       string
}

// State is everything carried between events.
type State struct {
	Menu           Menu
	Entries        []string
	Input          string
	PreviousOutput string
	Dir            string
	FileName       string
	EntryType      EntryType
}

// NewState returns the state a session starts in.
func NewState() State {
	return State{Menu: Initial{}, Entries: TopLevel()}
}

// EntryAt returns the entry at i.
func (s State) EntryAt(i int) (string, error) {
	if i < 0 || i >= len(s.Entries) {
		return "", fmt.Errorf("%w: %d not in [0,%d) for %s", ErrIndexOutOfRange, i, len(s.Entries), s.Menu)
	}
	return s.Entries[i], nil
}

func (s State) contains(entry string) bool {
	for _, e := range s.Entries {
		if e == entry {
			return true
		}
	}
	return false
}

// enter installs entries for m, prefixing Back where m has one, and clears
// the input buffers.
func (s State) enter(m Menu, entries []string) State {
	list := make([]string, 0, len(entries)+1)
	if HasBack(m) {
		list = append(list, Back)
	}
	s.Menu = m
	s.Entries = append(list, entries...)
	s.Input = ""
	s.PreviousOutput = ""
	return s
}

// Step applies ev to s. input is the text currently typed in the host. On
// error s is returned unchanged and the session should end.
func Step(s State, ev Event, input string, env Env) (State, Result, error) {
	next := s
	next.Input = input
	if input == "" {
		next.PreviousOutput = ""
	}

	var (
		res Result
		err error
	)
	switch ev := ev.(type) {
	case Autocomplete:
		next, res, err = autocomplete(next, ev)
	case Confirm:
		next, res, err = confirm(next, ev, env)
	case CustomInput:
		next, res, err = customInput(next)
	case Cancel:
		res = Result{Directive: Exit}
	default:
		res = Result{Directive: Fallback}
	}
	if err != nil {
		return s, Result{}, err
	}
	res.Input = next.Input
	return next, res, nil
}

func autocomplete(s State, ev Autocomplete) (State, Result, error) {
	fallback := Result{Directive: Fallback}
	if _, ok := s.Menu.(Initial); ok {
		return s, fallback, nil
	}
	if s.contains(s.Input) {
		return s, fallback, nil
	}

	candidate := s.Input
	if candidate == "" {
		if len(s.Entries) == 0 {
			return s, fallback, nil
		}
		selected := 0
		if ev.HasSelected {
			selected = ev.Selected
		}
		entry, err := s.EntryAt(selected)
		if err != nil {
			return s, Result{}, err
		}
		candidate = entry
		if entry == Back {
			if len(s.Entries) < 2 {
				return s, fallback, nil
			}
			candidate = s.Entries[1]
		}
	}

	output, ok := Complete(s.Entries, s.PreviousOutput, candidate)
	if !ok {
		return s, fallback, nil
	}
	s.Input = output
	s.PreviousOutput = withSeparator(output)
	return s, Result{Directive: Reload}, nil
}

func confirm(s State, ev Confirm, env Env) (State, Result, error) {
	selected, err := s.EntryAt(ev.Index)
	if err != nil {
		return s, Result{}, err
	}
	reload := Result{Directive: Reload}

	switch selected {
	case CopyLabel:
		files, err := env.Files()
		if err != nil {
			return s, Result{}, fmt.Errorf("list entries: %w", err)
		}
		return s.enter(CopyPass{}, files), reload, nil
	case AddLabel:
		dirs, err := env.Directories()
		if err != nil {
			return s, Result{}, fmt.Errorf("list directories: %w", err)
		}
		return s.enter(AddPass{Step: ChooseDir}, dirs), reload, nil
	case ChangeLabel:
		files, err := env.Files()
		if err != nil {
			return s, Result{}, fmt.Errorf("list entries: %w", err)
		}
		return s.enter(ChangePass{Step: ChooseFile}, files), reload, nil
	case Back:
		return s.enter(Initial{}, TopLevel()), reload, nil
	}

	switch m := s.Menu.(type) {
	case CopyPass:
		return s, invoke(pass.Show(selected)), nil
	case AddPass:
		switch m.Step {
		case ChooseDir:
			s.Dir = selected
			return s.enter(AddPass{Step: ChooseFileName}, nil), reload, nil
		case ChooseEntryType:
			if selected == GenerateLabel {
				return s, invoke(pass.Generate(path.Join(s.Dir, s.FileName))), nil
			}
			s.EntryType = UserInput
			return s, record(FlowAdd, s), nil
		}
	case ChangePass:
		switch m.Step {
		case ChooseFile:
			s.FileName = selected
			return s.enter(ChangePass{Step: ChooseNewPassEntryType}, EntryTypes()), reload, nil
		case ChooseNewPassEntryType:
			if selected == GenerateLabel {
				return s, invoke(pass.Regenerate(s.FileName)), nil
			}
			s.EntryType = UserInput
			return s, record(FlowChange, s), nil
		}
	}
	return s, Result{Directive: Exit, Echo: selected}, nil
}

func customInput(s State) (State, Result, error) {
	fallback := Result{Directive: Fallback}
	if s.Input == Back && HasBack(s.Menu) {
		return s.enter(Initial{}, TopLevel()), Result{Directive: Reload}, nil
	}

	switch m := s.Menu.(type) {
	case CopyPass:
		if s.Input == "" {
			return s, fallback, nil
		}
		return s, invoke(pass.Show(s.Input)), nil
	case AddPass:
		switch m.Step {
		case ChooseDir:
			s.Dir = s.Input
			return s.enter(AddPass{Step: ChooseFileName}, nil), Result{Directive: Reload}, nil
		case ChooseFileName:
			if s.Input == "" {
				return s, fallback, nil
			}
			s.FileName = s.Input
			return s.enter(AddPass{Step: ChooseEntryType}, EntryTypes()), Result{Directive: Reload}, nil
		}
	}
	return s, Result{Directive: Exit, Echo: s.Input}, nil
}

func invoke(inv pass.Invocation) Result {
	return Result{Directive: Exit, Invocation: &inv}
}

func record(flow Flow, s State) Result {
	return Result{Directive: Exit, Record: &Record{
		Flow:      flow,
		Dir:       s.Dir,
		FileName:  s.FileName,
		EntryType: s.EntryType,
	}}
}
