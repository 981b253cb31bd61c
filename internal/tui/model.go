package tui

import (
	"sync"

	"github.com/Iron-Ham/searchbox/internal/autocomplete"
	"github.com/Iron-Ham/searchbox/internal/config"
	"github.com/Iron-Ham/searchbox/internal/errors"
	"github.com/Iron-Ham/searchbox/internal/logging"
	"github.com/Iron-Ham/searchbox/internal/tui/keymap"
	tuimsg "github.com/Iron-Ham/searchbox/internal/tui/msg"
	"github.com/Iron-Ham/searchbox/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// selection records the last value reported through the controller's
// selection callback. The callback runs synchronously inside Update, so it
// must not go through tea.Program.Send.
type selection struct {
	mu    sync.Mutex
	value string
}

func (s *selection) set(value string) {
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
}

func (s *selection) get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// modelOptions configures a Model.
type modelOptions struct {
	Search   config.SearchConfig
	Styles   *styles.Styles
	ShowHelp bool
	Source   tuimsg.Replacer
	Logger   *logging.Logger
}

// Model is the Bubble Tea model of the search box. It owns no search state of
// its own: the controller does, and the model re-reads State() after every
// command and every StateChangedMsg.
type Model struct {
	ctrl   *autocomplete.Controller
	sel    *selection
	source tuimsg.Replacer
	logger *logging.Logger

	search config.SearchConfig
	styles *styles.Styles
	keys   keymap.KeyMap

	input   textinput.Model
	spinner spinner.Model
	help    help.Model

	// Mirrors of controller state
	state    autocomplete.State
	selected string

	cursor    int   // highlighted result, -1 for none
	err       error // last lookup failure, shown while StatusEmpty
	notice    string
	noticeErr bool
	noticeID  int
	width     int
	showHelp  bool
	quitting  bool
}

func newModel(ctrl *autocomplete.Controller, sel *selection, opts modelOptions) Model {
	st := opts.Styles
	if st == nil {
		st = styles.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = opts.Search.Placeholder
	ti.PromptStyle = st.Prompt
	ti.TextStyle = st.Input
	ti.PlaceholderStyle = st.Placeholder
	ti.Cursor.Style = st.Cursor
	ti.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(st.Loading),
	)

	h := help.New()
	h.Styles.ShortKey = st.HelpKey
	h.Styles.ShortDesc = st.HelpDesc
	h.Styles.ShortSeparator = st.HelpDesc
	h.Styles.FullKey = st.HelpKey
	h.Styles.FullDesc = st.HelpDesc
	h.Styles.FullSeparator = st.HelpDesc

	m := Model{
		ctrl:     ctrl,
		sel:      sel,
		source:   opts.Source,
		logger:   logger.WithComponent("tui"),
		search:   opts.Search,
		styles:   st,
		keys:     keymap.Default(),
		input:    ti,
		spinner:  sp,
		help:     h,
		cursor:   -1,
		showHelp: opts.ShowHelp,
	}
	m.syncState()
	return m
}

// syncState copies the controller's state into the model and updates the
// key bindings that depend on it.
func (m *Model) syncState() {
	m.state = m.ctrl.State()
	m.selected = m.sel.get()

	if m.input.Value() != m.state.Term {
		m.input.SetValue(m.state.Term)
		m.input.CursorEnd()
	}
	if !m.state.HasResults() || m.cursor >= len(m.state.Results) {
		m.cursor = -1
	}
	if m.state.Status != autocomplete.StatusEmpty || isStaleFailure(m.err, m.state.Generation) {
		m.err = nil
	}

	m.keys.SetSearchActive(m.state.HasTerm())
	m.keys.SetListActive(m.state.HasResults())
}

// isStaleFailure reports whether err is a lookup failure from a generation
// other than gen.
func isStaleFailure(err error, gen uint64) bool {
	var fetchErr *errors.FetchError
	return errors.As(err, &fetchErr) && fetchErr.Generation != gen
}

// Selected returns the last committed value.
func (m Model) Selected() string {
	return m.selected
}
