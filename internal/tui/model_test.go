package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/searchbox/internal/autocomplete"
	"github.com/Iron-Ham/searchbox/internal/catalog"
	"github.com/Iron-Ham/searchbox/internal/config"
	sberrors "github.com/Iron-Ham/searchbox/internal/errors"
	"github.com/Iron-Ham/searchbox/internal/source"
	tuimsg "github.com/Iron-Ham/searchbox/internal/tui/msg"
	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

type harness struct {
	t       *testing.T
	clk     *clock.Mock
	ctrl    *autocomplete.Controller
	src     *source.Memory
	updates chan struct{}
	errs    chan error
}

func newHarness(t *testing.T, fetcher autocomplete.Fetcher) (*harness, Model) {
	t.Helper()

	cat, err := catalog.Builtin(catalog.Options{})
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	h := &harness{
		t:       t,
		clk:     clock.NewMock(),
		src:     source.NewMemory(cat.Items, source.Options{}),
		updates: make(chan struct{}, 16),
		errs:    make(chan error, 16),
	}
	if fetcher == nil {
		fetcher = h.src
	}

	sel := &selection{}
	h.ctrl = autocomplete.New(fetcher, autocomplete.Options{
		Clock:    h.clk,
		OnSelect: sel.set,
		OnError:  func(err error) { h.errs <- err },
		OnUpdate: func() { h.updates <- struct{}{} },
	})
	t.Cleanup(func() { _ = h.ctrl.Close() })

	m := newModel(h.ctrl, sel, modelOptions{
		Search:   config.Default().Search,
		ShowHelp: true,
		Source:   h.src,
	})
	return h, m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(t *testing.T, m Model, k tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: k})
}

// settle lets the debounce expire, waits for the lookup to be applied and
// feeds the resulting StateChangedMsg to the model.
func (h *harness) settle(m Model) Model {
	h.t.Helper()
	h.clk.Add(autocomplete.DefaultDebounce)
	select {
	case <-h.updates:
	case <-time.After(2 * time.Second):
		h.t.Fatal("lookup was never applied")
	}
	m, _ = update(h.t, m, tuimsg.StateChangedMsg{})
	return m
}

func plainView(m Model) string {
	return ansi.Strip(m.View())
}

func TestModel_InitialView(t *testing.T) {
	_, m := newHarness(t, nil)

	out := plainView(m)
	if !strings.Contains(out, "earch...") {
		t.Errorf("initial view should show the placeholder:\n%s", out)
	}
	if strings.Contains(out, "Loading") || strings.Contains(out, "No results") {
		t.Errorf("initial view should have no status row:\n%s", out)
	}
	if strings.Contains(out, "clear") {
		t.Errorf("clear hint should be hidden while the term is empty:\n%s", out)
	}
	if m.Init() == nil {
		t.Error("Init() should start the blink and spinner")
	}
}

func TestModel_TypingShowsLoadingThenResults(t *testing.T) {
	h, m := newHarness(t, nil)

	m = typeText(t, m, "an")
	if m.state.Status != autocomplete.StatusLoading {
		t.Fatalf("status after typing = %v, want loading", m.state.Status)
	}
	if m.state.Term != "an" || m.input.Value() != "an" {
		t.Errorf("term = %q, input = %q, want \"an\"", m.state.Term, m.input.Value())
	}
	out := plainView(m)
	if !strings.Contains(out, "Loading...") {
		t.Errorf("view should show the loading message:\n%s", out)
	}
	if !strings.Contains(out, "clear") {
		t.Errorf("clear hint should show once a term is typed:\n%s", out)
	}

	m = h.settle(m)
	if m.state.Status != autocomplete.StatusIdle {
		t.Fatalf("status after lookup = %v, want idle", m.state.Status)
	}
	if len(m.state.Results) != 8 {
		t.Fatalf("len(results) = %d, want 8", len(m.state.Results))
	}
	out = plainView(m)
	for _, name := range []string{"Ander", "Andre", "Santos", "Cristiano"} {
		if !strings.Contains(out, name) {
			t.Errorf("view missing %q:\n%s", name, out)
		}
	}
	if strings.Contains(out, "Loading...") {
		t.Errorf("loading row should be gone:\n%s", out)
	}
}

func TestModel_EmptyResults(t *testing.T) {
	h, m := newHarness(t, nil)

	m = h.settle(typeText(t, m, "zzz"))
	if m.state.Status != autocomplete.StatusEmpty {
		t.Fatalf("status = %v, want empty", m.state.Status)
	}
	if out := plainView(m); !strings.Contains(out, "No results.") {
		t.Errorf("view should show the empty message:\n%s", out)
	}
}

func TestModel_SelectHighlightedRow(t *testing.T) {
	h, m := newHarness(t, nil)
	m = h.settle(typeText(t, m, "an"))

	m, _ = press(t, m, tea.KeyDown)
	m, _ = press(t, m, tea.KeyDown)
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}

	m, _ = press(t, m, tea.KeyEnter)
	if m.Selected() != "Andre" {
		t.Errorf("Selected() = %q, want %q", m.Selected(), "Andre")
	}
	if m.input.Value() != "Andre" {
		t.Errorf("input = %q, want the selected name", m.input.Value())
	}
	if m.state.HasResults() || m.cursor != -1 {
		t.Errorf("list should close after select: results=%d cursor=%d", len(m.state.Results), m.cursor)
	}
	if out := plainView(m); !strings.Contains(out, "Selected value: Andre") {
		t.Errorf("view should show the selected value:\n%s", out)
	}
}

func TestModel_EnterSubmitsTerm(t *testing.T) {
	h, m := newHarness(t, nil)
	m = h.settle(typeText(t, m, "an"))

	m, _ = press(t, m, tea.KeyEnter)
	if m.Selected() != "an" {
		t.Errorf("Selected() = %q, want the typed term", m.Selected())
	}
	if m.state.Status != autocomplete.StatusIdle || len(m.state.Results) != 0 {
		t.Errorf("state after submit = %+v, want idle without results", m.state)
	}
}

func TestModel_EnterWhileLoadingSubmits(t *testing.T) {
	_, m := newHarness(t, nil)
	m = typeText(t, m, "jul")

	m, _ = press(t, m, tea.KeyEnter)
	if m.Selected() != "jul" {
		t.Errorf("Selected() = %q, want %q", m.Selected(), "jul")
	}
	if m.state.Status != autocomplete.StatusIdle {
		t.Errorf("status = %v, want idle", m.state.Status)
	}
}

func TestModel_ClearKey(t *testing.T) {
	h, m := newHarness(t, nil)
	m = h.settle(typeText(t, m, "an"))
	m, _ = press(t, m, tea.KeyEnter)

	m, _ = press(t, m, tea.KeyEsc)
	if m.input.Value() != "" || m.state.Term != "" {
		t.Errorf("input = %q, term = %q, want both empty", m.input.Value(), m.state.Term)
	}
	if m.Selected() != "" {
		t.Errorf("Selected() = %q, want empty after clear", m.Selected())
	}
	if out := plainView(m); strings.Contains(out, "Selected value") {
		t.Errorf("selected line should be hidden after clear:\n%s", out)
	}
}

func TestModel_DeletingToBlankResets(t *testing.T) {
	h, m := newHarness(t, nil)
	m = h.settle(typeText(t, m, "a"))

	m, _ = press(t, m, tea.KeyBackspace)
	if m.state.Status != autocomplete.StatusIdle || len(m.state.Results) != 0 {
		t.Errorf("state after deleting = %+v, want initial state", m.state)
	}
	if m.keys.Clear.Enabled() {
		t.Error("clear should be disabled for a blank term")
	}

	// A whitespace-only term counts as blank
	m = typeText(t, m, "  ")
	if m.state.Status != autocomplete.StatusIdle {
		t.Errorf("status for blank term = %v, want idle", m.state.Status)
	}
}

func TestModel_MoveCursorWraps(t *testing.T) {
	h, m := newHarness(t, nil)
	m = h.settle(typeText(t, m, "jul"))

	m, _ = press(t, m, tea.KeyUp)
	if m.cursor != 1 {
		t.Errorf("first up should land on the last row, got %d", m.cursor)
	}
	m, _ = press(t, m, tea.KeyDown)
	if m.cursor != 0 {
		t.Errorf("down from the last row should wrap to 0, got %d", m.cursor)
	}
}

func TestModel_CursorResetOnTyping(t *testing.T) {
	h, m := newHarness(t, nil)
	m = h.settle(typeText(t, m, "an"))
	m, _ = press(t, m, tea.KeyDown)

	m = typeText(t, m, "d")
	if m.cursor != -1 {
		t.Errorf("cursor = %d, want -1 after typing", m.cursor)
	}
}

func TestModel_LookupFailure(t *testing.T) {
	boom := errors.New("backend unavailable")
	h, m := newHarness(t, autocomplete.FetchFunc(func(context.Context, string) ([]autocomplete.Item, error) {
		return nil, boom
	}))

	m = typeText(t, m, "an")
	h.clk.Add(autocomplete.DefaultDebounce)

	var err error
	select {
	case err = <-h.errs:
	case <-time.After(2 * time.Second):
		t.Fatal("no error reported")
	}
	<-h.updates

	m, _ = update(t, m, tuimsg.LookupFailedMsg{Err: err})
	m, _ = update(t, m, tuimsg.StateChangedMsg{})

	if m.state.Status != autocomplete.StatusEmpty {
		t.Errorf("status = %v, want empty", m.state.Status)
	}
	if out := plainView(m); !strings.Contains(out, "backend unavailable") {
		t.Errorf("view should show the failure:\n%s", out)
	}

	// Typing again clears the error
	m = typeText(t, m, "d")
	if m.err != nil {
		t.Errorf("err = %v, want nil once a new lookup starts", m.err)
	}
}

func TestModel_StaleLookupFailure(t *testing.T) {
	boom := errors.New("backend unavailable")
	h, m := newHarness(t, autocomplete.FetchFunc(func(_ context.Context, term string) ([]autocomplete.Item, error) {
		if term == "an" {
			return nil, boom
		}
		return nil, nil
	}))

	m = typeText(t, m, "an")
	h.clk.Add(autocomplete.DefaultDebounce)
	var stale error
	select {
	case stale = <-h.errs:
	case <-time.After(2 * time.Second):
		t.Fatal("no error reported")
	}
	<-h.updates

	// The failure for "an" is delivered only after "and" came back empty.
	m = h.settle(typeText(t, m, "d"))
	m, _ = update(t, m, tuimsg.LookupFailedMsg{Err: stale})

	if m.err != nil {
		t.Errorf("err = %v, want the older failure dropped", m.err)
	}
	out := plainView(m)
	if strings.Contains(out, "backend unavailable") {
		t.Errorf("view shows a failure from an older lookup:\n%s", out)
	}
	if !strings.Contains(out, "No results.") {
		t.Errorf("view should show the empty message:\n%s", out)
	}

	// A failure of the current generation is still shown.
	m, _ = update(t, m, tuimsg.LookupFailedMsg{
		Err: sberrors.NewFetchError("and", boom).WithGeneration(m.state.Generation),
	})
	if out := plainView(m); !strings.Contains(out, "backend unavailable") {
		t.Errorf("view should show the current failure:\n%s", out)
	}
}

func TestModel_CatalogReload(t *testing.T) {
	h, m := newHarness(t, nil)

	cat := &catalog.Catalog{
		Path:  "/tmp/names.txt",
		Items: []autocomplete.Item{{ID: "1", Name: "Zelda"}},
	}
	m, cmd := update(t, m, tuimsg.CatalogLoadedMsg{Catalog: cat})
	if cmd == nil {
		t.Fatal("CatalogLoadedMsg should return a replace command")
	}
	m, clearCmd := update(t, m, cmd())
	if clearCmd == nil {
		t.Error("notice should schedule its removal")
	}
	if out := plainView(m); !strings.Contains(out, "Catalog reloaded (1 names)") {
		t.Errorf("view should show the reload notice:\n%s", out)
	}

	got, err := h.src.Fetch(context.Background(), "zel")
	if err != nil || len(got) != 1 {
		t.Errorf("source after reload: %v, %v", got, err)
	}

	// A stale clear does not remove a newer notice
	m, _ = update(t, m, tuimsg.ClearNoticeMsg{ID: m.noticeID - 1})
	if m.notice == "" {
		t.Error("stale ClearNoticeMsg removed the notice")
	}
	m, _ = update(t, m, tuimsg.ClearNoticeMsg{ID: m.noticeID})
	if m.notice != "" {
		t.Errorf("notice = %q, want cleared", m.notice)
	}
}

func TestModel_WatchErrorNotice(t *testing.T) {
	_, m := newHarness(t, nil)

	m, cmd := update(t, m, tuimsg.ErrMsg{Err: errors.New("catalog names.txt: entry 3: empty name")})
	if cmd == nil {
		t.Error("error notice should schedule its removal")
	}
	if !m.noticeErr {
		t.Error("notice should be flagged as an error")
	}
	if out := plainView(m); !strings.Contains(out, "entry 3: empty name") {
		t.Errorf("view should show the error notice:\n%s", out)
	}
}

func TestModel_HelpToggle(t *testing.T) {
	_, m := newHarness(t, nil)

	m, _ = press(t, m, tea.KeyF1)
	if !m.help.ShowAll {
		t.Error("f1 should expand the help")
	}
	m, _ = press(t, m, tea.KeyF1)
	if m.help.ShowAll {
		t.Error("f1 should collapse the help again")
	}
}

func TestModel_WindowSize(t *testing.T) {
	_, m := newHarness(t, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.width != 60 {
		t.Errorf("width = %d, want 60", m.width)
	}
	if m.input.Width <= 0 || m.input.Width >= 60 {
		t.Errorf("input width = %d, want within the window", m.input.Width)
	}
}

func TestModel_Quit(t *testing.T) {
	_, m := newHarness(t, nil)

	m, cmd := press(t, m, tea.KeyCtrlC)
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestSelection(t *testing.T) {
	var s selection
	if s.get() != "" {
		t.Errorf("zero selection = %q, want empty", s.get())
	}
	s.set("Ander")
	if s.get() != "Ander" {
		t.Errorf("get() = %q, want %q", s.get(), "Ander")
	}
}
