package tui

import (
	"fmt"
	"time"

	tuimsg "github.com/Iron-Ham/searchbox/internal/tui/msg"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// noticeTTL is how long a transient notice stays on screen.
const noticeTTL = 4 * time.Second

// Init starts the cursor blink and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(0, msg.Width-lipgloss.Width(m.input.Prompt)-1)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tuimsg.StateChangedMsg:
		m.syncState()
		return m, nil

	case tuimsg.LookupFailedMsg:
		if gen := m.ctrl.State().Generation; isStaleFailure(msg.Err, gen) {
			m.logger.Debug("stale lookup failure dropped", "generation", gen, "error", msg.Err.Error())
			return m, nil
		}
		m.err = msg.Err
		return m, nil

	case tuimsg.CatalogLoadedMsg:
		return m, tuimsg.ReplaceCatalog(m.source, msg.Catalog)

	case tuimsg.CatalogReplacedMsg:
		if msg.Err != nil {
			m.logger.Warn("catalog replace failed", "path", msg.Path, "error", msg.Err.Error())
			return m.setNotice(fmt.Sprintf("catalog reload failed: %v", msg.Err), true)
		}
		m.logger.Info("catalog reloaded", "path", msg.Path, "items", msg.Items)
		return m.setNotice(fmt.Sprintf("Catalog reloaded (%d names)", msg.Items), false)

	case tuimsg.ErrMsg:
		return m.setNotice(msg.Err.Error(), true)

	case tuimsg.ClearNoticeMsg:
		if msg.ID == m.noticeID {
			m.notice = ""
			m.noticeErr = false
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey routes a key press. Bound keys drive the controller; everything
// else edits the input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.ctrl.Clear()
		m.cursor = -1
		m.syncState()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if m.cursor >= 0 && m.cursor < len(m.state.Results) {
			m.ctrl.Select(m.state.Results[m.cursor])
		} else {
			m.ctrl.Submit()
		}
		m.cursor = -1
		m.syncState()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.ctrl.InputChange(value)
		m.cursor = -1
		m.syncState()
	}
	return m, cmd
}

// moveCursor moves the highlighted row by delta, wrapping around the list.
// The first move from "no row" lands on the first or last row.
func (m *Model) moveCursor(delta int) {
	n := len(m.state.Results)
	if n == 0 {
		m.cursor = -1
		return
	}
	if m.cursor < 0 {
		if delta > 0 {
			m.cursor = 0
		} else {
			m.cursor = n - 1
		}
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

// setNotice shows a transient message and schedules its removal.
func (m Model) setNotice(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.noticeID++
	m.notice = text
	m.noticeErr = isErr
	return m, tuimsg.ClearNoticeAfter(m.noticeID, noticeTTL)
}
