package tui

import (
	"strings"

	"github.com/Iron-Ham/searchbox/internal/autocomplete"
	"github.com/Iron-Ham/searchbox/internal/tui/view"
)

// View renders the search box.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("searchbox"))
	b.WriteString("\n")
	b.WriteString(m.input.View())

	spinnerFrame := ""
	if m.state.Status == autocomplete.StatusLoading {
		spinnerFrame = m.spinner.View()
	}
	if status := view.RenderStatus(view.StatusState{
		Status:     m.state.Status,
		Spinner:    spinnerFrame,
		LoadingMsg: m.search.LoadingMsg,
		EmptyMsg:   m.search.EmptyMsg,
		Err:        m.err,
	}, m.styles); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
	}

	if m.state.HasResults() {
		b.WriteString("\n")
		b.WriteString(view.RenderResults(view.ResultsState{
			Items:      m.state.Results,
			Query:      m.state.Term,
			Cursor:     m.cursor,
			MaxVisible: m.search.MaxVisible,
			Width:      m.width,
		}, m.styles))
	}

	if selected := view.RenderSelected(m.selected, m.styles); selected != "" {
		b.WriteString("\n\n")
		b.WriteString(selected)
	}

	if m.notice != "" {
		b.WriteString("\n")
		if m.noticeErr {
			b.WriteString(m.styles.Error.Render(m.notice))
		} else {
			b.WriteString(m.styles.More.Render(m.notice))
		}
	}

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.styles.HelpBar.Render(m.help.View(m.keys)))
	}

	return b.String()
}
