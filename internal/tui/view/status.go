package view

import (
	"github.com/Iron-Ham/searchbox/internal/autocomplete"
	"github.com/Iron-Ham/searchbox/internal/tui/styles"
)

// StatusState holds the state needed to render the row under the input.
type StatusState struct {
	Status autocomplete.Status

	// Spinner is the current spinner frame, shown before LoadingMsg
	Spinner string

	LoadingMsg string
	EmptyMsg   string

	// Err is the last failure, shown in place of the empty message
	Err error
}

// RenderStatus renders the loading or empty row. It returns "" when results
// (or nothing) should be shown instead.
func RenderStatus(state StatusState, st *styles.Styles) string {
	switch state.Status {
	case autocomplete.StatusLoading:
		if state.Spinner == "" {
			return st.Loading.Render(state.LoadingMsg)
		}
		return state.Spinner + " " + st.Loading.Render(state.LoadingMsg)
	case autocomplete.StatusEmpty:
		if state.Err != nil {
			return st.Error.Render(state.Err.Error())
		}
		return st.Empty.Render(state.EmptyMsg)
	default:
		return ""
	}
}

// RenderSelected renders the committed value line. A blank value renders
// nothing.
func RenderSelected(value string, st *styles.Styles) string {
	if value == "" {
		return ""
	}
	return st.SelectedLabel.Render("Selected value: ") + st.SelectedValue.Render(value)
}
