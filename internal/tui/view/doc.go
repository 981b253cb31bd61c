// Package view renders the parts of the search box below the input: the
// status row, the result list with highlighted matches, and the selected
// value line.
//
// Each renderer takes a small state struct holding only what it needs, so
// rendering stays independent of the Bubble Tea model and is easy to test.
//
//	out := view.RenderResults(view.ResultsState{
//	    Items:      state.Results,
//	    Query:      state.Term,
//	    Cursor:     -1,
//	    MaxVisible: 8,
//	    Width:      80,
//	}, styles.Default())
package view
