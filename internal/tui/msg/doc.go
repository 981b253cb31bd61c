// Package msg defines the tea.Msg types exchanged between the search box
// model and the goroutines around it, and the tea.Cmd factories that produce
// them.
//
// Messages flow in two directions:
//   - from outside the Bubble Tea loop (controller hooks, catalog watcher)
//     into the model through tea.Program.Send;
//   - from async commands back into the model as their result.
package msg
