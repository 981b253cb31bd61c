// Package autocomplete implements the debounced search state machine behind
// the search box.
//
// A [Controller] owns the current term, the debounce timer, the lifecycle of
// lookups against an injected [Fetcher], and the derived [Status]. Callers
// drive it with user commands ([Controller.InputChange], [Controller.Select],
// [Controller.Submit], [Controller.Clear]) and read a copy of its state with
// [Controller.State].
//
// # State Machine
//
//	Idle ──(non-empty input)──▶ Loading ──(response)──▶ Idle | Empty
//	any  ──(clear, empty input, select, submit)──▶ Idle
//
// A failed lookup degrades to Empty so the state machine never stays in
// Loading.
//
// # Reconciliation
//
// Every keystroke and every terminal action bumps a generation counter. The
// debounce timer and the lookup it starts both carry the generation they were
// created for; when either completes under a newer generation it is dropped
// without touching state. The previous lookup's context is also canceled, so
// fetchers that honor ctx stop early, but correctness never depends on it:
// the last request wins, not the first response.
//
// # Callbacks
//
// OnSelect fires synchronously from Select, a qualifying Submit, Clear and an
// input change that empties the term. It is never called from the timer or a
// lookup. OnUpdate fires after a lookup response has been applied, from the
// lookup goroutine. No callback is invoked while the controller's lock is
// held, but callbacks must not call [Controller.Close].
//
// # Teardown
//
// [Controller.Close] stops the timer, cancels the in-flight lookup, waits for
// lookup goroutines to return and makes every later command a no-op.
package autocomplete
