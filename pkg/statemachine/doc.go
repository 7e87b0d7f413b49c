// Package statemachine provides a small finite state machine.
//
// Transitions are declared once in a Table, which is immutable and can be
// shared by many machines. Each Machine tracks its own current state, so a
// form can keep one machine per dynamic row while all rows share the same
// transition rules.
//
//	table := statemachine.MustTable(
//	    statemachine.Transition{From: "idle", To: "pending", Event: "request"},
//	    statemachine.Transition{From: "pending", To: "done", Event: "complete"},
//	)
//	m := table.New("idle")
//	if err := m.Fire(ctx, "request", nil); err != nil {
//	    // statemachine.IsNoTransitionAvailableError(err)
//	}
//
// Guards can veto a transition. When several transitions share the same
// source state and event, the first one whose guards pass wins.
package statemachine
