// Package scenario replays recorded UI events against a form.
//
// A scenario is a YAML document naming the form, its initial record and
// the events to apply in order:
//
//	form: profile
//	initial:
//	  email: a@b.cd
//	events:
//	  - {kind: blur, field: name, value: ""}
//	  - {kind: submit}
//
// Run drives the form through its dispatcher exactly as bound handlers
// would and returns the final page state. A submit that is rejected
// because the form is invalid is part of the outcome, not a failure of
// the run.
package scenario
