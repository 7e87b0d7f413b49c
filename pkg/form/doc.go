// Package form binds UI input events to form field state.
//
// A Dispatcher owns the root record of one form, e.g. a profile page, and is
// the only writer to it. Views ask the dispatcher for event handlers bound to
// a field:
//
//	d := form.New(page, profile.Validate, form.WithName("profile"))
//
//	onChange := d.Input(page.Name, false, false) // keep typing quiet
//	onBlur := d.Input(page.Name, true, true)     // reveal errors on leave
//	onChange(form.TextEvent("Ann"))
//
// Every handler call assigns the event value to the field, optionally marks
// it touched, optionally re-runs the form-level validate function against
// the whole root (so cross-field rules see current sibling values) and then
// publishes a Change to subscribers. The root pointer never changes; views
// re-render when a Change arrives:
//
//	sub := d.Subscribe(ctx)
//	for range sub.Receive(ctx) {
//	    d.Read(render)
//	}
//
// All mutation goes through one mutex, so handlers and background tasks may
// run on any goroutine.
//
// # Aggregate validity
//
// Fields describes the leaves a form checks for its aggregate flag. The
// Policy decides whether an untouched field with an error counts:
// PolicyAnyError gates submits on any error, PolicyTouched only on errors the
// user has seen.
package form
