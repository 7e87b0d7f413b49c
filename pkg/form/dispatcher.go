package form

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/broadcast"
	"github.com/dmitrymomot/formkit/pkg/formvalue"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// ValidateFunc recomputes every field error of a root record in place.
// It must be safe to call repeatedly.
type ValidateFunc[R any] func(root *R)

// Change tells subscribers that the form was modified.
type Change struct {
	Form     string
	Revision uint64
}

// Option configures a Dispatcher.
type Option func(*options)

type options struct {
	name       string
	log        *slog.Logger
	bufferSize int
}

// WithName sets the form name used in logs and change notifications.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithBufferSize sets how many pending changes a subscriber may queue.
func WithBufferSize(n int) Option {
	return func(o *options) { o.bufferSize = n }
}

// Dispatcher owns a form root and turns UI events into state updates.
type Dispatcher[R any] struct {
	name     string
	root     *R
	validate ValidateFunc[R]
	log      *slog.Logger
	changes  *broadcast.MemoryBroadcaster[Change]

	mu       sync.Mutex
	revision uint64
	closed   bool
}

// New creates a dispatcher for root. validate may be nil for forms without
// form-level validation.
func New[R any](root *R, validate ValidateFunc[R], opts ...Option) *Dispatcher[R] {
	o := options{name: "form", log: logger.Discard(), bufferSize: 1}
	for _, opt := range opts {
		opt(&o)
	}

	return &Dispatcher[R]{
		name:     o.name,
		root:     root,
		validate: validate,
		log:      o.log.With(logger.Form(o.name)),
		changes:  broadcast.NewMemoryBroadcaster[Change](o.bufferSize),
	}
}

// Name returns the form name.
func (d *Dispatcher[R]) Name() string {
	return d.name
}

// Input returns a handler for a text input or select bound to fv.
func (d *Dispatcher[R]) Input(fv *formvalue.Value[string], touch, validate bool) Handler {
	return func(e Event) {
		d.dispatch(func() { fv.Value = e.Value }, &fv.Touched, touch, validate)
	}
}

// Checkbox returns a handler for a checkbox bound to fv.
func (d *Dispatcher[R]) Checkbox(fv *formvalue.Value[bool], touch, validate bool) Handler {
	return func(e Event) {
		d.dispatch(func() { fv.Value = e.Checked }, &fv.Touched, touch, validate)
	}
}

// Props returns the value of fv with quiet change and validating blur handlers.
func (d *Dispatcher[R]) Props(fv *formvalue.Value[string]) Props {
	var value string
	d.Read(func(*R) { value = fv.Value })

	return Props{
		Value:    value,
		OnChange: d.Input(fv, false, false),
		OnBlur:   d.Input(fv, true, true),
	}
}

func (d *Dispatcher[R]) dispatch(assign func(), touched *bool, touch, validate bool) {
	err := d.Update(func(root *R) {
		assign()
		if touch {
			*touched = true
		}
		if validate {
			d.runValidate(root)
		}
	})
	if err != nil {
		d.log.Debug("event dropped", logger.Error(err))
	}
}

// Update runs fn against the root and notifies subscribers.
// Returns ErrClosed once the dispatcher is closed; fn is not called then.
func (d *Dispatcher[R]) Update(fn func(root *R)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}

	fn(d.root)
	d.notifyLocked()
	return nil
}

// Validate re-runs the form-level validate function and notifies subscribers.
func (d *Dispatcher[R]) Validate() error {
	return d.Update(d.runValidate)
}

// Read gives fn consistent read access to the root. fn must not keep the
// pointer or mutate the root.
func (d *Dispatcher[R]) Read(fn func(root *R)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.root)
}

// Revision returns the number of changes applied so far.
func (d *Dispatcher[R]) Revision() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.revision
}

// Subscribe returns a subscription to change notifications that ends with ctx.
func (d *Dispatcher[R]) Subscribe(ctx context.Context) broadcast.Subscriber[Change] {
	return d.changes.Subscribe(ctx)
}

// Close stops accepting events and ends all subscriptions.
func (d *Dispatcher[R]) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.mu.Unlock()

	return d.changes.Close()
}

func (d *Dispatcher[R]) runValidate(root *R) {
	if d.validate != nil {
		d.validate(root)
	}
}

func (d *Dispatcher[R]) notifyLocked() {
	d.revision++
	change := Change{Form: d.name, Revision: d.revision}
	if err := d.changes.Broadcast(context.Background(), broadcast.Message[Change]{Data: change}); err != nil {
		d.log.Debug("change not delivered", logger.Revision(d.revision), logger.Error(err))
		return
	}
	d.log.Debug("form changed", logger.Revision(d.revision))
}
