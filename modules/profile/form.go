package profile

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formvalue"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// SavedMessage is flashed after a successful save.
const SavedMessage = "Profile saved"

// Form is a mounted profile editor.
type Form struct {
	page  *PageData
	d     *form.Dispatcher[PageData]
	save  form.SaveFunc[Data]
	flash form.FlashFunc
	log   *slog.Logger
}

// Option configures a Form.
type Option func(*Form)

func WithSave(save form.SaveFunc[Data]) Option {
	return func(f *Form) { f.save = save }
}

func WithFlash(flash form.FlashFunc) Option {
	return func(f *Form) { f.flash = flash }
}

// WithPolicy selects which errors make the page invalid.
func WithPolicy(p form.Policy) Option {
	return func(f *Form) { f.page.Policy = p }
}

func WithReadonly(readonly bool) Option {
	return func(f *Form) { f.page.Readonly = readonly }
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// New mounts the form for a stored profile (nil for a blank one) and runs
// an initial validation so the submit state is known before any input.
func New(initial *Data, opts ...Option) *Form {
	f := &Form{page: NewPageData(initial), log: logger.Discard()}
	for _, opt := range opts {
		opt(f)
	}

	f.d = form.New(f.page, Validate, form.WithName("profile"), form.WithLogger(f.log))
	_ = f.d.Validate()
	return f
}

// Dispatcher returns the event dispatcher owning the page.
func (f *Form) Dispatcher() *form.Dispatcher[PageData] {
	return f.d
}

// Text returns the text field called name for binding handlers.
func (f *Form) Text(name string) (*formvalue.Value[string], bool) {
	return f.page.Text(name)
}

// Check returns the checkbox called name for binding handlers.
func (f *Form) Check(name string) (*formvalue.Value[bool], bool) {
	return f.page.Check(name)
}

// Read gives fn consistent read access to the page.
func (f *Form) Read(fn func(p *PageData)) {
	f.d.Read(fn)
}

// Submit saves the profile when the page is valid. An invalid page yields
// form.ErrInvalidForm joined with the field errors and save is not called.
func (f *Form) Submit(ctx context.Context) (Data, error) {
	rec, err := form.Submit(ctx, f.d, checkPage, (*PageData).Record, f.save)
	if err != nil {
		f.log.DebugContext(ctx, "profile not saved", logger.Error(err))
		return rec, err
	}

	_ = f.d.Update(func(p *PageData) { p.Message = SavedMessage })
	if f.flash != nil {
		f.flash(SavedMessage)
	}
	f.log.InfoContext(ctx, "profile saved")
	return rec, nil
}

func checkPage(p *PageData) error {
	if !p.Invalid {
		return nil
	}
	return p.Fields().Err(p.Policy)
}

// Close unmounts the form.
func (f *Form) Close() error {
	return f.d.Close()
}
