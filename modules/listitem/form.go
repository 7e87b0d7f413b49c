package listitem

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formvalue"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// SavedMessage is flashed after a successful save.
const SavedMessage = "Item saved"

// Form is a mounted item editor.
type Form struct {
	page  *PageData
	d     *form.Dispatcher[PageData]
	save  form.SaveFunc[Item]
	flash form.FlashFunc
	log   *slog.Logger
}

// Option configures a Form.
type Option func(*Form)

func WithSave(save form.SaveFunc[Item]) Option {
	return func(f *Form) { f.save = save }
}

func WithFlash(flash form.FlashFunc) Option {
	return func(f *Form) { f.flash = flash }
}

func WithPolicy(p form.Policy) Option {
	return func(f *Form) { f.page.Policy = p }
}

// WithClock replaces time.Now for the "Last validated at" message.
func WithClock(now func() time.Time) Option {
	return func(f *Form) { f.page.Clock = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// New mounts the editor for item (nil for a blank one) and validates it once.
func New(item *Item, opts ...Option) *Form {
	f := &Form{page: NewPageData(item), log: logger.Discard()}
	for _, opt := range opts {
		opt(f)
	}

	f.d = form.New(f.page, Validate, form.WithName("listitem"), form.WithLogger(f.log))
	_ = f.d.Validate()
	return f
}

func (f *Form) Dispatcher() *form.Dispatcher[PageData] {
	return f.d
}

// Text returns the field called name for binding handlers.
func (f *Form) Text(name string) (*formvalue.Value[string], bool) {
	return f.page.Text(name)
}

func (f *Form) Read(fn func(p *PageData)) {
	f.d.Read(fn)
}

// Submit saves the item when the page is valid and flashes SavedMessage.
func (f *Form) Submit(ctx context.Context) (Item, error) {
	item, err := form.Submit(ctx, f.d, checkPage, (*PageData).Record, f.save)
	if err != nil {
		f.log.DebugContext(ctx, "item not saved", logger.Error(err))
		return item, err
	}

	if f.flash != nil {
		f.flash(SavedMessage)
	}
	f.log.InfoContext(ctx, "item saved", slog.String("value", item.Value))
	return item, nil
}

func checkPage(p *PageData) error {
	if !p.Invalid {
		return nil
	}
	return p.Fields().Err(p.Policy)
}

func (f *Form) Close() error {
	return f.d.Close()
}
