package scenario

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/modules/listitem"
	"github.com/dmitrymomot/formkit/modules/profile"
	"github.com/dmitrymomot/formkit/modules/selection"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formvalue"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Config tunes a run. A policy named by the scenario wins over Policy.
type Config struct {
	Policy     form.Policy
	PriceDelay time.Duration
	Logger     *slog.Logger
}

// Rejection is an event the form refused without failing the run.
type Rejection struct {
	Step  int    `yaml:"step"`
	Kind  Kind   `yaml:"kind"`
	Error string `yaml:"error"`
}

// Result is the state of the form once every event was applied.
type Result struct {
	Form     string      `yaml:"form"`
	Revision uint64      `yaml:"revision"`
	Page     any         `yaml:"page"`
	Saved    any         `yaml:"saved,omitempty"`
	Flash    string      `yaml:"flash,omitempty"`
	Rejected []Rejection `yaml:"rejected,omitempty"`
}

type target interface {
	apply(ctx context.Context, ev Event) error
	close() error
	snapshot(res *Result)
}

// Run replays sc and returns the final state. It fails on malformed
// events; refused submits and adds are listed in Result.Rejected.
func Run(ctx context.Context, sc *Scenario, cfg Config) (*Result, error) {
	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Form(sc.Form))

	policy := cfg.Policy
	if sc.Policy != "" {
		p, err := form.ParsePolicy(sc.Policy)
		if err != nil {
			return nil, err
		}
		policy = p
	}

	t, err := newTarget(sc, policy, cfg.PriceDelay, log)
	if err != nil {
		return nil, err
	}

	res := &Result{Form: sc.Form}
	for i, ev := range sc.Events {
		stepCtx := logger.WithStep(ctx, i)
		err := t.apply(stepCtx, ev)
		switch {
		case err == nil:
			log.DebugContext(stepCtx, "event applied", slog.String("kind", string(ev.Kind)))
		case errors.Is(err, form.ErrInvalidForm), errors.Is(err, selection.ErrColumnFull):
			log.InfoContext(stepCtx, "event rejected", logger.Error(err))
			res.Rejected = append(res.Rejected, Rejection{Step: i, Kind: ev.Kind, Error: err.Error()})
		default:
			_ = t.close()
			return nil, fmt.Errorf("scenario: event %d (%s): %w", i, ev.Kind, err)
		}
	}

	if err := t.close(); err != nil {
		return nil, err
	}
	t.snapshot(res)
	return res, nil
}

func newTarget(sc *Scenario, policy form.Policy, delay time.Duration, log *slog.Logger) (target, error) {
	switch sc.Form {
	case FormProfile:
		return newProfileTarget(sc, policy, log)
	case FormListItem:
		return newListItemTarget(sc, policy, log)
	case FormSelection:
		return newSelectionTarget(sc, policy, delay, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownForm, sc.Form)
	}
}

func textInput[R any](d *form.Dispatcher[R], fv *formvalue.Value[string], ev Event) {
	commit := ev.Kind == KindBlur
	d.Input(fv, commit, commit)(form.TextEvent(ev.Value))
}

type profileTarget struct {
	f     *profile.Form
	saved *profile.Data
	flash string
}

func newProfileTarget(sc *Scenario, policy form.Policy, log *slog.Logger) (*profileTarget, error) {
	var (
		data    profile.Data
		initial *profile.Data
	)
	ok, err := sc.initial(&data)
	if err != nil {
		return nil, err
	}
	if ok {
		initial = &data
	}

	t := &profileTarget{}
	t.f = profile.New(initial,
		profile.WithPolicy(policy),
		profile.WithLogger(log),
		profile.WithSave(func(_ context.Context, d profile.Data) error {
			t.saved = &d
			return nil
		}),
		profile.WithFlash(func(msg string) { t.flash = msg }),
	)
	return t, nil
}

func (t *profileTarget) apply(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case KindChange, KindBlur:
		if fv, ok := t.f.Text(ev.Field); ok {
			textInput(t.f.Dispatcher(), fv, ev)
			return nil
		}
		if fv, ok := t.f.Check(ev.Field); ok {
			commit := ev.Kind == KindBlur
			t.f.Dispatcher().Checkbox(fv, commit, commit)(form.CheckEvent(ev.Checked))
			return nil
		}
		return fmt.Errorf("%w: %q", ErrUnknownField, ev.Field)
	case KindSubmit:
		_, err := t.f.Submit(ctx)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, ev.Kind)
	}
}

func (t *profileTarget) close() error { return t.f.Close() }

func (t *profileTarget) snapshot(res *Result) {
	res.Revision = t.f.Dispatcher().Revision()
	t.f.Read(func(p *profile.PageData) { res.Page = p })
	if t.saved != nil {
		res.Saved = t.saved
	}
	res.Flash = t.flash
}

type listItemTarget struct {
	f     *listitem.Form
	saved *listitem.Item
	flash string
}

func newListItemTarget(sc *Scenario, policy form.Policy, log *slog.Logger) (*listItemTarget, error) {
	var (
		item    listitem.Item
		initial *listitem.Item
	)
	ok, err := sc.initial(&item)
	if err != nil {
		return nil, err
	}
	if ok {
		initial = &item
	}

	t := &listItemTarget{}
	t.f = listitem.New(initial,
		listitem.WithPolicy(policy),
		listitem.WithLogger(log),
		listitem.WithSave(func(_ context.Context, it listitem.Item) error {
			t.saved = &it
			return nil
		}),
		listitem.WithFlash(func(msg string) { t.flash = msg }),
	)
	return t, nil
}

func (t *listItemTarget) apply(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case KindChange, KindBlur:
		fv, ok := t.f.Text(ev.Field)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, ev.Field)
		}
		textInput(t.f.Dispatcher(), fv, ev)
		return nil
	case KindSubmit:
		_, err := t.f.Submit(ctx)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, ev.Kind)
	}
}

func (t *listItemTarget) close() error { return t.f.Close() }

func (t *listItemTarget) snapshot(res *Result) {
	res.Revision = t.f.Dispatcher().Revision()
	t.f.Read(func(p *listitem.PageData) { res.Page = p })
	if t.saved != nil {
		res.Saved = t.saved
	}
	res.Flash = t.flash
}

type selectionTarget struct {
	g     *selection.Grid
	saved []selection.Data
}

func newSelectionTarget(sc *Scenario, policy form.Policy, delay time.Duration, log *slog.Logger) (*selectionTarget, error) {
	var columns []selection.Data
	if _, err := sc.initial(&columns); err != nil {
		return nil, err
	}
	options := sc.Options
	if len(options) == 0 {
		options = DefaultOptions()
	}

	t := &selectionTarget{}
	t.g = selection.NewGrid(options, columns,
		selection.WithPolicy(policy),
		selection.WithDelay(delay),
		selection.WithLogger(log),
		selection.WithSave(func(_ context.Context, d []selection.Data) error {
			t.saved = d
			return nil
		}),
	)
	return t, nil
}

func (t *selectionTarget) rowID(ev Event) (uuid.UUID, error) {
	ids, err := t.g.RowIDs(ev.Column)
	if err != nil {
		return uuid.Nil, err
	}
	if ev.Row < 0 || ev.Row >= len(ids) {
		return uuid.Nil, fmt.Errorf("%w: column %d row %d", ErrRowIndex, ev.Column, ev.Row)
	}
	return ids[ev.Row], nil
}

func (t *selectionTarget) apply(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case KindAdd:
		_, err := t.g.Add(ev.Column)
		return err
	case KindWait:
		return t.g.Wait()
	case KindSubmit:
		_, err := t.g.Submit(ctx)
		return err
	}

	id, err := t.rowID(ev)
	if err != nil {
		return err
	}

	switch ev.Kind {
	case KindRemove:
		return t.g.Remove(ev.Column, id)
	case KindPrice:
		return t.g.UpdatePrice(ev.Column, id)
	case KindChange, KindBlur:
		err := t.g.Input(ev.Column, id, ev.Field, ev.Value, ev.Kind == KindBlur)
		if errors.Is(err, selection.ErrUnknownField) {
			return fmt.Errorf("%w: %q", ErrUnknownField, ev.Field)
		}
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, ev.Kind)
	}
}

func (t *selectionTarget) close() error { return t.g.Close() }

func (t *selectionTarget) snapshot(res *Result) {
	res.Revision = t.g.Dispatcher().Revision()
	t.g.Read(func(p *selection.PageData) { res.Page = p })
	if t.saved != nil {
		res.Saved = t.saved
	}
}
