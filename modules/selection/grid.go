package selection

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/modules/listitem"
	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// DefaultDelay is how long a price quote takes unless WithDelay says otherwise.
const DefaultDelay = 3 * time.Second

// Option configures a Grid.
type Option func(*Grid)

// WithPricer replaces DefaultMultipliers.
func WithPricer(p Pricer) Option {
	return func(g *Grid) {
		if p != nil {
			g.pricer = p
		}
	}
}

// WithDelay sets the latency of a price quote. Zero quotes right away.
func WithDelay(d time.Duration) Option {
	return func(g *Grid) { g.delay = d }
}

// WithSave sets the callback Submit hands the stored columns to.
func WithSave(save form.SaveFunc[[]Data]) Option {
	return func(g *Grid) { g.save = save }
}

func WithPolicy(p form.Policy) Option {
	return func(g *Grid) { g.page.Policy = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Grid) {
		if l != nil {
			g.log = l
		}
	}
}

// quote is the outcome of one price task.
type quote struct {
	row   uuid.UUID
	price float64
	err   error
}

// Grid is a mounted selection grid.
type Grid struct {
	page   *PageData
	d      *form.Dispatcher[PageData]
	pricer Pricer
	delay  time.Duration
	save   form.SaveFunc[[]Data]
	log    *slog.Logger

	ctx  context.Context
	stop context.CancelFunc

	mu    sync.Mutex
	tasks []*async.Future[quote]
}

// NewGrid mounts a grid over options with the stored columns.
func NewGrid(options []listitem.Item, columns []Data, opts ...Option) *Grid {
	g := &Grid{
		page:   NewPageData(options, columns),
		pricer: DefaultMultipliers,
		delay:  DefaultDelay,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.ctx, g.stop = context.WithCancel(context.Background())
	g.d = form.New(g.page, Validate, form.WithName("selection"), form.WithLogger(g.log))
	_ = g.d.Validate()
	return g
}

func (g *Grid) Dispatcher() *form.Dispatcher[PageData] {
	return g.d
}

func (g *Grid) Read(fn func(p *PageData)) {
	g.d.Read(fn)
}

// update runs fn under the dispatcher and returns the error fn reported.
func (g *Grid) update(fn func(p *PageData) error) error {
	var fnErr error
	if err := g.d.Update(func(p *PageData) { fnErr = fn(p) }); err != nil {
		return err
	}
	return fnErr
}

// Add appends a row to column col that picks the first option still
// allowed there with DefaultAmount. Returns ErrColumnFull once every
// option of the column is taken.
func (g *Grid) Add(col int) (uuid.UUID, error) {
	var id uuid.UUID
	err := g.update(func(p *PageData) error {
		c, err := p.column(col)
		if err != nil {
			return err
		}
		allowed := AllowedSelections(p.Options, c, "")
		if len(c.Rows) >= len(p.Options) || len(allowed) == 0 {
			return ErrColumnFull
		}

		r := newRow(Entry{Selected: allowed[0].Value})
		r.Amount.Reset(DefaultAmount)
		c.Rows = append(c.Rows, r)
		id = r.ID

		Validate(p)
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	g.log.Debug("row added", logger.Column(col), logger.Row(id))
	return id, nil
}

// Remove deletes the row and cancels its pending price task.
func (g *Grid) Remove(col int, id uuid.UUID) error {
	err := g.update(func(p *PageData) error {
		c, err := p.column(col)
		if err != nil {
			return err
		}
		i, r := c.find(id)
		if r == nil {
			return ErrRowNotFound
		}

		r.stop(g.ctx)
		c.Rows = slices.Delete(c.Rows, i, i+1)
		Validate(p)
		return nil
	})
	if err != nil {
		return err
	}

	g.log.Debug("row removed", logger.Column(col), logger.Row(id))
	return nil
}

// Input assigns value to a row field and cancels the pending quote of the
// row. A commit (blur for the amount, any change of the option select)
// touches and validates the field and reprices the row. Options that are not configured are rejected with
// ErrUnknownOption.
func (g *Grid) Input(col int, id uuid.UUID, field, value string, commit bool) error {
	if field == FieldSelected {
		commit = true
	}

	err := g.update(func(p *PageData) error {
		r, err := p.row(col, id)
		if err != nil {
			return err
		}
		fv, ok := r.Text(field)
		if !ok {
			return ErrUnknownField
		}
		if field == FieldSelected && !slices.Contains(p.optionValues(), value) {
			return ErrUnknownOption
		}

		// Any edit outdates the quote in flight for the old values.
		r.stop(g.ctx)
		r.generation++

		fv.Value = value
		if commit {
			fv.Touch()
			Validate(p)
		}
		return nil
	})
	if err != nil || !commit {
		return err
	}
	return g.UpdatePrice(col, id)
}

// UpdatePrice schedules a price quote for the row. It does nothing while
// the amount or the option is invalid. A pending quote of the row is
// cancelled first; only the latest quote may set the price.
func (g *Grid) UpdatePrice(col int, id uuid.UUID) error {
	return g.update(func(p *PageData) error {
		r, err := p.row(col, id)
		if err != nil {
			return err
		}
		if r.Amount.HasError() || r.Selected.HasError() {
			g.log.Debug("price skipped", logger.Column(col), logger.Row(id))
			return nil
		}

		r.stop(g.ctx)
		if _, err := r.status.Fire(g.ctx, eventRequest, nil); err != nil {
			return err
		}
		r.generation++

		ctx, cancel := context.WithCancel(g.ctx)
		r.cancel = cancel

		req := priceRequest{
			col:        col,
			row:        r.ID,
			generation: r.generation,
			option:     r.Selected.Value,
			amount:     validator.ToNumber(r.Amount.Value),
		}
		g.track(async.Delay(ctx, g.delay, req, g.quote))
		return nil
	})
}

type priceRequest struct {
	col        int
	row        uuid.UUID
	generation uint64
	option     string
	amount     float64
}

func (g *Grid) quote(ctx context.Context, req priceRequest) (quote, error) {
	price, err := g.pricer.Price(ctx, req.option, req.amount)
	if err != nil {
		g.log.WarnContext(ctx, "price quote failed", logger.Column(req.col), logger.Row(req.row), logger.Error(err))
	}
	g.apply(ctx, req, price, err)
	return quote{row: req.row, price: price, err: err}, nil
}

// apply stores a finished quote unless the row is gone or was repriced since.
func (g *Grid) apply(ctx context.Context, req priceRequest, price float64, quoteErr error) {
	err := g.d.Update(func(p *PageData) {
		r, err := p.row(req.col, req.row)
		if err != nil || r.generation != req.generation || ctx.Err() != nil {
			g.log.Debug("stale price dropped", logger.Column(req.col), logger.Row(req.row))
			return
		}

		r.cancel = nil
		if quoteErr != nil {
			_, _ = r.status.Fire(ctx, eventFail, nil)
			return
		}
		r.Price = wholeText(price)
		_, _ = r.status.Fire(ctx, eventResolve, nil)
	})
	if err != nil {
		g.log.Debug("price not applied", logger.Row(req.row), logger.Error(err))
	}
}

func (g *Grid) track(f *async.Future[quote]) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tasks = append(g.tasks, f)
}

// Wait blocks until every price task scheduled so far has finished or was
// cancelled. It returns the quote errors joined together.
func (g *Grid) Wait() error {
	var errs []error
	for {
		g.mu.Lock()
		tasks := g.tasks
		g.tasks = nil
		g.mu.Unlock()

		if len(tasks) == 0 {
			return errors.Join(errs...)
		}

		// Cancelled tasks complete with a zero quote and the context error.
		quotes, _ := async.WaitAll(tasks...)
		for _, q := range quotes {
			if q.err != nil {
				errs = append(errs, q.err)
			}
		}
	}
}

// Submit saves the stored columns when no row has an error. Prices that
// are still pending are not waited for.
func (g *Grid) Submit(ctx context.Context) ([]Data, error) {
	records, err := form.Submit(ctx, g.d, checkPage, (*PageData).Records, g.save)
	if err != nil {
		g.log.DebugContext(ctx, "selection not saved", logger.Error(err))
		return records, err
	}
	g.log.InfoContext(ctx, "selection saved", slog.Int("columns", len(records)))
	return records, nil
}

func checkPage(p *PageData) error {
	return p.Fields().Err(p.Policy)
}

// Records returns the stored form of every column.
func (g *Grid) Records() []Data {
	var out []Data
	g.d.Read(func(p *PageData) { out = p.Records() })
	return out
}

// RowIDs lists the row identifiers of column col in display order.
func (g *Grid) RowIDs(col int) ([]uuid.UUID, error) {
	var (
		ids []uuid.UUID
		err error
	)
	g.d.Read(func(p *PageData) {
		var c *Column
		if c, err = p.column(col); err != nil {
			return
		}
		for _, r := range c.Rows {
			ids = append(ids, r.ID)
		}
	})
	return ids, err
}

// Allowed returns the options the row may pick.
func (g *Grid) Allowed(col int, id uuid.UUID) ([]listitem.Item, error) {
	var (
		allowed []listitem.Item
		err     error
	)
	g.d.Read(func(p *PageData) {
		var r *Row
		if r, err = p.row(col, id); err != nil {
			return
		}
		allowed = AllowedSelections(p.Options, p.Columns[col], r.Selected.Value)
	})
	return allowed, err
}

// Close cancels every pending price task and unmounts the grid.
func (g *Grid) Close() error {
	_ = g.d.Update(func(p *PageData) {
		for _, c := range p.Columns {
			for _, r := range c.Rows {
				r.stop(g.ctx)
			}
		}
	})
	g.stop()
	return g.d.Close()
}
