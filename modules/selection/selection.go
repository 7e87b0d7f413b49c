package selection

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/modules/listitem"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formvalue"
	"github.com/dmitrymomot/formkit/pkg/statemachine"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Entry is one stored row.
type Entry struct {
	Selected string   `json:"selected" yaml:"selected"`
	Amount   float64  `json:"amount" yaml:"amount"`
	Price    *float64 `json:"price" yaml:"price"`
}

// Data is one stored column.
type Data struct {
	Selections []Entry `json:"selections" yaml:"selections"`
}

// Row field names.
const (
	FieldSelected = "selected"
	FieldAmount   = "amount"
)

// DefaultAmount is the amount of a newly added row.
const DefaultAmount = "15"

// Row is one editable line of a column.
type Row struct {
	ID       uuid.UUID                `yaml:"id"`
	Selected *formvalue.Value[string] `yaml:"selected"`
	Amount   *formvalue.Value[string] `yaml:"amount"`
	Price    string                   `yaml:"price"`

	status     *statemachine.Machine
	cancel     context.CancelFunc
	generation uint64
}

func newRow(e Entry) *Row {
	r := &Row{
		ID:       uuid.New(),
		Selected: formvalue.String(e.Selected),
		Amount:   formvalue.String(""),
		status:   priceStatus.New(StatusIdle),
	}
	if e.Amount != 0 {
		r.Amount.Reset(wholeText(e.Amount))
	}
	if e.Price != nil && *e.Price != 0 {
		r.Price = wholeText(*e.Price)
	}
	return r
}

// Status returns the price lifecycle state of the row.
func (r *Row) Status() statemachine.State {
	return r.status.Current()
}

// Text returns the row field called name.
func (r *Row) Text(name string) (*formvalue.Value[string], bool) {
	switch name {
	case FieldSelected:
		return r.Selected, true
	case FieldAmount:
		return r.Amount, true
	}
	return nil, false
}

func (r *Row) entry() Entry {
	e := Entry{
		Selected: r.Selected.Value,
		Amount:   validator.ToNumber(r.Amount.Value),
	}
	if r.Price != "" {
		price := validator.ToNumber(r.Price)
		e.Price = &price
	}
	return e
}

// stop cancels the pending price task of the row, if any.
func (r *Row) stop(ctx context.Context) {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	if r.status.Is(StatusPending) {
		_, _ = r.status.Fire(ctx, eventCancel, nil)
	}
}

// Column is an ordered list of rows.
type Column struct {
	Rows []*Row `yaml:"rows"`
}

func (c *Column) find(id uuid.UUID) (int, *Row) {
	for i, r := range c.Rows {
		if r.ID == id {
			return i, r
		}
	}
	return -1, nil
}

// selectedBy lists what the rows other than self picked.
func (c *Column) selectedBy(self *Row) []string {
	var taken []string
	for _, r := range c.Rows {
		if r != self {
			taken = append(taken, r.Selected.Value)
		}
	}
	return taken
}

// PageData is the root record of the grid page.
type PageData struct {
	Columns []*Column `yaml:"columns"`
	Invalid bool      `yaml:"invalid"`

	Options []listitem.Item `yaml:"-"`
	Policy  form.Policy     `yaml:"-"`
}

// NewPageData builds the grid from stored columns. Hydrated rows start
// untouched and unvalidated.
func NewPageData(options []listitem.Item, columns []Data) *PageData {
	p := &PageData{Options: options, Columns: make([]*Column, 0, len(columns))}
	for _, data := range columns {
		c := &Column{Rows: make([]*Row, 0, len(data.Selections))}
		for _, e := range data.Selections {
			c.Rows = append(c.Rows, newRow(e))
		}
		p.Columns = append(p.Columns, c)
	}
	return p
}

func (p *PageData) column(idx int) (*Column, error) {
	if idx < 0 || idx >= len(p.Columns) {
		return nil, fmt.Errorf("%w: %d", ErrColumnNotFound, idx)
	}
	return p.Columns[idx], nil
}

func (p *PageData) row(col int, id uuid.UUID) (*Row, error) {
	c, err := p.column(col)
	if err != nil {
		return nil, err
	}
	if _, r := c.find(id); r != nil {
		return r, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrRowNotFound, id)
}

func (p *PageData) optionValues() []string {
	values := make([]string, 0, len(p.Options))
	for _, o := range p.Options {
		values = append(values, o.Value)
	}
	return values
}

// AllowedSelections returns the options row may pick in column: every
// option except those picked by the other rows. The row's own choice,
// selected, stays offered. Pass "" for a row that is not in the column yet.
func AllowedSelections(options []listitem.Item, column *Column, selected string) []listitem.Item {
	forbidden := make(map[string]bool, len(column.Rows))
	for _, r := range column.Rows {
		if r.Selected.Value != selected {
			forbidden[r.Selected.Value] = true
		}
	}

	allowed := make([]listitem.Item, 0, len(options))
	for _, o := range options {
		if !forbidden[o.Value] {
			allowed = append(allowed, o)
		}
	}
	return allowed
}

var validateAmount = validator.Compose(
	validator.Required("Please enter amount"),
	validator.Numeric("must be a number"),
	validator.Min(5)("Must be at least 5"),
	validator.Max(100)("Must be less than 100"),
)

func validateSelected(options []string, taken []string) validator.Validator {
	return validator.Compose(
		validator.Required("Please select an option"),
		validator.OneOf(options...)("Unknown option"),
		validator.NotIn(taken...)("Option already selected"),
	)
}

// Validate checks every row of every column on its own, then the one
// option per column rule, and sets the aggregate Invalid flag.
func Validate(p *PageData) {
	options := p.optionValues()
	for _, c := range p.Columns {
		for _, r := range c.Rows {
			formvalue.Validate(r.Amount, validateAmount)
			formvalue.Validate(r.Selected, validateSelected(options, c.selectedBy(r)))
		}
	}
	p.Invalid = p.Fields().Invalid(p.Policy)
}

// Fields lists every row field, named column.row.field by position.
func (p *PageData) Fields() form.Fields {
	var fs form.Fields
	for ci, c := range p.Columns {
		for ri, r := range c.Rows {
			fs = append(fs,
				form.NamedField{Name: fieldPath(ci, ri, FieldSelected), Field: r.Selected},
				form.NamedField{Name: fieldPath(ci, ri, FieldAmount), Field: r.Amount},
			)
		}
	}
	return fs
}

func fieldPath(col, row int, field string) string {
	return fmt.Sprintf("%d.%d.%s", col, row, field)
}

// Records reads the stored columns back off the grid.
func (p *PageData) Records() []Data {
	out := make([]Data, 0, len(p.Columns))
	for _, c := range p.Columns {
		d := Data{Selections: make([]Entry, 0, len(c.Rows))}
		for _, r := range c.Rows {
			d.Selections = append(d.Selections, r.entry())
		}
		out = append(out, d)
	}
	return out
}

func wholeText(n float64) string {
	return strconv.FormatFloat(math.Round(n), 'f', 0, 64)
}
