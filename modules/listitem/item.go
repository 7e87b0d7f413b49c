package listitem

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formvalue"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Item is one entry of the option list.
type Item struct {
	Label    string  `json:"label" yaml:"label"`
	Value    string  `json:"value" yaml:"value"`
	MinValue float64 `json:"minValue" yaml:"minValue"`
	MaxValue float64 `json:"maxValue" yaml:"maxValue"`
	Step     float64 `json:"step" yaml:"step"`
}

const (
	FieldLabel    = "label"
	FieldValue    = "value"
	FieldMinValue = "minValue"
	FieldMaxValue = "maxValue"
	FieldStep     = "step"
)

// PageData is the root record of the item editor.
type PageData struct {
	Label    *formvalue.Value[string] `yaml:"label"`
	Value    *formvalue.Value[string] `yaml:"value"`
	MinValue *formvalue.Value[string] `yaml:"minValue"`
	MaxValue *formvalue.Value[string] `yaml:"maxValue"`
	Step     *formvalue.Value[string] `yaml:"step"`
	Message  string                   `yaml:"message"`
	Invalid  bool                     `yaml:"invalid"`

	Policy form.Policy       `yaml:"-"`
	Clock  func() time.Time `yaml:"-"`
}

// NewPageData builds the page from a stored item; nil yields empty fields.
// Numbers are shown rounded to whole units.
func NewPageData(item *Item) *PageData {
	p := &PageData{
		Label:    formvalue.String(""),
		Value:    formvalue.String(""),
		MinValue: formvalue.String(""),
		MaxValue: formvalue.String(""),
		Step:     formvalue.String(""),
	}
	if item == nil {
		return p
	}

	p.Label.Value = item.Label
	p.Value.Value = item.Value
	p.MinValue.Value = wholeText(item.MinValue)
	p.MaxValue.Value = wholeText(item.MaxValue)
	p.Step.Value = wholeText(item.Step)
	return p
}

func wholeText(n float64) string {
	return strconv.FormatFloat(math.Round(n), 'f', 0, 64)
}

var (
	validateLabel = validator.Compose(
		validator.Required("Must not be empty"),
		validator.MinLength(1)("Must be at least 1 character"),
		validator.MaxLength(5)("Must be at most 5 characters"),
	)
	validateMinValue = validator.Compose(
		validator.Required("Must not be empty"),
		validator.Numeric("Must be a number"),
		validator.Min(10)("Must be at least 10"),
		validator.Max(1000)("Must be at most 1000"),
	)
	validateStep = validator.Compose(
		validator.Required("Must not be empty"),
		validator.Numeric("Must be a number"),
		validator.Min(5)("Must be at least 5"),
		validator.Max(100)("Must be at most 100"),
	)
)

func validateMaxValue(minValue string) validator.Validator {
	return validator.Compose(
		validator.Required("Must not be empty"),
		validator.Numeric("Must be a number"),
		validator.BiggerThan(minValue)("Must be bigger than minimum"),
		validator.Min(10)("Must be at least 10"),
		validator.Max(1000)("Must be at most 1000"),
	)
}

// Validate recomputes every field error, the aggregate Invalid flag and the
// validation timestamp message.
func Validate(p *PageData) {
	formvalue.Validate(p.Label, validateLabel)
	formvalue.Validate(p.Value, nil)
	formvalue.Validate(p.MinValue, validateMinValue)
	formvalue.Validate(p.MaxValue, validateMaxValue(p.MinValue.Value))
	formvalue.Validate(p.Step, validateStep)

	p.Invalid = p.Fields().Invalid(p.Policy)
	p.Message = fmt.Sprintf("Last validated at %d", p.now().UnixMilli())
}

func (p *PageData) now() time.Time {
	if p.Clock == nil {
		return time.Now()
	}
	return p.Clock()
}

// Fields lists the validated leaves in display order.
func (p *PageData) Fields() form.Fields {
	return form.Fields{
		{Name: FieldValue, Field: p.Value},
		{Name: FieldLabel, Field: p.Label},
		{Name: FieldMinValue, Field: p.MinValue},
		{Name: FieldMaxValue, Field: p.MaxValue},
		{Name: FieldStep, Field: p.Step},
	}
}

// Record reads the plain item back off the form values.
func (p *PageData) Record() Item {
	return Item{
		Label:    p.Label.Value,
		Value:    p.Value.Value,
		MinValue: validator.ToNumber(p.MinValue.Value),
		MaxValue: validator.ToNumber(p.MaxValue.Value),
		Step:     validator.ToNumber(p.Step.Value),
	}
}

// Text returns the field called name.
func (p *PageData) Text(name string) (*formvalue.Value[string], bool) {
	switch name {
	case FieldLabel:
		return p.Label, true
	case FieldValue:
		return p.Value, true
	case FieldMinValue:
		return p.MinValue, true
	case FieldMaxValue:
		return p.MaxValue, true
	case FieldStep:
		return p.Step, true
	}
	return nil, false
}
