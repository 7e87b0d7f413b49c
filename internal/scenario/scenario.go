package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/modules/listitem"
)

// Form names.
const (
	FormProfile   = "profile"
	FormListItem  = "listitem"
	FormSelection = "selection"
)

// Kind is what happened in the UI.
type Kind string

const (
	KindChange Kind = "change"
	KindBlur   Kind = "blur"
	KindSubmit Kind = "submit"
	KindAdd    Kind = "add"
	KindRemove Kind = "remove"
	KindPrice  Kind = "price"
	KindWait   Kind = "wait"
)

// Event is one recorded UI event. Column and Row address grid rows by
// position.
type Event struct {
	Kind    Kind   `yaml:"kind"`
	Field   string `yaml:"field,omitempty"`
	Value   string `yaml:"value,omitempty"`
	Checked bool   `yaml:"checked,omitempty"`
	Column  int    `yaml:"column,omitempty"`
	Row     int    `yaml:"row,omitempty"`
}

// Scenario is a decoded scenario file.
type Scenario struct {
	Form    string          `yaml:"form"`
	Policy  string          `yaml:"policy,omitempty"`
	Initial yaml.Node       `yaml:"initial,omitempty"`
	Options []listitem.Item `yaml:"options,omitempty"`
	Events  []Event         `yaml:"events"`
}

// DefaultOptions is the option list of the selection grid when a scenario
// does not bring its own.
func DefaultOptions() []listitem.Item {
	return []listitem.Item{
		{Label: "Option A", Value: "A", MinValue: 10, MaxValue: 100, Step: 5},
		{Label: "Option B", Value: "B", MinValue: 10, MaxValue: 100, Step: 5},
		{Label: "Option C", Value: "C", MinValue: 10, MaxValue: 100, Step: 5},
	}
}

// Decode reads one scenario document from r.
func Decode(r io.Reader) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return &sc, nil
}

// Load reads the scenario file at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// initial decodes the initial record into v. It reports false when the
// scenario has none.
func (sc *Scenario) initial(v any) (bool, error) {
	if sc.Initial.Kind == 0 {
		return false, nil
	}
	if err := sc.Initial.Decode(v); err != nil {
		return false, errors.Join(ErrDecode, err)
	}
	return true, nil
}
