package selection

import (
	"context"

	"github.com/dmitrymomot/formkit/pkg/statemachine"
)

// Pricer quotes the price of amount units of option.
type Pricer interface {
	Price(ctx context.Context, option string, amount float64) (float64, error)
}

// UnitPrice is the base price of one unit before the option multiplier.
const UnitPrice = 5

// MultiplierTable prices amount * UnitPrice * multiplier. Options missing
// from the table use a multiplier of 1.
type MultiplierTable map[string]float64

// DefaultMultipliers doubles the price of option A.
var DefaultMultipliers = MultiplierTable{"A": 2}

func (t MultiplierTable) Price(_ context.Context, option string, amount float64) (float64, error) {
	m, ok := t[option]
	if !ok {
		m = 1
	}
	return amount * UnitPrice * m, nil
}

// Price lifecycle of a row.
const (
	StatusIdle      statemachine.State = "idle"
	StatusPending   statemachine.State = "pending"
	StatusPriced    statemachine.State = "priced"
	StatusFailed    statemachine.State = "failed"
	StatusCancelled statemachine.State = "cancelled"
)

const (
	eventRequest statemachine.Event = "request"
	eventResolve statemachine.Event = "resolve"
	eventFail    statemachine.Event = "fail"
	eventCancel  statemachine.Event = "cancel"
)

var priceStatus = statemachine.MustTable(
	statemachine.Transition{From: StatusIdle, To: StatusPending, Event: eventRequest},
	statemachine.Transition{From: StatusPending, To: StatusPending, Event: eventRequest},
	statemachine.Transition{From: StatusPriced, To: StatusPending, Event: eventRequest},
	statemachine.Transition{From: StatusFailed, To: StatusPending, Event: eventRequest},
	statemachine.Transition{From: StatusCancelled, To: StatusPending, Event: eventRequest},
	statemachine.Transition{From: StatusPending, To: StatusPriced, Event: eventResolve},
	statemachine.Transition{From: StatusPending, To: StatusFailed, Event: eventFail},
	statemachine.Transition{From: StatusPending, To: StatusCancelled, Event: eventCancel},
)
