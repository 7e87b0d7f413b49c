package form

// Event carries what an input reported: the text of a text input or select,
// and the checked state of a checkbox or radio button.
type Event struct {
	Value   string
	Checked bool
}

// TextEvent is the event of a text input or select.
func TextEvent(value string) Event {
	return Event{Value: value}
}

// CheckEvent is the event of a checkbox.
func CheckEvent(checked bool) Event {
	return Event{Checked: checked}
}

// Handler consumes one UI event.
type Handler func(Event)

// Props bundles what a text input needs: its value and the change and blur
// handlers. Change updates silently, blur touches and validates.
type Props struct {
	Value    string
	OnChange Handler
	OnBlur   Handler
}
