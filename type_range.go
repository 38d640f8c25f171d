package gcbook

import "fmt"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange creates a range from two dates. It returns an error when 'from' is
// after 'to': an inverted range is a user mistake to report, not to silently
// swap.
func NewRange(from, to Date) (Range, error) {
	if from.After(to) {
		return Range{}, fmt.Errorf("begin date %s is after end date %s", from, to)
	}
	return Range{From: from, To: to}, nil
}

// Contains returns true when date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// String formats the range in its standard form.
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
