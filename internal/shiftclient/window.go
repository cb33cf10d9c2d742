package shiftclient

import "time"

// Window bounds a shift query: inclusive From, exclusive To. A zero
// bound is omitted from the request, so the zero Window asks for
// everything.
type Window struct {
	From time.Time
	To   time.Time
}

// MonthWindow maps a "YYYY-MM" designator to [first of month, first of
// next month). An unparseable designator degrades to the unbounded
// window, matching how the endpoint treats bad bounds.
func MonthWindow(month string) Window {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return Window{}
	}
	return Window{
		From: start,
		To:   start.AddDate(0, 1, 0),
	}
}
