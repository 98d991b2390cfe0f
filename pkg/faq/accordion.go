package faq

import "strconv"

const closed = -1

// Accordion tracks which single item of a list is expanded.
type Accordion struct {
	n    int
	open int
}

// New creates an accordion over n items with everything collapsed.
func New(n int) *Accordion {
	return &Accordion{n: n, open: closed}
}

// Parse restores the state carried in a query value such as "?faq=2".
// Anything unparsable or out of range yields a collapsed accordion.
func Parse(raw string, n int) *Accordion {
	a := New(n)
	if i, err := strconv.Atoi(raw); err == nil {
		a.Open(i)
	}
	return a
}

// Toggle expands item i, collapsing any other, or collapses it if it was open.
// Out-of-range indices are ignored.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= a.n {
		return
	}
	if a.open == i {
		a.open = closed
		return
	}
	a.open = i
}

// Open expands item i unless it is out of range.
func (a *Accordion) Open(i int) {
	if i < 0 || i >= a.n {
		return
	}
	a.open = i
}

// OpenIndex returns the expanded item, if any.
func (a *Accordion) OpenIndex() (int, bool) {
	return a.open, a.open != closed
}

// IsOpen reports whether item i is expanded.
func (a *Accordion) IsOpen(i int) bool {
	return a.open != closed && a.open == i
}

// Len is the number of items.
func (a *Accordion) Len() int {
	return a.n
}

// After returns the state the accordion would be in after toggling i.
func (a *Accordion) After(i int) *Accordion {
	next := *a
	next.Toggle(i)
	return &next
}

// Query renders the state for a link, "" when collapsed.
func (a *Accordion) Query() string {
	if i, ok := a.OpenIndex(); ok {
		return strconv.Itoa(i)
	}
	return ""
}
