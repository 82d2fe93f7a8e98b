// Package ui provides the side panel chrome: a single-open accordion and an
// image lightbox. State is kept separate from raygui rendering so the
// open/close and navigation rules are testable headless.
package ui

// Section is one collapsible accordion entry.
type Section struct {
	Title string
	Lines []string
}

// Accordion holds an ordered set of sections of which at most one is open.
type Accordion struct {
	sections []Section
	open     int // index of the open section, -1 for none
}

// NewAccordion creates an accordion with all sections closed.
func NewAccordion(sections []Section) *Accordion {
	return &Accordion{sections: sections, open: -1}
}

// Sections returns the section list.
func (a *Accordion) Sections() []Section { return a.sections }

// OpenIndex returns the index of the open section, or -1.
func (a *Accordion) OpenIndex() int { return a.open }

// IsOpen reports whether section i is the open one.
func (a *Accordion) IsOpen(i int) bool { return a.open == i }

// Toggle opens section i, closing any other open section first. Toggling
// the open section closes it. Out-of-range indices are ignored.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= len(a.sections) {
		return
	}
	if a.open == i {
		a.open = -1
		return
	}
	a.open = i
}
