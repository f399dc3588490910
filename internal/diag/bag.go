package diag

import (
	"fmt"
	"sort"
)

// Bag is an ordered, capacity-bounded collection of diagnostics. The lexer
// and parser each thread one Bag through their entry point and append to it
// in source order; Sort/Dedup are ambient conveniences for callers that
// merge bags across multiple files (the `wave check` multi-file command).
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag creates a Bag that accepts at most max diagnostics; max <= 0 means
// unbounded.
func NewBag(max int) *Bag {
	return &Bag{items: make([]Diagnostic, 0, 16), max: max}
}

// Add appends d, honoring the bag's capacity. Returns false if the bag is
// already at capacity and d was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Cap returns the configured capacity (0 means unbounded).
func (b *Bag) Cap() int {
	return b.max
}

// HasErrors reports whether any diagnostic in the bag is an error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic in the bag is a warning or
// worse.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// Len returns the number of diagnostics currently held.
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the bag's diagnostics. The returned slice aliases the bag's
// backing array and must not be mutated by the caller.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends other's diagnostics onto b, growing b's capacity if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if b.max > 0 {
		total := len(b.items) + len(other.items)
		if total > b.max {
			b.max = total
		}
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, then start offset, then end offset, then
// severity (errors before warnings), for deterministic multi-file output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Location.File != dj.Location.File {
			return di.Location.File < dj.Location.File
		}
		if di.Location.Start != dj.Location.Start {
			return di.Location.Start < dj.Location.Start
		}
		if di.Location.End != dj.Location.End {
			return di.Location.End < dj.Location.End
		}
		return di.Severity > dj.Severity
	})
}

// Dedup removes diagnostics that share the same span, message and severity,
// keeping the first occurrence.
func (b *Bag) Dedup() {
	seen := make(map[string]bool, len(b.items))
	out := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%s:%d", d.Location.String(), d.Message, d.Severity)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	b.items = out
}
