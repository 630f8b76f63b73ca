package attribute

import (
	"sort"

	"github.com/google/uuid"

	"github.com/KirkDiggler/ducttape-items/internal/text"
)

// Reason records where an attribute came from.
// The zero value is hidden: it still counts toward the total but is left out
// of rendered breakdowns.
type Reason struct {
	Visible bool   `json:"visible"`
	Label   string `json:"label,omitempty"`
}

// Hidden returns a reason that is omitted from breakdowns
func Hidden() Reason {
	return Reason{}
}

// Display returns a reason shown in breakdowns under label
func Display(label string) Reason {
	return Reason{Visible: true, Label: label}
}

// IsHidden reports whether the entry is omitted from breakdowns
func (r Reason) IsHidden() bool {
	return !r.Visible
}

// Attribute is one modifier entry of an item's stats
type Attribute struct {
	ID       uuid.UUID `json:"id"`
	Reason   Reason    `json:"reason"`
	Priority uint8     `json:"priority"`
	Modifier Modifier  `json:"modifier"`
}

// New creates an attribute with a fresh random id
func New(reason Reason, priority uint8, modifier Modifier) Attribute {
	return Attribute{
		ID:       uuid.New(),
		Reason:   reason,
		Priority: priority,
		Modifier: modifier,
	}
}

// Text renders the modifier followed by " (label)" for displayed reasons
func (a Attribute) Text() text.Text {
	t := a.Modifier.Text()
	if a.Reason.Visible {
		t = t.AppendString(" (" + a.Reason.Label + ")")
	}
	return t
}

// SortByPriority stably sorts entries ascending by priority
func SortByPriority(entries []Attribute) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority < entries[j].Priority
	})
}

// Map groups attribute entries by kind
type Map map[Kind][]Attribute

// Clone returns a deep copy of m
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for k, entries := range m {
		out[k] = append([]Attribute(nil), entries...)
	}
	return out
}

// Kinds returns the kinds present in m in display order
func (m Map) Kinds() []Kind {
	kinds := make([]Kind, 0, len(m))
	for k := range m {
		kinds = append(kinds, k)
	}
	SortKinds(kinds)
	return kinds
}

// Extend appends every entry of other under the same kind
func (m Map) Extend(other Map) {
	for _, k := range other.Kinds() {
		m[k] = append(m[k], other[k]...)
	}
}

// Len returns the total number of entries across all kinds
func (m Map) Len() int {
	n := 0
	for _, entries := range m {
		n += len(entries)
	}
	return n
}
