package engine

import (
	"github.com/KirkDiggler/ducttape-items/internal/entities/attribute"
	"github.com/KirkDiggler/ducttape-items/internal/pkg/idgen"
	"github.com/KirkDiggler/ducttape-items/internal/text"
)

// Aggregator is a Calculator over a snapshot of attribute entries
type Aggregator struct {
	attributes attribute.Map
	ids        idgen.UUIDSource
}

// Option configures an Aggregator
type Option func(*Aggregator)

// WithUUIDSource sets the id source for synthetic fixed entries
func WithUUIDSource(ids idgen.UUIDSource) Option {
	return func(a *Aggregator) {
		if ids != nil {
			a.ids = ids
		}
	}
}

// NewAggregator copies attrs. Entry order is kept as given.
func NewAggregator(attrs attribute.Map, opts ...Option) *Aggregator {
	a := &Aggregator{
		attributes: attrs.Clone(),
		ids:        idgen.RandomUUIDs{},
	}
	if a.attributes == nil {
		a.attributes = attribute.Map{}
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Push adds an entry and keeps the kind sorted
func (a *Aggregator) Push(kind attribute.Kind, entry attribute.Attribute) {
	a.attributes[kind] = append(a.attributes[kind], entry)
	attribute.SortByPriority(a.attributes[kind])
}

func (a *Aggregator) Aggregate(kind attribute.Kind) float64 {
	value := 0.0
	for _, entry := range a.attributes[kind] {
		value = entry.Modifier.Apply(value)
	}
	return value
}

func (a *Aggregator) AggregateAll() map[attribute.Kind]float64 {
	out := make(map[attribute.Kind]float64, len(a.attributes))
	for kind := range a.attributes {
		out[kind] = a.Aggregate(kind)
	}
	return out
}

func (a *Aggregator) AggregateToFixed(kind attribute.Kind) attribute.Attribute {
	return attribute.Attribute{
		ID:       a.ids.NewUUID(),
		Reason:   attribute.Hidden(),
		Priority: 0,
		Modifier: attribute.Set(a.Aggregate(kind)),
	}
}

func (a *Aggregator) AggregateToFixedAll() map[attribute.Kind]attribute.Attribute {
	out := make(map[attribute.Kind]attribute.Attribute, len(a.attributes))
	for _, kind := range a.attributes.Kinds() {
		out[kind] = a.AggregateToFixed(kind)
	}
	return out
}

func (a *Aggregator) Breakdown(kind attribute.Kind) text.Text {
	var t text.Text
	for _, entry := range a.attributes[kind] {
		if entry.Reason.IsHidden() {
			continue
		}
		t = t.Append(entry.Text()).AppendString("\n")
	}
	return t.Append(a.AggregateToFixed(kind).Text())
}

func (a *Aggregator) BreakdownAll() map[attribute.Kind]text.Text {
	out := make(map[attribute.Kind]text.Text, len(a.attributes))
	for kind := range a.attributes {
		out[kind] = a.Breakdown(kind)
	}
	return out
}

func (a *Aggregator) Text() text.Text {
	var t text.Text
	for _, kind := range a.attributes.Kinds() {
		t = t.AppendString(kind.Glyph() + ":\n").
			Append(a.Breakdown(kind)).
			AppendString("\n")
	}
	return t
}

// Summary is one row of an aggregated stat table
type Summary struct {
	Kind  attribute.Kind
	Value float64
}

// Summaries returns the aggregate of every present kind in kind order
func (a *Aggregator) Summaries() []Summary {
	kinds := a.attributes.Kinds()
	out := make([]Summary, 0, len(kinds))
	for _, kind := range kinds {
		out = append(out, Summary{Kind: kind, Value: a.Aggregate(kind)})
	}
	return out
}

var _ Calculator = (*Aggregator)(nil)
