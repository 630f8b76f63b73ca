// Package engine folds item attribute entries into final values and renders
// their breakdowns.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/ducttape-items/internal/engine Calculator

import (
	"github.com/KirkDiggler/ducttape-items/internal/entities/attribute"
	"github.com/KirkDiggler/ducttape-items/internal/text"
)

// Calculator computes attribute values for display and gameplay layers
type Calculator interface {
	// Aggregate folds a kind's entries in list order starting from 0.
	// Lists handed out by a stats store are already sorted by priority.
	// An absent or empty kind yields 0.
	Aggregate(kind attribute.Kind) float64
	AggregateAll() map[attribute.Kind]float64

	// AggregateToFixed collapses a kind into one hidden Set entry
	AggregateToFixed(kind attribute.Kind) attribute.Attribute
	AggregateToFixedAll() map[attribute.Kind]attribute.Attribute

	// Breakdown renders each displayed entry of a kind on its own line
	// followed by the final value
	Breakdown(kind attribute.Kind) text.Text
	BreakdownAll() map[attribute.Kind]text.Text

	// Text renders the breakdown of every kind under its glyph, in kind order
	Text() text.Text
}
