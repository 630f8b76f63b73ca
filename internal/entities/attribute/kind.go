// Package attribute defines the numeric item attributes and the modifiers that
// shape them.
package attribute

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/ducttape-items/internal/errors"
)

// Kind is one of the fixed numeric stat categories an item can carry.
// Kinds are ordered by declaration for display.
type Kind uint8

const (
	// Sharpness is how much damage the item can deal
	Sharpness Kind = iota
	// Durability is how much damage the item can take
	Durability
	// Weight is how much the item weighs
	Weight
	// Strength is how much weight the item can support
	Strength
	// Agility is how fast the item attacks
	Agility
	// Reach is how far the item reaches
	Reach
)

// AllKinds lists every kind in display order
var AllKinds = []Kind{Sharpness, Durability, Weight, Strength, Agility, Reach}

var kindNames = map[Kind]string{
	Sharpness:  "Sharpness",
	Durability: "Durability",
	Weight:     "Weight",
	Strength:   "Strength",
	Agility:    "Agility",
	Reach:      "Reach",
}

var kindGlyphs = map[Kind]string{
	Sharpness:  "🗡️",
	Durability: "⚡",
	Weight:     "🏋️",
	Strength:   "💪",
	Agility:    "🏃",
	Reach:      "🏹",
}

// String returns the kind name as written in template files
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Glyph returns the emoji shown next to the kind in breakdowns
func (k Kind) Glyph() string {
	return kindGlyphs[k]
}

// Valid reports whether k is a declared kind
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind resolves a kind name case-insensitively
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return 0, errors.InvalidArgumentf("unknown attribute kind %q", s)
}

// MarshalText implements encoding.TextMarshaler so kinds can key JSON maps
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.InvalidArgumentf("invalid attribute kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// SortKinds sorts kinds into display order in place
func SortKinds(kinds []Kind) {
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
}
