// Package stats provides the basic per-item attribute store
package stats

import (
	"github.com/google/uuid"

	"github.com/KirkDiggler/ducttape-items/internal/entities/attribute"
	"github.com/KirkDiggler/ducttape-items/internal/errors"
)

// ErrUnknownKind is returned by strict lookups on a kind the store holds no list for
var ErrUnknownKind = errors.Sentinel(errors.CodeUnknownAttributeKind, "attribute kind not present")

// Basic maps each kind to a list of entries kept stably sorted by priority.
// It is not safe for concurrent mutation; items are read-only once registered.
type Basic struct {
	attributes attribute.Map
}

// New returns an empty store
func New() *Basic {
	return &Basic{attributes: attribute.Map{}}
}

// FromMap returns a store holding a copy of attrs, sorted by priority
func FromMap(attrs attribute.Map) *Basic {
	b := &Basic{attributes: attrs.Clone()}
	if b.attributes == nil {
		b.attributes = attribute.Map{}
	}
	for _, entries := range b.attributes {
		attribute.SortByPriority(entries)
	}
	return b
}

// GetOne returns the entry with id under kind
func (b *Basic) GetOne(kind attribute.Kind, id uuid.UUID) (attribute.Attribute, error) {
	entries, ok := b.attributes[kind]
	if !ok {
		return attribute.Attribute{}, errors.Wrapf(ErrUnknownKind, "attribute kind %s not present", kind)
	}
	for _, entry := range entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return attribute.Attribute{}, errors.NotFoundf("attribute %s not found under %s", id, kind).
		WithMeta("kind", kind.String())
}

// GetAll returns a copy of the entries under kind
func (b *Basic) GetAll(kind attribute.Kind) ([]attribute.Attribute, error) {
	entries, ok := b.attributes[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "attribute kind %s not present", kind)
	}
	return append([]attribute.Attribute{}, entries...), nil
}

// Entries returns a copy of the entries under kind, empty when absent
func (b *Basic) Entries(kind attribute.Kind) []attribute.Attribute {
	return append([]attribute.Attribute{}, b.attributes[kind]...)
}

// GetEverything returns a copy of every kind's entries
func (b *Basic) GetEverything() attribute.Map {
	return b.attributes.Clone()
}

// Has reports whether kind has a list, even an empty one
func (b *Basic) Has(kind attribute.Kind) bool {
	_, ok := b.attributes[kind]
	return ok
}

// Push appends entry under kind and re-sorts the kind
func (b *Basic) Push(kind attribute.Kind, entry attribute.Attribute) {
	b.attributes[kind] = append(b.attributes[kind], entry)
	attribute.SortByPriority(b.attributes[kind])
}

// PushMany pushes every entry of attrs, kind by kind
func (b *Basic) PushMany(attrs attribute.Map) {
	for _, kind := range attrs.Kinds() {
		for _, entry := range attrs[kind] {
			b.Push(kind, entry)
		}
	}
}

// Set replaces the entry with id under kind. Unknown ids are ignored.
func (b *Basic) Set(kind attribute.Kind, id uuid.UUID, entry attribute.Attribute) {
	entries := b.attributes[kind]
	for i := range entries {
		if entries[i].ID == id {
			entries[i] = entry
			attribute.SortByPriority(entries)
			return
		}
	}
}

// SetAll replaces the whole list under kind
func (b *Basic) SetAll(kind attribute.Kind, entries []attribute.Attribute) {
	list := append([]attribute.Attribute{}, entries...)
	attribute.SortByPriority(list)
	b.attributes[kind] = list
}

// Remove drops the entry with id under kind
func (b *Basic) Remove(kind attribute.Kind, id uuid.UUID) {
	entries, ok := b.attributes[kind]
	if !ok {
		return
	}
	kept := entries[:0]
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	b.attributes[kind] = kept
}

// RemoveAll drops kind entirely
func (b *Basic) RemoveAll(kind attribute.Kind) {
	delete(b.attributes, kind)
}

// Clone returns an independent copy of the store
func (b *Basic) Clone() *Basic {
	return &Basic{attributes: b.attributes.Clone()}
}
