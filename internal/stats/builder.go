package stats

import (
	"github.com/KirkDiggler/ducttape-items/internal/entities/attribute"
)

// Builder assembles a Basic store
type Builder struct {
	attributes attribute.Map
}

// NewBuilder returns an empty builder
func NewBuilder() *Builder {
	return &Builder{attributes: attribute.Map{}}
}

// WithAttribute adds one entry under kind
func (b *Builder) WithAttribute(kind attribute.Kind, entry attribute.Attribute) *Builder {
	b.attributes[kind] = append(b.attributes[kind], entry)
	return b
}

// WithAttributes adds a list of entries under kind
func (b *Builder) WithAttributes(kind attribute.Kind, entries []attribute.Attribute) *Builder {
	b.attributes[kind] = append(b.attributes[kind], entries...)
	return b
}

// WithMap adds every entry of attrs
func (b *Builder) WithMap(attrs attribute.Map) *Builder {
	b.attributes.Extend(attrs)
	return b
}

// Build returns the store with every kind sorted by priority
func (b *Builder) Build() *Basic {
	return FromMap(b.attributes)
}
