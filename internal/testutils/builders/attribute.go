package builders

import (
	"github.com/google/uuid"

	"github.com/KirkDiggler/ducttape-items/internal/entities/attribute"
)

// AttributeBuilder builds attribute entries with predictable ids
type AttributeBuilder struct {
	entry attribute.Attribute
}

// NewAttributeBuilder starts from a hidden priority 0 "+ 0" entry
func NewAttributeBuilder() *AttributeBuilder {
	return &AttributeBuilder{
		entry: attribute.Attribute{
			ID:       uuid.New(),
			Reason:   attribute.Hidden(),
			Modifier: attribute.Add(0),
		},
	}
}

// WithID sets the entry id
func (b *AttributeBuilder) WithID(id uuid.UUID) *AttributeBuilder {
	b.entry.ID = id
	return b
}

// WithPriority sets the entry priority
func (b *AttributeBuilder) WithPriority(p uint8) *AttributeBuilder {
	b.entry.Priority = p
	return b
}

// WithLabel makes the entry visible under label
func (b *AttributeBuilder) WithLabel(label string) *AttributeBuilder {
	b.entry.Reason = attribute.Display(label)
	return b
}

// WithModifier sets the modifier
func (b *AttributeBuilder) WithModifier(m attribute.Modifier) *AttributeBuilder {
	b.entry.Modifier = m
	return b
}

// Build returns the entry
func (b *AttributeBuilder) Build() attribute.Attribute {
	return b.entry
}
