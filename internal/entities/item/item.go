// Package item defines the item capability set, stacks and the air sentinel
package item

import (
	"context"
	"image"

	"github.com/google/uuid"

	"github.com/KirkDiggler/ducttape-items/internal/entities/attribute"
)

// AirIdent identifies the empty-slot sentinel
const AirIdent = "air"

// Stats is read access to an item's attribute entries
type Stats interface {
	// GetOne fails with UnknownAttributeKind for an absent kind and NotFound
	// for an unknown id
	GetOne(kind attribute.Kind, id uuid.UUID) (attribute.Attribute, error)
	// GetAll fails with UnknownAttributeKind for an absent kind
	GetAll(kind attribute.Kind) ([]attribute.Attribute, error)
	// GetEverything returns a copy of every kind's entries
	GetEverything() attribute.Map
}

// MutableStats is write access to an item's attribute entries
type MutableStats interface {
	Stats
	Push(kind attribute.Kind, entry attribute.Attribute)
	PushMany(attrs attribute.Map)
	Set(kind attribute.Kind, id uuid.UUID, entry attribute.Attribute)
	SetAll(kind attribute.Kind, entries []attribute.Attribute)
	Remove(kind attribute.Kind, id uuid.UUID)
	RemoveAll(kind attribute.Kind)
}

// SpecialAbility is a named behaviour an item grants
type SpecialAbility interface {
	Name() string
	Hooks() []string
}

// Texture supplies an item's image.
// A nil image with a nil error means the item has no texture.
type Texture interface {
	Image(ctx context.Context) (image.Image, error)
}

// Item is the capability set every item variant exposes
type Item interface {
	Name() string
	Ident() string
	Stats() Stats
	SpecialAbilities() []SpecialAbility
	Texture() Texture
}

// Mutable is implemented by items whose stats may be edited before registration
type Mutable interface {
	Item
	MutableStats() MutableStats
}

// IsAir reports whether it is the empty-slot sentinel
func IsAir(it Item) bool {
	return it == nil || it.Ident() == AirIdent
}

// NoTexture is the texture of items without an image
type NoTexture struct{}

// Image returns no image
func (NoTexture) Image(context.Context) (image.Image, error) {
	return nil, nil
}
