// Package rpgtoolkit adapts item engine values to rpg-toolkit entities
package rpgtoolkit

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/ducttape-items/internal/entities/item"
)

// Entity types reported to the toolkit
const (
	EntityTypeItem = "item"
	EntityTypeSlot = "inventory_slot"
)

// ItemEntity wraps an item to implement core.Entity
type ItemEntity struct {
	item.Item
}

// GetID returns the item's ident
func (e *ItemEntity) GetID() string {
	if e.Item == nil {
		return item.AirIdent
	}
	return e.Ident()
}

// GetType returns the entity type for rpg-toolkit
func (e *ItemEntity) GetType() string {
	return EntityTypeItem
}

// SlotEntity identifies one slot of a named collection
type SlotEntity struct {
	CollectionID string
	Index        int
}

// GetID returns "collection:index"
func (e *SlotEntity) GetID() string {
	return fmt.Sprintf("%s:%d", e.CollectionID, e.Index)
}

// GetType returns the entity type for rpg-toolkit
func (e *SlotEntity) GetType() string {
	return EntityTypeSlot
}

// WrapItem converts an item to an ItemEntity
func WrapItem(it item.Item) *ItemEntity {
	return &ItemEntity{Item: it}
}

// WrapSlot converts a collection slot to a SlotEntity
func WrapSlot(collectionID string, index int) *SlotEntity {
	return &SlotEntity{CollectionID: collectionID, Index: index}
}

var (
	_ core.Entity = (*ItemEntity)(nil)
	_ core.Entity = (*SlotEntity)(nil)
)
