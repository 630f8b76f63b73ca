// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/ducttape-items/internal/repositories/inventory"
)

// SnapshotBuilder provides a fluent interface for building test snapshots
type SnapshotBuilder struct {
	snapshot *inventory.Snapshot
}

// NewSnapshotBuilder creates a builder for an empty sized snapshot of 16 slots
func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		snapshot: &inventory.Snapshot{
			ID:     "player-test-123",
			Layout: inventory.LayoutSized,
			Size:   16,
		},
	}
}

// WithID sets the snapshot id
func (b *SnapshotBuilder) WithID(id string) *SnapshotBuilder {
	b.snapshot.ID = id
	return b
}

// Unsized switches the snapshot to the unsized layout
func (b *SnapshotBuilder) Unsized() *SnapshotBuilder {
	b.snapshot.Layout = inventory.LayoutUnsized
	b.snapshot.Size = 0
	return b
}

// WithSize sets the slot count of a sized snapshot
func (b *SnapshotBuilder) WithSize(size int) *SnapshotBuilder {
	b.snapshot.Size = size
	return b
}

// WithSlot adds an occupied slot
func (b *SnapshotBuilder) WithSlot(index int, name string, count uint) *SnapshotBuilder {
	b.snapshot.Slots = append(b.snapshot.Slots, inventory.Slot{Index: index, Item: name, Count: count})
	return b
}

// SavedAt sets the save time
func (b *SnapshotBuilder) SavedAt(t time.Time) *SnapshotBuilder {
	b.snapshot.SavedAt = t
	return b
}

// Build returns the snapshot
func (b *SnapshotBuilder) Build() *inventory.Snapshot {
	return b.snapshot
}
