// Package inventory persists inventory snapshots
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/KirkDiggler/ducttape-items/internal/repositories/inventory Repository

import (
	"context"
	"time"
)

// Layout names the collection flavour a snapshot was taken from
type Layout string

const (
	LayoutSized   Layout = "sized"
	LayoutUnsized Layout = "unsized"
)

// Snapshot is the stored form of one collection. Items are referenced by
// registry name and air slots are omitted.
type Snapshot struct {
	ID      string    `json:"id"`
	Layout  Layout    `json:"layout"`
	Size    int       `json:"size"`
	Slots   []Slot    `json:"slots"`
	SavedAt time.Time `json:"saved_at"`
}

// Slot is one occupied slot
type Slot struct {
	Index int    `json:"index"`
	Item  string `json:"item"`
	Count uint   `json:"count"`
}

// SaveInput contains parameters for saving a snapshot
type SaveInput struct {
	Snapshot *Snapshot
	// TTL overrides the repository default; zero keeps the default
	TTL time.Duration
}

// SaveOutput contains the stored snapshot with SavedAt set
type SaveOutput struct {
	Snapshot *Snapshot
}

// LoadInput contains parameters for loading a snapshot
type LoadInput struct {
	ID string
}

// LoadOutput contains the loaded snapshot
type LoadOutput struct {
	Snapshot *Snapshot
}

// DeleteInput contains parameters for deleting a snapshot
type DeleteInput struct {
	ID string
}

// DeleteOutput reports whether a snapshot was removed
type DeleteOutput struct {
	Deleted bool
}

// ListInput contains parameters for listing snapshots
type ListInput struct{}

// ListOutput contains the sorted ids of stored snapshots
type ListOutput struct {
	IDs []string
}

// Repository stores inventory snapshots
type Repository interface {
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	// Load returns errors.NotFound for unknown or expired ids
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
