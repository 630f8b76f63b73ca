// Package idgen provides the UUID sources used for attribute entry ids
package idgen

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/ducttape-items/internal/pkg/idgen UUIDSource

// UUIDSource generates attribute identifiers
type UUIDSource interface {
	NewUUID() uuid.UUID
}

// RandomUUIDs produces version 4 UUIDs
type RandomUUIDs struct{}

// NewUUID returns a random UUID
func (RandomUUIDs) NewUUID() uuid.UUID {
	return uuid.New()
}

// SequentialUUIDs produces predictable UUIDs whose low 8 bytes count up from 1.
// Safe for concurrent use.
type SequentialUUIDs struct {
	counter atomic.Uint64
}

// NewUUID returns the next UUID in sequence
func (g *SequentialUUIDs) NewUUID() uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[8:], g.counter.Add(1))
	return id
}
