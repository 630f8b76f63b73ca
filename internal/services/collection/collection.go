// Package collection provides slot-indexed containers of item stacks that
// notify listeners of structural changes.
package collection

//go:generate mockgen -destination=mock/mock_collection.go -package=collectionmock github.com/KirkDiggler/ducttape-items/internal/services/collection Collection

import (
	"log/slog"
	"sync"

	"github.com/KirkDiggler/ducttape-items/internal/entities/item"
	"github.com/KirkDiggler/ducttape-items/internal/errors"
	"github.com/KirkDiggler/ducttape-items/internal/metrics"
)

var (
	// ErrFull is returned when a sized collection has no air slot left
	ErrFull = errors.Sentinel(errors.CodeResourceExhausted, "collection is full")
	// ErrNotFound is returned for out of range indexes and air slots
	ErrNotFound = errors.Sentinel(errors.CodeNotFound, "no item in slot")
)

// EventType identifies a structural change
type EventType int

const (
	EventAdd EventType = iota
	EventRemove
	EventClear
	EventManualRefresh
)

// String returns a lower-case name for the event type
func (t EventType) String() string {
	switch t {
	case EventAdd:
		return "add"
	case EventRemove:
		return "remove"
	case EventClear:
		return "clear"
	case EventManualRefresh:
		return "manual_refresh"
	default:
		return "unknown"
	}
}

// Event describes one change. Index and Stack are set for add and remove.
type Event struct {
	Type  EventType
	Index int
	Stack item.Stack
}

// Listener observes changes. Listeners run synchronously on the mutating
// goroutine, in registration order, after the collection lock is released.
type Listener func(Event)

// Collection is a slot-indexed container of stacks
type Collection interface {
	// Add places stack and returns its slot index
	Add(stack item.Stack) (int, error)
	// Get returns ErrNotFound for out of range indexes and air slots
	Get(index int) (item.Stack, error)
	// GetMut runs fn on the stack in place while holding the lock. fn must
	// not call back into the collection. Call Refresh afterwards to notify
	// listeners.
	GetMut(index int, fn func(*item.Stack) error) error
	// Remove replaces the slot with air and returns what it held
	Remove(index int) (item.Stack, error)
	Clear()
	Refresh()
	Listen(l Listener)
	Len() int
	// Stacks returns a snapshot of every slot, air included
	Stacks() []item.Stack
	// Restore replaces every slot and notifies a manual refresh
	Restore(stacks []item.Stack) error
}

// Option configures a collection
type Option func(*base)

// WithRecorder records mutations on r
func WithRecorder(r metrics.Recorder) Option {
	return func(b *base) { b.recorder = metrics.OrNop(r) }
}

// WithLogger logs mutations at debug level on l
func WithLogger(l *slog.Logger) Option {
	return func(b *base) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithID names the collection in logs and forwarded events
func WithID(id string) Option {
	return func(b *base) { b.id = id }
}

type base struct {
	mu        sync.Mutex
	slots     []item.Stack
	listeners []Listener

	id       string
	recorder metrics.Recorder
	logger   *slog.Logger
}

func newBase(opts []Option) *base {
	b := &base{
		id:       "collection",
		recorder: metrics.Nop{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ID returns the collection name
func (b *base) ID() string {
	return b.id
}

// occupied must be called with the lock held
func (b *base) occupied(index int) bool {
	return index >= 0 && index < len(b.slots) && !b.slots[index].IsAir()
}

func (b *base) notFound(index int) error {
	return errors.Wrapf(ErrNotFound, "no item in slot %d of %s", index, b.id)
}

func (b *base) Get(index int) (item.Stack, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.occupied(index) {
		return item.Stack{}, b.notFound(index)
	}
	return b.slots[index], nil
}

func (b *base) GetMut(index int, fn func(*item.Stack) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.occupied(index) {
		return b.notFound(index)
	}
	return fn(&b.slots[index])
}

func (b *base) Remove(index int) (item.Stack, error) {
	b.mu.Lock()
	if !b.occupied(index) {
		b.mu.Unlock()
		return item.Stack{}, b.notFound(index)
	}
	removed := b.slots[index]
	b.slots[index] = item.NewAirStack()
	b.mu.Unlock()

	b.recorder.CollectionMutation(metrics.OpRemove)
	b.logger.Debug("removed stack",
		"collection", b.id,
		"index", index,
		"item", removed.Item.Ident(),
		"count", removed.Count)
	b.emit(Event{Type: EventRemove, Index: index, Stack: removed})
	return removed, nil
}

func (b *base) Refresh() {
	b.recorder.CollectionMutation(metrics.OpRefresh)
	b.emit(Event{Type: EventManualRefresh, Index: -1})
}

func (b *base) Listen(l Listener) {
	if l == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, l)
}

func (b *base) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.slots)
}

func (b *base) Stacks() []item.Stack {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]item.Stack{}, b.slots...)
}

// emit must be called without the lock held
func (b *base) emit(ev Event) {
	b.mu.Lock()
	listeners := append([]Listener{}, b.listeners...)
	b.mu.Unlock()

	for _, l := range listeners {
		l(ev)
	}
}

func validateStack(stack item.Stack) error {
	if stack.IsAir() {
		return errors.InvalidArgument("cannot add air to a collection")
	}
	return nil
}
