package collection

import (
	"github.com/KirkDiggler/ducttape-items/internal/entities/item"
	"github.com/KirkDiggler/ducttape-items/internal/errors"
	"github.com/KirkDiggler/ducttape-items/internal/metrics"
)

// Sized has a fixed number of slots. Empty slots hold air.
type Sized struct {
	*base
}

// NewSized returns a collection of size air slots
func NewSized(size int, opts ...Option) (*Sized, error) {
	if size <= 0 {
		return nil, errors.InvalidArgumentf("size must be positive, got %d", size)
	}
	b := newBase(opts)
	b.slots = make([]item.Stack, size)
	for i := range b.slots {
		b.slots[i] = item.NewAirStack()
	}
	return &Sized{base: b}, nil
}

// Add places stack in the first air slot
func (s *Sized) Add(stack item.Stack) (int, error) {
	if err := validateStack(stack); err != nil {
		return -1, err
	}

	s.mu.Lock()
	index := -1
	for i := range s.slots {
		if s.slots[i].IsAir() {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		s.recorder.CollectionFull()
		return -1, errors.Wrapf(ErrFull, "%s has no empty slot for %s", s.id, stack.Item.Ident())
	}
	s.slots[index] = stack
	s.mu.Unlock()

	s.recorder.CollectionMutation(metrics.OpAdd)
	s.logger.Debug("added stack",
		"collection", s.id,
		"index", index,
		"item", stack.Item.Ident(),
		"count", stack.Count)
	s.emit(Event{Type: EventAdd, Index: index, Stack: stack})
	return index, nil
}

// Clear turns every slot back into air
func (s *Sized) Clear() {
	s.mu.Lock()
	for i := range s.slots {
		s.slots[i] = item.NewAirStack()
	}
	s.mu.Unlock()

	s.recorder.CollectionMutation(metrics.OpClear)
	s.emit(Event{Type: EventClear, Index: -1})
}

// Restore replaces every slot. stacks must have exactly Len entries; nil
// items become air.
func (s *Sized) Restore(stacks []item.Stack) error {
	s.mu.Lock()
	if len(stacks) != len(s.slots) {
		s.mu.Unlock()
		return errors.InvalidArgumentf("expected %d slots, got %d", len(s.slots), len(stacks))
	}
	for i, stack := range stacks {
		if stack.Item == nil {
			stack = item.NewAirStack()
		}
		s.slots[i] = stack
	}
	s.mu.Unlock()

	s.Refresh()
	return nil
}

// IsFull reports whether no air slot is left
func (s *Sized) IsFull() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.slots {
		if s.slots[i].IsAir() {
			return false
		}
	}
	return true
}

var _ Collection = (*Sized)(nil)
