package collection

import (
	"github.com/KirkDiggler/ducttape-items/internal/entities/item"
	"github.com/KirkDiggler/ducttape-items/internal/metrics"
)

// Unsized grows with every add
type Unsized struct {
	*base
}

// NewUnsized returns an empty growable collection
func NewUnsized(opts ...Option) *Unsized {
	return &Unsized{base: newBase(opts)}
}

// Add appends stack. The reported index is the slot the stack landed in.
func (u *Unsized) Add(stack item.Stack) (int, error) {
	if err := validateStack(stack); err != nil {
		return -1, err
	}

	u.mu.Lock()
	u.slots = append(u.slots, stack)
	index := len(u.slots) - 1
	u.mu.Unlock()

	u.recorder.CollectionMutation(metrics.OpAdd)
	u.logger.Debug("added stack",
		"collection", u.id,
		"index", index,
		"item", stack.Item.Ident(),
		"count", stack.Count)
	u.emit(Event{Type: EventAdd, Index: index, Stack: stack})
	return index, nil
}

// Clear drops every slot
func (u *Unsized) Clear() {
	u.mu.Lock()
	u.slots = nil
	u.mu.Unlock()

	u.recorder.CollectionMutation(metrics.OpClear)
	u.emit(Event{Type: EventClear, Index: -1})
}

// Restore replaces the contents with stacks; nil items become air
func (u *Unsized) Restore(stacks []item.Stack) error {
	slots := make([]item.Stack, len(stacks))
	for i, stack := range stacks {
		if stack.Item == nil {
			stack = item.NewAirStack()
		}
		slots[i] = stack
	}

	u.mu.Lock()
	u.slots = slots
	u.mu.Unlock()

	u.Refresh()
	return nil
}

var _ Collection = (*Unsized)(nil)
