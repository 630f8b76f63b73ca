package item

import (
	"github.com/KirkDiggler/ducttape-items/internal/errors"
)

// Stack is a quantity of one shared item
type Stack struct {
	Item  Item
	Count uint
}

// NewStack returns a stack of count items
func NewStack(it Item, count uint) Stack {
	return Stack{Item: it, Count: count}
}

// IsAir reports whether the stack marks an empty slot
func (s Stack) IsAir() bool {
	return IsAir(s.Item)
}

// Set replaces the count
func (s *Stack) Set(count uint) {
	s.Count = count
}

// Increment adds n to the count
func (s *Stack) Increment(n uint) {
	s.Count += n
}

// Decrement removes n from the count. Going below zero is rejected and leaves
// the count unchanged.
func (s *Stack) Decrement(n uint) error {
	if n > s.Count {
		return errors.OutOfRangef("cannot remove %d from a stack of %d", n, s.Count).
			WithMeta("item", s.ident())
	}
	s.Count -= n
	return nil
}

func (s Stack) ident() string {
	if s.Item == nil {
		return AirIdent
	}
	return s.Item.Ident()
}
