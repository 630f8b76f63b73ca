package item

import (
	"github.com/KirkDiggler/ducttape-items/internal/entities/attribute"
)

// BaseAttribute is the priority 0 Set entry a static item carries for a kind,
// labelled with the item name
func BaseAttribute(name string, value float64) attribute.Attribute {
	return attribute.New(attribute.Display(name), 0, attribute.Set(value))
}

// AddBaseAttributes pushes one base entry per kind onto it
func AddBaseAttributes(it Mutable, values map[attribute.Kind]float64) {
	kinds := make([]attribute.Kind, 0, len(values))
	for k := range values {
		kinds = append(kinds, k)
	}
	attribute.SortKinds(kinds)

	ms := it.MutableStats()
	for _, k := range kinds {
		ms.Push(k, BaseAttribute(it.Name(), values[k]))
	}
}
