package template

import (
	"sort"

	"github.com/KirkDiggler/ducttape-items/internal/entities/item"
	"github.com/KirkDiggler/ducttape-items/internal/stats"
)

// Item is a composite item built from a template and its components
type Item struct {
	template   *ItemTemplate
	stats      *stats.Basic
	components map[string]item.Item
	abilities  []item.SpecialAbility
	texture    item.Texture
}

// NewItem returns an item holding only the template's base attributes
func NewItem(t *ItemTemplate) *Item {
	return &Item{
		template:   t,
		stats:      stats.FromMap(t.Attributes.Clone()),
		components: make(map[string]item.Item),
		texture:    item.NoTexture{},
	}
}

// Populate builds an item from t and components. Components are merged in
// sorted part order.
func (t *ItemTemplate) Populate(components map[string]item.Item) *Item {
	it := NewItem(t)
	parts := make([]string, 0, len(components))
	for part := range components {
		parts = append(parts, part)
	}
	sort.Strings(parts)
	for _, part := range parts {
		it.AddComponent(part, components[part])
	}
	return it
}

// AddComponent fills part with component and appends every attribute entry of
// component to the item's own. Re-adding a part replaces the component but
// keeps the entries already merged.
func (it *Item) AddComponent(part string, component item.Item) {
	if component == nil {
		return
	}
	it.stats.PushMany(component.Stats().GetEverything())
	it.components[part] = component
}

// Template returns the template the item was built from
func (it *Item) Template() *ItemTemplate {
	return it.template
}

// Components returns a copy of the part to component mapping
func (it *Item) Components() map[string]item.Item {
	out := make(map[string]item.Item, len(it.components))
	for part, c := range it.components {
		out[part] = c
	}
	return out
}

// AddSpecialAbility grants ability to the item
func (it *Item) AddSpecialAbility(ability item.SpecialAbility) {
	it.abilities = append(it.abilities, ability)
}

// SetTexture replaces the item's texture
func (it *Item) SetTexture(tex item.Texture) {
	if tex == nil {
		tex = item.NoTexture{}
	}
	it.texture = tex
}

func (it *Item) Name() string                    { return it.template.DataName }
func (it *Item) Ident() string                   { return it.template.DataName }
func (it *Item) Stats() item.Stats               { return it.stats.Clone() }
func (it *Item) Texture() item.Texture           { return it.texture }
func (it *Item) MutableStats() item.MutableStats { return it.stats }

func (it *Item) SpecialAbilities() []item.SpecialAbility {
	return append([]item.SpecialAbility(nil), it.abilities...)
}

var _ item.Mutable = (*Item)(nil)
