// Package items holds the built-in item content
package items

import (
	"github.com/KirkDiggler/ducttape-items/internal/assets"
	"github.com/KirkDiggler/ducttape-items/internal/entities/attribute"
	"github.com/KirkDiggler/ducttape-items/internal/entities/item"
	"github.com/KirkDiggler/ducttape-items/internal/stats"
)

// Static is a plain item with a fixed stats store
type Static struct {
	name    string
	ident   string
	stats   *stats.Basic
	texture item.Texture
}

// NewStatic returns an item populated with one base entry per kind in values
func NewStatic(name, ident string, values map[attribute.Kind]float64, tex item.Texture) *Static {
	if tex == nil {
		tex = item.NoTexture{}
	}
	s := &Static{
		name:    name,
		ident:   ident,
		stats:   stats.New(),
		texture: tex,
	}
	item.AddBaseAttributes(s, values)
	return s
}

func (s *Static) Name() string                            { return s.name }
func (s *Static) Ident() string                           { return s.ident }
func (s *Static) Stats() item.Stats                       { return s.stats.Clone() }
func (s *Static) MutableStats() item.MutableStats         { return s.stats }
func (s *Static) SpecialAbilities() []item.SpecialAbility { return nil }
func (s *Static) Texture() item.Texture                   { return s.texture }

func assetTexture(store assets.Store, elem ...string) item.Texture {
	if store == nil {
		return item.NoTexture{}
	}
	return assets.Texture{Store: store, Path: assets.Logical(elem...)}
}

var _ item.Mutable = (*Static)(nil)
