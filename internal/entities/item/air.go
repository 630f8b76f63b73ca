package item

import (
	"github.com/KirkDiggler/ducttape-items/internal/stats"
)

type air struct {
	stats   *stats.Basic
	texture Texture
}

// Air is the shared empty-slot sentinel. It has no stats.
var Air Item = NewAir(nil)

// NewAir returns an air item drawn with tex, or without a texture when tex is nil
func NewAir(tex Texture) Item {
	if tex == nil {
		tex = NoTexture{}
	}
	return &air{stats: stats.New(), texture: tex}
}

func (a *air) Name() string                       { return "☁️" }
func (a *air) Ident() string                      { return AirIdent }
func (a *air) Stats() Stats                       { return a.stats.Clone() }
func (a *air) SpecialAbilities() []SpecialAbility { return nil }
func (a *air) Texture() Texture                   { return a.texture }

// NewAirStack returns a fresh single air stack
func NewAirStack() Stack {
	return NewStack(Air, 1)
}
