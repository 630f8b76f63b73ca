package items

import (
	"github.com/KirkDiggler/ducttape-items/internal/assets"
	"github.com/KirkDiggler/ducttape-items/internal/entities/attribute"
	"github.com/KirkDiggler/ducttape-items/internal/entities/item"
)

// Registered names of the built-in items
const (
	NameRock      = "rock"
	NameRope      = "rope"
	NameDevTablet = "dev_tablet"
	NameAir       = item.AirIdent
)

// NewRock returns the rock. Rocks have no texture.
func NewRock() *Static {
	return NewStatic("🪨", NameRock, map[attribute.Kind]float64{
		attribute.Sharpness:  2,
		attribute.Durability: 50,
		attribute.Weight:     5,
		attribute.Strength:   10,
		attribute.Agility:    5,
		attribute.Reach:      5,
	}, nil)
}

// NewRope returns the rope drawn from item/rope/rope.png
func NewRope(store assets.Store) *Static {
	return NewStatic("🪢", NameRope, map[attribute.Kind]float64{
		attribute.Sharpness:  0,
		attribute.Durability: 150,
		attribute.Weight:     5,
		attribute.Strength:   10,
		attribute.Agility:    5,
		attribute.Reach:      10,
	}, assetTexture(store, "item", "rope", "rope.png"))
}

// NewDevTablet returns the developer tablet. It carries no attributes.
func NewDevTablet(store assets.Store) *Static {
	return NewStatic("Tablet", NameDevTablet, nil,
		assetTexture(store, "item", "dev_tablet", "dev_tablet.png"))
}

// NewAir returns an air item drawn from item/air/air.png
func NewAir(store assets.Store) item.Item {
	if store == nil {
		return item.Air
	}
	return item.NewAir(assetTexture(store, "item", "air", "air.png"))
}

// Registerer accepts named items
type Registerer interface {
	Register(name string, it item.Item)
}

// RegisterDefaults registers rock, air, rope and dev_tablet
func RegisterDefaults(reg Registerer, store assets.Store) {
	reg.Register(NameRock, NewRock())
	reg.Register(NameAir, NewAir(store))
	reg.Register(NameRope, NewRope(store))
	reg.Register(NameDevTablet, NewDevTablet(store))
}
