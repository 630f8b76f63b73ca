package inventory

import (
	"github.com/KirkDiggler/ducttape-items/internal/engine"
	"github.com/KirkDiggler/ducttape-items/internal/entities/item"
	inventoryrepo "github.com/KirkDiggler/ducttape-items/internal/repositories/inventory"
	"github.com/KirkDiggler/ducttape-items/internal/text"
)

// AddItemInput names a registered item and how many to add
type AddItemInput struct {
	Name     string
	Quantity uint
}

// AddItemOutput reports where the stack landed
type AddItemOutput struct {
	Index int
	Stack item.Stack
}

// RemoveItemInput selects a slot to empty
type RemoveItemInput struct {
	Index int
}

// RemoveItemOutput returns what the slot held
type RemoveItemOutput struct {
	Stack item.Stack
}

// DescribeItemInput names a registered item
type DescribeItemInput struct {
	Name string
}

// DescribeItemOutput is an item's display name with its stat breakdown
type DescribeItemOutput struct {
	Item      item.Item
	Breakdown text.Text
	Summaries []engine.Summary
}

// BuildTemplateItemInput fills a template's parts with registered items
type BuildTemplateItemInput struct {
	Template string
	// Components maps part names to registered item names
	Components map[string]string
	// RegisterAs names the new item in the registry; empty uses its ident
	RegisterAs string
}

// BuildTemplateItemOutput returns the registered composite item
type BuildTemplateItemOutput struct {
	Name string
	Item item.Item
}

// LootInput asks for a number of random drops
type LootInput struct {
	Drops int
	// MaxQuantity bounds each drop's stack size; zero means 4
	MaxQuantity int
}

// LootDrop is one added stack
type LootDrop struct {
	Name     string
	Index    int
	Quantity uint
}

// LootOutput lists the drops that fit. Full is set when the inventory ran
// out of room before every drop was placed.
type LootOutput struct {
	Drops []LootDrop
	Full  bool
}

// SaveInput names the snapshot
type SaveInput struct {
	ID string
}

// SaveOutput returns the stored snapshot
type SaveOutput struct {
	Snapshot *inventoryrepo.Snapshot
}

// RestoreInput names the snapshot to load
type RestoreInput struct {
	ID string
}

// RestoreOutput returns the loaded snapshot
type RestoreOutput struct {
	Snapshot *inventoryrepo.Snapshot
}
