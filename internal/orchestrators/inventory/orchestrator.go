// Package inventory coordinates the item registry, the player inventory,
// template items and snapshot persistence.
package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=inventorymock github.com/KirkDiggler/ducttape-items/internal/orchestrators/inventory Service

import (
	"context"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/ducttape-items/internal/engine"
	"github.com/KirkDiggler/ducttape-items/internal/entities/item"
	"github.com/KirkDiggler/ducttape-items/internal/errors"
	"github.com/KirkDiggler/ducttape-items/internal/items"
	"github.com/KirkDiggler/ducttape-items/internal/logger"
	inventoryrepo "github.com/KirkDiggler/ducttape-items/internal/repositories/inventory"
	"github.com/KirkDiggler/ducttape-items/internal/services/collection"
	"github.com/KirkDiggler/ducttape-items/internal/services/registry"
	"github.com/KirkDiggler/ducttape-items/internal/template"
)

const (
	// SampleTemplate is the template the sample inventory builds its spear from
	SampleTemplate = "spear"

	defaultMaxLootQuantity = 4
)

// Service is the item context a game session works against
type Service interface {
	Registry() registry.Service
	Inventory() collection.Collection

	// AddItemByName adds a stack of a registered item
	AddItemByName(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
	DescribeItem(ctx context.Context, input *DescribeItemInput) (*DescribeItemOutput, error)
	// BuildTemplateItem populates a template and registers the result
	BuildTemplateItem(ctx context.Context, input *BuildTemplateItemInput) (*BuildTemplateItemOutput, error)
	// SeedSample fills the inventory with the sample stacks and a spear
	SeedSample(ctx context.Context) error
	Loot(ctx context.Context, input *LootInput) (*LootOutput, error)

	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
	Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error)
}

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	Registry  registry.Service
	Inventory collection.Collection
	// Templates is optional; without it template items cannot be built
	Templates *template.Engine
	// Snapshots is optional; without it Save and Restore fail
	Snapshots inventoryrepo.Repository
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c == nil {
		return vb.RequiredField("config").Build()
	}
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}
	return vb.Build()
}

type orchestrator struct {
	registry  registry.Service
	inventory collection.Collection
	templates *template.Engine
	snapshots inventoryrepo.Repository
	roller    dice.Roller
}

// NewOrchestrator creates a new inventory orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		registry:  cfg.Registry,
		inventory: cfg.Inventory,
		templates: cfg.Templates,
		snapshots: cfg.Snapshots,
		roller:    roller,
	}, nil
}

func (o *orchestrator) Registry() registry.Service {
	return o.registry
}

func (o *orchestrator) Inventory() collection.Collection {
	return o.inventory
}

func (o *orchestrator) AddItemByName(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Quantity == 0 {
		return nil, errors.InvalidArgument("quantity must be positive")
	}

	it, err := o.registry.Get(input.Name)
	if err != nil {
		logger.FromContext(ctx).Warn("item not found", "item", input.Name)
		return nil, err
	}

	stack := item.NewStack(it, input.Quantity)
	idx, err := o.inventory.Add(stack)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add %s", input.Name)
	}

	logger.FromContext(ctx).Info("added item",
		"item", input.Name,
		"quantity", input.Quantity,
		"index", idx)
	return &AddItemOutput{Index: idx, Stack: stack}, nil
}

func (o *orchestrator) RemoveItem(_ context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	stack, err := o.inventory.Remove(input.Index)
	if err != nil {
		return nil, err
	}
	return &RemoveItemOutput{Stack: stack}, nil
}

func (o *orchestrator) DescribeItem(_ context.Context, input *DescribeItemInput) (*DescribeItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	it, err := o.registry.Get(input.Name)
	if err != nil {
		return nil, err
	}

	calc := engine.NewAggregator(it.Stats().GetEverything())
	return &DescribeItemOutput{
		Item:      it,
		Breakdown: calc.Text(),
		Summaries: calc.Summaries(),
	}, nil
}

func (o *orchestrator) BuildTemplateItem(ctx context.Context, input *BuildTemplateItemInput) (*BuildTemplateItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.templates == nil {
		return nil, errors.FailedPrecondition("no template engine configured")
	}

	tmpl, err := o.templates.Load(ctx, input.Template)
	if err != nil {
		return nil, err
	}
	components, err := registry.Lookup(ctx, o.registry, input.Components)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve components of %s", input.Template)
	}

	it := o.templates.Populate(tmpl, components)
	name := input.RegisterAs
	if name == "" {
		name = it.Ident()
	}
	o.registry.Register(name, it)

	logger.FromContext(ctx).Info("registered template item",
		"template", input.Template,
		"name", name,
		"components", len(components))
	return &BuildTemplateItemOutput{Name: name, Item: it}, nil
}

func (o *orchestrator) SeedSample(ctx context.Context) error {
	samples := []AddItemInput{
		{Name: items.NameRock, Quantity: 3},
		{Name: items.NameRock, Quantity: 1},
		{Name: items.NameRock, Quantity: 2},
		{Name: items.NameRope, Quantity: 1},
		{Name: items.NameDevTablet, Quantity: 1},
	}
	for i := range samples {
		if _, err := o.AddItemByName(ctx, &samples[i]); err != nil {
			return errors.Wrap(err, "failed to seed sample inventory")
		}
	}

	spear, err := o.BuildTemplateItem(ctx, &BuildTemplateItemInput{
		Template: SampleTemplate,
		Components: map[string]string{
			"shaft": items.NameRock,
			"tip":   items.NameRock,
		},
		RegisterAs: SampleTemplate,
	})
	if err != nil {
		return errors.Wrap(err, "failed to build sample spear")
	}

	if _, err := o.AddItemByName(ctx, &AddItemInput{Name: spear.Name, Quantity: 1}); err != nil {
		return errors.Wrap(err, "failed to seed sample inventory")
	}
	return nil
}

// Loot rolls which registered item each drop is and how many. Air is never
// dropped.
func (o *orchestrator) Loot(ctx context.Context, input *LootInput) (*LootOutput, error) {
	if input == nil || input.Drops <= 0 {
		return nil, errors.InvalidArgument("drops must be positive")
	}
	maxQty := input.MaxQuantity
	if maxQty <= 0 {
		maxQty = defaultMaxLootQuantity
	}

	var pool []string
	for _, name := range o.registry.Names() {
		if name != items.NameAir {
			pool = append(pool, name)
		}
	}
	if len(pool) == 0 {
		return nil, errors.FailedPrecondition("no items registered to drop")
	}

	out := &LootOutput{}
	for i := 0; i < input.Drops; i++ {
		pick, err := o.roller.Roll(len(pool))
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll loot")
		}
		qty, err := o.roller.Roll(maxQty)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll loot quantity")
		}

		name := pool[pick-1]
		added, err := o.AddItemByName(ctx, &AddItemInput{Name: name, Quantity: uint(qty)})
		if err != nil {
			if errors.Is(err, collection.ErrFull) {
				out.Full = true
				break
			}
			return nil, err
		}
		out.Drops = append(out.Drops, LootDrop{Name: name, Index: added.Index, Quantity: uint(qty)})
	}
	return out, nil
}

func (o *orchestrator) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.snapshots == nil {
		return nil, errors.FailedPrecondition("persistence is not configured")
	}

	snapshot := &inventoryrepo.Snapshot{ID: input.ID, Layout: inventoryrepo.LayoutUnsized}
	if _, ok := o.inventory.(*collection.Sized); ok {
		snapshot.Layout = inventoryrepo.LayoutSized
	}

	stacks := o.inventory.Stacks()
	snapshot.Size = len(stacks)
	for i, stack := range stacks {
		if stack.IsAir() {
			continue
		}
		name, ok := o.registry.NameOf(stack.Item)
		if !ok {
			return nil, errors.FailedPrecondition("slot holds an unregistered item").
				WithMeta("slot", i).
				WithMeta("item", stack.Item.Ident())
		}
		snapshot.Slots = append(snapshot.Slots, inventoryrepo.Slot{
			Index: i,
			Item:  name,
			Count: stack.Count,
		})
	}

	saved, err := o.snapshots.Save(ctx, inventoryrepo.SaveInput{Snapshot: snapshot})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save inventory %s", input.ID)
	}

	logger.FromContext(ctx).Info("saved inventory",
		"id", input.ID,
		"slots", len(snapshot.Slots))
	return &SaveOutput{Snapshot: saved.Snapshot}, nil
}

// Restore replaces the inventory with a stored snapshot. Every referenced item
// must be registered; nothing changes otherwise.
func (o *orchestrator) Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.snapshots == nil {
		return nil, errors.FailedPrecondition("persistence is not configured")
	}

	loaded, err := o.snapshots.Load(ctx, inventoryrepo.LoadInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	snapshot := loaded.Snapshot

	size := snapshot.Size
	if _, ok := o.inventory.(*collection.Sized); ok {
		size = o.inventory.Len()
	}
	slots := append([]inventoryrepo.Slot(nil), snapshot.Slots...)
	sort.Slice(slots, func(i, j int) bool { return slots[i].Index < slots[j].Index })
	if len(slots) > 0 && slots[0].Index < 0 {
		return nil, errors.InvalidArgumentf("snapshot %s has a negative slot index", input.ID)
	}
	if n := len(slots); n > 0 && slots[n-1].Index >= size {
		if _, ok := o.inventory.(*collection.Sized); ok {
			return nil, errors.InvalidArgumentf("snapshot %s has slot %d but the inventory holds %d",
				input.ID, slots[n-1].Index, size)
		}
		size = slots[n-1].Index + 1
	}

	stacks := make([]item.Stack, size)
	for i := range stacks {
		stacks[i] = item.NewAirStack()
	}
	for _, slot := range slots {
		it, err := o.registry.Get(slot.Item)
		if err != nil {
			return nil, errors.Wrapf(err, "snapshot %s references unknown item", input.ID)
		}
		stacks[slot.Index] = item.NewStack(it, slot.Count)
	}

	if err := o.inventory.Restore(stacks); err != nil {
		return nil, errors.Wrapf(err, "failed to restore inventory %s", input.ID)
	}

	logger.FromContext(ctx).Info("restored inventory",
		"id", input.ID,
		"slots", len(slots))
	return &RestoreOutput{Snapshot: snapshot}, nil
}
