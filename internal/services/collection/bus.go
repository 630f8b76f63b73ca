package collection

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/ducttape-items/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/ducttape-items/internal/logger"
)

// Event types published on an rpg-toolkit bus
const (
	BusEventItemAdded     = "inventory.item_added"
	BusEventItemRemoved   = "inventory.item_removed"
	BusEventCleared       = "inventory.cleared"
	BusEventRefreshed     = "inventory.refreshed"
	busEventUnknownPrefix = "inventory."
)

// BusEventType maps a collection event type to its bus event name
func BusEventType(t EventType) string {
	switch t {
	case EventAdd:
		return BusEventItemAdded
	case EventRemove:
		return BusEventItemRemoved
	case EventClear:
		return BusEventCleared
	case EventManualRefresh:
		return BusEventRefreshed
	default:
		return busEventUnknownPrefix + t.String()
	}
}

// BusForwarder returns a listener that republishes every event on bus. The
// source is the slot and the target the stack's item (air for clear and
// refresh). Publish failures are logged and otherwise ignored.
func BusForwarder(ctx context.Context, bus events.EventBus, collectionID string) Listener {
	return func(ev Event) {
		source := rpgtoolkit.WrapSlot(collectionID, ev.Index)
		target := rpgtoolkit.WrapItem(ev.Stack.Item)

		gameEvent := events.NewGameEvent(BusEventType(ev.Type), source, target)
		if err := bus.Publish(ctx, gameEvent); err != nil {
			logger.FromContext(ctx).Warn("failed to publish collection event",
				"collection", collectionID,
				"event", ev.Type.String(),
				"error", err)
		}
	}
}
