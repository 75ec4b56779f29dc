package ports

import (
	"fieldservice/internal/core/events"
)

// ChangeNotifier publishes change events after successful local mutations.
//
// Publication is fire-and-forget: Publish must never block the caller and
// must never return an error to it. An implementation that cannot accept an
// event (full buffer, closed notifier) drops it and records the fact.
type ChangeNotifier interface {
	// Publish enqueues an event for asynchronous delivery.
	Publish(event events.Event)
}
