package bus

import "time"

// EventBus is an in-process pub/sub bus for a single simulation thread.
//
// Key characteristics:
// - Type-based fan-out: handlers subscribe by Event.Type() string.
// - Synchronous delivery: Publish calls handlers in the caller goroutine, in
//   subscription order.
// - Error aggregation: multiple handler errors are joined and returned.
// - Handlers may subscribe or cancel while an event is being delivered; the
//   change takes effect for the next Publish.
//
// The bus is not safe for concurrent use. All publishing happens inside the
// frame callbacks of one loop.
type EventBus interface {
	// Publish delivers the event synchronously to all active subscribers of
	// event.Type(). If one or more handlers return an error, a joined error is
	// returned.
	Publish(event Event) error
	// PublishBatch publishes a set of events sequentially and aggregates errors.
	PublishBatch(events ...Event) error
	// Subscribe registers a handler for a specific event type and returns a
	// Subscription that can be used to cancel later.
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the given Subscription. It is safe to call with nil.
	Unsubscribe(Subscription) error
	// Subscribers reports the number of active handlers for eventType.
	Subscribers(eventType string) int
}

// Event is an immutable message transported by the EventBus.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

// EventHandler is a callback invoked per delivered event.
type EventHandler func(event Event) error

// Subscription represents a registered handler bound to an event type.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	// Cancel de-registers the handler. Multiple calls are safe.
	Cancel() error
}
