// Package manager provides transformer management for the Data-Transform SDK.
package manager

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event types
type (
	// TransformerRegisteredEvent is published when a prototype is added
	// to a registry.
	TransformerRegisteredEvent struct {
		TransformerID   uuid.UUID
		TransformerName string
		Timestamp       time.Time
	}

	// TransformerRemovedEvent is published when a prototype is removed
	// from a registry.
	TransformerRemovedEvent struct {
		TransformerID   uuid.UUID
		TransformerName string
		Timestamp       time.Time
	}

	// TransformerSwappedEvent is published when a switcher replaces the
	// active transformer. Salvaged counts the unconsumed elements handed
	// to the replacement.
	TransformerSwappedEvent struct {
		PreviousName string
		NextName     string
		Salvaged     int
		Timestamp    time.Time
	}
)

// EventHandler processes events.
type EventHandler func(event interface{})

// EventBus manages event subscriptions and synchronous dispatch.
// Handlers run on the publishing goroutine, in subscription order;
// there is no buffering or background delivery.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
}

// NewEventBus creates a new event bus.
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]EventHandler),
	}
}

// Event type names for Subscribe.
const (
	EventTransformerRegistered = "transformer.registered"
	EventTransformerRemoved    = "transformer.removed"
	EventTransformerSwapped    = "transformer.swapped"
)

// Subscribe adds an event handler for a specific event type.
func (eb *EventBus) Subscribe(eventType string, handler EventHandler) {
	if handler == nil {
		return
	}

	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers[eventType] = append(eb.subscribers[eventType], handler)
}

// Publish dispatches an event to all handlers subscribed to its type.
// Unknown event values are ignored.
func (eb *EventBus) Publish(event interface{}) {
	eventType := typeOf(event)
	if eventType == "" {
		return
	}

	eb.mu.RLock()
	handlers := append([]EventHandler(nil), eb.subscribers[eventType]...)
	eb.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// typeOf maps an event value to its subscription type name.
func typeOf(event interface{}) string {
	switch event.(type) {
	case TransformerRegisteredEvent:
		return EventTransformerRegistered
	case TransformerRemovedEvent:
		return EventTransformerRemoved
	case TransformerSwappedEvent:
		return EventTransformerSwapped
	default:
		return ""
	}
}
