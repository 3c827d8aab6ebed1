// Package manager provides transformer management for the Data-Transform SDK.
package manager

import (
	"sync"
	"time"

	"github.com/gitpan/Data-Transform/src/core"
	"github.com/gitpan/Data-Transform/src/types"
)

// Switch hands the unconsumed raw input of one transformer to another,
// so a caller can change the active transformer mid-stream without
// losing bytes. The outgoing transformer's pending elements are copied
// into the replacement's buffer in order.
//
// Any partially parsed state inside the outgoing transformer's handler
// is not transferred: only raw, unconsumed buffer contents move. Drain
// completed items from the outgoing transformer via TakeOne before
// switching if they matter, then discard it — it still holds the
// elements that were salvaged.
func Switch(from, to core.Transformer) error {
	if from == nil || to == nil {
		return types.TransformError(types.InvalidConfiguration)
	}

	if pending := from.PeekPending(); len(pending) > 0 {
		to.Feed(pending...)
	}
	return nil
}

// Switcher tracks the active transformer for one logical stream and
// performs mid-stream replacement. It is the piece of management state
// a stream-driving collaborator keeps per connection.
type Switcher struct {
	// current is the active transformer.
	current core.Transformer

	// events is an optional bus notified on swaps.
	events *EventBus

	// mu protects current during swaps.
	mu sync.RWMutex
}

// SetEventBus attaches an event bus. Swaps publish
// TransformerSwappedEvent to it.
func (s *Switcher) SetEventBus(bus *EventBus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = bus
}

// NewSwitcher creates a switcher with the given initial transformer.
func NewSwitcher(initial core.Transformer) (*Switcher, error) {
	if initial == nil {
		return nil, types.TransformError(types.InvalidConfiguration)
	}
	return &Switcher{current: initial}, nil
}

// Current returns the active transformer.
func (s *Switcher) Current() core.Transformer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Swap replaces the active transformer with next, feeding it the
// outgoing transformer's unconsumed input. The outgoing transformer is
// returned so the caller can drain or dispose of it.
func (s *Switcher) Swap(next core.Transformer) (core.Transformer, error) {
	if next == nil {
		return nil, types.TransformError(types.InvalidConfiguration)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current
	pending := prev.PeekPending()
	if len(pending) > 0 {
		next.Feed(pending...)
	}
	s.current = next

	if s.events != nil {
		s.events.Publish(TransformerSwappedEvent{
			PreviousName: prev.Name(),
			NextName:     next.Name(),
			Salvaged:     len(pending),
			Timestamp:    time.Now(),
		})
	}

	return prev, nil
}

// Feed forwards elements to the active transformer.
func (s *Switcher) Feed(elems ...types.Element) {
	s.Current().Feed(elems...)
}

// TakeOne extracts at most one item or marker from the active
// transformer.
func (s *Switcher) TakeOne() (types.Element, bool) {
	return s.Current().TakeOne()
}

// TakeAll feeds the given elements to the active transformer and
// drains it.
func (s *Switcher) TakeAll(elems ...types.Element) []types.Element {
	return s.Current().TakeAll(elems...)
}
