// Package core provides the core interfaces and types for the Data-Transform SDK.
package core

import (
	"sync"

	"github.com/gitpan/Data-Transform/src/types"
)

// Stack composes an ordered sequence of transformers into a single
// transformer. On the take path, chunks flow front-to-back: items
// produced by one layer are fed as chunks into the next. On the emit
// path, items flow back-to-front through each layer's Emit. Control
// markers pass through every layer untouched, because each layer's
// take path returns markers unparsed and the stack forwards them like
// any other element.
//
// Stack itself implements the Transformer interface, so a stack can be
// used anywhere a single transformer is expected, including inside
// another stack.
//
// The data path (Feed, TakeOne, TakeAll, Emit, PeekPending) follows the
// single-threaded transformer contract. Layer management (Push, Pop,
// Shift, Unshift) is mutex-protected so a stack can be assembled from
// setup code while idle.
//
// Example usage:
//
//	stack := core.NewStack("pipeline")
//	stack.Push(framing)
//	stack.Push(decoding)
//	items := stack.TakeAll(types.Data(raw))
type Stack struct {
	// name identifies this stack.
	name string

	// layers is the ordered list of transformers. Index 0 receives
	// fed elements first.
	layers []Transformer

	// pending holds elements fed while the stack had no layers.
	// Handed to the front layer as soon as one exists.
	pending []types.Element

	// mu protects layers during management operations.
	mu sync.RWMutex

	// stats tracks feed/take counts for the stack as a whole.
	stats types.TransformerStatistics

	// statsLock protects concurrent access to stats.
	statsLock sync.RWMutex
}

// NewStack creates a stack with the given layers, front first.
// Nil layers are rejected later by Push; NewStack skips them.
func NewStack(name string, layers ...Transformer) *Stack {
	s := &Stack{
		name:   name,
		layers: make([]Transformer, 0, len(layers)),
	}
	for _, layer := range layers {
		if layer != nil {
			s.layers = append(s.layers, layer)
		}
	}
	return s
}

// Name returns the stack's name.
// Implements the Transformer interface.
func (s *Stack) Name() string {
	return s.name
}

// Type returns "stack".
// Implements the Transformer interface.
func (s *Stack) Type() string {
	return "stack"
}

// IsTransformBase reports membership in the transformer family.
// Implements the Transformer interface. Always true.
func (s *Stack) IsTransformBase() bool {
	return true
}

// Count returns the number of layers in the stack.
func (s *Stack) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.layers)
}

// Transformers returns a copy of the layer list, front first.
func (s *Stack) Transformers() []Transformer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Transformer, len(s.layers))
	copy(out, s.layers)
	return out
}

// Push appends a transformer to the back of the stack.
// The transformer must not be nil and must have a unique name within
// the stack.
func (s *Stack) Push(t Transformer) error {
	if t == nil {
		return types.TransformError(types.InvalidConfiguration)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkNameLocked(t.Name()); err != nil {
		return err
	}

	s.layers = append(s.layers, t)
	s.flushPendingLocked()
	return nil
}

// Unshift inserts a transformer at the front of the stack. Elements
// subsequently fed enter the new layer first; input already buffered
// inside the old front layer stays where it is.
func (s *Stack) Unshift(t Transformer) error {
	if t == nil {
		return types.TransformError(types.InvalidConfiguration)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkNameLocked(t.Name()); err != nil {
		return err
	}

	s.layers = append([]Transformer{t}, s.layers...)
	s.flushPendingLocked()
	return nil
}

// Pop removes and returns the back transformer.
func (s *Stack) Pop() (Transformer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.layers) == 0 {
		return nil, types.TransformError(types.StackEmpty)
	}

	last := len(s.layers) - 1
	t := s.layers[last]
	s.layers = s.layers[:last]
	return t, nil
}

// Shift removes and returns the front transformer. Any raw input still
// buffered inside it leaves with it; salvage it via its PeekPending.
func (s *Stack) Shift() (Transformer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.layers) == 0 {
		return nil, types.TransformError(types.StackEmpty)
	}

	t := s.layers[0]
	s.layers = s.layers[1:]
	return t, nil
}

// checkNameLocked enforces name uniqueness among layers.
// Caller must hold mu.
func (s *Stack) checkNameLocked(name string) error {
	for _, existing := range s.layers {
		if existing.Name() == name {
			return types.TransformErrorf(types.TransformerAlreadyExists, "layer %q", name)
		}
	}
	return nil
}

// flushPendingLocked hands elements fed before any layer existed to the
// current front layer. Caller must hold mu.
func (s *Stack) flushPendingLocked() {
	if len(s.pending) == 0 || len(s.layers) == 0 {
		return
	}
	s.layers[0].Feed(s.pending...)
	s.pending = nil
}

// Feed appends elements to the front layer's buffer, or stashes them if
// the stack has no layers yet. Never fails.
// Implements the Transformer interface.
func (s *Stack) Feed(elems ...types.Element) {
	if len(elems) == 0 {
		return
	}

	s.mu.RLock()
	front := Transformer(nil)
	if len(s.layers) > 0 {
		front = s.layers[0]
	}
	s.mu.RUnlock()

	if front == nil {
		s.pending = append(s.pending, elems...)
	} else {
		front.Feed(elems...)
	}

	s.statsLock.Lock()
	s.stats.FeedCount++
	s.statsLock.Unlock()
}

// TakeOne extracts at most one item or marker from the stack. It pulls
// from the back layer first; when the back layer has nothing, earlier
// layers are drained one element at a time, each result cascading
// forward as input to the next layer, until the back layer produces or
// every layer is exhausted.
// Implements the Transformer interface.
func (s *Stack) TakeOne() (types.Element, bool) {
	layers := s.Transformers()

	s.statsLock.Lock()
	s.stats.TakeCount++
	s.statsLock.Unlock()

	if len(layers) == 0 {
		// No layers: the stack is a passthrough over its stash.
		if len(s.pending) == 0 {
			return types.Element{}, false
		}
		elem := s.pending[0]
		s.pending = s.pending[1:]
		s.recordResult(elem)
		return elem, true
	}

	last := len(layers) - 1
	for {
		if elem, ok := layers[last].TakeOne(); ok {
			s.recordResult(elem)
			return elem, true
		}

		// Refill: pull one element from the deepest earlier layer that
		// can produce, and cascade it forward.
		progressed := false
		for i := last - 1; i >= 0; i-- {
			if elem, ok := layers[i].TakeOne(); ok {
				layers[i+1].Feed(elem)
				progressed = true
				break
			}
		}
		if !progressed {
			return types.Element{}, false
		}
	}
}

// TakeAll feeds the given elements, then drains the stack via TakeOne,
// collecting all results in order.
// Implements the Transformer interface.
func (s *Stack) TakeAll(elems ...types.Element) []types.Element {
	s.Feed(elems...)

	var out []types.Element
	for {
		elem, ok := s.TakeOne()
		if !ok {
			return out
		}
		out = append(out, elem)
	}
}

// Emit serializes items by running them back-to-front through each
// layer's Emit: the back layer turns items into its chunks, which are
// the next layer's items, until the front layer produces the final
// output chunks.
// Implements the Transformer interface.
func (s *Stack) Emit(items []interface{}) []interface{} {
	layers := s.Transformers()

	chunks := items
	for i := len(layers) - 1; i >= 0; i-- {
		chunks = layers[i].Emit(chunks)
	}

	s.statsLock.Lock()
	s.stats.ItemsEmitted += uint64(len(items))
	s.stats.ChunksEmitted += uint64(len(chunks))
	s.statsLock.Unlock()

	return chunks
}

// PeekPending returns a snapshot of all unconsumed elements held by the
// stack, without removing anything. Elements deeper in the pipeline
// come first, since they would have been consumed sooner: the back
// layer's pending input, then each earlier layer's, then any stash held
// by a layerless stack.
// Implements the Transformer interface.
func (s *Stack) PeekPending() []types.Element {
	layers := s.Transformers()

	var pending []types.Element
	for i := len(layers) - 1; i >= 0; i-- {
		pending = append(pending, layers[i].PeekPending()...)
	}
	pending = append(pending, s.pending...)

	if len(pending) == 0 {
		return nil
	}
	return pending
}

// Clone returns a new stack with a clone of every layer and no buffered
// data.
// Implements the Transformer interface.
func (s *Stack) Clone() Transformer {
	layers := s.Transformers()

	clones := make([]Transformer, len(layers))
	for i, layer := range layers {
		clones[i] = layer.Clone()
	}
	return NewStack(s.name, clones...)
}

// GetStats returns the stack's own feed/take/emit counters. Per-layer
// statistics are available from each layer's GetStats.
// Implements the Transformer interface.
func (s *Stack) GetStats() types.TransformerStatistics {
	s.statsLock.RLock()
	defer s.statsLock.RUnlock()
	return s.stats
}

// recordResult accounts for one produced element.
func (s *Stack) recordResult(elem types.Element) {
	s.statsLock.Lock()
	defer s.statsLock.Unlock()

	if elem.IsControl() {
		s.stats.MarkersPassed++
	} else {
		s.stats.ItemsProduced++
	}
}
