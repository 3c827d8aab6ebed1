// Package core provides the core interfaces and types for the Data-Transform SDK.
// It defines the fundamental contract that all stream transformers must implement.
package core

import (
	"github.com/gitpan/Data-Transform/src/types"
)

// Transformer is the primary interface that all stream transformers
// must implement. A transformer incrementally converts a raw chunk
// stream into discrete parsed items, and converts items back into
// serializable output chunks.
//
// Transformers are synchronous and single-threaded: every operation
// completes immediately based solely on the current buffer contents and
// internal parse state. There is no suspension, scheduling, or
// background work. A transformer's buffer is exclusively owned by that
// instance.
//
// Transformers should be designed to be:
//   - Incremental: partial input is held until enough arrives
//   - Order-preserving: output strictly reflects input arrival order,
//     including the relative order of control markers and data
//   - Swappable: unconsumed raw input remains retrievable via
//     PeekPending so a caller can hand it to a replacement transformer
//
// Example implementation:
//
//	type LineTransformer struct {
//	    *core.TransformerBase
//	    partial []byte
//	}
//
//	func (t *LineTransformer) HandleChunk(chunk interface{}) (interface{}, bool) {
//	    // accumulate into t.partial, return a completed line when found
//	}
type Transformer interface {
	// Feed appends elements to the tail of the transformer's buffer,
	// preserving order. No parsing occurs; the only side effect is
	// buffer growth. Feed never fails.
	//
	// Elements may be raw chunks wrapped with types.Data or control
	// markers wrapped with types.Control.
	//
	// Parameters:
	//   - elems: The elements to append, in order
	Feed(elems ...types.Element)

	// TakeOne extracts at most one parsed item or control marker from
	// the transformer. This is the lazy extraction mode.
	//
	// The method proceeds as follows:
	//  1. Attempt completion from internal partial-parse state with no
	//     new input. If that yields an item, return it without touching
	//     the buffer.
	//  2. If the buffer is empty, return (zero Element, false).
	//  3. Dequeue one element at a time from the buffer head. A control
	//     marker is returned immediately, unparsed. A chunk is handed to
	//     the chunk handler; if it completes an item, the item is
	//     returned. Otherwise dequeuing continues.
	//  4. If the buffer empties without producing anything, return
	//     (zero Element, false).
	//
	// Partial-parse state persists inside the transformer between
	// calls, and unconsumed raw buffer contents remain retrievable via
	// PeekPending.
	//
	// Returns:
	//   - types.Element: The produced item (as a data element) or marker
	//   - bool: False when no item or marker is currently available
	TakeOne() (types.Element, bool)

	// TakeAll feeds the given elements and then drains the transformer
	// by calling TakeOne until it reports nothing available, collecting
	// all results in order. This is the greedy extraction mode.
	//
	// TakeAll() with no arguments drains whatever is already buffered.
	// The result sequence is identical to that of Feed followed by a
	// manual TakeOne loop, but control does not return until the buffer
	// is fully drained.
	//
	// Parameters:
	//   - elems: Elements to feed before draining; may be empty
	//
	// Returns:
	//   - []types.Element: All items and markers produced, in order
	TakeAll(elems ...types.Element) []types.Element

	// Emit serializes items into zero or more output chunks. The count
	// of output chunks is independent of the input item count, but
	// output order matches input item order. Emit is stateless with
	// respect to the transformer's input buffer.
	//
	// The mapping from items to chunks is defined entirely by the
	// concrete transformer.
	//
	// Parameters:
	//   - items: The items to serialize, in order
	//
	// Returns:
	//   - []interface{}: The serialized output chunks, in order
	Emit(items []interface{}) []interface{}

	// PeekPending returns a snapshot copy of the current buffer
	// contents without removing them, or nil if the buffer is empty.
	// It never mutates the buffer.
	//
	// This is the salvage path when switching transformers mid-stream:
	// the unconsumed raw elements are handed to the replacement's Feed.
	//
	// Returns:
	//   - []types.Element: Copy of the buffered elements, or nil
	PeekPending() []types.Element

	// Clone returns a new transformer with identical construction
	// parameters and a fresh, empty buffer. No buffered data or
	// partial-parse state is copied.
	//
	// Returns:
	//   - Transformer: The new instance
	Clone() Transformer

	// IsTransformBase reports whether this value belongs to the
	// transformer family. It is an explicit capability flag that lets a
	// stream-driving collaborator distinguish conforming transformers
	// from unrelated stream-processing abstractions without relying on
	// type identity. Conforming implementations always return true.
	IsTransformBase() bool

	// Name returns the unique name of this transformer instance.
	Name() string

	// Type returns the category of this transformer.
	Type() string

	// GetStats returns the current performance statistics for this
	// transformer.
	GetStats() types.TransformerStatistics
}

// ChunkHandler is the extension point concrete transformers supply.
// The base protocol owns buffering and dispatch; the handler owns all
// parsing and any internal partial-parse state.
//
// TransformerBase cannot be constructed without a ChunkHandler;
// attempting to do so is a fatal configuration error. Together with
// Clone and Emit being members of the Transformer interface, this makes
// every required override either a compile-time fact or an immediate
// construction failure.
type ChunkHandler interface {
	// HandleChunk is called with a single new chunk, or with nil to
	// re-attempt completion from already-buffered internal state (a
	// delayed flush). It must be a no-op, returning (nil, false), when
	// called with nil and no pending internal state.
	//
	// Control markers are never passed to HandleChunk.
	//
	// Parameters:
	//   - chunk: The new chunk to consume, or nil for a flush attempt
	//
	// Returns:
	//   - interface{}: The completed item, if any
	//   - bool: True when an item was completed
	HandleChunk(chunk interface{}) (interface{}, bool)
}
