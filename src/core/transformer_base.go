// Package core provides the core interfaces and types for the Data-Transform SDK.
package core

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/gitpan/Data-Transform/src/types"
)

// TransformerBase provides the buffering and incremental-extraction
// protocol shared by all transformers. It is designed to be embedded in
// concrete transformer implementations, which supply the ChunkHandler
// hook plus Emit and Clone.
//
// TransformerBase handles:
//   - The ordered element buffer (chunks and control markers)
//   - Lazy (TakeOne) and greedy (TakeAll) extraction dispatch
//   - Pass-through of control markers, unparsed, in arrival order
//   - Statistics collection with thread-safety
//   - Disposal state tracking
//
// TransformerBase alone does not satisfy the Transformer interface:
// Emit and Clone are deliberately absent, so a concrete type that
// forgets them fails to compile against Transformer.
//
// Example usage:
//
//	type MyTransformer struct {
//	    *core.TransformerBase
//	}
//
//	func NewMyTransformer() *MyTransformer {
//	    t := &MyTransformer{}
//	    t.TransformerBase = core.MustTransformerBase(t, "my-transformer", "custom")
//	    return t
//	}
type TransformerBase struct {
	// id uniquely identifies this transformer instance.
	id uuid.UUID

	// name is the unique identifier for this transformer instance.
	name string

	// transformType is the category of this transformer.
	transformType string

	// handler is the extension point owning all parsing state.
	// Never nil for a constructed base.
	handler ChunkHandler

	// buffer is the ordered FIFO of pending elements. It grows only via
	// Feed and shrinks only via take drainage. Exclusively owned by this
	// instance; the single-threaded contract means no locking is needed.
	buffer []types.Element

	// config stores the transformer's configuration.
	config types.TransformerConfig

	// stats tracks performance metrics for this transformer.
	// Protected by statsLock for thread-safe reads.
	stats types.TransformerStatistics

	// statsLock protects concurrent access to stats.
	statsLock sync.RWMutex

	// disposed indicates if this transformer has been closed.
	// Use atomic operations for thread-safe access.
	// 0 = active, 1 = disposed
	disposed int32
}

// NewTransformerBase creates a TransformerBase bound to the given chunk
// handler. The handler is the concrete transformer embedding the base.
//
// A nil handler is the Go rendering of instantiating the abstract base
// directly: it is a fatal configuration error, the call fails, and no
// buffer is created.
func NewTransformerBase(handler ChunkHandler, name, transformType string) (*TransformerBase, error) {
	if handler == nil {
		return nil, types.TransformError(types.AbstractTransformer)
	}
	return &TransformerBase{
		id:            uuid.New(),
		name:          name,
		transformType: transformType,
		handler:       handler,
		buffer:        make([]types.Element, 0),
	}, nil
}

// MustTransformerBase is like NewTransformerBase but panics on a nil
// handler. Intended for concrete constructors that pass themselves as
// the handler, where a nil handler is impossible.
func MustTransformerBase(handler ChunkHandler, name, transformType string) *TransformerBase {
	tb, err := NewTransformerBase(handler, name, transformType)
	if err != nil {
		panic(err)
	}
	return tb
}

// ID returns the unique identifier of this transformer instance.
func (tb *TransformerBase) ID() uuid.UUID {
	return tb.id
}

// Name returns the unique name of this transformer instance.
// Implements the Transformer interface.
func (tb *TransformerBase) Name() string {
	return tb.name
}

// Type returns the category of this transformer.
// Implements the Transformer interface.
func (tb *TransformerBase) Type() string {
	return tb.transformType
}

// SetName sets the transformer's name.
// This should only be called during initialization.
func (tb *TransformerBase) SetName(name string) {
	tb.name = name
}

// SetType sets the transformer's type category.
// This should only be called during initialization.
func (tb *TransformerBase) SetType(transformType string) {
	tb.transformType = transformType
}

// GetConfig returns a copy of the transformer's configuration.
func (tb *TransformerBase) GetConfig() types.TransformerConfig {
	return tb.config
}

// IsTransformBase reports membership in the transformer family.
// Implements the Transformer interface. Always true.
func (tb *TransformerBase) IsTransformBase() bool {
	return true
}

// Initialize applies the given configuration to the transformer.
// Name and type are taken from the configuration when provided, and
// statistics are reset.
func (tb *TransformerBase) Initialize(config types.TransformerConfig) error {
	if atomic.LoadInt32(&tb.disposed) != 0 {
		return types.TransformError(types.TransformerDisposed)
	}

	if errs := config.Validate(); len(errs) > 0 {
		return errs[0]
	}

	tb.config = config

	if config.Name != "" {
		tb.name = config.Name
	}
	if config.Type != "" {
		tb.transformType = config.Type
	}

	tb.ResetStats()

	return nil
}

// Close marks the transformer disposed and drops its buffer.
// Close is idempotent.
func (tb *TransformerBase) Close() error {
	if !atomic.CompareAndSwapInt32(&tb.disposed, 0, 1) {
		// Already disposed
		return nil
	}

	tb.buffer = nil
	tb.ResetStats()

	return nil
}

// isDisposed checks if the transformer has been closed.
func (tb *TransformerBase) isDisposed() bool {
	return atomic.LoadInt32(&tb.disposed) != 0
}

// Feed appends elements to the tail of the buffer, preserving order.
// No parsing occurs. Feed never fails; after Close it is a no-op.
// Implements the Transformer interface.
func (tb *TransformerBase) Feed(elems ...types.Element) {
	if len(elems) == 0 || tb.isDisposed() {
		return
	}

	tb.buffer = append(tb.buffer, elems...)

	tb.statsLock.Lock()
	tb.stats.FeedCount++
	tb.stats.CurrentBufferDepth = len(tb.buffer)
	if len(tb.buffer) > tb.stats.PeakBufferDepth {
		tb.stats.PeakBufferDepth = len(tb.buffer)
	}
	tb.statsLock.Unlock()
}

// TakeOne extracts at most one item or control marker.
// Implements the Transformer interface; see Transformer.TakeOne for the
// full protocol.
//
// The flush attempt runs before any buffer drainage, including before a
// control marker at the buffer head. Partial data buffered inside the
// handler from earlier calls may therefore complete ahead of a marker
// that arrived after the chunks it was parsed from.
func (tb *TransformerBase) TakeOne() (types.Element, bool) {
	start := time.Now()

	// Flush attempt: previously consumed chunks may now be sufficient
	// to complete an item without new input.
	if item, ok := tb.handler.HandleChunk(nil); ok {
		tb.recordTake(start, 0, 1, 0)
		return types.Data(item), true
	}

	consumed := uint64(0)
	for len(tb.buffer) > 0 {
		elem := tb.buffer[0]
		tb.buffer[0] = types.Element{}
		tb.buffer = tb.buffer[1:]

		if elem.IsControl() {
			tb.recordTake(start, consumed, 0, 1)
			return elem, true
		}

		consumed++
		if item, ok := tb.handler.HandleChunk(elem.Value()); ok {
			tb.recordTake(start, consumed, 1, 0)
			return types.Data(item), true
		}
	}

	tb.recordTake(start, consumed, 0, 0)
	return types.Element{}, false
}

// TakeAll feeds the given elements, then drains the transformer via
// TakeOne until nothing remains, collecting all results in order.
// Implements the Transformer interface.
func (tb *TransformerBase) TakeAll(elems ...types.Element) []types.Element {
	tb.Feed(elems...)

	var out []types.Element
	for {
		elem, ok := tb.TakeOne()
		if !ok {
			return out
		}
		out = append(out, elem)
	}
}

// PeekPending returns a snapshot copy of the buffered elements, or nil
// if the buffer is empty. The buffer itself is never mutated.
// Implements the Transformer interface.
func (tb *TransformerBase) PeekPending() []types.Element {
	if len(tb.buffer) == 0 {
		return nil
	}

	pending := make([]types.Element, len(tb.buffer))
	copy(pending, tb.buffer)
	return pending
}

// GetStats returns the current performance statistics.
// Uses a read lock for thread-safe access.
// Implements the Transformer interface.
func (tb *TransformerBase) GetStats() types.TransformerStatistics {
	tb.statsLock.RLock()
	defer tb.statsLock.RUnlock()
	return tb.stats
}

// ResetStats clears all statistics for this transformer.
func (tb *TransformerBase) ResetStats() {
	tb.statsLock.Lock()
	defer tb.statsLock.Unlock()
	tb.stats = types.TransformerStatistics{}
}

// RecordEmit accounts for an emit operation. Concrete transformers call
// this from their Emit implementations.
//
// Parameters:
//   - items: Number of items serialized
//   - chunks: Number of output chunks produced
func (tb *TransformerBase) RecordEmit(items, chunks uint64) {
	tb.statsLock.Lock()
	defer tb.statsLock.Unlock()

	tb.stats.ItemsEmitted += items
	tb.stats.ChunksEmitted += chunks
}

// recordTake updates take-path statistics.
func (tb *TransformerBase) recordTake(start time.Time, consumed, items, markers uint64) {
	elapsed := uint64(time.Since(start).Microseconds())

	tb.statsLock.Lock()
	defer tb.statsLock.Unlock()

	tb.stats.TakeCount++
	tb.stats.ChunksConsumed += consumed
	tb.stats.ItemsProduced += items
	tb.stats.MarkersPassed += markers
	tb.stats.CurrentBufferDepth = len(tb.buffer)

	tb.stats.ProcessingTimeUs += elapsed
	if tb.stats.TakeCount > 0 {
		tb.stats.AverageProcessingTimeUs = float64(tb.stats.ProcessingTimeUs) / float64(tb.stats.TakeCount)
	}
	if elapsed > tb.stats.MaxProcessingTimeUs {
		tb.stats.MaxProcessingTimeUs = elapsed
	}
	if tb.stats.MinProcessingTimeUs == 0 || elapsed < tb.stats.MinProcessingTimeUs {
		tb.stats.MinProcessingTimeUs = elapsed
	}
}
