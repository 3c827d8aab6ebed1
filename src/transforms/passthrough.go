// Package transforms provides built-in transformers for the Data-Transform SDK.
package transforms

import (
	"github.com/gitpan/Data-Transform/src/core"
)

// Passthrough returns every chunk unchanged as an item and every item
// unchanged as a chunk. It carries no partial-parse state, so a flush
// attempt never produces anything.
//
// Useful as the identity layer in a stack and as the simplest possible
// conforming transformer.
type Passthrough struct {
	*core.TransformerBase
}

// NewPassthrough creates a new passthrough transformer.
func NewPassthrough() *Passthrough {
	t := &Passthrough{}
	t.TransformerBase = core.MustTransformerBase(t, "passthrough", "identity")
	return t
}

// HandleChunk returns the chunk unchanged as a completed item.
// A nil chunk is a flush attempt; there is never anything to flush.
func (t *Passthrough) HandleChunk(chunk interface{}) (interface{}, bool) {
	if chunk == nil {
		return nil, false
	}
	return chunk, true
}

// Emit returns the items unchanged, one chunk per item.
func (t *Passthrough) Emit(items []interface{}) []interface{} {
	if len(items) == 0 {
		return nil
	}
	chunks := make([]interface{}, len(items))
	copy(chunks, items)
	t.RecordEmit(uint64(len(items)), uint64(len(chunks)))
	return chunks
}

// Clone returns a fresh passthrough with an empty buffer.
func (t *Passthrough) Clone() core.Transformer {
	return NewPassthrough()
}
