// Package transforms provides built-in transformers for the Data-Transform SDK.
package transforms

import (
	"github.com/gitpan/Data-Transform/src/core"
	"github.com/gitpan/Data-Transform/src/types"
)

// MapFunc maps one value to another. It is applied per chunk on the
// take path and per item on the emit path.
type MapFunc func(v interface{}) interface{}

// Mapper applies a user-supplied function to each chunk to produce an
// item, and another to each item to produce a chunk. Both functions
// must be stateless: clones share the same function values.
//
// Mapper defines no wire format of its own; it adapts whatever value
// types the surrounding pipeline uses.
type Mapper struct {
	*core.TransformerBase

	// take maps each incoming chunk to an item.
	take MapFunc

	// emit maps each outgoing item to a chunk.
	emit MapFunc
}

// NewMapper creates a mapper from the given take and emit functions.
// Returns an InvalidConfiguration error if either function is nil.
func NewMapper(name string, take, emit MapFunc) (*Mapper, error) {
	if take == nil || emit == nil {
		return nil, types.TransformErrorf(types.InvalidConfiguration, "mapper %q requires take and emit funcs", name)
	}

	t := &Mapper{take: take, emit: emit}
	base, err := core.NewTransformerBase(t, name, "mapping")
	if err != nil {
		return nil, err
	}
	t.TransformerBase = base
	return t, nil
}

// HandleChunk applies the take function to the chunk. A nil chunk is a
// flush attempt; mappers hold no partial state.
func (t *Mapper) HandleChunk(chunk interface{}) (interface{}, bool) {
	if chunk == nil {
		return nil, false
	}
	return t.take(chunk), true
}

// Emit applies the emit function to each item, one chunk per item.
func (t *Mapper) Emit(items []interface{}) []interface{} {
	if len(items) == 0 {
		return nil
	}
	chunks := make([]interface{}, len(items))
	for i, item := range items {
		chunks[i] = t.emit(item)
	}
	t.RecordEmit(uint64(len(items)), uint64(len(chunks)))
	return chunks
}

// Clone returns a fresh mapper sharing the same functions.
func (t *Mapper) Clone() core.Transformer {
	clone, err := NewMapper(t.Name(), t.take, t.emit)
	if err != nil {
		// Unreachable: funcs were validated at construction.
		panic(err)
	}
	return clone
}
