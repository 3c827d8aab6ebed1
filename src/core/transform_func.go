// Package core provides the core interfaces and types for the Data-Transform SDK.
package core

import (
	"github.com/gitpan/Data-Transform/src/types"
)

// HandlerFunc is a function type that implements the ChunkHandler
// interface. This allows regular functions to be used as chunk handlers
// without creating a full struct implementation.
//
// The function receives nil on flush attempts; stateless handlers
// should return (nil, false) in that case.
//
// Example usage:
//
//	upper := core.HandlerFunc(func(chunk interface{}) (interface{}, bool) {
//	    if chunk == nil {
//	        return nil, false
//	    }
//	    return strings.ToUpper(chunk.(string)), true
//	})
type HandlerFunc func(chunk interface{}) (interface{}, bool)

// HandleChunk calls the function itself, implementing the ChunkHandler
// interface.
func (f HandlerFunc) HandleChunk(chunk interface{}) (interface{}, bool) {
	return f(chunk)
}

// funcTransformer wraps a HandlerFunc with a TransformerBase so a plain
// function can serve as a complete transformer.
type funcTransformer struct {
	*TransformerBase
	fn HandlerFunc
}

// WrapHandlerFunc creates a named transformer from a function. Emit
// passes items through unchanged, one chunk per item; wrap the function
// in a struct if a custom serialization is needed.
//
// The function must be stateless: Clone reuses the same function value,
// so state captured in a closure would be shared between clones.
//
// Returns an InvalidConfiguration error for a nil function.
//
// Example:
//
//	t, err := core.WrapHandlerFunc("uppercase", "mapping",
//	    func(chunk interface{}) (interface{}, bool) {
//	        if chunk == nil {
//	            return nil, false
//	        }
//	        return strings.ToUpper(chunk.(string)), true
//	    })
func WrapHandlerFunc(name, transformType string, fn HandlerFunc) (Transformer, error) {
	if fn == nil {
		return nil, types.TransformErrorf(types.InvalidConfiguration, "nil handler func for %q", name)
	}

	t := &funcTransformer{fn: fn}
	base, err := NewTransformerBase(t, name, transformType)
	if err != nil {
		return nil, err
	}
	t.TransformerBase = base
	return t, nil
}

// HandleChunk delegates to the wrapped function.
func (t *funcTransformer) HandleChunk(chunk interface{}) (interface{}, bool) {
	return t.fn(chunk)
}

// Emit passes items through unchanged, one chunk per item.
func (t *funcTransformer) Emit(items []interface{}) []interface{} {
	if len(items) == 0 {
		return nil
	}
	chunks := make([]interface{}, len(items))
	copy(chunks, items)
	t.RecordEmit(uint64(len(items)), uint64(len(chunks)))
	return chunks
}

// Clone returns a fresh transformer wrapping the same function.
func (t *funcTransformer) Clone() Transformer {
	clone, err := WrapHandlerFunc(t.Name(), t.Type(), t.fn)
	if err != nil {
		// Unreachable: fn was validated at construction.
		panic(err)
	}
	return clone
}
