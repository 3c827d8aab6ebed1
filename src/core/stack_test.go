package core_test

import (
	"errors"
	"testing"

	"github.com/gitpan/Data-Transform/src/core"
	"github.com/gitpan/Data-Transform/src/types"
)

// suffixTransformer appends a suffix to each string chunk on the take
// path and an emit tag to each item on the emit path, making flow
// direction visible in the output.
type suffixTransformer struct {
	*core.TransformerBase
	suffix string
}

func newSuffixTransformer(name, suffix string) *suffixTransformer {
	t := &suffixTransformer{suffix: suffix}
	t.TransformerBase = core.MustTransformerBase(t, name, "mapping")
	return t
}

func (t *suffixTransformer) HandleChunk(chunk interface{}) (interface{}, bool) {
	if chunk == nil {
		return nil, false
	}
	return chunk.(string) + t.suffix, true
}

func (t *suffixTransformer) Emit(items []interface{}) []interface{} {
	chunks := make([]interface{}, len(items))
	for i, item := range items {
		chunks[i] = item.(string) + "E" + t.suffix
	}
	return chunks
}

func (t *suffixTransformer) Clone() core.Transformer {
	return newSuffixTransformer(t.Name(), t.suffix)
}

// Test 1: Chunks cascade front-to-back through the layers
func TestStack_CascadeOrder(t *testing.T) {
	stack := core.NewStack("pipeline",
		newSuffixTransformer("first", "1"),
		newSuffixTransformer("second", "2"),
	)

	out := stack.TakeAll(types.Data("x"), types.Data("y"))
	if len(out) != 2 || out[0].Value() != "x12" || out[1].Value() != "y12" {
		t.Errorf("TakeAll = %v, want x12, y12", out)
	}
}

// Test 2: Control markers pass through every layer untouched, in order
func TestStack_MarkerPassThrough(t *testing.T) {
	stack := core.NewStack("pipeline",
		newSuffixTransformer("first", "1"),
		newSuffixTransformer("second", "2"),
	)
	eof := types.NewEndOfStream()

	out := stack.TakeAll(types.Data("a"), types.Control(eof), types.Data("b"))
	if len(out) != 3 {
		t.Fatalf("TakeAll produced %d results, want 3", len(out))
	}
	if out[0].Value() != "a12" {
		t.Errorf("first result = %v, want a12", out[0].Value())
	}
	if out[1].Marker() != eof {
		t.Errorf("second result = %v, want the original EndOfStream marker", out[1])
	}
	if out[2].Value() != "b12" {
		t.Errorf("third result = %v, want b12", out[2].Value())
	}
}

// Test 3: Emit runs back-to-front through the layers
func TestStack_EmitReverses(t *testing.T) {
	stack := core.NewStack("pipeline",
		newSuffixTransformer("first", "1"),
		newSuffixTransformer("second", "2"),
	)

	chunks := stack.Emit([]interface{}{"y"})
	if len(chunks) != 1 || chunks[0] != "yE2E1" {
		t.Errorf("Emit = %v, want yE2E1 (back layer first)", chunks)
	}
}

// Test 4: Layer management validates names and orders layers
func TestStack_Management(t *testing.T) {
	stack := core.NewStack("pipeline")

	if err := stack.Push(newSuffixTransformer("a", "1")); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if err := stack.Push(newSuffixTransformer("a", "2")); err == nil {
		t.Error("Push should reject a duplicate layer name")
	}
	if err := stack.Push(nil); err == nil {
		t.Error("Push should reject a nil transformer")
	}

	if err := stack.Unshift(newSuffixTransformer("b", "0")); err != nil {
		t.Fatalf("Unshift failed: %v", err)
	}

	layers := stack.Transformers()
	if len(layers) != 2 || layers[0].Name() != "b" || layers[1].Name() != "a" {
		t.Fatalf("layer order = %v, want [b a]", layers)
	}

	back, err := stack.Pop()
	if err != nil || back.Name() != "a" {
		t.Errorf("Pop = (%v, %v), want layer a", back, err)
	}
	front, err := stack.Shift()
	if err != nil || front.Name() != "b" {
		t.Errorf("Shift = (%v, %v), want layer b", front, err)
	}

	var terr *types.TransformerError
	if _, err := stack.Pop(); !errors.As(err, &terr) || terr.Code != types.StackEmpty {
		t.Errorf("Pop on empty stack = %v, want StackEmpty", err)
	}
	if _, err := stack.Shift(); !errors.As(err, &terr) || terr.Code != types.StackEmpty {
		t.Errorf("Shift on empty stack = %v, want StackEmpty", err)
	}
}

// Test 5: A layerless stack passes elements through, and hands its
// stash to the first layer added
func TestStack_NoLayers(t *testing.T) {
	stack := core.NewStack("bare")

	stack.Feed(types.Data("raw"))
	elem, ok := stack.TakeOne()
	if !ok || elem.Value() != "raw" {
		t.Fatalf("TakeOne = (%v, %v), want raw passthrough", elem.Value(), ok)
	}

	stack.Feed(types.Data("later"))
	if err := stack.Push(newSuffixTransformer("only", "1")); err != nil {
		t.Fatalf("Push failed: %v", err)
	}

	out := stack.TakeAll()
	if len(out) != 1 || out[0].Value() != "later1" {
		t.Errorf("TakeAll = %v, want the stash processed by the new layer", out)
	}
}

// Test 6: PeekPending reports unconsumed input without draining it
func TestStack_PeekPending(t *testing.T) {
	stack := core.NewStack("pipeline",
		newSuffixTransformer("first", "1"),
		newSuffixTransformer("second", "2"),
	)

	if stack.PeekPending() != nil {
		t.Error("PeekPending on an idle stack should be nil")
	}

	stack.Feed(types.Data("a"), types.Data("b"))
	if got := stack.PeekPending(); len(got) != 2 {
		t.Errorf("PeekPending returned %d elements, want 2", len(got))
	}
	if got := stack.PeekPending(); len(got) != 2 {
		t.Error("PeekPending must not consume elements")
	}

	stack.TakeAll()
	if stack.PeekPending() != nil {
		t.Error("PeekPending after a full drain should be nil")
	}
}

// Test 7: Clone duplicates every layer with empty buffers
func TestStack_Clone(t *testing.T) {
	stack := core.NewStack("pipeline",
		newSuffixTransformer("first", "1"),
		newSuffixTransformer("second", "2"),
	)
	stack.Feed(types.Data("pending"))

	clone := stack.Clone()
	if clone.PeekPending() != nil {
		t.Error("clone should carry no buffered data")
	}
	if !clone.IsTransformBase() {
		t.Error("clone should remain a conforming transformer")
	}

	out := clone.TakeAll(types.Data("x"))
	if len(out) != 1 || out[0].Value() != "x12" {
		t.Errorf("clone TakeAll = %v, want x12", out)
	}
}

// Test 8: A stack nests inside another stack
func TestStack_Nested(t *testing.T) {
	inner := core.NewStack("inner", newSuffixTransformer("in", "i"))
	outer := core.NewStack("outer")
	if err := outer.Push(inner); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if err := outer.Push(newSuffixTransformer("out", "o")); err != nil {
		t.Fatalf("Push failed: %v", err)
	}

	out := outer.TakeAll(types.Data("x"))
	if len(out) != 1 || out[0].Value() != "xio" {
		t.Errorf("TakeAll = %v, want xio", out)
	}
}
