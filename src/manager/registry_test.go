package manager_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/gitpan/Data-Transform/src/manager"
	"github.com/gitpan/Data-Transform/src/transforms"
	"github.com/gitpan/Data-Transform/src/types"
)

// Test 1: Register and retrieve by ID and name
func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := manager.NewTransformerRegistry()
	p := transforms.NewPassthrough()
	id := p.ID()

	if err := reg.Register(id, p); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if got, ok := reg.Get(id); !ok || got != p {
		t.Error("Get by ID should return the registered transformer")
	}
	if got, ok := reg.GetByName("passthrough"); !ok || got != p {
		t.Error("GetByName should return the registered transformer")
	}
	if reg.Count() != 1 {
		t.Errorf("Count() = %d, want 1", reg.Count())
	}
	if reg.CheckNameUniqueness("passthrough") {
		t.Error("registered name should no longer be unique")
	}
}

// Test 2: Nil transformers and duplicate names are rejected
func TestRegistry_RegisterInvalid(t *testing.T) {
	reg := manager.NewTransformerRegistry()

	if err := reg.Register(uuid.New(), nil); err == nil {
		t.Error("Register should reject a nil transformer")
	}

	first := transforms.NewPassthrough()
	if err := reg.Register(first.ID(), first); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	second := transforms.NewPassthrough()
	err := reg.Register(second.ID(), second)

	var terr *types.TransformerError
	if !errors.As(err, &terr) || terr.Code != types.TransformerAlreadyExists {
		t.Errorf("duplicate-name Register = %v, want TransformerAlreadyExists", err)
	}
}

// Test 3: Remove clears both indexes
func TestRegistry_Remove(t *testing.T) {
	reg := manager.NewTransformerRegistry()
	p := transforms.NewPassthrough()

	if err := reg.Register(p.ID(), p); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	removed, ok := reg.Remove(p.ID())
	if !ok || removed != p {
		t.Error("Remove should return the registered transformer")
	}
	if reg.Count() != 0 {
		t.Errorf("Count() = %d after Remove, want 0", reg.Count())
	}
	if !reg.CheckNameUniqueness("passthrough") {
		t.Error("removed name should be unique again")
	}

	if _, ok := reg.Remove(p.ID()); ok {
		t.Error("second Remove should report not found")
	}
}

// Test 4: Spawn clones the prototype with an empty buffer
func TestRegistry_Spawn(t *testing.T) {
	reg := manager.NewTransformerRegistry()
	prototype := transforms.NewPassthrough()
	prototype.Feed(types.Data("buffered-in-prototype"))

	if err := reg.Register(prototype.ID(), prototype); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	spawned, err := reg.Spawn("passthrough")
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if spawned.PeekPending() != nil {
		t.Error("spawned transformer should start with an empty buffer")
	}

	out := spawned.TakeAll(types.Data("fresh"))
	if len(out) != 1 || out[0].Value() != "fresh" {
		t.Errorf("spawned TakeAll = %v, want fresh", out)
	}

	var terr *types.TransformerError
	if _, err := reg.Spawn("unknown"); !errors.As(err, &terr) || terr.Code != types.TransformerNotFound {
		t.Errorf("Spawn of unknown name = %v, want TransformerNotFound", err)
	}
}
