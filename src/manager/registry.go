// Package manager provides transformer management for the Data-Transform SDK.
package manager

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gitpan/Data-Transform/src/core"
	"github.com/gitpan/Data-Transform/src/types"
)

// TransformerRegistry provides thread-safe registration of transformer
// prototypes. Registered transformers serve as templates: Spawn clones
// a prototype to obtain a fresh instance with an empty buffer, which is
// how a stream-driving collaborator obtains one transformer per
// connection from a shared catalog.
type TransformerRegistry struct {
	// Primary index by UUID
	transformers map[uuid.UUID]core.Transformer

	// Secondary index by name
	nameIndex map[string]uuid.UUID

	// Optional event bus notified on register/remove
	events *EventBus

	// Synchronization
	mu sync.RWMutex
}

// SetEventBus attaches an event bus. Registration and removal publish
// TransformerRegisteredEvent and TransformerRemovedEvent to it.
func (tr *TransformerRegistry) SetEventBus(bus *EventBus) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.events = bus
}

// NewTransformerRegistry creates a new transformer registry.
func NewTransformerRegistry() *TransformerRegistry {
	return &TransformerRegistry{
		transformers: make(map[uuid.UUID]core.Transformer),
		nameIndex:    make(map[string]uuid.UUID),
	}
}

// Register adds a transformer prototype under the given ID.
// Names must be unique within the registry.
func (tr *TransformerRegistry) Register(id uuid.UUID, t core.Transformer) error {
	if t == nil {
		return types.TransformError(types.InvalidConfiguration)
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()

	if name := t.Name(); name != "" {
		if _, exists := tr.nameIndex[name]; exists {
			return types.TransformErrorf(types.TransformerAlreadyExists, "%q", name)
		}
		tr.nameIndex[name] = id
	}
	tr.transformers[id] = t

	if tr.events != nil {
		tr.events.Publish(TransformerRegisteredEvent{
			TransformerID:   id,
			TransformerName: t.Name(),
			Timestamp:       time.Now(),
		})
	}

	return nil
}

// Remove removes a transformer from the registry.
func (tr *TransformerRegistry) Remove(id uuid.UUID) (core.Transformer, bool) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	t, exists := tr.transformers[id]
	if !exists {
		return nil, false
	}

	delete(tr.transformers, id)
	if name := t.Name(); name != "" {
		delete(tr.nameIndex, name)
	}

	if tr.events != nil {
		tr.events.Publish(TransformerRemovedEvent{
			TransformerID:   id,
			TransformerName: t.Name(),
			Timestamp:       time.Now(),
		})
	}

	return t, true
}

// Get retrieves a transformer by ID.
func (tr *TransformerRegistry) Get(id uuid.UUID) (core.Transformer, bool) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	t, exists := tr.transformers[id]
	return t, exists
}

// GetByName retrieves a transformer by name.
func (tr *TransformerRegistry) GetByName(name string) (core.Transformer, bool) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	id, exists := tr.nameIndex[name]
	if !exists {
		return nil, false
	}

	return tr.transformers[id], true
}

// CheckNameUniqueness checks if a name is unique.
func (tr *TransformerRegistry) CheckNameUniqueness(name string) bool {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	_, exists := tr.nameIndex[name]
	return !exists
}

// Spawn clones the named prototype, yielding a fresh transformer with
// identical configuration and an empty buffer.
func (tr *TransformerRegistry) Spawn(name string) (core.Transformer, error) {
	prototype, ok := tr.GetByName(name)
	if !ok {
		return nil, types.TransformErrorf(types.TransformerNotFound, "%q", name)
	}
	return prototype.Clone(), nil
}

// GetAll returns all registered transformers.
func (tr *TransformerRegistry) GetAll() map[uuid.UUID]core.Transformer {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	result := make(map[uuid.UUID]core.Transformer)
	for id, t := range tr.transformers {
		result[id] = t
	}
	return result
}

// Count returns the number of registered transformers.
func (tr *TransformerRegistry) Count() int {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	return len(tr.transformers)
}
