package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Collection names shared by every backend
const (
	ProductsCollection        = "products"
	PricingVersionsCollection = "pricing-versions"
	SeasonsCollection         = "seasons"
	DeparturesCollection      = "departures"
)

// Backend stores one whole document per collection name
type Backend interface {
	// Get returns the stored payload; the bool is false when the collection was never written
	Get(ctx context.Context, name string) ([]byte, bool, error)
	Put(ctx context.Context, name string, payload []byte) error
	Close(ctx context.Context) error
}

// EntityStore persists a homogeneous list of records
type EntityStore[T any] interface {
	Load(ctx context.Context) ([]T, bool, error)
	Save(ctx context.Context, items []T) error
	Update(ctx context.Context, fn func([]T) ([]T, error)) error
}

// DocumentCollection keeps a list of T as a single JSON array on a Backend.
// Writes through Save and Update are serialized per collection.
type DocumentCollection[T any] struct {
	backend Backend
	name    string
	mu      sync.Mutex
}

// NewDocumentCollection binds a collection name to a backend
func NewDocumentCollection[T any](backend Backend, name string) *DocumentCollection[T] {
	return &DocumentCollection[T]{
		backend: backend,
		name:    name,
	}
}

// Name returns the collection name
func (c *DocumentCollection[T]) Name() string {
	return c.name
}

// Load reads and decodes the collection
func (c *DocumentCollection[T]) Load(ctx context.Context) ([]T, bool, error) {
	payload, ok, err := c.backend.Get(ctx, c.name)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", c.name, err)
	}
	if !ok {
		return nil, false, nil
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, true, fmt.Errorf("failed to decode %s: %w", c.name, err)
	}
	return items, true, nil
}

// Save replaces the collection contents
func (c *DocumentCollection[T]) Save(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.save(ctx, items)
}

// Update runs a read-modify-write cycle under the collection lock
func (c *DocumentCollection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, _, err := c.Load(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(items)
	if err != nil {
		return err
	}
	return c.save(ctx, updated)
}

func (c *DocumentCollection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.name, err)
	}

	if err := c.backend.Put(ctx, c.name, payload); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.name, err)
	}
	return nil
}
