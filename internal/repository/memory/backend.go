// Package memory keeps records in process memory. Everything is lost on restart.
package memory

import (
	"context"
	"strconv"
	"sync"

	"NGO_Platform/internal/model"
	"NGO_Platform/internal/repository"
)

type collection struct {
	counter uint64
	records map[string]model.Record
	order   []string
	// lookup value -> record id for repository.IndexedFields
	index map[string]string
}

type Backend struct {
	mu    sync.RWMutex
	kinds map[model.Kind]*collection
}

var _ repository.Backend = (*Backend)(nil)

func NewBackend() *Backend {
	b := &Backend{kinds: make(map[model.Kind]*collection, len(model.Kinds))}
	for _, k := range model.Kinds {
		b.kinds[k] = &collection{
			records: make(map[string]model.Record),
			index:   make(map[string]string),
		}
	}
	return b
}

func (b *Backend) coll(kind model.Kind) *collection {
	c, ok := b.kinds[kind]
	if !ok {
		c = &collection{records: make(map[string]model.Record), index: make(map[string]string)}
		b.kinds[kind] = c
	}
	return c
}

func (b *Backend) NextID(_ context.Context, kind model.Kind) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.coll(kind)
	c.counter++
	return strconv.FormatUint(c.counter, 10), nil
}

func (b *Backend) Insert(_ context.Context, kind model.Kind, rec model.Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.coll(kind)
	id := rec.ID()
	if _, exists := c.records[id]; !exists {
		c.order = append(c.order, id)
	}
	c.records[id] = rec.Clone()
	c.addIndex(kind, id, rec)
	return nil
}

func (b *Backend) Get(_ context.Context, kind model.Kind, id string) (model.Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	rec, ok := b.coll(kind).records[id]
	if !ok {
		return nil, repository.ErrNoRecord
	}
	return rec.Clone(), nil
}

func (b *Backend) FindBy(_ context.Context, kind model.Kind, field, value string) (model.Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	c := b.coll(kind)
	if field == repository.IndexedFields[kind] {
		if id, ok := c.index[value]; ok {
			return c.records[id].Clone(), nil
		}
		return nil, repository.ErrNoRecord
	}
	for _, id := range c.order {
		if rec := c.records[id]; rec.String(field) == value {
			return rec.Clone(), nil
		}
	}
	return nil, repository.ErrNoRecord
}

func (b *Backend) List(_ context.Context, kind model.Kind) ([]model.Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	c := b.coll(kind)
	out := make([]model.Record, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.records[id].Clone())
	}
	return out, nil
}

func (b *Backend) Replace(_ context.Context, kind model.Kind, id string, rec model.Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.coll(kind)
	old, ok := c.records[id]
	if !ok {
		return repository.ErrNoRecord
	}
	c.removeIndex(kind, id, old)
	c.records[id] = rec.Clone()
	c.addIndex(kind, id, rec)
	return nil
}

func (b *Backend) Delete(_ context.Context, kind model.Kind, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.coll(kind)
	old, ok := c.records[id]
	if !ok {
		return repository.ErrNoRecord
	}
	c.removeIndex(kind, id, old)
	delete(c.records, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// addIndex keeps the first holder of a value, matching a scan in insertion order.
func (c *collection) addIndex(kind model.Kind, id string, rec model.Record) {
	field, ok := repository.IndexedFields[kind]
	if !ok {
		return
	}
	v := rec.String(field)
	if v == "" {
		return
	}
	if _, taken := c.index[v]; !taken {
		c.index[v] = id
	}
}

func (c *collection) removeIndex(kind model.Kind, id string, rec model.Record) {
	field, ok := repository.IndexedFields[kind]
	if !ok {
		return
	}
	v := rec.String(field)
	if c.index[v] == id {
		delete(c.index, v)
	}
}
