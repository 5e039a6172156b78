package store

import (
	"context"
	"fmt"
)

// Collection adalah view bertipe di atas satu koleksi Store.
type Collection[T any] struct {
	store Store
	name  string
}

func NewCollection[T any](s Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

// With mengembalikan koleksi yang sama di atas store lain (mis. tx).
func (c *Collection[T]) With(s Store) *Collection[T] {
	return &Collection[T]{store: s, name: c.name}
}

func (c *Collection[T]) Add(ctx context.Context, id string, rec *T) error {
	b, err := encode(rec)
	if err != nil {
		return wrap("encode", c.name, fmt.Errorf("id=%s: %w", id, err))
	}
	return c.store.Add(ctx, c.name, id, b)
}

func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	b, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		return nil, err
	}
	var out T
	if err := decode(b, &out); err != nil {
		return nil, wrap("decode", c.name, fmt.Errorf("id=%s: %w", id, err))
	}
	return &out, nil
}

func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	rows, err := c.store.GetAll(ctx, c.name)
	if err != nil {
		return nil, err
	}
	return c.decodeAll(rows)
}

func (c *Collection[T]) GetAllByIndex(ctx context.Context, field, value string) ([]T, error) {
	rows, err := c.store.GetAllByIndex(ctx, c.name, field, value)
	if err != nil {
		return nil, err
	}
	return c.decodeAll(rows)
}

func (c *Collection[T]) Update(ctx context.Context, id string, rec *T) error {
	b, err := encode(rec)
	if err != nil {
		return wrap("encode", c.name, fmt.Errorf("id=%s: %w", id, err))
	}
	return c.store.Update(ctx, c.name, id, b)
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, c.name, id)
}

func (c *Collection[T]) decodeAll(rows []Raw) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, b := range rows {
		var v T
		if err := decode(b, &v); err != nil {
			return nil, wrap("decode", c.name, err)
		}
		out = append(out, v)
	}
	return out, nil
}
