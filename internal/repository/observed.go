package repository

import (
	"context"
	"sync"
)

// Change describes a successful write to a KVStore.
type Change struct {
	Key     string
	Value   string
	Deleted bool
}

// ObservedStore wraps a KVStore and notifies subscribers after every
// successful write. Subscribers run synchronously on the writing
// goroutine and must not write back to the store.
type ObservedStore struct {
	KVStore

	mu     sync.Mutex
	nextID int
	subs   map[int]func(Change)
}

// NewObservedStore wraps inner.
func NewObservedStore(inner KVStore) *ObservedStore {
	return &ObservedStore{KVStore: inner, subs: make(map[int]func(Change))}
}

// Subscribe registers fn and returns a function that removes it.
func (s *ObservedStore) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *ObservedStore) Set(ctx context.Context, key, value string) error {
	if err := s.KVStore.Set(ctx, key, value); err != nil {
		return err
	}
	s.notify(Change{Key: key, Value: value})
	return nil
}

func (s *ObservedStore) SetMany(ctx context.Context, values map[string]string) error {
	if err := s.KVStore.SetMany(ctx, values); err != nil {
		return err
	}
	for k, v := range values {
		s.notify(Change{Key: k, Value: v})
	}
	return nil
}

func (s *ObservedStore) Delete(ctx context.Context, key string) error {
	if err := s.KVStore.Delete(ctx, key); err != nil {
		return err
	}
	s.notify(Change{Key: key, Deleted: true})
	return nil
}

func (s *ObservedStore) notify(c Change) {
	s.mu.Lock()
	fns := make([]func(Change), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}
