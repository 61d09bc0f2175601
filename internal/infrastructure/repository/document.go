package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"go.uber.org/zap"

	domainRepo "github.com/sangkips/pos-terminal/internal/domain/repository"
	"github.com/sangkips/pos-terminal/pkg/apperror"
)

// document is one JSON value in the key-value store, cached after first load.
// All access is serialized by mu; mutations persist the new value before the
// cache is replaced, so a failed write leaves both store and cache unchanged.
type document[T any] struct {
	store    domainRepo.KVStore
	key      string
	fallback func() T
	clone    func(T) T
	log      *zap.Logger

	mu     sync.Mutex
	loaded bool
	value  T
}

func newDocument[T any](store domainRepo.KVStore, key string, fallback func() T, clone func(T) T, log *zap.Logger) *document[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &document[T]{store: store, key: key, fallback: fallback, clone: clone, log: log}
}

// load must be called with mu held
func (d *document[T]) load(ctx context.Context) (T, error) {
	if d.loaded {
		return d.value, nil
	}

	raw, ok, err := d.store.Get(ctx, d.key)
	if err != nil {
		var zero T
		d.log.Error("failed to load document", zap.String("key", d.key), zap.Error(err))
		return zero, apperror.NewStorageError(err)
	}

	value := d.fallback()
	if ok {
		var decoded T
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			// unreadable documents fall back to defaults
			d.log.Warn("discarding unreadable document", zap.String("key", d.key), zap.Error(err))
		} else {
			value = decoded
		}
	}

	d.value = value
	d.loaded = true
	return d.value, nil
}

// Read returns a copy of the current value
func (d *document[T]) Read(ctx context.Context) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	v, err := d.load(ctx)
	if err != nil {
		return v, err
	}
	return d.clone(v), nil
}

// Mutate applies fn to a copy of the current value and persists the result.
// If fn returns an error nothing is written.
func (d *document[T]) Mutate(ctx context.Context, fn func(T) (T, error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	current, err := d.load(ctx)
	if err != nil {
		return err
	}

	next, err := fn(d.clone(current))
	if err != nil {
		return err
	}

	data, err := json.Marshal(next)
	if err != nil {
		appErr := apperror.NewAppError(http.StatusInternalServerError, "Failed to encode "+d.key)
		appErr.Err = err
		return appErr
	}
	if err := d.store.Set(ctx, d.key, string(data)); err != nil {
		d.log.Error("failed to persist document", zap.String("key", d.key), zap.Error(err))
		return apperror.NewStorageError(err)
	}

	d.value = next
	return nil
}

func cloneSlice[E any](s []E) []E {
	out := make([]E, len(s))
	copy(out, s)
	return out
}

func cloneValue[T any](v T) T {
	return v
}
