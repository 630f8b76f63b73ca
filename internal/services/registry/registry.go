// Package registry provides the name-keyed catalog of shared item prototypes
package registry

//go:generate mockgen -destination=mock/mock_registry.go -package=registrymock github.com/KirkDiggler/ducttape-items/internal/services/registry Service

import (
	"context"
	"log/slog"
	"reflect"
	"sort"
	"sync"

	"github.com/KirkDiggler/ducttape-items/internal/entities/item"
	"github.com/KirkDiggler/ducttape-items/internal/errors"
)

// ErrNotFound is returned for names that are not registered
var ErrNotFound = errors.Sentinel(errors.CodeNotFound, "item not registered")

// Service is the item catalog
type Service interface {
	// Register stores it under name, replacing any previous item
	Register(name string, it item.Item)
	// Get returns ErrNotFound for unknown names
	Get(name string) (item.Item, error)
	// Remove reports whether name was registered. Items already held by
	// stacks stay valid.
	Remove(name string) bool
	Contains(name string) bool
	// Names lists registered names in sorted order
	Names() []string
	// NameOf returns the name it is registered under, matching by identity.
	// With several names the first in sorted order wins.
	NameOf(it item.Item) (string, bool)
}

// Config configures the registry
type Config struct {
	Logger *slog.Logger
}

// Registry is a mutex-guarded Service
type Registry struct {
	mu     sync.RWMutex
	items  map[string]item.Item
	logger *slog.Logger
}

// New returns an empty registry. cfg may be nil.
func New(cfg *Config) *Registry {
	l := slog.Default()
	if cfg != nil && cfg.Logger != nil {
		l = cfg.Logger
	}
	return &Registry{
		items:  make(map[string]item.Item),
		logger: l,
	}
}

func (r *Registry) Register(name string, it item.Item) {
	r.mu.Lock()
	_, replaced := r.items[name]
	r.items[name] = it
	r.mu.Unlock()

	r.logger.Debug("registered item",
		"name", name,
		"ident", it.Ident(),
		"replaced", replaced)
}

func (r *Registry) Get(name string) (item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "item %q not registered", name)
	}
	return it, nil
}

func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[name]
	delete(r.items, name)
	return ok
}

func (r *Registry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[name]
	return ok
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

func (r *Registry) NameOf(it item.Item) (string, bool) {
	if it == nil || !reflect.TypeOf(it).Comparable() {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	found := ""
	for name, registered := range r.items {
		if registered != it {
			continue
		}
		if found == "" || name < found {
			found = name
		}
	}
	return found, found != ""
}

// Lookup resolves every name, failing on the first unknown one
func Lookup(_ context.Context, svc Service, names map[string]string) (map[string]item.Item, error) {
	out := make(map[string]item.Item, len(names))
	for part, name := range names {
		it, err := svc.Get(name)
		if err != nil {
			return nil, errors.Wrapf(err, "component %s", part)
		}
		out[part] = it
	}
	return out, nil
}

var _ Service = (*Registry)(nil)
