package sprig

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Factory builds a fresh instance.
type Factory[T any] func() (T, error)

// KeyedFactory builds a fresh instance and receives the key it was
// registered under, so one factory can serve several keys.
type KeyedFactory[T any] func(key string) (T, error)

// PackedScene is a loaded scene template that can be instantiated any number
// of times.
type PackedScene[T any] interface {
	Instantiate() (T, error)
}

// SceneLoader loads the scene template stored at path.
type SceneLoader[T any] func(path string) (PackedScene[T], error)

// Registry maps string keys to factories. Every call to New builds a new
// instance; nothing is cached except loaded scene templates.
//
// Registrations are explicit: build the table once at start-up, usually with
// a Builder, instead of discovering types at run time.
type Registry[T any] struct {
	mu        sync.RWMutex
	factories map[string]KeyedFactory[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]KeyedFactory[T])}
}

func (r *Registry[T]) add(key string, f KeyedFactory[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	r.factories[key] = f
	return nil
}

// Register adds a factory under key.
func (r *Registry[T]) Register(key string, f Factory[T]) error {
	return r.add(key, func(string) (T, error) { return f() })
}

// RegisterKeyed adds a factory that receives its key.
func (r *Registry[T]) RegisterKeyed(key string, f KeyedFactory[T]) error {
	return r.add(key, f)
}

// RegisterScene adds a factory that instantiates the scene at path. The
// scene is loaded on first use and kept; a failed load is retried on the
// next call.
func (r *Registry[T]) RegisterScene(key, path string, load SceneLoader[T]) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: key %q", ErrEmptyScenePath, key)
	}
	s := &lazyScene[T]{path: path, load: load}
	return r.add(key, func(string) (T, error) { return s.instantiate() })
}

// New builds a fresh instance for key.
func (r *Registry[T]) New(key string) (T, error) {
	r.mu.RLock()
	f, ok := r.factories[key]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return f(key)
}

// MustNew is New that panics on error.
func (r *Registry[T]) MustNew(key string) T {
	v, err := r.New(key)
	if err != nil {
		panic(fmt.Sprintf("sprig: registry %q: %v", key, err))
	}
	return v
}

// Has reports whether key has a factory.
func (r *Registry[T]) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[key]
	return ok
}

// Keys returns all registered keys in sorted order.
func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

type lazyScene[T any] struct {
	path  string
	load  SceneLoader[T]
	mu    sync.Mutex
	scene PackedScene[T]
}

func (s *lazyScene[T]) instantiate() (T, error) {
	s.mu.Lock()
	if s.scene == nil {
		scene, err := s.load(s.path)
		if err != nil {
			s.mu.Unlock()
			var zero T
			return zero, fmt.Errorf("load scene %q: %w", s.path, err)
		}
		s.scene = scene
	}
	scene := s.scene
	s.mu.Unlock()
	return scene.Instantiate()
}

// Builder collects registrations and reports the first failure from Build,
// so a start-up table can be written as one chained expression.
type Builder[T any] struct {
	reg *Registry[T]
	err error
}

// NewBuilder returns a Builder for an empty registry.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{reg: NewRegistry[T]()}
}

// Node registers a plain factory.
func (b *Builder[T]) Node(key string, f Factory[T]) *Builder[T] {
	if b.err == nil {
		b.err = b.reg.Register(key, f)
	}
	return b
}

// Keyed registers a factory that receives its key.
func (b *Builder[T]) Keyed(key string, f KeyedFactory[T]) *Builder[T] {
	if b.err == nil {
		b.err = b.reg.RegisterKeyed(key, f)
	}
	return b
}

// Scene registers a lazily loaded scene.
func (b *Builder[T]) Scene(key, path string, load SceneLoader[T]) *Builder[T] {
	if b.err == nil {
		b.err = b.reg.RegisterScene(key, path, load)
	}
	return b
}

// Build returns the registry, or the first registration error.
func (b *Builder[T]) Build() (*Registry[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.reg, nil
}
