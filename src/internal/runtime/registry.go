package runtime

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages all registered runtime providers
type Registry struct {
	providers map[string]Provider
	mu        sync.RWMutex
}

// Global registry instance
var globalRegistry = NewRegistry()

// NewRegistry creates a new runtime registry
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// Register adds a runtime provider to the registry
func (r *Registry) Register(provider Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := provider.Name()
	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("runtime provider '%s' is already registered", name)
	}

	r.providers[name] = provider
	return nil
}

// Get retrieves a runtime provider by name
func (r *Registry) Get(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("runtime provider '%s' not found", name)
	}

	return provider, nil
}

// Has checks if a runtime provider is registered
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// List returns all registered provider names, sorted
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns all registered providers, sorted by name
func (r *Registry) GetAll() []Provider {
	names := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]Provider, 0, len(names))
	for _, name := range names {
		if p, ok := r.providers[name]; ok {
			providers = append(providers, p)
		}
	}
	return providers
}

// Global registry access functions

// Register adds a provider to the global registry
func Register(provider Provider) error {
	return globalRegistry.Register(provider)
}

// GetRegistry returns the global registry instance
func GetRegistry() *Registry {
	return globalRegistry
}
