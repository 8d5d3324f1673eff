package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds registered commands by name and alias.
type Registry struct {
	mu      sync.RWMutex
	lookup  map[string]Command // name and aliases map to command
	primary []Command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		lookup: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the name or any alias is already taken.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.lookup[c.Name()]; exists {
		return fmt.Errorf("command already registered: %s", c.Name())
	}
	for _, alias := range c.Aliases() {
		if _, exists := r.lookup[alias]; exists {
			return fmt.Errorf("command alias already registered: %s", alias)
		}
	}

	r.lookup[c.Name()] = c
	for _, alias := range c.Aliases() {
		r.lookup[alias] = c
	}
	r.primary = append(r.primary, c)
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.lookup[name]
	return cmd, ok
}

// All returns every command once, sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	out := make([]Command, len(r.primary))
	copy(out, r.primary)
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// DefaultRegistry is the global command registry. Commands add themselves
// from init.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry. It panics on a
// duplicate, which can only be a programming error.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
