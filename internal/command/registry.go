package command

import (
	"sort"
	"sync"
)

// Registry stores commands by name and alias. Lookups happen concurrently
// from every chain being dispatched, registration may happen at runtime, so
// access is guarded by a read-write lock.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds a command under its name and all aliases, replacing any
// previous registration.
func (r *Registry) Register(c *Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[c.Name] = c
	for _, a := range c.Aliases {
		r.commands[a] = c
	}
}

// Unregister removes a command and its aliases.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.commands[name]
	if !ok {
		return
	}
	delete(r.commands, c.Name)
	for _, a := range c.Aliases {
		delete(r.commands, a)
	}
}

// Get returns the command registered under name or one of its aliases.
func (r *Registry) Get(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.commands[name]
	return c, ok
}

// All returns every registered command once, sorted by name.
func (r *Registry) All() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool, len(r.commands))
	list := make([]*Command, 0, len(r.commands))
	for _, c := range r.commands {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
