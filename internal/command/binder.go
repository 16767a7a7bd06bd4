package command

import (
	"log"

	"chainbot/internal/chain"
)

// Binder adapts a Registry to the chain dispatcher. Each transport supplies
// a bind function that builds the Context a command runs with; the chain
// core stays ignorant of sessions, messages and storage.
type Binder struct {
	reg  *Registry
	bind func(ev chain.Event, args []string) *Context
}

// NewBinder wraps reg for use as a chain.Registry.
func NewBinder(reg *Registry, bind func(ev chain.Event, args []string) *Context) *Binder {
	return &Binder{reg: reg, bind: bind}
}

// Lookup implements chain.Registry.
func (b *Binder) Lookup(name string) (chain.Command, bool) {
	c, ok := b.reg.Get(name)
	if !ok {
		return chain.Command{}, false
	}
	return chain.Command{
		Name:        c.Name,
		MinArgs:     c.MinArgs,
		MaxArgs:     c.MaxArgs,
		ChainUsable: c.ChainUsable,
		Usage:       c.Usage,
		Invoke: func(ev chain.Event, args []string) string {
			ctx := b.bind(ev, args)
			out, err := c.Run(ctx)
			if err != nil {
				// Command failures are diagnostic, not user-facing.
				log.Printf("[ERR] Command %s failed: %v", c.Name, err)
				return ""
			}
			return out
		},
	}, true
}
