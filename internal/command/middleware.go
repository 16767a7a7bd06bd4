package command

import "log"

// Middleware wraps a command, e.g. for logging or access checks. The first
// middleware in the list ends up outermost.
type Middleware func(*Command) *Command

// Apply applies middlewares to a command in order.
func Apply(c *Command, mws ...Middleware) *Command {
	for _, mw := range mws {
		c = mw(c)
	}
	return c
}

// WithInvocationLog logs every invocation with its argument count.
func WithInvocationLog() Middleware {
	return func(c *Command) *Command {
		inner := c.Run
		wrapped := *c
		wrapped.Run = func(ctx *Context) (string, error) {
			log.Printf("[INFO] Running command %s (%d args)", c.Name, len(ctx.Args))
			return inner(ctx)
		}
		return &wrapped
	}
}
