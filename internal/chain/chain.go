// Package chain implements the composable command language of the bot: a
// single message can carry several commands separated by a delimiter, with
// each command's textual result threaded into the next one, bracketed
// sub-chains resolved recursively, quoted spans protected from splitting,
// and an optional directive prologue (currently `repeat N`).
//
// The package knows nothing about Discord. It talks to the outside world
// through two narrow interfaces: a Registry for command lookup and an Event
// for user-visible notices. One Processor is safe for concurrent use; all
// per-chain state lives on the stack of a Process call.
package chain

import (
	"fmt"
	"strconv"
)

// Event is the response side channel of whatever triggered the chain.
// Notices (unknown command, usage hints, syntax errors) go through Respond;
// the chain result itself is returned by Process.
type Event interface {
	Respond(text string)
}

// Command is the registry's view of one executable command, with the
// constraints the dispatcher validates before invoking it. MaxArgs of -1
// means unbounded.
type Command struct {
	Name        string
	MinArgs     int
	MaxArgs     int
	ChainUsable bool
	Usage       string
	Invoke      func(ev Event, args []string) string
}

// Registry resolves command names. Implementations must allow concurrent
// lookups while chains are dispatching.
type Registry interface {
	Lookup(name string) (Command, bool)
}

// Config tunes a Processor beyond its syntax.
type Config struct {
	Syntax Syntax

	// NotFoundFormat is the notice template for unknown commands, with one
	// %s verb for the name. Empty disables the notice.
	NotFoundFormat string

	// MaxDepth caps sub-chain nesting. Deeper chains abort with a notice.
	MaxDepth int
}

// DefaultConfig returns the stock processor configuration.
func DefaultConfig() Config {
	return Config{
		Syntax:         DefaultSyntax(),
		NotFoundFormat: "The command `%s` doesn't exist.",
		MaxDepth:       16,
	}
}

// Processor parses and executes command chains against one registry.
type Processor struct {
	cfg Config
	reg Registry
}

// New creates a Processor with the default configuration.
func New(reg Registry) *Processor {
	return NewWithConfig(reg, DefaultConfig())
}

// NewWithConfig creates a Processor with a custom configuration. The syntax
// must pass Validate; see Syntax.
func NewWithConfig(reg Registry, cfg Config) *Processor {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultConfig().MaxDepth
	}
	return &Processor{cfg: cfg, reg: reg}
}

// Syntax returns the syntax the processor was built with.
func (p *Processor) Syntax() Syntax { return p.cfg.Syntax }

// Process parses raw as a command chain and executes it, returning the
// result of the last command (threaded through any repeat directives).
// Syntax errors and per-command failures are reported through ev and never
// abort sibling commands or the caller.
func (p *Processor) Process(raw string, ev Event) string {
	return p.run(raw, ev, 0)
}

// run is the whole pipeline for one chain or sub-chain: escape scan with
// sub-chain resolution, directive prologue split, body execution, repeats.
func (p *Processor) run(raw string, ev Event, depth int) string {
	if depth > p.cfg.MaxDepth {
		ev.Respond(fmt.Sprintf("Sub-chains nested deeper than %d levels, giving up.", p.cfg.MaxDepth))
		return ""
	}

	escaped, ok := p.escape(raw, ev, depth)
	if !ok {
		// Mismatched brackets; the notice was already sent.
		return ""
	}

	directives, body := p.splitChainArgs(escaped)

	result := p.executeBody(body, ev, depth)

	for _, d := range directives {
		if d.name != "repeat" || len(d.args) == 0 {
			continue
		}
		// A non-numeric count means zero extra runs, never an error.
		n, _ := strconv.Atoi(d.args[0])
		for i := 0; i < n; i++ {
			result = p.executeBody(body, ev, depth)
		}
	}

	return result
}
