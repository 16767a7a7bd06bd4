// Package core holds the builtin commands. All of them are plain text
// in/out so they compose well in chains; anything with side effects beyond
// responding is marked not chain-usable.
package core

import "chainbot/internal/command"

// RegisterAll registers every builtin on reg, wrapped with the given
// middlewares.
func RegisterAll(reg *command.Registry, mws ...command.Middleware) {
	for _, c := range []*command.Command{
		echoCommand(),
		sayCommand(),
		upcaseCommand(),
		downcaseCommand(),
		reverseCommand(),
		calcCommand(),
		rollCommand(),
		helpCommand(),
		aboutCommand(),
		statsCommand(),
		prefixCommand(),
	} {
		reg.Register(command.Apply(c, mws...))
	}
}
