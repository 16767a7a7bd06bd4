package core

import (
	"strings"

	"chainbot/internal/command"
)

func echoCommand() *command.Command {
	return &command.Command{
		Name:        "echo",
		Description: "Returns its arguments unchanged",
		Category:    "💬 Text",
		Usage:       "echo <text>",
		MinArgs:     0,
		MaxArgs:     command.Unbounded,
		ChainUsable: true,
		Run: func(ctx *command.Context) (string, error) {
			return strings.Join(ctx.Args, " "), nil
		},
	}
}

func sayCommand() *command.Command {
	return &command.Command{
		Name:        "say",
		Description: "Sends its arguments to the channel",
		Category:    "💬 Text",
		Usage:       "say <text>",
		MinArgs:     1,
		MaxArgs:     command.Unbounded,
		ChainUsable: true,
		Run: func(ctx *command.Context) (string, error) {
			text := strings.Join(ctx.Args, " ")
			ctx.Event.Respond(text)
			return text, nil
		},
	}
}
