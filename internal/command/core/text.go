package core

import (
	"strings"

	"chainbot/internal/command"
)

func upcaseCommand() *command.Command {
	return &command.Command{
		Name:        "upcase",
		Description: "Uppercases its arguments",
		Aliases:     []string{"upper"},
		Category:    "💬 Text",
		Usage:       "upcase <text>",
		MinArgs:     1,
		MaxArgs:     command.Unbounded,
		ChainUsable: true,
		Run: func(ctx *command.Context) (string, error) {
			return strings.ToUpper(strings.Join(ctx.Args, " ")), nil
		},
	}
}

func downcaseCommand() *command.Command {
	return &command.Command{
		Name:        "downcase",
		Description: "Lowercases its arguments",
		Aliases:     []string{"lower"},
		Category:    "💬 Text",
		Usage:       "downcase <text>",
		MinArgs:     1,
		MaxArgs:     command.Unbounded,
		ChainUsable: true,
		Run: func(ctx *command.Context) (string, error) {
			return strings.ToLower(strings.Join(ctx.Args, " ")), nil
		},
	}
}

func reverseCommand() *command.Command {
	return &command.Command{
		Name:        "reverse",
		Description: "Reverses its arguments rune by rune",
		Category:    "💬 Text",
		Usage:       "reverse <text>",
		MinArgs:     1,
		MaxArgs:     command.Unbounded,
		ChainUsable: true,
		Run: func(ctx *command.Context) (string, error) {
			runes := []rune(strings.Join(ctx.Args, " "))
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			return string(runes), nil
		},
	}
}
