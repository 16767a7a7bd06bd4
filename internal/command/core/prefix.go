package core

import (
	"fmt"

	"chainbot/internal/command"
)

func prefixCommand() *command.Command {
	return &command.Command{
		Name:        "prefix",
		Description: "Shows or sets this server's trigger prefix",
		Category:    "⚙️ Settings",
		Usage:       "prefix [new-prefix]",
		MinArgs:     0,
		MaxArgs:     1,
		ChainUsable: false,
		Run: func(ctx *command.Context) (string, error) {
			if ctx.Message == nil || ctx.Message.GuildID == "" || ctx.Storage == nil {
				return "The prefix can only be changed in a server.", nil
			}
			guildID := ctx.Message.GuildID

			if len(ctx.Args) == 0 {
				prefix, err := ctx.Storage.Prefix(guildID)
				if err != nil {
					return "", fmt.Errorf("reading prefix: %w", err)
				}
				if prefix == "" {
					return "This server uses the default prefix.", nil
				}
				return fmt.Sprintf("This server's prefix is `%s`.", prefix), nil
			}

			newPrefix := ctx.Args[0]
			if len(newPrefix) > 8 {
				return "That prefix is too long, keep it under 8 characters.", nil
			}
			if err := ctx.Storage.SetPrefix(guildID, newPrefix); err != nil {
				return "", fmt.Errorf("saving prefix: %w", err)
			}
			return fmt.Sprintf("Prefix changed to `%s`.", newPrefix), nil
		},
	}
}
