package core

import (
	"fmt"
	"strings"

	"chainbot/internal/command"
	"chainbot/internal/version"
	"chainbot/pkg/util"
)

func helpCommand() *command.Command {
	return &command.Command{
		Name:        "help",
		Description: "Lists all commands",
		Aliases:     []string{"commands"},
		Category:    "ℹ️ Info",
		Usage:       "help",
		MinArgs:     0,
		MaxArgs:     0,
		ChainUsable: false,
		Run: func(ctx *command.Context) (string, error) {
			var b strings.Builder
			b.WriteString("**Commands**\n")
			for _, c := range ctx.Registry.All() {
				fmt.Fprintf(&b, "`%s` — %s", c.Name, c.Description)
				if !c.ChainUsable {
					b.WriteString(" (not chainable)")
				}
				b.WriteString("\n")
			}
			return b.String(), nil
		},
	}
}

func aboutCommand() *command.Command {
	return &command.Command{
		Name:        "about",
		Description: "Shows bot version",
		Category:    "ℹ️ Info",
		Usage:       "about",
		MinArgs:     0,
		MaxArgs:     0,
		ChainUsable: true,
		Run: func(ctx *command.Context) (string, error) {
			return version.String(), nil
		},
	}
}

func statsCommand() *command.Command {
	return &command.Command{
		Name:        "stats",
		Description: "Shows chain usage for this server",
		Category:    "ℹ️ Info",
		Usage:       "stats",
		MinArgs:     0,
		MaxArgs:     0,
		ChainUsable: false,
		Run: func(ctx *command.Context) (string, error) {
			if ctx.Message == nil || ctx.Message.GuildID == "" || ctx.Storage == nil {
				return "Stats are only tracked in servers.", nil
			}
			guildID := ctx.Message.GuildID

			count, err := ctx.Storage.GuildChainsProcessed(guildID)
			if err != nil {
				return "", fmt.Errorf("reading guild stats: %w", err)
			}

			history, err := ctx.Storage.ChainHistory(guildID)
			if err != nil {
				return "", fmt.Errorf("reading chain history: %w", err)
			}

			out := fmt.Sprintf("Chains processed here: **%d**", count)
			if len(history) > 0 {
				last := history[len(history)-1]
				out += fmt.Sprintf("\nLast chain: `%s` by %s at %s",
					last.Chain, last.Username,
					util.FormatDateTpl(last.Datetime.UnixMilli(), "YYYY-MM-DD hh:mm"))
			}
			return out, nil
		},
	}
}
