// Package command holds the bot's command registry. A command is a plain
// record with its chain constraints and a Run function; how commands are
// parsed out of a message and threaded together lives in internal/chain,
// and the transports (Discord, CLI) build the Context handed to Run.
package command

import (
	"github.com/bwmarrin/discordgo"

	"chainbot/internal/chain"
	"chainbot/internal/storage"
)

// Unbounded marks a command that accepts any number of arguments.
const Unbounded = -1

// Context is what a command body receives when invoked. Session and Message
// are nil when the command runs outside Discord (CLI, tests).
type Context struct {
	Session  *discordgo.Session
	Message  *discordgo.MessageCreate
	Storage  *storage.Storage
	Registry *Registry
	Event    chain.Event
	Args     []string
}

// Command describes one registered command. MinArgs/MaxArgs bound the
// argument count the dispatcher will accept (MaxArgs = Unbounded lifts the
// upper bound). ChainUsable commands may run as part of a multi-command
// chain or sub-chain; others only stand alone.
//
// Run returns the command's textual result, which the chain threads into
// the next command. Errors are logged, never shown to the user.
type Command struct {
	Name        string
	Description string
	Aliases     []string
	Category    string
	Usage       string
	MinArgs     int
	MaxArgs     int
	ChainUsable bool
	Run         func(ctx *Context) (string, error)
}
