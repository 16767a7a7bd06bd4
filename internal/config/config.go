// /internal/config/config.go
package config

import (
	"fmt"
	"log"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"chainbot/internal/chain"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

// Config is read once at startup and treated as read-only afterwards.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"datastore.json"`
	Prefix       string `env:"COMMAND_PREFIX" envDefault:"!"`
	StatusAddr   string `env:"STATUS_ADDR" envDefault:":8787"`

	// Per-user chain rate limit: sustained chains per second and burst.
	ChainRate  float64 `env:"CHAIN_RATE" envDefault:"1"`
	ChainBurst int     `env:"CHAIN_BURST" envDefault:"3"`

	// Chain syntax characters; each must be exactly one character.
	ChainPrevious   string `env:"CHAIN_PREVIOUS" envDefault:"~"`
	ChainDelimiter  string `env:"CHAIN_DELIMITER" envDefault:">"`
	ChainArgsDelim  string `env:"CHAIN_ARGS_DELIM" envDefault:":"`
	ChainSubStart   string `env:"CHAIN_SUB_START" envDefault:"["`
	ChainSubEnd     string `env:"CHAIN_SUB_END" envDefault:"]"`
	ChainQuoteStart string `env:"CHAIN_QUOTE_START" envDefault:"\""`
	ChainQuoteEnd   string `env:"CHAIN_QUOTE_END" envDefault:"\""`
}

// New parses the environment into a Config.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Syntax converts the configured syntax characters into a validated
// chain.Syntax. Multi-character or empty values are rejected here, at
// startup, rather than producing undefined parse behavior later.
func (c *Config) Syntax() (chain.Syntax, error) {
	syn := chain.Syntax{}
	for _, f := range []struct {
		name  string
		value string
		dst   *rune
	}{
		{"CHAIN_PREVIOUS", c.ChainPrevious, &syn.Previous},
		{"CHAIN_DELIMITER", c.ChainDelimiter, &syn.Delimiter},
		{"CHAIN_ARGS_DELIM", c.ChainArgsDelim, &syn.ArgsDelim},
		{"CHAIN_SUB_START", c.ChainSubStart, &syn.SubStart},
		{"CHAIN_SUB_END", c.ChainSubEnd, &syn.SubEnd},
		{"CHAIN_QUOTE_START", c.ChainQuoteStart, &syn.QuoteStart},
		{"CHAIN_QUOTE_END", c.ChainQuoteEnd, &syn.QuoteEnd},
	} {
		if utf8.RuneCountInString(f.value) != 1 {
			return chain.Syntax{}, fmt.Errorf("config: %s must be exactly one character, got %q", f.name, f.value)
		}
		r, _ := utf8.DecodeRuneInString(f.value)
		*f.dst = r
	}
	if err := syn.Validate(); err != nil {
		return chain.Syntax{}, fmt.Errorf("config: %w", err)
	}
	return syn, nil
}
