package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.DiscordToken)
	assert.Equal(t, "datastore.json", cfg.StoragePath)
	assert.Equal(t, "!", cfg.Prefix)
	assert.Equal(t, ">", cfg.ChainDelimiter)
	assert.Equal(t, `"`, cfg.ChainQuoteStart)
}

func TestNewRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := New()
	assert.Error(t, err)
}

func TestSyntaxConversion(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	t.Run("defaults convert cleanly", func(t *testing.T) {
		cfg, err := New()
		require.NoError(t, err)

		syn, err := cfg.Syntax()
		require.NoError(t, err)
		assert.Equal(t, '>', syn.Delimiter)
		assert.Equal(t, '~', syn.Previous)
		assert.Equal(t, '[', syn.SubStart)
	})

	t.Run("multi-character values are rejected", func(t *testing.T) {
		cfg, err := New()
		require.NoError(t, err)
		cfg.ChainDelimiter = ">>"

		_, err = cfg.Syntax()
		assert.ErrorContains(t, err, "exactly one character")
	})

	t.Run("empty values are rejected", func(t *testing.T) {
		cfg, err := New()
		require.NoError(t, err)
		cfg.ChainPrevious = ""

		_, err = cfg.Syntax()
		assert.ErrorContains(t, err, "exactly one character")
	})

	t.Run("identical brackets are rejected", func(t *testing.T) {
		cfg, err := New()
		require.NoError(t, err)
		cfg.ChainSubStart = "]"

		_, err = cfg.Syntax()
		assert.Error(t, err)
	})
}
