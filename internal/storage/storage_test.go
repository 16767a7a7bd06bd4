package storage

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "datastore.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPrefixRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	prefix, err := s.Prefix("guild-1")
	require.NoError(t, err)
	assert.Equal(t, "", prefix, "no custom prefix by default")

	require.NoError(t, s.SetPrefix("guild-1", "?"))

	prefix, err = s.Prefix("guild-1")
	require.NoError(t, err)
	assert.Equal(t, "?", prefix)

	// Other guilds are unaffected.
	prefix, err = s.Prefix("guild-2")
	require.NoError(t, err)
	assert.Equal(t, "", prefix)
}

func TestChainHistoryIsCapped(t *testing.T) {
	s := newTestStorage(t)

	for i := 0; i < chainHistoryLimit+5; i++ {
		err := s.AddChainRecord("guild-1", "chan", "user", "name", fmt.Sprintf("echo %d", i))
		require.NoError(t, err)
	}

	history, err := s.ChainHistory("guild-1")
	require.NoError(t, err)
	require.Len(t, history, chainHistoryLimit)
	assert.Equal(t, fmt.Sprintf("echo %d", chainHistoryLimit+4), history[len(history)-1].Chain, "newest entry survives")

	count, err := s.GuildChainsProcessed("guild-1")
	require.NoError(t, err)
	assert.EqualValues(t, chainHistoryLimit+5, count, "counter is not capped with the history")
}

func TestTotalChainsProcessed(t *testing.T) {
	s := newTestStorage(t)

	total, err := s.TotalChainsProcessed()
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	require.NoError(t, s.AddChainRecord("guild-1", "c", "u", "n", "echo hi"))
	require.NoError(t, s.AddChainRecord("guild-2", "c", "u", "n", "echo ho"))

	total, err = s.TotalChainsProcessed()
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}
