// /internal/storage/storage.go
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const chainHistoryLimit = 20

// statsKey holds bot-wide counters, separate from per-guild records. Guild
// IDs are numeric snowflakes, so the underscore can't collide.
const statsKey = "_stats"

type Storage struct {
	ds *datastore.DataStore
}

// ChainHistoryRecord is one processed chain, kept per guild for diagnostics.
type ChainHistoryRecord struct {
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Chain     string    `json:"chain"`
	Datetime  time.Time `json:"datetime"`
}

// Record is everything stored for one guild.
type Record struct {
	Prefix          string               `json:"prefix,omitempty"`
	ChainHistory    []ChainHistoryRecord `json:"chain_history"`
	ChainsProcessed int64                `json:"chains_processed"`
}

type statsRecord struct {
	ChainsProcessed int64     `json:"chains_processed"`
	StartedAt       time.Time `json:"started_at"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// Helper function to get or create a Record for a guild
func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		newRecord := &Record{ChainHistory: []ChainHistoryRecord{}}
		s.ds.Add(guildID, newRecord)
		return newRecord, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}

	return &record, nil
}

// Prefix returns the guild's custom trigger prefix, or "" if none is set.
func (s *Storage) Prefix(guildID string) (string, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return "", err
	}
	return record.Prefix, nil
}

// SetPrefix stores a custom trigger prefix for the guild. An empty prefix
// reverts the guild to the bot default.
func (s *Storage) SetPrefix(guildID, prefix string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Prefix = prefix
	s.ds.Add(guildID, record)
	return nil
}

// AddChainRecord appends one processed chain to the guild history, capped at
// chainHistoryLimit entries, and bumps the counters.
func (s *Storage) AddChainRecord(guildID, channelID, userID, username, chainText string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.ChainHistory = append(record.ChainHistory, ChainHistoryRecord{
		ChannelID: channelID,
		UserID:    userID,
		Username:  username,
		Chain:     chainText,
		Datetime:  time.Now(),
	})
	if len(record.ChainHistory) > chainHistoryLimit {
		record.ChainHistory = record.ChainHistory[len(record.ChainHistory)-chainHistoryLimit:]
	}
	record.ChainsProcessed++
	s.ds.Add(guildID, record)

	return s.bumpTotal()
}

// ChainHistory returns the guild's recent chains, newest last.
func (s *Storage) ChainHistory(guildID string) ([]ChainHistoryRecord, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.ChainHistory, nil
}

// GuildChainsProcessed returns how many chains the guild has run.
func (s *Storage) GuildChainsProcessed(guildID string) (int64, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return 0, err
	}
	return record.ChainsProcessed, nil
}

func (s *Storage) getStats() (*statsRecord, error) {
	data, exists := s.ds.Get(statsKey)
	if !exists {
		stats := &statsRecord{StartedAt: time.Now()}
		s.ds.Add(statsKey, stats)
		return stats, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling stats: %w", err)
	}
	var stats statsRecord
	if err := json.Unmarshal(jsonData, &stats); err != nil {
		return nil, fmt.Errorf("error unmarshalling stats: %w", err)
	}
	return &stats, nil
}

func (s *Storage) bumpTotal() error {
	stats, err := s.getStats()
	if err != nil {
		return err
	}
	stats.ChainsProcessed++
	s.ds.Add(statsKey, stats)
	return nil
}

// TotalChainsProcessed returns the bot-wide processed-chain counter.
func (s *Storage) TotalChainsProcessed() (int64, error) {
	stats, err := s.getStats()
	if err != nil {
		return 0, err
	}
	return stats.ChainsProcessed, nil
}
