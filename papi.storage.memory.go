package papi

import (
	"context"
	"sync"
)

// MemoryStatsStorage is an in-memory implementation of StatsStorage.
// It is primarily intended for testing and development; all data is
// lost when the process terminates.
type MemoryStatsStorage struct {
	mu     sync.RWMutex
	stats  map[string]PlayerStats
	closed bool
}

// MemoryStatsDriver is the driver for creating MemoryStatsStorage instances.
type MemoryStatsDriver struct{}

func init() {
	RegisterStatsDriver(StatsDriverNameMemory, &MemoryStatsDriver{})
}

// Open creates a new MemoryStatsStorage.
// The connection string is ignored for memory storage.
func (d *MemoryStatsDriver) Open(connectionString string) (StatsStorage, error) {
	return NewMemoryStatsStorage(), nil
}

// NewMemoryStatsStorage creates a new in-memory stats storage.
func NewMemoryStatsStorage() *MemoryStatsStorage {
	return &MemoryStatsStorage{
		stats: make(map[string]PlayerStats),
	}
}

// Get retrieves a player's stats.
func (s *MemoryStatsStorage) Get(ctx context.Context, player string) (PlayerStats, error) {
	if err := ctx.Err(); err != nil {
		return PlayerStats{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return PlayerStats{}, newStatsClosedError()
	}

	stats, ok := s.stats[player]
	if !ok {
		return PlayerStats{}, ErrStatsNotFound
	}
	return stats, nil
}

// Save stores a player's stats, replacing any existing record.
func (s *MemoryStatsStorage) Save(ctx context.Context, player string, stats PlayerStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if player == "" {
		return newEmptyPlayerNameError()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return newStatsClosedError()
	}

	s.stats[player] = stats
	return nil
}

// Delete removes a player's stats.
func (s *MemoryStatsStorage) Delete(ctx context.Context, player string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return newStatsClosedError()
	}

	if _, ok := s.stats[player]; !ok {
		return ErrStatsNotFound
	}
	delete(s.stats, player)
	return nil
}

// List returns all stored player names.
func (s *MemoryStatsStorage) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, newStatsClosedError()
	}

	names := make([]string, 0, len(s.stats))
	for name := range s.stats {
		names = append(names, name)
	}
	return names, nil
}

// Close marks the storage as closed. Subsequent operations fail.
func (s *MemoryStatsStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
