package papi

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// damageRecord remembers who last damaged a victim and when.
type damageRecord struct {
	damager string
	at      time.Time
}

// KillTracker tracks player kills and killstreaks with a combat timer:
// a kill is credited to the last damager only while the damage is
// younger than the combat timeout. It backs the kills and killstreak
// placeholders and is safe for concurrent use from event handlers.
//
// With a stats storage attached, kill counts and streaks are persisted
// per player and loaded back on first lookup; without one the tracker
// is purely in-memory.
type KillTracker struct {
	mu          sync.RWMutex
	kills       map[string]int
	killstreaks map[string]int
	lastDamage  map[string]damageRecord

	combatTimeout time.Duration
	clock         func() time.Time
	storage       StatsStorage
	logger        *zap.Logger
}

// NewKillTracker creates an in-memory kill tracker. A zero or negative
// timeout falls back to the default of ten seconds.
func NewKillTracker(combatTimeout time.Duration) *KillTracker {
	return NewKillTrackerWithStorage(combatTimeout, nil, nil)
}

// NewKillTrackerWithStorage creates a kill tracker backed by a stats
// storage. The tracker takes ownership of the storage and closes it
// with Close.
func NewKillTrackerWithStorage(combatTimeout time.Duration, storage StatsStorage, logger *zap.Logger) *KillTracker {
	if combatTimeout <= 0 {
		combatTimeout = DefaultCombatTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KillTracker{
		kills:         make(map[string]int),
		killstreaks:   make(map[string]int),
		lastDamage:    make(map[string]damageRecord),
		combatTimeout: combatTimeout,
		clock:         time.Now,
		storage:       storage,
		logger:        logger,
	}
}

// setStorage attaches a storage backend. Must happen before the tracker
// is shared with concurrent callers.
func (t *KillTracker) setStorage(storage StatsStorage) {
	if t.storage == nil {
		t.storage = storage
	}
}

// setClock overrides the time source. Test hook.
func (t *KillTracker) setClock(clock func() time.Time) {
	t.clock = clock
}

// CombatTimeout returns the configured combat timeout.
func (t *KillTracker) CombatTimeout() time.Duration {
	return t.combatTimeout
}

// RecordDamage records damage dealt by one player to another.
// Self-damage is not tracked.
func (t *KillTracker) RecordDamage(victim, damager string) {
	if victim == "" || damager == "" || victim == damager {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastDamage[victim] = damageRecord{damager: damager, at: t.clock()}
}

// ValidKiller returns the player who should receive kill credit for the
// victim's death, if the last recorded damage is still within the
// combat timeout.
func (t *KillTracker) ValidKiller(victim string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rec, ok := t.lastDamage[victim]
	if !ok {
		return "", false
	}
	if t.clock().Sub(rec.at) > t.combatTimeout {
		return "", false
	}
	return rec.damager, true
}

// AddKill increments a player's kill count and killstreak.
func (t *KillTracker) AddKill(ctx context.Context, player string) {
	if player == "" {
		return
	}

	t.mu.Lock()
	t.loadLocked(ctx, player)
	t.kills[player]++
	t.killstreaks[player]++
	stats := PlayerStats{Kills: t.kills[player], Killstreak: t.killstreaks[player]}
	t.mu.Unlock()

	t.persist(ctx, player, stats)
}

// ResetKillstreak zeroes a player's killstreak (called when they die)
// and drops their pending damage record.
func (t *KillTracker) ResetKillstreak(ctx context.Context, player string) {
	t.mu.Lock()
	t.loadLocked(ctx, player)
	t.killstreaks[player] = 0
	delete(t.lastDamage, player)
	stats := PlayerStats{Kills: t.kills[player], Killstreak: 0}
	t.mu.Unlock()

	t.persist(ctx, player, stats)
}

// Kills returns a player's total kill count.
func (t *KillTracker) Kills(ctx context.Context, player string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.loadLocked(ctx, player)
	return t.kills[player]
}

// Killstreak returns a player's current killstreak.
func (t *KillTracker) Killstreak(ctx context.Context, player string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.loadLocked(ctx, player)
	return t.killstreaks[player]
}

// ClearPlayer drops all tracked state for a player, including any
// persisted stats. Useful when a player's data should be forgotten.
func (t *KillTracker) ClearPlayer(ctx context.Context, player string) {
	t.mu.Lock()
	delete(t.kills, player)
	delete(t.killstreaks, player)
	delete(t.lastDamage, player)
	t.mu.Unlock()

	if t.storage == nil {
		return
	}
	if err := t.storage.Delete(ctx, player); err != nil && !errors.Is(err, ErrStatsNotFound) {
		t.logger.Warn(LogMsgStatsSaveFailed, zap.String(LogFieldPlayer, player), zap.Error(err))
	}
}

// CleanupExpired removes damage records older than the combat timeout
// and returns how many were dropped. The host scheduler is expected to
// call this periodically.
func (t *KillTracker) CleanupExpired() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock()
	removed := 0
	for victim, rec := range t.lastDamage {
		if now.Sub(rec.at) > t.combatTimeout {
			delete(t.lastDamage, victim)
			removed++
		}
	}
	return removed
}

// Close releases the storage backend, if any.
func (t *KillTracker) Close() error {
	if t.storage == nil {
		return nil
	}
	return t.storage.Close()
}

// loadLocked seeds in-memory counters from storage on first sight of a
// player. Caller holds the write lock. Load failures are logged and
// treated as empty stats.
func (t *KillTracker) loadLocked(ctx context.Context, player string) {
	if t.storage == nil {
		return
	}
	if _, seen := t.kills[player]; seen {
		return
	}

	stats, err := t.storage.Get(ctx, player)
	if err != nil {
		if !errors.Is(err, ErrStatsNotFound) {
			t.logger.Warn(LogMsgStatsLoadFailed, zap.String(LogFieldPlayer, player), zap.Error(err))
		}
		t.kills[player] = 0
		t.killstreaks[player] = 0
		return
	}
	t.kills[player] = stats.Kills
	t.killstreaks[player] = stats.Killstreak
}

// persist writes a player's stats to storage, best effort.
func (t *KillTracker) persist(ctx context.Context, player string, stats PlayerStats) {
	if t.storage == nil {
		return
	}
	if err := t.storage.Save(ctx, player, stats); err != nil {
		t.logger.Warn(LogMsgStatsSaveFailed, zap.String(LogFieldPlayer, player), zap.Error(err))
	}
}
