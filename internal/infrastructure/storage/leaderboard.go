package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/younwookim/neotower/internal/domain/entity"
)

// LoadLeaderboard returns the stored entries, fastest first. A malformed
// document reads as an empty board alongside the decode error.
func LoadLeaderboard(kv KVStore) ([]entity.LeaderboardEntry, error) {
	raw, err := kv.Get(LeaderboardKey)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var list []entity.LeaderboardEntry
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: leaderboard: %w", ErrMalformed, err)
	}
	return list, nil
}

// RecordRun appends entry, sorts ascending by time, keeps at most limit
// entries and persists the result. A malformed board is replaced by one
// holding only the new entry; the decode error is still returned with the
// persisted list. Any other read error aborts without writing.
func RecordRun(kv KVStore, entry entity.LeaderboardEntry, limit int) ([]entity.LeaderboardEntry, error) {
	list, loadErr := LoadLeaderboard(kv)
	if loadErr != nil && !errors.Is(loadErr, ErrMalformed) {
		return nil, loadErr
	}
	list = append(list, entry)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Time < list[j].Time
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}

	raw, err := json.Marshal(list)
	if err != nil {
		return list, fmt.Errorf("storage: cannot encode leaderboard: %w", err)
	}
	return list, errors.Join(loadErr, kv.Put(LeaderboardKey, raw))
}

// Top returns at most n leading entries
func Top(list []entity.LeaderboardEntry, n int) []entity.LeaderboardEntry {
	if n >= 0 && n < len(list) {
		return list[:n]
	}
	return list
}
