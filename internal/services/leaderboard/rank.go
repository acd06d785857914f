package leaderboard

import (
	"sort"

	"github.com/chronle/chronle/internal/model"
)

// Retention policy
const (
	// StorageRetention is the maximum entries kept per day in storage
	StorageRetention = 100

	// PublicDisplayLimit is the size of the published leaderboard view
	PublicDisplayLimit = 10

	// PublicMaxClues filters the published view to solves that used at
	// most this many clues
	PublicMaxClues = 5
)

// Rank returns the entries ordered by ascending solve time, ties broken
// by ascending clues used. The input is not modified; the sort is
// stable, so ranking an already-ranked sequence yields the same
// sequence.
func Rank(entries []model.ScoreEntry) []model.ScoreEntry {
	ranked := make([]model.ScoreEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].SolveTimeMillis != ranked[j].SolveTimeMillis {
			return ranked[i].SolveTimeMillis < ranked[j].SolveTimeMillis
		}
		return ranked[i].CluesUsed < ranked[j].CluesUsed
	})

	return ranked
}

// Retain truncates a ranked sequence to at most limit entries. Entries
// beyond the limit are dropped, not archived. A non-positive limit
// retains nothing.
func Retain(entries []model.ScoreEntry, limit int) []model.ScoreEntry {
	if limit <= 0 {
		return []model.ScoreEntry{}
	}
	if len(entries) <= limit {
		return entries
	}
	return entries[:limit]
}

// FilterMaxClues returns the entries that used at most maxClues clues.
// The predicate is rank-independent, so filtering commutes with Rank.
func FilterMaxClues(entries []model.ScoreEntry, maxClues int) []model.ScoreEntry {
	filtered := make([]model.ScoreEntry, 0, len(entries))
	for _, e := range entries {
		if e.CluesUsed <= maxClues {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// rankOf returns the 1-based position of entry in ranked, or 0 if the
// entry is not present (dropped by retention)
func rankOf(ranked []model.ScoreEntry, entry model.ScoreEntry) int {
	for i, e := range ranked {
		if e.Same(entry) {
			return i + 1
		}
	}
	return 0
}
