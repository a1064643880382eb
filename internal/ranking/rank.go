package ranking

import "sort"

// Entry is one user's row in a ranked table.
type Entry struct {
	UserID string `json:"user_id"`
	Score  int    `json:"score"`
	Rank   int    `json:"rank"`
}

// Rank orders entries by descending score and assigns 1-based positional
// ranks. The sort is stable: users with equal scores keep the relative
// order in which they were enumerated from the user listing.
func Rank(entries []Entry) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// TopN returns the first n ranked entries, or all of them when fewer exist.
func TopN(ranked []Entry, n int) []Entry {
	if n <= 0 || n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
