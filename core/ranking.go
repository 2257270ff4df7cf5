package core

import "sort"

// TopResults is the number of records a run reports.
const TopResults = 10

// RankScoredAuctions orders records by score descending and keeps at most limit of them.
// Records with equal scores keep their encounter order. A non-positive limit keeps all.
// The input slice is not modified.
func RankScoredAuctions(records []ScoredAuction, limit int) []ScoredAuction {
	ranked := make([]ScoredAuction, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
