package linker

import (
	"sort"

	"github.com/rvisser/bowlink/internal/models"
)

// Aggregate deduplicates candidates by unordered (FromID, ToID) pair,
// ranks them by score descending, and caps the out-degree of each
// source item at maxPerSource (values < 1 mean no cap).
//
// Dedup keeps the highest-scoring entry for a pair, not the first seen;
// ties keep the earlier candidate so the result is deterministic for
// identical input order.
func Aggregate(candidates []models.CandidateLink, maxPerSource int) models.LinkSet {
	best := make(map[models.PairKey]models.CandidateLink, len(candidates))
	order := make([]models.PairKey, 0, len(candidates))

	for _, c := range candidates {
		key := c.Key()
		prev, seen := best[key]
		if !seen {
			best[key] = c
			order = append(order, key)
			continue
		}
		if c.Score > prev.Score {
			best[key] = c
		}
	}

	deduped := make(models.LinkSet, 0, len(order))
	for _, key := range order {
		deduped = append(deduped, best[key])
	}

	// Stable rank: score descending, ties broken by (FromID, ToID).
	sort.SliceStable(deduped, func(i, j int) bool {
		if deduped[i].Score != deduped[j].Score {
			return deduped[i].Score > deduped[j].Score
		}
		if deduped[i].FromID != deduped[j].FromID {
			return deduped[i].FromID < deduped[j].FromID
		}
		return deduped[i].ToID < deduped[j].ToID
	})

	if maxPerSource < 1 {
		return deduped
	}

	// Post-sort truncation keeps each source's best-scoring links.
	counts := make(map[string]int)
	capped := deduped[:0]
	for _, link := range deduped {
		if counts[link.FromID] >= maxPerSource {
			continue
		}
		counts[link.FromID]++
		capped = append(capped, link)
	}
	return capped
}
