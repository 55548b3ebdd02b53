package graph

import (
	"sort"

	"github.com/rvisser/bowlink/internal/models"
)

// FindPaths enumerates all simple paths (no repeated nodes) between
// two items in the undirected graph induced by the link set, bounded
// at maxLength edges. Absent endpoints or no path within the bound
// yield an empty result, not an error.
//
// Paths are ordered by fewest edges, then total score descending, then
// node sequence, so identical input always yields identical output.
func FindPaths(links models.LinkSet, fromID, toID string, maxLength int) []models.PathResult {
	if maxLength < 1 || fromID == toID {
		return nil
	}

	g := Build(links, 0)
	if _, ok := g.Node(fromID); !ok {
		return nil
	}
	if _, ok := g.Node(toID); !ok {
		return nil
	}

	var results []models.PathResult
	visited := map[string]bool{fromID: true}
	path := []string{fromID}

	var walk func(current string, score float64)
	walk = func(current string, score float64) {
		if len(path)-1 > maxLength {
			return
		}
		if current == toID {
			nodes := append([]string(nil), path...)
			results = append(results, models.PathResult{
				NodeIDs:    nodes,
				Length:     len(nodes) - 1,
				TotalScore: score,
			})
			return
		}
		if len(path)-1 == maxLength {
			return
		}
		for _, nbr := range g.Neighbors(current) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			path = append(path, nbr)
			walk(nbr, score+g.Weight(current, nbr))
			path = path[:len(path)-1]
			visited[nbr] = false
		}
	}
	walk(fromID, 0)

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Length != results[j].Length {
			return results[i].Length < results[j].Length
		}
		if results[i].TotalScore != results[j].TotalScore {
			return results[i].TotalScore > results[j].TotalScore
		}
		return lessNodeSeq(results[i].NodeIDs, results[j].NodeIDs)
	})
	return results
}

func lessNodeSeq(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
