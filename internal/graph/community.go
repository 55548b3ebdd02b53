package graph

import (
	"fmt"
	"math"
	"sort"
)

// Algorithm selects the community detection method.
type Algorithm string

const (
	// AlgorithmLouvain is greedy modularity optimization with graph
	// aggregation.
	AlgorithmLouvain Algorithm = "louvain"

	// AlgorithmWalktrap merges communities by random-walk distance,
	// keeping the partition with the best modularity.
	AlgorithmWalktrap Algorithm = "walktrap"
)

// Communities partitions all nodes into weight-aware communities.
// Every node lands in exactly one community; cluster IDs are dense,
// starting at 0, assigned in order of first appearance over sorted
// node IDs so results are deterministic. Unknown algorithms error.
func Communities(g *Graph, algorithm Algorithm) (map[string]int, error) {
	switch algorithm {
	case AlgorithmLouvain:
		return relabel(g, louvain(g)), nil
	case AlgorithmWalktrap:
		return relabel(g, walktrap(g)), nil
	default:
		return nil, fmt.Errorf("unsupported community algorithm: %q", algorithm)
	}
}

// relabel renumbers communities densely in order of first appearance
// over sorted node IDs.
func relabel(g *Graph, raw map[string]int) map[string]int {
	next := 0
	seen := make(map[int]int)
	out := make(map[string]int, len(raw))
	for _, id := range g.NodeIDs() {
		c := raw[id]
		dense, ok := seen[c]
		if !ok {
			dense = next
			seen[c] = dense
			next++
		}
		out[id] = dense
	}
	return out
}

// louvain runs greedy local moving with aggregation passes until no
// move improves modularity.
func louvain(g *Graph) map[string]int {
	ids := g.NodeIDs()
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	// Working adjacency with integer nodes; self-loops appear after
	// aggregation.
	adj := make([]map[int]float64, n)
	for i, id := range ids {
		adj[i] = make(map[int]float64)
		for nbr, w := range g.adj[id] {
			adj[i][index[nbr]] = w
		}
	}

	// membership[i] = community of original node i, maintained across
	// aggregation levels.
	membership := make([]int, n)
	for i := range membership {
		membership[i] = i
	}

	current := adj
	for {
		comm, moved := louvainLocalMove(current)
		if !moved {
			break
		}
		for i := range membership {
			membership[i] = comm[membership[i]]
		}
		current = aggregate(current, comm)
	}

	out := make(map[string]int, n)
	for i, id := range ids {
		out[id] = membership[i]
	}
	return out
}

// louvainLocalMove assigns each node to the neighboring community with
// the largest modularity gain, sweeping until stable. Returns the
// dense community assignment and whether any node moved.
func louvainLocalMove(adj []map[int]float64) ([]int, bool) {
	n := len(adj)
	comm := make([]int, n)
	degree := make([]float64, n)
	var m2 float64 // 2m, counting self-loops once per direction
	for i := range adj {
		comm[i] = i
		for j, w := range adj[i] {
			degree[i] += w
			if i == j {
				degree[i] += w // self-loop counts twice toward degree
			}
		}
		m2 += degree[i]
	}
	if m2 == 0 {
		return comm, false
	}

	commDegree := make([]float64, n)
	copy(commDegree, degree)

	movedAny := false
	for {
		movedPass := false
		for i := 0; i < n; i++ {
			// Weight from i to each neighboring community.
			toComm := make(map[int]float64)
			for j, w := range adj[i] {
				if j == i {
					continue
				}
				toComm[comm[j]] += w
			}

			commDegree[comm[i]] -= degree[i]
			best := comm[i]
			bestGain := toComm[comm[i]] - commDegree[comm[i]]*degree[i]/m2

			// Deterministic: scan candidate communities in sorted order.
			candidates := make([]int, 0, len(toComm))
			for c := range toComm {
				candidates = append(candidates, c)
			}
			sort.Ints(candidates)
			for _, c := range candidates {
				gain := toComm[c] - commDegree[c]*degree[i]/m2
				if gain > bestGain+1e-12 {
					bestGain = gain
					best = c
				}
			}
			commDegree[best] += degree[i]

			if best != comm[i] {
				comm[i] = best
				movedPass = true
				movedAny = true
			}
		}
		if !movedPass {
			break
		}
	}

	// Renumber densely.
	dense := make(map[int]int)
	next := 0
	for i := range comm {
		if _, ok := dense[comm[i]]; !ok {
			dense[comm[i]] = next
			next++
		}
		comm[i] = dense[comm[i]]
	}
	return comm, movedAny
}

// aggregate collapses communities into super-nodes, summing edge
// weights; intra-community weight becomes a self-loop.
func aggregate(adj []map[int]float64, comm []int) []map[int]float64 {
	size := 0
	for _, c := range comm {
		if c+1 > size {
			size = c + 1
		}
	}
	out := make([]map[int]float64, size)
	for i := range out {
		out[i] = make(map[int]float64)
	}
	for i := range adj {
		for j, w := range adj[i] {
			if j < i {
				continue // each undirected edge once
			}
			a, b := comm[i], comm[j]
			out[a][b] += w
			if a != b {
				out[b][a] += w
			}
		}
	}
	return out
}

// walktrap merges adjacent communities by t-step random-walk distance
// and returns the partition with the highest modularity seen.
func walktrap(g *Graph) map[string]int {
	const steps = 4

	ids := g.NodeIDs()
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	out := make(map[string]int, n)
	m := g.totalWeight()
	if n == 0 || m == 0 {
		for i, id := range ids {
			out[id] = i
		}
		return out
	}

	degree := make([]float64, n)
	for i, id := range ids {
		degree[i] = g.degree(id)
	}

	// t-step transition probabilities per node, dense vectors.
	prob := walkProbabilities(g, ids, index, degree, steps)

	// Each community tracks its member set, averaged walk vector, and
	// adjacency to other communities.
	members := make([][]int, n)
	vec := make([][]float64, n)
	alive := make([]bool, n)
	neighbors := make([]map[int]bool, n)
	for i := 0; i < n; i++ {
		members[i] = []int{i}
		vec[i] = prob[i]
		alive[i] = true
		neighbors[i] = make(map[int]bool)
		for _, nbr := range g.Neighbors(ids[i]) {
			neighbors[i][index[nbr]] = true
		}
	}

	assign := make([]int, n)
	for i := range assign {
		assign[i] = i
	}
	bestAssign := append([]int(nil), assign...)
	bestQ := modularity(g, ids, assign)

	for merges := 0; merges < n-1; merges++ {
		// Closest adjacent pair by walk distance; ties break on the
		// smaller index pair.
		bi, bj := -1, -1
		bestDist := math.Inf(1)
		for i := 0; i < n; i++ {
			if !alive[i] {
				continue
			}
			for j := range neighbors[i] {
				if j <= i || !alive[j] {
					continue
				}
				d := walkDistance(vec[i], vec[j], degree)
				if d < bestDist || (d == bestDist && (bi == -1 || i < bi || (i == bi && j < bj))) {
					bestDist = d
					bi, bj = i, j
				}
			}
		}
		if bi < 0 {
			break // only disconnected communities remain
		}

		// Merge bj into bi; walk vector is the size-weighted average.
		si, sj := float64(len(members[bi])), float64(len(members[bj]))
		for k := range vec[bi] {
			vec[bi][k] = (si*vec[bi][k] + sj*vec[bj][k]) / (si + sj)
		}
		members[bi] = append(members[bi], members[bj]...)
		alive[bj] = false
		for k := range neighbors[bj] {
			if k != bi && alive[k] {
				neighbors[bi][k] = true
				neighbors[k][bi] = true
			}
		}
		delete(neighbors[bi], bj)

		for _, node := range members[bi] {
			assign[node] = bi
		}
		if q := modularity(g, ids, assign); q > bestQ {
			bestQ = q
			bestAssign = append([]int(nil), assign...)
		}
	}

	for i, id := range ids {
		out[id] = bestAssign[i]
	}
	return out
}

// walkProbabilities computes the t-step random-walk distribution from
// each node over the weighted graph.
func walkProbabilities(g *Graph, ids []string, index map[string]int, degree []float64, steps int) [][]float64 {
	n := len(ids)
	prob := make([][]float64, n)
	for i := range prob {
		prob[i] = make([]float64, n)
		prob[i][i] = 1
	}
	for s := 0; s < steps; s++ {
		next := make([][]float64, n)
		for i := range next {
			next[i] = make([]float64, n)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				p := prob[i][j]
				if p == 0 || degree[j] == 0 {
					continue
				}
				for nbr, w := range g.adj[ids[j]] {
					next[i][index[nbr]] += p * w / degree[j]
				}
			}
		}
		prob = next
	}
	return prob
}

// walkDistance is the degree-normalized euclidean distance between two
// walk distributions.
func walkDistance(a, b []float64, degree []float64) float64 {
	var sum float64
	for k := range a {
		if degree[k] == 0 {
			continue
		}
		d := a[k] - b[k]
		sum += d * d / degree[k]
	}
	return math.Sqrt(sum)
}

// modularity computes weighted Newman modularity for an assignment.
func modularity(g *Graph, ids []string, assign []int) float64 {
	m := g.totalWeight()
	if m == 0 {
		return 0
	}
	internal := make(map[int]float64)
	commDegree := make(map[int]float64)
	for i, id := range ids {
		commDegree[assign[i]] += g.degree(id)
		for nbr, w := range g.adj[id] {
			j := assign[indexOf(ids, nbr)]
			if j == assign[i] {
				internal[assign[i]] += w
			}
		}
	}
	var q float64
	for c, in := range internal {
		q += in/(2*m) - math.Pow(commDegree[c]/(2*m), 2)
	}
	for c, d := range commDegree {
		if _, ok := internal[c]; !ok {
			q -= math.Pow(d/(2*m), 2)
		}
	}
	return q
}

func indexOf(ids []string, id string) int {
	lo, hi := 0, len(ids)
	for lo < hi {
		mid := (lo + hi) / 2
		if ids[mid] < id {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
