// Package graph builds undirected weighted graphs from link sets and
// provides community detection and bounded simple-path enumeration.
// Graphs are constructed fresh per query and discarded after use.
package graph

import (
	"sort"

	"github.com/rvisser/bowlink/internal/models"
)

// Node is a graph node carrying the vocabulary item's attributes.
type Node struct {
	ID       string
	Name     string
	Category models.Category
}

// Graph is an undirected weighted graph. Edge weight is the link score.
type Graph struct {
	nodes map[string]Node
	adj   map[string]map[string]float64
}

// Build constructs a graph from links with score >= minSimilarity.
// Nodes are the union of endpoints of the surviving links.
func Build(links models.LinkSet, minSimilarity float64) *Graph {
	g := &Graph{
		nodes: make(map[string]Node),
		adj:   make(map[string]map[string]float64),
	}
	for _, l := range links {
		if l.Score < minSimilarity {
			continue
		}
		g.addNode(Node{ID: l.FromID, Name: l.FromName, Category: l.FromType})
		g.addNode(Node{ID: l.ToID, Name: l.ToName, Category: l.ToType})
		g.addEdge(l.FromID, l.ToID, l.Score)
	}
	return g
}

func (g *Graph) addNode(n Node) {
	if _, ok := g.nodes[n.ID]; !ok {
		g.nodes[n.ID] = n
		g.adj[n.ID] = make(map[string]float64)
	}
}

func (g *Graph) addEdge(a, b string, weight float64) {
	g.adj[a][b] = weight
	g.adj[b][a] = weight
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}
	return total / 2
}

// Weight returns the edge weight between two nodes, 0 if no edge.
func (g *Graph) Weight(a, b string) float64 {
	return g.adj[a][b]
}

// NodeIDs returns all node IDs in lexicographic order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Neighbors returns the neighbor IDs of a node in lexicographic order.
func (g *Graph) Neighbors(id string) []string {
	nbrs := make([]string, 0, len(g.adj[id]))
	for n := range g.adj[id] {
		nbrs = append(nbrs, n)
	}
	sort.Strings(nbrs)
	return nbrs
}

// degree returns the weighted degree of a node.
func (g *Graph) degree(id string) float64 {
	var d float64
	for _, w := range g.adj[id] {
		d += w
	}
	return d
}

// totalWeight returns the sum of all edge weights.
func (g *Graph) totalWeight() float64 {
	var total float64
	for _, nbrs := range g.adj {
		for _, w := range nbrs {
			total += w
		}
	}
	return total / 2
}
