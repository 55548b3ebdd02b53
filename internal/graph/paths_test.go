package graph

import (
	"reflect"
	"testing"

	"github.com/rvisser/bowlink/internal/models"
)

func TestFindPathsDirect(t *testing.T) {
	links := models.LinkSet{
		link("A1", "P1", 0.6),
		link("P1", "C9", 0.5),
	}

	paths := FindPaths(links, "A1", "C9", 3)
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}
	want := models.PathResult{
		NodeIDs:    []string{"A1", "P1", "C9"},
		Length:     2,
		TotalScore: 1.1,
	}
	if !reflect.DeepEqual(paths[0].NodeIDs, want.NodeIDs) || paths[0].Length != want.Length {
		t.Errorf("path = %+v, want %+v", paths[0], want)
	}
	if diff := paths[0].TotalScore - want.TotalScore; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("TotalScore = %v, want %v", paths[0].TotalScore, want.TotalScore)
	}
}

func TestFindPathsNoRoute(t *testing.T) {
	// C5 is not in the graph at all.
	links := models.LinkSet{
		link("A1", "P1", 0.6),
		link("P1", "C9", 0.5),
	}

	if paths := FindPaths(links, "A1", "C5", 2); len(paths) != 0 {
		t.Errorf("got %d paths to an absent node, want 0", len(paths))
	}
}

func TestFindPathsMaxLength(t *testing.T) {
	links := models.LinkSet{
		link("A1", "P1", 0.5),
		link("P1", "P2", 0.5),
		link("P2", "C1", 0.5),
	}

	if paths := FindPaths(links, "A1", "C1", 2); len(paths) != 0 {
		t.Errorf("got %d paths within bound 2, want 0", len(paths))
	}
	paths := FindPaths(links, "A1", "C1", 3)
	if len(paths) != 1 {
		t.Fatalf("got %d paths within bound 3, want 1", len(paths))
	}
	if paths[0].Length != 3 {
		t.Errorf("Length = %d, want 3", paths[0].Length)
	}
}

func TestFindPathsSimpleOnly(t *testing.T) {
	// Cycle A1-P1-C1-A1: paths may not revisit nodes.
	links := models.LinkSet{
		link("A1", "P1", 0.5),
		link("P1", "C1", 0.5),
		link("C1", "A1", 0.5),
	}

	paths := FindPaths(links, "A1", "C1", 5)
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	for _, p := range paths {
		seen := make(map[string]bool)
		for _, id := range p.NodeIDs {
			if seen[id] {
				t.Errorf("path %v revisits %s", p.NodeIDs, id)
			}
			seen[id] = true
		}
		if p.Length > 5 {
			t.Errorf("path length %d exceeds bound", p.Length)
		}
	}
	// Shortest first.
	if paths[0].Length != 1 || paths[1].Length != 2 {
		t.Errorf("order = [%d, %d] edges, want [1, 2]", paths[0].Length, paths[1].Length)
	}
}

func TestFindPathsOrdering(t *testing.T) {
	// Two 2-edge routes with different total scores.
	links := models.LinkSet{
		link("A1", "P1", 0.9),
		link("P1", "C1", 0.9),
		link("A1", "P2", 0.4),
		link("P2", "C1", 0.4),
	}

	paths := FindPaths(links, "A1", "C1", 2)
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	if paths[0].NodeIDs[1] != "P1" {
		t.Errorf("highest-scoring path should come first, got via %s", paths[0].NodeIDs[1])
	}
}

func TestFindPathsDegenerateArgs(t *testing.T) {
	links := models.LinkSet{link("A1", "P1", 0.5)}

	if paths := FindPaths(links, "A1", "A1", 3); paths != nil {
		t.Errorf("same endpoints: got %v, want nil", paths)
	}
	if paths := FindPaths(links, "A1", "P1", 0); paths != nil {
		t.Errorf("maxLength 0: got %v, want nil", paths)
	}
	if paths := FindPaths(nil, "A1", "P1", 3); paths != nil {
		t.Errorf("empty links: got %v, want nil", paths)
	}
}
