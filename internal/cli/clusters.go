package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rvisser/bowlink/internal/graph"
	"github.com/rvisser/bowlink/internal/models"
	"github.com/rvisser/bowlink/internal/service"
)

var (
	clustersAlgorithm string
	clustersJSON      bool
)

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Group vocabulary items into link communities",
	Long: `Group vocabulary items into communities of densely linked items.

Builds the weighted link graph and runs a community detection
algorithm over it. Items with no links above the minimum similarity
are left out of the graph.

Examples:
  bowlink clusters
  bowlink clusters --algorithm walktrap --file vocabulary.yaml`,
	Args: cobra.NoArgs,
	RunE: runClusters,
}

func init() {
	clustersCmd.Flags().StringVarP(&clustersAlgorithm, "algorithm", "a", string(graph.AlgorithmLouvain), "community algorithm (louvain or walktrap)")
	clustersCmd.Flags().BoolVar(&clustersJSON, "json", false, "print assignments as JSON")
}

func runClusters(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	vocabulary, err := getVocabulary(ctx)
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}
	if vocabulary.Len() == 0 {
		fmt.Println("Vocabulary is empty, nothing to cluster.")
		return nil
	}

	svc := getLinker()
	links, err := svc.SuggestLinks(ctx, vocabulary, service.DefaultSuggestOptions())
	if err != nil {
		return fmt.Errorf("suggest links: %w", err)
	}

	assignments, err := svc.Clusters(links, graph.Algorithm(clustersAlgorithm))
	if err != nil {
		return err
	}

	if clustersJSON {
		return printJSON(assignments)
	}

	printClusters(assignments, vocabulary)
	return nil
}

func printClusters(assignments []models.ClusterAssignment, vocabulary models.Vocabulary) {
	if len(assignments) == 0 {
		fmt.Println("No clusters: the link graph is empty.")
		return
	}

	byCluster := make(map[int][]models.ClusterAssignment)
	for _, a := range assignments {
		byCluster[a.ClusterID] = append(byCluster[a.ClusterID], a)
	}
	ids := make([]int, 0, len(byCluster))
	for id := range byCluster {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fmt.Printf("Found %d clusters over %d items:\n\n", len(ids), len(assignments))
	for _, id := range ids {
		members := byCluster[id]
		fmt.Printf("Cluster %d (%d items):\n", id, len(members))
		for _, m := range members {
			name := m.ItemID
			if item, ok := vocabulary.Find(m.ItemID); ok {
				name = item.Name
			}
			fmt.Printf("  - %s [%s]\n", name, m.Type)
		}
		fmt.Println()
	}
}
