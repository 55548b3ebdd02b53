package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rvisser/bowlink/internal/service"
)

var (
	pathsMaxLength int
	pathsJSON      bool
)

var pathsCmd = &cobra.Command{
	Use:   "paths <from-id> <to-id>",
	Short: "Find link paths between two vocabulary items",
	Long: `Find simple paths between two vocabulary items through the
discovered link graph.

Paths are ordered shortest first, then by total edge score. A path
never revisits an item.

Examples:
  bowlink paths act-01 con-02
  bowlink paths act-01 con-02 --max-length 5 --file vocabulary.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runPaths,
}

func init() {
	pathsCmd.Flags().IntVarP(&pathsMaxLength, "max-length", "n", 3, "maximum path length in edges")
	pathsCmd.Flags().BoolVar(&pathsJSON, "json", false, "print paths as JSON")
}

func runPaths(cmd *cobra.Command, args []string) error {
	fromID, toID := args[0], args[1]
	if pathsMaxLength < 1 {
		return fmt.Errorf("max-length must be at least 1")
	}
	ctx := context.Background()

	vocabulary, err := getVocabulary(ctx)
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}
	if _, ok := vocabulary.Find(fromID); !ok {
		return fmt.Errorf("source item not found: %s", fromID)
	}
	if _, ok := vocabulary.Find(toID); !ok {
		return fmt.Errorf("target item not found: %s", toID)
	}

	svc := getLinker()
	links, err := svc.SuggestLinks(ctx, vocabulary, service.DefaultSuggestOptions())
	if err != nil {
		return fmt.Errorf("suggest links: %w", err)
	}

	paths := svc.Paths(links, fromID, toID, pathsMaxLength)

	if pathsJSON {
		return printJSON(paths)
	}

	if len(paths) == 0 {
		fmt.Printf("No paths of length <= %d between %s and %s.\n", pathsMaxLength, fromID, toID)
		return nil
	}

	fmt.Printf("Found %d paths:\n\n", len(paths))
	for i, p := range paths {
		names := make([]string, len(p.NodeIDs))
		for j, id := range p.NodeIDs {
			if item, ok := vocabulary.Find(id); ok {
				names[j] = item.Name
			} else {
				names[j] = id
			}
		}
		fmt.Printf("%d. %s\n", i+1, strings.Join(names, " -> "))
		fmt.Printf("   %d edges, total score %.3f\n", p.Length, p.TotalScore)
	}
	return nil
}
