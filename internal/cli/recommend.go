package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvisser/bowlink/internal/models"
)

var (
	recommendIncludeAccepted bool
	recommendJSON            bool
	recommendStats           bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank the most promising new links for review",
	Long: `Rank the most promising new links for review.

Runs a broad discovery pass and weights each candidate by how plausible
its category pairing is in a bowtie model (activity->pressure highest,
pressure->consequence next, control links after that). Pairs that were
already accepted are excluded unless --include-accepted is set.

Examples:
  bowlink recommend
  bowlink recommend --file vocabulary.yaml --json`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().BoolVar(&recommendIncludeAccepted, "include-accepted", false, "do not exclude already accepted pairs")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "print recommendations as JSON")
	recommendCmd.Flags().BoolVar(&recommendStats, "stats", false, "print timing stats after the run")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	vocabulary, err := getVocabulary(ctx)
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}
	if vocabulary.Len() == 0 {
		fmt.Println("Vocabulary is empty, nothing to recommend.")
		return nil
	}

	var existing []models.PairKey
	if !recommendIncludeAccepted && storeClient != nil {
		existing, err = storeClient.ListAcceptedPairs(ctx)
		if err != nil {
			return fmt.Errorf("list accepted links: %w", err)
		}
	}

	svc := getLinker()
	recs, err := svc.Recommend(ctx, vocabulary, existing)
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	if recommendJSON {
		if err := printJSON(recs); err != nil {
			return err
		}
	} else {
		printRecommendations(recs)
	}

	if recommendStats {
		printStats(svc)
	}
	return nil
}

func printRecommendations(recs []models.Recommendation) {
	if len(recs) == 0 {
		fmt.Println("No recommendations. All strong candidates may already be accepted.")
		return
	}

	fmt.Printf("Top %d recommendations:\n\n", len(recs))
	for i, r := range recs {
		fmt.Printf("%d. %s [%s] -> %s [%s]\n", i+1, r.FromName, r.FromType, r.ToName, r.ToType)
		fmt.Printf("   score %.3f = %.3f x %.1f (%s)\n",
			r.RecommendationScore, r.Score, r.TypeScore, r.Method)
		if verbose {
			fmt.Printf("   accept with: bowlink accept %s %s\n", r.FromID, r.ToID)
		}
	}
}
