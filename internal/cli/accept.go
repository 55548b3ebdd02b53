package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvisser/bowlink/internal/models"
	"github.com/rvisser/bowlink/internal/store"
)

var (
	acceptScore  float64
	acceptMethod string
)

var acceptCmd = &cobra.Command{
	Use:   "accept <from-id> <to-id>",
	Short: "Persist a reviewed link between two vocabulary items",
	Long: `Persist a reviewed link between two vocabulary items.

Both items must exist in the store. Each unordered pair can be
accepted only once; accepted pairs are excluded from future
recommendations.

Examples:
  bowlink accept act-01 pre-03
  bowlink accept ctl-02 con-01 --score 0.8 --method manual`,
	Args: cobra.ExactArgs(2),
	RunE: runAccept,
}

func init() {
	acceptCmd.Flags().Float64Var(&acceptScore, "score", 1.0, "link score (0-1)")
	acceptCmd.Flags().StringVar(&acceptMethod, "method", "manual", "method that produced the link")
}

func runAccept(cmd *cobra.Command, args []string) error {
	fromID, toID := args[0], args[1]
	if fromID == toID {
		return fmt.Errorf("cannot link an item to itself")
	}
	if acceptScore < 0 || acceptScore > 1 {
		return fmt.Errorf("score must be between 0 and 1, got %g", acceptScore)
	}
	ctx := context.Background()

	from, err := storeClient.GetItem(ctx, fromID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("source item not found: %s", fromID)
		}
		return fmt.Errorf("get source item: %w", err)
	}

	to, err := storeClient.GetItem(ctx, toID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("target item not found: %s", toID)
		}
		return fmt.Errorf("get target item: %w", err)
	}

	link := models.CandidateLink{
		FromID:   from.ID,
		FromName: from.Name,
		FromType: from.Category,
		ToID:     to.ID,
		ToName:   to.Name,
		ToType:   to.Category,
		Score:    acceptScore,
		Method:   acceptMethod,
	}
	if err := storeClient.AcceptLink(ctx, link); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return fmt.Errorf("pair already accepted: %s / %s", fromID, toID)
		}
		return fmt.Errorf("accept link: %w", err)
	}

	fmt.Printf("Accepted: %s [%s] -> %s [%s] (score %.2f)\n",
		from.Name, from.Category, to.Name, to.Category, acceptScore)
	return nil
}
