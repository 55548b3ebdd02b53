package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rvisser/bowlink/internal/linker"
	"github.com/rvisser/bowlink/internal/models"
	"github.com/rvisser/bowlink/internal/service"
)

var (
	linksThreshold  float64
	linksMaxPerItem int
	linksMethods    []string
	linksNoThemes   bool
	linksNoCausal   bool
	linksNoProgress bool
	linksJSON       bool
	linksStats      bool
)

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Discover candidate links across the vocabularies",
	Long: `Discover candidate links across the four vocabularies using text
similarity, keyword themes, and causal patterns.

Results are suggestions ranked by score, deduplicated per item pair,
and capped per source item. Use 'accept' to persist a reviewed link.

Examples:
  bowlink links --file vocabulary.yaml
  bowlink links --threshold 0.4 --methods jaccard,cosine
  bowlink links --no-themes --json`,
	Args: cobra.NoArgs,
	RunE: runLinks,
}

func init() {
	linksCmd.Flags().Float64VarP(&linksThreshold, "threshold", "t", 0, "minimum similarity score (default from config)")
	linksCmd.Flags().IntVarP(&linksMaxPerItem, "max-per-item", "n", 0, "max links per source item (default from config)")
	linksCmd.Flags().StringSliceVarP(&linksMethods, "methods", "m", []string{string(linker.SimilarityJaccard)}, "similarity methods (jaccard, cosine, string, embedding)")
	linksCmd.Flags().BoolVar(&linksNoThemes, "no-themes", false, "skip keyword theme matching")
	linksCmd.Flags().BoolVar(&linksNoCausal, "no-causal", false, "skip causal pattern matching")
	linksCmd.Flags().BoolVar(&linksNoProgress, "no-progress", false, "disable the progress bar")
	linksCmd.Flags().BoolVar(&linksJSON, "json", false, "print links as JSON")
	linksCmd.Flags().BoolVar(&linksStats, "stats", false, "print timing stats after the scan")
}

func runLinks(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	vocabulary, err := getVocabulary(ctx)
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}
	if vocabulary.Len() == 0 {
		fmt.Println("Vocabulary is empty, nothing to scan.")
		return nil
	}

	svc := getLinker()
	opts := service.SuggestOptions{
		Threshold:    linksThreshold,
		MaxPerSource: linksMaxPerItem,
		Methods:      linksMethods,
		Themes:       !linksNoThemes,
		Causal:       !linksNoCausal,
	}

	var links models.LinkSet
	if showProgress() {
		links, err = RunScanProgress(func(report func(done, total int)) (models.LinkSet, error) {
			opts.Progress = report
			return svc.SuggestLinks(ctx, vocabulary, opts)
		})
	} else {
		links, err = svc.SuggestLinks(ctx, vocabulary, opts)
	}
	if err != nil {
		return fmt.Errorf("suggest links: %w", err)
	}

	if linksJSON {
		if err := printJSON(links); err != nil {
			return err
		}
	} else {
		printLinks(links)
	}

	if linksStats {
		printStats(svc)
	}
	return nil
}

// showProgress reports whether the animated progress bar should run.
// Only useful on an interactive terminal.
func showProgress() bool {
	return !linksNoProgress && term.IsTerminal(int(os.Stdout.Fd()))
}

func printLinks(links models.LinkSet) {
	if len(links) == 0 {
		fmt.Println("No links found. Try lowering --threshold.")
		return
	}

	fmt.Printf("Found %d candidate links:\n\n", len(links))
	for i, l := range links {
		fmt.Printf("%d. %s [%s] -> %s [%s]\n", i+1, l.FromName, l.FromType, l.ToName, l.ToType)
		fmt.Printf("   score %.3f via %s\n", l.Score, l.Method)
		if verbose {
			fmt.Printf("   ids: %s -> %s\n", l.FromID, l.ToID)
		}
	}
}

func printStats(svc *service.LinkerService) {
	snap := svc.Metrics().Snapshot()
	if len(snap.Operations) == 0 {
		return
	}
	fmt.Println("\nTimings:")
	for _, op := range snap.Operations {
		fmt.Printf("  %-18s %4d calls, avg %.1fms, total %dms\n",
			op.Name, op.Count, op.AvgTimeMs, op.TotalTimeMs)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
