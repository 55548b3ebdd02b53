// Package cli provides the command-line interface for bowlink.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rvisser/bowlink/internal/config"
	"github.com/rvisser/bowlink/internal/linker"
	"github.com/rvisser/bowlink/internal/models"
	"github.com/rvisser/bowlink/internal/service"
	"github.com/rvisser/bowlink/internal/store"
	"github.com/rvisser/bowlink/internal/vocab"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose   bool
	vocabFile string

	// Global config and store client
	cfg         config.Config
	storeClient *store.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bowlink",
	Short: "Vocabulary link discovery for bowtie risk models",
	Long: `Bowlink discovers plausible causal links between the four curated
vocabularies of an environmental bowtie risk model (activities,
pressures, consequences, controls) using text similarity, keyword
themes, and causal patterns.

Links are suggestions for human review, not asserted facts. Accepted
links are persisted and excluded from future recommendations.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store connection for version and help commands,
		// and for store-less runs against a vocabulary file.
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		cfg = config.Load()
		if vocabFile != "" && cmd.Name() != "load" && cmd.Name() != "accept" {
			return nil
		}

		var err error
		storeClient, err = store.NewClient(context.Background(), store.Config{
			URL:       cfg.SurrealDBURL,
			Namespace: cfg.SurrealDBNamespace,
			Database:  cfg.SurrealDBDatabase,
			Username:  cfg.SurrealDBUser,
			Password:  cfg.SurrealDBPass,
			AuthLevel: cfg.SurrealDBAuthLevel,
		}, nil)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}

		if err := storeClient.InitSchema(context.Background()); err != nil {
			return fmt.Errorf("initialize schema: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if storeClient != nil {
			if err := storeClient.Close(context.Background()); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
			}
		}
	},
}

// getLinker creates the linker service from the loaded config.
func getLinker() *service.LinkerService {
	return service.NewLinkerService(linker.Config{
		SimilarityThreshold: cfg.SimilarityThreshold,
		MaxLinksPerItem:     cfg.MaxLinksPerItem,
		MinSimilarity:       cfg.MinSimilarity,
		Workers:             cfg.ScanWorkers,
	}, nil, nil, nil, nil)
}

// getVocabulary loads the vocabulary from --file when set, otherwise
// from the store.
func getVocabulary(ctx context.Context) (models.Vocabulary, error) {
	if vocabFile != "" {
		return vocab.Load(vocabFile)
	}
	return storeClient.ListVocabulary(ctx)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&vocabFile, "file", "f", "", "read vocabulary from a YAML file instead of the store")

	// Add subcommands
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(linksCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(acceptCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(clustersCmd)
	rootCmd.AddCommand(bowtieCmd)
}
