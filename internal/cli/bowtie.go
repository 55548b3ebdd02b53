package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rvisser/bowlink/internal/service"
)

var (
	bowtieProblem string
	bowtieJSON    bool
	bowtieOutput  string
)

var bowtieCmd = &cobra.Command{
	Use:   "bowtie",
	Short: "Assemble discovered links into bowtie table rows",
	Long: `Assemble discovered links into bowtie table rows around a central
problem.

Each row chains an activity through a pressure to a consequence and
attaches preventive and protective controls where links exist. Empty
cells are left for the analyst.

Examples:
  bowlink bowtie --problem "Poor water quality" --file vocabulary.yaml
  bowlink bowtie --problem "Habitat loss" -o bowtie.yaml`,
	Args: cobra.NoArgs,
	RunE: runBowtie,
}

func init() {
	bowtieCmd.Flags().StringVarP(&bowtieProblem, "problem", "p", "", "central problem name (required)")
	bowtieCmd.Flags().BoolVar(&bowtieJSON, "json", false, "print rows as JSON instead of YAML")
	bowtieCmd.Flags().StringVarP(&bowtieOutput, "output", "o", "", "write to a file instead of stdout")
	_ = bowtieCmd.MarkFlagRequired("problem")
}

func runBowtie(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	vocabulary, err := getVocabulary(ctx)
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}
	if vocabulary.Len() == 0 {
		fmt.Println("Vocabulary is empty, nothing to assemble.")
		return nil
	}

	svc := getLinker()
	links, err := svc.SuggestLinks(ctx, vocabulary, service.DefaultSuggestOptions())
	if err != nil {
		return fmt.Errorf("suggest links: %w", err)
	}

	rows := service.AssembleBowtie(links, bowtieProblem)
	if len(rows) == 0 {
		fmt.Println("No activity->pressure links found, no rows to assemble.")
		return nil
	}

	out := os.Stdout
	if bowtieOutput != "" {
		f, err := os.Create(bowtieOutput)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if bowtieJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encode rows: %w", err)
		}
	} else {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encode rows: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flush rows: %w", err)
		}
	}

	if bowtieOutput != "" {
		fmt.Printf("Wrote %d rows to %s\n", len(rows), bowtieOutput)
	}
	return nil
}
