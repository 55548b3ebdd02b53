package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvisser/bowlink/internal/vocab"
)

var loadCmd = &cobra.Command{
	Use:   "load <file.yaml>",
	Short: "Import a vocabulary file into the store",
	Long: `Import a YAML vocabulary file into the store.

The file holds four term lists (activities, pressures, consequences,
controls), each item with an id and a name. Existing items with the
same id are updated.

Examples:
  bowlink load vocabulary.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	vocabulary, err := vocab.Load(args[0])
	if err != nil {
		return err
	}
	if vocabulary.Len() == 0 {
		fmt.Println("No items to import.")
		return nil
	}

	if err := storeClient.UpsertItems(ctx, vocabulary.Items()); err != nil {
		return fmt.Errorf("import vocabulary: %w", err)
	}

	fmt.Printf("Imported %d items (%d activities, %d pressures, %d consequences, %d controls)\n",
		vocabulary.Len(),
		len(vocabulary.Activities),
		len(vocabulary.Pressures),
		len(vocabulary.Consequences),
		len(vocabulary.Controls),
	)
	return nil
}
