package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/halc8312/shinwa-sub002/internal/geography"
	"github.com/halc8312/shinwa-sub002/internal/model"
	"github.com/halc8312/shinwa-sub002/internal/store"
	"github.com/spf13/cobra"
)

var importEra string

var importCmd = &cobra.Command{
	Use:   "import <geography.json>",
	Short: "Import a geography document exported by the map editor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading document: %w", err)
		}

		var doc model.Geography
		if err := json.Unmarshal(body, &doc); err != nil {
			return fmt.Errorf("parsing document: %w", err)
		}

		// Verify referential invariants before anything is persisted.
		ix, err := geography.NewIndex(&doc)
		if err != nil {
			return err
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.WriteGeography(&doc); err != nil {
			return fmt.Errorf("saving geography: %w", err)
		}
		if importEra != "" {
			if err := s.WriteWorldSettings(model.WorldSettings{Era: importEra}); err != nil {
				return fmt.Errorf("saving world settings: %w", err)
			}
		}

		fmt.Printf("Imported %q: %d locations, %d regions, %d connections\n",
			doc.WorldMap.Name, ix.Len(), len(doc.Regions), len(doc.Connections))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importEra, "era", "", "Era label for the world (e.g. 中世, modern, fantasy)")
	rootCmd.AddCommand(importCmd)
}
