package cmd

import (
	"fmt"

	"github.com/halc8312/shinwa-sub002/internal/geography"
	"github.com/halc8312/shinwa-sub002/internal/store"
	"github.com/spf13/cobra"
)

var resolveLimit int

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Resolve a free-text location name against the world map",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		doc, err := s.ReadGeography()
		if err != nil {
			return fmt.Errorf("loading geography: %w", err)
		}
		ix, err := geography.NewIndex(doc)
		if err != nil {
			return err
		}

		logVerbose("index holds %d locations", ix.Len())

		name := args[0]
		if loc, ok := ix.Resolve(name); ok {
			fmt.Printf("%s  (%s, id=%s, x=%.1f y=%.1f)\n", loc.Name, loc.Scale, loc.ID, loc.Coord.X, loc.Coord.Y)
			if loc.Descriptive {
				fmt.Println("note: the query described a scene rather than a proper place name")
			}
			return nil
		}

		fmt.Printf("no match for %q\n", name)
		for i, s := range ix.Suggest(name, resolveLimit) {
			fmt.Printf("  %d. %s\n", i+1, s)
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().IntVar(&resolveLimit, "suggestions", 5, "Maximum suggestions when no match is found")
	rootCmd.AddCommand(resolveCmd)
}
