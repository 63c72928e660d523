package cmd

import (
	"fmt"

	"github.com/halc8312/shinwa-sub002/internal/store"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show project world data summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		settings, err := s.ReadWorldSettings()
		if err != nil {
			return err
		}
		era := settings.Era
		if era == "" {
			era = "(unset)"
		}

		fmt.Printf("World Data\n")
		fmt.Printf("==========\n")
		fmt.Printf("Era:                 %s\n", era)
		fmt.Printf("Locations:           %d\n", s.LocationCount())
		fmt.Printf("Regions:             %d\n", s.RegionCount())
		fmt.Printf("Connections:         %d\n", s.ConnectionCount())
		fmt.Printf("Imported chapters:   %d\n", s.ChapterTextCount())
		fmt.Printf("Character overrides: %d\n", s.CharacterCount())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
