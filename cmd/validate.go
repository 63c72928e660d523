package cmd

import (
	"fmt"

	"github.com/halc8312/shinwa-sub002/internal/geography"
	"github.com/halc8312/shinwa-sub002/internal/store"
	"github.com/halc8312/shinwa-sub002/internal/travel"
	"github.com/spf13/cobra"
)

var (
	validateCharacter string
	validateChapter   int
)

var validateCmd = &cobra.Command{
	Use:   "validate <from> <to>",
	Short: "Check whether travel between two locations is plausible",
	Args:  cobra.ExactArgs(2),
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

		verdict := travel.ValidateTravel(ix, args[0], args[1], validateCharacter, validateChapter, thresholds())

		fmt.Printf("[%s] %s\n", verdict.Severity, verdict.Message)
		for _, sug := range verdict.Suggestions {
			fmt.Printf("  candidate: %s\n", sug)
		}
		if !verdict.IsValid {
			// Non-zero exit so editor tooling can react.
			return fmt.Errorf("travel rejected")
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateCharacter, "character", "", "Character id making the journey")
	validateCmd.Flags().IntVar(&validateChapter, "chapter", 0, "Chapter number the journey occurs in")
	rootCmd.AddCommand(validateCmd)
}
