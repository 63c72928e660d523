package cmd

import (
	"fmt"

	"github.com/halc8312/shinwa-sub002/internal/geography"
	"github.com/halc8312/shinwa-sub002/internal/model"
	"github.com/halc8312/shinwa-sub002/internal/store"
	"github.com/halc8312/shinwa-sub002/internal/travel"
	"github.com/spf13/cobra"
)

var (
	simulateMethod    string
	simulateCharacter string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <from> <to>",
	Short: "Estimate travel duration between two locations",
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

		from, ok := ix.Resolve(args[0])
		if !ok {
			return fmt.Errorf("location %q not found", args[0])
		}
		to, ok := ix.Resolve(args[1])
		if !ok {
			return fmt.Errorf("location %q not found", args[1])
		}

		settings, err := s.ReadWorldSettings()
		if err != nil {
			return err
		}
		custom, err := s.ReadCustomTransports()
		if err != nil {
			return err
		}

		offered := travel.MethodsFor(ix, settings, custom, from, to)
		method := offered[0]
		if simulateMethod != "" {
			found := false
			for _, m := range offered {
				if string(m.Type) == simulateMethod {
					method = m
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("method %q is not offered for this route", simulateMethod)
			}
		}

		character := model.Character{ID: simulateCharacter}
		result := travel.Simulate(ix, character, from, to, method)

		fmt.Printf("%s -> %s\n", from.Name, to.Name)
		fmt.Printf("  method:   %s\n", result.MethodUsed)
		fmt.Printf("  distance: %.1f\n", result.Distance)
		fmt.Printf("  duration: %.0f min\n", result.EstimatedDuration)
		return nil
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simulateMethod, "method", "", "Transport method (default: first offered)")
	simulateCmd.Flags().StringVar(&simulateCharacter, "character", "", "Character id making the journey")
	rootCmd.AddCommand(simulateCmd)
}
