package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/halc8312/shinwa-sub002/internal/model"
	"github.com/halc8312/shinwa-sub002/internal/store"
	"github.com/halc8312/shinwa-sub002/internal/transport"
	"github.com/spf13/cobra"
)

var transportsCmd = &cobra.Command{
	Use:   "transports",
	Short: "Inspect and manage the project's transport methods",
}

var transportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the transports available to the project",
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
		custom, err := s.ReadCustomTransports()
		if err != nil {
			return err
		}
		if len(custom) > 0 {
			logVerbose("project has %d custom transport overrides", len(custom))
		}

		for _, m := range transport.Available(settings, custom) {
			fmt.Printf("  %-10s speed %.0f\n", m.Type, m.Speed)
		}
		return nil
	},
}

var transportsEraCmd = &cobra.Command{
	Use:   "era <label>",
	Short: "Show the default transports for an era label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, m := range transport.DefaultsForEra(args[0]) {
			fmt.Printf("  %-10s speed %.0f\n", m.Type, m.Speed)
		}
		return nil
	},
}

var transportsSaveCmd = &cobra.Command{
	Use:   "save <methods.json>",
	Short: "Save custom transport overrides, replacing era defaults",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading methods: %w", err)
		}
		var methods []model.TransportMethod
		if err := json.Unmarshal(body, &methods); err != nil {
			return fmt.Errorf("parsing methods: %w", err)
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.WriteCustomTransports(methods); err != nil {
			return err
		}
		fmt.Printf("Saved %d custom transports\n", len(methods))
		return nil
	},
}

var extractChapterIdx int

var transportsExtractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract transport mentions from chapter text (file, stdin, or an imported chapter)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		switch {
		case extractChapterIdx >= 0:
			s, err := store.New(dataDir)
			if err != nil {
				return err
			}
			defer s.Close()
			text, err = s.ReadChapterText(extractChapterIdx)
			if err != nil {
				return fmt.Errorf("chapter %d not imported: %w", extractChapterIdx, err)
			}
		case len(args) == 1:
			body, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading chapter: %w", err)
			}
			text = string(body)
		default:
			body, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			text = string(body)
		}

		types := transport.ExtractFromChapter(text)
		if len(types) == 0 {
			fmt.Println("no transport mentions found")
			return nil
		}
		for _, t := range types {
			fmt.Println(t)
		}
		return nil
	},
}

var characterTransportsCmd = &cobra.Command{
	Use:   "character <id> [methods...]",
	Short: "Show or replace a character's available transports",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		id := args[0]
		if len(args) > 1 {
			methods := make([]model.TransportType, 0, len(args)-1)
			for _, a := range args[1:] {
				methods = append(methods, model.TransportType(a))
			}
			if err := s.WriteCharacterTransports(id, methods); err != nil {
				return err
			}
		}

		methods, err := s.ReadCharacterTransports(id)
		if err != nil {
			return err
		}
		if methods == nil {
			methods = transport.DefaultCharacterTransports()
		}
		for _, m := range methods {
			fmt.Println(m)
		}
		return nil
	},
}

func init() {
	transportsExtractCmd.Flags().IntVar(&extractChapterIdx, "chapter", -1, "Extract from an imported chapter by index")
	transportsCmd.AddCommand(transportsListCmd)
	transportsCmd.AddCommand(transportsEraCmd)
	transportsCmd.AddCommand(transportsSaveCmd)
	transportsCmd.AddCommand(transportsExtractCmd)
	transportsCmd.AddCommand(characterTransportsCmd)
	rootCmd.AddCommand(transportsCmd)
}
