package cmd

import (
	"context"
	"fmt"

	"github.com/halc8312/shinwa-sub002/internal/chapter"
	"github.com/halc8312/shinwa-sub002/internal/store"
	"github.com/halc8312/shinwa-sub002/internal/transport"
	"github.com/spf13/cobra"
)

var fetchChapterIdx int

var fetchChapterCmd = &cobra.Command{
	Use:   "fetch-chapter <url>",
	Short: "Fetch a published chapter page and store its plaintext",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		rl := chapter.NewRateLimiter(cfg.Chapter.RateLimit)
		text, err := chapter.Fetch(context.Background(), args[0], rl)
		if err != nil {
			return err
		}
		if text == "" {
			return fmt.Errorf("no chapter text found at %s", args[0])
		}

		if err := s.WriteChapterText(fetchChapterIdx, text); err != nil {
			return fmt.Errorf("saving chapter text: %w", err)
		}

		types := transport.ExtractFromChapter(text)
		fmt.Printf("Stored chapter %d (%d bytes)\n", fetchChapterIdx, len(text))
		if len(types) > 0 {
			fmt.Printf("Transport mentions: %v\n", types)
		}
		return nil
	},
}

func init() {
	fetchChapterCmd.Flags().IntVar(&fetchChapterIdx, "chapter", 0, "Chapter index to store the text under")
	rootCmd.AddCommand(fetchChapterCmd)
}
