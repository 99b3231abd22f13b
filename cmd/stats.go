package cmd

import (
	"context"
	"fmt"

	"github.com/iksnae/roblox-ai-studio/internal"
	"github.com/spf13/cobra"
)

// statsCmd prints conversation and usage counts
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show conversation statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(context.Background())
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		stats := a.session.Stats()
		codeBlocks := 0
		for _, m := range a.session.Messages() {
			if m.Role == internal.RoleAssistant && !m.IsError {
				codeBlocks += len(internal.ExtractCodeBlocks(m.Content))
			}
		}

		fmt.Fprintln(out, sectionStyle.Render("💬 This conversation"))
		fmt.Fprintf(out, "   Messages:    %d\n", stats.Total)
		fmt.Fprintf(out, "   You:         %d\n", stats.User)
		fmt.Fprintf(out, "   AI:          %d\n", stats.Assistant)
		fmt.Fprintf(out, "   Code blocks: %d\n", codeBlocks)
		fmt.Fprintln(out)

		counters := a.tracker.Stats()
		fmt.Fprintln(out, sectionStyle.Render("🌐 Community"))
		fmt.Fprintf(out, "   Developers:    %d\n", counters.TotalUsers)
		fmt.Fprintf(out, "   Chats:         %d\n", counters.TotalChats)
		fmt.Fprintf(out, "   Code snippets: %d\n", counters.CodeSnippets)
		fmt.Fprintf(out, "   Rating:        %.1f/5\n", counters.UserRating)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
