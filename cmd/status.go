package cmd

import (
	"context"
	"fmt"

	"github.com/iksnae/roblox-ai-studio/internal"
	"github.com/spf13/cobra"
)

var statusTest bool

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the API configuration, storage and usage counters",
	Long: `Show how replies are produced and where data is kept:
  • Provider, model and whether the API key looks valid
  • Demo or production mode
  • Storage location and message count
  • The usage counters

Use --test to send a short message and confirm the provider answers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		st := internal.Status(a.cfg)

		fmt.Fprintln(out, sectionStyle.Render("🔍 "+internal.AppName+" Status"))
		fmt.Fprintln(out)

		fmt.Fprintln(out, infoStyle.Render("API"))
		fmt.Fprintf(out, "   Provider: %s\n", st.Provider)
		fmt.Fprintf(out, "   Model:    %s\n", st.Model)
		switch {
		case st.Mode == "demo":
			fmt.Fprintln(out, warningStyle.Render("⚠️  Demo mode: no API key configured"))
		case !st.Valid:
			fmt.Fprintln(out, warningStyle.Render("⚠️  API key is set but does not look valid"))
		default:
			fmt.Fprintln(out, successStyle.Render("✅ Production mode"))
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, infoStyle.Render("Storage"))
		if ephemeral {
			fmt.Fprintln(out, "   In memory (--ephemeral)")
		} else {
			fmt.Fprintf(out, "   Database: %s\n", a.cfg.StoragePath)
		}
		stats := a.session.Stats()
		fmt.Fprintf(out, "   Messages: %d (%d user, %d assistant)\n", stats.Total, stats.User, stats.Assistant)
		fmt.Fprintf(out, "   Category: %s\n", a.session.Category())
		fmt.Fprintln(out)

		counters := a.tracker.Stats()
		fmt.Fprintln(out, infoStyle.Render("Counters"))
		fmt.Fprintf(out, "   Users:         %d (%d active)\n", counters.TotalUsers, counters.ActiveUsers)
		fmt.Fprintf(out, "   Chats:         %d\n", counters.TotalChats)
		fmt.Fprintf(out, "   Code snippets: %d\n", counters.CodeSnippets)
		fmt.Fprintf(out, "   Rating:        %.1f\n", counters.UserRating)

		if !statusTest {
			return nil
		}

		fmt.Fprintln(out)
		steps := []internal.ProgressStep{
			{
				Message: "Connecting to " + st.Provider,
				Fn: func() error {
					return internal.TestConnection(ctx, a.dispatcher)
				},
			},
		}
		if err := internal.ShowProgressWithSteps(ctx, steps); err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Connection test failed:"), err)
			return err
		}
		fmt.Fprintln(out, successStyle.Render("✅ Connection OK"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusTest, "test", false, "Send a test message to the provider")
}
