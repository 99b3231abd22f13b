package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/iksnae/roblox-ai-studio/internal"
	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the saved conversation",
	Long: `Display the saved conversation with the index of each message.

The index is what edit and delete take.`,
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
		messages := a.session.Messages()

		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("💬 %s [%s]", internal.AppName, a.session.Category())))
		if len(messages) == 0 {
			fmt.Fprintln(out, "No messages yet.")
			return nil
		}

		start := 0
		if historyLimit > 0 && len(messages) > historyLimit {
			start = len(messages) - historyLimit
			fmt.Fprintln(out, metaStyle.Render(fmt.Sprintf("(showing last %d of %d messages)", historyLimit, len(messages))))
			fmt.Fprintln(out)
		}

		r := a.renderer()
		for i := start; i < len(messages); i++ {
			printMessage(out, r, i, messages[i])
		}
		return nil
	},
}

func printMessage(out io.Writer, r *internal.Renderer, index int, msg internal.Message) {
	label := aiLabelStyle.Render("AI")
	if msg.Role == internal.RoleUser {
		label = userLabelStyle.Render("Anda")
	}
	if msg.Edited {
		label += metaStyle.Render(" (edited)")
	}

	ts := ""
	if t := msg.GetTimestamp(); !t.IsZero() {
		ts = timestampStyle.Render(t.Local().Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(out, "#%d %s %s\n", index, label, ts)
	fmt.Fprintln(out, r.RenderMessage(msg))
	fmt.Fprintln(out)
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Show only the last N messages")
}
