package cmd

import (
	"context"
	"fmt"

	"github.com/iksnae/roblox-ai-studio/internal"
	"github.com/iksnae/roblox-ai-studio/internal/tui"
	"github.com/spf13/cobra"
)

// chatCmd starts the interactive chat
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat",
	Long: `Open the interactive chat. Type a message and press Enter.

Commands inside the chat:
  /retry            resend the last message
  /clear            clear the conversation
  /category <id>    switch category
  /quit             leave (or Esc, Ctrl+C)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if !internal.IsTerminal() {
			return fmt.Errorf("chat needs a terminal; use send for scripted use")
		}

		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		return tui.Run(ctx, a.session, internal.Status(a.cfg).Mode)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
