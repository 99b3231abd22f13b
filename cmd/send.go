package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/roblox-ai-studio/internal"
	"github.com/spf13/cobra"
)

var sendCategory string

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send <message...>",
	Short: "Send one message and print the reply",
	Long: `Send a message to the assistant and print its reply.

The message and reply are appended to the saved conversation, so later
sends see the earlier turns.

Examples:
  roblox-ai send "Cara optimize game untuk mobile"
  roblox-ai send -c coding "Buat sistem inventory sederhana"`,
	Args: cobra.MinimumNArgs(1),
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

		if sendCategory != "" {
			if !internal.IsValidCategory(sendCategory) {
				return fmt.Errorf("unknown category %q", sendCategory)
			}
			if err := a.session.ChangeCategory(sendCategory, false); err != nil {
				return err
			}
		}

		var reply internal.Message
		err = internal.ShowProgress(ctx, "Sedang berpikir...", func() error {
			var sendErr error
			reply, sendErr = a.session.Send(ctx, strings.Join(args, " "))
			return sendErr
		})
		if err != nil {
			return err
		}

		printReply(cmd.OutOrStdout(), a, reply)
		return nil
	},
}

// printReply writes an assistant message and warns about a failed dispatch
func printReply(out io.Writer, a *app, reply internal.Message) {
	fmt.Fprintln(out, a.renderer().RenderMessage(reply))
	if err := a.session.LastError(); err != nil && !reply.IsError {
		internal.PrintWarning(fmt.Sprintf("Live reply failed (%v); showing a demo answer", err))
	}
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&sendCategory, "category", "c", "", "Switch to this category before sending")
}
