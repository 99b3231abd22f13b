package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iksnae/roblox-ai-studio/internal"
	"github.com/spf13/cobra"
)

// retryCmd resends the last user message
var retryCmd = &cobra.Command{
	Use:   "retry",
	Short: "Resend the last message, dropping failed replies",
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

		var (
			reply internal.Message
			sent  bool
		)
		err = internal.ShowProgress(ctx, "Mengirim ulang...", func() error {
			var retryErr error
			reply, sent, retryErr = a.session.Retry(ctx)
			return retryErr
		})
		if err != nil {
			return err
		}
		if !sent {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to retry.")
			return nil
		}
		printReply(cmd.OutOrStdout(), a, reply)
		return nil
	},
}

// editCmd replaces the text of a user message
var editCmd = &cobra.Command{
	Use:   "edit <index> <text...>",
	Short: "Edit a message you sent",
	Long: `Replace the text of one of your messages. The reply is not regenerated;
run retry to ask again. Use history to find the index.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		text := strings.TrimSpace(strings.Join(args[1:], " "))
		if text == "" {
			return fmt.Errorf("message text is required")
		}

		a, err := openApp(context.Background())
		if err != nil {
			return err
		}
		defer a.Close()

		ok, err := a.session.Edit(index, text)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("message #%d is not one of your messages", index)
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("✅ Edited message #%d", index)))
		return nil
	},
}

// deleteCmd removes one message
var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete a message from the conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}

		a, err := openApp(context.Background())
		if err != nil {
			return err
		}
		defer a.Close()

		ok, err := a.session.Delete(index)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no message #%d", index)
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("✅ Deleted message #%d", index)))
		return nil
	},
}

// clearCmd forgets the conversation
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(context.Background())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.session.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Conversation cleared"))
		return nil
	},
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("invalid message index %q", arg)
	}
	return index, nil
}

func init() {
	rootCmd.AddCommand(retryCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
}
