package cmd

import (
	"context"
	"fmt"

	"github.com/iksnae/roblox-ai-studio/internal"
	"github.com/spf13/cobra"
)

var categoryClear bool

// categoryCmd shows or switches the active category
var categoryCmd = &cobra.Command{
	Use:   "category [id]",
	Short: "Show or switch the conversation category",
	Long: `Without an argument, list the categories and mark the active one.
With an id, switch to it. The category selects the instructions sent with
every message.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(context.Background())
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		if len(args) == 0 {
			active := a.session.Category()
			for _, c := range internal.Categories {
				marker := "  "
				if c.ID == active {
					marker = successStyle.Render("▸ ")
				}
				fmt.Fprintf(out, "%s%-13s %s\n", marker, c.ID, metaStyle.Render(c.Description))
			}
			return nil
		}

		id := args[0]
		if !internal.IsValidCategory(id) {
			return fmt.Errorf("unknown category %q", id)
		}
		if err := a.session.ChangeCategory(id, categoryClear); err != nil {
			return err
		}
		c, _ := internal.LookupCategory(id)
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Category: %s", c.Name)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.Flags().BoolVar(&categoryClear, "clear", false, "Also clear the conversation")
}
