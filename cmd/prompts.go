package cmd

import (
	"fmt"

	"github.com/iksnae/roblox-ai-studio/internal"
	"github.com/spf13/cobra"
)

var (
	promptsSearch   string
	promptsCategory string
)

// promptsCmd lists the quick prompts
var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List suggested questions",
	Long: `List the suggested questions, optionally filtered by text or category.

Examples:
  roblox-ai prompts --category coding
  roblox-ai prompts --search lag`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		prompts := internal.FilterPrompts(internal.QuickPrompts, promptsSearch, promptsCategory)
		if len(prompts) == 0 {
			fmt.Fprintln(out, "No prompts match.")
			return nil
		}
		for _, p := range prompts {
			fmt.Fprintf(out, "%s %s\n", infoStyle.Render("["+p.Category+"]"), p.Text)
			fmt.Fprintf(out, "    %s\n", metaStyle.Render(p.Description))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptsCmd)
	promptsCmd.Flags().StringVarP(&promptsSearch, "search", "s", "", "Only prompts containing this text")
	promptsCmd.Flags().StringVarP(&promptsCategory, "category", "c", "", "Only prompts of this category")
}
