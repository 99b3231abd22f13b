package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/roblox-ai-studio/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	storagePath string
	configPath  string
	provider    string
	ephemeral   bool
	plain       bool
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "roblox-ai",
	Short: "AI assistant for Roblox Studio developers",
	Long: `A terminal assistant for Roblox Studio developers.

Ask questions about Lua/Luau scripting, UI design, performance and the
Roblox APIs. Replies come from Anthropic or Gemini when an API key is
configured, and from built-in demo answers otherwise.

Features:
  • Interactive chat with rendered Markdown and code blocks
  • Five conversation categories (general, coding, design, optimization, learning)
  • Persistent history with retry, edit and delete
  • Export in multiple formats (TXT, Markdown, JSON, JSONL, YAML)
  • Demo accounts with an admin view of users, analytics and settings

Quick Start:
  roblox-ai chat                                   # Interactive chat
  roblox-ai send "Buat sistem inventory" -c coding # One-shot question
  roblox-ai export --format md                     # Export the conversation`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code. The
// logger is flushed before returning since os.Exit skips deferred calls.
func run() int {
	defer internal.SyncLogger()
	if err := rootCmd.Execute(); err != nil {
		internal.PrintError(fmt.Sprintf("Error: %v", err))
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "Path to the storage database (default ~/.roblox-ai/storage.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default ~/.config/roblox-ai/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", `Reply provider: "anthropic", "gemini" or "demo"`)
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep everything in memory for this run")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable Markdown rendering and colors in replies")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
