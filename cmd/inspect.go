package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/roblox-ai-studio/internal"
	"github.com/spf13/cobra"
)

var (
	inspectPrefix string
	inspectRaw    bool
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [key]",
	Short: "Inspect the storage database",
	Long: `Inspect the key/value entries kept in the storage database.

Without a key, every entry is listed with its size and a preview. With a
key, the full value is printed, indented when it holds JSON.

Examples:
  roblox-ai inspect                              # List all entries
  roblox-ai inspect --prefix roblox_ai_          # Only the chat and account keys
  roblox-ai inspect roblox_ai_chat_history       # Show the saved conversation`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := storagePath
		if dbPath == "" {
			cfg, err := internal.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			dbPath = cfg.StoragePath
		}

		db, err := internal.OpenDatabase(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer func() { _ = db.Close() }()

		out := cmd.OutOrStdout()
		if len(args) == 1 {
			value, found, err := internal.NewSQLiteStoreFromDB(db).Get(args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("key not found: %s", args[0])
			}
			return printValue(out, value)
		}

		pairs, err := internal.QueryLocalStorage(db, inspectPrefix+"%")
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "📋 Database: %s\n", dbPath)
		fmt.Fprintf(out, "📊 Found %d entr%s\n\n", len(pairs), plural(len(pairs), "y", "ies"))
		for _, p := range pairs {
			fmt.Fprintf(out, "  • %s %s\n", infoStyle.Render(p.Key), metaStyle.Render(fmt.Sprintf("(%d bytes)", len(p.Value))))
			fmt.Fprintf(out, "    %s\n", preview(p.Value))
		}
		return nil
	},
}

// printValue writes value, indenting it when it is JSON
func printValue(out io.Writer, value string) error {
	if !inspectRaw {
		var buf bytes.Buffer
		if json.Indent(&buf, []byte(value), "", "  ") == nil {
			_, err := fmt.Fprintln(out, buf.String())
			return err
		}
	}
	_, err := fmt.Fprintln(out, value)
	return err
}

// preview shortens a value to its first line, at most 80 runes
func preview(value string) string {
	line, _, cut := strings.Cut(value, "\n")
	runes := []rune(line)
	if len(runes) > 80 {
		return string(runes[:80]) + "..."
	}
	if cut {
		return line + "..."
	}
	return line
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectPrefix, "prefix", "", "Only list keys starting with this prefix")
	inspectCmd.Flags().BoolVar(&inspectRaw, "raw", false, "Print values as stored")
}
