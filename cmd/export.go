package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iksnae/roblox-ai-studio/internal"
	"github.com/iksnae/roblox-ai-studio/internal/export"
	"github.com/spf13/cobra"
)

var (
	format     string
	outputPath string
	outputDir  string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the conversation to a file",
	Long: `Export the saved conversation in one of: txt, md, json, jsonl, yaml.

Without --output the file is written to --out as
roblox-ai-chat-<timestamp>.<ext>. Use --output - to write to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		a, err := openApp(context.Background())
		if err != nil {
			return err
		}
		defer a.Close()

		if !a.session.HasMessages() {
			return fmt.Errorf("nothing to export: the conversation is empty")
		}

		user, err := a.auth.Current()
		if err != nil {
			internal.LogWarn("Failed to read current user: %v", err)
		}
		session, err := a.session.Snapshot(user)
		if err != nil {
			return err
		}

		if outputPath == "-" {
			if err := exporter.Export(session, cmd.OutOrStdout()); err != nil {
				return &internal.ExportError{Format: format, Path: "stdout", Err: err}
			}
			return nil
		}

		path := outputPath
		if path == "" {
			filename := fmt.Sprintf("roblox-ai-chat-%s.%s", time.Now().Format("20060102-150405"), exporter.Extension())
			path = filepath.Join(outputDir, filename)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		file, err := os.Create(path)
		if err != nil {
			return &internal.ExportError{Format: format, Path: path, Err: err}
		}
		if err := exporter.Export(session, file); err != nil {
			_ = file.Close()
			return &internal.ExportError{Format: format, Path: path, Err: err}
		}
		if err := file.Close(); err != nil {
			return &internal.ExportError{Format: format, Path: path, Err: err}
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("✅ Exported %d message(s) to %s", session.Metadata.MessageCount, path)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "txt", "Export format (txt, md, json, jsonl, yaml)")
	exportCmd.Flags().StringVar(&outputPath, "output", "", "Output file, or - for stdout")
	exportCmd.Flags().StringVarP(&outputDir, "out", "o", ".", "Output directory when --output is not set")
}
