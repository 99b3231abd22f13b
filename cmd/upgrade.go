package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/iksnae/roblox-ai-studio/internal"
	"github.com/spf13/cobra"
)

const (
	binaryName = "roblox-ai"
	repoName   = "roblox-ai-studio"
	modulePath = "github.com/iksnae/roblox-ai-studio"
)

var upgradeDryRun bool

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Rebuild roblox-ai from its source checkout",
	Long: `Upgrade roblox-ai by pulling the latest changes into its source checkout
and reinstalling the binary in place.

This command will:
1. Find the repository (working directory, common locations, or above the binary)
2. Pull latest changes from git
3. Rebuild the binary
4. Replace the current binary

Use --dry-run to only report what would be done.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		currentBinary, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to get current binary path: %w", err)
		}
		if realPath, err := filepath.EvalSymlinks(currentBinary); err == nil {
			currentBinary = realPath
		}
		internal.LogInfo("Current binary location: %s", currentBinary)

		repoPath, err := findRepository()
		if err != nil {
			return fmt.Errorf("failed to find repository: %w\n\n"+
				"If you installed via 'go install', you can upgrade by running:\n"+
				"  go install %s@main", err, modulePath)
		}
		internal.LogInfo("Found repository at: %s", repoPath)

		if upgradeDryRun {
			fmt.Fprintf(out, "Would pull and rebuild %s\n", repoPath)
			fmt.Fprintf(out, "Would install to %s\n", currentBinary)
			return nil
		}

		for _, tool := range []string{"git", "go"} {
			if _, err := exec.LookPath(tool); err != nil {
				return fmt.Errorf("%s is not installed or not in PATH", tool)
			}
		}

		if remotes, err := runIn(repoPath, "git", "remote"); err != nil || len(remotes) == 0 {
			internal.LogWarn("No git remote configured. Skipping pull.")
		} else {
			internal.LogInfo("Pulling latest changes from repository...")
			if err := streamIn(repoPath, "git", "pull"); err != nil {
				return fmt.Errorf("failed to pull latest changes: %w", err)
			}
		}

		internal.LogInfo("Building new binary...")
		built := filepath.Join(repoPath, binaryName)
		if err := streamIn(repoPath, "go", "build", "-buildvcs=false", "-o", built, "."); err != nil {
			return fmt.Errorf("failed to build binary: %w", err)
		}
		defer func() { _ = os.Remove(built) }()

		internal.LogInfo("Installing to %s...", currentBinary)
		if err := copyFile(built, currentBinary); err != nil {
			return fmt.Errorf("failed to install binary: %w", err)
		}
		if err := os.Chmod(currentBinary, 0755); err != nil {
			return fmt.Errorf("failed to make binary executable: %w", err)
		}

		output, err := exec.Command(currentBinary, "--version").Output()
		if err != nil {
			internal.LogWarn("Installation completed but verification failed: %v", err)
			return nil
		}
		internal.PrintSuccess("Upgrade successful!")
		fmt.Fprintf(out, "New version: %s", output)
		return nil
	},
}

// findRepository looks for the source checkout in the working directory,
// common project folders and the directories above the binary
func findRepository() (string, error) {
	if cwd, err := os.Getwd(); err == nil && isGitRepo(cwd) {
		return cwd, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		for _, dir := range []string{"Projects", "projects", "Code", "code", "src"} {
			path := filepath.Join(home, dir, repoName)
			if isGitRepo(path) {
				return path, nil
			}
		}
	}

	currentBinary, err := os.Executable()
	if err != nil {
		return "", err
	}
	if realPath, err := filepath.EvalSymlinks(currentBinary); err == nil {
		currentBinary = realPath
	}
	dir := filepath.Dir(currentBinary)
	for i := 0; i < 10; i++ {
		if isGitRepo(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find repository")
}

// isGitRepo checks if a directory is a git repository
func isGitRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil && info.IsDir()
}

func runIn(dir, name string, args ...string) ([]byte, error) {
	c := exec.Command(name, args...)
	c.Dir = dir
	return c.Output()
}

func streamIn(dir, name string, args ...string) error {
	c := exec.Command(name, args...)
	c.Dir = dir
	c.Stdout = os.Stderr
	c.Stderr = os.Stderr
	return c.Run()
}

// copyFile copies src over dst
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
	upgradeCmd.Flags().BoolVar(&upgradeDryRun, "dry-run", false, "Only show what would be done")
}
