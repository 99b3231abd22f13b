package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	password        string
	confirmPassword string
)

// loginCmd signs in with a demo account
var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in",
	Long: `Sign in with one of the demo accounts:
  admin@roblox.ai / password123   (admin)
  user@roblox.ai  / password123

The password is read from stdin when --password is not given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := bufio.NewReader(cmd.InOrStdin())
		pw, err := readSecret(cmd, in, password, "Password: ")
		if err != nil {
			return err
		}

		a, err := openApp(context.Background())
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.auth.Login(args[0], pw)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("✅ Signed in as %s (%s)", user.Name, user.Role)))
		return nil
	},
}

// registerCmd creates an account and signs it in
var registerCmd = &cobra.Command{
	Use:   "register <name> <email>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := bufio.NewReader(cmd.InOrStdin())
		pw, err := readSecret(cmd, in, password, "Password: ")
		if err != nil {
			return err
		}
		confirm := confirmPassword
		if confirm == "" {
			if confirm, err = readSecret(cmd, in, "", "Confirm password: "); err != nil {
				return err
			}
		}

		a, err := openApp(context.Background())
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.auth.Register(args[0], args[1], pw, confirm)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("✅ Welcome, %s!", user.Name)))
		return nil
	},
}

// logoutCmd signs out and clears the conversation
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(context.Background())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.auth.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Signed out"))
		return nil
	},
}

// whoamiCmd prints the signed-in user
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(context.Background())
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		user, err := a.auth.Current()
		if err != nil {
			return err
		}
		if user == nil {
			fmt.Fprintln(out, "Not signed in.")
			return nil
		}
		fmt.Fprintf(out, "%s <%s>\n", user.Name, user.Email)
		fmt.Fprintf(out, "   Role: %s\n", user.Role)
		fmt.Fprintf(out, "   ID:   %s\n", user.ID)
		return nil
	},
}

// readSecret returns value, or reads one line from stdin after prompt
func readSecret(cmd *cobra.Command, in *bufio.Reader, value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	registerCmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	registerCmd.Flags().StringVar(&confirmPassword, "confirm", "", "Password confirmation")
}
