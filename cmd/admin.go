package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/roblox-ai-studio/internal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	adminOutput string
	userID      int
	siteName    string
	siteTagline string
	siteLogoURL string
)

// usersCmd lists accounts (admin only)
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(context.Background())
		if err != nil {
			return err
		}
		defer a.Close()
		if _, err := a.requireAdmin(); err != nil {
			return err
		}

		svc := internal.NewAnalyticsService(a.tracker)
		out := cmd.OutOrStdout()
		if userID > 0 {
			u, ok := svc.UserByID(userID)
			if !ok {
				return fmt.Errorf("no user with id %d", userID)
			}
			if adminOutput != "table" {
				return writeStructured(out, adminOutput, u)
			}
			printUsers(out, []internal.UserRecord{u})
			return nil
		}

		users := svc.Users()
		if adminOutput != "table" {
			return writeStructured(out, adminOutput, users)
		}
		printUsers(out, users)
		return nil
	},
}

func printUsers(out io.Writer, users []internal.UserRecord) {
	fmt.Fprintf(out, "%-3s %-16s %-20s %-10s %-9s %6s  %s\n", "ID", "NAME", "EMAIL", "ROLE", "STATUS", "CHATS", "LAST ACTIVE")
	for _, u := range users {
		fmt.Fprintf(out, "%-3d %-16s %-20s %-10s %-9s %6d  %s\n", u.ID, u.Name, u.Email, u.Role, u.Status, u.TotalChats, u.LastActive)
	}
}

// analyticsCmd prints the usage report (admin only)
var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show usage analytics (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(context.Background())
		if err != nil {
			return err
		}
		defer a.Close()
		if _, err := a.requireAdmin(); err != nil {
			return err
		}

		svc := internal.NewAnalyticsService(a.tracker)
		report := svc.Report()
		out := cmd.OutOrStdout()
		if adminOutput != "table" {
			return writeStructured(out, adminOutput, report)
		}

		o := report.Overview
		fmt.Fprintln(out, sectionStyle.Render("📊 Overview"))
		fmt.Fprintf(out, "   Users: %d (%d active)\n", o.TotalUsers, o.ActiveUsers)
		fmt.Fprintf(out, "   Chats: %d\n", o.TotalChats)
		fmt.Fprintf(out, "   Avg response: %.1fs\n", o.AvgResponseTime)
		fmt.Fprintln(out)

		fmt.Fprintln(out, sectionStyle.Render("Categories"))
		for _, c := range svc.CategoryStats() {
			fmt.Fprintf(out, "   %-13s %5d queries  %.1fs  ★%.1f  %s\n", c.Category, c.TotalQueries, c.AvgResponseTime, c.Satisfaction, c.Trend)
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, sectionStyle.Render("Top prompts"))
		for _, p := range report.TopPrompts {
			fmt.Fprintf(out, "   %4d  %s %s\n", p.Count, p.Prompt, metaStyle.Render("["+p.Category+"]"))
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, sectionStyle.Render("Recent activity"))
		for _, act := range report.RecentActivity {
			fmt.Fprintf(out, "   %s  %s: %s\n", timestampStyle.Render(act.Timestamp), act.User, act.Action)
		}
		return nil
	},
}

// settingsCmd shows or updates the site settings (admin only)
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or update site settings (admin)",
	Long: `Show the site settings. Pass --site-name, --tagline or --logo-url to
update the site part; the API settings follow the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(context.Background())
		if err != nil {
			return err
		}
		defer a.Close()
		if _, err := a.requireAdmin(); err != nil {
			return err
		}

		svc := internal.NewSettingsService(a.store, a.cfg)
		settings, err := svc.Get()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("site-name") || flags.Changed("tagline") || flags.Changed("logo-url") {
			site := settings.Site
			if flags.Changed("site-name") {
				site.SiteName = siteName
			}
			if flags.Changed("tagline") {
				site.Tagline = siteTagline
			}
			if flags.Changed("logo-url") {
				site.LogoURL = siteLogoURL
			}
			if err := svc.UpdateSite(site); err != nil {
				return err
			}
			settings.Site = site
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Settings saved"))
		}

		format := adminOutput
		if format == "table" {
			format = "yaml"
		}
		return writeStructured(cmd.OutOrStdout(), format, settings)
	},
}

// writeStructured encodes v as json or yaml
func writeStructured(out io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output %q (use table, json or yaml)", format)
	}
}

func init() {
	for _, c := range []*cobra.Command{usersCmd, analyticsCmd, settingsCmd} {
		rootCmd.AddCommand(c)
		c.Flags().StringVar(&adminOutput, "output", "table", "Output format (table, json, yaml)")
	}
	usersCmd.Flags().IntVar(&userID, "id", 0, "Show a single user")
	settingsCmd.Flags().StringVar(&siteName, "site-name", "", "Site name")
	settingsCmd.Flags().StringVar(&siteTagline, "tagline", "", "Site tagline")
	settingsCmd.Flags().StringVar(&siteLogoURL, "logo-url", "", "Logo URL")
}
