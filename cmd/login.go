package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"go.withmatt.com/bucket/internal/auth"
	"go.withmatt.com/bucket/internal/config"
	"go.withmatt.com/bucket/internal/inbucket"
)

// loginProbeMailbox is listed to check credentials. Inbucket creates
// mailboxes on delivery, so an empty listing is a success.
const loginProbeMailbox = "bucket-login-check"

var (
	loginURL      string
	loginUsername string
	loginNoVerify bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the server password in the OS keyring",
	Long: `Prompts for the basic-auth credentials of the Inbucket server and stores the
password in the OS keyring. The server URL and username are saved to config.toml.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored server password",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVar(&loginURL, "url", "", "server URL to log in to")
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "basic-auth username")
	loginCmd.Flags().BoolVar(&loginNoVerify, "no-verify", false, "skip checking the credentials against the server")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	serverURL := cfg.ServerURL()
	if loginURL != "" {
		serverURL = loginURL
	}
	username := cfg.Server.Username
	if loginUsername != "" {
		username = loginUsername
	}
	var password string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Server").
			Value(&serverURL).
			Validate(requireValue("server URL")),
		huh.NewInput().
			Title("Username").
			Value(&username).
			Validate(requireValue("username")),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}

	serverURL = strings.TrimRight(strings.TrimSpace(serverURL), "/")
	username = strings.TrimSpace(username)

	if !loginNoVerify {
		client := inbucket.NewClient(serverURL, username, password)
		if _, err := client.ListHeaders(ctx, loginProbeMailbox); err != nil {
			var apiErr *inbucket.APIError
			if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
				return errors.New("the server rejected these credentials")
			}
			return fmt.Errorf("unable to reach %s: %w", serverURL, err)
		}
	}

	if err := auth.SetPassword(serverURL, username, password); err != nil {
		return err
	}

	if cfg.Server.URL != serverURL || cfg.Server.Username != username {
		cfg.Server.URL = serverURL
		cfg.Server.Username = username
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("unable to save config: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s\n", serverURL, username)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}
	if cfg.Server.Username == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "No username configured.")
		return nil
	}
	if err := auth.DeletePassword(cfg.ServerURL(), cfg.Server.Username); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed password for %s on %s\n", cfg.Server.Username, cfg.ServerURL())
	return nil
}

func requireValue(name string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
