package cmd

import (
	"errors"
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"go.withmatt.com/bucket/internal/config"
	"go.withmatt.com/bucket/internal/route"
)

var openSource bool

var openCmd = &cobra.Command{
	Use:   "open <mailbox> [message-id]",
	Short: "Open a mailbox or message in the server's web UI",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runOpen,
}

func init() {
	openCmd.Flags().BoolVar(&openSource, "source", false, "open the raw message source")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}
	url, err := openTarget(cfg.ServerURL(), args, openSource)
	if err != nil {
		return err
	}
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("unable to open %s: %w", url, err)
	}
	return nil
}

func openTarget(serverURL string, args []string, source bool) (string, error) {
	loc, err := resolveLocation(args, "")
	if err != nil {
		return "", err
	}
	if source {
		if loc.MessageID == "" {
			return "", errors.New("--source needs a message id")
		}
		return route.SourceURL(serverURL, loc.Mailbox, loc.MessageID), nil
	}
	return route.WebURL(serverURL, loc), nil
}
