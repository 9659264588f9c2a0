package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"go.withmatt.com/bucket/internal/config"
)

var purgeYes bool

var purgeCmd = &cobra.Command{
	Use:   "purge <mailbox>...",
	Short: "Delete every message in one or more mailboxes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPurge,
}

func init() {
	purgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "skip confirmation")
	rootCmd.AddCommand(purgeCmd)
}

type mailboxPurger interface {
	PurgeMailbox(ctx context.Context, mailbox string) error
}

func runPurge(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	if !purgeYes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Purge %s?", strings.Join(args, ", "))).
				Description("Every message will be deleted from the server.").
				Affirmative("Purge").
				Negative("Cancel").
				Value(&confirmed),
		))
		if err := form.RunWithContext(ctx); err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	if err := purgeMailboxes(ctx, client, args); err != nil {
		return err
	}
	for _, name := range args {
		fmt.Fprintf(cmd.OutOrStdout(), "Purged %s\n", name)
	}
	return nil
}

func purgeMailboxes(ctx context.Context, client mailboxPurger, names []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRequests)
	for _, name := range names {
		g.Go(func() error {
			if err := client.PurgeMailbox(ctx, name); err != nil {
				return fmt.Errorf("unable to purge %s: %w", name, err)
			}
			return nil
		})
	}
	return g.Wait()
}
