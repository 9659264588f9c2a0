package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.withmatt.com/bucket/internal/session"
)

var recentClear bool

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened mailboxes",
	Args:  cobra.NoArgs,
	RunE:  runRecent,
}

func init() {
	recentCmd.Flags().BoolVar(&recentClear, "clear", false, "forget all recent mailboxes")
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	path, err := session.DefaultStorePath()
	if err != nil {
		return err
	}
	store, err := session.OpenStore(path)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer store.Close()

	if recentClear {
		return store.SaveRecent(ctx, nil)
	}

	recent, err := store.LoadRecent(ctx)
	if err != nil {
		return fmt.Errorf("unable to load recent mailboxes: %w", err)
	}
	if len(recent) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recent mailboxes.")
		return nil
	}
	for _, name := range recent {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
