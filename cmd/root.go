package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"go.withmatt.com/bucket/internal/log"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "bucket [mailbox] [message-id]",
	Short: "A terminal mailbox viewer for Inbucket",
	Long: `bucket browses the mailboxes of an Inbucket email-testing server from the terminal.

The mailbox may be given as a name, a name and message id, or a /m/<mailbox>/<id> path.`,
	Version: version,
	Args:    cobra.MaximumNArgs(2),
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	RunE:         runTUI,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		return log.Setup(debug)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return log.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
}

func Execute() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
