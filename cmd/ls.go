package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"go.withmatt.com/bucket/internal/config"
	"go.withmatt.com/bucket/internal/inbucket"
)

// maxConcurrentRequests bounds the fan-out of multi-mailbox commands.
const maxConcurrentRequests = 4

var lsCmd = &cobra.Command{
	Use:   "ls <mailbox>...",
	Short: "List the messages in one or more mailboxes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

type headerLister interface {
	ListHeaders(ctx context.Context, mailbox string) ([]inbucket.Header, error)
}

type mailboxListing struct {
	name    string
	headers []inbucket.Header
}

func runLs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	listings, err := listMailboxes(cmd.Context(), client, args)
	if err != nil {
		return err
	}
	return printListings(cmd.OutOrStdout(), listings)
}

// listMailboxes fetches every mailbox concurrently. Results keep the order
// of names.
func listMailboxes(ctx context.Context, client headerLister, names []string) ([]mailboxListing, error) {
	listings := make([]mailboxListing, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRequests)
	for i, name := range names {
		g.Go(func() error {
			headers, err := client.ListHeaders(ctx, name)
			if err != nil {
				return fmt.Errorf("unable to list %s: %w", name, err)
			}
			listings[i] = mailboxListing{name: name, headers: headers}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return listings, nil
}

func printListings(w io.Writer, listings []mailboxListing) error {
	for i, listing := range listings {
		if len(listings) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s:\n", listing.name)
		}
		if len(listing.headers) == 0 {
			fmt.Fprintln(w, "No messages.")
			continue
		}

		writer := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(writer, "\tid\tdate\tfrom\tsubject")
		// Newest first, as in the TUI.
		for j := len(listing.headers) - 1; j >= 0; j-- {
			h := listing.headers[j]
			marker := " "
			if !h.Seen {
				marker = "*"
			}
			date := ""
			if !h.Date.IsZero() {
				date = h.Date.Local().Format(time.DateTime)
			}
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
				marker, h.ID, date, oneLine(h.From), oneLine(h.Subject))
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
