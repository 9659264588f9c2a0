package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go.withmatt.com/bucket/internal/auth"
	"go.withmatt.com/bucket/internal/config"
	"go.withmatt.com/bucket/internal/inbucket"
	"go.withmatt.com/bucket/internal/log"
	"go.withmatt.com/bucket/internal/route"
	"go.withmatt.com/bucket/internal/session"
	"go.withmatt.com/bucket/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	loc, err := resolveLocation(args, cfg.Mailbox)
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	store := openStore()
	defer store.Close()
	recent := loadRecent(ctx, store)

	if loc.Mailbox == "" {
		name, err := tui.PickMailbox(ctx, recent)
		if err != nil {
			return err
		}
		loc.Mailbox = name
	}

	theme, err := config.ResolveTheme(cfg.Theme)
	if err != nil {
		return fmt.Errorf("unable to resolve theme: %w", err)
	}
	uiConfig := cfg.UI.WithDefaults()

	if err := tui.Run(ctx, tui.Options{
		Client:    client,
		ServerURL: cfg.ServerURL(),
		Store:     store,
		Session:   session.New(recent, uiConfig.RecentLimit),
		Location:  loc,
		Theme:     theme,
		UI:        uiConfig,
		Keys:      cfg.Keys,
	}); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// resolveLocation reads the screen to open from the command line. An empty
// mailbox in the result means the user should be asked.
func resolveLocation(args []string, defaultMailbox string) (route.Location, error) {
	switch len(args) {
	case 0:
		return route.Location{Mailbox: strings.TrimSpace(defaultMailbox)}, nil
	case 1:
		if route.LooksLikePath(args[0]) {
			return route.Parse(args[0])
		}
		return mailboxLocation(args[0], "")
	default:
		if route.LooksLikePath(args[0]) {
			return route.Location{}, fmt.Errorf("unexpected message id after path %q", args[0])
		}
		return mailboxLocation(args[0], args[1])
	}
}

func mailboxLocation(name, id string) (route.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return route.Location{}, errors.New("mailbox name is required")
	}
	return route.Location{Mailbox: name, MessageID: strings.TrimSpace(id)}, nil
}

// newClient builds the API client, attaching basic auth when a username is
// configured.
func newClient(cfg *config.Config) (*inbucket.Client, error) {
	serverURL := cfg.ServerURL()
	username := strings.TrimSpace(cfg.Server.Username)
	if username == "" {
		return inbucket.NewClient(serverURL, "", ""), nil
	}
	password, err := auth.Password(serverURL, username)
	if err != nil {
		if errors.Is(err, auth.ErrNoPassword) {
			return nil, fmt.Errorf("no password stored for %s on %s. Run 'bucket login' first", username, serverURL)
		}
		return nil, err
	}
	return inbucket.NewClient(serverURL, username, password), nil
}

// openStore opens the session store. Failures are logged and yield a nil
// store, which keeps recents in memory only.
func openStore() *session.Store {
	path, err := session.DefaultStorePath()
	if err != nil {
		log.Printf("session store path: %v", err)
		return nil
	}
	store, err := session.OpenStore(path)
	if err != nil {
		log.Printf("open session store %s: %v", path, err)
		return nil
	}
	return store
}

func loadRecent(ctx context.Context, store *session.Store) []string {
	recent, err := store.LoadRecent(ctx)
	if err != nil {
		log.Printf("load recent mailboxes: %v", err)
		return nil
	}
	return recent
}
