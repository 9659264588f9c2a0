// Package auth keeps Inbucket basic-auth passwords in the OS keyring.
package auth

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/zalando/go-keyring"

	"go.withmatt.com/bucket/internal/log"
)

const keyringService = "go.withmatt.com/bucket"

// ErrNoPassword is returned when nothing is stored for a server and user.
var ErrNoPassword = errors.New("no password stored")

// Password returns the stored password for username on serverURL.
func Password(serverURL, username string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", ErrNoPassword
	}
	value, err := keyring.Get(keyringService, keyringAccount(serverURL, username))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNoPassword
		}
		return "", fmt.Errorf("unable to read password from keyring: %w", err)
	}
	return value, nil
}

func SetPassword(serverURL, username, password string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("missing username")
	}
	log.Printf("Saving credential to keyring for: %s", keyringAccount(serverURL, username))
	if err := keyring.Set(keyringService, keyringAccount(serverURL, username), password); err != nil {
		return fmt.Errorf("unable to save password to keyring: %w", err)
	}
	return nil
}

// DeletePassword removes a stored password. Deleting a missing entry is not an error.
func DeletePassword(serverURL, username string) error {
	if strings.TrimSpace(username) == "" {
		return nil
	}
	if err := keyring.Delete(keyringService, keyringAccount(serverURL, username)); err != nil &&
		!errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("unable to delete password from keyring: %w", err)
	}
	return nil
}

// keyringAccount identifies a user on a server, e.g. "ops@inbucket.test:9000".
func keyringAccount(serverURL, username string) string {
	host := strings.TrimSpace(serverURL)
	if u, err := url.Parse(host); err == nil && u.Host != "" {
		host = u.Host
	}
	return strings.TrimSpace(username) + "@" + strings.ToLower(host)
}
