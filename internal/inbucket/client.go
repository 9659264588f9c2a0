// Package inbucket is a client for the Inbucket REST API.
package inbucket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "http://localhost:9000"
	maxErrorBodySize = 1 << 20
)

// Client talks to a single Inbucket server.
type Client struct {
	BaseURL  string
	Username string
	Password string
	HTTP     *http.Client
}

// BaseURLFromEnv returns BUCKET_URL, or the default local server.
func BaseURLFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("BUCKET_URL")); v != "" {
		return v
	}
	return defaultBaseURL
}

// NewClient creates a client for baseURL. Credentials are optional and only
// sent when a username is set.
func NewClient(baseURL, username, password string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = BaseURLFromEnv()
	}
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Username: username,
		Password: password,
		HTTP: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// ListHeaders fetches the headers of every message in a mailbox, in the
// order the server stores them (oldest first).
func (c *Client) ListHeaders(ctx context.Context, mailbox string) ([]Header, error) {
	var headers []Header
	if err := c.getJSON(ctx, mailboxPath(mailbox), &headers); err != nil {
		return nil, err
	}
	return headers, nil
}

// GetMessage fetches a single message with its bodies.
func (c *Client) GetMessage(ctx context.Context, mailbox, id string) (*Message, error) {
	var msg Message
	if err := c.getJSON(ctx, messagePath(mailbox, id), &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// MarkSeen flags a message as seen.
func (c *Client) MarkSeen(ctx context.Context, mailbox, id string) error {
	return c.discard(ctx, http.MethodPatch, messagePath(mailbox, id), seenPatch{Seen: true})
}

// DeleteMessage removes a single message.
func (c *Client) DeleteMessage(ctx context.Context, mailbox, id string) error {
	return c.discard(ctx, http.MethodDelete, messagePath(mailbox, id), nil)
}

// PurgeMailbox removes every message in a mailbox.
func (c *Client) PurgeMailbox(ctx context.Context, mailbox string) error {
	return c.discard(ctx, http.MethodDelete, mailboxPath(mailbox), nil)
}

func (c *Client) Do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Username != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, apiError(resp)
	}

	return resp, nil
}

func (c *Client) discard(ctx context.Context, method, path string, body any) error {
	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func apiError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	message := strings.TrimSpace(string(body))

	if len(body) > 0 {
		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &payload); err == nil {
			if payload.Error != "" {
				message = payload.Error
			} else if payload.Message != "" {
				message = payload.Message
			}
		}
	}

	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return &APIError{StatusCode: resp.StatusCode, Message: message}
}

func mailboxPath(mailbox string) string {
	return "/api/v1/mailbox/" + url.PathEscape(mailbox)
}

func messagePath(mailbox, id string) string {
	return mailboxPath(mailbox) + "/" + url.PathEscape(id)
}
