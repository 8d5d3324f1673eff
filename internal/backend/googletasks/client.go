// Package googletasks mirrors added tasks into a Google Tasks list.
package googletasks

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"tasklist/internal/config"
	"tasklist/internal/tasklist"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// APITimeout is the timeout for API calls.
	APITimeout = 5 * time.Second
)

// Client implements tasklist.Notifier by inserting every added task into
// one Google Tasks list. Nothing is read back.
type Client struct {
	svc    *tasks.Service
	listID string
	logger *log.Logger
}

// New creates a client from the stored OAuth credentials. When
// cfg.SyncList is set the list is resolved by title; otherwise the
// default list is used.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	oauthConfig, err := OAuthConfig(cfg)
	if err != nil {
		return nil, err
	}
	token, err := LoadToken(cfg.TokenPath())
	if err != nil {
		return nil, err
	}

	// Token source refreshes on demand.
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))

	c, err := NewWithHTTPClient(ctx, httpClient)
	if err != nil {
		return nil, err
	}
	c.logger = cfg.Log()

	if cfg.SyncList != "" {
		if err := c.UseList(ctx, cfg.SyncList); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewWithHTTPClient creates a client on a custom HTTP client. Extra
// options (e.g. option.WithEndpoint) are passed to the Tasks service.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{
		svc:    svc,
		listID: DefaultListID,
		logger: log.New(io.Discard, "", 0),
	}, nil
}

// ListID returns the id of the list tasks are mirrored to.
func (c *Client) ListID() string {
	return c.listID
}

// UseList switches the target list to the one titled name.
func (c *Client) UseList(ctx context.Context, name string) error {
	id, err := c.ResolveList(ctx, name)
	if err != nil {
		return err
	}
	c.listID = id
	return nil
}

// ResolveList finds a list id by title (case-insensitive, trimmed).
// Returns an error if no list or more than one list matches.
func (c *Client) ResolveList(ctx context.Context, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	nameLower := strings.ToLower(name)

	var matches []string
	err := c.svc.Tasklists.List().MaxResults(100).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, list := range resp.Items {
			if strings.ToLower(strings.TrimSpace(list.Title)) == nameLower {
				matches = append(matches, list.Id)
			}
		}
		return nil
	})
	if err != nil {
		return "", wrapError(err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("list not found: %s", name)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous list name: %s", name)
	}
}

// TaskAdded inserts t into the target list.
func (c *Client) TaskAdded(ctx context.Context, t tasklist.Task) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	created, err := c.svc.Tasks.Insert(c.listID, &tasks.Task{
		Title: t.Label,
		Notes: "tasklist:" + string(t.ID),
	}).Context(ctx).Do()
	if err != nil {
		return wrapError(err)
	}
	c.logger.Printf("mirrored %s as %s", t.ID, created.Id)
	return nil
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}

	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("token expired or revoked (run: tasklist login)")
	}

	if strings.Contains(errStr, "404") {
		return fmt.Errorf("not found")
	}

	return err
}
