package archive

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"drift/internal/domain"
)

// Client is the HTTP implementation of domain.ArchiveClient.
type Client struct {
	http *resty.Client
}

// interface guard
var _ domain.ArchiveClient = (*Client)(nil)

// NewClient returns a client for the archive at base, e.g.
// "http://localhost:8025".
func NewClient(base string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(base).
			SetTimeout(30 * time.Second),
	}
}

// List returns the summaries of every record the archive holds.
func (c *Client) List(ctx context.Context) ([]domain.RecordInfo, error) {
	var out []domain.RecordInfo
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/records")
	if err != nil {
		return nil, fmt.Errorf("list archive records: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("list archive records: %s", resp.Status())
	}
	return out, nil
}

// Fetch returns the named record.
func (c *Client) Fetch(ctx context.Context, name string) (domain.GroundMotion, error) {
	var out domain.GroundMotion
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/records/" + url.PathEscape(name))
	if err != nil {
		return domain.GroundMotion{}, fmt.Errorf("fetch record %q: %w", name, err)
	}
	if resp.StatusCode() == 404 {
		return domain.GroundMotion{}, fmt.Errorf("record %q not in archive", name)
	}
	if resp.IsError() {
		return domain.GroundMotion{}, fmt.Errorf("fetch record %q: %s", name, resp.Status())
	}
	if err := out.Validate(); err != nil {
		return domain.GroundMotion{}, fmt.Errorf("archive record %q: %w", name, err)
	}
	return out, nil
}
