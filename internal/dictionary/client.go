package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/at-ishikawa/wordlewin/internal/fetch"
)

type Client struct {
	fetcher fetch.Fetcher
	baseURL string
	limits  Limits
}

func NewClient(fetcher fetch.Fetcher, baseURL string, limits Limits) *Client {
	return &Client{
		fetcher: fetcher,
		baseURL: baseURL,
		limits:  limits,
	}
}

func (c *Client) lookupAPI(ctx context.Context, word string) ([]Entry, error) {
	endpoint, err := url.JoinPath(c.baseURL, word)
	if err != nil {
		return nil, fmt.Errorf("url.JoinPath > %w", err)
	}

	res, err := c.fetcher.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetcher.Get > %w", err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode, string(res.Body))
	}

	var entries []Entry
	if err := json.Unmarshal(res.Body, &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return entries, nil
}

// Lookup returns the formatted definitions of word.
// Any failure is treated as no definition being available.
func (c *Client) Lookup(ctx context.Context, word string) (string, bool) {
	entries, err := c.lookupAPI(ctx, word)
	if err != nil {
		slog.Default().Debug("definition unavailable",
			"word", word,
			"error", err,
		)
		return "", false
	}

	definition, ok := Format(entries, c.limits)
	if !ok {
		slog.Default().Debug("no definitions in dictionary response",
			"word", word,
			"entries", len(entries),
		)
	}
	return definition, ok
}
