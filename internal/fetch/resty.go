package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"resty.dev/v3"
)

// Config holds the HTTP client settings shared by every request.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// RestyFetcher is a Fetcher backed by a resty client.
type RestyFetcher struct {
	httpClient *resty.Client
}

var _ Fetcher = (*RestyFetcher)(nil)

// NewRestyFetcher builds a fetcher that asks for JSON with the configured user agent and timeout.
func NewRestyFetcher(config Config) *RestyFetcher {
	client := resty.NewWithClient(cleanhttp.DefaultClient())
	client.SetHeader("Accept", "application/json")
	if config.UserAgent != "" {
		client.SetHeader("User-Agent", config.UserAgent)
	}
	if config.Timeout > 0 {
		client.SetTimeout(config.Timeout)
	}

	return &RestyFetcher{
		httpClient: client,
	}
}

// Close releases the underlying resty client.
func (f *RestyFetcher) Close() error {
	return f.httpClient.Close()
}

// Get sends a GET request and returns the status code and body of any response, error statuses included.
func (f *RestyFetcher) Get(ctx context.Context, url string) (Response, error) {
	res, err := f.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return Response{}, fmt.Errorf("httpClient.Get(%s) > %w", url, err)
	}

	slog.Default().Debug("http response",
		"url", url,
		"status", res.StatusCode(),
		"duration", res.Duration(),
	)
	return Response{
		StatusCode: res.StatusCode(),
		Body:       res.Bytes(),
	}, nil
}
