// Package puzzle fetches the daily Wordle answer from the NYT API.
package puzzle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/at-ishikawa/wordlewin/internal/fetch"
)

var (
	// ErrFetch is returned when the puzzle cannot be retrieved or decoded.
	ErrFetch = errors.New("failed to fetch the puzzle")
	// ErrMissingSolution is returned when the puzzle response has no usable solution.
	ErrMissingSolution = errors.New("puzzle response has no solution")
)

// Puzzle is the answer for a single date together with the payload it came from.
type Puzzle struct {
	Solution string
	Date     string
	// Raw is the response body exactly as returned by the API.
	Raw json.RawMessage
}

// metadata holds the fields the API usually sends next to the solution.
type metadata struct {
	ID              int    `json:"id"`
	PrintDate       string `json:"print_date"`
	DaysSinceLaunch int    `json:"days_since_launch"`
	Editor          string `json:"editor"`
}

type Client struct {
	fetcher fetch.Fetcher
	baseURL string
}

func NewClient(fetcher fetch.Fetcher, baseURL string) *Client {
	return &Client{
		fetcher: fetcher,
		baseURL: baseURL,
	}
}

func (c *Client) url(date string) (string, error) {
	return url.JoinPath(c.baseURL, date+".json")
}

// Fetch returns the puzzle for date, which must be formatted as YYYY-MM-DD.
func (c *Client) Fetch(ctx context.Context, date string) (Puzzle, error) {
	endpoint, err := c.url(date)
	if err != nil {
		return Puzzle{}, fmt.Errorf("%w: url.JoinPath > %w", ErrFetch, err)
	}

	res, err := c.fetcher.Get(ctx, endpoint)
	if err != nil {
		return Puzzle{}, fmt.Errorf("%w: fetcher.Get > %w", ErrFetch, err)
	}
	if !res.IsSuccess() {
		return Puzzle{}, fmt.Errorf("%w: status code: %d, body: %s", ErrFetch, res.StatusCode, string(res.Body))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(res.Body, &fields); err != nil {
		return Puzzle{}, fmt.Errorf("%w: json.Unmarshal > %w", ErrFetch, err)
	}
	if fields == nil {
		return Puzzle{}, fmt.Errorf("%w: response is not a JSON object: %s", ErrFetch, string(res.Body))
	}

	rawSolution, ok := fields["solution"]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w for %s", ErrMissingSolution, date)
	}
	var solution string
	if err := json.Unmarshal(rawSolution, &solution); err != nil {
		return Puzzle{}, fmt.Errorf("%w for %s: solution is %s", ErrMissingSolution, date, string(rawSolution))
	}
	if solution == "" {
		return Puzzle{}, fmt.Errorf("%w for %s: solution is empty", ErrMissingSolution, date)
	}

	var meta metadata
	if err := json.Unmarshal(res.Body, &meta); err != nil {
		slog.Default().Debug("unexpected puzzle metadata", "date", date, "error", err)
	} else {
		slog.Default().Debug("fetched puzzle",
			"date", date,
			"id", meta.ID,
			"printDate", meta.PrintDate,
			"daysSinceLaunch", meta.DaysSinceLaunch,
			"editor", meta.Editor,
		)
	}

	return Puzzle{
		Solution: solution,
		Date:     date,
		Raw:      json.RawMessage(res.Body),
	}, nil
}
