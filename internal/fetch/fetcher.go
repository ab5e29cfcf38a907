// Package fetch issues the plain HTTP GET requests used to talk to the puzzle and dictionary APIs.
package fetch

import (
	"context"
)

// Response is the status and body of a completed GET request.
type Response struct {
	StatusCode int
	Body       []byte
}

// IsSuccess reports whether the status code is 2xx.
func (r Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

//go:generate mockgen -source=fetcher.go -destination=../mocks/fetch/mock_fetcher.go -package=mock_fetch

// Fetcher performs GET requests.
// A non-2xx status is not an error; callers decide what it means.
type Fetcher interface {
	Get(ctx context.Context, url string) (Response, error)
}
