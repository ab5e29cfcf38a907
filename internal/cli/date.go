package cli

import (
	"errors"
	"fmt"
	"time"
)

const DateLayout = time.DateOnly

var ErrInvalidDate = errors.New("invalid date")

// Clock returns the current time. Tests inject a fixed one.
type Clock func() time.Time

// ResolveDate returns the date argument when given, otherwise today's date in
// the clock's location.
func ResolveDate(args []string, now Clock) (string, error) {
	if len(args) == 0 {
		return now().Format(DateLayout), nil
	}

	date := args[0]
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", fmt.Errorf("%w %q, expected YYYY-MM-DD: %w", ErrInvalidDate, date, err)
	}
	return date, nil
}
