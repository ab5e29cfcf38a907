package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/wordlewin/internal/puzzle"
)

//go:generate mockgen -source=word_of_the_day.go -destination=../mocks/cli/mock_word_of_the_day.go -package=mock_cli

type PuzzleFetcher interface {
	Fetch(ctx context.Context, date string) (puzzle.Puzzle, error)
}

type DefinitionFetcher interface {
	Lookup(ctx context.Context, word string) (string, bool)
}

type Options struct {
	Date string
	// Full prints the raw puzzle response after the summary.
	Full bool
	// Definition enables the dictionary lookup.
	Definition bool
}

// WordOfTheDay prints the puzzle answer for a date and, when available, its definition.
type WordOfTheDay struct {
	puzzles     PuzzleFetcher
	definitions DefinitionFetcher
	presenter   *Presenter
}

func NewWordOfTheDay(puzzles PuzzleFetcher, definitions DefinitionFetcher, presenter *Presenter) *WordOfTheDay {
	return &WordOfTheDay{
		puzzles:     puzzles,
		definitions: definitions,
		presenter:   presenter,
	}
}

func (w *WordOfTheDay) Run(ctx context.Context, opts Options) error {
	p, err := w.puzzles.Fetch(ctx, opts.Date)
	if err != nil {
		return fmt.Errorf("puzzles.Fetch > %w", err)
	}

	if err := w.presenter.PrintHeader(p.Date, p.Solution); err != nil {
		return fmt.Errorf("presenter.PrintHeader > %w", err)
	}

	if opts.Definition {
		if definition, ok := w.definitions.Lookup(ctx, p.Solution); ok {
			if err := w.presenter.PrintDefinition(definition); err != nil {
				return fmt.Errorf("presenter.PrintDefinition > %w", err)
			}
		}
	} else {
		slog.Default().Debug("dictionary lookup disabled", "word", p.Solution)
	}

	if opts.Full {
		if err := w.presenter.PrintFullResponse(p.Raw); err != nil {
			return fmt.Errorf("presenter.PrintFullResponse > %w", err)
		}
	}
	return nil
}
