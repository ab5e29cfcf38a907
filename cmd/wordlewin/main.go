package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/at-ishikawa/wordlewin/internal/cli"
	"github.com/at-ishikawa/wordlewin/internal/dictionary"
	"github.com/at-ishikawa/wordlewin/internal/fetch"
	"github.com/at-ishikawa/wordlewin/internal/puzzle"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	rootCommand := newRootCommand(time.Now, os.Stdout)
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand(now cli.Clock, stdout io.Writer) *cobra.Command {
	var (
		configFile string
		debugMode  bool
		noColor    bool
		full       bool
	)
	api := APIFreeDictionaryAPI

	rootCommand := &cobra.Command{
		Use:           "wordlewin [date]",
		Short:         "Fetch the Wordle word of the day",
		Long:          "Fetch the Wordle word of the day for a date in YYYY-MM-DD format (default: today) and show its definition.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			if noColor {
				color.NoColor = true
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := cli.ResolveDate(args, now)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}

			fetcher := fetch.NewRestyFetcher(fetch.Config{
				UserAgent: cfg.HTTP.UserAgent,
				Timeout:   cfg.HTTP.Timeout,
			})
			defer func() {
				_ = fetcher.Close()
			}()

			wordOfTheDay := cli.NewWordOfTheDay(
				puzzle.NewClient(fetcher, cfg.Puzzle.BaseURL),
				dictionary.NewClient(fetcher, cfg.Dictionary.BaseURL, dictionary.Limits{
					MaxDefinitions: cfg.Dictionary.MaxDefinitions,
					MaxSynonyms:    cfg.Dictionary.MaxSynonyms,
				}),
				cli.NewPresenter(stdout),
			)
			return wordOfTheDay.Run(cmd.Context(), cli.Options{
				Date:       date,
				Full:       full,
				Definition: api != APINone,
			})
		},
	}

	persistentFlags := rootCommand.PersistentFlags()
	persistentFlags.StringVar(&configFile, "config", "", "config file path")
	persistentFlags.BoolVar(&debugMode, "debug", false, "Enable debug mode")

	flags := rootCommand.Flags()
	flags.BoolVar(&full, "full", false, "Show the full API response")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flags.Var(&api, "dictionary", fmt.Sprintf("Dictionary API to look up the definition. Possible values are %v", allAPIs))

	return rootCommand
}

// setupLogger configures the default logger based on debug mode.
// Logs go to stderr since stdout carries the answer.
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
