package config

import (
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DefaultPuzzleBaseURL     = "https://www.nytimes.com/svc/wordle/v2"
	DefaultDictionaryBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
)

type Config struct {
	Puzzle     PuzzleConfig     `mapstructure:"puzzle"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	HTTP       HTTPConfig       `mapstructure:"http"`
}

type PuzzleConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,http_url"`
}

type DictionaryConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,http_url"`
	MaxDefinitions int    `mapstructure:"max_definitions" validate:"min=1"`
	MaxSynonyms    int    `mapstructure:"max_synonyms" validate:"min=1"`
}

type HTTPConfig struct {
	UserAgent string `mapstructure:"user_agent"`
	// Zero means no client-side timeout.
	Timeout time.Duration `mapstructure:"timeout" validate:"min=0"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordlewin")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("puzzle.base_url", DefaultPuzzleBaseURL)
	v.SetDefault("dictionary.base_url", DefaultDictionaryBaseURL)
	v.SetDefault("dictionary.max_definitions", 3)
	v.SetDefault("dictionary.max_synonyms", 5)
	v.SetDefault("http.user_agent", "wordlewin")
	v.SetDefault("http.timeout", time.Duration(0))

	if err := v.BindEnv("puzzle.base_url", "WORDLE_API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDLE_API_BASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("dictionary.base_url", "DICTIONARY_API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind DICTIONARY_API_BASE_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, fmt.Errorf("validator.Struct > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
