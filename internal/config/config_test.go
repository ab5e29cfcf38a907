package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Puzzle: PuzzleConfig{
			BaseURL: DefaultPuzzleBaseURL,
		},
		Dictionary: DictionaryConfig{
			BaseURL:        DefaultDictionaryBaseURL,
			MaxDefinitions: 3,
			MaxSynonyms:    5,
		},
		HTTP: HTTPConfig{
			UserAgent: "wordlewin",
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		wantErr           bool
		want              *Config
		wantErrorContains []string
	}{
		{
			name:            "no config file uses defaults",
			useExplicitPath: false,
			want:            defaultConfig(),
		},
		{
			name: "valid config file with custom values",
			configContent: `puzzle:
  base_url: http://localhost:8080/wordle
dictionary:
  base_url: http://localhost:8081/entries/en
  max_definitions: 2
  max_synonyms: 4
http:
  user_agent: test-agent
  timeout: 10s
`,
			useExplicitPath: false,
			want: &Config{
				Puzzle: PuzzleConfig{
					BaseURL: "http://localhost:8080/wordle",
				},
				Dictionary: DictionaryConfig{
					BaseURL:        "http://localhost:8081/entries/en",
					MaxDefinitions: 2,
					MaxSynonyms:    4,
				},
				HTTP: HTTPConfig{
					UserAgent: "test-agent",
					Timeout:   10 * time.Second,
				},
			},
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `dictionary:
  max_definitions: 1
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Dictionary.MaxDefinitions = 1
				return cfg
			}(),
		},
		{
			name:            "environment variables override base URLs",
			useExplicitPath: false,
			env: map[string]string{
				"WORDLE_API_BASE_URL":     "https://puzzle.example.com/v2",
				"DICTIONARY_API_BASE_URL": "https://dictionary.example.com/en",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Puzzle.BaseURL = "https://puzzle.example.com/v2"
				cfg.Dictionary.BaseURL = "https://dictionary.example.com/en"
				return cfg
			}(),
		},
		{
			name: "invalid YAML format",
			configContent: `puzzle:
  base_url: http://localhost
  invalid yaml format here [[[
`,
			useExplicitPath: false,
			wantErr:         true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "non http base URL is rejected",
			configContent: `puzzle:
  base_url: ftp://example.com/wordle
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"invalid configuration",
				"base_url must be an http or https URL",
			},
		},
		{
			name: "zero definition limit is rejected",
			configContent: `dictionary:
  max_definitions: 0
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"invalid configuration",
				"max_definitions",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WORDLE_API_BASE_URL", "")
			t.Setenv("DICTIONARY_API_BASE_URL", "")
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "config.yml")
				err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
				require.NoError(t, err)
			} else {
				if tt.configContent != "" {
					err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644)
					require.NoError(t, err)
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigLoader_Load_MissingExplicitFile(t *testing.T) {
	loader, err := NewConfigLoader(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	_, err = loader.Load()
	assert.Error(t, err)
}
