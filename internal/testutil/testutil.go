// Package testutil provides shared test helpers for creating config files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig writes a config file pointing both APIs at baseURL, which is
// usually an httptest server. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()

	configContent := fmt.Sprintf(`puzzle:
  base_url: %s/svc/wordle/v2
dictionary:
  base_url: %s/api/v2/entries/en
http:
  user_agent: wordlewin-test
  timeout: 5s
`,
		baseURL,
		baseURL,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
