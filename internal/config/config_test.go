package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "azmardig/internal/errors"
)

// chdir moves the test into an empty directory so a developer's config.yaml
// cannot leak into the run.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "artifacts.xlsx", cfg.Paths.ArtifactsFile)
	assert.Equal(t, "locations.tsv", cfg.Paths.LocationsFile)
	assert.Equal(t, "journal.txt", cfg.Paths.JournalFile)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AZMAR_PATHS_JOURNAL_FILE", "field-journal.txt")
	t.Setenv("AZMAR_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "field-journal.txt", cfg.Paths.JournalFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "artifacts.xlsx", cfg.Paths.ArtifactsFile)
}

func TestLoadYamlOverlay(t *testing.T) {
	dir := t.TempDir()
	yml := `paths:
  artifacts_file: digsite/artifacts.xlsx
logging:
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yml), 0644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "digsite/artifacts.xlsx", cfg.Paths.ArtifactsFile)
	assert.Equal(t, "json", cfg.Logging.Format)
	// Values absent from the file keep their defaults.
	assert.Equal(t, "locations.tsv", cfg.Paths.LocationsFile)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AZMAR_LOGGING_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConfig), "want CONFIG, got %v", err)
}

func TestLoadRejectsBrokenYaml(t *testing.T) {
	dir := t.TempDir()
	// An unterminated flow sequence is a hard parse error to yaml.v2.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("paths: ["), 0644))
	chdir(t, dir)

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConfig), "want CONFIG, got %v", err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "artifacts.xlsx", cfg.Paths.ArtifactsFile)
	assert.Equal(t, "stdout", cfg.Logging.Output)
}
