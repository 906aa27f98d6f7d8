package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfigFile(t, `{"port": 9090, "language": "eng", "ocr": true}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "eng", cfg.Language)
	assert.True(t, cfg.OCR)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, "{broken")

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_PortRange(t *testing.T) {
	assert.NoError(t, (&Config{Port: 0}).Validate())
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.NoError(t, (&Config{Port: 65535}).Validate())
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
}

func TestMergeWithDefaults_FillsUnsetFields(t *testing.T) {
	cfg := Config{Language: "deu"}

	merged := cfg.MergeWithDefaults(Config{Port: 8080, Language: "eng"})

	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "deu", merged.Language)
}

func TestMergeWithDefaults_ExplicitValuesWin(t *testing.T) {
	cfg := Config{Port: 9090}

	merged := cfg.MergeWithDefaults(Config{Port: 8080, Language: "eng"})

	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "eng", merged.Language)
}

func TestMergeWithDefaults_BoolsNotMerged(t *testing.T) {
	cfg := Config{}

	merged := cfg.MergeWithDefaults(Config{OCR: true, Verbose: true})

	assert.False(t, merged.OCR)
	assert.False(t, merged.Verbose)
}
