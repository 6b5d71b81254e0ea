package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dronhome/TP-final/meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "naoarms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, "base_url: http://robot.lab:7000\nfps: \"2\"\nseconds: \"30\"\n")

	cfg, err := LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://robot.lab:7000", cfg.BaseURL)
	assert.Equal(t, "2", cfg.Fps)
	assert.Equal(t, "30", cfg.Seconds)
}

func TestLoadFileConfigErrors(t *testing.T) {
	_, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFileConfig(writeConfig(t, "base_url: [broken"))
	assert.Error(t, err)
}

func TestResolveFileFillsDefaultsOnly(t *testing.T) {
	args := NewArgument()
	args.FilePath = writeConfig(t, "base_url: http://robot.lab:7000\nfps: \"2\"\n")

	require.NoError(t, args.Resolve())
	assert.Equal(t, "http://robot.lab:7000", args.BaseURL)
	assert.Equal(t, "2", args.Fps)
	assert.Equal(t, meta.DefaultSeconds, args.Seconds)
}

func TestResolveFlagsWinOverFile(t *testing.T) {
	args := NewArgument()
	args.BaseURL = "http://flag.example:9000" // set via flag
	args.FilePath = writeConfig(t, "base_url: http://robot.lab:7000\n")

	require.NoError(t, args.Resolve())
	assert.Equal(t, "http://flag.example:9000", args.BaseURL)
}

func TestResolveWithoutFileIsNoOp(t *testing.T) {
	args := NewArgument()
	require.NoError(t, args.Resolve())
	assert.Equal(t, meta.DefaultDomain, args.BaseURL)
	assert.Equal(t, meta.DefaultFps, args.Fps)
	assert.Equal(t, meta.DefaultSeconds, args.Seconds)
}
