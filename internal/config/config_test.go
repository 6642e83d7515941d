package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("output", "o", "", "")
	flags.Bool("breakdown", false, "")
	flags.BoolP("verbose", "v", false, "")
	flags.Bool("example", false, "")
	return flags
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Empty(t, cfg.Input)
	assert.False(t, cfg.Breakdown)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Example)
	assert.Empty(t, cfg.FileUsed)
}

func TestLoadDefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("output: table\n"), 0o600))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Output)
	assert.Equal(t, DefaultFile, cfg.FileUsed)
}

func TestLoadPrecedence(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeConfig(t, "output: table\nbreakdown: true\ninput: cards.txt\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Output)
	assert.True(t, cfg.Breakdown)
	assert.Equal(t, "cards.txt", cfg.Input)

	t.Setenv("SCRATCHCARDS_OUTPUT", "json")
	cfg, err = Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"-o", "text", "--verbose"}))
	cfg, err = Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output)
	assert.True(t, cfg.Verbose)
	// unchanged flags do not override the file
	assert.True(t, cfg.Breakdown)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}
