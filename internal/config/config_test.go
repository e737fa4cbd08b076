package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ntree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Uint64("arity", DefaultArity, "")
	flags.Uint64("len", DefaultLength, "")
	flags.Int("indent", DefaultIndent, "")
	flags.String("log-format", DefaultLogFormat, "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(DefaultArity), cfg.Tree.Arity)
	assert.Equal(t, uint64(DefaultLength), cfg.Tree.Length)
	assert.Equal(t, DefaultIndent, cfg.Render.Indent)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

func TestLoadFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".ntree.yaml"), []byte("tree:\n  arity: 5\n"), 0o600))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), cfg.Tree.Arity)
	assert.Equal(t, uint64(DefaultLength), cfg.Tree.Length)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "tree:\n  arity: 3\n  length: 13\nrender:\n  indent: 2\n")

	cfg, err := Load(path, testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), cfg.Tree.Arity, "unset flags do not mask the file")
	assert.Equal(t, uint64(13), cfg.Tree.Length)
	assert.Equal(t, 2, cfg.Render.Indent)

	t.Setenv("NTREE_TREE_LENGTH", "40")
	t.Setenv("NTREE_LOGGING_FORMAT", "json")
	cfg, err = Load(path, testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, uint64(40), cfg.Tree.Length)
	assert.Equal(t, "json", cfg.Logging.Format)

	cfg, err = Load(path, testFlags(t, "--arity=4", "--len=9", "--log-format=text"))
	require.NoError(t, err)
	assert.Equal(t, uint64(4), cfg.Tree.Arity)
	assert.Equal(t, uint64(9), cfg.Tree.Length)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, 2, cfg.Render.Indent)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err, "an explicit config file must exist")

	_, err = Load(writeConfig(t, "tree: [\n"), nil)
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "tree:\n  arity: 0\n"), nil)
	assert.ErrorIs(t, err, ErrInvalidArity)

	_, err = Load(writeConfig(t, "render:\n  indent: 0\n"), nil)
	assert.ErrorIs(t, err, ErrInvalidIndent)

	_, err = Load(writeConfig(t, "logging:\n  format: xml\n"), nil)
	assert.ErrorIs(t, err, ErrInvalidLogFormat)

	_, err = Load(writeConfig(t, "logging:\n  level: loud\n"), nil)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Tree:    TreeConfig{Arity: 2, Length: 0},
		Render:  RenderConfig{Indent: 1},
		Logging: LoggingConfig{Format: "json", Level: "error"},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Tree.Arity = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidArity)
}
