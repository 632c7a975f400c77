package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("input", "-", "")
	fs.String("encoding", EncodingUTF8, "")
	fs.Bool("exact", false, "")
	fs.Bool("balanced", false, "")
	fs.String("log-level", "info", "")
	fs.String("log-format", LogFormatConsole, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "-", cfg.Input)
	assert.Equal(t, EncodingUTF8, cfg.Encoding)
	assert.False(t, cfg.Search.Exact)
	assert.False(t, cfg.Load.Balanced)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, LogFormatConsole, cfg.Log.Format)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tst.yaml")
	content := `input: words.txt
encoding: Windows-1252
load:
  balanced: true
search:
  exact: true
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "words.txt", cfg.Input)
	assert.Equal(t, EncodingWindows1252, cfg.Encoding)
	assert.True(t, cfg.Search.Exact)
	assert.True(t, cfg.Load.Balanced)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TST_LOG_LEVEL", "warn")
	t.Setenv("TST_SEARCH_EXACT", "true")
	t.Setenv("TST_LOAD_BALANCED", "true")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Search.Exact)
	assert.True(t, cfg.Load.Balanced)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("TST_LOG_LEVEL", "warn")
	t.Setenv("TST_LOAD_BALANCED", "false")

	cfg, err := Load("", testFlags(t, "--log-level=error", "--exact", "--input=list.txt", "--balanced"))
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Search.Exact)
	assert.True(t, cfg.Load.Balanced)
	assert.Equal(t, "list.txt", cfg.Input)
}

func TestLoad_UnchangedFlagsKeepEnv(t *testing.T) {
	t.Setenv("TST_ENCODING", "windows-1252")

	cfg, err := Load("", testFlags(t))
	require.NoError(t, err)

	assert.Equal(t, EncodingWindows1252, cfg.Encoding)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Input:    "-",
		Encoding: EncodingUTF8,
		Log:      LogConfig{Level: "info", Format: LogFormatJSON},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:    "unknown encoding",
			mutate:  func(c *Config) { c.Encoding = "ebcdic" },
			wantErr: ErrUnsupportedEncoding,
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: ErrUnsupportedLogFormat,
		},
		{
			name:   "bad log level",
			mutate: func(c *Config) { c.Log.Level = "loud" },
		},
		{
			name:   "empty input",
			mutate: func(c *Config) { c.Input = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
