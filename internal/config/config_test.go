package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	s, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(s), nil
}

func env(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func noEnv() LoaderOption {
	return WithEnv(env(nil))
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFile(t *testing.T) {
	l := NewLoader(WithFS(memFS{}), noEnv())
	cfg, err := l.Load("/nope/config.toml")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	fsys := memFS{"/c.toml": `
[editor]
tab_width = 2
auto_indent = false
scroll_off = 5

[undo]
group_interval = "1s"
limit = 50

[clipboard]
enabled = false

[macros]
path = "/tmp/m.yaml"

[comments.python]
prefix = "## "

[comments.html]
prefix = "<!-- "
suffix = " -->"

[languages]
script = "langs.lua"

[log]
level = "debug"
file = "/tmp/modalcore.log"
`}
	cfg, err := NewLoader(WithFS(fsys), noEnv()).Load("/c.toml")
	require.NoError(t, err)

	require.Equal(t, 2, cfg.Editor.TabWidth)
	require.False(t, cfg.Editor.AutoIndent)
	require.Equal(t, 5, cfg.Editor.ScrollOff)
	require.Equal(t, time.Second, cfg.Undo.GroupInterval.Std())
	require.Equal(t, 50, cfg.Undo.Limit)
	require.False(t, cfg.Clipboard.Enabled)
	require.Equal(t, "/tmp/m.yaml", cfg.Macros.Path)
	require.True(t, cfg.Macros.Persist)
	require.Equal(t, CommentConfig{Prefix: "## "}, cfg.Comments["python"])
	require.Equal(t, " -->", cfg.Comments["html"].Suffix)
	require.Equal(t, "langs.lua", cfg.Languages.Script)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "/tmp/modalcore.log", cfg.Log.File)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("[editor]\ntab_width = 8\n"))
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Editor.TabWidth)
	require.True(t, cfg.Editor.AutoIndent)
	require.Equal(t, 1000, cfg.Undo.Limit)
}

func TestUnknownKey(t *testing.T) {
	_, err := Parse([]byte("[editor]\ntabwidth = 8\n"))
	require.ErrorIs(t, err, ErrUnknownKey)
	require.Contains(t, err.Error(), "editor.tabwidth")
}

func TestMalformed(t *testing.T) {
	_, err := Parse([]byte("[editor\n"))
	require.ErrorIs(t, err, ErrParse)
}

func TestBadDuration(t *testing.T) {
	_, err := Parse([]byte("[undo]\ngroup_interval = \"soon\"\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tab width", func(c *Config) { c.Editor.TabWidth = 0 }},
		{"huge tab width", func(c *Config) { c.Editor.TabWidth = 100 }},
		{"negative scroll off", func(c *Config) { c.Editor.ScrollOff = -1 }},
		{"negative interval", func(c *Config) { c.Undo.GroupInterval = Duration(-time.Second) }},
		{"zero limit", func(c *Config) { c.Undo.Limit = 0 }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"blank comment prefix", func(c *Config) { c.Comments["go"] = CommentConfig{Prefix: "  "} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidValue)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	fsys := memFS{"/c.toml": "[editor]\ntab_width = 2\n"}
	l := NewLoader(WithFS(fsys), WithEnv(env(map[string]string{
		"MODALCORE_TAB_WIDTH": "6",
		"MODALCORE_LOG_LEVEL": "WARN",
		"MODALCORE_CLIPBOARD": "false",
	})))

	cfg, err := l.Load("/c.toml")
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Editor.TabWidth)
	require.Equal(t, "warn", cfg.Log.Level)
	require.False(t, cfg.Clipboard.Enabled)
}

func TestEnvInvalid(t *testing.T) {
	l := NewLoader(WithFS(memFS{}), WithEnv(env(map[string]string{"MODALCORE_TAB_WIDTH": "wide"})))
	_, err := l.Load("")
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestEnvNames(t *testing.T) {
	names := EnvNames()
	require.Contains(t, names, "MODALCORE_TAB_WIDTH")
	require.Contains(t, names, "MODALCORE_LOG_LEVEL")
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Editor.TabWidth = 3
	cfg.Comments["lua"] = CommentConfig{Prefix: "-- "}

	data, err := Marshal(cfg)
	require.NoError(t, err)
	got, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestClone(t *testing.T) {
	cfg := Default()
	cfg.Comments["go"] = CommentConfig{Prefix: "// "}
	c := cfg.Clone()
	c.Comments["go"] = CommentConfig{Prefix: "# "}
	require.Equal(t, "// ", cfg.Comments["go"].Prefix)
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[editor]\nscroll_off = 2\n"), 0o644))

	cfg, err := NewLoader(noEnv()).Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Editor.ScrollOff)
}
