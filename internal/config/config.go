package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Config is the full set of modalcore settings.
type Config struct {
	Editor    EditorConfig             `toml:"editor"`
	Undo      UndoConfig               `toml:"undo"`
	Clipboard ClipboardConfig          `toml:"clipboard"`
	Macros    MacroConfig              `toml:"macros"`
	Comments  map[string]CommentConfig `toml:"comments"`
	Languages LanguageConfig           `toml:"languages"`
	Log       LogConfig                `toml:"log"`
}

// EditorConfig holds editing behavior.
type EditorConfig struct {
	TabWidth   int  `toml:"tab_width"`
	AutoIndent bool `toml:"auto_indent"`
	// ScrollOff is the number of lines kept visible above and below the
	// cursor.
	ScrollOff int `toml:"scroll_off"`
}

// UndoConfig holds undo history settings.
type UndoConfig struct {
	GroupInterval Duration `toml:"group_interval"`
	Limit         int      `toml:"limit"`
}

// ClipboardConfig controls the + and * registers.
type ClipboardConfig struct {
	Enabled bool `toml:"enabled"`
}

// MacroConfig controls macro persistence. An empty path disables it.
type MacroConfig struct {
	Path    string `toml:"path"`
	Persist bool   `toml:"persist"`
}

// CommentConfig overrides the comment affixes of one language.
type CommentConfig struct {
	Prefix string `toml:"prefix"`
	Suffix string `toml:"suffix"`
}

// LanguageConfig points at a Lua script defining extra languages.
type LanguageConfig struct {
	Script string `toml:"script"`
}

// LogConfig controls the log output.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Duration is a time.Duration written as a string such as "300ms".
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Limits for Validate.
const (
	MaxTabWidth  = 16
	MaxScrollOff = 999
)

// LogLevels lists the accepted log level names.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:   4,
			AutoIndent: true,
		},
		Undo: UndoConfig{
			GroupInterval: Duration(300 * time.Millisecond),
			Limit:         1000,
		},
		Clipboard: ClipboardConfig{Enabled: true},
		Macros:    MacroConfig{Persist: true},
		Comments:  map[string]CommentConfig{},
		Log:       LogConfig{Level: "info"},
	}
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > MaxTabWidth {
		return fmt.Errorf("%w: editor.tab_width %d not in 1..%d", ErrInvalidValue, c.Editor.TabWidth, MaxTabWidth)
	}
	if c.Editor.ScrollOff < 0 || c.Editor.ScrollOff > MaxScrollOff {
		return fmt.Errorf("%w: editor.scroll_off %d", ErrInvalidValue, c.Editor.ScrollOff)
	}
	if c.Undo.GroupInterval < 0 {
		return fmt.Errorf("%w: undo.group_interval is negative", ErrInvalidValue)
	}
	if c.Undo.Limit < 1 {
		return fmt.Errorf("%w: undo.limit must be positive", ErrInvalidValue)
	}
	if !slices.Contains(LogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log.level %q", ErrInvalidValue, c.Log.Level)
	}
	for name, cc := range c.Comments {
		if strings.TrimSpace(cc.Prefix) == "" {
			return fmt.Errorf("%w: comments.%s.prefix is empty", ErrInvalidValue, name)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Comments = make(map[string]CommentConfig, len(c.Comments))
	for k, v := range c.Comments {
		out.Comments[k] = v
	}
	return &out
}
