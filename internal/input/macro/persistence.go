package macro

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dshills/modalcore/internal/input/key"
)

// FormatVersion is the current on-disk format.
const FormatVersion = 1

// ErrUnsupportedVersion is returned for files written by a newer format.
var ErrUnsupportedVersion = errors.New("unsupported macro file version")

type fileFormat struct {
	Version    int               `yaml:"version"`
	LastPlayed string            `yaml:"last_played,omitempty"`
	Macros     map[string]string `yaml:"macros"`
}

// Marshal encodes the recorder's registers as YAML.
func Marshal(rec *Recorder) ([]byte, error) {
	registers, last := rec.snapshot()
	f := fileFormat{Version: FormatVersion, Macros: make(map[string]string, len(registers))}
	for name, events := range registers {
		f.Macros[string(name)] = key.FormatSequence(events)
	}
	if last != 0 {
		f.LastPlayed = string(last)
	}
	return yaml.Marshal(&f)
}

// Unmarshal decodes YAML produced by Marshal into rec. With merge set,
// registers not named in data are kept.
func Unmarshal(rec *Recorder, data []byte, merge bool) error {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decode macros: %w", err)
	}
	if f.Version > FormatVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}
	registers := make(map[rune][]key.Event, len(f.Macros))
	for name, seq := range f.Macros {
		r := []rune(name)
		if len(r) != 1 || !IsValidRegister(r[0]) {
			return fmt.Errorf("%w: %q", ErrInvalidRegister, name)
		}
		events, err := key.ParseSequence(seq)
		if err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
		registers[r[0]] = events
	}
	var last rune
	if r := []rune(f.LastPlayed); len(r) == 1 && IsValidRegister(r[0]) {
		last = r[0]
	}
	rec.restore(registers, last, merge)
	return nil
}

// Save writes rec to path, replacing the file atomically.
func Save(rec *Recorder, path string) error {
	data, err := Marshal(rec)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create macro dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".macros-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write macros: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace macro file: %w", err)
	}
	return nil
}

// Load replaces rec's registers with those stored at path. A missing file
// is not an error.
func Load(rec *Recorder, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read macros: %w", err)
	}
	return Unmarshal(rec, data, false)
}

// DefaultPath returns the macro file under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "modalcore", "macros.yaml"), nil
}
