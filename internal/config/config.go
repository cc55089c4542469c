package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dvnrrs/hexcell/internal/bytecell"
	"github.com/dvnrrs/hexcell/internal/input/key"
	"github.com/dvnrrs/hexcell/internal/renderer/core"
)

// Limits on bytes_per_line.
const (
	MinBytesPerLine = 1
	MaxBytesPerLine = 64
)

// Format is a configuration file syntax.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Config holds every setting a file can carry.
type Config struct {
	Colors map[string]string   `toml:"colors" yaml:"colors"`
	Keys   map[string][]string `toml:"keys" yaml:"keys"`
	Editor Editor              `toml:"editor" yaml:"editor"`
	Log    Log                 `toml:"log" yaml:"log"`
}

// Editor holds behavior settings.
type Editor struct {
	AutoHighlight bool `toml:"auto_highlight" yaml:"auto_highlight"`
	ReadOnly      bool `toml:"read_only" yaml:"read_only"`
	BytesPerLine  int  `toml:"bytes_per_line" yaml:"bytes_per_line"`
	BoldSelection bool `toml:"bold_selection" yaml:"bold_selection"`
}

// Log holds logging settings.
type Log struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Editor: Editor{
			AutoHighlight: true,
			BytesPerLine:  16,
			BoldSelection: true,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads and validates a configuration file. Settings the file omits
// keep their defaults.
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := parse(path, data, format)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes configuration data over the defaults and validates it.
func Parse(data []byte, format Format) (*Config, error) {
	cfg, err := parse("<data>", data, format)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parse(source string, data []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, cfg); err != nil {
			pe := &ParseError{Path: source, Message: err.Error(), Err: err}
			var decErr *toml.DecodeError
			if errors.As(err, &decErr) {
				pe.Line, pe.Column = decErr.Position()
			}
			return nil, pe
		}

	case FormatYAML:
		if len(bytes.TrimSpace(data)) == 0 {
			return cfg, nil
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
		}

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	return cfg, nil
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	for name, value := range c.Colors {
		if _, err := bytecell.ParseRole(name); err != nil {
			return &ValueError{Section: "colors", Key: name, Value: value, Err: err}
		}
		if _, err := core.ColorFromHex(value); err != nil {
			return &ValueError{Section: "colors", Key: name, Value: value, Err: fmt.Errorf("%w: %v", ErrInvalidValue, err)}
		}
	}

	var km bytecell.Keymap
	for name, chords := range c.Keys {
		if err := bindKeys(&km, name, chords); err != nil {
			return err
		}
	}

	if n := c.Editor.BytesPerLine; n < MinBytesPerLine || n > MaxBytesPerLine {
		return &ValueError{
			Section: "editor",
			Key:     "bytes_per_line",
			Value:   n,
			Err:     fmt.Errorf("%w: must be between %d and %d", ErrInvalidValue, MinBytesPerLine, MaxBytesPerLine),
		}
	}

	if c.Log.Level != "" {
		switch strings.ToLower(c.Log.Level) {
		case "debug", "info", "warn", "warning", "error":
		default:
			return &ValueError{Section: "log", Key: "level", Value: c.Log.Level, Err: ErrInvalidValue}
		}
	}
	return nil
}

func bindKeys(km *bytecell.Keymap, name string, chords []string) error {
	intent, err := bytecell.ParseIntent(name)
	if err != nil {
		return &ValueError{Section: "keys", Key: name, Value: chords, Err: err}
	}

	events := make([]key.Event, 0, len(chords))
	for _, chord := range chords {
		ev, err := key.Parse(chord)
		if err != nil {
			return &ValueError{Section: "keys", Key: name, Value: chord, Err: err}
		}
		events = append(events, ev)
	}

	if !km.Bind(intent, events...) {
		return &ValueError{
			Section: "keys",
			Key:     name,
			Value:   chords,
			Err:     fmt.Errorf("%w: %s cannot be rebound", ErrInvalidValue, intent),
		}
	}
	return nil
}

// Options converts the settings into cell options.
func (c *Config) Options() (bytecell.Options, error) {
	opts := bytecell.DefaultOptions()

	for name, value := range c.Colors {
		role, err := bytecell.ParseRole(name)
		if err != nil {
			return opts, &ValueError{Section: "colors", Key: name, Value: value, Err: err}
		}
		color, err := core.ColorFromHex(value)
		if err != nil {
			return opts, &ValueError{Section: "colors", Key: name, Value: value, Err: fmt.Errorf("%w: %v", ErrInvalidValue, err)}
		}
		opts.Palette[role] = color
	}

	for name, chords := range c.Keys {
		if err := bindKeys(&opts.Keys, name, chords); err != nil {
			return opts, err
		}
	}

	opts.AutoHighlight = c.Editor.AutoHighlight
	opts.ReadOnly = c.Editor.ReadOnly
	if !c.Editor.BoldSelection {
		opts.EmphasisWeight = bytecell.WeightNormal
	}
	return opts, nil
}

// envPrefix starts every environment override.
const envPrefix = "HEXCELL_"

// ApplyEnv overrides editor and log settings from environment variables
// such as HEXCELL_READ_ONLY=1 or HEXCELL_BYTES_PER_LINE=8. lookup is
// usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	bools := map[string]*bool{
		"AUTO_HIGHLIGHT": &c.Editor.AutoHighlight,
		"READ_ONLY":      &c.Editor.ReadOnly,
		"BOLD_SELECTION": &c.Editor.BoldSelection,
	}
	for name, dst := range bools {
		val, ok := lookup(envPrefix + name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return &ValueError{Section: "env", Key: envPrefix + name, Value: val, Err: fmt.Errorf("%w: %v", ErrInvalidValue, err)}
		}
		*dst = b
	}

	if val, ok := lookup(envPrefix + "BYTES_PER_LINE"); ok {
		n, err := strconv.Atoi(val)
		if err != nil {
			return &ValueError{Section: "env", Key: envPrefix + "BYTES_PER_LINE", Value: val, Err: fmt.Errorf("%w: %v", ErrInvalidValue, err)}
		}
		c.Editor.BytesPerLine = n
	}
	if val, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		c.Log.Level = val
	}
	if val, ok := lookup(envPrefix + "LOG_FILE"); ok {
		c.Log.File = val
	}

	return c.Validate()
}
