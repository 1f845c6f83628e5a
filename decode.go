package fileinput

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a configuration file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for configuration files of unsupported syntax.
var ErrUnknownFormat = errors.New("unknown configuration format")

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// DecodeOverrides reads widget overrides. Keys that do not name an option
// are rejected; an empty document yields empty overrides.
func DecodeOverrides(r io.Reader, format Format) (Overrides, error) {
	var o Overrides
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&o); err != nil {
			return Overrides{}, fmt.Errorf("decode toml overrides: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
			return Overrides{}, fmt.Errorf("decode yaml overrides: %w", err)
		}
	default:
		return Overrides{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return o, nil
}

// EncodeOverrides writes the fields set in ov. Hooks are never written.
func EncodeOverrides(w io.Writer, format Format, ov Overrides) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(ov); err != nil {
			return fmt.Errorf("encode toml overrides: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ov); err != nil {
			return fmt.Errorf("encode yaml overrides: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml overrides: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}

// LoadOverrides reads widget overrides from a .toml, .yaml or .yml file.
func LoadOverrides(path string) (Overrides, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Overrides{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("open overrides: %w", err)
	}
	defer f.Close()
	return DecodeOverrides(f, format)
}
