// Package config loads report definitions from TOML, YAML or JSON files.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat indicates a definition file extension that is not
// .toml, .yaml, .yml or .json.
var ErrUnsupportedFormat = errors.New("unsupported definition format")

// Format is a definition encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// ParseFormat parses a format name such as "toml" or "yml".
func ParseFormat(name string) (Format, error) {
	return FormatFromPath("." + name)
}

// Load reads and decodes the report definition at path.
func Load(path string) (models.Report, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return models.Report{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Report{}, err
	}
	return Decode(bytes.NewReader(data), format)
}

// Decode decodes a report definition from r.
func Decode(r io.Reader, format Format) (models.Report, error) {
	var report models.Report
	var err error

	switch format {
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&report)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&report)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&report)
	default:
		return report, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return report, fmt.Errorf("decode %s definition: %w", format, err)
	}
	return report, nil
}
