package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

var errUnknownFormat = errors.New("unknown input format")

func detectFormat(format, name string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(name), ".")
		if format == "" || format == "-" {
			return formatJSON, nil
		}
	}
	switch strings.ToLower(format) {
	case formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	case formatTOML:
		return formatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownFormat, format)
}

// decode returns a value the marshaller understands. YAML keeps its node
// tree so mappings stay in document order; JSON numbers stay exact.
func decode(format string, data []byte) (any, error) {
	switch format {
	case formatYAML:
		var n yaml.Node
		if err := yaml.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
		if n.Kind == 0 {
			return nil, nil
		}
		return &n, nil
	case formatTOML:
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return nil, fmt.Errorf("invalid toml: %w", err)
		}
		return tree.ToMap(), nil
	case formatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
		if dec.More() {
			return nil, errors.New("invalid json: trailing data after the document")
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
}
