package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Extensions lists the file extensions ReadDocument understands.
var Extensions = []string{".yaml", ".yml", ".json"}

// WriteDocument writes a document as YAML or JSON, chosen by the file extension
func WriteDocument(doc *Document, path string) error {
	var (
		data []byte
		err  error
	)
	switch format(path) {
	case "yaml":
		data, err = yaml.Marshal(doc)
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return os.WriteFile(path, data, 0644)
}

// ReadDocument reads a YAML or JSON document
func ReadDocument(path string) (*Document, error) {
	kind := format(path)
	if kind == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if kind == "json" {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &doc, nil
}

// FixedPath derives the output path for a resolved copy of path:
// "site.yaml" becomes "site.fixed.yaml".
func FixedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".fixed" + ext
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return ""
	}
}
