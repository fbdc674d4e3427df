package options

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var ErrUnsupportedFormat = errors.New("options: unsupported file format")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Extensions accepted by Load and Save.
var Extensions = []string{"*.txt", "*.json"}

// Load reads labels from path. A ".json" file holds an array of strings, a
// ".txt" file one label per line.
func Load(path string) (*List, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read options %s: %w", path, err)
	}
	labels, err := decode(path, b)
	if err != nil {
		return nil, fmt.Errorf("decode options %s: %w", path, err)
	}
	return New(labels...), nil
}

// LoadOrDefault loads path, falling back to Defaults when it does not exist.
func LoadOrDefault(path string) (*List, error) {
	l, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(Defaults...), nil
	}
	return l, err
}

// Save writes the list to path in the format implied by its extension.
func (l *List) Save(path string) error {
	b, err := encode(path, l.labels)
	if err != nil {
		return fmt.Errorf("encode options %s: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write options %s: %w", path, err)
	}
	return nil
}

func decode(path string, b []byte) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var labels []string
		if err := json.Unmarshal(b, &labels); err != nil {
			return nil, err
		}
		return labels, nil
	case ".txt":
		var labels []string
		sc := bufio.NewScanner(bytes.NewReader(b))
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				labels = append(labels, line)
			}
		}
		return labels, sc.Err()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func encode(path string, labels []string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if labels == nil {
			labels = []string{}
		}
		return json.MarshalIndent(labels, "", "  ")
	case ".txt":
		var buf bytes.Buffer
		for _, s := range labels {
			buf.WriteString(s)
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
