package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is a reminder dump as exported by the backend.
type ImportSchema struct {
	Reminders []ReminderImport `json:"reminders" yaml:"reminders"`
}

// ReminderImport is one backend reminder record. Days and Method keep the
// backend's raw encoding.
type ReminderImport struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string  `json:"type,omitempty" yaml:"type,omitempty"`
	Schedule    string  `json:"schedule" yaml:"schedule"`
	Repeat      string  `json:"repeat,omitempty" yaml:"repeat,omitempty"`
	Days        RawList `json:"days,omitempty" yaml:"days,omitempty"`
	Method      RawList `json:"method,omitempty" yaml:"method,omitempty"`
	Status      string  `json:"status,omitempty" yaml:"status,omitempty"`
}

// RawList accepts the shapes the backend has been seen to send for days and
// method: a single string, an array of strings, or an array whose elements
// are themselves arrays. Nested arrays are kept as their JSON text so the
// decoder can unpack them later.
type RawList []string

func (l *RawList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = RawList{single}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("raw list must be a string or an array: %w", err)
	}
	out := make(RawList, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		out = append(out, string(bytes.TrimSpace(item)))
	}
	*l = out
	return nil
}

func (l *RawList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = RawList{node.Value}
		return nil
	case yaml.SequenceNode:
		out := make(RawList, 0, len(node.Content))
		for _, child := range node.Content {
			if child.Kind == yaml.ScalarNode {
				out = append(out, child.Value)
				continue
			}
			var nested any
			if err := child.Decode(&nested); err != nil {
				return fmt.Errorf("decoding nested list: %w", err)
			}
			b, err := json.Marshal(nested)
			if err != nil {
				return fmt.Errorf("encoding nested list: %w", err)
			}
			out = append(out, string(b))
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("raw list must be a string or a sequence (line %d)", node.Line)
	}
}

// LoadImportSchema reads a reminder dump. Files ending in .yaml or .yml are
// parsed as YAML, everything else as JSON. Both a {"reminders": [...]}
// object and a bare array are accepted.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return parseJSON(data)
	}
}

func parseJSON(data []byte) (*ImportSchema, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []ReminderImport
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
		return &ImportSchema{Reminders: list}, nil
	}
	var schema ImportSchema
	if err := json.Unmarshal(trimmed, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

func parseYAML(data []byte) (*ImportSchema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	if len(root.Content) == 0 {
		return &ImportSchema{}, nil
	}
	doc := root.Content[0]
	if doc.Kind == yaml.SequenceNode {
		var list []ReminderImport
		if err := doc.Decode(&list); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
		return &ImportSchema{Reminders: list}, nil
	}
	var schema ImportSchema
	if err := doc.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
