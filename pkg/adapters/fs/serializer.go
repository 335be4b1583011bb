package fs

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/neuronex/notekeep/pkg/core"
)

// Serializer defines how the notebook collection is encoded on disk.
// The wire layout is a flat array of records with lastModified carried as an
// RFC 3339 string; decoding rehydrates it into time.Time with an explicit
// failure on malformed input, never a silent zero value.
type Serializer interface {
	// Encode converts the collection to bytes.
	Encode(notebooks []core.Notebook) ([]byte, error)
	// Decode reads bytes back into a collection.
	Decode(data []byte) ([]core.Notebook, error)
}

// ForFormat returns the serializer registered for the given format name.
// An empty format selects JSON.
func ForFormat(format string) (Serializer, error) {
	switch format {
	case "", "json":
		return &JSONSerializer{}, nil
	case "yaml", "yml":
		return &YAMLSerializer{}, nil
	default:
		return nil, fmt.Errorf("unknown store format: %q (must be json or yaml)", format)
	}
}

// record is the persisted shape of a single notebook.
type record struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Content      string   `json:"content" yaml:"content"`
	Tags         []string `json:"tags" yaml:"tags"`
	LastModified string   `json:"lastModified" yaml:"lastModified"`
}

func toRecords(notebooks []core.Notebook) []record {
	records := make([]record, len(notebooks))
	for i, n := range notebooks {
		tags := n.Tags
		if tags == nil {
			tags = []string{}
		}
		records[i] = record{
			ID:           n.ID,
			Title:        n.Title,
			Content:      n.Content,
			Tags:         tags,
			LastModified: n.LastModified.Format(time.RFC3339Nano),
		}
	}
	return records
}

func fromRecords(records []record) ([]core.Notebook, error) {
	notebooks := make([]core.Notebook, len(records))
	for i, rec := range records {
		modified, err := time.Parse(time.RFC3339Nano, rec.LastModified)
		if err != nil {
			return nil, fmt.Errorf("malformed lastModified %q for notebook %s: %w", rec.LastModified, rec.ID, err)
		}
		tags := rec.Tags
		if tags == nil {
			tags = []string{}
		}
		notebooks[i] = core.Notebook{
			ID:           rec.ID,
			Title:        rec.Title,
			Content:      rec.Content,
			Tags:         tags,
			LastModified: modified,
		}
	}
	return notebooks, nil
}

// JSONSerializer stores the collection as an indented JSON array.
type JSONSerializer struct{}

func (s *JSONSerializer) Encode(notebooks []core.Notebook) ([]byte, error) {
	return json.MarshalIndent(toRecords(notebooks), "", "  ")
}

func (s *JSONSerializer) Decode(data []byte) ([]core.Notebook, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return fromRecords(records)
}

// YAMLSerializer stores the collection as a YAML sequence.
type YAMLSerializer struct{}

func (s *YAMLSerializer) Encode(notebooks []core.Notebook) ([]byte, error) {
	return yaml.Marshal(toRecords(notebooks))
}

func (s *YAMLSerializer) Decode(data []byte) ([]core.Notebook, error) {
	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return fromRecords(records)
}
