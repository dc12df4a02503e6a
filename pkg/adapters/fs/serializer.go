package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/drills/pkg/core"
	"gopkg.in/yaml.v3"
)

// Serializer defines how to read and write the notes document in a specific format.
type Serializer interface {
	// Decode parses a non-empty document into notes.
	Decode(data []byte) ([]core.Note, error)
	// Encode converts notes into the document representation.
	Encode(notes []core.Note) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers keyed by file extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(),
		".yaml": NewYAMLSerializer(),
		".yml":  NewYAMLSerializer(),
	}
}

// document is the on-disk shape: {"notes": [{"title","body","date"}, ...]}.
type document struct {
	Notes []core.Note `json:"notes" yaml:"notes"`
}

// entry mirrors core.Note with pointers so absent keys can be told apart from empty ones.
type entry struct {
	Title *string `json:"title" yaml:"title"`
	Body  *string `json:"body" yaml:"body"`
	Date  *string `json:"date" yaml:"date"`
}

type rawDocument struct {
	Notes *[]entry `json:"notes" yaml:"notes"`
}

func (d rawDocument) notes() ([]core.Note, error) {
	if d.Notes == nil {
		return nil, fmt.Errorf("%w: missing \"notes\" list", core.ErrMalformed)
	}

	notes := make([]core.Note, 0, len(*d.Notes))
	for i, e := range *d.Notes {
		if e.Title == nil {
			return nil, fmt.Errorf("%w: note %d has no title", core.ErrMalformed, i)
		}
		note := core.Note{Title: *e.Title}
		if e.Body != nil {
			note.Body = *e.Body
		}
		if e.Date != nil {
			note.Date = *e.Date
		}
		notes = append(notes, note)
	}
	return notes, nil
}

// --- JSON Serializer ---

// JSONSerializer handles reading and writing JSON documents.
type JSONSerializer struct {
	// Indent pretty-prints the output when set. The default is compact.
	Indent bool
}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Decode(data []byte) ([]core.Note, error) {
	var raw rawDocument
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", core.ErrMalformed, err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after json document", core.ErrMalformed)
	}
	return raw.notes()
}

func (s *JSONSerializer) Encode(notes []core.Note) ([]byte, error) {
	doc := document{Notes: notes}
	if doc.Notes == nil {
		doc.Notes = []core.Note{}
	}
	if s.Indent {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// --- YAML Serializer ---

// YAMLSerializer handles reading and writing YAML documents.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Decode(data []byte) ([]core.Note, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid yaml: %v", core.ErrMalformed, err)
	}
	return raw.notes()
}

func (s *YAMLSerializer) Encode(notes []core.Note) ([]byte, error) {
	doc := document{Notes: notes}
	if doc.Notes == nil {
		doc.Notes = []core.Note{}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
