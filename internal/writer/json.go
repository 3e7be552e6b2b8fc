package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/mendelk/sofer/internal/document"
)

// exportSchema is the contract every JSON export must satisfy; the same
// schema backs the validate command.
const exportSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["book_name_he", "book_name_en", "book_metadata", "chunks"],
  "properties": {
    "book_name_he": {"type": "string"},
    "book_name_en": {"type": "string"},
    "book_metadata": {
      "type": "object",
      "required": ["date"],
      "properties": {
        "date": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"}
      }
    },
    "chunks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["chunk_id", "chunk_metadata", "text"],
        "properties": {
          "chunk_id": {"type": "integer", "minimum": 1},
          "chunk_metadata": {
            "type": "object",
            "required": ["chunk_title"],
            "properties": {"chunk_title": {"type": "string"}}
          },
          "text": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

var compiledExportSchema = jsonschema.MustCompileString("export.json", exportSchema)

// ValidateExport checks a serialized export against the embedded schema.
func ValidateExport(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse export JSON: %w", err)
	}
	if err := compiledExportSchema.Validate(doc); err != nil {
		return fmt.Errorf("export does not match schema: %w", err)
	}
	return nil
}

type chunkMetadata struct {
	ChunkTitle string `json:"chunk_title"`
}

type exportChunk struct {
	ChunkID       int           `json:"chunk_id"`
	ChunkMetadata chunkMetadata `json:"chunk_metadata"`
	Text          string        `json:"text"`
}

type export struct {
	BookNameHe   string         `json:"book_name_he"`
	BookNameEn   string         `json:"book_name_en"`
	BookMetadata map[string]any `json:"book_metadata"`
	Chunks       []exportChunk  `json:"chunks"`
}

// JSON writes the chunked export format.
type JSON struct{}

func (*JSON) Name() string      { return "json" }
func (*JSON) Extension() string { return ".json" }

func (*JSON) Write(doc *document.Document, path string, opts Options) error {
	data, err := Marshal(doc, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Marshal builds and serializes the export structure, validating it
// against the embedded schema before returning.
func Marshal(doc *document.Document, opts Options) ([]byte, error) {
	chunks, err := BuildChunks(doc, opts.Strategy, opts.FilterHeaders)
	if err != nil {
		return nil, err
	}

	date := opts.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	metadata := map[string]any{"date": date}
	if doc.Heading1 != "" {
		metadata["book"] = doc.Heading1
	}
	if doc.Heading3 != "" {
		metadata["section"] = doc.Heading3
	}
	if doc.Heading4 != "" && doc.Heading4 != doc.Heading3 {
		metadata["subsection"] = doc.Heading4
	}
	for k, v := range doc.Metadata.Extra {
		metadata[k] = v
	}

	out := export{
		BookNameHe:   bookName(doc),
		BookNameEn:   "",
		BookMetadata: metadata,
		Chunks:       make([]exportChunk, 0, len(chunks)),
	}
	for _, c := range chunks {
		out.Chunks = append(out.Chunks, exportChunk{
			ChunkID:       c.ID,
			ChunkMetadata: chunkMetadata{ChunkTitle: c.Title},
			Text:          c.Text,
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}

	data := buf.Bytes()
	if err := ValidateExport(data); err != nil {
		return nil, err
	}
	return data, nil
}

// bookName joins H1 and H2 into the Hebrew book title.
func bookName(doc *document.Document) string {
	var parts []string
	if doc.Heading1 != "" {
		parts = append(parts, doc.Heading1)
	}
	if doc.Heading2 != "" {
		parts = append(parts, doc.Heading2)
	}
	return strings.Join(parts, " - ")
}
