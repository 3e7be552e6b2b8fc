package writer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mendelk/sofer/internal/document"
)

func TestMarshalShape(t *testing.T) {
	doc := textDoc("ויאמר אלקים יהי אור ויהי אור", "וירא אלקים את האור כי טוב")
	doc.SetHeadings("ליקוטי שיחות", "חלק א", "פרשת בראשית", "תשכה")

	data, err := Marshal(doc, Options{Strategy: StrategyParagraph, Date: "2026-01-15"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out struct {
		BookNameHe   string         `json:"book_name_he"`
		BookNameEn   string         `json:"book_name_en"`
		BookMetadata map[string]any `json:"book_metadata"`
		Chunks       []struct {
			ChunkID       int `json:"chunk_id"`
			ChunkMetadata struct {
				ChunkTitle string `json:"chunk_title"`
			} `json:"chunk_metadata"`
			Text string `json:"text"`
		} `json:"chunks"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}

	if out.BookNameHe != "ליקוטי שיחות - חלק א" {
		t.Errorf("book_name_he = %q", out.BookNameHe)
	}
	if out.BookNameEn != "" {
		t.Errorf("book_name_en = %q, want empty", out.BookNameEn)
	}
	for key, want := range map[string]string{
		"date":       "2026-01-15",
		"book":       "ליקוטי שיחות",
		"section":    "פרשת בראשית",
		"subsection": "תשכה",
	} {
		if got, _ := out.BookMetadata[key].(string); got != want {
			t.Errorf("book_metadata[%q] = %q, want %q", key, got, want)
		}
	}
	if len(out.Chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(out.Chunks))
	}
	if out.Chunks[0].ChunkID != 1 || out.Chunks[1].ChunkID != 2 {
		t.Errorf("chunk ids = %d, %d", out.Chunks[0].ChunkID, out.Chunks[1].ChunkID)
	}
	if out.Chunks[0].ChunkMetadata.ChunkTitle != "פרשת בראשית - תשכה 1" {
		t.Errorf("chunk 1 title = %q", out.Chunks[0].ChunkMetadata.ChunkTitle)
	}
}

func TestMarshalEmptyDocumentHasChunksArray(t *testing.T) {
	doc := document.New()
	doc.SetHeadings("ספר", "", "", "")

	data, err := Marshal(doc, Options{Date: "2026-01-15"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"chunks": []`) {
		t.Errorf("chunks must serialize as an empty array, got:\n%s", data)
	}
}

func TestMarshalCarriesExtraMetadata(t *testing.T) {
	doc := textDoc("ויאמר אלקים יהי אור ויהי אור")
	doc.SetExtra("is_multi_parshah", true)

	data, err := Marshal(doc, Options{Date: "2026-01-15"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	meta, _ := out["book_metadata"].(map[string]any)
	if v, _ := meta["is_multi_parshah"].(bool); !v {
		t.Error("extra metadata not carried into book_metadata")
	}
}

func TestMarshalRejectsUnknownStrategy(t *testing.T) {
	if _, err := Marshal(textDoc("אחד שתים"), Options{Strategy: "sentences"}); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestValidateExport(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name: "valid export",
			payload: `{
				"book_name_he": "ספר",
				"book_name_en": "",
				"book_metadata": {"date": "2026-01-15"},
				"chunks": [{"chunk_id": 1, "chunk_metadata": {"chunk_title": "א"}, "text": "שלום עולם"}]
			}`,
		},
		{
			name: "missing chunk title",
			payload: `{
				"book_name_he": "ספר",
				"book_name_en": "",
				"book_metadata": {"date": "2026-01-15"},
				"chunks": [{"chunk_id": 1, "chunk_metadata": {}, "text": "שלום עולם"}]
			}`,
			wantErr: true,
		},
		{
			name: "bad date format",
			payload: `{
				"book_name_he": "ספר",
				"book_name_en": "",
				"book_metadata": {"date": "15/01/2026"},
				"chunks": []
			}`,
			wantErr: true,
		},
		{
			name: "zero chunk id",
			payload: `{
				"book_name_he": "ספר",
				"book_name_en": "",
				"book_metadata": {"date": "2026-01-15"},
				"chunks": [{"chunk_id": 0, "chunk_metadata": {"chunk_title": "א"}, "text": "שלום עולם"}]
			}`,
			wantErr: true,
		},
		{
			name:    "not json",
			payload: `{`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExport([]byte(tt.payload))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExport() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestJSONWriteCreatesDirectories(t *testing.T) {
	doc := textDoc("ויאמר אלקים יהי אור ויהי אור")
	doc.SetHeadings("ספר", "", "בראשית", "")

	path := filepath.Join(t.TempDir(), "out", "nested", "bereishis.json")
	w := &JSON{}
	if err := w.Write(doc, path, Options{Date: "2026-01-15"}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if err := ValidateExport(data); err != nil {
		t.Errorf("written file does not validate: %v", err)
	}
}

func TestRegistryNames(t *testing.T) {
	reg := NewDefaultRegistry()
	if _, err := reg.Get("json"); err != nil {
		t.Errorf("Get(json): %v", err)
	}
	if _, err := reg.Get("docx"); err != nil {
		t.Errorf("Get(docx): %v", err)
	}
	if _, err := reg.Get("pdf"); err == nil {
		t.Error("expected error for unregistered format")
	}
}
