package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/mendelk/sofer/internal/document"
	"github.com/mendelk/sofer/internal/hebrew"
)

// Text reads legacy DOS-era plain-text exports, already transcoded to
// UTF-8. Typesetting artifacts (footnote markers, printer control words,
// bare numbers) are stripped up front; only Hebrew-bearing lines survive.
type Text struct{}

func (*Text) Extensions() []string { return []string{".txt"} }

func (*Text) Read(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read text file: %w", err)
	}

	raw := strings.TrimPrefix(string(data), "\ufeff")
	cleaned := hebrew.CleanDOSText(raw)
	if strings.TrimSpace(cleaned) == "" {
		return nil, fmt.Errorf("no Hebrew content in %s", path)
	}

	doc := document.New()
	doc.Metadata.SourceFile = path

	for _, line := range strings.Split(cleaned, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p := doc.AddParagraph(line, document.Normal)
		p.Format.RightToLeft = true
	}
	return doc, nil
}
