package confloc

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// ProseRecognizer adapts the prose NLP library to the Recognizer
// interface.
type ProseRecognizer struct{}

// Entities runs prose NER over the text. prose reports entity text and
// label but not offsets, so each entity is located by a forward scan.
func (ProseRecognizer) Entities(text string) ([]Span, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}

	var spans []Span
	offset := 0
	for _, ent := range doc.Entities() {
		idx := strings.Index(text[offset:], ent.Text)
		if idx < 0 {
			// Tokenization artifacts can rewrite entity text; skip
			// anything we cannot locate verbatim.
			continue
		}
		start := offset + idx
		spans = append(spans, Span{Label: ent.Label, Start: start, End: start + len(ent.Text)})
		offset = start + len(ent.Text)
	}
	return spans, nil
}
