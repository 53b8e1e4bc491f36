package sink

import (
	"bytes"
	"encoding/json"

	"github.com/agilomatrix/racklabel/pkg/render"
)

// RenderJSON serializes the document description as indented JSON.
func RenderJSON(doc *render.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseJSON decodes a document previously serialized with RenderJSON.
func ParseJSON(data []byte) (*render.Document, error) {
	var doc render.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
