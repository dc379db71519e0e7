package parser

import (
	"bytes"

	"github.com/rezonia/invoice-renderer/internal/model"
	"github.com/rezonia/invoice-renderer/internal/snapshot"
)

var utf8BOM = []byte("\xEF\xBB\xBF")

// JSONDecoder decodes the native JSON payload
type JSONDecoder struct{}

// NewJSONDecoder creates a new JSON decoder
func NewJSONDecoder() *JSONDecoder {
	return &JSONDecoder{}
}

// Format returns the format name
func (d *JSONDecoder) Format() string {
	return FormatJSON
}

// CanDecode checks if content is a JSON object
func (d *JSONDecoder) CanDecode(content []byte) bool {
	return firstByte(content) == '{'
}

// Decode parses JSON into Input
func (d *JSONDecoder) Decode(content []byte) (*model.Input, error) {
	return snapshot.ParseJSON(bytes.TrimPrefix(content, utf8BOM))
}
