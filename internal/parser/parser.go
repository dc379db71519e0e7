// Package parser decodes raw invoice payloads in the supported wire
// formats into model.Input.
package parser

import (
	"bytes"

	"github.com/rezonia/invoice-renderer/internal/model"
)

// Format names
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

// RuleFormat marks content no decoder recognises
const RuleFormat = "format"

// Decoder turns one wire format into an invoice input
type Decoder interface {
	// Decode parses content into an Input. Malformed content and
	// non-numeric amounts are reported as validation errors.
	Decode(content []byte) (*model.Input, error)

	// CanDecode returns true if decoder can handle this content
	CanDecode(content []byte) bool

	// Format returns the format name
	Format() string
}

// Registry holds all registered decoders
type Registry struct {
	decoders []Decoder
}

// NewRegistry creates registry with the JSON and XML decoders
func NewRegistry() *Registry {
	return &Registry{
		decoders: []Decoder{
			NewJSONDecoder(),
			NewXMLDecoder(),
		},
	}
}

// Detect identifies the decoder for content
func (r *Registry) Detect(content []byte) (Decoder, error) {
	for _, d := range r.decoders {
		if d.CanDecode(content) {
			return d, nil
		}
	}
	return nil, model.NewValidationError("invoice", nil, RuleFormat, "unsupported payload format, expected JSON or XML")
}

// Decode parses content using the matching decoder
func (r *Registry) Decode(content []byte) (*model.Input, error) {
	decoder, err := r.Detect(content)
	if err != nil {
		return nil, err
	}
	return decoder.Decode(content)
}

// RegisterDecoder adds a custom decoder to the registry
func (r *Registry) RegisterDecoder(d Decoder) {
	// Add at the beginning so custom decoders take priority
	r.decoders = append([]Decoder{d}, r.decoders...)
}

// GetDecoder returns the decoder for a specific format
func (r *Registry) GetDecoder(format string) Decoder {
	for _, d := range r.decoders {
		if d.Format() == format {
			return d
		}
	}
	return nil
}

// AvailableFormats returns the registered format names
func (r *Registry) AvailableFormats() []string {
	formats := make([]string, 0, len(r.decoders))
	for _, d := range r.decoders {
		formats = append(formats, d.Format())
	}
	return formats
}

// firstByte returns the first non-space byte after an optional UTF-8 BOM
func firstByte(content []byte) byte {
	content = bytes.TrimPrefix(content, utf8BOM)
	content = bytes.TrimSpace(content)
	if len(content) == 0 {
		return 0
	}
	return content[0]
}
