package server

import (
	"encoding/json"

	"github.com/rezonia/invoice-renderer/internal/model"
	"github.com/rezonia/invoice-renderer/internal/render"
)

// RenderRequest is the body of POST /api/v1/render
type RenderRequest struct {
	Template string          `json:"template,omitempty"`
	Format   string          `json:"format,omitempty"`
	Invoice  json.RawMessage `json:"invoice"`
}

// RenderResponse is the JSON form of a rendered document
type RenderResponse struct {
	Document *render.Document `json:"document"`
	Snapshot *model.Snapshot  `json:"snapshot"`
}

// ValidationResponse is the response for validate endpoint
type ValidationResponse struct {
	Valid     bool     `json:"valid"`
	Errors    []string `json:"errors,omitempty"`
	SubTotal  string   `json:"sub_total,omitempty"`
	Total     string   `json:"total,omitempty"`
	Precision int      `json:"precision"`
}

// TemplateInfo describes one available template
type TemplateInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TemplatesResponse is the response for the templates endpoint
type TemplatesResponse struct {
	Default   string         `json:"default"`
	Templates []TemplateInfo `json:"templates"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error     string   `json:"error"`
	Details   []string `json:"details,omitempty"`
	Available []string `json:"available,omitempty"`
}
