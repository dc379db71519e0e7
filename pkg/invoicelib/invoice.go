// Package invoicelib provides a public API for computing invoice totals and
// rendering invoices with interchangeable layouts.
//
// Example usage:
//
//	r := invoicelib.NewDefaultRenderer()
//	snap, err := r.ComputeJSON(payload)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := r.Render(invoicelib.TemplateReceipto, snap)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	page, _ := doc.HTML()
package invoicelib

import (
	"github.com/rezonia/invoice-renderer/internal/model"
	"github.com/rezonia/invoice-renderer/internal/render"
)

// Re-export core types for public API
type (
	Input              = model.Input
	Snapshot           = model.Snapshot
	InvoiceDetails     = model.InvoiceDetails
	Party              = model.Party
	LineItem           = model.LineItem
	AdjustmentSpec     = model.AdjustmentSpec
	AmountType         = model.AmountType
	PaymentInformation = model.PaymentInformation
	Signature          = model.Signature
	Date               = model.Date
)

// Re-export amount types
const (
	AmountTypeAmount     = model.AmountTypeAmount
	AmountTypePercentage = model.AmountTypePercentage
)

// Re-export rendering types
type (
	TemplateID = render.TemplateID
	Document   = render.Document
	Node       = render.Node
)

// Re-export template identifiers
const (
	TemplateClassic  = render.TemplateClassic
	TemplateModern   = render.TemplateModern
	TemplateReceipto = render.TemplateReceipto
)

// Re-export error types
type (
	ValidationError      = model.ValidationError
	ValidationErrors     = model.ValidationErrors
	UnknownTemplateError = model.UnknownTemplateError
)

// NewDate builds a calendar date
var NewDate = model.NewDate

// Error helpers
var (
	IsValidation      = model.IsValidation
	IsUnknownTemplate = model.IsUnknownTemplate
)
