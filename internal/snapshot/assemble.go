// Package snapshot turns a raw invoice payload into an immutable, fully
// computed model.Snapshot. No snapshot is returned when any step fails.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rezonia/invoice-renderer/internal/format"
	"github.com/rezonia/invoice-renderer/internal/model"
	"github.com/rezonia/invoice-renderer/internal/totals"
)

// Rules reported by ParseJSON
const (
	RuleJSON   = "json"
	RuleType   = "type"
	RuleDecode = "decode"
)

// RuleLTE marks a computed total above the largest amount Assemble accepts
const RuleLTE = "lte"

// Option configures assembly
type Option func(*config)

type config struct {
	precision *int
}

// WithPrecision overrides the precision derived from the currency code
func WithPrecision(precision int) Option {
	return func(c *config) {
		c.precision = &precision
	}
}

// Assemble validates input, computes totals and returns a new snapshot.
// The input is not modified and shares no memory with the result.
func Assemble(input *model.Input, opts ...Option) (*model.Snapshot, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := Validate(input); err != nil {
		return nil, err
	}

	precision := format.CurrencyPrecision(input.Details.Currency)
	if cfg.precision != nil {
		precision = *cfg.precision
	}

	details := input.Details.Clone()

	result, err := totals.Compute(
		details.Items,
		details.DiscountDetails,
		details.TaxDetails,
		details.ShippingDetails,
		precision,
	)
	if err != nil {
		return nil, err
	}
	if !format.CanSpell(result.TotalAmount) {
		return nil, model.NewValidationError("details.totalAmount", result.TotalAmount.String(), RuleLTE,
			"exceeds the largest amount that can be written in words")
	}

	details.Items = result.Items
	details.SubTotal = result.SubTotal
	details.DiscountAmount = result.DiscountAmount
	details.TaxAmount = result.TaxAmount
	details.ShippingAmount = result.ShippingAmount
	details.TotalAmount = result.TotalAmount
	details.TotalAmountInWords = format.AmountInWords(result.TotalAmount, precision)

	return &model.Snapshot{
		Sender:    input.Sender,
		Receiver:  input.Receiver,
		Details:   details,
		Precision: precision,
	}, nil
}

// ParseJSON decodes a raw invoice payload. Decode failures, including
// non-numeric amounts, are reported as validation errors.
func ParseJSON(data []byte) (*model.Input, error) {
	var input model.Input
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, decodeError(err)
	}
	return &input, nil
}

// FromJSON decodes and assembles a payload in one step
func FromJSON(data []byte, opts ...Option) (*model.Snapshot, error) {
	input, err := ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return Assemble(input, opts...)
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "invoice"
		}
		return model.NewValidationError(field, typeErr.Value, RuleType,
			fmt.Sprintf("expected %s", typeErr.Type.String()))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return model.NewValidationError("invoice", nil, RuleJSON,
			fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset))
	}

	return model.NewValidationError("invoice", nil, RuleDecode, err.Error())
}
