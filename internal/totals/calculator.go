// Package totals derives invoice figures from line items and adjustments.
//
// Every figure is computed against the subtotal: a percentage discount,
// tax or shipping charge never sees the result of another adjustment.
// The package is pure; it performs no I/O and reads no clock.
package totals

import (
	"fmt"

	"github.com/shopspring/decimal"

	money "github.com/rezonia/invoice-renderer/internal/decimal"
	"github.com/rezonia/invoice-renderer/internal/model"
)

// Result holds the derived totals
type Result struct {
	// Items are copies of the input items with Total recomputed
	Items          []model.LineItem
	SubTotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	ShippingAmount decimal.Decimal
	TotalAmount    decimal.Decimal
}

// Compute normalizes items and derives subtotal, adjustment amounts and the
// grand total at the given currency precision.
func Compute(items []model.LineItem, discount, tax, shipping *model.AdjustmentSpec, precision int) (*Result, error) {
	if precision < 0 {
		return nil, model.NewValidationError("precision", precision, "gte", "must not be negative")
	}

	normalized := make([]model.LineItem, len(items))
	raw := make([]decimal.Decimal, len(items))
	for i, item := range items {
		if item.Quantity.IsNegative() {
			return nil, model.NewValidationError(fmt.Sprintf("items[%d].quantity", i), item.Quantity.String(), "gte", "must not be negative")
		}
		if item.UnitPrice.IsNegative() {
			return nil, model.NewValidationError(fmt.Sprintf("items[%d].unitPrice", i), item.UnitPrice.String(), "gte", "must not be negative")
		}

		raw[i] = money.LineTotal(item.Quantity, item.UnitPrice)
		normalized[i] = item
		normalized[i].Total = money.Round(raw[i], precision)
	}

	// Rounded once over the unrounded line totals
	subTotal := money.Round(money.Sum(raw), precision)

	discountAmount, err := resolve("discountDetails", discount, subTotal, precision)
	if err != nil {
		return nil, err
	}
	taxAmount, err := resolve("taxDetails", tax, subTotal, precision)
	if err != nil {
		return nil, err
	}
	shippingAmount, err := resolve("shippingDetails", shipping, subTotal, precision)
	if err != nil {
		return nil, err
	}

	total := subTotal.Sub(discountAmount).Add(taxAmount).Add(shippingAmount)

	return &Result{
		Items:          normalized,
		SubTotal:       subTotal,
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		ShippingAmount: shippingAmount,
		TotalAmount:    money.FloorZero(money.Round(total, precision)),
	}, nil
}

// Resolve returns the amount an adjustment contributes against subTotal.
// Ineffective adjustments contribute zero.
func Resolve(adj *model.AdjustmentSpec, subTotal decimal.Decimal, precision int) (decimal.Decimal, error) {
	return resolve("adjustment", adj, subTotal, precision)
}

func resolve(field string, adj *model.AdjustmentSpec, subTotal decimal.Decimal, precision int) (decimal.Decimal, error) {
	if !adj.Effective() {
		return money.Zero, nil
	}

	switch adj.AmountType {
	case model.AmountTypeAmount:
		return money.Round(adj.Amount, precision), nil
	case model.AmountTypePercentage:
		return money.Percentage(subTotal, adj.Amount, precision), nil
	default:
		return money.Zero, model.NewValidationError(field+".amountType", string(adj.AmountType), "oneof",
			fmt.Sprintf("must be %q or %q", model.AmountTypeAmount, model.AmountTypePercentage))
	}
}
