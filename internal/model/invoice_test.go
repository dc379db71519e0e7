package model_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-renderer/internal/model"
)

func TestAdjustmentSpec_Effective(t *testing.T) {
	tests := []struct {
		name     string
		spec     *model.AdjustmentSpec
		expected bool
	}{
		{"nil", nil, false},
		{"zero", &model.AdjustmentSpec{Amount: decimal.Zero, AmountType: model.AmountTypeAmount}, false},
		{"negative", &model.AdjustmentSpec{Amount: decimal.NewFromInt(-5), AmountType: model.AmountTypeAmount}, false},
		{"positive amount", &model.AdjustmentSpec{Amount: decimal.NewFromInt(5), AmountType: model.AmountTypeAmount}, true},
		{"positive percentage", &model.AdjustmentSpec{Amount: decimal.NewFromInt(5), AmountType: model.AmountTypePercentage}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.spec.Effective())
		})
	}
}

func TestAdjustmentSpec_UnmarshalJSON(t *testing.T) {
	var spec model.AdjustmentSpec
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 10, "amountType": "percentage"}`), &spec))
	assert.True(t, spec.Amount.Equal(decimal.NewFromInt(10)))
	assert.True(t, spec.IsPercentage())

	// Legacy shipping keys
	var shipping model.AdjustmentSpec
	require.NoError(t, json.Unmarshal([]byte(`{"cost": "15.50", "costType": "amount"}`), &shipping))
	assert.True(t, shipping.Amount.Equal(decimal.RequireFromString("15.5")))
	assert.Equal(t, model.AmountTypeAmount, shipping.AmountType)
	assert.False(t, shipping.IsPercentage())

	var bad model.AdjustmentSpec
	require.Error(t, json.Unmarshal([]byte(`{"amount": "ten", "amountType": "amount"}`), &bad))
}

func TestAmountType_Valid(t *testing.T) {
	assert.True(t, model.AmountTypeAmount.Valid())
	assert.True(t, model.AmountTypePercentage.Valid())
	assert.False(t, model.AmountType("fixed").Valid())
	assert.False(t, model.AmountType("").Valid())
}

func TestDate_JSON(t *testing.T) {
	var d model.Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-08-01"`), &d))
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.August, d.Month())
	assert.Equal(t, 1, d.Day())

	require.NoError(t, json.Unmarshal([]byte(`"2025-08-15T10:30:00Z"`), &d))
	assert.Equal(t, 15, d.Day())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	require.Error(t, json.Unmarshal([]byte(`"15/08/2025"`), &d))

	out, err := json.Marshal(model.NewDate(2025, time.September, 1))
	require.NoError(t, err)
	assert.Equal(t, `"2025-09-01"`, string(out))

	out, err = json.Marshal(model.Date{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestInvoiceDetails_Clone(t *testing.T) {
	details := model.InvoiceDetails{
		InvoiceNumber:   "INV-1",
		Items:           []model.LineItem{{Name: "A", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(2)}},
		DiscountDetails: &model.AdjustmentSpec{Amount: decimal.NewFromInt(1), AmountType: model.AmountTypeAmount},
		Signature:       &model.Signature{Data: "Jane"},
	}

	clone := details.Clone()
	clone.Items[0].Name = "changed"
	clone.DiscountDetails.Amount = decimal.NewFromInt(99)
	clone.Signature.Data = "changed"

	assert.Equal(t, "A", details.Items[0].Name)
	assert.True(t, details.DiscountDetails.Amount.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "Jane", details.Signature.Data)
}

func TestPaymentInformation_IsEmpty(t *testing.T) {
	var nilInfo *model.PaymentInformation
	assert.True(t, nilInfo.IsEmpty())
	assert.True(t, (&model.PaymentInformation{}).IsEmpty())
	assert.False(t, (&model.PaymentInformation{IFSC: "HDFC0001"}).IsEmpty())
}

func TestValidationError(t *testing.T) {
	err := model.NewValidationError("items[0].quantity", "-1", "gte", "must not be negative")

	require.Contains(t, err.Error(), "items[0].quantity")
	require.Contains(t, err.Error(), "-1")
	require.Contains(t, err.Error(), "must not be negative")
	assert.True(t, model.IsValidation(err))
}

func TestValidationErrors(t *testing.T) {
	errs := model.ValidationErrors{
		model.NewValidationError("sender.name", nil, "required", "is required"),
		model.NewValidationError("details.currency", nil, "required", "is required"),
	}
	var err error = errs

	require.Contains(t, err.Error(), "sender.name")
	require.Contains(t, err.Error(), "details.currency")

	var ve *model.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "sender.name", ve.Field)

	assert.Len(t, model.ValidationMessages(err), 2)
	assert.Equal(t, []string{"boom"}, model.ValidationMessages(errors.New("boom")))
	assert.Nil(t, model.ValidationMessages(nil))
}

func TestUnknownTemplateError(t *testing.T) {
	err := model.NewUnknownTemplateError("template-9", []string{"template-1", "template-2"})

	require.Contains(t, err.Error(), "template-9")
	require.Contains(t, err.Error(), "template-1, template-2")
	assert.True(t, model.IsUnknownTemplate(err))
	assert.False(t, model.IsValidation(err))
}
