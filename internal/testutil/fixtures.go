package testutil

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-renderer/internal/model"
)

// SampleLogo is a 1x1 transparent PNG
const SampleLogo = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

// SampleInput returns a complete invoice payload.
//
// Items: 2 x 100.00 + 3 x 15.50 = 246.50
// Discount 10% = 24.65, tax 5% = 12.33 (12.325), shipping 15.00
// Total = 249.18
func SampleInput() *model.Input {
	return &model.Input{
		Sender: model.Party{
			Name:    "Asha Designs",
			Address: "12 MG Road",
			City:    "Bengaluru",
			ZipCode: "560001",
			Country: "India",
			Email:   "billing@ashadesigns.example",
			Phone:   "+91 80 1234 5678",
		},
		Receiver: model.Party{
			Name:    "Greenfield Logistics",
			Address: "400 Harbour Street",
			City:    "Mumbai",
			ZipCode: "400001",
			Country: "India",
		},
		Details: model.InvoiceDetails{
			InvoiceNumber: "INV-2025-002",
			InvoiceDate:   model.NewDate(2025, time.August, 5),
			DueDate:       model.NewDate(2025, time.August, 20),
			Currency:      "USD",
			InvoiceLogo:   SampleLogo,
			Items: []model.LineItem{
				{
					Name:        "Website design",
					Description: "Landing page and two inner pages",
					Quantity:    decimal.NewFromInt(2),
					UnitPrice:   decimal.NewFromInt(100),
				},
				{
					Name:      "Hosting",
					Quantity:  decimal.NewFromInt(3),
					UnitPrice: decimal.RequireFromString("15.50"),
				},
			},
			DiscountDetails: &model.AdjustmentSpec{Amount: decimal.NewFromInt(10), AmountType: model.AmountTypePercentage},
			TaxDetails:      &model.AdjustmentSpec{Amount: decimal.NewFromInt(5), AmountType: model.AmountTypePercentage},
			ShippingDetails: &model.AdjustmentSpec{Amount: decimal.NewFromInt(15), AmountType: model.AmountTypeAmount},
			AdditionalNotes: "Thank you for your business.",
			PaymentTerms:    "Net 15",
			PaymentInformation: &model.PaymentInformation{
				BankName:      "State Bank",
				AccountName:   "Asha Designs",
				AccountNumber: "00112233",
				IFSC:          "SBIN0000001",
			},
			Signature: &model.Signature{Data: "Asha Rao", FontFamily: "Great Vibes"},
		},
	}
}

// SampleJSON returns SampleInput encoded as JSON
func SampleJSON() []byte {
	data, err := json.Marshal(SampleInput())
	if err != nil {
		panic(err)
	}
	return data
}

// MinimalInput returns a valid payload with no items and no optional fields
func MinimalInput() *model.Input {
	return &model.Input{
		Sender:   model.Party{Name: "Studio Nine", Address: "1 Main St", City: "Pune", ZipCode: "411001", Country: "India"},
		Receiver: model.Party{Name: "BlueBay Cafe", Address: "9 Beach Rd", City: "Goa", ZipCode: "403001", Country: "India"},
		Details: model.InvoiceDetails{
			InvoiceNumber: "INV-2025-004",
			Currency:      "USD",
		},
	}
}
