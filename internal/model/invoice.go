package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AmountType says how an adjustment amount is interpreted
type AmountType string

const (
	AmountTypeAmount     AmountType = "amount"
	AmountTypePercentage AmountType = "percentage"
)

// Valid reports whether t is one of the known amount types
func (t AmountType) Valid() bool {
	return t == AmountTypeAmount || t == AmountTypePercentage
}

// Party is the sender or receiver of an invoice
type Party struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
}

// LineItem represents a single invoice line
type LineItem struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// AdjustmentSpec is a discount, tax or shipping modifier
type AdjustmentSpec struct {
	Amount     decimal.Decimal `json:"amount"`
	AmountType AmountType      `json:"amountType"`
}

// Effective reports whether the adjustment contributes to totals and is
// displayed. A nil spec or one with amount <= 0 is treated as absent.
func (a *AdjustmentSpec) Effective() bool {
	return a != nil && a.Amount.GreaterThan(decimal.Zero)
}

// IsPercentage reports whether the amount is a percentage of the subtotal
func (a *AdjustmentSpec) IsPercentage() bool {
	return a != nil && a.AmountType == AmountTypePercentage
}

// UnmarshalJSON accepts both amount/amountType and the cost/costType keys
// used by older shipping payloads.
func (a *AdjustmentSpec) UnmarshalJSON(data []byte) error {
	var raw struct {
		Amount     *decimal.Decimal `json:"amount"`
		AmountType AmountType       `json:"amountType"`
		Cost       *decimal.Decimal `json:"cost"`
		CostType   AmountType       `json:"costType"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Amount != nil:
		a.Amount = *raw.Amount
	case raw.Cost != nil:
		a.Amount = *raw.Cost
	default:
		a.Amount = decimal.Zero
	}

	a.AmountType = raw.AmountType
	if a.AmountType == "" {
		a.AmountType = raw.CostType
	}
	return nil
}

// PaymentInformation holds bank transfer details
type PaymentInformation struct {
	BankName      string `json:"bankName,omitempty"`
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
}

// IsEmpty returns true if no payment field is set
func (p *PaymentInformation) IsEmpty() bool {
	return p == nil || (p.BankName == "" && p.AccountName == "" && p.AccountNumber == "" && p.IFSC == "")
}

// Signature is either an embedded image (data URL) or free text
type Signature struct {
	Data       string `json:"data"`
	FontFamily string `json:"fontFamily,omitempty" validate:"omitempty,excludesall=;:{}()<>\"\\"`
}

// Date is a calendar date. It accepts YYYY-MM-DD or RFC 3339 on input and
// is stored as given.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date at midnight UTC
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses YYYY-MM-DD or RFC 3339
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q", s)
	}
	return Date{Time: t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// InvoiceDetails carries invoice metadata, items, adjustments and the
// figures derived from them. SubTotal through TotalAmountInWords are
// outputs of the totals calculator; values supplied on input are ignored.
type InvoiceDetails struct {
	InvoiceNumber string     `json:"invoiceNumber" validate:"required"`
	InvoiceDate   Date       `json:"invoiceDate"`
	DueDate       Date       `json:"dueDate"`
	Currency      string     `json:"currency" validate:"required"`
	InvoiceLogo   string     `json:"invoiceLogo,omitempty"`
	Items         []LineItem `json:"items" validate:"dive"`

	DiscountDetails *AdjustmentSpec `json:"discountDetails,omitempty"`
	TaxDetails      *AdjustmentSpec `json:"taxDetails,omitempty"`
	ShippingDetails *AdjustmentSpec `json:"shippingDetails,omitempty"`

	SubTotal           decimal.Decimal `json:"subTotal"`
	DiscountAmount     decimal.Decimal `json:"discountAmount"`
	TaxAmount          decimal.Decimal `json:"taxAmount"`
	ShippingAmount     decimal.Decimal `json:"shippingAmount"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	TotalAmountInWords string          `json:"totalAmountInWords,omitempty"`

	AdditionalNotes    string              `json:"additionalNotes,omitempty"`
	PaymentTerms       string              `json:"paymentTerms,omitempty"`
	PaymentInformation *PaymentInformation `json:"paymentInformation,omitempty"`
	Signature          *Signature          `json:"signature,omitempty"`
}

// Input is the raw, untrusted invoice payload
type Input struct {
	Sender   Party          `json:"sender"`
	Receiver Party          `json:"receiver"`
	Details  InvoiceDetails `json:"details"`
}

// Snapshot is a fully computed invoice ready for rendering. It is produced
// by snapshot assembly and must not be modified afterwards.
type Snapshot struct {
	Sender   Party          `json:"sender"`
	Receiver Party          `json:"receiver"`
	Details  InvoiceDetails `json:"details"`
	// Precision is the number of fractional digits the totals were rounded to
	Precision int `json:"precision"`
}

// Clone returns a deep copy of d
func (d InvoiceDetails) Clone() InvoiceDetails {
	out := d
	if d.Items != nil {
		out.Items = make([]LineItem, len(d.Items))
		copy(out.Items, d.Items)
	}
	out.DiscountDetails = cloneAdjustment(d.DiscountDetails)
	out.TaxDetails = cloneAdjustment(d.TaxDetails)
	out.ShippingDetails = cloneAdjustment(d.ShippingDetails)
	if d.PaymentInformation != nil {
		p := *d.PaymentInformation
		out.PaymentInformation = &p
	}
	if d.Signature != nil {
		s := *d.Signature
		out.Signature = &s
	}
	return out
}

func cloneAdjustment(a *AdjustmentSpec) *AdjustmentSpec {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
