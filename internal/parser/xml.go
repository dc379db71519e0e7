package parser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-renderer/internal/model"
	"github.com/rezonia/invoice-renderer/internal/snapshot"
)

// XML structures. Element names mirror the JSON payload.
type xmlInvoice struct {
	XMLName            xml.Name      `xml:"Invoice"`
	InvoiceNumber      string        `xml:"InvoiceNumber"`
	InvoiceDate        string        `xml:"InvoiceDate"`
	DueDate            string        `xml:"DueDate"`
	Currency           string        `xml:"Currency"`
	InvoiceLogo        string        `xml:"InvoiceLogo"`
	Sender             xmlParty      `xml:"Sender"`
	Receiver           xmlParty      `xml:"Receiver"`
	Items              []xmlItem     `xml:"Items>Item"`
	Discount           *xmlAdjust    `xml:"Discount"`
	Tax                *xmlAdjust    `xml:"Tax"`
	Shipping           *xmlAdjust    `xml:"Shipping"`
	AdditionalNotes    string        `xml:"AdditionalNotes"`
	PaymentTerms       string        `xml:"PaymentTerms"`
	PaymentInformation *xmlPayment   `xml:"PaymentInformation"`
	Signature          *xmlSignature `xml:"Signature"`
}

type xmlParty struct {
	Name    string `xml:"Name"`
	Address string `xml:"Address"`
	City    string `xml:"City"`
	ZipCode string `xml:"ZipCode"`
	Country string `xml:"Country"`
	Email   string `xml:"Email"`
	Phone   string `xml:"Phone"`
}

type xmlItem struct {
	Name        string `xml:"Name"`
	Description string `xml:"Description"`
	Quantity    string `xml:"Quantity"`
	UnitPrice   string `xml:"UnitPrice"`
}

// xmlAdjust is <Tax type="percentage">5</Tax>
type xmlAdjust struct {
	Type   string `xml:"type,attr"`
	Amount string `xml:",chardata"`
}

type xmlPayment struct {
	BankName      string `xml:"BankName"`
	AccountName   string `xml:"AccountName"`
	AccountNumber string `xml:"AccountNumber"`
	IFSC          string `xml:"IFSC"`
}

// xmlSignature is <Signature font="Great Vibes">Asha Rao</Signature>
type xmlSignature struct {
	FontFamily string `xml:"font,attr"`
	Data       string `xml:",chardata"`
}

// XMLDecoder decodes <Invoice> documents
type XMLDecoder struct{}

// NewXMLDecoder creates a new XML decoder
func NewXMLDecoder() *XMLDecoder {
	return &XMLDecoder{}
}

// Format returns the format name
func (d *XMLDecoder) Format() string {
	return FormatXML
}

// CanDecode checks if content is an XML document with an <Invoice> root
func (d *XMLDecoder) CanDecode(content []byte) bool {
	return firstByte(content) == '<' && bytes.Contains(content, []byte("<Invoice"))
}

// Decode parses XML into Input
func (d *XMLDecoder) Decode(content []byte) (*model.Input, error) {
	var inv xmlInvoice
	if err := xml.Unmarshal(content, &inv); err != nil {
		return nil, model.NewValidationError("invoice", nil, snapshot.RuleJSON, fmt.Sprintf("malformed XML: %v", err))
	}
	return d.convertInvoice(&inv)
}

func (d *XMLDecoder) convertInvoice(inv *xmlInvoice) (*model.Input, error) {
	var errs model.ValidationErrors

	result := &model.Input{
		Sender:   convertParty(inv.Sender),
		Receiver: convertParty(inv.Receiver),
		Details: model.InvoiceDetails{
			InvoiceNumber:   strings.TrimSpace(inv.InvoiceNumber),
			Currency:        strings.TrimSpace(inv.Currency),
			InvoiceLogo:     strings.TrimSpace(inv.InvoiceLogo),
			AdditionalNotes: strings.TrimSpace(inv.AdditionalNotes),
			PaymentTerms:    strings.TrimSpace(inv.PaymentTerms),
			Items:           make([]model.LineItem, 0, len(inv.Items)),
		},
	}

	// Parse dates
	var err error
	if result.Details.InvoiceDate, err = model.ParseDate(inv.InvoiceDate); err != nil {
		errs = append(errs, decodeErr("details.invoiceDate", inv.InvoiceDate, err))
	}
	if result.Details.DueDate, err = model.ParseDate(inv.DueDate); err != nil {
		errs = append(errs, decodeErr("details.dueDate", inv.DueDate, err))
	}

	// Convert line items
	for i, item := range inv.Items {
		quantity, err := parseDecimal(item.Quantity)
		if err != nil {
			errs = append(errs, decodeErr(fmt.Sprintf("details.items[%d].quantity", i), item.Quantity, err))
		}
		unitPrice, err := parseDecimal(item.UnitPrice)
		if err != nil {
			errs = append(errs, decodeErr(fmt.Sprintf("details.items[%d].unitPrice", i), item.UnitPrice, err))
		}
		result.Details.Items = append(result.Details.Items, model.LineItem{
			Name:        strings.TrimSpace(item.Name),
			Description: strings.TrimSpace(item.Description),
			Quantity:    quantity,
			UnitPrice:   unitPrice,
		})
	}

	// Convert adjustments
	adjustments := []struct {
		field string
		src   *xmlAdjust
		dst   **model.AdjustmentSpec
	}{
		{"details.discountDetails", inv.Discount, &result.Details.DiscountDetails},
		{"details.taxDetails", inv.Tax, &result.Details.TaxDetails},
		{"details.shippingDetails", inv.Shipping, &result.Details.ShippingDetails},
	}
	for _, a := range adjustments {
		if a.src == nil {
			continue
		}
		amount, err := parseDecimal(a.src.Amount)
		if err != nil {
			errs = append(errs, decodeErr(a.field+".amount", a.src.Amount, err))
			continue
		}
		*a.dst = &model.AdjustmentSpec{
			Amount:     amount,
			AmountType: model.AmountType(strings.ToLower(strings.TrimSpace(a.src.Type))),
		}
	}

	if p := inv.PaymentInformation; p != nil {
		result.Details.PaymentInformation = &model.PaymentInformation{
			BankName:      strings.TrimSpace(p.BankName),
			AccountName:   strings.TrimSpace(p.AccountName),
			AccountNumber: strings.TrimSpace(p.AccountNumber),
			IFSC:          strings.TrimSpace(p.IFSC),
		}
	}

	if s := inv.Signature; s != nil {
		result.Details.Signature = &model.Signature{
			Data:       strings.TrimSpace(s.Data),
			FontFamily: strings.TrimSpace(s.FontFamily),
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return result, nil
}

func convertParty(p xmlParty) model.Party {
	return model.Party{
		Name:    strings.TrimSpace(p.Name),
		Address: strings.TrimSpace(p.Address),
		City:    strings.TrimSpace(p.City),
		ZipCode: strings.TrimSpace(p.ZipCode),
		Country: strings.TrimSpace(p.Country),
		Email:   strings.TrimSpace(p.Email),
		Phone:   strings.TrimSpace(p.Phone),
	}
}

// Helper functions

// parseDecimal treats an empty element as zero
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func decodeErr(field, value string, err error) *model.ValidationError {
	return model.NewValidationError(field, value, snapshot.RuleDecode, err.Error())
}
