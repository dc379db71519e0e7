package render

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-renderer/internal/format"
	"github.com/rezonia/invoice-renderer/internal/model"
)

// DefaultSignatureFont is used for text signatures without a font family
const DefaultSignatureFont = "cursive"

// Fixed image bounds
const (
	logoWidth       = 120
	logoHeight      = 48
	signatureWidth  = 140
	signatureHeight = 60
)

// View holds every display string of an invoice. It is built once per
// render call from the snapshot and templates only arrange its values,
// which keeps every layout showing identical figures.
type View struct {
	Title         string
	InvoiceNumber string
	InvoiceDate   string
	DueDate       string
	Currency      string

	Sender   PartyView
	Receiver PartyView
	Logo     *ImageView
	// LogoText is set instead of Logo when the logo payload is plain text
	LogoText string

	Items       []ItemView
	SubTotal    string
	Adjustments []AdjustmentView
	Total       string
	// TotalInWords already carries the currency code
	TotalInWords string

	Notes        string
	PaymentTerms string
	Payment      []LabeledValue
	Signature    *SignatureView
}

// PartyView is a sender or receiver address block
type PartyView struct {
	Name    string
	Address string
	City    string
	ZipCode string
	Country string
	Email   string
	Phone   string
}

// ItemView is one row of the items table
type ItemView struct {
	Number      string
	Name        string
	Description string
	Quantity    string
	UnitPrice   string
	Total       string
}

// AdjustmentKind names an adjustment row
type AdjustmentKind string

const (
	AdjustmentDiscount AdjustmentKind = "discount"
	AdjustmentTax      AdjustmentKind = "tax"
	AdjustmentShipping AdjustmentKind = "shipping"
)

// AdjustmentView is an effective discount, tax or shipping row
type AdjustmentView struct {
	Kind  AdjustmentKind
	Label string
	// Sign is "-" for discounts and "+" otherwise
	Sign string
	// Rate is the adjustment as entered, e.g. "- 10%" or "- 5.00 USD"
	Rate string
	// Amount is the resolved contribution, e.g. "- 24.65 USD"
	Amount       string
	IsPercentage bool
}

// LabeledValue is a label/value pair such as a bank field
type LabeledValue struct {
	Label string
	Value string
}

// ImageView is an image sized to fixed bounds
type ImageView struct {
	Src    string
	Alt    string
	Width  int
	Height int
}

// SignatureView is either an image or styled text
type SignatureView struct {
	Image      *ImageView
	Text       string
	FontFamily string
}

// BuildView formats a snapshot for display. The snapshot's precision
// overrides opts.Precision so figures show as many digits as were computed.
func BuildView(snap *model.Snapshot, opts format.Options) *View {
	opts = opts.WithPrecision(snap.Precision)
	d := snap.Details
	money := func(v decimal.Decimal) string {
		return format.FormatMoney(v, d.Currency, opts)
	}

	v := &View{
		Title:         "Invoice " + d.InvoiceNumber,
		InvoiceNumber: d.InvoiceNumber,
		InvoiceDate:   format.FormatDate(d.InvoiceDate.Time, opts),
		DueDate:       format.FormatDate(d.DueDate.Time, opts),
		Currency:      d.Currency,
		Sender:        partyView(snap.Sender),
		Receiver:      partyView(snap.Receiver),
		SubTotal:      money(d.SubTotal),
		Total:         money(d.TotalAmount),
		Notes:         d.AdditionalNotes,
		PaymentTerms:  d.PaymentTerms,
	}

	if d.TotalAmountInWords != "" {
		v.TotalInWords = strings.TrimSpace(d.TotalAmountInWords + " " + d.Currency)
	}

	v.Items = lo.Map(d.Items, func(item model.LineItem, idx int) ItemView {
		return ItemView{
			Number:      strconv.Itoa(idx + 1),
			Name:        item.Name,
			Description: item.Description,
			Quantity:    format.FormatQuantity(item.Quantity),
			UnitPrice:   money(item.UnitPrice),
			Total:       money(item.Total),
		}
	})

	v.Adjustments = adjustments(d, money)
	v.Payment = paymentFields(d.PaymentInformation)
	v.Logo, v.LogoText = logoView(d.InvoiceLogo, snap.Sender.Name)
	v.Signature = signatureView(d.Signature, snap.Sender.Name)

	return v
}

// Adjustment returns the row of the given kind, if effective
func (v *View) Adjustment(kind AdjustmentKind) (AdjustmentView, bool) {
	return lo.Find(v.Adjustments, func(a AdjustmentView) bool {
		return a.Kind == kind
	})
}

// Contact returns the sender's email and phone, skipping empty values
func (v *View) Contact() []string {
	return lo.Compact([]string{v.Sender.Email, v.Sender.Phone})
}

func partyView(p model.Party) PartyView {
	return PartyView{
		Name:    p.Name,
		Address: p.Address,
		City:    p.City,
		ZipCode: p.ZipCode,
		Country: p.Country,
		Email:   p.Email,
		Phone:   p.Phone,
	}
}

func adjustments(d model.InvoiceDetails, money func(decimal.Decimal) string) []AdjustmentView {
	specs := []struct {
		kind     AdjustmentKind
		label    string
		sign     string
		spec     *model.AdjustmentSpec
		resolved decimal.Decimal
	}{
		{AdjustmentDiscount, "Discount", "-", d.DiscountDetails, d.DiscountAmount},
		{AdjustmentTax, "Tax", "+", d.TaxDetails, d.TaxAmount},
		{AdjustmentShipping, "Shipping", "+", d.ShippingDetails, d.ShippingAmount},
	}

	var out []AdjustmentView
	for _, s := range specs {
		if !s.spec.Effective() {
			continue
		}
		rate := money(s.spec.Amount)
		if s.spec.IsPercentage() {
			rate = format.FormatPercent(s.spec.Amount)
		}
		out = append(out, AdjustmentView{
			Kind:         s.kind,
			Label:        s.label,
			Sign:         s.sign,
			Rate:         s.sign + " " + rate,
			Amount:       s.sign + " " + money(s.resolved),
			IsPercentage: s.spec.IsPercentage(),
		})
	}
	return out
}

func paymentFields(p *model.PaymentInformation) []LabeledValue {
	if p.IsEmpty() {
		return nil
	}
	fields := []LabeledValue{
		{Label: "Bank", Value: p.BankName},
		{Label: "Account name", Value: p.AccountName},
		{Label: "Account no", Value: p.AccountNumber},
		{Label: "IFSC", Value: p.IFSC},
	}
	return lo.Filter(fields, func(f LabeledValue, _ int) bool {
		return f.Value != ""
	})
}

func logoView(logo, senderName string) (*ImageView, string) {
	logo = strings.TrimSpace(logo)
	if logo == "" {
		return nil, ""
	}
	if format.IsDataURL(logo) || isLink(logo) {
		return &ImageView{
			Src:    logo,
			Alt:    "Logo of " + senderName,
			Width:  logoWidth,
			Height: logoHeight,
		}, ""
	}
	return nil, logo
}

func signatureView(sig *model.Signature, senderName string) *SignatureView {
	if sig == nil || strings.TrimSpace(sig.Data) == "" {
		return nil
	}
	if format.IsDataURL(sig.Data) {
		return &SignatureView{
			Image: &ImageView{
				Src:    sig.Data,
				Alt:    "Signature of " + senderName,
				Width:  signatureWidth,
				Height: signatureHeight,
			},
		}
	}
	font := strings.TrimSpace(sig.FontFamily)
	if font == "" {
		font = DefaultSignatureFont
	}
	return &SignatureView{Text: sig.Data, FontFamily: font}
}

// isLink accepts http(s) URLs and local absolute paths. Protocol-relative
// "//host" references are remote and rejected.
func isLink(s string) bool {
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "http://") {
		return true
	}
	return strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//")
}
