package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Section builders shared by the built-in templates. Each one returns nil
// when its section has nothing to show, which el drops.

func imageNode(img *ImageView, name, cls string) *Node {
	return el("img", attrs(
		class(cls),
		field(name),
		Attr{Key: "src", Val: img.Src},
		Attr{Key: "alt", Val: img.Alt},
		Attr{Key: "width", Val: strconv.Itoa(img.Width)},
		Attr{Key: "height", Val: strconv.Itoa(img.Height)},
		style("object-fit: contain"),
	))
}

func logoNode(v *View, cls string) *Node {
	switch {
	case v.Logo != nil:
		return imageNode(v.Logo, FieldLogo, cls)
	case v.LogoText != "":
		return textEl("span", attrs(class(cls+" wordmark"), field(FieldLogo)), v.LogoText)
	}
	return nil
}

func partyNode(heading string, p PartyView, name, cls string) *Node {
	return el("section", attrs(class(cls), field(name)),
		textEl("h3", nil, heading),
		textEl("p", attrs(class("party-name")), p.Name),
		textEl("p", nil, p.Address),
		textEl("p", nil, p.ZipCode+", "+p.City),
		textEl("p", nil, p.Country),
		optionalText("p", "party-email", p.Email),
		optionalText("p", "party-phone", p.Phone),
	)
}

func optionalText(tag, cls, s string) *Node {
	if s == "" {
		return nil
	}
	return textEl(tag, attrs(class(cls)), s)
}

func metaRow(label, value, name string) *Node {
	return el("div", attrs(class("meta-row")),
		textEl("span", attrs(class("label")), label),
		textEl("span", attrs(class("value"), field(name)), value),
	)
}

// itemColumn describes one column of an items table
type itemColumn struct {
	heading string
	cls     string
	value   func(ItemView) *Node
}

func itemsTable(v *View, cls string, columns []itemColumn) *Node {
	head := el("tr", nil, lo.Map(columns, func(c itemColumn, _ int) *Node {
		return textEl("th", attrs(class(c.cls)), c.heading)
	})...)

	rows := lo.Map(v.Items, func(item ItemView, _ int) *Node {
		return el("tr", attrs(class("item")), lo.Map(columns, func(c itemColumn, _ int) *Node {
			return el("td", attrs(class(c.cls)), c.value(item))
		})...)
	})

	return el("table", attrs(class(cls), field(FieldItems)),
		el("thead", nil, head),
		el("tbody", nil, rows...),
	)
}

func itemTotal(item ItemView) *Node {
	return textEl("span", attrs(field(FieldItemTotal)), item.Total)
}

func itemName(item ItemView) *Node {
	return text(item.Name)
}

func itemNameWithDescription(item ItemView) *Node {
	return el("div", nil,
		textEl("span", attrs(class("item-name")), item.Name),
		optionalText("p", "item-description", item.Description),
	)
}

func adjustmentField(kind AdjustmentKind) string {
	switch kind {
	case AdjustmentDiscount:
		return FieldDiscount
	case AdjustmentTax:
		return FieldTax
	default:
		return FieldShipping
	}
}

func totalsRow(label, value, name, cls string) *Node {
	return el("div", attrs(class(cls)),
		textEl("span", attrs(class("label")), label),
		textEl("span", attrs(class("value"), field(name)), value),
	)
}

// adjustmentRows renders one row per effective adjustment. With showRate
// the value is the rate as entered, otherwise the resolved amount.
func adjustmentRows(v *View, showRate bool) []*Node {
	return lo.Map(v.Adjustments, func(a AdjustmentView, _ int) *Node {
		value := a.Amount
		if showRate {
			value = a.Rate
		}
		return totalsRow(a.Label, value, adjustmentField(a.Kind), "totals-row adjustment")
	})
}

func totalInWords(v *View) *Node {
	if v.TotalInWords == "" {
		return nil
	}
	return el("p", attrs(class("total-in-words")),
		textEl("span", attrs(class("label")), "Total in words: "),
		textEl("em", attrs(field(FieldTotalInWords)), v.TotalInWords),
	)
}

func notesNode(v *View) *Node {
	if v.Notes == "" {
		return nil
	}
	return el("section", attrs(class("notes")),
		textEl("h4", nil, "Additional notes"),
		textEl("p", attrs(field(FieldNotes)), v.Notes),
	)
}

func paymentTermsNode(v *View) *Node {
	if v.PaymentTerms == "" {
		return nil
	}
	return el("section", attrs(class("payment-terms")),
		textEl("h4", nil, "Payment terms"),
		textEl("p", attrs(field(FieldPaymentTerms)), v.PaymentTerms),
	)
}

func paymentInfoNode(v *View) *Node {
	if len(v.Payment) == 0 {
		return nil
	}
	rows := lo.Map(v.Payment, func(f LabeledValue, _ int) *Node {
		return el("p", nil,
			textEl("span", attrs(class("label")), f.Label+": "),
			textEl("span", attrs(class("value")), f.Value),
		)
	})
	return el("section", attrs(class("payment-info"), field(FieldPaymentInfo)),
		append([]*Node{textEl("h4", nil, "Payment information")}, rows...)...,
	)
}

func signatureNode(v *View) *Node {
	sig := v.Signature
	if sig == nil {
		return nil
	}
	var mark *Node
	if sig.Image != nil {
		mark = imageNode(sig.Image, FieldSignature, "signature-image")
	} else {
		mark = textEl("p", attrs(
			class("signature-text"),
			field(FieldSignature),
			style("font-family: "+quoteFont(sig.FontFamily)+"; font-size: 28px"),
		), sig.Text)
	}
	return el("section", attrs(class("signature")),
		textEl("h4", nil, "Signature"),
		mark,
	)
}

var genericFonts = map[string]bool{
	"serif": true, "sans-serif": true, "monospace": true, "cursive": true,
	"fantasy": true, "system-ui": true,
}

// quoteFont leaves generic families bare and writes any other family as an
// escaped CSS string
func quoteFont(family string) string {
	if genericFonts[strings.ToLower(family)] {
		return family
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range family {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
