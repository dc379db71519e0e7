package render

import "strings"

// FieldAttr marks nodes that carry a named invoice value, so callers and
// tests can locate figures independent of layout.
const FieldAttr = "data-field"

// Field names shared by every template
const (
	FieldInvoiceNumber = "invoice-number"
	FieldInvoiceDate   = "invoice-date"
	FieldDueDate       = "due-date"
	FieldLogo          = "logo"
	FieldSender        = "sender"
	FieldReceiver      = "receiver"
	FieldItems         = "items"
	FieldItemTotal     = "item-total"
	FieldSubTotal      = "subtotal"
	FieldDiscount      = "discount"
	FieldTax           = "tax"
	FieldShipping      = "shipping"
	FieldTotal         = "total"
	FieldTotalInWords  = "total-in-words"
	FieldNotes         = "notes"
	FieldPaymentTerms  = "payment-terms"
	FieldPaymentInfo   = "payment-info"
	FieldSignature     = "signature"
)

// Attr is a single element attribute
type Attr struct {
	Key string `json:"key"`
	Val string `json:"val"`
}

// Node is an element or, when Tag is empty, a text node
type Node struct {
	Tag      string  `json:"tag,omitempty"`
	Attrs    []Attr  `json:"attrs,omitempty"`
	Text     string  `json:"text,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// IsText reports whether n is a text node
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Attr returns the value of attribute key
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Field returns the data-field attribute, if any
func (n *Node) Field() string {
	v, _ := n.Attr(FieldAttr)
	return v
}

// Walk visits n and its descendants depth first until fn returns false
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// FindField returns every node whose data-field equals name
func (n *Node) FindField(name string) []*Node {
	var out []*Node
	n.Walk(func(x *Node) bool {
		if x.Field() == name {
			out = append(out, x)
		}
		return true
	})
	return out
}

// TextContent concatenates all text below n
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(x *Node) bool {
		if x.IsText() {
			b.WriteString(x.Text)
		}
		return true
	})
	return b.String()
}

// el builds an element. Nil children are dropped so optional sections can
// be written inline.
func el(tag string, attrs []Attr, children ...*Node) *Node {
	n := &Node{Tag: tag, Attrs: attrs}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

func text(s string) *Node {
	return &Node{Text: s}
}

// textEl is an element holding a single text child
func textEl(tag string, attrs []Attr, s string) *Node {
	return el(tag, attrs, text(s))
}

func attrs(list ...Attr) []Attr {
	return list
}

func class(c string) Attr {
	return Attr{Key: "class", Val: c}
}

func field(name string) Attr {
	return Attr{Key: FieldAttr, Val: name}
}

func style(s string) Attr {
	return Attr{Key: "style", Val: s}
}
