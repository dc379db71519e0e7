package render

// Receipto is a compact receipt style layout with a brand word header,
// From / Bill to blocks, rates shown as entered and a contact footer.
type Receipto struct{}

// ReceiptoBrand is the word shown in the Receipto header
const ReceiptoBrand = "Receipto"

func (Receipto) ID() TemplateID { return TemplateReceipto }

func (Receipto) Name() string { return ReceiptoBrand }

func (Receipto) Description() string {
	return "Receipt style header, Qty/Rate/Amount table, totals list with rates, contact footer"
}

func (Receipto) Styles() string { return receiptoStyles }

func (Receipto) Render(v *View) *Node {
	header := el("header", attrs(class("receipto-header")),
		el("div", attrs(class("brand")),
			textEl("h1", attrs(class("brand-word")), ReceiptoBrand),
			textEl("p", attrs(class("sender-name")), v.Sender.Name),
		),
		logoNode(v, "logo"),
		el("div", attrs(class("meta")),
			metaRow("Invoice #", v.InvoiceNumber, FieldInvoiceNumber),
			metaRow("Invoice date", v.InvoiceDate, FieldInvoiceDate),
			metaRow("Due date", v.DueDate, FieldDueDate),
		),
	)

	parties := el("div", attrs(class("parties")),
		partyNode("From", v.Sender, FieldSender, "party"),
		partyNode("Bill to", v.Receiver, FieldReceiver, "party"),
	)

	items := itemsTable(v, "items", []itemColumn{
		{heading: "Item", cls: "name", value: itemName},
		{heading: "Qty", cls: "qty", value: func(i ItemView) *Node { return text(i.Quantity) }},
		{heading: "Rate", cls: "price", value: func(i ItemView) *Node { return text(i.UnitPrice) }},
		{heading: "Amount", cls: "amount", value: itemTotal},
	})

	totals := el("section", attrs(class("totals")),
		append(append(
			[]*Node{totalsRow("Subtotal", v.SubTotal, FieldSubTotal, "totals-row")},
			adjustmentRows(v, true)...),
			totalsRow("Total", v.Total, FieldTotal, "totals-row grand-total"),
			totalInWords(v),
		)...,
	)

	extras := el("div", attrs(class("extras")),
		notesNode(v),
		paymentTermsNode(v),
		paymentInfoNode(v),
	)

	return el("main", attrs(class("invoice receipto")),
		header, parties, items, totals, extras,
		contactNode(v),
		signatureNode(v),
	)
}

func contactNode(v *View) *Node {
	lines := v.Contact()
	if len(lines) == 0 {
		return nil
	}
	children := []*Node{textEl("p", nil, "If you have any questions concerning this invoice, contact:")}
	for _, line := range lines {
		children = append(children, textEl("p", attrs(class("contact-line")), line))
	}
	return el("footer", attrs(class("contact")), children...)
}

const receiptoStyles = `body { font-family: "Courier New", monospace; color: #111111; margin: 0; }
.invoice.receipto { max-width: 640px; margin: 0 auto; padding: 32px; }
.receipto-header { display: flex; justify-content: space-between; align-items: flex-start; border-bottom: 1px dashed #111111; padding-bottom: 16px; }
.brand-word { margin: 0; font-size: 26px; }
.sender-name { margin: 4px 0 0; }
.meta-row { display: flex; gap: 8px; }
.parties { display: flex; justify-content: space-between; margin: 20px 0; }
.party h3 { font-size: 12px; text-transform: uppercase; margin-bottom: 4px; }
.party p { margin: 1px 0; }
.wordmark { font-weight: 700; font-size: 20px; }
table.items { width: 100%; border-collapse: collapse; }
table.items th { border-bottom: 1px dashed #111111; text-align: left; padding: 6px 0; }
table.items td { padding: 6px 0; }
table.items .qty, table.items .price, table.items .amount { text-align: right; }
.totals { border-top: 1px dashed #111111; margin-top: 12px; padding-top: 8px; }
.totals-row { display: flex; justify-content: space-between; }
.grand-total { font-weight: 700; font-size: 18px; margin-top: 6px; }
.total-in-words { font-size: 12px; }
.contact { border-top: 1px dashed #111111; margin-top: 20px; padding-top: 8px; font-size: 12px; }
.signature { margin-top: 24px; }
`
