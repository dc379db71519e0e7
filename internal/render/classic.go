package render

// Classic is a conservative layout: logo on the left, invoice meta on the
// right, a numbered items table and a right aligned totals block.
type Classic struct{}

func (Classic) ID() TemplateID { return TemplateClassic }

func (Classic) Name() string { return "Classic" }

func (Classic) Description() string {
	return "Logo and invoice details side by side, numbered item table, right aligned totals"
}

func (Classic) Styles() string { return classicStyles }

func (Classic) Render(v *View) *Node {
	header := el("header", attrs(class("classic-header")),
		el("div", attrs(class("brand")),
			logoNode(v, "logo"),
			textEl("h1", nil, "INVOICE"),
		),
		el("div", attrs(class("meta")),
			metaRow("Invoice #", v.InvoiceNumber, FieldInvoiceNumber),
			metaRow("Invoice date", v.InvoiceDate, FieldInvoiceDate),
			metaRow("Due date", v.DueDate, FieldDueDate),
		),
	)

	parties := el("div", attrs(class("parties")),
		partyNode("Bill from", v.Sender, FieldSender, "party"),
		partyNode("Bill to", v.Receiver, FieldReceiver, "party"),
	)

	items := itemsTable(v, "items", []itemColumn{
		{heading: "#", cls: "num", value: func(i ItemView) *Node { return text(i.Number) }},
		{heading: "Item", cls: "name", value: itemNameWithDescription},
		{heading: "Qty", cls: "qty", value: func(i ItemView) *Node { return text(i.Quantity) }},
		{heading: "Unit price", cls: "price", value: func(i ItemView) *Node { return text(i.UnitPrice) }},
		{heading: "Total", cls: "amount", value: itemTotal},
	})

	totals := el("section", attrs(class("totals")),
		append(append(
			[]*Node{totalsRow("Subtotal", v.SubTotal, FieldSubTotal, "totals-row")},
			adjustmentRows(v, true)...),
			totalsRow("Total", v.Total, FieldTotal, "totals-row grand-total"),
			totalInWords(v),
		)...,
	)

	footer := el("footer", attrs(class("classic-footer")),
		notesNode(v),
		paymentTermsNode(v),
		paymentInfoNode(v),
		signatureNode(v),
	)

	return el("main", attrs(class("invoice classic")), header, parties, items, totals, footer)
}

const classicStyles = `body { font-family: Helvetica, Arial, sans-serif; color: #1f2937; margin: 0; }
.invoice.classic { max-width: 800px; margin: 0 auto; padding: 40px; }
.classic-header { display: flex; justify-content: space-between; align-items: flex-start; }
.classic-header h1 { font-size: 28px; letter-spacing: 2px; margin: 8px 0 0; }
.meta-row { display: flex; gap: 12px; justify-content: flex-end; }
.meta-row .label { color: #6b7280; }
.parties { display: flex; justify-content: space-between; margin: 32px 0; }
.party h3 { font-size: 13px; text-transform: uppercase; color: #6b7280; }
.party p { margin: 2px 0; }
.wordmark { font-size: 22px; font-weight: 700; }
table.items { width: 100%; border-collapse: collapse; }
table.items th { text-align: left; border-bottom: 2px solid #1f2937; padding: 8px; }
table.items td { border-bottom: 1px solid #e5e7eb; padding: 8px; vertical-align: top; }
table.items .qty, table.items .price, table.items .amount { text-align: right; }
.item-description { color: #6b7280; font-size: 12px; margin: 2px 0 0; }
.totals { margin-left: auto; width: 320px; margin-top: 16px; }
.totals-row { display: flex; justify-content: space-between; padding: 4px 0; }
.grand-total { border-top: 2px solid #1f2937; font-weight: 700; font-size: 18px; }
.total-in-words { font-size: 12px; color: #4b5563; }
.classic-footer { margin-top: 40px; display: grid; grid-template-columns: 1fr 1fr; gap: 16px; }
.signature { text-align: right; }
`
