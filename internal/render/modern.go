package render

// Modern puts the sender in a colored band, lays the parties out in two
// columns and shows adjustments with their resolved amounts.
type Modern struct{}

func (Modern) ID() TemplateID { return TemplateModern }

func (Modern) Name() string { return "Modern" }

func (Modern) Description() string {
	return "Brand band header, two column parties, adjustments shown as resolved amounts"
}

func (Modern) Styles() string { return modernStyles }

func (Modern) Render(v *View) *Node {
	band := el("header", attrs(class("band")),
		el("div", attrs(class("band-brand")),
			logoNode(v, "logo"),
			textEl("h2", nil, v.Sender.Name),
		),
		el("div", attrs(class("band-title")),
			textEl("h1", nil, "Invoice"),
			textEl("p", attrs(class("invoice-number"), field(FieldInvoiceNumber)), v.InvoiceNumber),
		),
	)

	dates := el("div", attrs(class("dates")),
		metaRow("Issued", v.InvoiceDate, FieldInvoiceDate),
		metaRow("Due", v.DueDate, FieldDueDate),
	)

	parties := el("div", attrs(class("columns")),
		partyNode("From", v.Sender, FieldSender, "column"),
		partyNode("To", v.Receiver, FieldReceiver, "column"),
	)

	items := itemsTable(v, "items", []itemColumn{
		{heading: "Description", cls: "name", value: itemNameWithDescription},
		{heading: "Quantity", cls: "qty", value: func(i ItemView) *Node { return text(i.Quantity) }},
		{heading: "Price", cls: "price", value: func(i ItemView) *Node { return text(i.UnitPrice) }},
		{heading: "Amount", cls: "amount", value: itemTotal},
	})

	summary := el("aside", attrs(class("summary")),
		append(append(
			[]*Node{totalsRow("Subtotal", v.SubTotal, FieldSubTotal, "totals-row")},
			adjustmentRows(v, false)...),
			el("div", attrs(class("amount-due")),
				textEl("span", attrs(class("label")), "Amount due"),
				textEl("strong", attrs(field(FieldTotal)), v.Total),
			),
			totalInWords(v),
		)...,
	)

	details := el("div", attrs(class("columns details")),
		el("div", attrs(class("column")),
			paymentInfoNode(v),
			paymentTermsNode(v),
			notesNode(v),
		),
		el("div", attrs(class("column")),
			signatureNode(v),
		),
	)

	return el("main", attrs(class("invoice modern")), band, dates, parties, items, summary, details)
}

const modernStyles = `body { font-family: "Inter", "Segoe UI", sans-serif; color: #111827; margin: 0; }
.invoice.modern { max-width: 820px; margin: 0 auto; }
.band { background: #312e81; color: #ffffff; display: flex; justify-content: space-between; align-items: center; padding: 28px 40px; }
.band h1 { margin: 0; font-weight: 300; font-size: 32px; }
.band h2 { margin: 6px 0 0; font-size: 16px; }
.band-title { text-align: right; }
.dates { display: flex; gap: 24px; padding: 16px 40px; background: #eef2ff; }
.meta-row .label { color: #4338ca; margin-right: 6px; }
.columns { display: grid; grid-template-columns: 1fr 1fr; gap: 24px; padding: 24px 40px; }
.column h3, .column h4 { color: #4338ca; font-size: 12px; text-transform: uppercase; }
.column p { margin: 2px 0; }
.wordmark { font-size: 20px; font-weight: 800; letter-spacing: 1px; }
table.items { width: calc(100% - 80px); margin: 0 40px; border-collapse: collapse; }
table.items th { background: #eef2ff; text-align: left; padding: 10px; font-size: 12px; }
table.items td { padding: 10px; border-bottom: 1px solid #e5e7eb; }
table.items .qty, table.items .price, table.items .amount { text-align: right; }
.item-description { color: #6b7280; font-size: 12px; margin: 2px 0 0; }
.summary { width: 340px; margin: 16px 40px 0 auto; }
.totals-row { display: flex; justify-content: space-between; padding: 4px 0; }
.amount-due { display: flex; justify-content: space-between; background: #312e81; color: #ffffff; padding: 12px; margin-top: 8px; }
.total-in-words { font-size: 12px; color: #4b5563; }
`
