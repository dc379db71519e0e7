package render_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-renderer/internal/format"
	"github.com/rezonia/invoice-renderer/internal/model"
	"github.com/rezonia/invoice-renderer/internal/render"
	"github.com/rezonia/invoice-renderer/internal/snapshot"
	"github.com/rezonia/invoice-renderer/internal/testutil"
)

var allTemplates = []render.TemplateID{
	render.TemplateClassic,
	render.TemplateModern,
	render.TemplateReceipto,
}

func assemble(t *testing.T, input *model.Input) *model.Snapshot {
	t.Helper()
	snap, err := snapshot.Assemble(input)
	require.NoError(t, err)
	return snap
}

func TestRender_TemplateParity(t *testing.T) {
	snap := assemble(t, testutil.SampleInput())
	r := render.NewRenderer()

	for _, id := range allTemplates {
		t.Run(string(id), func(t *testing.T) {
			doc, err := r.Render(id, snap)
			require.NoError(t, err)
			assert.Equal(t, id, doc.Template)
			assert.Equal(t, "246.50 USD", doc.Value(render.FieldSubTotal))
			assert.Equal(t, "249.18 USD", doc.Value(render.FieldTotal))
			assert.Equal(t, "INV-2025-002", doc.Value(render.FieldInvoiceNumber))
			assert.Equal(t, "August 5, 2025", doc.Value(render.FieldInvoiceDate))
			assert.Equal(t, "August 20, 2025", doc.Value(render.FieldDueDate))

			itemTotals := doc.Find(render.FieldItemTotal)
			require.Len(t, itemTotals, 2)
			assert.Equal(t, "200.00 USD", itemTotals[0].TextContent())
			assert.Equal(t, "46.50 USD", itemTotals[1].TextContent())
		})
	}
}

func TestRenderAll_SameFigures(t *testing.T) {
	snap := assemble(t, testutil.SampleInput())

	docs, err := render.NewRenderer().RenderAll(snap)
	require.NoError(t, err)
	require.Len(t, docs, len(allTemplates))

	for _, doc := range docs[1:] {
		assert.Equal(t, docs[0].Value(render.FieldSubTotal), doc.Value(render.FieldSubTotal))
		assert.Equal(t, docs[0].Value(render.FieldTotal), doc.Value(render.FieldTotal))
		assert.Equal(t, docs[0].Value(render.FieldTotalInWords), doc.Value(render.FieldTotalInWords))
	}
	assert.Equal(t, "Two Hundred and Forty-Nine and 18/100 USD", docs[0].Value(render.FieldTotalInWords))
}

func TestRender_AdjustmentRows(t *testing.T) {
	snap := assemble(t, testutil.SampleInput())
	r := render.NewRenderer()

	tests := []struct {
		id       render.TemplateID
		discount string
		tax      string
		shipping string
	}{
		{render.TemplateClassic, "- 10%", "+ 5%", "+ 15.00 USD"},
		{render.TemplateModern, "- 24.65 USD", "+ 12.33 USD", "+ 15.00 USD"},
		{render.TemplateReceipto, "- 10%", "+ 5%", "+ 15.00 USD"},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			doc, err := r.Render(tt.id, snap)
			require.NoError(t, err)
			assert.Equal(t, tt.discount, doc.Value(render.FieldDiscount))
			assert.Equal(t, tt.tax, doc.Value(render.FieldTax))
			assert.Equal(t, tt.shipping, doc.Value(render.FieldShipping))
		})
	}
}

func TestRender_ZeroAdjustmentsSuppressed(t *testing.T) {
	input := testutil.SampleInput()
	input.Details.DiscountDetails = &model.AdjustmentSpec{Amount: decimal.Zero, AmountType: model.AmountTypePercentage}
	input.Details.TaxDetails = nil
	input.Details.ShippingDetails = &model.AdjustmentSpec{Amount: decimal.NewFromInt(-5), AmountType: model.AmountTypeAmount}
	snap := assemble(t, input)

	r := render.NewRenderer()
	for _, id := range allTemplates {
		t.Run(string(id), func(t *testing.T) {
			doc, err := r.Render(id, snap)
			require.NoError(t, err)
			assert.Empty(t, doc.Find(render.FieldDiscount))
			assert.Empty(t, doc.Find(render.FieldTax))
			assert.Empty(t, doc.Find(render.FieldShipping))
			assert.Equal(t, "246.50 USD", doc.Value(render.FieldTotal))
		})
	}
}

func TestRender_EmptyItems(t *testing.T) {
	snap := assemble(t, testutil.MinimalInput())
	r := render.NewRenderer()

	for _, id := range allTemplates {
		t.Run(string(id), func(t *testing.T) {
			doc, err := r.Render(id, snap)
			require.NoError(t, err)

			tables := doc.Find(render.FieldItems)
			require.Len(t, tables, 1)
			assert.Empty(t, doc.Find(render.FieldItemTotal))
			assert.Equal(t, "0.00 USD", doc.Value(render.FieldSubTotal))
			assert.Equal(t, "0.00 USD", doc.Value(render.FieldTotal))
			assert.Equal(t, "-", doc.Value(render.FieldInvoiceDate))

			assert.NotEmpty(t, doc.Find(render.FieldSender))
			assert.NotEmpty(t, doc.Find(render.FieldReceiver))
			assert.Empty(t, doc.Find(render.FieldLogo))
			assert.Empty(t, doc.Find(render.FieldSignature))
			assert.Empty(t, doc.Find(render.FieldPaymentInfo))
			assert.Empty(t, doc.Find(render.FieldNotes))
		})
	}
}

func TestRender_LogoBranching(t *testing.T) {
	tests := []struct {
		name    string
		logo    string
		wantTag string
	}{
		{"data url", testutil.SampleLogo, "img"},
		{"https link", "https://cdn.example.com/logo.png", "img"},
		{"absolute path", "/static/logo.svg", "img"},
		{"plain text", "ASHA", "span"},
		{"protocol relative", "//cdn.example.com/logo.png", "span"},
	}

	r := render.NewRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := testutil.SampleInput()
			input.Details.InvoiceLogo = tt.logo
			snap := assemble(t, input)

			for _, id := range allTemplates {
				doc, err := r.Render(id, snap)
				require.NoError(t, err)

				logos := doc.Find(render.FieldLogo)
				require.Len(t, logos, 1, "template %s", id)
				assert.Equal(t, tt.wantTag, logos[0].Tag)
				if tt.wantTag == "img" {
					src, _ := logos[0].Attr("src")
					assert.Equal(t, tt.logo, src)
					width, _ := logos[0].Attr("width")
					height, _ := logos[0].Attr("height")
					assert.Equal(t, "120", width)
					assert.Equal(t, "48", height)
				} else {
					assert.Equal(t, tt.logo, logos[0].TextContent())
				}
			}
		})
	}
}

func TestRender_SignatureBranching(t *testing.T) {
	r := render.NewRenderer()

	t.Run("text with font", func(t *testing.T) {
		snap := assemble(t, testutil.SampleInput())
		doc, err := r.Render(render.TemplateReceipto, snap)
		require.NoError(t, err)

		sigs := doc.Find(render.FieldSignature)
		require.Len(t, sigs, 1)
		assert.Equal(t, "p", sigs[0].Tag)
		assert.Equal(t, "Asha Rao", sigs[0].TextContent())
		css, _ := sigs[0].Attr("style")
		assert.Contains(t, css, `"Great Vibes"`)
	})

	t.Run("text without font uses cursive", func(t *testing.T) {
		input := testutil.SampleInput()
		input.Details.Signature.FontFamily = ""
		doc, err := r.Render(render.TemplateClassic, assemble(t, input))
		require.NoError(t, err)

		sigs := doc.Find(render.FieldSignature)
		require.Len(t, sigs, 1)
		css, _ := sigs[0].Attr("style")
		assert.Contains(t, css, "font-family: cursive")
	})

	t.Run("image", func(t *testing.T) {
		input := testutil.SampleInput()
		input.Details.Signature.Data = testutil.SampleLogo
		doc, err := r.Render(render.TemplateModern, assemble(t, input))
		require.NoError(t, err)

		sigs := doc.Find(render.FieldSignature)
		require.Len(t, sigs, 1)
		assert.Equal(t, "img", sigs[0].Tag)
		width, _ := sigs[0].Attr("width")
		assert.Equal(t, "140", width)
	})
}

func TestRender_SignatureFontEscaping(t *testing.T) {
	tests := []struct {
		name     string
		font     string
		expected string
	}{
		{"declaration injection", "x;background-image:url(https://evil.example/t.png)",
			`font-family: "x;background-image:url(https://evil.example/t.png)"; font-size: 28px`},
		{"closing quote", `a"; color: red`, `font-family: "a\"; color: red"; font-size: 28px`},
		{"backslash", `a\`, `font-family: "a\\"; font-size: 28px`},
		{"newline", "a\nb", `font-family: "a\a b"; font-size: 28px`},
		{"named family", "Georgia", `font-family: "Georgia"; font-size: 28px`},
		{"generic family", "Cursive", `font-family: Cursive; font-size: 28px`},
	}

	r := render.NewRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := assemble(t, testutil.SampleInput())
			snap.Details.Signature = &model.Signature{Data: "Asha Rao", FontFamily: tt.font}

			for _, id := range allTemplates {
				doc, err := r.Render(id, snap)
				require.NoError(t, err)

				sigs := doc.Find(render.FieldSignature)
				require.Len(t, sigs, 1, id)
				css, _ := sigs[0].Attr("style")
				assert.Equal(t, tt.expected, css, id)
			}
		})
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	snap := assemble(t, testutil.SampleInput())

	doc, err := render.NewRenderer().Render("template-9", snap)
	require.Error(t, err)
	assert.Nil(t, doc)

	var te *model.UnknownTemplateError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "template-9", te.Template)
	assert.Equal(t, []string{"template-1", "template-2", "template-3"}, te.Available)
}

func TestRender_NilSnapshot(t *testing.T) {
	_, err := render.NewRenderer().Render(render.TemplateClassic, nil)
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
}

func TestRender_Conventions(t *testing.T) {
	input := testutil.SampleInput()
	input.Details.Items[0].UnitPrice = decimal.NewFromInt(600000)
	snap := assemble(t, input)

	tests := []struct {
		convention format.Convention
		want       string
	}{
		{format.ConventionUS, "1,200,046.50 USD"},
		{format.ConventionIndia, "12,00,046.50 USD"},
		{format.ConventionGerman, "1.200.046,50 USD"},
	}

	for _, tt := range tests {
		t.Run(string(tt.convention), func(t *testing.T) {
			opts := format.DefaultOptions()
			opts.Convention = tt.convention
			doc, err := render.NewRenderer(render.WithOptions(opts)).Render(render.TemplateClassic, snap)
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Value(render.FieldSubTotal))
		})
	}
}

func TestRender_SnapshotUnchanged(t *testing.T) {
	snap := assemble(t, testutil.SampleInput())
	before, err := json.Marshal(snap)
	require.NoError(t, err)

	_, err = render.NewRenderer().RenderAll(snap)
	require.NoError(t, err)

	after, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestDocument_HTML(t *testing.T) {
	snap := assemble(t, testutil.SampleInput())
	doc, err := render.NewRenderer().Render(render.TemplateReceipto, snap)
	require.NoError(t, err)

	out, err := doc.HTML()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Invoice INV-2025-002</title>")
	assert.Contains(t, out, "<style>")
	assert.Contains(t, out, `data-field="total"`)
	assert.Contains(t, out, "249.18 USD")
	assert.Contains(t, out, "Receipto")
	assert.Contains(t, out, "If you have any questions concerning this invoice, contact:")
	assert.Contains(t, out, "billing@ashadesigns.example")
}

func TestDocument_HTMLEscapesText(t *testing.T) {
	input := testutil.SampleInput()
	input.Details.AdditionalNotes = "<script>alert(1)</script>"
	doc, err := render.NewRenderer().Render(render.TemplateClassic, assemble(t, input))
	require.NoError(t, err)

	out, err := doc.HTML()
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestDocument_JSON(t *testing.T) {
	snap := assemble(t, testutil.SampleInput())
	doc, err := render.NewRenderer().Render(render.TemplateModern, snap)
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded render.Document
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, render.TemplateModern, decoded.Template)
	assert.Equal(t, "249.18 USD", decoded.Value(render.FieldTotal))
}

func TestRegistry(t *testing.T) {
	reg := render.DefaultRegistry()
	assert.Equal(t, []string{"template-1", "template-2", "template-3"}, reg.IDs())

	tmpl, err := reg.Get(render.TemplateReceipto)
	require.NoError(t, err)
	assert.Equal(t, "Receipto", tmpl.Name())
	assert.NotEmpty(t, tmpl.Description())

	reg.Register(render.Classic{})
	assert.Len(t, reg.Templates(), 3)

	empty := render.NewRegistry()
	_, err = empty.Get(render.TemplateClassic)
	assert.True(t, model.IsUnknownTemplate(err))
}

func TestParseTemplateID(t *testing.T) {
	assert.Equal(t, render.TemplateModern, render.ParseTemplateID("  Template-2 "))
	assert.Equal(t, render.TemplateID(""), render.ParseTemplateID(""))
}

func BenchmarkRender(b *testing.B) {
	snap, err := snapshot.Assemble(testutil.SampleInput())
	if err != nil {
		b.Fatal(err)
	}
	r := render.NewRenderer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		doc, _ := r.Render(render.TemplateReceipto, snap)
		_, _ = doc.HTML()
	}
}
