package cmd

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-renderer/pkg/invoicelib"
)

var totalsOutputFile string

var totalsCmd = &cobra.Command{
	Use:   "totals [files...]",
	Short: "Compute invoice totals",
	Long: `Compute subtotal, discount, tax, shipping and grand total for one or
more JSON or XML invoice payloads. Totals supplied in the payload are ignored and
recomputed. Use "-" to read a payload from stdin.

Examples:
  invoice-renderer totals invoice.json
  invoice-renderer totals invoices/ -f csv -o totals.csv
  cat invoice.json | invoice-renderer totals - -f json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTotals,
}

func init() {
	rootCmd.AddCommand(totalsCmd)

	totalsCmd.Flags().StringVarP(&totalsOutputFile, "output", "o", "", "Output file (default: stdout)")
}

func newRenderer() *invoicelib.Renderer {
	return invoicelib.NewRenderer(invoicelib.Options{
		Convention:      cfg.Render.Convention,
		DateLayout:      cfg.Render.DateLayout,
		DefaultTemplate: cfg.TemplateID(),
	})
}

func runTotals(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no files found to process")
	}

	printVerbose("Found %d files to process\n", len(files))

	jobs := make([]invoicelib.Job, 0, len(files))
	readErrs := make(map[int]error)
	for i, file := range files {
		data, err := readInput(file)
		if err != nil {
			readErrs[i] = err
		}
		jobs = append(jobs, invoicelib.Job{Name: file, Data: data})
	}

	batch, _ := newRenderer().RenderBatch(context.Background(), jobs)

	results := make([]*TotalsResult, 0, len(batch))
	for i, r := range batch {
		if err, ok := readErrs[i]; ok {
			r.Err = err
		}
		result := newTotalsResult(r)
		results = append(results, result)

		if result.Error != "" {
			log.Debugw("totals failed", "file", result.File, "error", result.Error)
			printVerbose("  %s: %s\n", result.File, result.Error)
		}
	}

	w, closeFn, err := openOutput(totalsOutputFile)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := outputTotals(w, results); err != nil {
		return err
	}

	for _, r := range results {
		if r.Error != "" {
			return fmt.Errorf("totals failed for some files")
		}
	}
	return nil
}

// TotalsResult holds the computed totals of a single file
type TotalsResult struct {
	File           string `json:"file"`
	InvoiceNumber  string `json:"invoice_number,omitempty"`
	Currency       string `json:"currency,omitempty"`
	SubTotal       string `json:"sub_total,omitempty"`
	DiscountAmount string `json:"discount_amount,omitempty"`
	TaxAmount      string `json:"tax_amount,omitempty"`
	ShippingAmount string `json:"shipping_amount,omitempty"`
	TotalAmount    string `json:"total_amount,omitempty"`
	AmountInWords  string `json:"amount_in_words,omitempty"`
	Error          string `json:"error,omitempty"`
}

func newTotalsResult(r *invoicelib.Result) *TotalsResult {
	result := &TotalsResult{File: r.Name}
	if r.Err != nil {
		result.Error = r.Err.Error()
		return result
	}

	d := r.Snapshot.Details
	fixed := func(v decimal.Decimal) string {
		return v.StringFixed(int32(r.Snapshot.Precision))
	}
	result.InvoiceNumber = d.InvoiceNumber
	result.Currency = d.Currency
	result.SubTotal = fixed(d.SubTotal)
	result.DiscountAmount = fixed(d.DiscountAmount)
	result.TaxAmount = fixed(d.TaxAmount)
	result.ShippingAmount = fixed(d.ShippingAmount)
	result.TotalAmount = fixed(d.TotalAmount)
	result.AmountInWords = d.TotalAmountInWords
	return result
}

func outputTotals(w io.Writer, results []*TotalsResult) error {
	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	case "table":
		return outputTotalsTable(w, results)
	case "csv":
		return outputTotalsCSV(w, results)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

func outputTotalsTable(w io.Writer, results []*TotalsResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tNUMBER\tCURRENCY\tSUBTOTAL\tDISCOUNT\tTAX\tSHIPPING\tTOTAL")
	fmt.Fprintln(tw, "----\t------\t--------\t--------\t--------\t---\t--------\t-----")

	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\tERROR: %s\t\t\t\t\t\t\n", r.File, r.Error)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.File,
			r.InvoiceNumber,
			r.Currency,
			r.SubTotal,
			r.DiscountAmount,
			r.TaxAmount,
			r.ShippingAmount,
			r.TotalAmount,
		)
	}

	return tw.Flush()
}

func outputTotalsCSV(w io.Writer, results []*TotalsResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"file", "invoice_number", "currency", "sub_total", "discount_amount", "tax_amount", "shipping_amount", "total_amount", "amount_in_words", "error"}); err != nil {
		return err
	}

	for _, r := range results {
		record := []string{
			r.File,
			r.InvoiceNumber,
			r.Currency,
			r.SubTotal,
			r.DiscountAmount,
			r.TaxAmount,
			r.ShippingAmount,
			r.TotalAmount,
			r.AmountInWords,
			r.Error,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
