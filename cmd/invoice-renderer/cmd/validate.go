package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-renderer/internal/model"
	"github.com/rezonia/invoice-renderer/internal/parser"
	"github.com/rezonia/invoice-renderer/internal/snapshot"
)

var (
	strictValidation bool
	decoders         = parser.NewRegistry()
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate invoice payloads",
	Long: `Validate one or more JSON or XML invoice payloads for completeness and correctness.

Checks performed:
  - Required fields present (sender, receiver, invoice number, currency, item names)
  - Quantities and unit prices are non-negative
  - Adjustment amount types are "amount" or "percentage"
  - Dates are present and the due date is not before the invoice date
  - Totals supplied in the payload match the computed totals

Date and supplied-total problems are warnings unless --strict is set.

Examples:
  invoice-renderer validate invoice.json
  invoice-renderer validate invoices/*.json --strict`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&strictValidation, "strict", false, "Treat warnings as errors")
}

func runValidate(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no files found to validate")
	}

	results := make([]*ValidationResult, 0, len(files))
	allValid := true

	for _, file := range files {
		result := validateFile(file)
		results = append(results, result)
		if !result.Valid {
			allValid = false
		}
	}

	// Output results
	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Printf("✓ %s: VALID\n", r.File)
			} else {
				fmt.Printf("✗ %s: INVALID\n", r.File)
				for _, e := range r.Errors {
					fmt.Printf("  - %s\n", e)
				}
			}
			for _, w := range r.Warnings {
				fmt.Printf("  ⚠ %s\n", w)
			}
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some files")
	}

	return nil
}

// ValidationResult holds the validation outcome of a single file
type ValidationResult struct {
	File     string   `json:"file"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func validateFile(filePath string) *ValidationResult {
	result := &ValidationResult{
		File:     filePath,
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
	}

	data, err := readInput(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	input, err := decoders.Decode(data)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, model.ValidationMessages(err)...)
		return result
	}

	snap, err := snapshot.Assemble(input)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, model.ValidationMessages(err)...)
		return result
	}

	warnings := inputWarnings(input, snap)
	if strictValidation && len(warnings) > 0 {
		result.Valid = false
		result.Errors = append(result.Errors, warnings...)
	} else {
		result.Warnings = append(result.Warnings, warnings...)
	}

	return result
}

// inputWarnings flags payload problems that do not block computation
func inputWarnings(input *model.Input, snap *model.Snapshot) []string {
	var warnings []string
	d := input.Details

	if d.InvoiceDate.IsZero() {
		warnings = append(warnings, "missing invoice date")
	}
	if d.DueDate.IsZero() {
		warnings = append(warnings, "missing due date")
	}
	if !d.InvoiceDate.IsZero() && !d.DueDate.IsZero() && d.DueDate.Before(d.InvoiceDate.Time) {
		warnings = append(warnings, "due date is before invoice date")
	}

	computed := snap.Details
	checks := []struct {
		name     string
		supplied decimal.Decimal
		computed decimal.Decimal
	}{
		{"subTotal", d.SubTotal, computed.SubTotal},
		{"discountAmount", d.DiscountAmount, computed.DiscountAmount},
		{"taxAmount", d.TaxAmount, computed.TaxAmount},
		{"shippingAmount", d.ShippingAmount, computed.ShippingAmount},
		{"totalAmount", d.TotalAmount, computed.TotalAmount},
	}
	for _, c := range checks {
		if c.supplied.IsZero() || c.supplied.Equal(c.computed) {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("supplied %s %s differs from computed %s",
			c.name, c.supplied, c.computed.StringFixed(int32(snap.Precision))))
	}

	for i, item := range d.Items {
		if item.Total.IsZero() {
			continue
		}
		if want := computed.Items[i].Total; !item.Total.Equal(want) {
			warnings = append(warnings, fmt.Sprintf("supplied items[%d].total %s differs from computed %s",
				i, item.Total, want.String()))
		}
	}

	return warnings
}
