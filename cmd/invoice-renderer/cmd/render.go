package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-renderer/internal/render"
	"github.com/rezonia/invoice-renderer/pkg/invoicelib"
)

var (
	renderTemplate   string
	renderOutputFile string
	renderAs         string
	renderAll        bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render an invoice with a template",
	Long: `Render a JSON or XML invoice payload into a standalone HTML page or a JSON
document tree. Totals are computed before rendering; every template shows the
same figures. Use "-" to read the payload from stdin.

With --all, every template is rendered into the directory given by --output,
one file per template.

Examples:
  invoice-renderer render invoice.json -t template-3 -o invoice.html
  invoice-renderer render invoice.json --as json
  invoice-renderer render invoice.json --all -o out/`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template id (default: render.default_template from config)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "output", "o", "", "Output file, or directory with --all (default: stdout)")
	renderCmd.Flags().StringVar(&renderAs, "as", "html", "Document format (html, json)")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "Render every template")
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderAs != "html" && renderAs != "json" {
		return fmt.Errorf("unsupported document format: %s", renderAs)
	}

	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	r := newRenderer()
	snap, err := r.ComputeData(data)
	if err != nil {
		return fmt.Errorf("invalid invoice %s: %w", args[0], err)
	}
	printVerbose("Computed total %s %s\n", snap.Details.TotalAmount.StringFixed(int32(snap.Precision)), snap.Details.Currency)

	if renderAll {
		return renderEveryTemplate(r, snap)
	}

	doc, err := r.Render(render.ParseTemplateID(renderTemplate), snap)
	if err != nil {
		return err
	}
	log.Debugw("rendered invoice", "template", doc.Template, "invoice", snap.Details.InvoiceNumber)

	w, closeFn, err := openOutput(renderOutputFile)
	if err != nil {
		return err
	}
	defer closeFn()

	return writeDocument(w, doc)
}

func renderEveryTemplate(r *invoicelib.Renderer, snap *invoicelib.Snapshot) error {
	if renderOutputFile == "" {
		return fmt.Errorf("--all requires --output directory")
	}

	docs, err := r.RenderAll(snap)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		name := fmt.Sprintf("%s-%s.%s", fileSafe(snap.Details.InvoiceNumber), doc.Template, renderAs)
		path := filepath.Join(renderOutputFile, name)

		w, closeFn, err := openOutput(path)
		if err != nil {
			return err
		}
		if err := writeDocument(w, doc); err != nil {
			closeFn()
			return err
		}
		if err := closeFn(); err != nil {
			return err
		}
		printVerbose("Wrote %s\n", path)
	}
	return nil
}

func writeDocument(w io.Writer, doc *invoicelib.Document) error {
	if renderAs == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)
	}
	return doc.WriteHTML(w)
}

func fileSafe(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "invoice"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, s)
}
