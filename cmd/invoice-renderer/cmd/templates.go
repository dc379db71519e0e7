package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates",
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	templates := newRenderer().Templates()

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(templates)
	}

	defaultID := cfg.TemplateID()
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	fmt.Fprintln(tw, "--\t----\t-----------")
	for _, t := range templates {
		name := t.Name
		if t.ID == defaultID {
			name += " (default)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, name, t.Description)
	}
	return tw.Flush()
}
