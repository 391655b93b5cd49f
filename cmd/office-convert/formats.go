// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/office-convert/internal/formats"
)

var formatsCmd = &cobra.Command{
	Use:   "formats [family]",
	Short: "List the format codes of each document family",
	Long: `Formats prints the save-format codes the office application understands,
one table per family (text, spreadsheet). A "*" marks the code chosen when a
conversion names only the target extension; other codes must be passed with
--code.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormats,
}

// familyCatalog is the serialized form of one family's table.
type familyCatalog struct {
	Family  formats.Family   `json:"family" yaml:"family"`
	Formats []formats.Format `json:"formats" yaml:"formats"`
}

func runFormats(cmd *cobra.Command, args []string) error {
	families := formats.Families
	if len(args) == 1 {
		f, err := formats.ParseFamily(args[0])
		if err != nil {
			return err
		}
		families = []formats.Family{f}
	}

	catalogs := make([]familyCatalog, 0, len(families))
	for _, f := range families {
		catalogs = append(catalogs, familyCatalog{Family: f, Formats: f.Table().Catalog()})
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	yamlOutput, _ := cmd.Flags().GetBool("yaml")
	switch {
	case jsonOutput:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(catalogs)
	case yamlOutput:
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(catalogs)
	}
	printCatalogs(os.Stdout, catalogs)
	return nil
}

func printCatalogs(w io.Writer, catalogs []familyCatalog) {
	for i, c := range catalogs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)\n", c.Family, c.Family.ProgID())
		fmt.Fprintf(w, "  %6s  %-6s  %-36s  %s\n", "Code", "Ext", "Name", "Description")
		fmt.Fprintln(w, "  "+strings.Repeat("-", 90))
		for _, f := range c.Formats {
			mark := " "
			if f.Default {
				mark = "*"
			}
			ext := f.Ext
			if len(f.Aliases) > 0 {
				ext += "," + strings.Join(f.Aliases, ",")
			}
			fmt.Fprintf(w, "%s %6d  %-6s  %-36s  %s\n", mark, f.Code, ext, f.Name, f.Description)
		}
	}
}

func init() {
	formatsCmd.Flags().Bool("json", false, "output as JSON")
	formatsCmd.Flags().Bool("yaml", false, "output as YAML")
	rootCmd.AddCommand(formatsCmd)
}
