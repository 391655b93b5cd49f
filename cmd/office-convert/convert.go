package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-convert/internal/convert"
	"github.com/pdiddy/office-convert/internal/formats"
)

var wordCmd = &cobra.Command{
	Use:   "word [path]",
	Short: "Convert Word documents to another format",
	Long: `Word opens every file under path whose extension matches --from, saves it
with the format selected by --to or --code, and closes it. path is a file
or a directory (not recursive) and defaults to the current directory.

--code takes a WdSaveFormat value and overrides --to; the output extension
becomes the canonical extension for that code.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFamily(formats.Text),
}

var excelCmd = &cobra.Command{
	Use:   "excel [path]",
	Short: "Convert Excel workbooks to another format",
	Long: `Excel opens every file under path whose extension matches --from, saves it
with the format selected by --to or --code, and closes it. Excel alerts are
suppressed for the whole batch. path defaults to the current directory.

--code takes an XlFileFormat value and overrides --to.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFamily(formats.Spreadsheet),
}

func runFamily(family formats.Family) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		req := convert.Request{Path: pathArg(args), From: from, To: to}
		if cmd.Flags().Changed("code") {
			v, _ := cmd.Flags().GetInt("code")
			code := formats.Code(v)
			req.Code = &code
		}

		d, cleanup, err := newDriver(os.Stdout)
		if err != nil {
			return err
		}
		defer cleanup()

		_, err = d.Convert(family, req)
		return err
	}
}

// runPreset converts path with a preset through a driver built from the
// configuration.
func runPreset(p convert.Preset, path, from string) error {
	d, cleanup, err := newDriver(os.Stdout)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = d.Run(p, path, from)
	return err
}

// presetCmd builds the subcommand for a preset.
func presetCmd(p convert.Preset) *cobra.Command {
	cmd := &cobra.Command{
		Use:   p.Name + " [path]",
		Short: p.Short,
		Long: "Converts every " + p.From + " file under path (default: current directory)\n" +
			"to " + p.To + ". Use --from to pick another source extension.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			return runPreset(p, pathArg(args), from)
		},
	}
	cmd.Flags().String("from", p.From, "source extension")
	return cmd
}

func init() {
	wordCmd.Flags().String("from", ".doc", "source extension")
	wordCmd.Flags().String("to", ".docx", "target extension")
	wordCmd.Flags().Int("code", 0, "WdSaveFormat code (overrides --to)")

	excelCmd.Flags().String("from", ".xls", "source extension")
	excelCmd.Flags().String("to", ".xlsx", "target extension")
	excelCmd.Flags().Int("code", 0, "XlFileFormat code (overrides --to)")

	rootCmd.AddCommand(wordCmd, excelCmd)
	for _, p := range convert.Presets {
		rootCmd.AddCommand(presetCmd(p))
	}
}
