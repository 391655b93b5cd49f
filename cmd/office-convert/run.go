package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-convert/internal/convert"
)

var runCmd = &cobra.Command{
	Use:   "run <jobfile>",
	Short: "Run the conversions listed in a YAML job file",
	Long: `Run reads a YAML job file and converts each job in order, each in its own
office session. The first failing job stops the run.

  jobs:
    - family: text
      path: reports/
      from: .doc
      to: .pdf
    - family: spreadsheet
      path: ledger.xls
      from: .xls
      code: 51`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if initFile, _ := cmd.Flags().GetBool("init"); initFile {
			return writeSampleJobs(args[0])
		}

		jf, err := convert.ReadJobFile(args[0])
		if err != nil {
			return err
		}

		d, cleanup, err := newDriver(os.Stdout)
		if err != nil {
			return err
		}
		defer cleanup()

		_, err = d.RunJobs(jf)
		return err
	},
}

// writeSampleJobs writes a job file with one job per preset, refusing to
// replace an existing file.
func writeSampleJobs(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := convert.WriteJobFile(path, convert.PresetJobs(".")); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func init() {
	runCmd.Flags().Bool("init", false, "write a sample job file to <jobfile> instead of running it")
	rootCmd.AddCommand(runCmd)
}
