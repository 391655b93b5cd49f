// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the office-convert CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/office-convert/internal/convert"
	"github.com/pdiddy/office-convert/internal/history"
	"github.com/pdiddy/office-convert/internal/office"
	"github.com/pdiddy/office-convert/internal/verify"
	"github.com/pdiddy/office-convert/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the office-convert CLI. Run without a
// subcommand it converts every .doc in the current directory to .docx.
var rootCmd = &cobra.Command{
	Use:   "office-convert",
	Short: "Batch-convert office documents through Word, Excel, or LibreOffice",
	Long: `office-convert opens documents in an office application, saves them in
another format with the application's own "save as", and closes them. Word
documents and Excel workbooks are supported; each has its own table of
format codes (see "office-convert formats").

Outputs are written next to their inputs with only the extension changed.
Run without a subcommand to convert every .doc in the current directory
to .docx.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreset(convert.PresetDocx, ".", "")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./office-convert.yaml or ~/.config/office-convert/office-convert.yaml)")
	pf.String("backend", office.BackendAuto, "office host: auto, com, soffice, or libreoffice")
	pf.String("soffice-path", "", "LibreOffice binary for the soffice backends (default: looked up on PATH)")
	pf.String("history", "", "SQLite journal of conversions (empty disables journaling)")
	pf.Bool("verify", false, "check every output file after it is saved")

	viper.BindPFlag("backend", pf.Lookup("backend"))
	viper.BindPFlag("soffice_path", pf.Lookup("soffice-path"))
	viper.BindPFlag("history", pf.Lookup("history"))
	viper.BindPFlag("verify", pf.Lookup("verify"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("office-convert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "office-convert"))
		}
	}

	viper.SetEnvPrefix("OFFICE_CONVERT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig reads the merged flag, file, and environment settings.
func loadConfig() (types.ConvertConfig, error) {
	var cfg types.ConvertConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

// newDriver builds a conversion driver from the configuration. The returned
// cleanup closes the history journal, if one was opened.
func newDriver(out io.Writer) (*convert.Driver, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	d := &convert.Driver{
		Host: office.Lazy(cfg.Backend, cfg.SofficePath),
		Out:  out,
	}
	if cfg.Verify {
		d.Verifier = verify.Checker{}
	}

	cleanup := func() {}
	if cfg.HistoryPath != "" {
		store, err := history.Open(cfg.HistoryPath)
		if err != nil {
			return nil, nil, err
		}
		d.Recorder = store
		cleanup = func() { store.Close() }
	}
	return d, cleanup, nil
}

// pathArg returns the optional path argument, defaulting to the current directory.
func pathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
