//go:build mage

// Package main contains Mage build targets for office-convert developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/office-convert/internal/convert"
)

const (
	binDir  = "bin"
	binName = "office-convert"
	cmdPkg  = "./cmd/office-convert"
)

// sampleConfig is written by Init when no config file exists.
const sampleConfig = `# office-convert configuration
backend: auto        # auto, com, soffice, or libreoffice
# soffice_path: /usr/bin/soffice
# history: .office-convert/history.db
verify: false
`

// Init writes a sample office-convert.yaml and jobs.yaml into the current
// directory, leaving existing files alone.
func Init() error {
	if err := writeIfMissing("office-convert.yaml", func(name string) error {
		return os.WriteFile(name, []byte(sampleConfig), 0o644)
	}); err != nil {
		return err
	}
	return writeIfMissing("jobs.yaml", func(name string) error {
		return convert.WriteJobFile(name, convert.PresetJobs("."))
	})
}

func writeIfMissing(name string, write func(string) error) error {
	if _, err := os.Stat(name); err == nil {
		fmt.Println("  exists:", name)
		return nil
	}
	if err := write(name); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	fmt.Println("  wrote:", name)
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Formats builds the CLI and prints both format code tables.
func Formats() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "formats")
}

// Stats prints project metrics: Go production/test LOC and Markdown word count.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}
	docWords, err := countDocWords(".")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (documentation):           %d\n", docWords)
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return skipIgnored(path, info)
		}
		if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}

// countDocWords walks the tree and counts words in Markdown files.
func countDocWords(root string) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return skipIgnored(path, info)
		}
		ext := filepath.Ext(path)
		if ext != ".md" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		total += len(strings.Fields(string(data)))
		return nil
	})
	return total, err
}

// skipIgnored skips directories the go tool ignores (leading "_" or ".").
func skipIgnored(path string, info os.FileInfo) error {
	name := info.Name()
	if path != "." && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
		return filepath.SkipDir
	}
	return nil
}
