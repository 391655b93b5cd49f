// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package verify checks files written by the office host. Every output must
// exist and be non-empty; PDFs and Open XML workbooks are also parsed.
package verify

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/xuri/excelize/v2"
)

// ErrEmptyOutput is returned for a zero-byte output file.
var ErrEmptyOutput = errors.New("output file is empty")

// workbookExts are the Open XML spreadsheet formats excelize can read.
var workbookExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// Checker verifies output files by extension.
type Checker struct{}

// Verify checks the file at path.
func (Checker) Verify(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("verifying %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("verifying %s: is a directory", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("verifying %s: %w", path, ErrEmptyOutput)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf":
		return verifyPDF(path)
	case workbookExts[ext]:
		return verifyWorkbook(path)
	}
	return nil
}

func verifyPDF(path string) error {
	conf := model.NewDefaultConfiguration()
	if err := api.ValidateFile(path, conf); err != nil {
		return fmt.Errorf("verifying %s: invalid PDF: %w", path, err)
	}
	return nil
}

func verifyWorkbook(path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("verifying %s: unreadable workbook: %w", path, err)
	}
	defer f.Close()

	if len(f.GetSheetList()) == 0 {
		return fmt.Errorf("verifying %s: workbook has no sheets", path)
	}
	return nil
}
