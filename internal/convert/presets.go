// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "github.com/pdiddy/office-convert/internal/formats"

// Preset binds a common conversion to fixed target parameters.
type Preset struct {
	Name   string
	Family formats.Family
	From   string // default source extension
	To     string
	Code   formats.Code
	Short  string
}

var (
	PresetDocx = Preset{Name: "docx", Family: formats.Text, From: ".doc", To: ".docx", Code: 12, Short: "Convert Word documents to .docx"}
	PresetMHT  = Preset{Name: "mht", Family: formats.Text, From: ".doc", To: ".mht", Code: 9, Short: "Convert Word documents to single-file web archives"}
	PresetPDF  = Preset{Name: "pdf", Family: formats.Text, From: ".docx", To: ".pdf", Code: 17, Short: "Export Word documents to PDF"}
	PresetXLSX = Preset{Name: "xlsx", Family: formats.Spreadsheet, From: ".xls", To: ".xlsx", Code: 51, Short: "Convert Excel workbooks to .xlsx"}
)

// Presets lists every preset, in CLI order.
var Presets = []Preset{PresetDocx, PresetMHT, PresetPDF, PresetXLSX}

// Request builds the batch request for path. An empty from uses the
// preset's default source extension.
func (p Preset) Request(path, from string) Request {
	if from == "" {
		from = p.From
	}
	code := p.Code
	return Request{Path: path, From: from, To: p.To, Code: &code}
}

// Run converts path with a preset.
func (d *Driver) Run(p Preset, path, from string) (BatchResult, error) {
	return d.Convert(p.Family, p.Request(path, from))
}

// ToDocx converts from-files under path to .docx (wdFormatXMLDocument).
func (d *Driver) ToDocx(path, from string) (BatchResult, error) {
	return d.Run(PresetDocx, path, from)
}

// ToMHT converts from-files under path to .mht (wdFormatWebArchive).
func (d *Driver) ToMHT(path, from string) (BatchResult, error) {
	return d.Run(PresetMHT, path, from)
}

// ToPDF exports from-files under path to .pdf (wdFormatPDF).
func (d *Driver) ToPDF(path, from string) (BatchResult, error) {
	return d.Run(PresetPDF, path, from)
}

// ToXLSX converts from-files under path to .xlsx (xlOpenXMLWorkbook).
func (d *Driver) ToXLSX(path, from string) (BatchResult, error) {
	return d.Run(PresetXLSX, path, from)
}
