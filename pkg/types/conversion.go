// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of converting one file.
type ConversionStatus string

const (
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// Conversion records one file passed through the office host.
type Conversion struct {
	// Batch identifies the session the file was converted in.
	Batch string `json:"batch" yaml:"batch"`

	// Family is the document family ("text" or "spreadsheet").
	Family string `json:"family" yaml:"family"`

	// Backend is the office host that performed the conversion.
	Backend string `json:"backend" yaml:"backend"`

	// Source is the absolute path of the input file.
	Source string `json:"source" yaml:"source"`

	// Output is the absolute path written by save-as.
	Output string `json:"output" yaml:"output"`

	// Code is the host format code passed to save-as.
	Code int `json:"code" yaml:"code"`

	// Ext is the target extension, dot-prefixed.
	Ext string `json:"ext" yaml:"ext"`

	Status ConversionStatus `json:"status" yaml:"status"`

	// Error holds the failure message when Status is failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
