// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package formats holds the save-format code tables of the host office
// application, one per document family, and resolves a conversion target
// (extension or explicit code) into the pair the host needs.
//
// Tables are built once at package initialization and never mutated.
package formats

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Code is a save-format identifier defined by the host application
// (WdSaveFormat for text documents, XlFileFormat for spreadsheets).
type Code int

// Family identifies a document family. Each family has its own code space.
type Family string

const (
	Text        Family = "text"
	Spreadsheet Family = "spreadsheet"
)

// Families lists the supported families in display order.
var Families = []Family{Text, Spreadsheet}

var (
	// ErrUnsupportedExtension is returned when a target extension has no
	// format code in the family table.
	ErrUnsupportedExtension = errors.New("unsupported target extension")

	// ErrUnknownCode is returned when an explicit format code has no
	// canonical extension in the family table.
	ErrUnknownCode = errors.New("unknown format code")

	// ErrUnknownFamily is returned by ParseFamily for unrecognized names.
	ErrUnknownFamily = errors.New("unknown document family")
)

// ParseFamily maps a user-supplied name to a Family. It accepts the
// application names as aliases ("word", "excel").
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "word", "doc", "document":
		return Text, nil
	case "spreadsheet", "excel", "xls", "workbook":
		return Spreadsheet, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// ProgID returns the automation program identifier of the host application
// serving this family.
func (f Family) ProgID() string {
	if f == Spreadsheet {
		return "Excel.Application"
	}
	return "Word.Application"
}

// Collection returns the name of the host's open-document collection.
func (f Family) Collection() string {
	if f == Spreadsheet {
		return "Workbooks"
	}
	return "Documents"
}

// Table returns the code table for the family.
func (f Family) Table() *Table {
	if f == Spreadsheet {
		return spreadsheetTable
	}
	return textTable
}

// Format describes one documented save format of the host application.
type Format struct {
	// Name is the host's enumeration constant, e.g. "wdFormatXMLDocument".
	Name string `json:"name" yaml:"name"`

	// Code is the numeric value passed to save-as.
	Code Code `json:"code" yaml:"code"`

	// Ext is the canonical extension written for this code.
	Ext string `json:"ext" yaml:"ext"`

	// Description is the host's short description of the format.
	Description string `json:"description" yaml:"description"`

	// Default marks the format chosen when a caller asks for Ext without
	// an explicit code.
	Default bool `json:"default,omitempty" yaml:"default,omitempty"`

	// Aliases are extra target extensions that select this format.
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Target is a resolved conversion target.
type Target struct {
	Ext  string
	Code Code
}

// Table maps extensions to codes and back for one family.
type Table struct {
	family  Family
	catalog []Format
	forward map[string]Code
	reverse map[Code]string
}

// newTable builds the forward and reverse mappings from a catalog. The
// forward mapping takes every Default entry and its aliases. The reverse
// mapping takes the first catalog entry for each code, so later constants
// that share a code are aliases and never override it.
func newTable(family Family, catalog []Format) *Table {
	t := &Table{
		family:  family,
		catalog: catalog,
		forward: make(map[string]Code),
		reverse: make(map[Code]string),
	}
	for _, f := range catalog {
		if _, ok := t.reverse[f.Code]; !ok && f.Ext != "" {
			t.reverse[f.Code] = f.Ext
		}
		if !f.Default {
			continue
		}
		for _, ext := range append([]string{f.Ext}, f.Aliases...) {
			if prev, dup := t.forward[ext]; dup {
				panic(fmt.Sprintf("formats: %s extension %s mapped twice (%d, %d)", family, ext, prev, f.Code))
			}
			t.forward[ext] = f.Code
		}
	}
	return t
}

// Family returns the family the table belongs to.
func (t *Table) Family() Family { return t.family }

// Catalog returns a copy of every documented format, in host documentation order.
func (t *Table) Catalog() []Format {
	out := make([]Format, len(t.catalog))
	copy(out, t.catalog)
	return out
}

// Extensions returns the supported target extensions, sorted.
func (t *Table) Extensions() []string {
	exts := make([]string, 0, len(t.forward))
	for ext := range t.forward {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// CodeFor looks up the format code for a target extension.
func (t *Table) CodeFor(ext string) (Code, bool) {
	c, ok := t.forward[NormalizeExt(ext)]
	return c, ok
}

// ExtFor looks up the canonical extension for a format code.
func (t *Table) ExtFor(code Code) (string, bool) {
	ext, ok := t.reverse[code]
	return ext, ok
}

// Resolve turns a target selector into a Target. When code is nil the
// extension is looked up in the forward mapping. When code is set the
// canonical extension for that code replaces ext, whatever the caller passed.
func (t *Table) Resolve(ext string, code *Code) (Target, error) {
	if code == nil {
		norm := NormalizeExt(ext)
		c, ok := t.forward[norm]
		if !ok {
			return Target{}, fmt.Errorf("%w: %s has no %s format for %q", ErrUnsupportedExtension, t.family.ProgID(), t.family, norm)
		}
		return Target{Ext: norm, Code: c}, nil
	}
	canonical, ok := t.reverse[*code]
	if !ok {
		return Target{}, fmt.Errorf("%w: %d is not a known %s format", ErrUnknownCode, *code, t.family)
	}
	return Target{Ext: canonical, Code: *code}, nil
}

// NormalizeExt lowercases an extension and ensures a leading dot.
// An empty string stays empty.
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
