// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs batch conversions through an office host: it resolves
// the input files, resolves the target format once, then opens, saves and
// closes every file inside a single host session.
package convert

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/office-convert/internal/formats"
	"github.com/pdiddy/office-convert/internal/office"
	"github.com/pdiddy/office-convert/pkg/types"
)

// Recorder journals converted files. Implemented by history.Store.
type Recorder interface {
	Record(c types.Conversion) error
}

// Verifier checks an output file after save-as. Implemented by verify.Checker.
type Verifier interface {
	Verify(path string) error
}

// Request describes one batch.
type Request struct {
	// Path is a file or a directory.
	Path string

	// From is the source extension filter, e.g. ".doc".
	From string

	// To is the target extension. Ignored when Code is set.
	To string

	// Code is an explicit host format code. When set, its canonical
	// extension replaces To.
	Code *formats.Code
}

// BatchResult holds the outcome of a batch.
type BatchResult struct {
	Batch   string
	Family  formats.Family
	Target  formats.Target
	Outputs []string
}

// Converted returns the number of files written.
func (r BatchResult) Converted() int {
	return len(r.Outputs)
}

// Driver converts batches through Host. Out receives per-file progress and
// must be non-nil. Recorder and Verifier are optional.
type Driver struct {
	Host     office.Host
	Out      io.Writer
	Recorder Recorder
	Verifier Verifier
}

// Text converts word-processor documents.
func (d *Driver) Text(req Request) (BatchResult, error) {
	return d.Convert(formats.Text, req)
}

// Spreadsheet converts workbooks. Host alerts are suppressed for the session.
func (d *Driver) Spreadsheet(req Request) (BatchResult, error) {
	return d.Convert(formats.Spreadsheet, req)
}

// Convert runs one batch for family. The target is resolved once, before
// the host is launched, and applies to every file in the batch. When no file
// matches, the host is never launched. Otherwise the session is released on
// every exit path, and the first failing file aborts the rest of the batch.
func (d *Driver) Convert(family formats.Family, req Request) (BatchResult, error) {
	files, err := ResolveFiles(req.Path, req.From)
	if err != nil {
		return BatchResult{}, err
	}

	target, err := family.Table().Resolve(req.To, req.Code)
	if err != nil {
		return BatchResult{}, err
	}

	result := BatchResult{
		Batch:  newBatchID(),
		Family: family,
		Target: target,
	}
	if len(files) == 0 {
		fmt.Fprintf(d.Out, "no %s files to convert in %s\n", sourceExt(req.From), req.Path)
		return result, nil
	}

	err = office.WithSession(d.Host, family, func(app office.Application) error {
		if family == formats.Spreadsheet {
			if err := app.SetDisplayAlerts(false); err != nil {
				return err
			}
		}
		for _, f := range files {
			out, err := d.convertFile(app, result, f)
			if err != nil {
				return err
			}
			result.Outputs = append(result.Outputs, out)
		}
		return nil
	})

	fmt.Fprintf(d.Out, "\nBatch summary: %d of %d converted to %s (format %d) via %s\n",
		result.Converted(), len(files), target.Ext, target.Code, d.Host.Name())
	return result, err
}

// convertFile runs open, save-as and close for one file and returns the
// output path.
func (d *Driver) convertFile(app office.Application, batch BatchResult, file string) (string, error) {
	src, err := filepath.Abs(file)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", file, err)
	}
	out := OutputPath(src, batch.Target.Ext)

	fmt.Fprintf(d.Out, "converting: %s...\n", src)
	err = saveAs(app, src, out, batch.Target.Code)
	if err == nil && d.Verifier != nil {
		err = d.Verifier.Verify(out)
	}
	d.record(batch, src, out, err)
	if err != nil {
		fmt.Fprintf(d.Out, "failed:  %s (%v)\n", src, err)
		return "", err
	}

	fmt.Fprintf(d.Out, "done: %s\n", out)
	return out, nil
}

// saveAs opens src, saves it to out, and always closes it.
func saveAs(app office.Application, src, out string, code formats.Code) (err error) {
	doc, err := app.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", src, cerr)
		}
	}()
	return doc.SaveAs(out, code)
}

func (d *Driver) record(batch BatchResult, src, out string, convErr error) {
	if d.Recorder == nil {
		return
	}
	c := types.Conversion{
		Batch:       batch.Batch,
		Family:      string(batch.Family),
		Backend:     d.Host.Name(),
		Source:      src,
		Output:      out,
		Code:        int(batch.Target.Code),
		Ext:         batch.Target.Ext,
		Status:      types.ConversionDone,
		ConvertedAt: time.Now().UTC(),
	}
	if convErr != nil {
		c.Status = types.ConversionFailed
		c.Error = convErr.Error()
	}
	if err := d.Recorder.Record(c); err != nil {
		fmt.Fprintf(d.Out, "warning: could not record %s: %v\n", src, err)
	}
}

// OutputPath replaces the extension of src with ext. The output always lands
// next to the input.
func OutputPath(src, ext string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ext
}

func newBatchID() string {
	return time.Now().UTC().Format("20060102T150405.000000000Z")
}
