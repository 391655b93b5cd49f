// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package office

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/office-convert/internal/formats"
)

// exportFilters maps host format codes to LibreOffice --convert-to targets.
// Codes missing here are converted by bare extension and LibreOffice picks
// its default export filter for it.
var exportFilters = map[formats.Family]map[formats.Code]string{
	formats.Text: {
		0:  "doc:MS Word 97",
		2:  "txt:Text",
		6:  "rtf:Rich Text Format",
		7:  "txt:Text (encoded):UTF8",
		8:  "html:HTML (StarWriter)",
		10: "html:HTML (StarWriter)",
		12: "docx:MS Word 2007 XML",
		16: "docx:MS Word 2007 XML",
		17: "pdf:writer_pdf_Export",
		23: "odt:writer8",
	},
	formats.Spreadsheet: {
		-4143: "xls:MS Excel 97",
		6:     "csv:Text - txt - csv (StarCalc):44,34,ANSI",
		44:    "html:HTML (StarCalc)",
		51:    "xlsx:Calc MS Excel 2007 XML",
		56:    "xls:MS Excel 97",
		60:    "ods:calc8",
		62:    "csv:Text - txt - csv (StarCalc):44,34,76",
	},
}

// exportFilter returns the --convert-to argument for a code and the
// extension LibreOffice will write.
func exportFilter(family formats.Family, code formats.Code, ext string) (filter, written string) {
	if f, ok := exportFilters[family][code]; ok {
		return f, "." + strings.SplitN(f, ":", 2)[0]
	}
	return strings.TrimPrefix(ext, "."), ext
}

// sofficeHost converts through the LibreOffice command-line converter. The
// binary is invoked once per saved document; the "application" is an
// isolated user profile that lives for one session.
type sofficeHost struct {
	name string
	bin  string
	exec executor
}

func newSofficeHost(name, bin string, exec executor) *sofficeHost {
	return &sofficeHost{name: name, bin: bin, exec: exec}
}

func (h *sofficeHost) Name() string { return h.name }

func (h *sofficeHost) Available() bool {
	if _, err := h.exec.LookPath(h.bin); err != nil {
		return false
	}
	return h.exec.RunSilent(h.bin, "--version") == nil
}

func (h *sofficeHost) Launch(family formats.Family) (Application, error) {
	profile, err := os.MkdirTemp("", "office-convert-profile-")
	if err != nil {
		return nil, fmt.Errorf("creating %s profile: %w", h.name, err)
	}
	return &sofficeApp{host: h, family: family, profile: profile}, nil
}

type sofficeApp struct {
	host    *sofficeHost
	family  formats.Family
	profile string
}

func (a *sofficeApp) Open(path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("opening %s: is a directory", path)
	}
	return &sofficeDoc{app: a, path: path}, nil
}

// SetDisplayAlerts is a no-op: headless LibreOffice never prompts.
func (a *sofficeApp) SetDisplayAlerts(bool) error { return nil }

func (a *sofficeApp) Quit() error {
	if err := os.RemoveAll(a.profile); err != nil {
		return fmt.Errorf("removing %s profile: %w", a.host.name, err)
	}
	return nil
}

type sofficeDoc struct {
	app  *sofficeApp
	path string
}

func (d *sofficeDoc) SaveAs(path string, code formats.Code) error {
	h := d.app.host
	filter, written := exportFilter(d.app.family, code, filepath.Ext(path))
	outDir := filepath.Dir(path)
	stem := strings.TrimSuffix(filepath.Base(d.path), filepath.Ext(d.path))
	produced := filepath.Join(outDir, stem+written)

	// soffice exits 0 when it cannot load a source, so a leftover output
	// would pass for a fresh one. The source itself is never removed.
	if produced != d.path {
		if err := os.Remove(produced); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing stale %s: %w", produced, err)
		}
	}

	args := []string{
		"--headless",
		"--norestore",
		"-env:UserInstallation=" + fileURL(d.app.profile),
		"--convert-to", filter,
		"--outdir", outDir,
		d.path,
	}
	out, err := h.exec.RunCombined(h.bin, args...)
	if err != nil {
		return fmt.Errorf("%s --convert-to %s %s: %w: %s", h.name, filter, d.path, err, bytes.TrimSpace(out))
	}

	if _, err := os.Stat(produced); err != nil {
		return fmt.Errorf("%s produced no output for %s: %s", h.name, d.path, bytes.TrimSpace(out))
	}
	if produced != path {
		if err := os.Rename(produced, path); err != nil {
			return fmt.Errorf("moving %s to %s: %w", produced, path, err)
		}
	}
	return nil
}

func (d *sofficeDoc) Close() error { return nil }

// fileURL renders a local directory as a file:// URL, the form LibreOffice
// expects for -env:UserInstallation.
func fileURL(dir string) string {
	p := filepath.ToSlash(dir)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}
