// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codePtr(c Code) *Code { return &c }

// Extensions whose forward code reverse-resolves to a different canonical
// extension. These are expected, not bugs.
var nonBijective = map[Family]map[string]string{
	Text:        {},
	Spreadsheet: {".htm": ".html"},
}

func TestRoundTrip(t *testing.T) {
	for _, fam := range Families {
		t.Run(string(fam), func(t *testing.T) {
			table := fam.Table()
			for _, ext := range table.Extensions() {
				code, ok := table.CodeFor(ext)
				require.True(t, ok, "forward lookup for %s", ext)

				back, ok := table.ExtFor(code)
				require.True(t, ok, "reverse lookup for %s code %d", ext, code)

				want := ext
				if alt, exception := nonBijective[fam][ext]; exception {
					want = alt
				}
				assert.Equal(t, want, back, "%s -> %d -> %s", ext, code, back)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		family  Family
		ext     string
		code    *Code
		want    Target
		wantErr error
	}{
		{name: "docx by extension", family: Text, ext: ".docx", want: Target{Ext: ".docx", Code: 12}},
		{name: "extension without dot", family: Text, ext: "pdf", want: Target{Ext: ".pdf", Code: 17}},
		{name: "uppercase extension", family: Text, ext: ".RTF", want: Target{Ext: ".rtf", Code: 6}},
		{name: "odt uses OpenDocument text", family: Text, ext: ".odt", want: Target{Ext: ".odt", Code: 23}},
		{name: "explicit code overrides extension", family: Text, ext: ".pdf", code: codePtr(9), want: Target{Ext: ".mht", Code: 9}},
		{name: "document default code maps to docx", family: Text, code: codePtr(16), want: Target{Ext: ".docx", Code: 16}},
		{name: "legacy text code collapses to txt", family: Text, code: codePtr(4), want: Target{Ext: ".txt", Code: 4}},
		{name: "unsupported text extension", family: Text, ext: ".xlsx", wantErr: ErrUnsupportedExtension},
		{name: "unknown text code", family: Text, ext: ".docx", code: codePtr(99), wantErr: ErrUnknownCode},
		{name: "xlsx by extension", family: Spreadsheet, ext: ".xlsx", want: Target{Ext: ".xlsx", Code: 51}},
		{name: "csv defaults to utf8", family: Spreadsheet, ext: ".csv", want: Target{Ext: ".csv", Code: 62}},
		{name: "htm alias", family: Spreadsheet, ext: ".htm", want: Target{Ext: ".htm", Code: 44}},
		{name: "html code canonical extension", family: Spreadsheet, code: codePtr(44), want: Target{Ext: ".html", Code: 44}},
		{name: "negative workbook normal code", family: Spreadsheet, code: codePtr(-4143), want: Target{Ext: ".xls", Code: -4143}},
		{name: "excel 97 code", family: Spreadsheet, ext: ".xlsx", code: codePtr(56), want: Target{Ext: ".xls", Code: 56}},
		{name: "unsupported spreadsheet extension", family: Spreadsheet, ext: ".docx", wantErr: ErrUnsupportedExtension},
		{name: "empty extension", family: Spreadsheet, ext: "", wantErr: ErrUnsupportedExtension},
		{name: "unknown spreadsheet code", family: Spreadsheet, code: codePtr(12), wantErr: ErrUnknownCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.family.Table().Resolve(tt.ext, tt.code)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReverseSkipsAliasConstants(t *testing.T) {
	// wdFormatUnicodeText shares 7 with wdFormatEncodedText; both are .txt,
	// but the first constant owns the code.
	ext, ok := Text.Table().ExtFor(7)
	require.True(t, ok)
	assert.Equal(t, ".txt", ext)

	ext, ok = Spreadsheet.Table().ExtFor(18)
	require.True(t, ok)
	assert.Equal(t, ".xla", ext)

	_, ok = Spreadsheet.Table().CodeFor(".prn")
	assert.False(t, ok, ".prn is reverse-only")
	ext, ok = Spreadsheet.Table().ExtFor(36)
	require.True(t, ok)
	assert.Equal(t, ".prn", ext)
}

func TestCatalogIsCopy(t *testing.T) {
	cat := Text.Table().Catalog()
	require.NotEmpty(t, cat)
	cat[0].Ext = ".mutated"

	assert.Equal(t, ".doc", Text.Table().Catalog()[0].Ext)
	code, ok := Text.Table().CodeFor(".doc")
	require.True(t, ok)
	assert.Equal(t, Code(0), code)
}

func TestCatalogExtensionsNormalized(t *testing.T) {
	for _, fam := range Families {
		for _, f := range fam.Table().Catalog() {
			assert.Equal(t, NormalizeExt(f.Ext), f.Ext, "%s %s", fam, f.Name)
			for _, a := range f.Aliases {
				assert.Equal(t, NormalizeExt(a), a, "%s %s alias", fam, f.Name)
			}
		}
	}
}

func TestParseFamily(t *testing.T) {
	tests := []struct {
		in      string
		want    Family
		wantErr bool
	}{
		{in: "text", want: Text},
		{in: "Word", want: Text},
		{in: "spreadsheet", want: Spreadsheet},
		{in: " excel ", want: Spreadsheet},
		{in: "slides", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFamily(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFamily)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFamilyHost(t *testing.T) {
	assert.Equal(t, "Word.Application", Text.ProgID())
	assert.Equal(t, "Documents", Text.Collection())
	assert.Equal(t, "Excel.Application", Spreadsheet.ProgID())
	assert.Equal(t, "Workbooks", Spreadsheet.Collection())
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, ".doc", NormalizeExt("doc"))
	assert.Equal(t, ".doc", NormalizeExt(".DOC"))
	assert.Equal(t, ".doc", NormalizeExt("  .doc "))
	assert.Equal(t, "", NormalizeExt(""))
}
