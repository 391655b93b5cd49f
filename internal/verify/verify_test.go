// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package verify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// onePagePDF builds a single-page PDF with a correct cross-reference table.
func onePagePDF(text string) []byte {
	stream := fmt.Sprintf("BT\n/F1 12 Tf\n72 720 Td\n(%s) Tj\nET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return []byte(b.String())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()

	book := excelize.NewFile()
	bookPath := filepath.Join(dir, "ledger.xlsx")
	require.NoError(t, book.SetCellValue("Sheet1", "A1", "total"))
	require.NoError(t, book.SaveAs(bookPath))
	require.NoError(t, book.Close())

	pdfPath := filepath.Join(dir, "memo.pdf")
	require.NoError(t, os.WriteFile(pdfPath, onePagePDF("quarterly memo"), 0o644))

	tests := []struct {
		name    string
		path    string
		wantErr error
		wantMsg string
	}{
		{name: "valid workbook", path: bookPath},
		{name: "valid pdf", path: pdfPath},
		{name: "other formats only need content", path: writeFile(t, dir, "memo.docx", "PK")},
		{name: "empty output", path: writeFile(t, dir, "empty.rtf", ""), wantErr: ErrEmptyOutput},
		{name: "missing output", path: filepath.Join(dir, "missing.docx"), wantErr: os.ErrNotExist},
		{name: "corrupt workbook", path: writeFile(t, dir, "broken.xlsm", "not a zip"), wantMsg: "unreadable workbook"},
		{name: "corrupt pdf", path: writeFile(t, dir, "broken.pdf", "not a pdf"), wantMsg: "invalid PDF"},
		{name: "directory", path: dir, wantMsg: "is a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Checker{}.Verify(tt.path)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantMsg)
			default:
				require.NoError(t, err)
			}
		})
	}
}
