// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package formats

// XlFileFormat values, in the order Excel documents them. Where several
// constants write the same extension, the Default entry is the one a bare
// extension selects (UTF-8 CSV, dBase 4, Unicode text, and so on).
var spreadsheetCatalog = []Format{
	{Name: "xlAddIn", Code: 18, Ext: ".xla", Description: "Excel 97-2003 add-in"},
	{Name: "xlAddIn8", Code: 18, Ext: ".xla", Description: "Excel 97-2003 add-in"},
	{Name: "xlCSV", Code: 6, Ext: ".csv", Description: "CSV"},
	{Name: "xlCSVMac", Code: 22, Ext: ".csv", Description: "Macintosh CSV"},
	{Name: "xlCSVMSDOS", Code: 24, Ext: ".csv", Description: "MSDOS CSV"},
	{Name: "xlCSVUTF8", Code: 62, Ext: ".csv", Description: "UTF8 CSV", Default: true},
	{Name: "xlCSVWindows", Code: 23, Ext: ".csv", Description: "Windows CSV"},
	{Name: "xlCurrentPlatformText", Code: -4158, Ext: ".txt", Description: "Current platform text"},
	{Name: "xlDBF2", Code: 7, Ext: ".dbf", Description: "Dbase 2 format"},
	{Name: "xlDBF3", Code: 8, Ext: ".dbf", Description: "Dbase 3 format"},
	{Name: "xlDBF4", Code: 11, Ext: ".dbf", Description: "Dbase 4 format", Default: true},
	{Name: "xlDIF", Code: 9, Ext: ".dif", Description: "Data Interchange format", Default: true},
	{Name: "xlExcel12", Code: 50, Ext: ".xlsb", Description: "Excel Binary Workbook", Default: true},
	{Name: "xlExcel2", Code: 16, Ext: ".xls", Description: "Excel version 2.0 (1987)"},
	{Name: "xlExcel2FarEast", Code: 27, Ext: ".xls", Description: "Excel version 2.0 Asia (1987)"},
	{Name: "xlExcel3", Code: 29, Ext: ".xls", Description: "Excel version 3.0 (1990)"},
	{Name: "xlExcel4", Code: 33, Ext: ".xls", Description: "Excel version 4.0 (1992)"},
	{Name: "xlExcel4Workbook", Code: 35, Ext: ".xlw", Description: "Excel version 4.0 workbook format (1992)", Default: true},
	{Name: "xlExcel5", Code: 39, Ext: ".xls", Description: "Excel version 5.0 (1994)"},
	{Name: "xlExcel7", Code: 39, Ext: ".xls", Description: "Excel 95 (version 7.0)"},
	{Name: "xlExcel8", Code: 56, Ext: ".xls", Description: "Excel 97-2003 Workbook"},
	{Name: "xlExcel9795", Code: 43, Ext: ".xls", Description: "Excel version 95 and 97"},
	{Name: "xlHtml", Code: 44, Ext: ".html", Description: "HTML format", Default: true, Aliases: []string{".htm"}},
	{Name: "xlIntlAddIn", Code: 26, Ext: ".xla", Description: "International Add-In", Default: true},
	{Name: "xlIntlMacro", Code: 25, Ext: ".xla", Description: "International Macro"},
	{Name: "xlOpenDocumentSpreadsheet", Code: 60, Ext: ".ods", Description: "OpenDocument Spreadsheet", Default: true},
	{Name: "xlOpenXMLAddIn", Code: 55, Ext: ".xlam", Description: "Open XML Add-In", Default: true},
	{Name: "xlOpenXMLStrictWorkbook", Code: 61, Ext: ".xlsx", Description: "Strict Open XML file"},
	{Name: "xlOpenXMLTemplate", Code: 54, Ext: ".xltx", Description: "Open XML Template", Default: true},
	{Name: "xlOpenXMLTemplateMacroEnabled", Code: 53, Ext: ".xltm", Description: "Open XML Template Macro Enabled", Default: true},
	{Name: "xlOpenXMLWorkbook", Code: 51, Ext: ".xlsx", Description: "Open XML Workbook", Default: true},
	{Name: "xlOpenXMLWorkbookMacroEnabled", Code: 52, Ext: ".xlsm", Description: "Open XML Workbook Macro Enabled", Default: true},
	{Name: "xlSYLK", Code: 2, Ext: ".slk", Description: "Symbolic Link format", Default: true},
	{Name: "xlTemplate", Code: 17, Ext: ".xlt", Description: "Excel Template format", Default: true},
	{Name: "xlTemplate8", Code: 17, Ext: ".xlt", Description: "Template 8"},
	{Name: "xlTextMac", Code: 19, Ext: ".txt", Description: "Macintosh Text"},
	{Name: "xlTextMSDOS", Code: 21, Ext: ".txt", Description: "MSDOS Text"},
	{Name: "xlTextPrinter", Code: 36, Ext: ".prn", Description: "Printer Text"},
	{Name: "xlTextWindows", Code: 20, Ext: ".txt", Description: "Windows Text"},
	{Name: "xlUnicodeText", Code: 42, Ext: ".txt", Description: "Unicode Text", Default: true},
	{Name: "xlWebArchive", Code: 45, Ext: ".mht", Description: "Web Archive", Default: true},
	{Name: "xlWJ2WD1", Code: 14, Ext: ".wj2", Description: "Japanese 1-2-3", Default: true},
	{Name: "xlWJ3", Code: 40, Ext: ".wj3", Description: "Japanese 1-2-3"},
	{Name: "xlWJ3FJ3", Code: 41, Ext: ".wj3", Description: "Japanese 1-2-3 format", Default: true},
	{Name: "xlWK1", Code: 5, Ext: ".wk1", Description: "Lotus 1-2-3 format"},
	{Name: "xlWK1ALL", Code: 31, Ext: ".wk1", Description: "Lotus 1-2-3 format", Default: true},
	{Name: "xlWK1FMT", Code: 30, Ext: ".wk1", Description: "Lotus 1-2-3 format"},
	{Name: "xlWK3", Code: 15, Ext: ".wk3", Description: "Lotus 1-2-3 format"},
	{Name: "xlWK3FM3", Code: 32, Ext: ".wk3", Description: "Lotus 1-2-3 format", Default: true},
	{Name: "xlWK4", Code: 38, Ext: ".wk4", Description: "Lotus 1-2-3 format", Default: true},
	{Name: "xlWKS", Code: 4, Ext: ".wks", Description: "Lotus 1-2-3 format"},
	{Name: "xlWorkbookDefault", Code: 51, Ext: ".xlsx", Description: "Workbook default"},
	{Name: "xlWorkbookNormal", Code: -4143, Ext: ".xls", Description: "Workbook normal", Default: true},
	{Name: "xlWorks2FarEast", Code: 28, Ext: ".wks", Description: "Microsoft Works 2.0 far east format", Default: true},
	{Name: "xlWQ1", Code: 34, Ext: ".wq1", Description: "Quattro Pro format", Default: true},
	{Name: "xlXMLSpreadsheet", Code: 46, Ext: ".xml", Description: "XML Spreadsheet", Default: true},
}

var spreadsheetTable = newTable(Spreadsheet, spreadsheetCatalog)
