// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package formats

// WdSaveFormat values, in the order Word documents them. Constants that
// repeat an earlier code (wdFormatUnicodeText, wdFormatDocument97,
// wdFormatTemplate97) are aliases and never own the reverse mapping.
var textCatalog = []Format{
	{Name: "wdFormatDocument", Code: 0, Ext: ".doc", Description: "Word 97-2003 binary file format", Default: true},
	{Name: "wdFormatDOSText", Code: 4, Ext: ".txt", Description: "DOS text format"},
	{Name: "wdFormatDOSTextLineBreaks", Code: 5, Ext: ".txt", Description: "DOS text with line breaks preserved"},
	{Name: "wdFormatEncodedText", Code: 7, Ext: ".txt", Description: "Encoded text format", Default: true},
	{Name: "wdFormatFilteredHTML", Code: 10, Ext: ".html", Description: "Filtered HTML format"},
	{Name: "wdFormatFlatXML", Code: 19, Ext: ".xml", Description: "Open XML saved as a single XML file"},
	{Name: "wdFormatFlatXMLMacroEnabled", Code: 20, Ext: ".xml", Description: "Open XML with macros saved as a single XML file"},
	{Name: "wdFormatFlatXMLTemplate", Code: 21, Ext: ".xml", Description: "Open XML template saved as a single XML file"},
	{Name: "wdFormatFlatXMLTemplateMacroEnabled", Code: 22, Ext: ".xml", Description: "Open XML template with macros saved as a single XML file"},
	{Name: "wdFormatOpenDocumentText", Code: 23, Ext: ".odt", Description: "OpenDocument Text format", Default: true},
	{Name: "wdFormatHTML", Code: 8, Ext: ".html", Description: "Standard HTML format", Default: true},
	{Name: "wdFormatRTF", Code: 6, Ext: ".rtf", Description: "Rich text format", Default: true},
	{Name: "wdFormatStrictOpenXMLDocument", Code: 24, Ext: ".xml", Description: "Strict Open XML document format"},
	{Name: "wdFormatTemplate", Code: 1, Ext: ".dot", Description: "Word template format", Default: true},
	{Name: "wdFormatText", Code: 2, Ext: ".txt", Description: "Windows text format"},
	{Name: "wdFormatTextLineBreaks", Code: 3, Ext: ".txt", Description: "Windows text with line breaks preserved"},
	{Name: "wdFormatUnicodeText", Code: 7, Ext: ".txt", Description: "Unicode text format"},
	{Name: "wdFormatWebArchive", Code: 9, Ext: ".mht", Description: "Web archive format", Default: true},
	{Name: "wdFormatXML", Code: 11, Ext: ".xml", Description: "Extensible Markup Language format", Default: true},
	{Name: "wdFormatDocument97", Code: 0, Ext: ".doc", Description: "Word 97 document format"},
	{Name: "wdFormatDocumentDefault", Code: 16, Ext: ".docx", Description: "Word default document format"},
	{Name: "wdFormatPDF", Code: 17, Ext: ".pdf", Description: "PDF format", Default: true},
	{Name: "wdFormatTemplate97", Code: 1, Ext: ".dot", Description: "Word 97 template format"},
	{Name: "wdFormatXMLDocument", Code: 12, Ext: ".docx", Description: "XML document format", Default: true},
	{Name: "wdFormatXMLDocumentMacroEnabled", Code: 13, Ext: ".docm", Description: "XML document format with macros enabled", Default: true},
	{Name: "wdFormatXMLTemplate", Code: 14, Ext: ".dotx", Description: "XML template format", Default: true},
	{Name: "wdFormatXMLTemplateMacroEnabled", Code: 15, Ext: ".dotm", Description: "XML template format with macros enabled", Default: true},
	{Name: "wdFormatXPS", Code: 18, Ext: ".xps", Description: "XPS format", Default: true},
}

var textTable = newTable(Text, textCatalog)
