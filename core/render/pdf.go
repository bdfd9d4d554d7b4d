// Package render — PDF renderer.
// Lays out each segmented title as a paragraph using gofpdf: the lead in
// bold, the middle in regular weight and the tail as a clickable link.
// Skipped links are left out, as in the raw HTML output.
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/headlink/core"
	"github.com/gaurav-prasanna/headlink/core/segment"
)

const (
	pdfFont       = "Helvetica"
	pdfFontSize   = 11
	pdfLineHeight = 6
)

// PDFRenderer renders the digest as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render lays out every non-skipped item and returns the PDF bytes.
func (r *PDFRenderer) Render(digest core.Digest) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle("headlink digest", true)
	pdf.AddPage()

	// Core fonts are cp1252; titles arrive as UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, item := range digest.Rendered() {
		if item.Segments == nil {
			continue
		}
		writeItem(pdf, tr, *item.Segments, item.URL)
		pdf.Ln(pdfLineHeight * 1.6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// writeItem writes one paragraph mirroring the HTML fragment's structure.
func writeItem(pdf *gofpdf.Fpdf, tr func(string) string, seg segment.Segments, url string) {
	switch seg.Layout {
	case segment.LayoutEmpty:
		pdf.SetFont(pdfFont, "I", pdfFontSize)
		pdf.Write(pdfLineHeight, "(Title was empty)")
		return
	case segment.LayoutSingle, segment.LayoutFallback:
		writeLink(pdf, "BU", tr(seg.BoldText()), url)
		writePlain(pdf, ".")
		return
	}

	pdf.SetFont(pdfFont, "B", pdfFontSize)
	pdf.Write(pdfLineHeight, tr(seg.BoldText()))

	if middle := seg.MiddleText(); middle != "" {
		writePlain(pdf, " "+tr(middle))
	}
	if link := seg.LinkText(); link != "" {
		writePlain(pdf, " ")
		writeLink(pdf, "U", tr(link), url)
	}
	writePlain(pdf, ".")
}

func writePlain(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont(pdfFont, "", pdfFontSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.Write(pdfLineHeight, text)
}

func writeLink(pdf *gofpdf.Fpdf, style, text, url string) {
	pdf.SetFont(pdfFont, style, pdfFontSize)
	pdf.SetTextColor(0, 0, 200)
	pdf.WriteLinkString(pdfLineHeight, text, url)
	pdf.SetTextColor(0, 0, 0)
}
