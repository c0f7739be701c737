// Package export renders an itinerary as a downloadable PDF document.
//
// The built-in PDF fonts only cover Latin-1, so the itinerary is re-encoded
// line by line before layout: any rune outside that range becomes a "?"
// placeholder. Export is cheap and idempotent, so unlike the generators it
// is not cached.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/oharris/trip-planner/internal/domain"
)

const (
	pdfFontSize   = 12
	pdfLineHeight = 10 // mm
)

// PDF renders the itinerary text as a PDF and returns the document bytes.
// Each line becomes a wrapped paragraph cell. Any encoding or layout failure
// is wrapped in domain.ErrExport and no partial document is returned.
func PDF(itinerary string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Arial", "", pdfFontSize)

	for _, line := range strings.Split(itinerary, "\n") {
		doc.MultiCell(0, pdfLineHeight, toLatin1(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExport, err)
	}
	return buf.Bytes(), nil
}

// toLatin1 replaces every rune outside the Latin-1 range with "?", matching
// a lossy latin-1 re-encode. The result is safe for the built-in fonts.
func toLatin1(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r > 0xFF {
			b.WriteByte('?')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
