package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/collecto-app/collecto-backend/internal/domain"
)

// PDFRenderer renders a category's items as a simple tabular PDF:
// one block per item, one line per value, attribute name in bold.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render implements Renderer.
func (r *PDFRenderer) Render(category *domain.Category, items []*domain.Item) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(category.Name, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, category.Name, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for i, it := range items {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, fmt.Sprintf("Item %d", i+1), "B", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, v := range it.Values {
			name := "Unknown"
			if v.AttributeName != nil {
				name = *v.AttributeName
			}

			// Values are stored as text; format per the advisory type tag
			// when the attribute still exists.
			display := v.Value
			if attr, ok := category.AttributeByID(v.FieldID); ok {
				display = formatValue(attr.Type, v.Value)
			}

			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(50, 6, name, "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 6, display, "", "L", false)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}

	return buf.Bytes(), nil
}

// formatValue renders a stored text value according to its type tag.
func formatValue(typeTag, raw string) string {
	tv := domain.ParseTypedValue(typeTag, raw)
	switch tv.Kind {
	case domain.TypeNumber:
		return fmt.Sprintf("%g", tv.Number)
	case domain.TypeDate:
		return tv.Date.Format("2006-01-02")
	default:
		return tv.String
	}
}
