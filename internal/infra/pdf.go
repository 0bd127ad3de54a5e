package infra

// pdf.go — receipt PDF export using go-pdf/fpdf. Renders the settlement
// detail for one account as an A7-size thermal-ticket style document:
//   - header with the account holder
//   - product charge table
//   - service charge table
//   - bold combined total
//
// The output file is saved to storagePath/recibo_{cuenta}.pdf. Generating the
// file reads the ephemeral detail only — no entity state is touched.

import (
	"fmt"
	"os"
	"path/filepath"

	"comanda/internal/model"

	"github.com/go-pdf/fpdf"
)

// truncarConcepto trims a concept name to fit the narrow ticket column,
// counting runes so accented Spanish names are never cut mid-character.
func truncarConcepto(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// GenerarReciboPDF writes the receipt for a settled account and returns the
// absolute path to the generated file.
func GenerarReciboPDF(detalle *model.DetallePago, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%s.pdf", detalle.Cuenta)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	col1 := contentW * 0.52 // concept
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // subtotal

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Comanda", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Detalle de Pago", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, "Cuenta de "+detalle.Titular, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	seccion := func(titulo string, desglose model.Desglose) {
		pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "B", 7)
		pdf.CellFormat(col1, 5, titulo, "B", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 7)
		for _, item := range desglose.Items {
			concepto := truncarConcepto(item.Concepto, 22)
			pdf.CellFormat(col1, 5, concepto, "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Cantidad), "", 0, "C", false, 0, "")
			pdf.CellFormat(col3, 5, "$"+item.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
		}

		pdf.SetFont("Helvetica", "B", 7)
		pdf.CellFormat(col1+col2, 5, "Subtotal "+titulo+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+desglose.Total.StringFixed(2), "", 1, "R", false, 0, "")
		pdf.Ln(2)
	}

	seccion("Productos", detalle.Productos)
	seccion("Servicios", detalle.Servicios)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "$"+detalle.Total().StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "¡Gracias por su visita!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
