package infra

// pdf.go — monthly summary rendered with go-pdf/fpdf. The document is built
// in memory and returned as bytes so the handler can stream it directly.

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/dto"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerarResumenMensualPDF renders the monthly summary as a one-page A4
// document: business header, the aggregated totals, and the per-partner
// net commissions.
func GenerarResumenMensualPDF(resumen *dto.ResumenMensualResponse, generado time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 40

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Venta Sanduches", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, "Resumen mensual — "+resumen.Mes, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Generado el "+generado.Format("02/01/2006 15:04 MST"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.Line(20, pdf.GetY(), pageW-20, pdf.GetY())
	pdf.Ln(4)

	// ── Totals table ─────────────────────────────────────────────────────────
	labelW := contentW * 0.6
	valueW := contentW * 0.4

	fila := func(etiqueta string, valor string, negrita bool) {
		estilo := ""
		if negrita {
			estilo = "B"
		}
		pdf.SetFont("Helvetica", estilo, 10)
		pdf.CellFormat(labelW, 7, etiqueta, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 7, valor, "", 1, "R", false, 0, "")
	}
	monto := func(d decimal.Decimal) string { return "$" + d.StringFixed(0) }

	fila("Ventas registradas", fmt.Sprintf("%d", resumen.NumeroVentas), false)
	fila("Unidades vendidas", fmt.Sprintf("%d", resumen.TotalUnidades), false)
	fila("Total facturado", monto(resumen.TotalFacturado), true)
	pdf.Ln(2)

	fila("Comisión socio A", monto(resumen.ComisionSocioA), false)
	fila("Comisión socio B", monto(resumen.ComisionSocioB), false)
	fila("Domicilios cobrados", monto(resumen.DomicilioTotal), false)
	fila("Domicilio a cargo de socios", monto(resumen.DomicilioSocios), false)
	pdf.Ln(2)

	pdf.Line(20, pdf.GetY(), pageW-20, pdf.GetY())
	pdf.Ln(2)

	fila("Comisión neta socio A", monto(resumen.ComisionNetaA), true)
	fila("Comisión neta socio B", monto(resumen.ComisionNetaB), true)
	fila("Ganancia del operador", monto(resumen.GananciaOperador), true)

	if resumen.EsEjemplo {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 5, "Datos de ejemplo: el almacén no estaba disponible al generar este documento.", "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return buf.Bytes(), nil
}
