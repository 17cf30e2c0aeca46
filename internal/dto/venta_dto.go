package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// VentaFilter is bound from the query string of GET /v1/ventas.
// Dates are calendar days (YYYY-MM-DD), inclusive, interpreted in UTC.
type VentaFilter struct {
	FechaDesde string `form:"fecha_desde"`
	FechaHasta string `form:"fecha_hasta"`
	VendedorID string `form:"vendedor_id"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int             `json:"total"`
	// EsEjemplo flags the static display dataset served when storage is
	// unreachable, so clients can tell "no data" from "can't reach storage".
	EsEjemplo bool `json:"es_ejemplo"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarVentaRequest struct {
	VendedorID string `json:"vendedor_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
	// IncluyeDomicilio defaults to true when omitted.
	IncluyeDomicilio *bool `json:"incluye_domicilio"`
	// ValorDomicilio, when present, is used verbatim. Omitting it on a sale
	// that includes delivery defers the real cost: the sale is stored with
	// domicilio 0 in estado "pendiente" until amended.
	ValorDomicilio *decimal.Decimal `json:"valor_domicilio" validate:"omitempty"`
}

// PrevisualizarVentaRequest drives the live settlement preview while the
// sale form is being edited. Nothing is persisted.
type PrevisualizarVentaRequest struct {
	Cantidad         int              `json:"cantidad" validate:"required,min=1"`
	IncluyeDomicilio *bool            `json:"incluye_domicilio"`
	ValorDomicilio   *decimal.Decimal `json:"valor_domicilio" validate:"omitempty"`
}

type ActualizarDomicilioRequest struct {
	ValorDomicilio *decimal.Decimal `json:"valor_domicilio" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VentaResponse struct {
	ID                string          `json:"id"`
	Fecha             string          `json:"fecha"`
	VendedorID        string          `json:"vendedor_id,omitempty"`
	Vendedor          string          `json:"vendedor"`
	Cantidad          int             `json:"cantidad"`
	CostoDistribucion decimal.Decimal `json:"costo_distribucion"`
	IngresoVendedor   decimal.Decimal `json:"ingreso_vendedor"`
	ComisionSocioA    decimal.Decimal `json:"comision_socio_a"`
	ComisionSocioB    decimal.Decimal `json:"comision_socio_b"`
	DomicilioTotal    decimal.Decimal `json:"domicilio_total"`
	DomicilioVendedor decimal.Decimal `json:"domicilio_vendedor"`
	DomicilioSocios   decimal.Decimal `json:"domicilio_socios"`
	GananciaOperador  decimal.Decimal `json:"ganancia_operador"`
	DomicilioEstado   string          `json:"domicilio_estado"`
}

// PrevisualizacionResponse mirrors VentaResponse minus identity: previews are
// never persisted.
type PrevisualizacionResponse struct {
	Cantidad          int             `json:"cantidad"`
	CostoDistribucion decimal.Decimal `json:"costo_distribucion"`
	IngresoVendedor   decimal.Decimal `json:"ingreso_vendedor"`
	ComisionSocioA    decimal.Decimal `json:"comision_socio_a"`
	ComisionSocioB    decimal.Decimal `json:"comision_socio_b"`
	DomicilioTotal    decimal.Decimal `json:"domicilio_total"`
	DomicilioVendedor decimal.Decimal `json:"domicilio_vendedor"`
	DomicilioSocios   decimal.Decimal `json:"domicilio_socios"`
	ParteDomicilio    decimal.Decimal `json:"parte_domicilio_por_socio"`
	GananciaOperador  decimal.Decimal `json:"ganancia_operador"`
}
