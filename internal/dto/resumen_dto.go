package dto

import "github.com/shopspring/decimal"

// TotalesResumen are the sums shared by every summary shape. Net commissions
// are display values derived at aggregation time, never stored.
type TotalesResumen struct {
	NumeroVentas     int             `json:"numero_ventas"`
	TotalUnidades    int             `json:"total_unidades"`
	TotalFacturado   decimal.Decimal `json:"total_facturado"`
	ComisionSocioA   decimal.Decimal `json:"comision_socio_a"`
	ComisionSocioB   decimal.Decimal `json:"comision_socio_b"`
	ComisionNetaA    decimal.Decimal `json:"comision_neta_a"`
	ComisionNetaB    decimal.Decimal `json:"comision_neta_b"`
	DomicilioTotal   decimal.Decimal `json:"domicilio_total"`
	DomicilioSocios  decimal.Decimal `json:"domicilio_socios"`
	GananciaOperador decimal.Decimal `json:"ganancia_operador"`
}

type VentasVendedorResumen struct {
	Cantidad int             `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
}

type ResumenSemanalResponse struct {
	Semana      string `json:"semana"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	TotalesResumen
	VentasPorVendedor map[string]VentasVendedorResumen `json:"ventas_por_vendedor"`
	EsEjemplo         bool                             `json:"es_ejemplo"`
}

type ResumenMensualResponse struct {
	Mes string `json:"mes"`
	TotalesResumen
	EsEjemplo bool `json:"es_ejemplo"`
}

type ResumenRangoResponse struct {
	Etiqueta    string `json:"etiqueta"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	TotalesResumen
	EsEjemplo bool `json:"es_ejemplo"`
}

// MesesResponse lists the months ("YYYY-MM") that contain at least one sale.
type MesesResponse struct {
	Data []string `json:"data"`
}
