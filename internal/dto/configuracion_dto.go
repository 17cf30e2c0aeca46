package dto

import "github.com/shopspring/decimal"

// GuardarConfiguracionRequest replaces the singleton configuration row.
// Prices travel as whole currency units.
type GuardarConfiguracionRequest struct {
	PrecioDistribucion decimal.Decimal `json:"precio_distribucion"   validate:"required"`
	PrecioEscalon1     decimal.Decimal `json:"precio_escalon_1"      validate:"required"`
	PrecioEscalon2     decimal.Decimal `json:"precio_escalon_2"      validate:"required"`
	UmbralEscalon      int             `json:"umbral_escalon"        validate:"required,min=1"`
	ComisionAPorUnidad decimal.Decimal `json:"comision_a_por_unidad" validate:"required"`
	LimiteComisionA    int             `json:"limite_comision_a"     validate:"required,min=1"`
	ComisionBPorUnidad decimal.Decimal `json:"comision_b_por_unidad" validate:"required"`
	DomicilioTotal     decimal.Decimal `json:"domicilio_total"       validate:"min=0"`

	NombreSocioOperador string `json:"nombre_socio_operador" validate:"required"`
	NombreSocioA        string `json:"nombre_socio_a"        validate:"required"`
	NombreSocioB        string `json:"nombre_socio_b"        validate:"required"`
}

type ConfiguracionResponse struct {
	PrecioDistribucion decimal.Decimal `json:"precio_distribucion"`
	PrecioEscalon1     decimal.Decimal `json:"precio_escalon_1"`
	PrecioEscalon2     decimal.Decimal `json:"precio_escalon_2"`
	UmbralEscalon      int             `json:"umbral_escalon"`
	ComisionAPorUnidad decimal.Decimal `json:"comision_a_por_unidad"`
	LimiteComisionA    int             `json:"limite_comision_a"`
	ComisionBPorUnidad decimal.Decimal `json:"comision_b_por_unidad"`
	DomicilioTotal     decimal.Decimal `json:"domicilio_total"`

	NombreSocioOperador string `json:"nombre_socio_operador"`
	NombreSocioA        string `json:"nombre_socio_a"`
	NombreSocioB        string `json:"nombre_socio_b"`

	EsEjemplo bool `json:"es_ejemplo"`
}
