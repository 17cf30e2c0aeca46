// Package liquidacion contains the pure settlement math of the business:
// how a sale is split between the operator and the two commissioned partners,
// how a delivery fee amendment is re-applied to an already settled sale, and
// how persisted sales fold into weekly / monthly / range summaries.
//
// Nothing in this package touches the database or the clock on its own; every
// function is deterministic on its inputs so the same calculator backs both
// the persisted write path and the live form preview.
package liquidacion

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrMontoInvalido rejects negative delivery amounts before any computation.
var ErrMontoInvalido = errors.New("el valor del domicilio no puede ser negativo")

var (
	dos  = decimal.NewFromInt(2)
	tres = decimal.NewFromInt(3)
	seis = decimal.NewFromInt(6)
)

// Reglas is the pricing/commission configuration a sale is settled under.
// It is snapshotted at settlement time: later edits to the stored
// configuration never touch an already persisted sale.
type Reglas struct {
	// PrecioDistribucion is the operator's distribution-side revenue per unit,
	// independent of what the seller pays.
	PrecioDistribucion decimal.Decimal
	// PrecioEscalon1 applies to the first UmbralEscalon units,
	// PrecioEscalon2 to every unit beyond.
	PrecioEscalon1 decimal.Decimal
	PrecioEscalon2 decimal.Decimal
	UmbralEscalon  int
	// ComisionAPorUnidad is earned on at most LimiteComisionA units per sale.
	ComisionAPorUnidad decimal.Decimal
	LimiteComisionA    int
	// ComisionBPorUnidad is earned on every unit, without cap.
	ComisionBPorUnidad decimal.Decimal
	// DomicilioTotal is the default delivery charge when a sale includes
	// delivery and no explicit value is given.
	DomicilioTotal decimal.Decimal
}

// DetalleVenta is the itemized settlement of one sale, before persistence.
type DetalleVenta struct {
	Vendedor          string
	Cantidad          int
	CostoDistribucion decimal.Decimal
	IngresoVendedor   decimal.Decimal
	ComisionSocioA    decimal.Decimal
	ComisionSocioB    decimal.Decimal
	DomicilioTotal    decimal.Decimal
	DomicilioVendedor decimal.Decimal
	DomicilioSocios   decimal.Decimal
	GananciaOperador  decimal.Decimal
}

// CalcularVenta settles a sale of cantidad units under the given rules.
//
// valorDomicilio, when non-nil, is used verbatim as the delivery total — this
// is how the history editor previews amendments and how sale registration
// defers the real delivery cost by passing an explicit zero. When nil, the
// configured default applies if incluyeDomicilio, otherwise zero.
//
// cantidad >= 1 is the caller's responsibility (the API layer rejects the
// request before this function runs).
//
// CostoDistribucion is informational: the operator's distribution revenue is
// reported but deliberately NOT netted out of GananciaOperador. Earlier
// revisions of the business did subtract it; current behavior does not, and
// this is kept as-is pending a decision from the owners.
func CalcularVenta(vendedor string, cantidad int, incluyeDomicilio bool, reglas Reglas, valorDomicilio *decimal.Decimal) DetalleVenta {
	qty := decimal.NewFromInt(int64(cantidad))
	umbral := decimal.NewFromInt(int64(reglas.UmbralEscalon))

	costoDistribucion := qty.Mul(reglas.PrecioDistribucion)

	// Tiered seller price: escalon 1 up to and including the threshold.
	var ingresoVendedor decimal.Decimal
	if cantidad <= reglas.UmbralEscalon {
		ingresoVendedor = qty.Mul(reglas.PrecioEscalon1)
	} else {
		exceso := decimal.NewFromInt(int64(cantidad - reglas.UmbralEscalon))
		ingresoVendedor = umbral.Mul(reglas.PrecioEscalon1).Add(exceso.Mul(reglas.PrecioEscalon2))
	}

	unidadesSocioA := cantidad
	if unidadesSocioA > reglas.LimiteComisionA {
		unidadesSocioA = reglas.LimiteComisionA
	}
	comisionSocioA := decimal.NewFromInt(int64(unidadesSocioA)).Mul(reglas.ComisionAPorUnidad)
	comisionSocioB := qty.Mul(reglas.ComisionBPorUnidad)

	var domicilioTotal decimal.Decimal
	switch {
	case valorDomicilio != nil:
		domicilioTotal = *valorDomicilio
	case incluyeDomicilio:
		domicilioTotal = reglas.DomicilioTotal
	default:
		domicilioTotal = decimal.Zero
	}
	domicilioVendedor := domicilioTotal.Div(dos)
	domicilioSocios := domicilioTotal.Div(dos)

	// Whatever remains of the seller's payment after both commissions and the
	// operator's third of the partner-borne delivery half.
	gananciaOperador := ingresoVendedor.
		Sub(comisionSocioA).
		Sub(comisionSocioB).
		Sub(domicilioSocios.Div(tres))

	return DetalleVenta{
		Vendedor:          vendedor,
		Cantidad:          cantidad,
		CostoDistribucion: costoDistribucion,
		IngresoVendedor:   ingresoVendedor,
		ComisionSocioA:    comisionSocioA,
		ComisionSocioB:    comisionSocioB,
		DomicilioTotal:    domicilioTotal,
		DomicilioVendedor: domicilioVendedor,
		DomicilioSocios:   domicilioSocios,
		GananciaOperador:  gananciaOperador,
	}
}

// Redondeado returns a copy with every money field rounded to whole currency
// units. Rounding happens exactly once, at the moment a sale is written to
// storage — never across intermediate recomputation steps.
func (d DetalleVenta) Redondeado() DetalleVenta {
	d.CostoDistribucion = d.CostoDistribucion.Round(0)
	d.IngresoVendedor = d.IngresoVendedor.Round(0)
	d.ComisionSocioA = d.ComisionSocioA.Round(0)
	d.ComisionSocioB = d.ComisionSocioB.Round(0)
	d.DomicilioTotal = d.DomicilioTotal.Round(0)
	d.DomicilioVendedor = d.DomicilioVendedor.Round(0)
	d.DomicilioSocios = d.DomicilioSocios.Round(0)
	d.GananciaOperador = d.GananciaOperador.Round(0)
	return d
}
