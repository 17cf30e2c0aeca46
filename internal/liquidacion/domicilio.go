package liquidacion

import "github.com/shopspring/decimal"

// AjusteDomicilio holds the delivery-dependent fields of a sale after an
// amendment. Only these four fields may change once a sale is persisted.
type AjusteDomicilio struct {
	DomicilioTotal    decimal.Decimal
	DomicilioVendedor decimal.Decimal
	DomicilioSocios   decimal.Decimal
	GananciaOperador  decimal.Decimal
}

// RecalcularDomicilio re-derives the delivery split and operator profit from
// an already settled sale's frozen amounts. It must NOT re-run the tiered
// pricing or commission math: those were settled under the configuration in
// force at creation time, which may have changed since.
//
// Applying the same nuevoDomicilio twice yields the same result.
func RecalcularDomicilio(nuevoDomicilio, comisionSocioA, comisionSocioB, ingresoVendedor decimal.Decimal) (AjusteDomicilio, error) {
	if nuevoDomicilio.IsNegative() {
		return AjusteDomicilio{}, ErrMontoInvalido
	}

	domicilioVendedor := nuevoDomicilio.Div(dos)
	domicilioSocios := nuevoDomicilio.Div(dos)
	gananciaOperador := ingresoVendedor.
		Sub(comisionSocioA).
		Sub(comisionSocioB).
		Sub(domicilioSocios.Div(tres))

	return AjusteDomicilio{
		DomicilioTotal:    nuevoDomicilio,
		DomicilioVendedor: domicilioVendedor,
		DomicilioSocios:   domicilioSocios,
		GananciaOperador:  gananciaOperador,
	}, nil
}

// Redondeado rounds every field to whole currency units for storage.
func (a AjusteDomicilio) Redondeado() AjusteDomicilio {
	a.DomicilioTotal = a.DomicilioTotal.Round(0)
	a.DomicilioVendedor = a.DomicilioVendedor.Round(0)
	a.DomicilioSocios = a.DomicilioSocios.Round(0)
	a.GananciaOperador = a.GananciaOperador.Round(0)
	return a
}

// ParteDomicilioPorSocio is each partner's share of the partner-borne delivery
// half at sale or weekly granularity: one half, three recipients.
func ParteDomicilioPorSocio(domicilioSocios decimal.Decimal) decimal.Decimal {
	return domicilioSocios.Div(tres)
}

// ParteDomicilioMensualPorSocio is each partner's share at monthly
// granularity, computed from the FULL delivery total: the 50% partner half and
// the three-way split collapse into a single six-way division. Keep this
// separate from ParteDomicilioPorSocio — folding the two into one
// parameterized divisor invites an off-by-factor-of-two bug.
func ParteDomicilioMensualPorSocio(domicilioTotal decimal.Decimal) decimal.Decimal {
	return domicilioTotal.Div(seis)
}
