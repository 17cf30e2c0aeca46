package liquidacion

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaLiquidada is the slice of a persisted sale the aggregation engine
// needs. All amounts are the frozen, stored values — summaries never
// recompute anything from current configuration.
type VentaLiquidada struct {
	Fecha             time.Time
	Vendedor          string
	Cantidad          int
	IngresoVendedor   decimal.Decimal
	ComisionSocioA    decimal.Decimal
	ComisionSocioB    decimal.Decimal
	DomicilioTotal    decimal.Decimal
	DomicilioSocios   decimal.Decimal
	GananciaOperador  decimal.Decimal
}

// Totales are the shared sums of every summary shape. All fields are plain
// additive folds, so totals over disjoint sets of sales add up.
type Totales struct {
	NumeroVentas     int
	TotalUnidades    int
	TotalFacturado   decimal.Decimal
	ComisionSocioA   decimal.Decimal
	ComisionSocioB   decimal.Decimal
	DomicilioTotal   decimal.Decimal
	DomicilioSocios  decimal.Decimal
	GananciaOperador decimal.Decimal
}

// VentasVendedor is one seller's rollup inside the weekly summary.
type VentasVendedor struct {
	Cantidad int
	Total    decimal.Decimal
}

// Semanal is the Monday–Sunday summary, including the per-seller breakdown.
type Semanal struct {
	Semana      string
	FechaInicio time.Time
	FechaFin    time.Time
	Totales
	PorVendedor map[string]VentasVendedor
}

// Mensual is the calendar-month summary. No per-seller breakdown: the month
// view reports a single aggregate profit.
type Mensual struct {
	Mes string
	Totales
}

// Rango is the arbitrary inclusive [desde, hasta] summary.
type Rango struct {
	Etiqueta    string
	FechaInicio time.Time
	FechaFin    time.Time
	Totales
}

// Acumular folds sales into shared totals.
func Acumular(ventas []VentaLiquidada) Totales {
	t := Totales{
		TotalFacturado:   decimal.Zero,
		ComisionSocioA:   decimal.Zero,
		ComisionSocioB:   decimal.Zero,
		DomicilioTotal:   decimal.Zero,
		DomicilioSocios:  decimal.Zero,
		GananciaOperador: decimal.Zero,
	}
	for _, v := range ventas {
		t.NumeroVentas++
		t.TotalUnidades += v.Cantidad
		t.TotalFacturado = t.TotalFacturado.Add(v.IngresoVendedor)
		t.ComisionSocioA = t.ComisionSocioA.Add(v.ComisionSocioA)
		t.ComisionSocioB = t.ComisionSocioB.Add(v.ComisionSocioB)
		t.DomicilioTotal = t.DomicilioTotal.Add(v.DomicilioTotal)
		t.DomicilioSocios = t.DomicilioSocios.Add(v.DomicilioSocios)
		t.GananciaOperador = t.GananciaOperador.Add(v.GananciaOperador)
	}
	return t
}

// ComisionNetaSemanal nets a partner's raw commission against their share of
// the partner-borne delivery half (weekly / transaction granularity).
func ComisionNetaSemanal(comision, domicilioSocios decimal.Decimal) decimal.Decimal {
	return comision.Sub(ParteDomicilioPorSocio(domicilioSocios))
}

// ComisionNetaMensual nets a partner's raw commission at month granularity,
// where the share comes out of the full delivery total six ways.
func ComisionNetaMensual(comision, domicilioTotal decimal.Decimal) decimal.Decimal {
	return comision.Sub(ParteDomicilioMensualPorSocio(domicilioTotal))
}

// ResumenSemanal restricts ventas to the Monday–Sunday week containing ahora
// and folds them, grouping seller subtotals by name.
func ResumenSemanal(ventas []VentaLiquidada, ahora time.Time) Semanal {
	inicio, fin := RangoSemana(ahora)
	filtradas := enVentana(ventas, inicio, fin)

	porVendedor := make(map[string]VentasVendedor)
	for _, v := range filtradas {
		acc := porVendedor[v.Vendedor]
		acc.Cantidad += v.Cantidad
		acc.Total = acc.Total.Add(v.IngresoVendedor)
		porVendedor[v.Vendedor] = acc
	}

	return Semanal{
		Semana:      etiquetaSemana(inicio),
		FechaInicio: inicio,
		FechaFin:    fin,
		Totales:     Acumular(filtradas),
		PorVendedor: porVendedor,
	}
}

// ResumenMensual restricts ventas to the given calendar month and folds them.
func ResumenMensual(ventas []VentaLiquidada, anio int, mes time.Month) Mensual {
	inicio, fin := RangoMes(anio, mes)
	return Mensual{
		Mes:     EtiquetaMes(anio, mes),
		Totales: Acumular(enVentana(ventas, inicio, fin)),
	}
}

// ResumenRango folds ventas inside the inclusive whole-day window
// [desde, hasta].
func ResumenRango(ventas []VentaLiquidada, desde, hasta time.Time) Rango {
	inicio, fin := InicioDia(desde), FinDia(hasta)
	return Rango{
		Etiqueta:    EtiquetaRango(desde, hasta),
		FechaInicio: inicio,
		FechaFin:    fin,
		Totales:     Acumular(enVentana(ventas, inicio, fin)),
	}
}

func enVentana(ventas []VentaLiquidada, inicio, fin time.Time) []VentaLiquidada {
	dentro := make([]VentaLiquidada, 0, len(ventas))
	for _, v := range ventas {
		if v.Fecha.Before(inicio) || v.Fecha.After(fin) {
			continue
		}
		dentro = append(dentro, v)
	}
	return dentro
}
