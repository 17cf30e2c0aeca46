package service

import (
	"time"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/dto"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/liquidacion"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/model"

	"github.com/shopspring/decimal"
)

// Static example dataset served on read paths when storage is unreachable or
// unconfigured, so the UI shows a plausible screen instead of an empty or
// broken one. It is display-only and never written back; every response
// built from it carries es_ejemplo=true.

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func ventasEjemplo(ahora time.Time) []dto.VentaResponse {
	return []dto.VentaResponse{
		{
			ID:                "ejemplo-1",
			Fecha:             ahora.UTC().Format(formatoFecha),
			Vendedor:          "Carlos",
			Cantidad:          15,
			CostoDistribucion: d(90000),
			IngresoVendedor:   d(105000),
			ComisionSocioA:    d(15000),
			ComisionSocioB:    d(7500),
			DomicilioTotal:    d(5000),
			DomicilioVendedor: d(2500),
			DomicilioSocios:   d(2500),
			GananciaOperador:  d(81667),
			DomicilioEstado:   model.DomicilioConfirmado,
		},
		{
			ID:                "ejemplo-2",
			Fecha:             ahora.Add(-time.Hour).UTC().Format(formatoFecha),
			Vendedor:          "Maria",
			Cantidad:          25,
			CostoDistribucion: d(150000),
			IngresoVendedor:   d(172500),
			ComisionSocioA:    d(20000),
			ComisionSocioB:    d(12500),
			DomicilioTotal:    d(0),
			DomicilioVendedor: d(0),
			DomicilioSocios:   d(0),
			GananciaOperador:  d(140000),
			DomicilioEstado:   model.DomicilioPendiente,
		},
	}
}

func resumenSemanalEjemplo(ahora time.Time) *dto.ResumenSemanalResponse {
	inicio, fin := liquidacion.RangoSemana(ahora)
	return &dto.ResumenSemanalResponse{
		Semana:      "Semana de ejemplo",
		FechaInicio: inicio.Format(formatoFecha),
		FechaFin:    fin.Format(formatoFecha),
		TotalesResumen: dto.TotalesResumen{
			NumeroVentas:     3,
			TotalUnidades:    65,
			TotalFacturado:   d(450000),
			ComisionSocioA:   d(20000),
			ComisionSocioB:   d(32500),
			ComisionNetaA:    liquidacion.ComisionNetaSemanal(d(20000), d(12500)),
			ComisionNetaB:    liquidacion.ComisionNetaSemanal(d(32500), d(12500)),
			DomicilioTotal:   d(25000),
			DomicilioSocios:  d(12500),
			GananciaOperador: d(85000),
		},
		VentasPorVendedor: map[string]dto.VentasVendedorResumen{
			"Carlos": {Cantidad: 25, Total: d(175000)},
			"Maria":  {Cantidad: 22, Total: d(154000)},
			"Pedro":  {Cantidad: 18, Total: d(121000)},
		},
		EsEjemplo: true,
	}
}

func resumenMensualEjemplo(ahora time.Time) *dto.ResumenMensualResponse {
	return &dto.ResumenMensualResponse{
		Mes: liquidacion.EtiquetaMes(ahora.UTC().Year(), ahora.UTC().Month()),
		TotalesResumen: dto.TotalesResumen{
			NumeroVentas:     12,
			TotalUnidades:    260,
			TotalFacturado:   d(1800000),
			ComisionSocioA:   d(80000),
			ComisionSocioB:   d(130000),
			ComisionNetaA:    liquidacion.ComisionNetaMensual(d(80000), d(100000)),
			ComisionNetaB:    liquidacion.ComisionNetaMensual(d(130000), d(100000)),
			DomicilioTotal:   d(100000),
			DomicilioSocios:  d(50000),
			GananciaOperador: d(340000),
		},
		EsEjemplo: true,
	}
}

func resumenRangoEjemplo(desde, hasta time.Time) *dto.ResumenRangoResponse {
	return &dto.ResumenRangoResponse{
		Etiqueta:    liquidacion.EtiquetaRango(desde, hasta),
		FechaInicio: liquidacion.InicioDia(desde).Format(formatoFecha),
		FechaFin:    liquidacion.FinDia(hasta).Format(formatoFecha),
		TotalesResumen: dto.TotalesResumen{
			TotalFacturado:   d(0),
			ComisionSocioA:   d(0),
			ComisionSocioB:   d(0),
			ComisionNetaA:    d(0),
			ComisionNetaB:    d(0),
			DomicilioTotal:   d(0),
			DomicilioSocios:  d(0),
			GananciaOperador: d(0),
		},
		EsEjemplo: true,
	}
}
