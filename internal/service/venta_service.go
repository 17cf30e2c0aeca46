package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/dto"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/liquidacion"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/model"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const formatoFecha = "2006-01-02T15:04:05Z"

type VentaService interface {
	Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	Previsualizar(ctx context.Context, req dto.PrevisualizarVentaRequest) (*dto.PrevisualizacionResponse, error)
	Listar(ctx context.Context, filtro dto.VentaFilter) (*dto.VentaListResponse, error)
	Anular(ctx context.Context, id uuid.UUID) error
	ActualizarDomicilio(ctx context.Context, id uuid.UUID, nuevoDomicilio decimal.Decimal) (*dto.VentaResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	vendedorRepo repository.VendedorRepository
	config       ConfiguracionService
	ahora        func() time.Time
}

func NewVentaService(repo repository.VentaRepository, vendedorRepo repository.VendedorRepository, config ConfiguracionService) VentaService {
	return &ventaService{
		repo:         repo,
		vendedorRepo: vendedorRepo,
		config:       config,
		ahora:        time.Now,
	}
}

// ── Registrar ────────────────────────────────────────────────────────────────
// Settles the sale under the configuration in force right now and persists it
// with every amount frozen. When delivery is included but its cost unknown,
// an explicit zero is settled and the sale is stored in estado "pendiente"
// for the later amendment — the two-phase write is business policy, not an
// accident.

func (s *ventaService) Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	vendedorID, err := uuid.Parse(req.VendedorID)
	if err != nil {
		return nil, ErrVendedorInvalido
	}

	vendedor, err := s.vendedorRepo.FindByID(ctx, vendedorID)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return nil, ErrVendedorNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}

	reglas, err := s.config.ReglasActuales(ctx)
	if err != nil {
		return nil, err
	}

	incluyeDomicilio := true
	if req.IncluyeDomicilio != nil {
		incluyeDomicilio = *req.IncluyeDomicilio
	}

	valorDomicilio := req.ValorDomicilio
	domicilioEstado := model.DomicilioConfirmado
	if incluyeDomicilio && valorDomicilio == nil {
		// Cost not yet known: settle with an explicit 0 and defer.
		cero := decimal.Zero
		valorDomicilio = &cero
		domicilioEstado = model.DomicilioPendiente
	}

	detalle := liquidacion.CalcularVenta(vendedor.Nombre, req.Cantidad, incluyeDomicilio, reglas, valorDomicilio).Redondeado()

	venta := &model.Venta{
		Fecha:             s.ahora().UTC(),
		VendedorID:        &vendedor.ID,
		Vendedor:          detalle.Vendedor,
		Cantidad:          detalle.Cantidad,
		CostoDistribucion: detalle.CostoDistribucion,
		IngresoVendedor:   detalle.IngresoVendedor,
		ComisionSocioA:    detalle.ComisionSocioA,
		ComisionSocioB:    detalle.ComisionSocioB,
		DomicilioTotal:    detalle.DomicilioTotal,
		DomicilioVendedor: detalle.DomicilioVendedor,
		DomicilioSocios:   detalle.DomicilioSocios,
		GananciaOperador:  detalle.GananciaOperador,
		DomicilioEstado:   domicilioEstado,
	}
	if err := s.repo.Create(ctx, venta); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}

	log.Info().
		Str("venta_id", venta.ID.String()).
		Str("vendedor", venta.Vendedor).
		Int("cantidad", venta.Cantidad).
		Str("domicilio_estado", venta.DomicilioEstado).
		Msg("venta registrada")

	return ventaADTO(venta), nil
}

// Previsualizar runs the settlement calculator without persisting anything.
// Unlike registration, an omitted delivery value previews the configured
// default, which is what the sale form shows while editing.
func (s *ventaService) Previsualizar(ctx context.Context, req dto.PrevisualizarVentaRequest) (*dto.PrevisualizacionResponse, error) {
	reglas, err := s.config.ReglasActuales(ctx)
	if err != nil {
		return nil, err
	}

	incluyeDomicilio := true
	if req.IncluyeDomicilio != nil {
		incluyeDomicilio = *req.IncluyeDomicilio
	}

	detalle := liquidacion.CalcularVenta("", req.Cantidad, incluyeDomicilio, reglas, req.ValorDomicilio)
	return &dto.PrevisualizacionResponse{
		Cantidad:          detalle.Cantidad,
		CostoDistribucion: detalle.CostoDistribucion,
		IngresoVendedor:   detalle.IngresoVendedor,
		ComisionSocioA:    detalle.ComisionSocioA,
		ComisionSocioB:    detalle.ComisionSocioB,
		DomicilioTotal:    detalle.DomicilioTotal,
		DomicilioVendedor: detalle.DomicilioVendedor,
		DomicilioSocios:   detalle.DomicilioSocios,
		ParteDomicilio:    liquidacion.ParteDomicilioPorSocio(detalle.DomicilioSocios),
		GananciaOperador:  detalle.GananciaOperador,
	}, nil
}

// Listar returns up to 500 sales newest first. A storage failure degrades to
// the example dataset so the history view stays usable.
func (s *ventaService) Listar(ctx context.Context, filtro dto.VentaFilter) (*dto.VentaListResponse, error) {
	repoFiltro, err := convertirFiltro(filtro)
	if err != nil {
		return nil, err
	}

	ventas, err := s.repo.List(ctx, repoFiltro)
	if err != nil {
		log.Warn().Err(err).Msg("listado de ventas no disponible, sirviendo datos de ejemplo")
		ejemplo := ventasEjemplo(s.ahora())
		return &dto.VentaListResponse{Data: ejemplo, Total: len(ejemplo), EsEjemplo: true}, nil
	}

	items := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		items = append(items, *ventaADTO(&ventas[i]))
	}
	return &dto.VentaListResponse{Data: items, Total: len(items)}, nil
}

func (s *ventaService) Anular(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return ErrVentaNoEncontrada
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	log.Info().Str("venta_id", id.String()).Msg("venta anulada")
	return nil
}

// ── ActualizarDomicilio ──────────────────────────────────────────────────────
// The only mutation a persisted sale supports. The recalculation uses the
// sale's frozen commissions and seller total, never current configuration,
// and re-applying the same value is a no-op on the stored state.

func (s *ventaService) ActualizarDomicilio(ctx context.Context, id uuid.UUID, nuevoDomicilio decimal.Decimal) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return nil, ErrVentaNoEncontrada
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}

	ajuste, err := liquidacion.RecalcularDomicilio(nuevoDomicilio, venta.ComisionSocioA, venta.ComisionSocioB, venta.IngresoVendedor)
	if err != nil {
		return nil, err
	}
	ajuste = ajuste.Redondeado()

	if err := s.repo.ActualizarDomicilio(ctx, id, ajuste); err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, ErrVentaNoEncontrada
		}
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}

	venta.DomicilioTotal = ajuste.DomicilioTotal
	venta.DomicilioVendedor = ajuste.DomicilioVendedor
	venta.DomicilioSocios = ajuste.DomicilioSocios
	venta.GananciaOperador = ajuste.GananciaOperador
	venta.DomicilioEstado = model.DomicilioConfirmado

	log.Info().
		Str("venta_id", id.String()).
		Str("domicilio_total", ajuste.DomicilioTotal.String()).
		Msg("domicilio actualizado")

	return ventaADTO(venta), nil
}

// ─────────────────────────────────────────────────────────────────────────────

func convertirFiltro(filtro dto.VentaFilter) (repository.FiltroVentas, error) {
	var out repository.FiltroVentas

	if filtro.FechaDesde != "" {
		dia, err := time.ParseInLocation("2006-01-02", filtro.FechaDesde, time.UTC)
		if err != nil {
			return out, ErrFechaInvalida
		}
		desde := liquidacion.InicioDia(dia)
		out.Desde = &desde
	}
	if filtro.FechaHasta != "" {
		dia, err := time.ParseInLocation("2006-01-02", filtro.FechaHasta, time.UTC)
		if err != nil {
			return out, ErrFechaInvalida
		}
		hasta := liquidacion.FinDia(dia)
		out.Hasta = &hasta
	}
	if filtro.VendedorID != "" {
		id, err := uuid.Parse(filtro.VendedorID)
		if err != nil {
			return out, ErrVendedorInvalido
		}
		out.VendedorID = &id
	}
	return out, nil
}

func ventaADTO(v *model.Venta) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		ID:                v.ID.String(),
		Fecha:             v.Fecha.UTC().Format(formatoFecha),
		Vendedor:          v.Vendedor,
		Cantidad:          v.Cantidad,
		CostoDistribucion: v.CostoDistribucion,
		IngresoVendedor:   v.IngresoVendedor,
		ComisionSocioA:    v.ComisionSocioA,
		ComisionSocioB:    v.ComisionSocioB,
		DomicilioTotal:    v.DomicilioTotal,
		DomicilioVendedor: v.DomicilioVendedor,
		DomicilioSocios:   v.DomicilioSocios,
		GananciaOperador:  v.GananciaOperador,
		DomicilioEstado:   v.DomicilioEstado,
	}
	if v.VendedorID != nil {
		resp.VendedorID = v.VendedorID.String()
	}
	return resp
}
