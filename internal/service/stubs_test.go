package service

import (
	"context"
	"errors"
	"time"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/liquidacion"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/model"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/repository"

	"github.com/google/uuid"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

var errAlmacenCaido = errors.New("storage down")

// stubVentaRepo is an in-memory VentaRepository. Setting fallar makes every
// method fail, to exercise the example-data degradation paths.
type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
	fallar bool
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) Create(_ context.Context, v *model.Venta) error {
	if r.fallar {
		return errAlmacenCaido
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	if r.fallar {
		return nil, errAlmacenCaido
	}
	v, ok := r.ventas[id]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context, filtro repository.FiltroVentas) ([]model.Venta, error) {
	if r.fallar {
		return nil, errAlmacenCaido
	}
	out := make([]model.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		if filtro.Desde != nil && v.Fecha.Before(*filtro.Desde) {
			continue
		}
		if filtro.Hasta != nil && v.Fecha.After(*filtro.Hasta) {
			continue
		}
		if filtro.VendedorID != nil && (v.VendedorID == nil || *v.VendedorID != *filtro.VendedorID) {
			continue
		}
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVentaRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.fallar {
		return errAlmacenCaido
	}
	if _, ok := r.ventas[id]; !ok {
		return repository.ErrNoEncontrado
	}
	delete(r.ventas, id)
	return nil
}

func (r *stubVentaRepo) ActualizarDomicilio(_ context.Context, id uuid.UUID, ajuste liquidacion.AjusteDomicilio) error {
	if r.fallar {
		return errAlmacenCaido
	}
	v, ok := r.ventas[id]
	if !ok {
		return repository.ErrNoEncontrado
	}
	v.DomicilioTotal = ajuste.DomicilioTotal
	v.DomicilioVendedor = ajuste.DomicilioVendedor
	v.DomicilioSocios = ajuste.DomicilioSocios
	v.GananciaOperador = ajuste.GananciaOperador
	v.DomicilioEstado = model.DomicilioConfirmado
	return nil
}

func (r *stubVentaRepo) MesesConVentas(_ context.Context) ([]string, error) {
	if r.fallar {
		return nil, errAlmacenCaido
	}
	vistos := make(map[string]bool)
	var meses []string
	for _, v := range r.ventas {
		mes := v.Fecha.UTC().Format("2006-01")
		if !vistos[mes] {
			vistos[mes] = true
			meses = append(meses, mes)
		}
	}
	return meses, nil
}

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// stubVendedorRepo is an in-memory VendedorRepository.
type stubVendedorRepo struct {
	vendedores map[uuid.UUID]*model.Vendedor
}

func newStubVendedorRepo() *stubVendedorRepo {
	return &stubVendedorRepo{vendedores: make(map[uuid.UUID]*model.Vendedor)}
}

func (r *stubVendedorRepo) Create(_ context.Context, v *model.Vendedor) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vendedores[v.ID] = v
	return nil
}

func (r *stubVendedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Vendedor, error) {
	v, ok := r.vendedores[id]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	return v, nil
}

func (r *stubVendedorRepo) ListActivos(_ context.Context) ([]model.Vendedor, error) {
	var out []model.Vendedor
	for _, v := range r.vendedores {
		if v.Activo {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVendedorRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	v, ok := r.vendedores[id]
	if !ok || !v.Activo {
		return repository.ErrNoEncontrado
	}
	v.Activo = false
	return nil
}

var _ repository.VendedorRepository = (*stubVendedorRepo)(nil)

// stubConfiguracionRepo serves a fixed configuration row.
type stubConfiguracionRepo struct {
	cfg    *model.Configuracion
	fallar bool
}

func (r *stubConfiguracionRepo) Obtener(_ context.Context) (*model.Configuracion, error) {
	if r.fallar {
		return nil, errAlmacenCaido
	}
	if r.cfg == nil {
		return nil, repository.ErrNoEncontrado
	}
	return r.cfg, nil
}

func (r *stubConfiguracionRepo) Guardar(_ context.Context, cfg *model.Configuracion) error {
	if r.fallar {
		return errAlmacenCaido
	}
	r.cfg = cfg
	return nil
}

var _ repository.ConfiguracionRepository = (*stubConfiguracionRepo)(nil)

// ── Builders ─────────────────────────────────────────────────────────────────

func vendedorDePrueba(repo *stubVendedorRepo, nombre string) *model.Vendedor {
	v := &model.Vendedor{ID: uuid.New(), Nombre: nombre, Activo: true}
	repo.vendedores[v.ID] = v
	return v
}

func buildVentaSvc() (*ventaService, *stubVentaRepo, *stubVendedorRepo) {
	ventaRepo := newStubVentaRepo()
	vendedorRepo := newStubVendedorRepo()
	configSvc := NewConfiguracionService(&stubConfiguracionRepo{}, nil)
	svc := NewVentaService(ventaRepo, vendedorRepo, configSvc).(*ventaService)
	svc.ahora = func() time.Time { return time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC) }
	return svc, ventaRepo, vendedorRepo
}
