package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/liquidacion"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LimiteListado caps every sale listing, newest first.
const LimiteListado = 500

// ErrNoEncontrado is returned when an id does not match any row.
var ErrNoEncontrado = errors.New("registro no encontrado")

// FiltroVentas bounds a listing. Nil bounds are open; VendedorID nil means
// all sellers.
type FiltroVentas struct {
	Desde      *time.Time
	Hasta      *time.Time
	VendedorID *uuid.UUID
}

type VentaRepository interface {
	Create(ctx context.Context, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context, filtro FiltroVentas) ([]model.Venta, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ActualizarDomicilio applies an amendment to the delivery columns in a
	// single atomic UPDATE. Commissions and the seller total are never touched.
	ActualizarDomicilio(ctx context.Context, id uuid.UUID, ajuste liquidacion.AjusteDomicilio) error
	// MesesConVentas lists the distinct "YYYY-MM" months holding sales.
	MesesConVentas(ctx context.Context) ([]string, error)
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) Create(ctx context.Context, v *model.Venta) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) List(ctx context.Context, filtro FiltroVentas) ([]model.Venta, error) {
	q := r.db.WithContext(ctx).Model(&model.Venta{})

	if filtro.Desde != nil {
		q = q.Where("fecha >= ?", *filtro.Desde)
	}
	if filtro.Hasta != nil {
		q = q.Where("fecha <= ?", *filtro.Hasta)
	}
	if filtro.VendedorID != nil {
		q = q.Where("vendedor_id = ?", *filtro.VendedorID)
	}

	var ventas []model.Venta
	err := q.Order("fecha DESC").Limit(LimiteListado).Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Venta{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

func (r *ventaRepo) ActualizarDomicilio(ctx context.Context, id uuid.UUID, ajuste liquidacion.AjusteDomicilio) error {
	res := r.db.WithContext(ctx).Model(&model.Venta{}).Where("id = ?", id).Updates(map[string]interface{}{
		"domicilio_total":    ajuste.DomicilioTotal,
		"domicilio_vendedor": ajuste.DomicilioVendedor,
		"domicilio_socios":   ajuste.DomicilioSocios,
		"ganancia_operador":  ajuste.GananciaOperador,
		"domicilio_estado":   model.DomicilioConfirmado,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

func (r *ventaRepo) MesesConVentas(ctx context.Context) ([]string, error) {
	var meses []string
	err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT to_char(fecha, 'YYYY-MM') AS mes FROM ventas ORDER BY mes`).
		Scan(&meses).Error
	return meses, err
}
