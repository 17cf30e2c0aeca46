package repository

import (
	"context"
	"errors"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roster repositories. Both entities soft-delete via Activo so sales keep
// valid references.

type VendedorRepository interface {
	Create(ctx context.Context, v *model.Vendedor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vendedor, error)
	ListActivos(ctx context.Context) ([]model.Vendedor, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type vendedorRepo struct{ db *gorm.DB }

func NewVendedorRepository(db *gorm.DB) VendedorRepository { return &vendedorRepo{db: db} }

func (r *vendedorRepo) Create(ctx context.Context, v *model.Vendedor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vendedorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vendedor, error) {
	var v model.Vendedor
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vendedorRepo) ListActivos(ctx context.Context) ([]model.Vendedor, error) {
	var vendedores []model.Vendedor
	err := r.db.WithContext(ctx).Where("activo = ?", true).Order("nombre").Find(&vendedores).Error
	return vendedores, err
}

func (r *vendedorRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Vendedor{}).
		Where("id = ? AND activo = ?", id, true).
		Update("activo", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

type UniversidadRepository interface {
	Create(ctx context.Context, u *model.Universidad) error
	ListActivas(ctx context.Context) ([]model.Universidad, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type universidadRepo struct{ db *gorm.DB }

func NewUniversidadRepository(db *gorm.DB) UniversidadRepository { return &universidadRepo{db: db} }

func (r *universidadRepo) Create(ctx context.Context, u *model.Universidad) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *universidadRepo) ListActivas(ctx context.Context) ([]model.Universidad, error) {
	var universidades []model.Universidad
	err := r.db.WithContext(ctx).Where("activo = ?", true).Order("nombre").Find(&universidades).Error
	return universidades, err
}

func (r *universidadRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Universidad{}).
		Where("id = ? AND activo = ?", id, true).
		Update("activo", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}
