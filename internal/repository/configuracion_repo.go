package repository

import (
	"context"
	"errors"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/model"

	"gorm.io/gorm"
)

type ConfiguracionRepository interface {
	// Obtener returns the singleton row, or ErrNoEncontrado on an empty table.
	Obtener(ctx context.Context) (*model.Configuracion, error)
	// Guardar updates the singleton row, creating it on first save.
	Guardar(ctx context.Context, cfg *model.Configuracion) error
}

type configuracionRepo struct{ db *gorm.DB }

func NewConfiguracionRepository(db *gorm.DB) ConfiguracionRepository {
	return &configuracionRepo{db: db}
}

func (r *configuracionRepo) Obtener(ctx context.Context) (*model.Configuracion, error) {
	var cfg model.Configuracion
	err := r.db.WithContext(ctx).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *configuracionRepo) Guardar(ctx context.Context, cfg *model.Configuracion) error {
	var existente model.Configuracion
	err := r.db.WithContext(ctx).First(&existente).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.WithContext(ctx).Create(cfg).Error
	case err != nil:
		return err
	default:
		cfg.ID = existente.ID
		return r.db.WithContext(ctx).Model(&existente).Updates(cfg).Error
	}
}
