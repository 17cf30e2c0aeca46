package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/dto"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/liquidacion"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/model"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	configCacheKey = "configuracion"
	configCacheTTL = 4 * time.Hour
)

type ConfiguracionService interface {
	// Obtener serves the singleton configuration; on storage failure it
	// degrades to the compiled-in defaults flagged es_ejemplo.
	Obtener(ctx context.Context) (*dto.ConfiguracionResponse, error)
	// Guardar replaces the configuration. Future sales only: nothing already
	// persisted is ever re-priced.
	Guardar(ctx context.Context, req dto.GuardarConfiguracionRequest) error
	// ReglasActuales returns the settlement rules for the write path. Unlike
	// Obtener it does NOT fall back on storage errors: a sale must never be
	// settled against guessed prices.
	ReglasActuales(ctx context.Context) (liquidacion.Reglas, error)
}

type configuracionService struct {
	repo repository.ConfiguracionRepository
	rdb  *redis.Client
}

func NewConfiguracionService(repo repository.ConfiguracionRepository, rdb *redis.Client) ConfiguracionService {
	return &configuracionService{repo: repo, rdb: rdb}
}

// obtenerModelo resolves the configuration row: cache, then store, then the
// defaults when the table is simply empty (first boot).
func (s *configuracionService) obtenerModelo(ctx context.Context) (*model.Configuracion, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, configCacheKey).Bytes(); err == nil {
			var cfg model.Configuracion
			if jsonErr := json.Unmarshal(cached, &cfg); jsonErr == nil {
				return &cfg, nil
			}
		}
	}

	cfg, err := s.repo.Obtener(ctx)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return model.ConfiguracionPorDefecto(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}

	// Populate cache — best effort.
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(cfg); jsonErr == nil {
			_ = s.rdb.Set(context.Background(), configCacheKey, b, configCacheTTL).Err()
		}
	}
	return cfg, nil
}

func (s *configuracionService) Obtener(ctx context.Context) (*dto.ConfiguracionResponse, error) {
	cfg, err := s.obtenerModelo(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("configuración no disponible, sirviendo valores por defecto")
		resp := configuracionADTO(model.ConfiguracionPorDefecto())
		resp.EsEjemplo = true
		return resp, nil
	}
	return configuracionADTO(cfg), nil
}

func (s *configuracionService) Guardar(ctx context.Context, req dto.GuardarConfiguracionRequest) error {
	cfg := &model.Configuracion{
		PrecioDistribucion: req.PrecioDistribucion.Round(0),
		PrecioEscalon1:     req.PrecioEscalon1.Round(0),
		PrecioEscalon2:     req.PrecioEscalon2.Round(0),
		UmbralEscalon:      req.UmbralEscalon,
		ComisionAPorUnidad: req.ComisionAPorUnidad.Round(0),
		LimiteComisionA:    req.LimiteComisionA,
		ComisionBPorUnidad: req.ComisionBPorUnidad.Round(0),
		DomicilioTotal:     req.DomicilioTotal.Round(0),

		NombreSocioOperador: req.NombreSocioOperador,
		NombreSocioA:        req.NombreSocioA,
		NombreSocioB:        req.NombreSocioB,
	}
	if err := s.repo.Guardar(ctx, cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, configCacheKey).Err()
	}
	return nil
}

func (s *configuracionService) ReglasActuales(ctx context.Context) (liquidacion.Reglas, error) {
	cfg, err := s.obtenerModelo(ctx)
	if err != nil {
		return liquidacion.Reglas{}, err
	}
	return cfg.Reglas(), nil
}

func configuracionADTO(cfg *model.Configuracion) *dto.ConfiguracionResponse {
	return &dto.ConfiguracionResponse{
		PrecioDistribucion: cfg.PrecioDistribucion,
		PrecioEscalon1:     cfg.PrecioEscalon1,
		PrecioEscalon2:     cfg.PrecioEscalon2,
		UmbralEscalon:      cfg.UmbralEscalon,
		ComisionAPorUnidad: cfg.ComisionAPorUnidad,
		LimiteComisionA:    cfg.LimiteComisionA,
		ComisionBPorUnidad: cfg.ComisionBPorUnidad,
		DomicilioTotal:     cfg.DomicilioTotal,

		NombreSocioOperador: cfg.NombreSocioOperador,
		NombreSocioA:        cfg.NombreSocioA,
		NombreSocioB:        cfg.NombreSocioB,
	}
}
