package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/dto"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/model"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/repository"

	"github.com/google/uuid"
)

// Roster management. No computed invariants here: sellers and universities
// are plain entities with soft-delete.

type VendedorService interface {
	Crear(ctx context.Context, req dto.CrearVendedorRequest) (*dto.VendedorResponse, error)
	Listar(ctx context.Context) ([]dto.VendedorResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type vendedorService struct{ repo repository.VendedorRepository }

func NewVendedorService(repo repository.VendedorRepository) VendedorService {
	return &vendedorService{repo: repo}
}

func (s *vendedorService) Crear(ctx context.Context, req dto.CrearVendedorRequest) (*dto.VendedorResponse, error) {
	v := &model.Vendedor{
		Nombre:      req.Nombre,
		Universidad: req.Universidad,
		Telefono:    req.Telefono,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return vendedorADTO(v), nil
}

func (s *vendedorService) Listar(ctx context.Context) ([]dto.VendedorResponse, error) {
	vendedores, err := s.repo.ListActivos(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	out := make([]dto.VendedorResponse, 0, len(vendedores))
	for i := range vendedores {
		out = append(out, *vendedorADTO(&vendedores[i]))
	}
	return out, nil
}

func (s *vendedorService) Eliminar(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Desactivar(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return ErrVendedorNoEncontrado
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return nil
}

func vendedorADTO(v *model.Vendedor) *dto.VendedorResponse {
	return &dto.VendedorResponse{
		ID:          v.ID.String(),
		Nombre:      v.Nombre,
		Universidad: v.Universidad,
		Telefono:    v.Telefono,
	}
}

type UniversidadService interface {
	Crear(ctx context.Context, req dto.CrearUniversidadRequest) (*dto.UniversidadResponse, error)
	Listar(ctx context.Context) ([]dto.UniversidadResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type universidadService struct{ repo repository.UniversidadRepository }

func NewUniversidadService(repo repository.UniversidadRepository) UniversidadService {
	return &universidadService{repo: repo}
}

func (s *universidadService) Crear(ctx context.Context, req dto.CrearUniversidadRequest) (*dto.UniversidadResponse, error) {
	u := &model.Universidad{Nombre: req.Nombre, Activo: true}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return &dto.UniversidadResponse{ID: u.ID.String(), Nombre: u.Nombre}, nil
}

func (s *universidadService) Listar(ctx context.Context) ([]dto.UniversidadResponse, error) {
	universidades, err := s.repo.ListActivas(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	out := make([]dto.UniversidadResponse, 0, len(universidades))
	for _, u := range universidades {
		out = append(out, dto.UniversidadResponse{ID: u.ID.String(), Nombre: u.Nombre})
	}
	return out, nil
}

func (s *universidadService) Eliminar(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Desactivar(ctx, id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return ErrUniversidadNoEncontrada
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAlmacenNoDisponible, err)
	}
	return nil
}
