package service

import (
	"context"
	"testing"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/dto"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func decPtr(n int64) *decimal.Decimal {
	v := decimal.NewFromInt(n)
	return &v
}

func TestRegistrarCongelaLosMontos(t *testing.T) {
	svc, ventaRepo, vendedorRepo := buildVentaSvc()
	carlos := vendedorDePrueba(vendedorRepo, "Carlos")

	resp, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		VendedorID:       carlos.ID.String(),
		Cantidad:         25,
		IncluyeDomicilio: boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "Carlos", resp.Vendedor)
	assert.True(t, resp.IngresoVendedor.Equal(decimal.NewFromInt(172500)))
	assert.True(t, resp.ComisionSocioA.Equal(decimal.NewFromInt(20000)))
	assert.True(t, resp.ComisionSocioB.Equal(decimal.NewFromInt(12500)))
	assert.True(t, resp.GananciaOperador.Equal(decimal.NewFromInt(140000)))
	assert.Equal(t, model.DomicilioConfirmado, resp.DomicilioEstado)
	assert.Len(t, ventaRepo.ventas, 1)
}

func TestRegistrarDomicilioDiferido(t *testing.T) {
	svc, ventaRepo, vendedorRepo := buildVentaSvc()
	carlos := vendedorDePrueba(vendedorRepo, "Carlos")

	// Delivery included (the default) but no value yet: settle with 0 and
	// leave the sale pending its amendment.
	resp, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		VendedorID: carlos.ID.String(),
		Cantidad:   25,
	})
	require.NoError(t, err)

	assert.True(t, resp.DomicilioTotal.IsZero())
	assert.True(t, resp.DomicilioVendedor.IsZero())
	assert.Equal(t, model.DomicilioPendiente, resp.DomicilioEstado)
	assert.True(t, resp.GananciaOperador.Equal(decimal.NewFromInt(140000)))

	id := uuid.MustParse(resp.ID)
	assert.Equal(t, model.DomicilioPendiente, ventaRepo.ventas[id].DomicilioEstado)
}

func TestRegistrarConValorExplicito(t *testing.T) {
	svc, _, vendedorRepo := buildVentaSvc()
	carlos := vendedorDePrueba(vendedorRepo, "Carlos")

	resp, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		VendedorID:     carlos.ID.String(),
		Cantidad:       25,
		ValorDomicilio: decPtr(5000),
	})
	require.NoError(t, err)

	assert.True(t, resp.DomicilioVendedor.Equal(decimal.NewFromInt(2500)))
	assert.True(t, resp.DomicilioSocios.Equal(decimal.NewFromInt(2500)))
	// 140000 − 2500/3, rounded once at write.
	assert.True(t, resp.GananciaOperador.Equal(decimal.NewFromInt(139167)))
	assert.Equal(t, model.DomicilioConfirmado, resp.DomicilioEstado)
}

func TestRegistrarVendedorDesconocido(t *testing.T) {
	svc, _, _ := buildVentaSvc()

	_, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		VendedorID: uuid.NewString(),
		Cantidad:   5,
	})
	assert.ErrorIs(t, err, ErrVendedorNoEncontrado)

	_, err = svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		VendedorID: "no-es-un-uuid",
		Cantidad:   5,
	})
	assert.ErrorIs(t, err, ErrVendedorInvalido)
}

func TestActualizarDomicilioRecalculaDesdeMontosCongelados(t *testing.T) {
	svc, ventaRepo, vendedorRepo := buildVentaSvc()
	carlos := vendedorDePrueba(vendedorRepo, "Carlos")

	registrada, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		VendedorID: carlos.ID.String(),
		Cantidad:   25,
	})
	require.NoError(t, err)
	id := uuid.MustParse(registrada.ID)

	resp, err := svc.ActualizarDomicilio(context.Background(), id, decimal.NewFromInt(5000))
	require.NoError(t, err)

	assert.True(t, resp.DomicilioTotal.Equal(decimal.NewFromInt(5000)))
	assert.True(t, resp.DomicilioVendedor.Equal(decimal.NewFromInt(2500)))
	assert.True(t, resp.GananciaOperador.Equal(decimal.NewFromInt(139167)))
	assert.Equal(t, model.DomicilioConfirmado, resp.DomicilioEstado)

	// Commissions and the seller total never move under an amendment.
	guardada := ventaRepo.ventas[id]
	assert.True(t, guardada.ComisionSocioA.Equal(decimal.NewFromInt(20000)))
	assert.True(t, guardada.ComisionSocioB.Equal(decimal.NewFromInt(12500)))
	assert.True(t, guardada.IngresoVendedor.Equal(decimal.NewFromInt(172500)))
}

func TestActualizarDomicilioIdempotente(t *testing.T) {
	svc, ventaRepo, vendedorRepo := buildVentaSvc()
	carlos := vendedorDePrueba(vendedorRepo, "Carlos")

	registrada, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		VendedorID: carlos.ID.String(),
		Cantidad:   25,
	})
	require.NoError(t, err)
	id := uuid.MustParse(registrada.ID)

	primero, err := svc.ActualizarDomicilio(context.Background(), id, decimal.NewFromInt(5000))
	require.NoError(t, err)
	segundo, err := svc.ActualizarDomicilio(context.Background(), id, decimal.NewFromInt(5000))
	require.NoError(t, err)

	assert.True(t, primero.GananciaOperador.Equal(segundo.GananciaOperador))
	assert.True(t, ventaRepo.ventas[id].GananciaOperador.Equal(decimal.NewFromInt(139167)))
}

func TestActualizarDomicilioErrores(t *testing.T) {
	svc, _, vendedorRepo := buildVentaSvc()
	carlos := vendedorDePrueba(vendedorRepo, "Carlos")

	registrada, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		VendedorID: carlos.ID.String(),
		Cantidad:   10,
	})
	require.NoError(t, err)

	_, err = svc.ActualizarDomicilio(context.Background(), uuid.MustParse(registrada.ID), decimal.NewFromInt(-100))
	assert.ErrorIs(t, err, ErrMontoInvalido)

	_, err = svc.ActualizarDomicilio(context.Background(), uuid.New(), decimal.NewFromInt(5000))
	assert.ErrorIs(t, err, ErrVentaNoEncontrada)
}

func TestListarDegradaAEjemplo(t *testing.T) {
	svc, ventaRepo, _ := buildVentaSvc()
	ventaRepo.fallar = true

	resp, err := svc.Listar(context.Background(), dto.VentaFilter{})
	require.NoError(t, err)

	assert.True(t, resp.EsEjemplo)
	assert.NotEmpty(t, resp.Data)
}

func TestListarFiltros(t *testing.T) {
	svc, _, vendedorRepo := buildVentaSvc()
	carlos := vendedorDePrueba(vendedorRepo, "Carlos")

	_, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		VendedorID:       carlos.ID.String(),
		Cantidad:         5,
		IncluyeDomicilio: boolPtr(false),
	})
	require.NoError(t, err)

	resp, err := svc.Listar(context.Background(), dto.VentaFilter{
		FechaDesde: "2026-01-07",
		FechaHasta: "2026-01-07",
		VendedorID: carlos.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.False(t, resp.EsEjemplo)

	// Outside the window.
	resp, err = svc.Listar(context.Background(), dto.VentaFilter{FechaHasta: "2026-01-06"})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)

	_, err = svc.Listar(context.Background(), dto.VentaFilter{FechaDesde: "07/01/2026"})
	assert.ErrorIs(t, err, ErrFechaInvalida)

	_, err = svc.Listar(context.Background(), dto.VentaFilter{VendedorID: "zzz"})
	assert.ErrorIs(t, err, ErrVendedorInvalido)
}

func TestAnular(t *testing.T) {
	svc, ventaRepo, vendedorRepo := buildVentaSvc()
	carlos := vendedorDePrueba(vendedorRepo, "Carlos")

	registrada, err := svc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		VendedorID: carlos.ID.String(),
		Cantidad:   5,
	})
	require.NoError(t, err)
	id := uuid.MustParse(registrada.ID)

	require.NoError(t, svc.Anular(context.Background(), id))
	assert.Empty(t, ventaRepo.ventas)

	assert.ErrorIs(t, svc.Anular(context.Background(), id), ErrVentaNoEncontrada)
}

func TestPrevisualizarNoPersisteYUsaElDefecto(t *testing.T) {
	svc, ventaRepo, _ := buildVentaSvc()

	// Omitted delivery value previews the configured default, unlike
	// registration which defers.
	resp, err := svc.Previsualizar(context.Background(), dto.PrevisualizarVentaRequest{Cantidad: 25})
	require.NoError(t, err)

	assert.True(t, resp.DomicilioTotal.Equal(decimal.NewFromInt(5000)))
	assert.True(t, resp.DomicilioSocios.Equal(decimal.NewFromInt(2500)))
	assert.Empty(t, ventaRepo.ventas)
}
