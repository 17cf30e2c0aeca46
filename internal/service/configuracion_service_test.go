package service

import (
	"context"
	"testing"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/dto"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObtenerTablaVaciaRespondeLosDefectos(t *testing.T) {
	svc := NewConfiguracionService(&stubConfiguracionRepo{}, nil)

	resp, err := svc.Obtener(context.Background())
	require.NoError(t, err)

	// First boot is not a failure: defaults without the example flag.
	assert.False(t, resp.EsEjemplo)
	assert.True(t, resp.PrecioEscalon1.Equal(decimal.NewFromInt(7000)))
	assert.Equal(t, 20, resp.UmbralEscalon)
}

func TestObtenerDegradaAEjemplo(t *testing.T) {
	svc := NewConfiguracionService(&stubConfiguracionRepo{fallar: true}, nil)

	resp, err := svc.Obtener(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.EsEjemplo)
	assert.True(t, resp.PrecioEscalon1.Equal(decimal.NewFromInt(7000)))
}

func TestGuardarRedondeaYPersiste(t *testing.T) {
	repo := &stubConfiguracionRepo{}
	svc := NewConfiguracionService(repo, nil)

	err := svc.Guardar(context.Background(), dto.GuardarConfiguracionRequest{
		PrecioDistribucion: decimal.NewFromFloat(6000.4),
		PrecioEscalon1:     decimal.NewFromFloat(7499.6),
		PrecioEscalon2:     decimal.NewFromInt(7000),
		UmbralEscalon:      15,
		ComisionAPorUnidad: decimal.NewFromInt(1200),
		LimiteComisionA:    15,
		ComisionBPorUnidad: decimal.NewFromInt(600),
		DomicilioTotal:     decimal.NewFromInt(6000),

		NombreSocioOperador: "Operador",
		NombreSocioA:        "Socio A",
		NombreSocioB:        "Socio B",
	})
	require.NoError(t, err)

	require.NotNil(t, repo.cfg)
	assert.True(t, repo.cfg.PrecioDistribucion.Equal(decimal.NewFromInt(6000)))
	assert.True(t, repo.cfg.PrecioEscalon1.Equal(decimal.NewFromInt(7500)))
	assert.Equal(t, 15, repo.cfg.UmbralEscalon)
}

func TestReglasActuales(t *testing.T) {
	cfg := model.ConfiguracionPorDefecto()
	cfg.PrecioEscalon1 = decimal.NewFromInt(8000)
	svc := NewConfiguracionService(&stubConfiguracionRepo{cfg: cfg}, nil)

	reglas, err := svc.ReglasActuales(context.Background())
	require.NoError(t, err)
	assert.True(t, reglas.PrecioEscalon1.Equal(decimal.NewFromInt(8000)))

	// Empty table settles against the defaults.
	svc = NewConfiguracionService(&stubConfiguracionRepo{}, nil)
	reglas, err = svc.ReglasActuales(context.Background())
	require.NoError(t, err)
	assert.True(t, reglas.PrecioEscalon1.Equal(decimal.NewFromInt(7000)))

	// A real storage failure never settles against guessed prices.
	svc = NewConfiguracionService(&stubConfiguracionRepo{fallar: true}, nil)
	_, err = svc.ReglasActuales(context.Background())
	assert.ErrorIs(t, err, ErrAlmacenNoDisponible)
}

func TestGuardarAfectaSoloVentasFuturas(t *testing.T) {
	configRepo := &stubConfiguracionRepo{}
	configSvc := NewConfiguracionService(configRepo, nil)
	ventaRepo := newStubVentaRepo()
	vendedorRepo := newStubVendedorRepo()
	ventaSvc := NewVentaService(ventaRepo, vendedorRepo, configSvc)
	carlos := vendedorDePrueba(vendedorRepo, "Carlos")

	antes, err := ventaSvc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		VendedorID:       carlos.ID.String(),
		Cantidad:         10,
		IncluyeDomicilio: boolPtr(false),
	})
	require.NoError(t, err)
	assert.True(t, antes.IngresoVendedor.Equal(decimal.NewFromInt(70000)))

	err = configSvc.Guardar(context.Background(), dto.GuardarConfiguracionRequest{
		PrecioDistribucion: decimal.NewFromInt(6000),
		PrecioEscalon1:     decimal.NewFromInt(8000),
		PrecioEscalon2:     decimal.NewFromInt(7500),
		UmbralEscalon:      20,
		ComisionAPorUnidad: decimal.NewFromInt(1000),
		LimiteComisionA:    20,
		ComisionBPorUnidad: decimal.NewFromInt(500),
		DomicilioTotal:     decimal.NewFromInt(5000),

		NombreSocioOperador: "Operador",
		NombreSocioA:        "Socio A",
		NombreSocioB:        "Socio B",
	})
	require.NoError(t, err)

	despues, err := ventaSvc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		VendedorID:       carlos.ID.String(),
		Cantidad:         10,
		IncluyeDomicilio: boolPtr(false),
	})
	require.NoError(t, err)
	assert.True(t, despues.IngresoVendedor.Equal(decimal.NewFromInt(80000)))

	// The earlier sale keeps its frozen amounts.
	for _, v := range ventaRepo.ventas {
		if v.ID.String() == antes.ID {
			assert.True(t, v.IngresoVendedor.Equal(decimal.NewFromInt(70000)))
		}
	}
}
