//go:build integration

package e2e

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Scenarios:
//   - Full sale cycle: create seller → register sale → list → weekly summary
//   - Deferred delivery: pending sale amended, profit recomputed once
//   - Configuration edit only re-prices future sales

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/config"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/infra"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("ventas_test"),
		tcPostgres.WithUsername("ventas"),
		tcPostgres.WithPassword("ventas"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:        8000,
		Env:         "test",
		DatabaseURL: pgURL,
		RedisURL:    rdURL,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	srv := httptest.NewServer(router.New(cfg, db, rdb))
	t.Cleanup(srv.Close)
	return srv
}

func crearVendedor(t *testing.T, srv *httptest.Server, nombre string) string {
	t.Helper()
	resp := do(t, srv, http.MethodPost, "/v1/vendedores", jsonBody(t, map[string]any{"nombre": nombre}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var vendedor struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &vendedor)
	return vendedor.ID
}

// ── Scenarios ────────────────────────────────────────────────────────────────

func TestE2E_CicloCompletoDeVenta(t *testing.T) {
	srv := setupServer(t)
	vendedorID := crearVendedor(t, srv, "Carlos")

	// Register a 25-unit sale without delivery under the default config.
	resp := do(t, srv, http.MethodPost, "/v1/ventas", jsonBody(t, map[string]any{
		"vendedor_id":       vendedorID,
		"cantidad":          25,
		"incluye_domicilio": false,
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var venta struct {
		ID               string `json:"id"`
		IngresoVendedor  string `json:"ingreso_vendedor"`
		ComisionSocioA   string `json:"comision_socio_a"`
		GananciaOperador string `json:"ganancia_operador"`
		DomicilioEstado  string `json:"domicilio_estado"`
	}
	decodeJSON(t, resp, &venta)
	assert.Equal(t, "172500", venta.IngresoVendedor)
	assert.Equal(t, "20000", venta.ComisionSocioA)
	assert.Equal(t, "140000", venta.GananciaOperador)
	assert.Equal(t, "confirmado", venta.DomicilioEstado)

	// The sale shows up in the listing with real data.
	resp = do(t, srv, http.MethodGet, "/v1/ventas", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listado struct {
		Total     int  `json:"total"`
		EsEjemplo bool `json:"es_ejemplo"`
	}
	decodeJSON(t, resp, &listado)
	assert.Equal(t, 1, listado.Total)
	assert.False(t, listado.EsEjemplo)

	// And in the weekly summary, grouped under the seller.
	resp = do(t, srv, http.MethodGet, "/v1/resumenes/semanal", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var semanal struct {
		NumeroVentas      int                        `json:"numero_ventas"`
		VentasPorVendedor map[string]json.RawMessage `json:"ventas_por_vendedor"`
		EsEjemplo         bool                       `json:"es_ejemplo"`
	}
	decodeJSON(t, resp, &semanal)
	assert.Equal(t, 1, semanal.NumeroVentas)
	assert.Contains(t, semanal.VentasPorVendedor, "Carlos")
	assert.False(t, semanal.EsEjemplo)
}

func TestE2E_DomicilioDiferido(t *testing.T) {
	srv := setupServer(t)
	vendedorID := crearVendedor(t, srv, "Maria")

	// Delivery included but no value yet: stored pending with domicilio 0.
	resp := do(t, srv, http.MethodPost, "/v1/ventas", jsonBody(t, map[string]any{
		"vendedor_id": vendedorID,
		"cantidad":    25,
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var venta struct {
		ID              string `json:"id"`
		DomicilioTotal  string `json:"domicilio_total"`
		DomicilioEstado string `json:"domicilio_estado"`
	}
	decodeJSON(t, resp, &venta)
	assert.Equal(t, "0", venta.DomicilioTotal)
	assert.Equal(t, "pendiente", venta.DomicilioEstado)

	// Amend with the real cost.
	resp = do(t, srv, http.MethodPatch, fmt.Sprintf("/v1/ventas/%s/domicilio", venta.ID),
		jsonBody(t, map[string]any{"valor_domicilio": "5000"}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var corregida struct {
		DomicilioVendedor string `json:"domicilio_vendedor"`
		GananciaOperador  string `json:"ganancia_operador"`
		DomicilioEstado   string `json:"domicilio_estado"`
	}
	decodeJSON(t, resp, &corregida)
	assert.Equal(t, "2500", corregida.DomicilioVendedor)
	assert.Equal(t, "139167", corregida.GananciaOperador)
	assert.Equal(t, "confirmado", corregida.DomicilioEstado)

	// Amending again with the same value changes nothing.
	resp = do(t, srv, http.MethodPatch, fmt.Sprintf("/v1/ventas/%s/domicilio", venta.ID),
		jsonBody(t, map[string]any{"valor_domicilio": "5000"}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &corregida)
	assert.Equal(t, "139167", corregida.GananciaOperador)

	// Negative amounts are rejected.
	resp = do(t, srv, http.MethodPatch, fmt.Sprintf("/v1/ventas/%s/domicilio", venta.ID),
		jsonBody(t, map[string]any{"valor_domicilio": "-1"}))
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestE2E_ConfiguracionSoloAfectaVentasFuturas(t *testing.T) {
	srv := setupServer(t)
	vendedorID := crearVendedor(t, srv, "Pedro")

	registrar := func() string {
		resp := do(t, srv, http.MethodPost, "/v1/ventas", jsonBody(t, map[string]any{
			"vendedor_id":       vendedorID,
			"cantidad":          10,
			"incluye_domicilio": false,
		}))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var venta struct {
			IngresoVendedor string `json:"ingreso_vendedor"`
		}
		decodeJSON(t, resp, &venta)
		return venta.IngresoVendedor
	}

	assert.Equal(t, "70000", registrar())

	resp := do(t, srv, http.MethodPut, "/v1/configuracion", jsonBody(t, map[string]any{
		"precio_distribucion":   "6000",
		"precio_escalon_1":      "8000",
		"precio_escalon_2":      "7500",
		"umbral_escalon":        20,
		"comision_a_por_unidad": "1000",
		"limite_comision_a":     20,
		"comision_b_por_unidad": "500",
		"domicilio_total":       "5000",
		"nombre_socio_operador": "Operador",
		"nombre_socio_a":        "Socio A",
		"nombre_socio_b":        "Socio B",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// New sales settle under the new tier-1 price; the listing still shows
	// the old sale frozen at 70000.
	assert.Equal(t, "80000", registrar())

	resp = do(t, srv, http.MethodGet, "/v1/ventas", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listado struct {
		Data []struct {
			IngresoVendedor string `json:"ingreso_vendedor"`
		} `json:"data"`
	}
	decodeJSON(t, resp, &listado)
	require.Len(t, listado.Data, 2)
	ingresos := []string{listado.Data[0].IngresoVendedor, listado.Data[1].IngresoVendedor}
	assert.Contains(t, ingresos, "70000")
	assert.Contains(t, ingresos, "80000")
}
