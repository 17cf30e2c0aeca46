package service

import (
	"errors"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/liquidacion"
)

// Typed failure conditions surfaced to the handler layer. Storage failures
// are never retried here: the boundary decides whether the user retries.
var (
	ErrVentaNoEncontrada       = errors.New("venta no encontrada")
	ErrVendedorNoEncontrado    = errors.New("vendedor no encontrado")
	ErrVendedorInvalido        = errors.New("vendedor_id inválido")
	ErrUniversidadNoEncontrada = errors.New("universidad no encontrada")
	ErrFechaInvalida           = errors.New("fecha inválida, se espera YYYY-MM-DD")
	ErrMesInvalido             = errors.New("mes inválido, se espera YYYY-MM")
	ErrAlmacenNoDisponible     = errors.New("almacén de datos no disponible")

	// ErrMontoInvalido re-exports the calculator's precondition so handlers
	// only depend on this package.
	ErrMontoInvalido = liquidacion.ErrMontoInvalido
)
