package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Delivery states for the deferred-entry pattern: a sale registered with
// delivery included but not yet priced is stored with DomicilioTotal = 0 and
// estado "pendiente"; confirming the real cost later is the ONLY mutation a
// persisted sale supports.
const (
	DomicilioPendiente  = "pendiente"
	DomicilioConfirmado = "confirmado"
)

// Venta is one settled sale. Every money column is frozen at registration
// time under the configuration then in force — configuration edits never
// reprice history. Only the delivery columns (and the derived
// ganancia_operador) may be amended afterwards.
//
// Column names and whole-unit money values are a durable contract: external
// tooling reads this table directly.
type Venta struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha      time.Time  `gorm:"index;not null"`
	VendedorID *uuid.UUID `gorm:"type:uuid;index"`
	// Vendedor is the seller's name denormalized at sale time, so reports
	// keep working even if the roster entry is later deactivated.
	Vendedor string `gorm:"index;not null"`
	Cantidad int    `gorm:"not null"`

	CostoDistribucion decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	IngresoVendedor   decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	ComisionSocioA    decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	ComisionSocioB    decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	DomicilioTotal    decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	DomicilioVendedor decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	DomicilioSocios   decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	GananciaOperador  decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	DomicilioEstado   string          `gorm:"not null;default:'confirmado'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
