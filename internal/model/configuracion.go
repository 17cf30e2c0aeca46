package model

import (
	"time"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/liquidacion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Configuracion is the single mutable row of pricing, thresholds and
// commission rates. It is read fresh at sale-registration time and never
// versioned: editing it affects future sales only.
type Configuracion struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PrecioDistribucion decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	PrecioEscalon1     decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	PrecioEscalon2     decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	UmbralEscalon      int             `gorm:"not null"`
	ComisionAPorUnidad decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	LimiteComisionA    int             `gorm:"not null"`
	ComisionBPorUnidad decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	DomicilioTotal     decimal.Decimal `gorm:"type:decimal(12,0);not null"`

	// Display labels only; no effect on any calculation.
	NombreSocioOperador string `gorm:"not null;default:'Operador'"`
	NombreSocioA        string `gorm:"not null;default:'Socio A'"`
	NombreSocioB        string `gorm:"not null;default:'Socio B'"`

	UpdatedAt time.Time
}

func (Configuracion) TableName() string { return "configuracion" }

// Reglas projects the stored row into the pure settlement rules.
func (c *Configuracion) Reglas() liquidacion.Reglas {
	return liquidacion.Reglas{
		PrecioDistribucion: c.PrecioDistribucion,
		PrecioEscalon1:     c.PrecioEscalon1,
		PrecioEscalon2:     c.PrecioEscalon2,
		UmbralEscalon:      c.UmbralEscalon,
		ComisionAPorUnidad: c.ComisionAPorUnidad,
		LimiteComisionA:    c.LimiteComisionA,
		ComisionBPorUnidad: c.ComisionBPorUnidad,
		DomicilioTotal:     c.DomicilioTotal,
	}
}

// ConfiguracionPorDefecto are the launch values of the business, used to seed
// an empty database and as the display fallback when storage is unreachable.
func ConfiguracionPorDefecto() *Configuracion {
	return &Configuracion{
		PrecioDistribucion: decimal.NewFromInt(6000),
		PrecioEscalon1:     decimal.NewFromInt(7000),
		PrecioEscalon2:     decimal.NewFromInt(6500),
		UmbralEscalon:      20,
		ComisionAPorUnidad: decimal.NewFromInt(1000),
		LimiteComisionA:    20,
		ComisionBPorUnidad: decimal.NewFromInt(500),
		DomicilioTotal:     decimal.NewFromInt(5000),

		NombreSocioOperador: "Operador",
		NombreSocioA:        "Socio A",
		NombreSocioB:        "Socio B",
	}
}
