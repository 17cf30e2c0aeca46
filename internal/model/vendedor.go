package model

import (
	"time"

	"github.com/google/uuid"
)

// Vendedor is a roster entry. Sellers are soft-deleted (Activo=false) so
// historic sales keep a valid reference.
type Vendedor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	Universidad string    `gorm:"not null;default:''"`
	Telefono    string    `gorm:"not null;default:''"`
	Activo      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
