package model

import (
	"time"

	"github.com/google/uuid"
)

// Universidad is a campus a seller works at. Soft-deleted like sellers.
type Universidad struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps GORM from pluralizing to "universidads".
func (Universidad) TableName() string { return "universidades" }
