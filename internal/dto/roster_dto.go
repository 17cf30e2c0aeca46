package dto

// ─── Vendedores ──────────────────────────────────────────────────────────────

type CrearVendedorRequest struct {
	Nombre      string `json:"nombre"      validate:"required,min=2"`
	Universidad string `json:"universidad"`
	Telefono    string `json:"telefono"`
}

type VendedorResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Universidad string `json:"universidad"`
	Telefono    string `json:"telefono"`
}

// ─── Universidades ───────────────────────────────────────────────────────────

type CrearUniversidadRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2"`
}

type UniversidadResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
