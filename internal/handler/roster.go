package handler

import (
	"net/http"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/apierror"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/dto"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VendedoresHandler struct{ svc service.VendedorService }

func NewVendedoresHandler(svc service.VendedorService) *VendedoresHandler {
	return &VendedoresHandler{svc: svc}
}

// Crear godoc
// @Summary      Registrar un vendedor
// @Tags         vendedores
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearVendedorRequest true "Datos del vendedor"
// @Success      201 {object} dto.VendedorResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/vendedores [post]
func (h *VendedoresHandler) Crear(c *gin.Context) {
	var req dto.CrearVendedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar vendedores activos
// @Tags         vendedores
// @Produce      json
// @Success      200 {array} dto.VendedorResponse
// @Router       /v1/vendedores [get]
func (h *VendedoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Dar de baja un vendedor
// @Description  Borrado suave: el vendedor desaparece del listado pero sus ventas conservan el nombre desnormalizado.
// @Tags         vendedores
// @Param        id path string true "UUID del vendedor"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/vendedores/{id} [delete]
func (h *VendedoresHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type UniversidadesHandler struct{ svc service.UniversidadService }

func NewUniversidadesHandler(svc service.UniversidadService) *UniversidadesHandler {
	return &UniversidadesHandler{svc: svc}
}

// Crear godoc
// @Summary      Registrar una universidad
// @Tags         universidades
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearUniversidadRequest true "Datos de la universidad"
// @Success      201 {object} dto.UniversidadResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/universidades [post]
func (h *UniversidadesHandler) Crear(c *gin.Context) {
	var req dto.CrearUniversidadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar universidades activas
// @Tags         universidades
// @Produce      json
// @Success      200 {array} dto.UniversidadResponse
// @Router       /v1/universidades [get]
func (h *UniversidadesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Dar de baja una universidad
// @Tags         universidades
// @Param        id path string true "UUID de la universidad"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/universidades/{id} [delete]
func (h *UniversidadesHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
