package handler

import (
	"net/http"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/apierror"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/dto"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// Registrar godoc
// @Summary      Registrar una nueva venta
// @Description  Liquida la venta bajo la configuración vigente y la persiste con todos los montos congelados. Si incluye domicilio sin valor conocido, queda en estado "pendiente" hasta la corrección.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body body dto.RegistrarVentaRequest true "Detalle de la venta"
// @Success      201  {object} dto.VentaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/ventas [post]
func (h *VentasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Previsualizar godoc
// @Summary      Previsualizar la liquidación de una venta
// @Description  Ejecuta el cálculo puro sin persistir nada; pensado para el formulario en vivo.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body body dto.PrevisualizarVentaRequest true "Parámetros de la venta"
// @Success      200  {object} dto.PrevisualizacionResponse
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/ventas/previsualizar [post]
func (h *VentasHandler) Previsualizar(c *gin.Context) {
	var req dto.PrevisualizarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Previsualizar(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar ventas
// @Description  Hasta 500 ventas, más recientes primero, filtrables por rango de fechas (días completos UTC, inclusivos) y vendedor. Si el almacén no responde se sirven datos de ejemplo marcados es_ejemplo.
// @Tags         ventas
// @Produce      json
// @Param        fecha_desde query string false "YYYY-MM-DD"
// @Param        fecha_hasta query string false "YYYY-MM-DD"
// @Param        vendedor_id query string false "UUID del vendedor"
// @Success      200    {object} dto.VentaListResponse
// @Failure      400    {object} apierror.APIError
// @Router       /v1/ventas [get]
func (h *VentasHandler) Listar(c *gin.Context) {
	var filtro dto.VentaFilter
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filtro)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Anular godoc
// @Summary      Anular venta
// @Description  Elimina la venta definitivamente. Las ventas no manejan borrado suave.
// @Tags         ventas
// @Param        id path string true "UUID de la venta"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ventas/{id} [delete]
func (h *VentasHandler) Anular(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Anular(c.Request.Context(), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ActualizarDomicilio godoc
// @Summary      Corregir el domicilio de una venta
// @Description  Única mutación permitida sobre una venta persistida: recalcula las mitades del domicilio y la ganancia del operador a partir de los montos congelados. Idempotente.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id   path string                        true "UUID de la venta"
// @Param        body body dto.ActualizarDomicilioRequest true "Nuevo valor del domicilio"
// @Success      200  {object} dto.VentaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/ventas/{id}/domicilio [patch]
func (h *VentasHandler) ActualizarDomicilio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarDomicilioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarDomicilio(c.Request.Context(), id, *req.ValorDomicilio)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
