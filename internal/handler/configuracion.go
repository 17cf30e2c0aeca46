package handler

import (
	"net/http"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/dto"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/service"

	"github.com/gin-gonic/gin"
)

type ConfiguracionHandler struct{ svc service.ConfiguracionService }

func NewConfiguracionHandler(svc service.ConfiguracionService) *ConfiguracionHandler {
	return &ConfiguracionHandler{svc: svc}
}

// Obtener godoc
// @Summary      Configuración vigente de precios y comisiones
// @Description  Si nunca se ha guardado una configuración se responden los valores por defecto. Ante un fallo del almacén se responden los defectos marcados es_ejemplo.
// @Tags         configuracion
// @Produce      json
// @Success      200 {object} dto.ConfiguracionResponse
// @Router       /v1/configuracion [get]
func (h *ConfiguracionHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Guardar godoc
// @Summary      Reemplazar la configuración vigente
// @Description  Sobrescribe el documento único de configuración. Solo afecta ventas futuras; las ya registradas conservan sus montos congelados.
// @Tags         configuracion
// @Accept       json
// @Produce      json
// @Param        body body dto.GuardarConfiguracionRequest true "Nueva configuración completa"
// @Success      200 {object} dto.ConfiguracionResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/configuracion [put]
func (h *ConfiguracionHandler) Guardar(c *gin.Context) {
	var req dto.GuardarConfiguracionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Guardar(c.Request.Context(), req); err != nil {
		responderError(c, err)
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
