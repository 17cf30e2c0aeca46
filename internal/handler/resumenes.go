package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/apierror"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/infra"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/service"

	"github.com/gin-gonic/gin"
)

type ResumenesHandler struct{ svc service.ResumenService }

func NewResumenesHandler(svc service.ResumenService) *ResumenesHandler {
	return &ResumenesHandler{svc: svc}
}

// Semanal godoc
// @Summary      Resumen de la semana en curso
// @Description  Agrega las ventas de lunes a domingo (UTC) de la semana que contiene el instante actual, con desglose por vendedor.
// @Tags         resumenes
// @Produce      json
// @Success      200 {object} dto.ResumenSemanalResponse
// @Router       /v1/resumenes/semanal [get]
func (h *ResumenesHandler) Semanal(c *gin.Context) {
	resp, err := h.svc.Semanal(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Mensual godoc
// @Summary      Resumen de un mes calendario
// @Tags         resumenes
// @Produce      json
// @Param        mes query string true "YYYY-MM"
// @Success      200 {object} dto.ResumenMensualResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/resumenes/mensual [get]
func (h *ResumenesHandler) Mensual(c *gin.Context) {
	mes := c.Query("mes")
	if mes == "" {
		c.JSON(http.StatusBadRequest, apierror.New("El parametro mes es obligatorio"))
		return
	}
	resp, err := h.svc.Mensual(c.Request.Context(), mes)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MensualPDF godoc
// @Summary      Resumen mensual en PDF
// @Description  Mismo agregado que /v1/resumenes/mensual, renderizado como documento descargable.
// @Tags         resumenes
// @Produce      application/pdf
// @Param        mes query string true "YYYY-MM"
// @Success      200 {file} binary
// @Failure      400 {object} apierror.APIError
// @Router       /v1/resumenes/mensual/pdf [get]
func (h *ResumenesHandler) MensualPDF(c *gin.Context) {
	mes := c.Query("mes")
	if mes == "" {
		c.JSON(http.StatusBadRequest, apierror.New("El parametro mes es obligatorio"))
		return
	}
	resumen, err := h.svc.Mensual(c.Request.Context(), mes)
	if err != nil {
		responderError(c, err)
		return
	}
	pdf, err := infra.GenerarResumenMensualPDF(resumen, time.Now().UTC())
	if err != nil {
		responderError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=resumen-%s.pdf", mes))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Rango godoc
// @Summary      Resumen de un rango arbitrario de fechas
// @Description  Días completos UTC, extremos inclusivos. Usa los divisores mensuales para las comisiones netas.
// @Tags         resumenes
// @Produce      json
// @Param        desde query string true "YYYY-MM-DD"
// @Param        hasta query string true "YYYY-MM-DD"
// @Success      200 {object} dto.ResumenRangoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/resumenes/rango [get]
func (h *ResumenesHandler) Rango(c *gin.Context) {
	desde, hasta := c.Query("desde"), c.Query("hasta")
	if desde == "" || hasta == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Los parametros desde y hasta son obligatorios"))
		return
	}
	resp, err := h.svc.Rango(c.Request.Context(), desde, hasta)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Meses godoc
// @Summary      Meses con ventas registradas
// @Tags         resumenes
// @Produce      json
// @Success      200 {object} dto.MesesResponse
// @Failure      503 {object} apierror.APIError
// @Router       /v1/resumenes/meses [get]
func (h *ResumenesHandler) Meses(c *gin.Context) {
	resp, err := h.svc.Meses(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
