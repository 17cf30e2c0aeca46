package router

import (
	"time"

	"github.com/Zifro-Devs/Venta-Sanduches/internal/config"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/handler"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/middleware"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/repository"
	"github.com/Zifro-Devs/Venta-Sanduches/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	ventaRepo := repository.NewVentaRepository(db)
	configuracionRepo := repository.NewConfiguracionRepository(db)
	vendedorRepo := repository.NewVendedorRepository(db)
	universidadRepo := repository.NewUniversidadRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	configuracionSvc := service.NewConfiguracionService(configuracionRepo, rdb)
	ventaSvc := service.NewVentaService(ventaRepo, vendedorRepo, configuracionSvc)
	resumenSvc := service.NewResumenService(ventaRepo)
	vendedorSvc := service.NewVendedorService(vendedorRepo)
	universidadSvc := service.NewUniversidadService(universidadRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	ventasH := handler.NewVentasHandler(ventaSvc)
	resumenesH := handler.NewResumenesHandler(resumenSvc)
	configuracionH := handler.NewConfiguracionHandler(configuracionSvc)
	vendedoresH := handler.NewVendedoresHandler(vendedorSvc)
	universidadesH := handler.NewUniversidadesHandler(universidadSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		v1.POST("/ventas", ventasH.Registrar)
		v1.POST("/ventas/previsualizar", ventasH.Previsualizar)
		v1.GET("/ventas", ventasH.Listar)
		v1.DELETE("/ventas/:id", ventasH.Anular)
		v1.PATCH("/ventas/:id/domicilio", ventasH.ActualizarDomicilio)

		resumenes := v1.Group("/resumenes")
		{
			resumenes.GET("/semanal", resumenesH.Semanal)
			resumenes.GET("/mensual", resumenesH.Mensual)
			resumenes.GET("/mensual/pdf", resumenesH.MensualPDF)
			resumenes.GET("/rango", resumenesH.Rango)
			resumenes.GET("/meses", resumenesH.Meses)
		}

		v1.GET("/configuracion", configuracionH.Obtener)
		v1.PUT("/configuracion", configuracionH.Guardar)

		v1.POST("/vendedores", vendedoresH.Crear)
		v1.GET("/vendedores", vendedoresH.Listar)
		v1.DELETE("/vendedores/:id", vendedoresH.Eliminar)

		v1.POST("/universidades", universidadesH.Crear)
		v1.GET("/universidades", universidadesH.Listar)
		v1.DELETE("/universidades/:id", universidadesH.Eliminar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
