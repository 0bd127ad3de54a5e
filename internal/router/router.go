package router

import (
	"time"

	"comanda/internal/api"
	"comanda/internal/config"
	"comanda/internal/handler"
	"comanda/internal/middleware"
	"comanda/internal/notify"
	"comanda/internal/service"
	"comanda/internal/session"
	"comanda/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← API client ← remote backend
func New(cfg *config.Config, client *api.Client, rdb *redis.Client, notices *notify.Center) *gin.Engine {
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
	r.Use(session.Middleware(cfg.SessionSecret, time.Duration(cfg.SessionTTLHours)*time.Hour))

	// ── API clients ──────────────────────────────────────────────────────────
	authAPI := api.NewAuthClient(client)
	cuentasAPI := api.NewCuentasClient(client)
	productosAPI := api.NewProductosClient(client)
	ingredientesAPI := api.NewIngredientesClient(client)
	serviciosAPI := api.NewServiciosClient(client)
	empleadosAPI := api.NewEmpleadosClient(client)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	fallbackTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	authSvc := service.NewAuthService(authAPI, notices, fallbackTTL)
	cuentaSvc := service.NewCuentaService(cuentasAPI, notices)
	productoSvc := service.NewProductoService(productosAPI, notices)
	ingredienteSvc := service.NewIngredienteService(ingredientesAPI, notices)
	servicioSvc := service.NewServicioService(serviciosAPI, notices)
	empleadoSvc := service.NewEmpleadoService(empleadosAPI, notices)
	reciboSvc := service.NewReciboService(dispatcher, notices, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	cuentasH := handler.NewCuentasHandler(cuentaSvc, reciboSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	ingredientesH := handler.NewIngredientesHandler(ingredienteSvc)
	existenciasH := handler.NewExistenciasHandler(productoSvc, ingredienteSvc)
	serviciosH := handler.NewServiciosHandler(servicioSvc)
	personalH := handler.NewPersonalHandler(empleadoSvc)
	notificacionesH := handler.NewNotificacionesHandler(notices)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(client, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/logout", authH.Logout)
	}

	// Protected routes
	v1 := r.Group("/v1", middleware.RequireSession())
	{
		// Both roles: cuentas, existencias, notificaciones
		ambos := middleware.RequireRole(session.RoleAdministrador, session.RoleAyudante)

		cuentas := v1.Group("/cuentas", ambos)
		{
			cuentas.GET("", cuentasH.Listar)
			cuentas.POST("", cuentasH.Registrar)
			cuentas.PATCH("/:id", cuentasH.Actualizar)
			cuentas.DELETE("/:id", cuentasH.Cancelar)
			cuentas.POST("/:id/servicios", cuentasH.AddServicios)
			cuentas.POST("/:id/productos", cuentasH.AddProductos)
			cuentas.POST("/:id/pagar", cuentasH.Pagar)
			cuentas.GET("/:id/detalle", cuentasH.Detalle)
			cuentas.DELETE("/:id/detalle", cuentasH.CerrarDetalle)
			cuentas.GET("/:id/recibo", cuentasH.ExportarRecibo)
			cuentas.POST("/:id/recibo/enviar", cuentasH.EnviarRecibo)
		}

		existencias := v1.Group("/existencias", ambos)
		{
			existencias.POST("/productos/:id", existenciasH.AddStockProducto)
			existencias.POST("/ingredientes/:id", existenciasH.AddStockIngrediente)
		}

		v1.GET("/notificaciones", ambos, notificacionesH.Listar)
		v1.DELETE("/notificaciones/:id", ambos, notificacionesH.Descartar)

		// Catalog reads are open to both roles: the accounts screen needs the
		// product and service listings to attach charges.
		v1.GET("/productos", ambos, productosH.Listar)
		v1.GET("/productos/preparados", ambos, productosH.ListarPreparados)
		v1.GET("/servicios", ambos, serviciosH.Listar)

		// Management screens — administrador only
		admin := middleware.RequireRole(session.RoleAdministrador)

		prods := v1.Group("/productos", admin)
		{
			prods.POST("", productosH.Registrar)
			prods.POST("/preparados", productosH.RegistrarPreparado)
			prods.PATCH("/:id", productosH.Actualizar)
			prods.PATCH("/:id/estado", productosH.CambiarEstado)
			prods.DELETE("/:id", productosH.Eliminar)
		}

		ingredientes := v1.Group("/ingredientes", admin)
		{
			ingredientes.GET("", ingredientesH.Listar)
			ingredientes.POST("", ingredientesH.Registrar)
			ingredientes.PATCH("/:id", ingredientesH.Actualizar)
			ingredientes.PATCH("/:id/estado", ingredientesH.CambiarEstado)
			ingredientes.DELETE("/:id", ingredientesH.Eliminar)
		}

		servicios := v1.Group("/servicios", admin)
		{
			servicios.POST("", serviciosH.Registrar)
			servicios.PUT("/:id", serviciosH.Actualizar)
			servicios.DELETE("/:id", serviciosH.Eliminar)
		}

		personal := v1.Group("/personal", admin)
		{
			personal.GET("", personalH.Listar)
			personal.POST("", personalH.Registrar)
			personal.PATCH("/:id", personalH.Actualizar)
			personal.DELETE("/:id", personalH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
