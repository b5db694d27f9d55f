package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/andinosoft/erp-pyme/internal/application/auth"
	appcompras "github.com/andinosoft/erp-pyme/internal/application/compras"
	"github.com/andinosoft/erp-pyme/internal/application/inventory"
	"github.com/andinosoft/erp-pyme/internal/application/usecase"
	infrapdf "github.com/andinosoft/erp-pyme/internal/infrastructure/pdf"
	"github.com/andinosoft/erp-pyme/internal/infrastructure/postgres"
	"github.com/andinosoft/erp-pyme/internal/infrastructure/redisstore"
	httpRouter "github.com/andinosoft/erp-pyme/internal/interfaces/http"
	"github.com/andinosoft/erp-pyme/pkg/config"
	"github.com/andinosoft/erp-pyme/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Redis es opcional: sin REDIS_ADDR no hay refresh tokens ni rate limiting.
	var redisClient *redis.Client
	var tokenStore auth.TokenStore
	var loginLimiter, escrituraLimiter httpRouter.Limiter
	if cfg.Redis.Addr != "" {
		redisClient, err = redisstore.NewClient(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisClient.Close()
		tokenStore = redisstore.NewTokenStore(redisClient)
		loginLimiter = redisstore.NewRateLimiter(redisClient, 10, time.Minute)
		escrituraLimiter = redisstore.NewRateLimiter(redisClient, 120, time.Minute)
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: refresh tokens y rate limiting desactivados")
	}

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	almacenRepo := postgres.NewAlmacenRepository(pool)
	motivoRepo := postgres.NewMotivoRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	entidadRepo := postgres.NewEntidadRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, tokenStore, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		RefreshTTL: time.Duration(cfg.JWT.RefreshDuration) * time.Hour,
		Issuer:     cfg.JWT.Issuer,
	})
	productoUC := usecase.NewProductoUseCase(productoRepo)
	almacenUC := usecase.NewAlmacenUseCase(almacenRepo)
	entidadUC := usecase.NewEntidadUseCase(entidadRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	movimientoUC := inventory.NewMovimientoUseCase(txRunner, productoRepo, almacenRepo, motivoRepo)
	consultaUC := inventory.NewConsultaUseCase(movimientoRepo, stockRepo, motivoRepo)
	reporteUC := inventory.NewReporteUseCase(stockRepo, infrapdf.NewMarotoStockReport())
	compraUC := appcompras.NewCompraUseCase(txRunner, compraRepo, almacenRepo, entidadRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductoUC:       productoUC,
		AlmacenUC:        almacenUC,
		EntidadUC:        entidadUC,
		UsuarioUC:        usuarioUC,
		MovimientoUC:     movimientoUC,
		ConsultaUC:       consultaUC,
		ReporteUC:        reporteUC,
		CompraUC:         compraUC,
		JWTSecret:        cfg.JWT.Secret,
		LoginLimiter:     loginLimiter,
		EscrituraLimiter: escrituraLimiter,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
