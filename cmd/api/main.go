package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/serranotex/serrano-tex-ims/internal/application/analytics"
	"github.com/serranotex/serrano-tex-ims/internal/application/auth"
	"github.com/serranotex/serrano-tex-ims/internal/application/inventory"
	"github.com/serranotex/serrano-tex-ims/internal/application/usecase"
	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
	infrapdf "github.com/serranotex/serrano-tex-ims/internal/infrastructure/pdf"
	"github.com/serranotex/serrano-tex-ims/internal/infrastructure/postgres"
	httpRouter "github.com/serranotex/serrano-tex-ims/internal/interfaces/http"
	"github.com/serranotex/serrano-tex-ims/pkg/config"
	"github.com/serranotex/serrano-tex-ims/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File: logger.FileConfig{
			Path:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			MaxBackups: cfg.Log.MaxBackups,
		},
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

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if len(applied) > 0 {
		log.Info().Strs("migrations", applied).Msg("migraciones aplicadas")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	catalogUC := usecase.NewCatalogUseCase(categoryRepo, locationRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	saleUC := usecase.NewSaleUseCase(txRunner, saleRepo, productRepo, customerRepo, locationRepo)
	inventoryUC := inventory.NewUseCase(txRunner, inventoryRepo, movementRepo, productRepo, locationRepo)
	replenishmentUC := inventory.NewReplenishmentUseCase(inventoryRepo, productRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo)
	reportUC := appanalytics.NewReportUseCase(
		dashboardRepo, saleRepo, customerRepo, productRepo,
		infrapdf.NewMarotoPDFGenerator(), cfg.App.Name,
	)

	policy := validation.DefaultPasswordPolicy
	policy.MinLength = cfg.Security.PasswordMinLength
	policy.RequireSymbols = cfg.Security.PasswordRequireSymbols
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, policy)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.Metrics())

	if origins := strings.TrimSpace(cfg.HTTP.CORSOrigins); origins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: origins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		}))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Serrano Tex IMS API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if cfg.Metrics.Enabled {
		app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:       productUC,
		CatalogUC:       catalogUC,
		CustomerUC:      customerUC,
		SaleUC:          saleUC,
		InventoryUC:     inventoryUC,
		ReplenishmentUC: replenishmentUC,
		DashboardUC:     dashboardUC,
		ReportUC:        reportUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
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
