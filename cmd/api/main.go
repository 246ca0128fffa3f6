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

	"github.com/jcamargo/filamentario-api/internal/application/auth"
	"github.com/jcamargo/filamentario-api/internal/application/usecase"
	infrapdf "github.com/jcamargo/filamentario-api/internal/infrastructure/pdf"
	"github.com/jcamargo/filamentario-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcamargo/filamentario-api/internal/interfaces/http"
	"github.com/jcamargo/filamentario-api/pkg/config"
	"github.com/jcamargo/filamentario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if cfg.DB.Migrate {
		if err := postgres.Migrate(ctx, cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones de base de datos")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	spoolRepo := postgres.NewSpoolRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	sharingRepo := postgres.NewSharingRuleRepository(pool)

	spoolUC := usecase.NewSpoolUseCase(spoolRepo)
	batchUC := usecase.NewBatchUseCase(spoolRepo, log)
	bulkUC := usecase.NewImportExportUseCase(spoolRepo, log)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo, spoolRepo, log)
	sharingUC := usecase.NewSharingUseCase(sharingRepo)
	publicUC := usecase.NewPublicUseCase(spoolRepo, sharingRepo, userRepo)

	// PDF: reporte imprimible del inventario
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(spoolRepo, userRepo, reportGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Filamentario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SpoolUC:   spoolUC,
		BatchUC:   batchUC,
		BulkUC:    bulkUC,
		ReportUC:  reportUC,
		CatalogUC: catalogUC,
		SharingUC: sharingUC,
		PublicUC:  publicUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
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
