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

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	appcart "github.com/jhoicas/catalogo-api/internal/application/cart"
	appcatalog "github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/application/sales"
	appsettings "github.com/jhoicas/catalogo-api/internal/application/settings"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	infraai "github.com/jhoicas/catalogo-api/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/catalogo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/sheets"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
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

	kv, err := storage.New(cfg.Storage.DataDir, cfg.Storage.QuotaBytes, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén local")
	}

	// El espejo remoto arranca con el endpoint de config; si el admin guardó
	// otro en los ajustes persistidos, se re-apunta más abajo.
	sheetClient := sheets.NewClient(cfg.Sheet.Endpoint)
	settingsUC := appsettings.New(kv, entity.Settings{
		WhatsAppPhone: cfg.Business.WhatsAppPhone,
		SheetEndpoint: cfg.Sheet.Endpoint,
	}, sheetClient.SetEndpoint, log)
	if ep := settingsUC.Current().SheetEndpoint; ep != cfg.Sheet.Endpoint {
		sheetClient.SetEndpoint(ep)
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	syncWorker := sheets.NewSyncWorker(sheetClient, cfg.Sheet.MaxAttempts, cfg.Sheet.Backoff, log)
	go syncWorker.Start(workerCtx)

	// Reconciliación al arranque: baseline ⊕ snapshot local ⊕ remoto.
	catalog := appcatalog.NewStore()
	reconciler := appcatalog.NewReconcileUseCase(kv, sheetClient, catalog, log)
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 20*time.Second)
	reconciler.Reconcile(startupCtx)
	cancelStartup()

	var enricher ports.Enricher
	if cfg.AI.GeminiAPIKey != "" {
		enricher = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}

	ledger := appcart.NewLedger(catalog)
	adminUC := appcatalog.NewAdminUseCase(kv, catalog, syncWorker, enricher, log)
	finalizeUC := sales.NewFinalizeUseCase(ledger, catalog, kv, syncWorker, settingsUC, log)
	historyUC := sales.NewHistoryUseCase(kv, log)
	authUC := auth.New(auth.Config{
		User:         cfg.Admin.User,
		PasswordHash: cfg.Admin.PasswordHash,
		JWTSecret:    cfg.JWT.Secret,
		JWTIssuer:    cfg.JWT.Issuer,
		JWTExpMin:    cfg.JWT.Expiration,
	})
	pdfGenerator := infrapdf.NewMarotoCatalogGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // el PDF del catálogo puede tardar
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024, // imágenes data: URI del admin
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo In-Nova API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Catalog:    catalog,
		AdminUC:    adminUC,
		Ledger:     ledger,
		FinalizeUC: finalizeUC,
		HistoryUC:  historyUC,
		SettingsUC: settingsUC,
		AuthUC:     authUC,
		Pusher:     syncWorker,
		Sheet:      sheetClient,
		PDF:        pdfGenerator,
		JWTSecret:  cfg.JWT.Secret,
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
	stopWorker()

	log.Info().Msg("aplicación detenida")
}
