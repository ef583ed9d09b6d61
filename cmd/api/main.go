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

	"github.com/tu-usuario/ventas-pos/internal/application/auth"
	"github.com/tu-usuario/ventas-pos/internal/application/credit"
	"github.com/tu-usuario/ventas-pos/internal/application/sales"
	"github.com/tu-usuario/ventas-pos/internal/infrastructure/fiscalxml"
	infrapdf "github.com/tu-usuario/ventas-pos/internal/infrastructure/pdf"
	"github.com/tu-usuario/ventas-pos/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/ventas-pos/internal/interfaces/http"
	"github.com/tu-usuario/ventas-pos/pkg/config"
	"github.com/tu-usuario/ventas-pos/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	planRepo := postgres.NewCreditPlanRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	legacyRepo := postgres.NewLegacyCreditRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mirror := credit.NewLegacyMirror(legacyRepo)

	finalizeSaleUC := sales.NewFinalizeSaleUseCase(txRunner, saleRepo, planRepo, customerRepo, mirror, log)
	creditUC := credit.NewCreditUseCase(txRunner, txRunner, saleRepo, planRepo, paymentRepo, mirror, log)
	customerUC := sales.NewCustomerUseCase(customerRepo)

	// Representaciones del comprobante: ticket PDF y XML de archivo fiscal.
	pdfGenerator := infrapdf.NewComprobantePDFGenerator(cfg.App.StoreName, cfg.App.StoreRUC)
	xmlExporter := fiscalxml.NewExporter(cfg.App.StoreName, cfg.App.StoreRUC)
	comprobanteUC := sales.NewComprobanteUseCase(saleRepo, planRepo, pdfGenerator, xmlExporter)

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
		Title:    "Ventas POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		FinalizeSale:  finalizeSaleUC,
		ComprobanteUC: comprobanteUC,
		CustomerUC:    customerUC,
		CreditUC:      creditUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
