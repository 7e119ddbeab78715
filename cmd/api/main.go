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

	"github.com/arcisai/crm-backend/internal/application/auth"
	"github.com/arcisai/crm-backend/internal/application/sales"
	"github.com/arcisai/crm-backend/internal/application/usecase"
	"github.com/arcisai/crm-backend/internal/infrastructure/postgres"
	httpRouter "github.com/arcisai/crm-backend/internal/interfaces/http"
	"github.com/arcisai/crm-backend/pkg/config"
	"github.com/arcisai/crm-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	requestRepo := postgres.NewStockRequestRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	enquiryRepo := postgres.NewEnquiryRepository(pool)
	hoardingRepo := postgres.NewHoardingRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	bookingRepo := postgres.NewBookingRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.New(userRepo, auth.Config{
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
		JWTExpMinutes: cfg.JWT.Expiration,
	}, log)
	userUC := usecase.NewUserUsecase(userRepo, log)
	dashboardUC := usecase.NewDashboardUsecase(analyticsRepo)
	leadUC := usecase.NewLeadUsecase(leadRepo, log)
	enquiryUC := usecase.NewEnquiryUsecase(enquiryRepo, log)
	hoardingUC := usecase.NewHoardingUsecase(hoardingRepo, log)
	customerUC := usecase.NewCustomerUsecase(customerRepo, log)
	bookingUC := usecase.NewBookingUsecase(bookingRepo, customerRepo, hoardingRepo, log)
	requestUC := sales.NewRequestUsecase(requestRepo, userRepo, productRepo, txRunner, log)
	orderUC := sales.NewOrderUsecase(orderRepo, productRepo, userRepo, txRunner, log)
	stockUC := sales.NewStockUsecase(stockRepo, productRepo, userRepo)

	tracker := httpRouter.NewActivityTracker(
		time.Duration(cfg.Session.IdleMinutes)*time.Minute, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Backend API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		LeadUC:      leadUC,
		EnquiryUC:   enquiryUC,
		HoardingUC:  hoardingUC,
		CustomerUC:  customerUC,
		BookingUC:   bookingUC,
		RequestUC:   requestUC,
		OrderUC:     orderUC,
		StockUC:     stockUC,
		Tracker:     tracker,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
