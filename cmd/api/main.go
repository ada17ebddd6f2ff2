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

	"github.com/jdgomez/taller-api/internal/application/usecase"
	inframailer "github.com/jdgomez/taller-api/internal/infrastructure/mailer"
	infrapdf "github.com/jdgomez/taller-api/internal/infrastructure/pdf"
	"github.com/jdgomez/taller-api/internal/infrastructure/postgres"
	httpRouter "github.com/jdgomez/taller-api/internal/interfaces/http"
	"github.com/jdgomez/taller-api/pkg/config"
	"github.com/jdgomez/taller-api/pkg/logger"
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
	phoneRepo := postgres.NewPhoneRepository(pool)
	repairRepo := postgres.NewRepairRepository(pool)

	mailer := inframailer.NewGomailMailer(cfg.Mail)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)

	authUC := usecase.NewAuthUseCase(userRepo, mailer, usecase.AuthConfig{
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
		JWTExpMinutes: cfg.JWT.Expiration,
		WebserviceURL: cfg.App.WebserviceURL,
		SendEmail:     cfg.Mail.Enabled,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	phoneUC := usecase.NewPhoneUseCase(phoneRepo, customerRepo)
	repairUC := usecase.NewRepairUseCase(repairRepo, phoneRepo, pdfGenerator)

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
		Title:    "Taller API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		CustomerUC: customerUC,
		PhoneUC:    phoneUC,
		RepairUC:   repairUC,
		UserRepo:   userRepo,
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

	log.Info().Msg("aplicación detenida")
}
