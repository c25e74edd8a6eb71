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

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/authz"
	"github.com/jhoicas/Tienda-api/internal/application/notification"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/events"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/mailer"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Tienda-api/internal/interfaces/http"
	"github.com/jhoicas/Tienda-api/pkg/config"
	"github.com/jhoicas/Tienda-api/pkg/logger"
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

	// Datos semilla: usuario admin y categoría centinela.
	if err := postgres.Seed(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("datos semilla")
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("storage de archivos")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	fileRepo := postgres.NewFileRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Bus en memoria + consumidor de correos de bienvenida.
	bus := events.NewBus()
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)
	consumer := notification.NewConsumer(smtpMailer, log)
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		consumer.Run(bus.Subscribe(domain.WelcomeEmailTopic))
	}()

	evaluator := authz.NewEvaluator(userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo, evaluator, fileStorage, txRunner, log)
	userUC := usecase.NewUserUseCase(userRepo, fileStorage, bus, log)
	adminUC := usecase.NewAdminUseCase(userRepo, log)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	fileUC := usecase.NewFileUseCase(fileRepo, fileStorage)
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
		Title:    "Tienda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		AdminUC:    adminUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		FileUC:     fileUC,
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

	// Cerrar el bus deja drenar los eventos pendientes al consumidor.
	bus.Close()
	select {
	case <-consumerDone:
	case <-shutdownCtx.Done():
		log.Warn().Msg("el consumidor de notificaciones no terminó a tiempo")
	}

	log.Info().Msg("aplicación detenida")
}
