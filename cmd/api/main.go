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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/directorio-api/docs"
	"github.com/jhoicas/directorio-api/internal/application/auth"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
	"github.com/jhoicas/directorio-api/internal/infrastructure/memory"
	"github.com/jhoicas/directorio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/directorio-api/internal/interfaces/http"
	"github.com/jhoicas/directorio-api/pkg/config"
	"github.com/jhoicas/directorio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		repos  repository.Repositories
		tx     repository.TxRunner
		pinger httpRouter.Pinger
	)
	switch cfg.DB.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		repos, tx = store.Repositories(), store
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			if err := postgres.EnsureSchema(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("esquema de base de datos")
			}
		}
		repos, tx, pinger = postgres.NewRepositories(pool), postgres.NewTxRunner(pool), pool
	}

	companyUC := usecase.NewCompanyUseCase(repos, tx)
	userUC := usecase.NewUserUseCase(repos, tx)
	managerUC := usecase.NewManagerUseCase(repos, tx)
	authUC := auth.NewAuthUseCase(repos.Accounts, auth.JWTConfig{
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
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Directorio API",
	}))

	health := httpRouter.NewHealthHandler(cfg.App.Name, pinger, log)
	app.Get("/health", health.Live)
	app.Get("/ready", health.Ready)

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:     companyUC,
		UserUC:        userUC,
		ManagerUC:     managerUC,
		AuthUC:        authUC,
		Authenticator: auth.NewAuthenticator(cfg.JWT.Secret),
		Log:           log,
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
