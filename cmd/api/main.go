package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/gestor-api/internal/application/auth"
	"github.com/jhoicas/gestor-api/internal/application/sync"
	"github.com/jhoicas/gestor-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/gestor-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gestor-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gestor-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/gestor-api/internal/interfaces/http"
	"github.com/jhoicas/gestor-api/pkg/config"
	"github.com/jhoicas/gestor-api/pkg/logger"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	ideaRepo := postgres.NewIdeaRepository(pool)
	organizerRepo := postgres.NewOrganizerRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Colaboradores
	fileStore, err := storage.NewLocalStore(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar storage")
	}
	notifier := postgres.NewNotifier(pool, log.Zerolog())
	listener := postgres.NewListener(pool, log.Zerolog())
	go listener.Run(ctx)
	receipts := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	// Núcleo de sincronización: snapshot + ejecutor de efectos
	snapshots := usecase.NewSnapshotLoader(transactionRepo, contractRepo, saleRepo, ideaRepo, taskRepo)
	executor := sync.NewExecutor(transactionRepo, saleRepo, contractRepo, ideaRepo, taskRepo, log.Zerolog())

	// Casos de uso
	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	customerUC := usecase.NewCustomerUseCase(customerRepo, notifier)
	contractUC := usecase.NewContractUseCase(contractRepo, snapshots, executor, notifier)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, snapshots, executor, notifier)
	saleUC := usecase.NewSaleUseCase(txRunner, saleRepo, customerRepo, snapshots, executor, receipts, notifier)
	taskUC := usecase.NewTaskUseCase(taskRepo, snapshots, executor, notifier)
	ideaUC := usecase.NewIdeaUseCase(ideaRepo, snapshots, executor, notifier, cfg.App.PublicURL)
	organizerUC := usecase.NewOrganizerUseCase(organizerRepo, notifier)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, notifier)
	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo, notifier)
	dashboardUC := usecase.NewDashboardUseCase(organizerRepo, transactionRepo)

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
		Title:    "Gestor Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Archivos subidos (contratos, comprobantes) servidos como estáticos
	app.Static("/files", fileStore.Dir())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CustomerUC:    customerUC,
		ContractUC:    contractUC,
		TransactionUC: transactionUC,
		SaleUC:        saleUC,
		TaskUC:        taskUC,
		IdeaUC:        ideaUC,
		OrganizerUC:   organizerUC,
		InventoryUC:   inventoryUC,
		AppointmentUC: appointmentUC,
		DashboardUC:   dashboardUC,
		UploadHandler: httpRouter.NewUploadHandler(fileStore),
		EventsFeed:    listener,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
