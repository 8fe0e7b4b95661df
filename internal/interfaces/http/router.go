package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestor-api/internal/application/auth"
	"github.com/jhoicas/gestor-api/internal/application/usecase"
	"github.com/jhoicas/gestor-api/internal/infrastructure/postgres"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	CustomerUC    *usecase.CustomerUseCase
	ContractUC    *usecase.ContractUseCase
	TransactionUC *usecase.TransactionUseCase
	SaleUC        *usecase.SaleUseCase
	TaskUC        *usecase.TaskUseCase
	IdeaUC        *usecase.IdeaUseCase
	OrganizerUC   *usecase.OrganizerUseCase
	InventoryUC   *usecase.InventoryUseCase
	AppointmentUC *usecase.AppointmentUseCase
	DashboardUC   *usecase.DashboardUseCase
	UploadHandler *UploadHandler
	EventsFeed    *postgres.Listener
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Vistas públicas por token (idea compartida, portal del cliente)
	ideaHandler := NewIdeaHandler(deps.IdeaUC)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	public := app.Group("/p")
	public.Get("/ideas/:token", ideaHandler.GetShared)
	public.Get("/portal/:token", customerHandler.GetPortal)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Customers
	customers := protected.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Put("/:id", customerHandler.Update)
	customers.Post("/:id/portal", customerHandler.TogglePortal)
	customers.Delete("/:id", customerHandler.Delete)

	// Contracts
	contracts := protected.Group("/contracts")
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts.Post("/", contractHandler.Create)
	contracts.Get("/", contractHandler.List)
	contracts.Put("/:id/proof", contractHandler.AttachProof)
	contracts.Delete("/:id", contractHandler.Delete)

	// Transactions
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Sales (PDV)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.Get)
	sales.Get("/:id/receipt", saleHandler.Receipt)
	sales.Put("/:id/status", saleHandler.UpdateStatus)
	sales.Delete("/:id", saleHandler.Delete)

	// Tasks (Kanban)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Put("/:id/move", taskHandler.Move)
	tasks.Delete("/:id", taskHandler.Delete)

	// Video ideas
	ideas := protected.Group("/ideas")
	ideas.Post("/", ideaHandler.Create)
	ideas.Get("/", ideaHandler.List)
	ideas.Put("/:id", ideaHandler.Update)
	ideas.Post("/:id/promote", ideaHandler.Promote)
	ideas.Post("/:id/share", ideaHandler.ToggleShare)
	ideas.Delete("/:id", ideaHandler.Delete)

	// Financial organizers
	organizers := protected.Group("/organizers")
	organizerHandler := NewOrganizerHandler(deps.OrganizerUC)
	organizers.Post("/", organizerHandler.Create)
	organizers.Get("/", organizerHandler.List)
	organizers.Put("/:id", organizerHandler.Update)
	organizers.Post("/:id/toggle", organizerHandler.Toggle)
	organizers.Delete("/:id", organizerHandler.Delete)

	// Inventory
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Get("/", inventoryHandler.List)
	inventory.Put("/:id", inventoryHandler.Update)
	inventory.Delete("/:id", inventoryHandler.Delete)

	// Appointments
	appointments := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", appointmentHandler.Delete)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/projection", dashboardHandler.Projection)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Uploads
	protected.Post("/uploads", deps.UploadHandler.Upload)

	// Feed de cambios en tiempo real (SSE)
	eventsHandler := NewEventsHandler(deps.EventsFeed)
	protected.Get("/events", eventsHandler.Stream)
}
