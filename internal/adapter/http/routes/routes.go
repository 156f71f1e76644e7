package routes

import (
	"context"
	_ "oficina_os/docs"
	"oficina_os/internal/adapter/http/handlers"
	"oficina_os/internal/adapter/persistence/repository"
	"oficina_os/internal/domain/catalog"
	"oficina_os/internal/infrastructure/config"
	"oficina_os/internal/infrastructure/database"
	"oficina_os/internal/infrastructure/payments"
	"oficina_os/internal/infrastructure/reports"
	"oficina_os/internal/infrastructure/storage"
	"oficina_os/internal/usecase"
	"oficina_os/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Customers   *handlers.CustomerHandler
	Technicians *handlers.TechnicianHandler
	Parts       *handlers.PartHandler
	Kanban      *handlers.KanbanHandler
	Orders      *handlers.ServiceOrderHandler
	Budgets     *handlers.BudgetHandler
	Payments    *handlers.BudgetPaymentHandler
	Attachments *handlers.AttachmentHandler
	Intake      *handlers.IntakeHandler
}

// Run will start the server
func Run(cfg *config.Config) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	ctx := context.Background()

	router := NewRouter(getHandlers(ctx, cfg))

	log.Info().Str("port", cfg.Port).Msg("[server][routes] listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("[server][routes] failed to startup the application")
	}
}

// NewRouter builds the engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRegistryRoutes(v1, h.Customers, h.Technicians, h.Parts)
	addKanbanRoutes(v1, h.Kanban)
	addOrderRoutes(v1, h.Orders, h.Budgets)
	addBudgetRoutes(v1, h.Budgets, h.Payments)
	addAttachmentRoutes(v1, h.Attachments)
	addIntakeRoutes(v1, h.Intake)
	return router
}

func getHandlers(ctx context.Context, cfg *config.Config) Handlers {
	ddb := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	t := cfg.Tables

	customerRepo := repository.NewCustomerDynamoRepository(ddb, t.Customers)
	technicianRepo := repository.NewTechnicianDynamoRepository(ddb, t.Technicians)
	partRepo := repository.NewPartDynamoRepository(ddb, t.Parts)
	columnRepo := repository.NewKanbanColumnDynamoRepository(ddb, t.KanbanColumns)
	orderRepo := repository.NewServiceOrderDynamoRepository(ddb, t.ServiceOrders)
	transitionRepo := repository.NewStageTransitionDynamoRepository(ddb, t.StageTransitions)
	attachmentRepo := repository.NewAttachmentDynamoRepository(ddb, t.Attachments)
	budgetRepo := repository.NewBudgetDynamoRepository(ddb, t.Budgets, t.BudgetItems)
	paymentRepo := repository.NewBudgetPaymentDynamoRepository(ddb, t.BudgetPayments)
	counterRepo := repository.NewCounterDynamoRepository(ddb, t.Counters)

	s3Client, err := storage.NewS3Client(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("[storage][routes] failed to create object storage client")
	}
	media := storage.NewMediaGateway(s3Client, cfg.Storage)

	var paymentGateway interfaces.IPaymentGateway
	if cfg.Payments.Mock {
		log.Warn().Msg("[payment][routes] mock mode enabled, Mercado Pago will not be called")
	} else {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken)
		if err != nil {
			log.Warn().Err(err).Msg("[payment][routes] Mercado Pago gateway not configured")
		} else {
			paymentGateway = mpGateway
		}
	}

	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	technicianUseCase := usecase.NewTechnicianUseCase(technicianRepo, orderRepo)
	partUseCase := usecase.NewPartUseCase(partRepo)
	kanbanUseCase := usecase.NewKanbanUseCase(columnRepo, orderRepo, customerRepo, technicianRepo)
	orderUseCase := usecase.NewServiceOrderUseCase(usecase.ServiceOrderDeps{
		Orders:      orderRepo,
		Columns:     columnRepo,
		Transitions: transitionRepo,
		Counter:     counterRepo,
		Customers:   customerRepo,
		Technicians: technicianRepo,
		Attachments: attachmentRepo,
		Report:      reports.NewXLSXOrderReport(),
	})
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, orderRepo, partRepo)
	paymentUseCase := usecase.NewBudgetPaymentUseCase(paymentRepo, budgetRepo, paymentGateway, usecase.PaymentOptions{
		Mock:            cfg.Payments.Mock,
		AccessToken:     cfg.Payments.AccessToken,
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	})
	attachmentUseCase := usecase.NewAttachmentUseCase(attachmentRepo, orderRepo, columnRepo, media)
	intakeUseCase := usecase.NewIntakeUseCase(catalog.MustLoad(), customerRepo, orderUseCase, attachmentUseCase)

	if cfg.SeedColumns {
		n, err := kanbanUseCase.SeedDefaults(ctx)
		if err != nil {
			log.Error().Err(err).Msg("[kanban][routes] failed seeding default columns")
		} else if n > 0 {
			log.Info().Int("columns", n).Msg("[kanban][routes] default columns seeded")
		}
	}

	return Handlers{
		Customers:   handlers.NewCustomerHandler(customerUseCase),
		Technicians: handlers.NewTechnicianHandler(technicianUseCase),
		Parts:       handlers.NewPartHandler(partUseCase),
		Kanban:      handlers.NewKanbanHandler(kanbanUseCase),
		Orders:      handlers.NewServiceOrderHandler(orderUseCase),
		Budgets:     handlers.NewBudgetHandler(budgetUseCase),
		Payments:    handlers.NewBudgetPaymentHandler(paymentUseCase),
		Attachments: handlers.NewAttachmentHandler(attachmentUseCase),
		Intake:      handlers.NewIntakeHandler(intakeUseCase),
	}
}
