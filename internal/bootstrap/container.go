package bootstrap

import (
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"detailops-be/internal/config"
	"detailops-be/internal/controller"
	"detailops-be/internal/pkg/logger"
	"detailops-be/internal/pkg/mailer"
	"detailops-be/internal/pkg/serverutils"
	"detailops-be/internal/repository"
	"detailops-be/internal/repository/implementation"
	"detailops-be/internal/repository/memory"
	"detailops-be/internal/service"
	"detailops-be/internal/websocket"
	"detailops-be/pkg/database"
	pkgNats "detailops-be/pkg/nats"
)

// feedTopic carries activity entries from writers to the websocket fanout.
const feedTopic = "activity.feed"

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	UserController       controller.IUserController
	CustomerController   controller.ICustomerController
	CatalogController    controller.ICatalogController
	JobController        controller.IJobController
	BillingController    controller.IBillingController
	InventoryController  controller.IInventoryController
	MembershipController controller.IMembershipController
	ReviewController     controller.IReviewController
	ReportController     controller.IReportController
	ActivityController   controller.IActivityController
	AdminController      controller.IAdminController

	// Background services (main.go runs these)
	FeedService service.IFeedService

	// Shared infrastructure
	WebSocketHub  *websocket.Hub
	JwtMiddleware fiber.Handler
	Logger        logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Datastore: postgres when a connection string is set, otherwise the
	// in-memory store (useful for demos and tests).
	var store repository.Datastore
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Fatalf("[FATAL] Unable to connect to database: %v", err)
		}
		store = implementation.NewDatastore(db)
	} else {
		log.Println("[INFO] DB_CONNECTION_STRING not set, using in-memory datastore")
		store = memory.NewDatastore()
	}

	sessionTTL := time.Duration(cfg.Auth.SessionTTLHours) * time.Hour
	sessions := memory.NewSessionRepository(sessionTTL)
	jwtMiddleware := serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret, sessions)

	// Event bus for the activity feed.
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// NATS is optional; a nil publisher drops events.
	var natsPub *pkgNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pkgNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS: %v", err)
		}
	}

	// Redis is optional; without it the hub runs single-instance.
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
	}

	feedLogger := logger.NewIsolatedLogger(cfg.App.FeedLogFilePath)
	wsHub := websocket.NewHub(rdb, feedLogger)
	go wsHub.Run()

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.Email,
			cfg.SMTP.SenderName,
		)
	} else {
		log.Println("[INFO] SMTP_HOST not set, email notifications disabled")
		emailService = &mailer.NoopEmailService{}
	}

	publisherService := service.NewPublisherService(pubSub, feedTopic)
	feedService := service.NewFeedService(pubSub, feedTopic, wsHub)

	activityService := service.NewActivityService(store, publisherService, sysLogger)
	authService := service.NewAuthService(store, sessions, cfg.Auth.JwtSecret, sessionTTL, sysLogger)
	userService := service.NewUserService(store)
	customerService := service.NewCustomerService(store, activityService)
	catalogService := service.NewCatalogService(store)
	jobService := service.NewJobService(store, activityService, emailService, natsPub, sysLogger)
	billingService := service.NewBillingService(store, activityService, emailService, natsPub, sysLogger)
	inventoryService := service.NewInventoryService(store, activityService, natsPub, sysLogger)
	membershipService := service.NewMembershipService(store, activityService, natsPub, service.MembershipConfig{
		GatewayServerKey:  cfg.Payment.MidtransServerKey,
		GatewayProduction: cfg.Payment.MidtransProduction,
		ClientURL:         cfg.App.ClientURL,
	}, sysLogger)
	reviewService := service.NewReviewService(store, activityService)
	reportService := service.NewReportService(store, activityService)

	return &Container{
		AuthController:       controller.NewAuthController(authService, jwtMiddleware),
		UserController:       controller.NewUserController(userService, jwtMiddleware),
		CustomerController:   controller.NewCustomerController(customerService, jwtMiddleware),
		CatalogController:    controller.NewCatalogController(catalogService, jwtMiddleware),
		JobController:        controller.NewJobController(jobService, jwtMiddleware),
		BillingController:    controller.NewBillingController(billingService, jwtMiddleware),
		InventoryController:  controller.NewInventoryController(inventoryService, jwtMiddleware),
		MembershipController: controller.NewMembershipController(membershipService, jwtMiddleware),
		ReviewController:     controller.NewReviewController(reviewService, jwtMiddleware),
		ReportController:     controller.NewReportController(reportService, jwtMiddleware),
		ActivityController:   controller.NewActivityController(activityService, jwtMiddleware),
		AdminController:      controller.NewAdminController(sysLogger, jwtMiddleware),

		FeedService: feedService,

		WebSocketHub:  wsHub,
		JwtMiddleware: jwtMiddleware,
		Logger:        sysLogger,
	}
}
