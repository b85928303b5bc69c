package server

import (
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberws "github.com/gofiber/websocket/v2"

	"detailops-be/internal/bootstrap"
	"detailops-be/internal/config"
	"detailops-be/internal/pkg/serverutils"
	"detailops-be/internal/websocket"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:    5 * 1024 * 1024,
		ErrorHandler: serverutils.NewErrorHandler(container.Logger),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.UserController.RegisterRoutes(api)

	c.CustomerController.RegisterRoutes(api)
	c.CatalogController.RegisterRoutes(api)
	c.JobController.RegisterRoutes(api)
	c.BillingController.RegisterRoutes(api)

	c.InventoryController.RegisterRoutes(api)
	c.MembershipController.RegisterRoutes(api)
	c.ReviewController.RegisterRoutes(api)

	c.ReportController.RegisterRoutes(api)
	c.ActivityController.RegisterRoutes(api)
	c.AdminController.RegisterRoutes(api)

	registerFeedSocket(app, c)
}

// registerFeedSocket exposes the live activity feed. The JWT middleware runs
// on the upgrade request, so only authenticated staff can connect.
func registerFeedSocket(app *fiber.App, c *bootstrap.Container) {
	app.Use("/ws", func(ctx *fiber.Ctx) error {
		if fiberws.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/feed", c.JwtMiddleware, fiberws.New(func(conn *fiberws.Conn) {
		userId, _ := conn.Locals("user_id").(int)
		websocket.ServeWs(c.WebSocketHub, conn, userId)
	}))
}
