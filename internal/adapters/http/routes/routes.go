package routes

import (
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"lps-admin/internal/adapters/http/handlers"
	"lps-admin/internal/adapters/http/middleware"
	"lps-admin/internal/config"
	"lps-admin/internal/core/services"
)

// Version is reported by the API info endpoint
const Version = "1.0.0"

// Services are the application services the routes are wired to
type Services struct {
	Auth        *services.AuthService
	Users       *services.UserService
	Customers   *services.CustomerService
	Assignments *services.AssignmentService
	Approver    *services.ApproverService
	Dashboard   *services.DashboardService
	StoreCheck  handlers.StoreCheck
}

// Setup configures all routes for the application
func Setup(app *fiber.App, svc Services, cfg *config.Config) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(svc.StoreCheck, cfg.AppMode, Version)
	authHandler := handlers.NewAuthHandler(svc.Auth, cfg)
	userHandler := handlers.NewUserHandler(svc.Users, cfg)
	customerHandler := handlers.NewCustomerHandler(svc.Customers, cfg)
	assignmentHandler := handlers.NewAssignmentHandler(svc.Assignments, cfg)
	approverHandler := handlers.NewApproverHandler(svc.Approver, cfg)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard, cfg)
	attachmentHandler := handlers.NewAttachmentHandler()
	pageHandler := handlers.NewPageHandler(svc.Auth, cfg)

	// Health check
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1", middleware.NoCacheHeaders())
	setupAPIV1Routes(apiV1, svc.Auth, healthHandler, authHandler, userHandler, customerHandler,
		assignmentHandler, approverHandler, dashboardHandler, attachmentHandler, cfg)

	// Static assets next to the index file
	app.Use("/assets", middleware.StaticCache(24*time.Hour))
	app.Static("/assets", filepath.Join(filepath.Dir(cfg.Web.IndexFile), "assets"))

	setupPageRoutes(app, svc.Auth, pageHandler, cfg)

	// Fallback
	app.Use(pageHandler.NotFound)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	resolver middleware.SessionResolver,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	customerHandler *handlers.CustomerHandler,
	assignmentHandler *handlers.AssignmentHandler,
	approverHandler *handlers.ApproverHandler,
	dashboardHandler *handlers.DashboardHandler,
	attachmentHandler *handlers.AttachmentHandler,
	cfg *config.Config,
) {
	// API Info
	router.Get("/", healthHandler.APIInfo)

	// Auth routes
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, resolver, authHandler, cfg)

	requireSession := middleware.AuthMiddleware(resolver, cfg)

	// Dashboard
	router.Get("/dashboard", requireSession, dashboardHandler.GetDashboard)

	// Users
	userRoutes := router.Group("/users", requireSession)
	setupUserRoutes(userRoutes, userHandler)

	// Customers
	customerRoutes := router.Group("/customers", requireSession)
	customerRoutes.Get("/", customerHandler.ListCustomers)
	customerRoutes.Post("/", customerHandler.CreateCustomer)
	customerRoutes.Get("/:id", customerHandler.GetCustomer)

	// Assignments
	assignmentRoutes := router.Group("/assignments", requireSession)
	setupAssignmentRoutes(assignmentRoutes, assignmentHandler)

	// Approver tasks
	approverRoutes := router.Group("/approver", requireSession)
	setupApproverRoutes(approverRoutes, approverHandler)

	// Attachments
	router.Get("/attachments/classify", requireSession, attachmentHandler.Classify)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, resolver middleware.SessionResolver, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(resolver, cfg), handler.Me)
}

// setupUserRoutes configures user management routes
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.ListUsers)
	router.Get("/agents", handler.ListAgents)
	router.Get("/:id", handler.GetUser)

	// Admin only
	router.Post("/", middleware.AdminOnly(), handler.CreateUser)
}

// setupAssignmentRoutes configures assignment routes
func setupAssignmentRoutes(router fiber.Router, handler *handlers.AssignmentHandler) {
	router.Get("/", handler.ListAssignments)
	router.Post("/", handler.CreateAssignment)
	router.Get("/:id", handler.GetAssignment)
	router.Post("/:id/review", handler.ReviewAssignment)
	router.Delete("/:id", handler.DeleteAssignment)
}

// setupApproverRoutes configures approver task routes
func setupApproverRoutes(router fiber.Router, handler *handlers.ApproverHandler) {
	router.Get("/", handler.ListTasks)
	router.Post("/", handler.CreateTask)
	router.Get("/users", handler.ListAssignableUsers)
	router.Get("/:id", handler.GetTask)
	router.Put("/:id", handler.UpdateTask)
	router.Delete("/:id", handler.DeleteTask)
}

// setupPageRoutes serves the screens; every page except login needs a session
func setupPageRoutes(app *fiber.App, resolver middleware.SessionResolver, handler *handlers.PageHandler, cfg *config.Config) {
	noCache := middleware.NoCacheHeaders()

	app.Get("/", noCache, handler.Login)

	gate := middleware.PageGate(resolver, cfg)
	for _, p := range []string{services.HomePath, "/users", "/customers", "/assignments", "/approver"} {
		app.Get(p, noCache, gate, handler.Shell)
	}
}
