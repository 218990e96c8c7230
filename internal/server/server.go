package server

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/healthhub/portal-api/internal/config"
	"github.com/healthhub/portal-api/internal/db"
	"github.com/healthhub/portal-api/internal/handlers"
	"github.com/healthhub/portal-api/internal/middleware"
	"github.com/healthhub/portal-api/internal/services"
)

const (
	APIPrefix      = "/api/v1"
	allowedMethods = "GET,POST,PATCH,PUT,DELETE,OPTIONS"
	logFormat      = "${time} | ${locals:requestid} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n"
)

// New builds the Fiber app with every route registered.
func New(cfg config.Config, store *db.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "health-hub-portal",
		ErrorHandler: handlers.ErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{Format: logFormat}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigin,
		AllowMethods:     allowedMethods,
		AllowCredentials: true,
	}))

	authService := services.NewAuthService(store, cfg.JWTSecret, cfg.TokenExpiry)
	h := handlers.New(authService, services.NewResourceService(store))

	Routes(app, h, middleware.AuthMiddleware(authService))
	return app
}

// Routes registers the health check and the /api/v1 routes.
func Routes(app *fiber.App, h *handlers.Handler, requireToken fiber.Handler) {
	app.Get("/", h.Health)

	api := app.Group(APIPrefix)

	// Auth Routes
	api.Post("/register", h.RegisterHandler)
	api.Post("/login", h.LoginHandler)
	api.Get("/me", requireToken, h.MeHandler)

	// Supply Routes
	api.Get("/supplies", h.ListSupplies)
	api.Get("/top-supplies", h.TopSupplies)
	api.Post("/supplies", h.CreateSupply)
	api.Put("/update-supply/:id", h.UpdateSupply)
	api.Delete("/supplies/:id", h.DeleteSupply)

	// Testimonials and donors
	api.Get("/top-provider-testimonials", h.ListCollection(db.TopProviders))
	api.Post("/testimonials", h.CreateInCollection(db.Testimonials))
	api.Get("/donors", h.ListCollection(db.Donors))

	// Volunteering
	api.Get("/volunteering-posts", h.ListCollection(db.VolunteeringPosts))
	api.Get("/volunteers", h.ListCollection(db.Volunteers))
	api.Post("/volunteers", h.CreateInCollection(db.Volunteers))

	// Community posts
	api.Get("/posts", h.ListCollection(db.CommunityPosts))
	api.Post("/posts", h.CreateInCollection(db.CommunityPosts))
	api.Post("/posts/:id/comments", h.AddComment)
}
