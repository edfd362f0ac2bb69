package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bookhaven/bookstore-api/internal/api/docs"
	"github.com/bookhaven/bookstore-api/internal/api/handler"
	"github.com/bookhaven/bookstore-api/internal/api/middleware"
	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
	"github.com/bookhaven/bookstore-api/internal/core/service"
	mongodb "github.com/bookhaven/bookstore-api/internal/infrastructure/db/mongo"
	rediscache "github.com/bookhaven/bookstore-api/internal/infrastructure/db/redis"
)

// Options carries the router's external collaborators and policy constants.
type Options struct {
	DB        *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	TokenTTL  time.Duration
	Audit     ports.AuditRecorder
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Route policy, in one place:
//
//	public:               /login /register /health /health/ready /metrics /swagger/* /api/home
//	any valid token:      GET on /api/me /api/authors[/:id] /api/books[/:id]
//	Administrator only:   POST/PUT/DELETE on /api/authors and /api/books
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bookstore"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(opts.DB)
	authorRepo := mongodb.NewAuthorRepository(opts.DB)
	bookRepo := mongodb.NewBookRepository(opts.DB)
	cache := rediscache.NewCatalogCache(opts.Redis)

	authService := service.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL, opts.Log)
	authorService := service.NewAuthorService(authorRepo, cache, opts.Log)
	bookService := service.NewBookService(bookRepo, authorRepo, cache, opts.Log)

	authHandler := handler.NewAuthHandler(authService)
	authorHandler := handler.NewAuthorHandler(authorService)
	bookHandler := handler.NewBookHandler(bookService)

	authGate := middleware.Auth(opts.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdministrator)
	audited := middleware.Audit(opts.Audit)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.DB, opts.Redis)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	api := e.Group("/api")
	api.GET("/home", handler.NewHomeHandler().Get)

	// --- Authenticated routes ---
	api.GET("/me", authHandler.Me, authGate)

	authors := api.Group("/authors", authGate, audited)
	authors.GET("", authorHandler.List)
	authors.GET("/:id", authorHandler.Get)
	authors.POST("", authorHandler.Create, adminOnly)
	authors.PUT("/:id", authorHandler.Update, adminOnly)
	authors.DELETE("/:id", authorHandler.Delete, adminOnly)

	books := api.Group("/books", authGate, audited)
	books.GET("", bookHandler.List)
	books.GET("/:id", bookHandler.Get)
	books.POST("", bookHandler.Create, adminOnly)
	books.PUT("/:id", bookHandler.Update, adminOnly)
	books.DELETE("/:id", bookHandler.Delete, adminOnly)

	return e
}
