package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lostfound/community-api/internal/api/handler"
	"github.com/lostfound/community-api/internal/api/middleware"
	"github.com/lostfound/community-api/internal/core/auth"
	"github.com/lostfound/community-api/internal/core/ports"
	"github.com/lostfound/community-api/internal/core/service"
	mongorepo "github.com/lostfound/community-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/lostfound/community-api/internal/infrastructure/db/redis"
)

// Options carries the externally constructed dependencies the router wires
// into handlers. Everything is injected; nothing is created lazily at
// request time.
type Options struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Images ports.ImageStore
	Codec  *auth.Codec
	Logger zerolog.Logger

	// CookieSecure marks the auth cookie HTTPS-only.
	CookieSecure bool

	// RateWindow/RateMax throttle the credential endpoints per client IP.
	RateWindow time.Duration
	RateMax    int64
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Access gate: coarse path-based pre-check, runs before routing ---
	e.Pre(middleware.Gate(opts.Codec))

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("lostfound"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(opts.DB)
	postRepo := mongorepo.NewPostRepository(opts.DB)

	authService := service.NewAuthService(userRepo, opts.Codec)
	postService := service.NewPostService(postRepo, opts.Logger)
	userService := service.NewUserService(userRepo, opts.Images, opts.Logger)
	adminService := service.NewAdminService(userRepo, postRepo, opts.Logger)
	mediaService := service.NewMediaService(opts.Images, opts.Logger)

	cookies := handler.CookieSettings{TTL: opts.Codec.TTL(), Secure: opts.CookieSecure}
	authHandler := handler.NewAuthHandler(authService, cookies)
	postHandler := handler.NewPostHandler(postService)
	profileHandler := handler.NewProfileHandler(userService)
	adminHandler := handler.NewAdminHandler(adminService)
	uploadHandler := handler.NewUploadHandler(mediaService)

	authRequired := middleware.Auth(opts.Codec)
	adminOnly := middleware.RequireAdmin()

	limiter := redisinfra.NewAttemptLimiter(opts.Redis, opts.RateWindow, opts.RateMax)
	authRate := middleware.RateLimit(limiter, "auth", opts.Logger)

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register, authRate)
	authGroup.POST("/login", authHandler.Login, authRate)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authRequired)

	// --- Post routes: the feed and detail reads are intentionally anonymous ---
	posts := e.Group("/api/posts")
	posts.GET("", postHandler.List)
	posts.POST("", postHandler.Create, authRequired)
	posts.GET("/user", postHandler.ListOwn, authRequired)
	posts.GET("/user/:id", postHandler.ListByUser)
	posts.GET("/:id", postHandler.Get)

	// --- Profile routes ---
	profile := e.Group("/api/profile")
	profile.GET("/:id", profileHandler.Get)
	profile.PATCH("/update", profileHandler.Update, authRequired)
	profile.POST("/upload-avatar", profileHandler.UploadAvatar, authRequired)

	// --- Uploads ---
	e.POST("/api/upload", uploadHandler.Upload, authRequired)

	// --- Admin routes ---
	admin := e.Group("/api/admin", authRequired, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/posts", adminHandler.ListPosts)
	admin.PATCH("/users/:id/verify", adminHandler.VerifyUser)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(opts.DB, opts.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
