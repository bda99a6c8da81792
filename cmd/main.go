package main

import (
	"net/http"

	"gym-service/internal/handler"
	mid "gym-service/internal/middleware"
	"gym-service/internal/resource"
	"gym-service/internal/storedproc"
	"gym-service/pkg/config"
	"gym-service/pkg/database"
	"gym-service/pkg/jwtutil"
	"gym-service/pkg/logger"
	"gym-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (config.Load also picks up a local .env file)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting gym-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Connect to the database. The pool handle is owned here and injected
	// into the gateway; the stored procedures own the schema.
	db, err := database.Connect(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Build the procedure gateway and one store per resource
	gateway := storedproc.NewGateway(db)
	productos := handler.NewProductoHandler(resource.NewStore(gateway, resource.Producto))
	clases := handler.NewClaseHandler(resource.NewStore(gateway, resource.Clase))
	planes := handler.NewPlanHandler(resource.NewStore(gateway, resource.Plan))

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	// The frontend calls the collection routes with a trailing slash
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: appConfig.CORS.AllowOrigins,
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Reads are public by default; the hardened configuration protects them too
	readAuth := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	if appConfig.Server.ProtectReads {
		readAuth = mid.AuthMiddleware
	}

	// Routes
	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Identity endpoint
	e.POST("/login", handler.Login)

	// Producto API routes
	productoAPI := e.Group("/api/productos")
	productoAPI.GET("", productos.List, readAuth)
	productoAPI.GET("/:id", productos.Get, readAuth)
	productoAPI.POST("", productos.Create, mid.AuthMiddleware)
	productoAPI.PUT("/:id", productos.Update, mid.AuthMiddleware)
	productoAPI.DELETE("/:id", productos.Delete, mid.AuthMiddleware)

	// Clase API routes
	claseAPI := e.Group("/api/clases")
	claseAPI.GET("", clases.List, readAuth)
	claseAPI.GET("/:id", clases.Get, readAuth)
	claseAPI.POST("", clases.Create, mid.AuthMiddleware)
	claseAPI.PUT("/:id", clases.Update, mid.AuthMiddleware)
	claseAPI.DELETE("/:id", clases.Delete, mid.AuthMiddleware)

	// Plan API routes
	planAPI := e.Group("/api/planes")
	planAPI.GET("", planes.List, readAuth)
	planAPI.GET("/:id", planes.Get, readAuth)
	planAPI.POST("", planes.Create, mid.AuthMiddleware)
	planAPI.PUT("/:id", planes.Update, mid.AuthMiddleware)
	planAPI.DELETE("/:id", planes.Delete, mid.AuthMiddleware)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
