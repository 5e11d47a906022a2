package main

import (
	"context"
	"flag"
	"net/http"

	"inventory-service/internal/export"
	"inventory-service/internal/handler"
	mid "inventory-service/internal/middleware"
	"inventory-service/internal/model"
	"inventory-service/internal/repository"
	"inventory-service/pkg/config"
	"inventory-service/pkg/database"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	seed := flag.Bool("seed", false, "reset the primary store and load sample data before serving")
	flag.Parse()

	// Load configuration (reads .env if present)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting inventory-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port),
		zap.String("primary_engine", appConfig.Engines.Primary))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize the primary database handle
	if err := database.Init(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	ctx := context.Background()
	if *seed {
		if err := seedData(ctx, database.DB()); err != nil {
			log.Fatal("Failed to seed sample data", zap.Error(err))
		}
		log.Info("Sample data loaded")
	} else if err := database.DB().WithContext(ctx).AutoMigrate(model.Tables()...); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Record API routes, all bound to the primary engine
	handler.NewCustomerHandler(database.DB()).Register(e.Group("/api/customers"))
	handler.NewProductHandler(database.DB()).Register(e.Group("/api/products"))
	handler.NewOrderHandler(database.DB()).Register(e.Group("/api/orders"))

	// Export route opens its own engine handles per run
	handler.NewExportHandler(appConfig).Register(e.Group("/api/export"))

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}

// seedData resets the primary store and loads the demo dataset.
func seedData(ctx context.Context, db *gorm.DB) error {
	if err := export.ResetTables(ctx, db); err != nil {
		return err
	}

	customers := repository.New[model.Customer](db)
	for _, customer := range []model.Customer{
		{ID: 1, FullName: "Nick", Email: "espozito@dog.com"},
		{ID: 2, FullName: "John", Email: "foaspi@dog.com"},
	} {
		if err := customers.Add(ctx, &customer); err != nil {
			return err
		}
	}

	products := repository.New[model.Product](db)
	for _, product := range []model.Product{
		{ID: 1, Name: "Ball", Price: 9.5, Description: "Ball for football"},
		{ID: 2, Name: "Hog", Price: 15, Description: "Hog for farming"},
	} {
		if err := products.Add(ctx, &product); err != nil {
			return err
		}
	}

	orders := repository.New[model.Order](db)
	order := model.Order{ID: 1, Qty: 1, CustomerID: 1, ProductID: 1}
	return orders.Add(ctx, &order)
}
