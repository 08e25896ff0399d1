package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/artenepo/inventory-manager/internal/config"
	"github.com/artenepo/inventory-manager/internal/middleware"
	"github.com/artenepo/inventory-manager/internal/shop/entity"
	shopHandler "github.com/artenepo/inventory-manager/internal/shop/handler"
	"github.com/artenepo/inventory-manager/internal/shop/repository"
	"github.com/artenepo/inventory-manager/internal/shop/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting inventory-manager",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to auto-migrate shop tables", zap.Error(err))
	}
	zapLogger.Info("Database migration completed")

	navCache := service.NewNavCache(initRedis(cfg.Redis, zapLogger), cfg.Redis.NavTTL)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, navCache, nil)
	handlers := shopHandler.NewHandlers(services)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	router.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "inventory-manager"})
	})
	router.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "inventory-manager"})
	})
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":    "inventory-manager",
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// The four shop views, also reachable at their historical root paths.
	router.GET("/", handlers.Sale.List)
	router.POST("/", handlers.Sale.Sell)

	v1 := router.Group("/api/v1/shop")
	{
		v1.GET("/sale", handlers.Sale.List)
		v1.POST("/sale", handlers.Sale.Sell)
		v1.GET("/warehouse", handlers.Warehouse.List)
		v1.POST("/warehouse", handlers.Warehouse.Stock)
		v1.GET("/report", handlers.Report.Daily)
		v1.GET("/analytics", handlers.Report.Analytics)

		suppliers := v1.Group("/suppliers")
		{
			suppliers.POST("", handlers.Catalog.CreateSupplier)
			suppliers.PUT("/:id", handlers.Catalog.UpdateSupplier)
			suppliers.DELETE("/:id", handlers.Catalog.DeleteSupplier)
		}

		brands := v1.Group("/brands")
		{
			brands.POST("", handlers.Catalog.CreateBrand)
			brands.PUT("/:id", handlers.Catalog.UpdateBrand)
			brands.DELETE("/:id", handlers.Catalog.DeleteBrand)
		}

		categories := v1.Group("/categories")
		{
			categories.POST("", handlers.Catalog.CreateCategory)
			categories.PUT("/:id", handlers.Catalog.UpdateCategory)
			categories.DELETE("/:id", handlers.Catalog.DeleteCategory)
		}

		products := v1.Group("/products")
		{
			products.POST("", handlers.Catalog.CreateProduct)
			products.PUT("/:id", handlers.Catalog.UpdateProduct)
			products.DELETE("/:id", handlers.Catalog.DeleteProduct)
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	return db, nil
}

// initRedis returns nil when redis is not configured or unreachable; the
// nav cache degrades to direct reads.
func initRedis(cfg config.RedisConfig, zapLogger *zap.Logger) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		zapLogger.Warn("Redis unreachable, nav cache disabled", zap.Error(err))
		return nil
	}
	return rdb
}
