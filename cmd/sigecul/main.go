package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/config"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/entity"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/events"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/handler"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/middleware"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/repository"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Cargar archivo .env
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Inicializar logger
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting sigecul service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// Inicializar base de datos
	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&entity.Project{},
		&entity.Expense{},
		&entity.Payment{},
		&entity.Worker{},
		&entity.Evidence{},
	); err != nil {
		zapLogger.Warn("AutoMigrate warning", zap.Error(err))
	}
	zapLogger.Info("Database migration completed")

	// Inicializar Redis
	rdb := initRedis(cfg.Redis)

	// Bus de cambios de entidades
	bus := events.NewBus()

	// Inicializar dependencias
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, bus, cfg, zapLogger)
	handlers := handler.NewHandlers(services, bus)

	// Modo de Gin
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Crear router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: 0, // Deshabilitado por las conexiones SSE de larga duración
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Apagado limpio
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
		Logger: logger.Default.LogMode(logger.Warn),
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

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	// Health checks
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// SSE de cambios (acepta token por query param)
		eventsGroup := v1.Group("/events")
		eventsGroup.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			eventsGroup.GET("/stream", h.Events.Stream)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			// Panel de estadísticas
			authorized.GET("/dashboard/stats", h.Dashboard.GetStats)

			// Proyectos
			projects := authorized.Group("/projects")
			{
				projects.GET("", h.Project.ListProjects)
				projects.POST("", h.Project.CreateProject)
				projects.GET("/:id", h.Project.GetProject)
				projects.PUT("/:id", h.Project.UpdateProject)
				projects.DELETE("/:id", h.Project.DeleteProject)
				projects.POST("/:id/recalculate-budget", h.Project.RecalculateBudget)
			}

			// Gastos de proyecto
			expenses := authorized.Group("/expenses")
			{
				expenses.GET("", h.Expense.ListExpenses)
				expenses.POST("", h.Expense.CreateExpense)
				expenses.GET("/:id", h.Expense.GetExpense)
				expenses.PUT("/:id", h.Expense.UpdateExpense)
				expenses.DELETE("/:id", h.Expense.DeleteExpense)
			}

			// Pagos a personal
			payments := authorized.Group("/payments")
			{
				payments.GET("", h.Payment.ListPayments)
				payments.POST("", h.Payment.CreatePayment)
				payments.GET("/:id", h.Payment.GetPayment)
				payments.PUT("/:id", h.Payment.UpdatePayment)
				payments.PUT("/:id/status", h.Payment.UpdatePaymentStatus)
				payments.DELETE("/:id", h.Payment.DeletePayment)
			}

			// Trabajadores
			workers := authorized.Group("/workers")
			{
				workers.GET("", h.Worker.ListWorkers)
				workers.POST("", h.Worker.CreateWorker)
				workers.GET("/:id", h.Worker.GetWorker)
				workers.PUT("/:id", h.Worker.UpdateWorker)
				workers.DELETE("/:id", h.Worker.DeleteWorker)
				workers.POST("/:id/deactivate", h.Worker.DeactivateWorker)
			}

			// Evidencias
			evidence := authorized.Group("/evidence")
			{
				evidence.GET("", h.Evidence.ListEvidence)
				evidence.POST("", h.Evidence.CreateEvidence)
				evidence.GET("/:id", h.Evidence.GetEvidence)
				evidence.PUT("/:id", h.Evidence.UpdateEvidence)
				evidence.DELETE("/:id", h.Evidence.DeleteEvidence)
			}

			// Exportaciones
			exports := authorized.Group("/exports")
			{
				exports.GET("/expenses/csv", h.Export.ExpensesCSV)
				exports.GET("/expenses/excel", h.Export.ExpensesExcel)
				exports.GET("/payments/csv", h.Export.PaymentsCSV)
				exports.GET("/payments/excel", h.Export.PaymentsExcel)
				exports.GET("/evidence/csv", h.Export.EvidenceCSV)
				exports.POST("/consolidated/pdf", h.Export.ConsolidatedPDF)
			}
		}
	}
}
