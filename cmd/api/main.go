package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/medpoint/hospital-scheduler/internal/config"
	dbpkg "github.com/medpoint/hospital-scheduler/internal/db"
	"github.com/medpoint/hospital-scheduler/internal/logger"
	"github.com/medpoint/hospital-scheduler/internal/metrics"
	"github.com/medpoint/hospital-scheduler/internal/middleware"
	"github.com/medpoint/hospital-scheduler/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db := dbpkg.NewDB(cfg)
	if cfg.SeedOnStart {
		if err := dbpkg.Seed(db); err != nil {
			zlog.Fatal("failed to seed database", zap.Error(err))
		}
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	collector := metrics.NewCollector("hospital_scheduler")

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.Metrics(collector))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Log:     zlog,
		Metrics: collector,
		Redis:   rdb,
	})

	zlog.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
