package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/schedulewise/schedulewise-api/api/swagger"
	"github.com/schedulewise/schedulewise-api/internal/catalog"
	"github.com/schedulewise/schedulewise-api/internal/handler"
	"github.com/schedulewise/schedulewise-api/internal/middleware"
	"github.com/schedulewise/schedulewise-api/internal/optimizer"
	"github.com/schedulewise/schedulewise-api/internal/repository"
	"github.com/schedulewise/schedulewise-api/internal/service"
	"github.com/schedulewise/schedulewise-api/pkg/cache"
	"github.com/schedulewise/schedulewise-api/pkg/config"
	"github.com/schedulewise/schedulewise-api/pkg/logger"
	corsmiddleware "github.com/schedulewise/schedulewise-api/pkg/middleware/cors"
	reqidmiddleware "github.com/schedulewise/schedulewise-api/pkg/middleware/requestid"
)

// @title ScheduleWise API
// @version 0.1.0
// @description Weekly university timetable optimizer
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, continuing without cache", zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cfg.Cache.Enabled && cacheRepo != nil)

	subjects := catalog.New()
	greedy := optimizer.NewGreedy(optimizer.Options{
		MaxCombinationSize:  cfg.Optimizer.MaxCombinationSize,
		RequireFullCoverage: cfg.Optimizer.RequireFullCoverage,
		Parallelism:         cfg.Optimizer.Parallelism,
	}, logr)

	scheduleSvc := service.NewScheduleService(subjects, greedy, cacheSvc, metrics, nil, logr)
	exportSvc := service.NewExportService(scheduleSvc, cfg.Campus.UniversityName, cfg.Campus.CampusName, logr)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc, exportSvc, subjects)
	metricsHandler := handler.NewMetricsHandler(metrics)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"university": cfg.Campus.UniversityName,
			"campus":     cfg.Campus.CampusName,
		})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/schedules/generate", scheduleHandler.Generate)
		api.POST("/schedules/export", scheduleHandler.Export)
		api.GET("/schedules/health", scheduleHandler.Health)
		api.GET("/subjects", scheduleHandler.Subjects)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
