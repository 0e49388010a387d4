package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/cdb-lk/cpds-api/api/swagger"
	"github.com/cdb-lk/cpds-api/internal/handler"
	"github.com/cdb-lk/cpds-api/internal/middleware"
	"github.com/cdb-lk/cpds-api/internal/models"
	"github.com/cdb-lk/cpds-api/internal/repository"
	"github.com/cdb-lk/cpds-api/internal/service"
	"github.com/cdb-lk/cpds-api/pkg/cache"
	"github.com/cdb-lk/cpds-api/pkg/config"
	"github.com/cdb-lk/cpds-api/pkg/database"
	"github.com/cdb-lk/cpds-api/pkg/logger"
	corsmiddleware "github.com/cdb-lk/cpds-api/pkg/middleware/cors"
	reqidmiddleware "github.com/cdb-lk/cpds-api/pkg/middleware/requestid"
)

// @title CPDS API
// @version 1.0.0
// @description Coconut plant distribution record keeping service
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	store := repository.NewKVRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(store)
	settingsRepo := repository.NewSettingsRepository(store)

	var sessionRepo *repository.SessionRepository
	if cfg.Sessions.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Fatal("failed to connect to redis", zap.Error(err))
		}
		sessionRepo = repository.NewSessionRepository(redisClient)
		defer sessionRepo.Close() //nolint:errcheck
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	authSvc := service.NewAuthService(sessionOrNil(sessionRepo), validate, logr, service.AuthConfig{
		Secret: cfg.JWT.Secret,
		Expiry: cfg.JWT.Expiration,
	})
	announcementSvc := service.NewAnnouncementService(announcementRepo, settingsRepo, validate, metricsSvc, logr)
	settingsSvc := service.NewSettingsService(settingsRepo, validate, logr)
	reportSvc := service.NewReportService(announcementRepo, settingsRepo, logr)
	exportSvc := service.NewExportService(reportSvc, service.ExportConfig{
		FilenamePrefix: cfg.Export.FilenamePrefix,
	}, logr, nil, nil)

	authHandler := handler.NewAuthHandler(authSvc)
	announcementHandler := handler.NewAnnouncementHandler(announcementSvc)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)
	reportHandler := handler.NewReportHandler(reportSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, db)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", middleware.JWT(authSvc), authHandler.Logout)
		auth.GET("/me", middleware.JWT(authSvc), authHandler.Me)
	}

	anyRole := middleware.RequireRoles(models.RoleAdmin, models.RoleHadpanagala, models.RoleWalipitiya)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	announcements := api.Group("/announcements", middleware.JWT(authSvc))
	{
		announcements.GET("", anyRole, announcementHandler.List)
		announcements.POST("", adminOnly, announcementHandler.Create)
		announcements.POST("/external", adminOnly, announcementHandler.CreateExternal)
		announcements.GET("/lookup", anyRole, announcementHandler.LookupReceiptTarget)
		announcements.GET("/manage", anyRole, announcementHandler.LookupForManagement)
		announcements.PUT("/receipts", adminOnly, announcementHandler.UpdateReceipts)
		announcements.POST("/issued", anyRole, announcementHandler.AddIssued)
		announcements.PUT("/:id", adminOnly, announcementHandler.Update)
		announcements.DELETE("/:id", adminOnly, announcementHandler.Delete)
	}

	settings := api.Group("/settings", middleware.JWT(authSvc))
	{
		settings.GET("", anyRole, settingsHandler.Get)
		settings.PUT("", adminOnly, settingsHandler.Save)
		settings.POST("/lists/:list/items", adminOnly, settingsHandler.AddListItem)
		settings.DELETE("/lists/:list/items/:index", adminOnly, settingsHandler.RemoveListItem)
		settings.POST("/prices", adminOnly, settingsHandler.AddPrice)
		settings.DELETE("/prices/:id", adminOnly, settingsHandler.RemovePrice)
	}

	reports := api.Group("/reports", middleware.JWT(authSvc), anyRole)
	{
		reports.GET("/distribution", reportHandler.Distribution)
		reports.GET("/nurseries", reportHandler.Nurseries)
		reports.GET("/distribution/export", exportHandler.Distribution)
		reports.GET("/nurseries/export", exportHandler.Nurseries)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// sessionOrNil keeps the auth service's session dependency a true nil when
// sessions are disabled, so the typed-nil interface pitfall cannot bite.
func sessionOrNil(repo *repository.SessionRepository) service.SessionStore {
	if repo == nil {
		return nil
	}
	return repo
}
