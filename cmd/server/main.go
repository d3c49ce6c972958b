package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"nestlog/internal/config"
	"nestlog/internal/handler"
	"nestlog/internal/logger"
	"nestlog/internal/middleware"
	"nestlog/internal/model"
	"nestlog/internal/realtime"
	"nestlog/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	middleware.JWTSecret = []byte(cfg.Auth.TokenSecret)
	middleware.TokenTTL = time.Duration(cfg.Auth.TokenTTLDays) * 24 * time.Hour

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&model.Family{}, &model.Device{}, &model.Baby{},
		&model.SupplementPreset{}, &model.Activity{},
	); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	hub := realtime.NewHub()
	activitySvc := service.NewActivityService(db, hub)
	familySvc := service.NewFamilyService(db)
	statsSvc := service.NewStatsService(activitySvc)
	exportSvc := service.NewExportService()

	familyH := handler.NewFamilyHandler(familySvc)
	activityH := handler.NewActivityHandler(activitySvc)
	statsH := handler.NewStatsHandler(statsSvc, activitySvc, exportSvc)
	demoH := handler.NewDemoHandler()
	wsH := handler.NewWSHandler(hub)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-New-Token", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.POST("/api/families", familyH.Create)
	r.POST("/api/families/join", familyH.Join)
	r.GET("/api/demo", demoH.Get)

	api := r.Group("/api", middleware.JWTAuth())
	api.GET("/devices", familyH.Devices)
	api.GET("/baby", familyH.GetBaby)
	api.PUT("/baby", familyH.PutBaby)
	api.GET("/presets", familyH.Presets)
	api.POST("/presets", familyH.AddPreset)
	api.DELETE("/presets/:id", familyH.DeletePreset)
	api.POST("/activities", activityH.Create)
	api.GET("/activities", activityH.List)
	api.GET("/activities/:id", activityH.Get)
	api.PUT("/activities/:id", activityH.Update)
	api.DELETE("/activities/:id", activityH.Delete)
	api.GET("/stats", statsH.Overview)
	api.GET("/stats/sleep-sessions", statsH.SleepSessions)
	api.GET("/stats/export", statsH.Export)
	api.GET("/ws", wsH.Serve)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
