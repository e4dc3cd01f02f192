package main

import (
	"context"
	"elevatorops-console/controller"
	"elevatorops-console/middelware"
	"elevatorops-console/models"
	"elevatorops-console/utils"
	"elevatorops-console/utils/logger"
	"elevatorops-console/worker"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
)

var config *models.Config

func Init() {
	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	Init()
	appLogger := logger.NewLogger(config.LogLevel, config.LogFormat)
	appLogger.Debugf("Config loaded: %s", utils.PrintPrettyJSON(redacted(config)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	logging := middelware.NewLoggingMiddleware(appLogger)
	r.Use(logging.RequestID(), logging.StructuredLogger(), logging.Recovery())
	r.Use(middelware.NewCORSMiddleware(config).CORS())

	c := controller.NewController(ctx, config, appLogger)
	defer c.Notifier.Close()
	c.RegisterRoutes(ctx, config, r, config.BasePath)

	// Background refresh and idle session sweep
	bgWorker, err := worker.NewService(ctx, config, c.Sessions, appLogger)
	if err != nil {
		log.Fatalf("Failed to create background worker: %v", err)
	}
	if err := bgWorker.StartInBackground(); err != nil {
		log.Fatalf("Failed to start background worker: %v", err)
	}
	defer bgWorker.Stop()

	if err := c.Serve(ctx, config, r, appLogger); err != nil {
		appLogger.Errorf("Server stopped: %v", err)
	}
}

// redacted hides secrets before the config is logged
func redacted(cfg *models.Config) models.Config {
	out := *cfg
	if out.APIToken != "" {
		out.APIToken = "***"
	}
	if out.MQTTPassword != "" {
		out.MQTTPassword = "***"
	}
	return out
}
