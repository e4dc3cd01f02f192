package controller

import (
	"context"
	"elevatorops-console/console"
	"elevatorops-console/dal"
	"elevatorops-console/infrastructure"
	"elevatorops-console/middelware"
	"elevatorops-console/models"
	"elevatorops-console/repository"
	"elevatorops-console/services"
	"elevatorops-console/utils/logger"
	"elevatorops-console/view"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	Session   *SessionController
	Request   *RequestController
	Report    *ReportController
	Dashboard *DashboardController

	Sessions   *console.Manager
	Notifier   infrastructure.Notifier
	jwtManager *middelware.JWTManager
}

func NewController(ctx context.Context, cfg *models.Config, log logger.Logger) *Controller {
	gateway := dal.NewRestyGateway(cfg, log)
	repos := repository.NewRepository(gateway, log)
	registry := view.NewRegistry()

	notifier, err := infrastructure.NewNotifier(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize MQTT notifier: %v", err)
	}

	svc := services.NewService(repos, registry, notifier, log, cfg)
	sessions := console.NewManager(repos, registry, cfg, log)

	return newController(ctx, svc, sessions, notifier, middelware.NewJWTManager(cfg, log), log)
}

func newController(ctx context.Context, svc services.ServiceContainerInterface, sessions *console.Manager, notifier infrastructure.Notifier, jwtManager *middelware.JWTManager, log logger.Logger) *Controller {
	return &Controller{
		Session:    NewSessionController(ctx, sessions, log),
		Request:    NewRequestController(ctx, svc.GetRequestService(), svc.GetLifecycleService(), log),
		Report:     NewReportController(ctx, svc.GetReportService(), log),
		Dashboard:  NewDashboardController(ctx, svc.GetDashboardService(), log),
		Sessions:   sessions,
		Notifier:   notifier,
		jwtManager: jwtManager,
	}
}

// RegisterRoutes mounts the console API under basePath
func (c *Controller) RegisterRoutes(ctx context.Context, config *models.Config, r *gin.Engine, basePath string) {
	v1 := r.Group(basePath)

	// Health check endpoint (no auth required)
	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"version":  config.AppVersion,
			"service":  config.AppName,
			"sessions": c.Sessions.Count(),
		})
	})

	auth := c.jwtManager.AuthMiddleware()
	canDelete := c.jwtManager.RequireRole("admin", "dispatcher")

	// Session and list screen routes
	sessions := v1.Group("/sessions", auth)
	sessions.POST("", c.Session.OpenSession)
	sessions.DELETE("/:sid", c.Session.CloseSession)
	sessions.GET("/:sid/screens/:screen", c.Session.GetScreen)
	sessions.PATCH("/:sid/screens/:screen", c.Session.UpdateScreen)
	sessions.POST("/:sid/screens/:screen/refresh", c.Session.RefreshScreen)
	sessions.POST("/:sid/screens/:screen/retry", c.Session.RetryScreen)
	sessions.POST("/:sid/screens/:screen/dismiss", c.Session.DismissScreenError)

	// Maintenance request routes
	requests := v1.Group("/requests", auth)
	requests.POST("", c.Request.CreateRequest)
	requests.GET("/:id", c.Request.GetRequest)
	requests.PATCH("/:id", c.Request.UpdateRequest)
	requests.DELETE("/:id", canDelete, c.Request.DeleteRequest)
	requests.POST("/:id/transition", c.Request.TransitionRequest)
	requests.POST("/:id/assign", c.Request.AssignRequest)

	// Report routes
	reports := v1.Group("/reports", auth)
	reports.POST("", c.Report.CreateReport)
	reports.GET("/:id", c.Report.GetReport)
	reports.PATCH("/:id", c.Report.UpdateReport)
	reports.DELETE("/:id", canDelete, c.Report.DeleteReport)
	reports.GET("/:id/export", c.Report.ExportReport)

	v1.GET("/dashboard", auth, c.Dashboard.GetDashboard)
}

// Serve runs the HTTP server until ctx is cancelled
func (c *Controller) Serve(ctx context.Context, config *models.Config, r *gin.Engine, log logger.Logger) error {
	srv := &http.Server{
		Addr:    config.AppHost + ":" + config.AppPort,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting console server on %s:%s", config.AppHost, config.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("Shutting down console server")
	return srv.Shutdown(shutdownCtx)
}
