package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"community-api/core/cache"
	"community-api/core/config"
	"community-api/core/constants"
	"community-api/core/controller"
	"community-api/core/database"
	"community-api/core/logger"
	"community-api/core/middleware"
	"community-api/core/validator"
	"community-api/modules/auth"
	authRepository "community-api/modules/auth/repository"
	"community-api/modules/contact"
	"community-api/modules/event"
	"community-api/modules/notification"
	"community-api/modules/rsvp"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run boots the API and the notification worker in one process and blocks
// until shutdown.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	if err := db.RunMigrations("db/migrations", cfg.Database.DBName); err != nil {
		return err
	}

	c := cache.New(cfg.Redis)
	if err := c.Ping(context.Background()); err != nil {
		// The cache and queue degrade gracefully, but redis being down at
		// boot is almost always a config mistake worth failing on.
		logger.Error("Redis unreachable", "addr", cfg.Redis.Addr, "error", err)
		return err
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	asynqClient := asynq.NewClient(redisOpt)
	dispatcher := notification.NewDispatcher(asynqClient)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpErrorHandler
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RequestID())

	roleRepo := authRepository.NewUserRoleRepository(db)
	mw := middleware.New(roleRepo, c)

	auth.Init(e, db, mw)
	events := event.Init(e, db, c, mw)
	rsvp.Init(e, db, events, dispatcher, mw)
	inquiries := contact.Init(e, db, dispatcher, mw)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	worker := notification.NewWorker(events, inquiries, notification.NewHTTPMailer(cfg.Mail), cfg.Mail.OfficeEmail)
	mux := asynq.NewServeMux()
	worker.Register(mux)

	asynqServer := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues:      map[string]int{constants.NotificationQueue: 1},
	})
	go func() {
		if err := asynqServer.Run(mux); err != nil {
			logger.Error("Notification worker stopped", "error", err)
		}
	}()

	go func() {
		logger.Info("Starting server", "port", cfg.Server.Port, "env", cfg.Server.Env)
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	asynqServer.Shutdown()
	if err := asynqClient.Close(); err != nil {
		logger.Error("Queue client close error", "error", err)
	}
	if err := c.Close(); err != nil {
		logger.Error("Cache close error", "error", err)
	}
	return nil
}

var errorResponder = controller.NewBaseController()

// httpErrorHandler renders errors escaping handlers and middleware (auth
// failures in particular) in the same envelope controllers use.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if he, ok := err.(*echo.HTTPError); ok {
		if jsonErr := c.JSON(he.Code, he.Message); jsonErr != nil {
			logger.Error("httpErrorHandler:JSON:Error:", jsonErr)
		}
		return
	}
	if respErr := errorResponder.ErrorResponse(c, err); respErr != nil {
		logger.Error("httpErrorHandler:ErrorResponse:Error:", respErr)
	}
}
