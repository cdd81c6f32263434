package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"schoolquiz_backend/internals/configs"
	database "schoolquiz_backend/internals/databases"
	installService "schoolquiz_backend/internals/features/app/install/service"
	scheduler "schoolquiz_backend/internals/features/users/auth/scheduler"
	helper "schoolquiz_backend/internals/helpers"
	"schoolquiz_backend/internals/helpers/slogcustom"
	middlewares "schoolquiz_backend/internals/middlewares"
	routes "schoolquiz_backend/internals/route"
)

func main() {
	configs.LoadEnv()
	slogcustom.Install(os.Stdout, configs.GetEnv("LOG_LEVEL", "info"))

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.FiberErrorHandler,
		BodyLimit:             10 * 1024 * 1024,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// request id + per-request deadline
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		slog.Debug("request", "id", id, "method", c.Method(), "url", c.OriginalURL(),
			"status", c.Response().StatusCode(), "dur", time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	if err := database.AutoMigrate(database.DB); err != nil {
		slog.Error("auto migrate failed", "err", err)
		os.Exit(1)
	}
	database.WarmUpQueries()

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	if configs.Conf.GetBool("AUTO_INSTALL") {
		installService.NewInstallService(database.DB).Installer(bgCtx)
	}
	scheduler.StartRefreshTokenCleanupScheduler(bgCtx, database.DB)

	routes.SetupRoutes(app, database.DB)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")
	go func() {
		slog.Info("listening", "port", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopBackground()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	database.Close(database.DB)
}
