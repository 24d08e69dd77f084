package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"studenthome_backend/internals/configs"
	database "studenthome_backend/internals/databases"
	"studenthome_backend/internals/features/feedback/sessions/scheduler"
	helper "studenthome_backend/internals/helpers"
	middlewares "studenthome_backend/internals/middlewares"
	routes "studenthome_backend/internals/route"
)

var skipMigrate bool

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not auto-migrate tables on start")
	return cmd
}

func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ErrorHandler:            helper.ErrorHandler,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		ReadTimeout:             15 * time.Second,
		WriteTimeout:            30 * time.Second,
		IdleTimeout:             90 * time.Second,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)
	return app
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := database.ConnectDB(); err != nil {
		return err
	}
	defer database.Close()
	database.TunePool()

	if !skipMigrate {
		if err := database.AutoMigrate(database.DB); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}
	database.WarmUpQueries()

	// scheduler after the DB is ready
	publishCron, err := scheduler.StartPublishResultsCron(database.DB, configs.PublishCronSchedule)
	if err != nil {
		return err
	}
	defer publishCron.Stop()

	app := NewApp()
	routes.SetupRoutes(app, database.DB)

	port := configs.GetEnv("PORT", "3000")
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", port).Msg("listening")
		errCh <- app.Listen("0.0.0.0:" + port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.ShutdownWithContext(ctx)
}
