// file: internals/commands/serve.go
package commands

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/spf13/cobra"

	"hostelku_backend/internals/configs"
	database "hostelku_backend/internals/databases"
	helper "hostelku_backend/internals/helpers"
	middlewares "hostelku_backend/internals/middlewares"
	"hostelku_backend/internals/middlewares/logger"
	routes "hostelku_backend/internals/route"
	"hostelku_backend/internals/scheduler"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

// NewApp builds the fiber app with the full middleware stack. Routes are mounted by the caller.
// X-Forwarded-For is only honoured from trustedProxies (IPs or CIDRs); with none, c.IP()
// is the peer address so clients can't pick their own rate limit key.
func NewApp(trustedProxies []string) *fiber.App {
	cfg := fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          trustedProxies,
	}
	if len(trustedProxies) > 0 {
		cfg.ProxyHeader = fiber.HeaderXForwardedFor
	}
	app := fiber.New(cfg)

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// request id + deadline, kept in line with statement_timeout
	app.Use(middlewares.RequestContext(5 * time.Second))
	app.Use(logger.LoggerMiddleware())
	middlewares.SetupMiddlewares(app)
	return app
}

func runServe() error {
	app := NewApp(configs.TrustedProxies)
	if len(configs.TrustedProxies) == 0 {
		log.Println("[INFO] TRUSTED_PROXIES empty, X-Forwarded-For ignored")
	}

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if configs.GetEnvBool("AUTO_MIGRATE", false) {
		if err := database.Migrate(database.DB); err != nil {
			return err
		}
	}

	routes.SetupRoutes(app, database.DB, routes.DefaultOptions())

	jobs, err := scheduler.Start(database.DB, scheduler.Config{
		RentEnabled:   configs.RentCronEnabled,
		RentSchedule:  configs.RentCronSchedule,
		ReaperEnabled: configs.TrashReaperEnabled,
		ReaperSpec:    configs.TrashReaperSchedule,
		RetentionDays: configs.TrashRetentionDays,
		Location:      configs.Location(),
	})
	if err != nil {
		return err
	}

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")

	if jobs != nil {
		// waits for a running generation pass to finish
		<-jobs.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close()
	return nil
}
