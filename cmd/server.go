package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abraxas-365/internmatch/pkg/httpx"
	"github.com/Abraxas-365/internmatch/pkg/logx"
	"github.com/Abraxas-365/internmatch/recruitment/internship/internshipapi"
	"github.com/Abraxas-365/internmatch/recruitment/profile/profileapi"
	"github.com/Abraxas-365/internmatch/recruitment/recommendation/recommendationapi"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logx.Info("Starting InternMatch API Server...")

		// Initialize Dependency Container
		container, err := NewContainer(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer container.Close()

		app := newApp(container)

		// Start Server with Graceful Shutdown
		errCh := make(chan error, 1)
		go func() {
			logx.Infof("Server listening on port %s", cfg.Server.Port)
			errCh <- app.Listen(":" + cfg.Server.Port)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		logx.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logx.Errorf("Server forced to shutdown: %v", err)
		}

		logx.Info("Server exited")
		return nil
	},
}

// newApp builds the Fiber app with middleware and every route registered
func newApp(container *Container) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               container.Config.Server.AppName,
		DisableStartupMessage: true,
		ErrorHandler:          httpx.ErrorHandler,
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: container.Config.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		body := fiber.Map{"status": "ok", "storage": container.Config.Storage.Driver}
		for name, ok := range container.Healthy(ctx) {
			body[name] = ok
		}
		return c.JSON(body)
	})

	// --- Auth Routes ---
	// /api/auth/login, /api/auth/me
	container.AuthHandlers.RegisterRoutes(app, container.AuthMiddleware)

	// --- Catalog Routes ---
	// /api/internships, /api/stats
	internshipapi.RegisterRoutes(app, container.InternshipHandlers, container.AuthMiddleware)

	// /api/profile, /api/profiles
	profileapi.RegisterRoutes(app, container.ProfileHandlers, container.AuthMiddleware)

	// /api/recommendations
	recommendationapi.RegisterRoutes(app, container.RecommendationHandlers)

	return app
}
