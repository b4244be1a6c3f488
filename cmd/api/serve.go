package main

import (
	"context"
	"strings"
	"time"

	"go-warehouse-ws/internal/config"
	"go-warehouse-ws/internal/confirm"
	"go-warehouse-ws/internal/handler"
	"go-warehouse-ws/internal/imagestore"
	"go-warehouse-ws/internal/middleware"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/service"
	"go-warehouse-ws/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and WebSocket server (default)",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	if cfg.UsesDefaultSecret() {
		log.Warn("JWT_SECRET is not set, using the development secret")
	}

	// Realtime notices
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	confirms := newConfirmStore(ctx, cfg, log)

	var images service.ImageStore
	if cfg.GCSBucket != "" {
		gcs, err := imagestore.NewGCSStore(ctx, cfg.GCSBucket, cfg.GCSCredentialsJSON)
		if err != nil {
			return err
		}
		defer gcs.Close()
		images = gcs
	} else {
		log.Info("GCS_BUCKET not set, product image upload disabled")
	}

	// Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, txRepo, images, wsHub, log)
	expenseService := service.NewExpenseService(categoryRepo, txRepo, wsHub, log)
	incomeService := service.NewIncomeService(categoryService)
	dashService := service.NewDashboardService(txRepo)

	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
	})

	// Middleware
	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	secret := []byte(cfg.JWTSecret)
	api := app.Group("/api/v1", middleware.RequireAuth(secret))
	handler.Register(api, handler.Handlers{
		Products:   handler.NewProductHandler(productService, confirms, cfg.DeleteConfirmTTL, wsHub, log),
		Expenses:   handler.NewExpenseHandler(expenseService, productService, categoryService, wsHub, log),
		Incomes:    handler.NewIncomeHandler(incomeService, categoryService, wsHub, log),
		Categories: handler.NewCategoryHandler(categoryService),
		Dashboard:  handler.NewDashboardHandler(dashService),
		Guard:      middleware.RequirePrivilege,
		GuardAny:   middleware.RequireAnyPrivilege,
	})

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("Server listening")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Gracefully shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return err
	}
	log.Info("Server exited")
	return nil
}

// newConfirmStore keeps delete confirmations in Redis when it is reachable
// and in process memory otherwise.
func newConfirmStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) confirm.Store {
	if strings.TrimSpace(cfg.RedisAddress) == "" {
		log.Info("REDIS_ADDRESS not set, keeping delete confirmations in memory")
		return confirm.NewMemoryStore(cfg.DeleteConfirmTTL)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddress,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).Warn("Redis unreachable, keeping delete confirmations in memory")
		_ = rdb.Close()
		return confirm.NewMemoryStore(cfg.DeleteConfirmTTL)
	}
	log.WithField("addr", cfg.RedisAddress).Info("Delete confirmations stored in Redis")
	return confirm.NewRedisStore(rdb, cfg.DeleteConfirmTTL)
}
