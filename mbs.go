//go:build !cli
// +build !cli

package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"mbs.GO/api"
	_ "mbs.GO/api/cart"
	_ "mbs.GO/api/catalog"
	_ "mbs.GO/api/graphql"
	_ "mbs.GO/api/orders"
	_ "mbs.GO/api/quote"
	"mbs.GO/config"
	"mbs.GO/core/auth"
	"mbs.GO/cron"
	"mbs.GO/cron/jobs"
	_ "mbs.GO/custom"
	catalogRepo "mbs.GO/model/repository/catalog"
	orderRepo "mbs.GO/model/repository/order"
	storeRepo "mbs.GO/model/repository/store"
	cartService "mbs.GO/service/cart"
	orderService "mbs.GO/service/order"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, invalidation disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, invalidation disabled."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	// Check DB connection
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	kv := storeRepo.NewKVRepository(db)
	if err := kv.Migrate(); err != nil {
		log.Fatalf("failed to migrate store table: %v", err)
	}

	catalog := catalogRepo.NewStore(kv, config.RedisClient)
	catalog.Load()
	orders := orderRepo.NewStore(kv)
	orders.Load()
	catalog.SubscribeInvalidations(context.Background())

	deps := &api.Deps{
		DB:        db,
		Catalog:   catalog,
		Orders:    orders,
		Lifecycle: orderService.NewService(orders, catalog),
		Carts:     cartService.NewManager(),
	}

	// The order poll and catalog refresh run inside the server process.
	jobs.Bind(catalog, orders)
	scheduler := cron.StartCron()
	defer scheduler.Stop()

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())

	api.ApplyModules(apiGroup, deps)
	api.ApplyRoutes(e, deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
