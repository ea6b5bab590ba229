package main

import (
	"fmt"
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/storage/redis"

	"github.com/ManuelReschke/InkFox/app/repository"
	"github.com/ManuelReschke/InkFox/internal/pkg/cache"
	"github.com/ManuelReschke/InkFox/internal/pkg/database"
	"github.com/ManuelReschke/InkFox/internal/pkg/env"
	"github.com/ManuelReschke/InkFox/internal/pkg/router"
	"github.com/ManuelReschke/InkFox/internal/pkg/session"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()

	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}
	cacheClient := cache.SetupCache()

	factory := repository.NewFactory(db, repository.Config{
		Cache:            cacheClient,
		CategoryCacheTTL: env.GetEnvDuration("CATEGORY_CACHE_TTL", repository.DefaultCategoryCacheTTL),
	})

	app := router.NewApp(router.Deps{
		DB:             db,
		Cache:          cacheClient,
		Sessions:       session.NewSessionStore(),
		Repos:          factory.GetRepositories(),
		LimiterStorage: newLimiterStorage(),
		Config:         router.ConfigFromEnv(),
	})

	// SWAGGER / OPENAPI
	if basePath := findBasePath(); basePath != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/docs/",
			FilePath: basePath + "docs/openapi.yml",
			Path:     "api",
		}))
	} else {
		log.Warn("docs/openapi.yml not found, API docs are disabled")
	}

	return app
}

// newLimiterStorage keeps login throttling counters in Redis database 2 so
// they hold across instances.
func newLimiterStorage() fiber.Storage {
	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnvInt("CACHE_PORT", 6379)
	return redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		Database: 2,
		Reset:    false,
	})
}

func findBasePath() string {
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/inkfox to project root
		"../../../", // Fallback
	}
	for _, path := range basePaths {
		if _, err := os.Stat(path + "docs/openapi.yml"); err == nil {
			return path
		}
	}
	return ""
}
