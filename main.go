package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/TobiasLindner/DevFolio/app/models"
	"github.com/TobiasLindner/DevFolio/app/repository"
	"github.com/TobiasLindner/DevFolio/internal/pkg/cache"
	"github.com/TobiasLindner/DevFolio/internal/pkg/constants"
	"github.com/TobiasLindner/DevFolio/internal/pkg/database"
	"github.com/TobiasLindner/DevFolio/internal/pkg/env"
	"github.com/TobiasLindner/DevFolio/internal/pkg/jobqueue"
	"github.com/TobiasLindner/DevFolio/internal/pkg/router"
	"github.com/TobiasLindner/DevFolio/internal/pkg/statistics"
)

func main() {
	app := NewApplication()

	stopFlusher := make(chan struct{})
	statistics.StartFlusher(stopFlusher)

	queue := jobqueue.GetQueue()
	queue.Start()
	defer func() {
		close(stopFlusher)
		queue.Stop()
	}()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	repository.InitializeFactory(database.GetDB())
	if err := models.LoadSettings(database.GetDB()); err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:     engine,
		BodyLimit: 20971520, // 20 MiB
	})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())
	app.Static("/", "./public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// static uploads
	app.Static(constants.UploadsRoute, "./public/uploads", fiber.Static{
		CacheDuration: 10 * time.Second,
		MaxAge:        604800, // 7 days
	})

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	return app
}
