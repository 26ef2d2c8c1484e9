package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cpu-scheduler/config"
)

// NewApp builds the HTTP API around a scheduler handler.
func NewApp(cfg *config.SchedulerConfig, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	RegisterRoutes(app.Group("/api"), NewSchedulerHandlerImpl(cfg, logger))
	return app
}

func RegisterRoutes(api fiber.Router, handler SchedulerHandler) {
	v1 := api.Group("/v1")
	{
		v1.Get("/disciplines", handler.Disciplines)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/simulate/:discipline", handler.Simulate)
	}
}
