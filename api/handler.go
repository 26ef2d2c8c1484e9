package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Disciplines(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.KindFirstComeFirstServe.String())
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.KindRoundRobin.String())
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.KindShortestJobFirst.String())
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.KindPriority.String())
}

// Simulate runs the discipline named by the :discipline route parameter.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	return s.schedule(ctx, ctx.Params("discipline"))
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, processes, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}

	results, err := schedulers.RunAll(processes, s.quantum(request))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]responses.ScheduleResponse, len(results))
	for i, result := range results {
		s.logResult(result, len(processes))
		response[i] = responses.NewScheduleResponse(processes, result)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Disciplines(ctx *fiber.Ctx) error {
	disciplines := schedulers.Disciplines(s.config.RoundRobinTimeQuantum)
	names := make([]string, len(disciplines))
	for i, d := range disciplines {
		names[i] = d.Kind().String()
	}
	return ctx.JSON(fiber.Map{
		"disciplines":          names,
		"default_time_quantum": s.config.RoundRobinTimeQuantum,
	})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, name string) error {
	request, processes, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}

	discipline, err := schedulers.ParseDiscipline(name, s.quantum(request))
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := schedulers.Run(processes, discipline)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.logResult(result, len(processes))
	return ctx.JSON(responses.NewScheduleResponse(processes, result))
}

// parseRequest decodes and validates the body. When it returns false the
// error response has already been written.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, []core.Process, bool) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		s.logger.Debug("rejecting request body", "error", err)
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
		return nil, nil, false
	}
	if err := request.Validate(); err != nil {
		_ = s.fail(ctx, err)
		return nil, nil, false
	}
	return &request, request.Processes(), true
}

// quantum falls back to the configured Round Robin quantum when the request
// does not carry one.
func (s *SchedulerHandlerImpl) quantum(request *requests.ScheduleRequests) int {
	if request.TimeQuantum > 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, schedulers.ErrUnknownDiscipline):
		status = fiber.StatusBadRequest
	case errors.Is(err, schedulers.ErrInvalidParameter),
		errors.Is(err, schedulers.ErrEmptyInput),
		errors.Is(err, requests.ErrInvalidJob):
		status = fiber.StatusUnprocessableEntity
	}
	if status == fiber.StatusInternalServerError {
		s.logger.Error("can not process request", "error", err)
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func (s *SchedulerHandlerImpl) logResult(result *schedulers.Result, processCount int) {
	s.logger.Info("schedule computed",
		"discipline", result.Discipline.String(),
		"processes", processCount,
		"makespan", result.Summary.Makespan,
		"idle", result.Summary.IdleTime,
	)
}
