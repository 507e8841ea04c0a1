package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/pkg/utils"
	"github.com/transit-backoffice/internal/usecase"
	"github.com/transit-backoffice/internal/usecase/dto"
)

// StopHandler serves admin CRUD for bus stops.
type StopHandler struct {
	stopUC *usecase.StopUseCase
	logger *zap.Logger
}

func NewStopHandler(stopUC *usecase.StopUseCase, logger *zap.Logger) *StopHandler {
	return &StopHandler{
		stopUC: stopUC,
		logger: logger,
	}
}

func (h *StopHandler) List(c *fiber.Ctx) error {
	q, err := parseListQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	stops, total, err := h.stopUC.List(c.Context(), q)
	if err != nil {
		h.logger.Error("Failed to list stops", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stops, listMeta(q, total))
}

func (h *StopHandler) GetByID(c *fiber.Ctx) error {
	stop, err := h.stopUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stop, nil)
}

func (h *StopHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStopRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	stop, err := h.stopUC.Create(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to create stop", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, stop)
}

func (h *StopHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateStopRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	stop, err := h.stopUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		h.logger.Error("Failed to update stop", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stop, nil)
}

func (h *StopHandler) Delete(c *fiber.Ctx) error {
	if err := h.stopUC.Delete(c.Context(), c.Params("id")); err != nil {
		h.logger.Error("Failed to delete stop", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
