package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/pkg/utils"
	"github.com/transit-backoffice/internal/usecase"
	"github.com/transit-backoffice/internal/usecase/dto"
)

// LaneHandler serves admin CRUD for bus lanes.
type LaneHandler struct {
	laneUC *usecase.LaneUseCase
	logger *zap.Logger
}

func NewLaneHandler(laneUC *usecase.LaneUseCase, logger *zap.Logger) *LaneHandler {
	return &LaneHandler{
		laneUC: laneUC,
		logger: logger,
	}
}

func (h *LaneHandler) List(c *fiber.Ctx) error {
	q, err := parseListQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	lanes, total, err := h.laneUC.List(c.Context(), q)
	if err != nil {
		h.logger.Error("Failed to list lanes", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, lanes, listMeta(q, total))
}

func (h *LaneHandler) GetByID(c *fiber.Ctx) error {
	lane, err := h.laneUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, lane, nil)
}

func (h *LaneHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateLaneRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	lane, err := h.laneUC.Create(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to create lane", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, lane)
}

func (h *LaneHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateLaneRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	lane, err := h.laneUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		h.logger.Error("Failed to update lane", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, lane, nil)
}

func (h *LaneHandler) Delete(c *fiber.Ctx) error {
	if err := h.laneUC.Delete(c.Context(), c.Params("id")); err != nil {
		h.logger.Error("Failed to delete lane", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
