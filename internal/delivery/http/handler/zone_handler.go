package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/pkg/utils"
	"github.com/transit-backoffice/internal/usecase"
	"github.com/transit-backoffice/internal/usecase/dto"
)

// ZoneHandler serves admin CRUD for zones.
type ZoneHandler struct {
	zoneUC *usecase.ZoneUseCase
	logger *zap.Logger
}

func NewZoneHandler(zoneUC *usecase.ZoneUseCase, logger *zap.Logger) *ZoneHandler {
	return &ZoneHandler{
		zoneUC: zoneUC,
		logger: logger,
	}
}

func (h *ZoneHandler) List(c *fiber.Ctx) error {
	q, err := parseListQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	zones, total, err := h.zoneUC.List(c.Context(), q)
	if err != nil {
		h.logger.Error("Failed to list zones", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, zones, listMeta(q, total))
}

func (h *ZoneHandler) GetByID(c *fiber.Ctx) error {
	zone, err := h.zoneUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, zone, nil)
}

func (h *ZoneHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateZoneRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	zone, err := h.zoneUC.Create(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to create zone", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, zone)
}

func (h *ZoneHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateZoneRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	zone, err := h.zoneUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		h.logger.Error("Failed to update zone", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, zone, nil)
}

func (h *ZoneHandler) Delete(c *fiber.Ctx) error {
	if err := h.zoneUC.Delete(c.Context(), c.Params("id")); err != nil {
		h.logger.Error("Failed to delete zone", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
