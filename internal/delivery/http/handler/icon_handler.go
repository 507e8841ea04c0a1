package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/pkg/utils"
	"github.com/transit-backoffice/internal/usecase"
	"github.com/transit-backoffice/internal/usecase/dto"
)

// IconHandler serves admin CRUD for map icons.
type IconHandler struct {
	iconUC *usecase.IconUseCase
	logger *zap.Logger
}

func NewIconHandler(iconUC *usecase.IconUseCase, logger *zap.Logger) *IconHandler {
	return &IconHandler{
		iconUC: iconUC,
		logger: logger,
	}
}

func (h *IconHandler) List(c *fiber.Ctx) error {
	q, err := parseListQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	icons, total, err := h.iconUC.List(c.Context(), q)
	if err != nil {
		h.logger.Error("Failed to list icons", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, icons, listMeta(q, total))
}

func (h *IconHandler) GetByID(c *fiber.Ctx) error {
	icon, err := h.iconUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, icon, nil)
}

func (h *IconHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateIconRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	icon, err := h.iconUC.Create(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to create icon", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, icon)
}

func (h *IconHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateIconRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	icon, err := h.iconUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		h.logger.Error("Failed to update icon", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, icon, nil)
}

func (h *IconHandler) Delete(c *fiber.Ctx) error {
	if err := h.iconUC.Delete(c.Context(), c.Params("id")); err != nil {
		h.logger.Error("Failed to delete icon", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
