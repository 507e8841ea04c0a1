package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/pkg/utils"
	"github.com/transit-backoffice/internal/usecase"
	"github.com/transit-backoffice/internal/usecase/dto"
)

// RouteHandler serves admin CRUD for bus routes.
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

func (h *RouteHandler) List(c *fiber.Ctx) error {
	q, err := parseListQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	routes, total, err := h.routeUC.List(c.Context(), q)
	if err != nil {
		h.logger.Error("Failed to list routes", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, routes, listMeta(q, total))
}

func (h *RouteHandler) GetByID(c *fiber.Ctx) error {
	route, err := h.routeUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, route, nil)
}

func (h *RouteHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRouteRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	route, err := h.routeUC.Create(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to create route", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, route)
}

func (h *RouteHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateRouteRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	route, err := h.routeUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		h.logger.Error("Failed to update route", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, route, nil)
}

func (h *RouteHandler) Delete(c *fiber.Ctx) error {
	if err := h.routeUC.Delete(c.Context(), c.Params("id")); err != nil {
		h.logger.Error("Failed to delete route", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
