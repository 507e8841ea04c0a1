package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/pkg/utils"
	"github.com/transit-backoffice/internal/usecase"
	"github.com/transit-backoffice/internal/usecase/dto"
)

// ServiceHandler serves admin CRUD for transport services.
type ServiceHandler struct {
	serviceUC *usecase.ServiceUseCase
	logger    *zap.Logger
}

func NewServiceHandler(serviceUC *usecase.ServiceUseCase, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{
		serviceUC: serviceUC,
		logger:    logger,
	}
}

func (h *ServiceHandler) List(c *fiber.Ctx) error {
	q, err := parseListQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	services, total, err := h.serviceUC.List(c.Context(), q)
	if err != nil {
		h.logger.Error("Failed to list services", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, services, listMeta(q, total))
}

func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	svc, err := h.serviceUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, svc, nil)
}

func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	svc, err := h.serviceUC.Create(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to create service", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, svc)
}

func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateServiceRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	svc, err := h.serviceUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		h.logger.Error("Failed to update service", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, svc, nil)
}

func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.serviceUC.Delete(c.Context(), c.Params("id")); err != nil {
		h.logger.Error("Failed to delete service", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
