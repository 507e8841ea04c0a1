package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/usecase"
	"github.com/transit-backoffice/internal/usecase/dto"
)

// MapHandler serves the public map aggregation endpoint.
type MapHandler struct {
	mapUC  *usecase.MapUseCase
	logger *zap.Logger
}

func NewMapHandler(mapUC *usecase.MapUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// GetMapData returns every active service, stop, lane, route and zone
// in one payload. Any failure produces a single fixed error message;
// clients never get a partial map.
func (h *MapHandler) GetMapData(c *fiber.Ctx) error {
	payload, err := h.mapUC.GetMapData(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MapResponse{
			Success: false,
			Error:   "Failed to load map data",
		})
	}
	return c.JSON(dto.MapResponse{
		Success: true,
		Data:    payload,
	})
}
