package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-backoffice/internal/pkg/utils"
	"github.com/transit-backoffice/internal/usecase"
)

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStatistics(c.Context())
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stats, nil)
}
