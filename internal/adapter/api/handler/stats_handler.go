package handler

import (
	"github.com/labstack/echo/v4"

	"artisanmarket/internal/usecase"
	"artisanmarket/pkg/response"
)

type StatsHandler struct {
	statsUseCase *usecase.StatsUseCase
}

func NewStatsHandler(statsUseCase *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{
		statsUseCase: statsUseCase,
	}
}

// GetMarketplaceStats recomputes the marketplace counters on demand
func (h *StatsHandler) GetMarketplaceStats(c echo.Context) error {
	stats, err := h.statsUseCase.ComputeMarketplaceStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
