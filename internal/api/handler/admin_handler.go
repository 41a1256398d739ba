package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scholarfind/scholarship-api/internal/core/ports"
)

// AdminHandler serves the admin dashboard aggregates.
type AdminHandler struct {
	stats ports.StatsService
}

func NewAdminHandler(stats ports.StatsService) *AdminHandler {
	return &AdminHandler{stats: stats}
}

// Stats handles GET /api/admin/stats (admin only).
//
// @Summary      Admin dashboard counters
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AdminStats
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.stats.Collect(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}
