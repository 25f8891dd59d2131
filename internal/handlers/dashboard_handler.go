package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harinianandprojects/prioq-vision-dash/internal/dto"
	apierrors "github.com/harinianandprojects/prioq-vision-dash/internal/errors"
	"github.com/harinianandprojects/prioq-vision-dash/internal/services"
)

// DashboardHandler handles page-level dashboard requests
type DashboardHandler struct {
	dashboard services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetStats returns the stats row computed over the feed and the customer
// directory
func (h *DashboardHandler) GetStats(c echo.Context) error {
	stats, err := h.dashboard.GetStats(c.Request().Context())
	if err != nil {
		return SendGatewayError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// GetView returns the active dashboard view
func (h *DashboardHandler) GetView(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.DashboardViewResponse{View: h.dashboard.GetView()})
}

// UpdateView switches the active dashboard view
func (h *DashboardHandler) UpdateView(c echo.Context) error {
	var req dto.UpdateViewRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.dashboard.SetView(req.View); err != nil {
		if errors.Is(err, services.ErrInvalidView) {
			return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails("Unknown dashboard view"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DashboardViewResponse{View: h.dashboard.GetView()})
}
