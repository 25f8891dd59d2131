package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/harinianandprojects/prioq-vision-dash/internal/dto"
	"github.com/harinianandprojects/prioq-vision-dash/internal/errors"
	"github.com/harinianandprojects/prioq-vision-dash/internal/services"
)

// AlertHandler handles alert feed HTTP requests
type AlertHandler struct {
	feed    services.AlertFeedServiceInterface
	metrics services.MetricsRecorderInterface
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(feed services.AlertFeedServiceInterface, metrics services.MetricsRecorderInterface) *AlertHandler {
	return &AlertHandler{
		feed:    feed,
		metrics: metrics,
	}
}

// ListAlerts returns the feed snapshot, optionally filtered by the q
// query parameter
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	query := c.QueryParam("q")
	alerts := h.feed.Search(query)
	return c.JSON(http.StatusOK, dto.NewAlertListResponse(alerts, h.feed.Loading(), query))
}

// RefreshAlerts triggers a bulk reload of the feed. On gateway failure the
// feed keeps its previous contents and the client gets the standard
// gateway error
func (h *AlertHandler) RefreshAlerts(c echo.Context) error {
	h.metrics.IncrementCounter("alert.action", map[string]string{"action": "refresh"})
	if err := h.feed.LoadRecent(c.Request().Context()); err != nil {
		return SendGatewayError(c, err)
	}
	alerts := h.feed.Snapshot()
	return c.JSON(http.StatusOK, dto.NewAlertListResponse(alerts, h.feed.Loading(), ""))
}

// AcknowledgeAlert marks an alert handled
func (h *AlertHandler) AcknowledgeAlert(c echo.Context) error {
	alertID, err := parseAlertID(c)
	if err != nil {
		return SendError(c, errors.AlertInvalidID)
	}

	if err := h.feed.Acknowledge(alertID); err != nil {
		return SendError(c, errors.AlertNotFound)
	}

	h.metrics.IncrementCounter("alert.action", map[string]string{"action": "acknowledge"})
	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Alert acknowledged",
	})
}

// SnoozeAlert quiets an alert, optionally for a caller-chosen duration
func (h *AlertHandler) SnoozeAlert(c echo.Context) error {
	alertID, err := parseAlertID(c)
	if err != nil {
		return SendError(c, errors.AlertInvalidID)
	}

	var req dto.SnoozeAlertRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	duration := time.Duration(req.DurationMinutes) * time.Minute
	if err := h.feed.Snooze(alertID, duration); err != nil {
		return SendError(c, errors.AlertNotFound)
	}

	h.metrics.IncrementCounter("alert.action", map[string]string{"action": "snooze"})
	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Alert snoozed",
	})
}

// DismissAlert removes an alert from the feed as a false positive.
// Dismissing an alert that is already gone still succeeds
func (h *AlertHandler) DismissAlert(c echo.Context) error {
	alertID, err := parseAlertID(c)
	if err != nil {
		return SendError(c, errors.AlertInvalidID)
	}

	if err := h.feed.Dismiss(alertID); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("alert.action", map[string]string{"action": "dismiss"})
	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Alert dismissed",
	})
}

// parseAlertID validates the :id path parameter. Alert ids are the uuid of
// the originating detection event.
func parseAlertID(c echo.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", err
	}
	return id, nil
}
