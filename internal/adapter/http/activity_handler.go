package http

import (
	"net/http"
	"strconv"

	activityDomain "sacco-backend/internal/domain/activity"

	"github.com/labstack/echo/v4"
)

type ActivityHandler struct{ repo activityDomain.Repository }

func NewActivityHandler(repo activityDomain.Repository) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

func (h *ActivityHandler) ListActivities(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit", Kind: "validation"})
		}
		limit = n
	}
	out, err := h.repo.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
