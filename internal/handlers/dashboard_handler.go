// internal/handlers/dashboard_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"algobloom/internal/middleware"
	"algobloom/internal/service"
	"algobloom/internal/webutil"
)

type DashboardHandler struct {
	service service.DashboardService
	logger  *slog.Logger
}

func NewDashboardHandler(s service.DashboardService, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{
		service: s,
		logger:  logger,
	}
}

// GetDashboard はダッシュボードの集約ペイロードを返すハンドラ
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDashboard"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	dashboard, err := h.service.BuildDashboard(r.Context(), userID, time.Now())
	if err != nil {
		logger.Error("Error building dashboard in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, dashboard, logger)
}
