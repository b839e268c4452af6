// internal/handlers/leetcode_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"algobloom/internal/middleware"
	"algobloom/internal/service"
	"algobloom/internal/webutil"
)

type LeetCodeHandler struct {
	service service.LeetCodeService
	logger  *slog.Logger
}

func NewLeetCodeHandler(s service.LeetCodeService, logger *slog.Logger) *LeetCodeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LeetCodeHandler{
		service: s,
		logger:  logger,
	}
}

// GetProfile はLeetCodeの公開プロフィールを返すハンドラ
func (h *LeetCodeHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLeetCodeProfile"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		// 上流都合の失敗も多いのでWarnで記録する
		logger.Warn("Error getting LeetCode profile in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}

// SyncSolved は直近ACの同期を実行するハンドラ
func (h *LeetCodeHandler) SyncSolved(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SyncLeetCodeSolved"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	resp, err := h.service.SyncSolved(r.Context(), userID)
	if err != nil {
		logger.Warn("Error syncing LeetCode solved in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("LeetCode sync completed", slog.Int("matched", resp.Matched))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
