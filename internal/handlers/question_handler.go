// internal/handlers/question_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"algobloom/internal/middleware"
	"algobloom/internal/model"
	"algobloom/internal/service"
	"algobloom/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type QuestionHandler struct {
	service service.QuestionService
	logger  *slog.Logger
}

func NewQuestionHandler(s service.QuestionService, logger *slog.Logger) *QuestionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionHandler{
		service: s,
		logger:  logger,
	}
}

// ToggleSolved は解答済みフラグを反転するハンドラ
func (h *QuestionHandler) ToggleSolved(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "ToggleSolved", h.service.ToggleSolved)
}

// ToggleRevisit は復習フラグを反転するハンドラ
func (h *QuestionHandler) ToggleRevisit(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "ToggleRevisit", h.service.ToggleRevisit)
}

func (h *QuestionHandler) toggle(w http.ResponseWriter, r *http.Request, name string, fn func(ctx context.Context, userID, questionID uuid.UUID) (*model.ToggleResponse, error)) {
	logger := h.logger.With(slog.String("handler", name))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	questionIDStr := chi.URLParam(r, "question_id")
	questionID, err := uuid.Parse(questionIDStr)
	if err != nil {
		logger.Warn("Invalid question ID format in URL", slog.String("question_id_str", questionIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "question_idの形式が正しくありません。", "question_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("question_id", questionID.String()))

	resp, err := fn(r.Context(), userID, questionID)
	if err != nil {
		logger.Error("Error toggling progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Progress toggled successfully",
		slog.Bool("is_solved", resp.IsSolved), slog.Bool("is_revisit", resp.IsRevisit))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetRevisitQuestions は復習マーク済みの問題一覧を返すハンドラ
func (h *QuestionHandler) GetRevisitQuestions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetRevisitQuestions"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	questions, err := h.service.GetRevisitQuestions(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing revisit questions in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if questions == nil {
		questions = []*model.QuestionWithProgress{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, questions, logger)
}

// Search はトピックと問題の横断検索ハンドラ (?q=)
func (h *QuestionHandler) Search(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Search"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	query := r.URL.Query().Get("q")
	resp, err := h.service.Search(r.Context(), userID, query)
	if err != nil {
		logger.Error("Error searching in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
