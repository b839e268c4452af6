// internal/handlers/topic_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"algobloom/internal/middleware"
	"algobloom/internal/model"
	"algobloom/internal/service"
	"algobloom/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TopicHandler struct {
	service service.TopicService
	logger  *slog.Logger
}

func NewTopicHandler(s service.TopicService, logger *slog.Logger) *TopicHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TopicHandler{
		service: s,
		logger:  logger,
	}
}

// GetTopics は全トピックの進捗付き一覧を返すハンドラ
func (h *TopicHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTopics"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	topics, err := h.service.GetTopics(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing topics in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if topics == nil {
		topics = []*model.TopicSummary{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, topics, logger)
}

// GetTopicQuestions はトピック配下の問題一覧を返すハンドラ
func (h *TopicHandler) GetTopicQuestions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTopicQuestions"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	topicIDStr := chi.URLParam(r, "topic_id")
	topicID, err := uuid.Parse(topicIDStr)
	if err != nil {
		logger.Warn("Invalid topic ID format in URL", slog.String("topic_id_str", topicIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "topic_idの形式が正しくありません。", "topic_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("topic_id", topicID.String()))

	resp, err := h.service.GetTopicQuestions(r.Context(), userID, topicID)
	if err != nil {
		logger.Error("Error listing topic questions in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
