// internal/handlers/list_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"algobloom/internal/middleware"
	"algobloom/internal/model"
	"algobloom/internal/service"
	"algobloom/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ListHandler struct {
	service service.ListService
	logger  *slog.Logger
}

func NewListHandler(s service.ListService, logger *slog.Logger) *ListHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ListHandler{
		service: s,
		logger:  logger,
	}
}

// GetLists は全リストの進捗付き一覧を返すハンドラ (?group= で絞り込み)
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLists"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	group := r.URL.Query().Get("group")
	resp, err := h.service.GetLists(r.Context(), userID, group)
	if err != nil {
		logger.Error("Error listing lists in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetListQuestions はリスト配下の問題一覧を返すハンドラ。
// クエリパラメータ (search / difficulty / status / sort) は閉じた列挙に正規化し、
// 未知の値はデフォルトに倒します。
func (h *ListHandler) GetListQuestions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetListQuestions"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		appErr := model.NewAppError("INVALID_URL_PARAM", "リストのslugが指定されていません。", "slug", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("slug", slug))

	q := r.URL.Query()
	query := model.ListQuestionsQuery{
		Search: q.Get("search"),
		Status: model.ParseStatusFilter(q.Get("status")),
		Sort:   model.ParseSortOrder(q.Get("sort")),
	}
	if raw := q.Get("difficulty"); raw != "" {
		query.Difficulty = model.ParseDifficulty(raw)
		query.HasDiff = true
	}

	resp, err := h.service.GetListQuestions(r.Context(), userID, slug, query)
	if err != nil {
		logger.Error("Error listing list questions in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetListSummary はリストの難易度/トピック内訳を返すハンドラ
func (h *ListHandler) GetListSummary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetListSummary"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		appErr := model.NewAppError("INVALID_URL_PARAM", "リストのslugが指定されていません。", "slug", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("slug", slug))

	resp, err := h.service.GetListSummary(r.Context(), userID, slug)
	if err != nil {
		logger.Error("Error building list summary in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
