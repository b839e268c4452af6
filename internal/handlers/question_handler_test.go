// internal/handlers/question_handler_test.go
package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"algobloom/internal/handlers"
	"algobloom/internal/model"
	"algobloom/internal/service/mocks"
)

// authInjector は認証ミドルウェアの代わりに userID をコンテキストへ注入する
func authInjector(userID uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TestQuestionHandler_ToggleSolved(t *testing.T) {
	userID := uuid.New()
	questionID := uuid.New()

	newRouter := func(svc *mocks.QuestionService, authed bool) *chi.Mux {
		h := handlers.NewQuestionHandler(svc, nil)
		router := chi.NewRouter()
		if authed {
			router.Use(authInjector(userID))
		}
		router.Post("/api/v1/questions/{question_id}/toggle-solved", h.ToggleSolved)
		return router
	}

	tests := []struct {
		name           string
		url            string
		authed         bool
		setupMock      func(svc *mocks.QuestionService)
		expectedStatus int
		expectedSolved bool
	}{
		{
			name:   "正常系: トグル成功",
			url:    "/api/v1/questions/" + questionID.String() + "/toggle-solved",
			authed: true,
			setupMock: func(svc *mocks.QuestionService) {
				svc.On("ToggleSolved", mock.Anything, userID, questionID).
					Return(&model.ToggleResponse{IsSolved: true}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedSolved: true,
		},
		{
			name:           "異常系: question_id がUUIDでない",
			url:            "/api/v1/questions/not-a-uuid/toggle-solved",
			authed:         true,
			setupMock:      func(svc *mocks.QuestionService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "異常系: 問題が存在しない",
			url:    "/api/v1/questions/" + questionID.String() + "/toggle-solved",
			authed: true,
			setupMock: func(svc *mocks.QuestionService) {
				svc.On("ToggleSolved", mock.Anything, userID, questionID).
					Return(nil, model.NewAppError("QUESTION_NOT_FOUND", "指定された問題が見つかりません。", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "異常系: 未認証",
			url:            "/api/v1/questions/" + questionID.String() + "/toggle-solved",
			authed:         false,
			setupMock:      func(svc *mocks.QuestionService) {},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(mocks.QuestionService)
			tc.setupMock(mockService)
			router := newRouter(mockService, tc.authed)

			req := httptest.NewRequest(http.MethodPost, tc.url, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				var resp model.ToggleResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.expectedSolved, resp.IsSolved)
			} else {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.NotEmpty(t, errResp.Error.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestQuestionHandler_GetRevisitQuestions(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: サービスがnilを返しても空配列で応答する", func(t *testing.T) {
		mockService := new(mocks.QuestionService)
		mockService.On("GetRevisitQuestions", mock.Anything, userID).Return(nil, nil).Once()

		h := handlers.NewQuestionHandler(mockService, nil)
		router := chi.NewRouter()
		router.Use(authInjector(userID))
		router.Get("/api/v1/questions/revisit", h.GetRevisitQuestions)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/questions/revisit", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestQuestionHandler_Search(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: クエリパラメータがサービスへ渡る", func(t *testing.T) {
		mockService := new(mocks.QuestionService)
		mockService.On("Search", mock.Anything, userID, "binary").
			Return(&model.SearchResponse{
				Topics:    []*model.TopicHit{},
				Questions: []*model.QuestionWithProgress{},
			}, nil).Once()

		h := handlers.NewQuestionHandler(mockService, nil)
		router := chi.NewRouter()
		router.Use(authInjector(userID))
		router.Get("/api/v1/search", h.Search)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=binary", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.SearchResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Empty(t, resp.Topics)
		assert.Empty(t, resp.Questions)
		mockService.AssertExpectations(t)
	})
}
