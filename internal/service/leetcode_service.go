// internal/service/leetcode_service.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"algobloom/internal/config"
	"algobloom/internal/middleware"
	"algobloom/internal/model"
	"algobloom/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeetCodeService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.LeetCodeProfileResponse, error)
	SyncSolved(ctx context.Context, userID uuid.UUID) (*model.LeetCodeSyncResponse, error)
}

type leetCodeService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	questionRepo repository.QuestionRepository
	httpClient   *http.Client
	cfg          *config.Config
}

func NewLeetCodeService(db *gorm.DB, userRepo repository.UserRepository, questionRepo repository.QuestionRepository, cfg *config.Config) LeetCodeService {
	return &leetCodeService{
		db:           db,
		userRepo:     userRepo,
		questionRepo: questionRepo,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.LeetCode.TimeoutSeconds) * time.Second,
		},
		cfg: cfg,
	}
}

// GraphQLクエリ (LeetCode公開API)
const (
	profileQuery = `query userPublicProfile($username: String!) {
  matchedUser(username: $username) {
    username
    profile { userAvatar ranking reputation }
    submitStatsGlobal { acSubmissionNum { difficulty count } }
  }
}`
	recentAcceptedQuery = `query recentAcSubmissions($username: String!, $limit: Int!) {
  recentAcSubmissionList(username: $username, limit: $limit) { titleSlug }
}`
)

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type profileQueryResponse struct {
	Data struct {
		MatchedUser *struct {
			Username string `json:"username"`
			Profile  struct {
				UserAvatar string `json:"userAvatar"`
				Ranking    int    `json:"ranking"`
				Reputation int    `json:"reputation"`
			} `json:"profile"`
			SubmitStatsGlobal struct {
				AcSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStatsGlobal"`
		} `json:"matchedUser"`
	} `json:"data"`
}

type recentAcceptedResponse struct {
	Data struct {
		RecentAcSubmissionList []struct {
			TitleSlug string `json:"titleSlug"`
		} `json:"recentAcSubmissionList"`
	} `json:"data"`
}

// GetProfile はLeetCodeの公開プロフィールと解答数を取得します
func (s *leetCodeService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.LeetCodeProfileResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	user, err := s.findUserWithLeetCode(ctx, userID)
	if err != nil {
		return nil, err
	}

	var resp profileQueryResponse
	if err := s.postGraphQL(ctx, profileQuery, map[string]any{"username": user.LeetCodeUsername}, &resp); err != nil {
		logger.Warn("LeetCode profile request failed", "error", err, "leetcode_username", user.LeetCodeUsername)
		return nil, model.NewAppError("LEETCODE_UNAVAILABLE", "LeetCodeへの接続に失敗しました。時間をおいて再度お試しください。", "", model.ErrBadGateway)
	}
	if resp.Data.MatchedUser == nil {
		logger.Warn("LeetCode user not found", "leetcode_username", user.LeetCodeUsername)
		return nil, model.NewAppError("LEETCODE_USER_NOT_FOUND", "LeetCodeユーザーが見つかりません。ユーザー名を確認してください。", "leetcode_username", model.ErrNotFound)
	}

	mu := resp.Data.MatchedUser
	profile := &model.LeetCodeProfileResponse{
		Username:   mu.Username,
		Avatar:     mu.Profile.UserAvatar,
		Ranking:    mu.Profile.Ranking,
		Reputation: mu.Profile.Reputation,
	}
	for _, stat := range mu.SubmitStatsGlobal.AcSubmissionNum {
		switch stat.Difficulty {
		case "Easy":
			profile.EasySolved = stat.Count
		case "Medium":
			profile.MediumSolved = stat.Count
		case "Hard":
			profile.HardSolved = stat.Count
		case "All":
			profile.TotalSolved = stat.Count
		}
	}
	return profile, nil
}

// SyncSolved は直近ACの提出をカタログと突き合わせ、一致件数を返します。
// solvedフラグの自動反映は行いません (手動トグルのみが進捗を変更する)。
// 同期時刻だけを更新します。
func (s *leetCodeService) SyncSolved(ctx context.Context, userID uuid.UUID) (*model.LeetCodeSyncResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	user, err := s.findUserWithLeetCode(ctx, userID)
	if err != nil {
		return nil, err
	}

	var resp recentAcceptedResponse
	variables := map[string]any{
		"username": user.LeetCodeUsername,
		"limit":    s.cfg.App.LeetCodeSyncLimit,
	}
	if err := s.postGraphQL(ctx, recentAcceptedQuery, variables, &resp); err != nil {
		logger.Warn("LeetCode sync request failed", "error", err, "leetcode_username", user.LeetCodeUsername)
		return nil, model.NewAppError("LEETCODE_UNAVAILABLE", "LeetCodeへの接続に失敗しました。時間をおいて再度お試しください。", "", model.ErrBadGateway)
	}

	// 重複slugを除去してからカタログと突き合わせる
	seen := make(map[string]struct{}, len(resp.Data.RecentAcSubmissionList))
	slugs := make([]string, 0, len(resp.Data.RecentAcSubmissionList))
	for _, sub := range resp.Data.RecentAcSubmissionList {
		if sub.TitleSlug == "" {
			continue
		}
		if _, ok := seen[sub.TitleSlug]; ok {
			continue
		}
		seen[sub.TitleSlug] = struct{}{}
		slugs = append(slugs, sub.TitleSlug)
	}

	matched, err := s.questionRepo.FindBySlugs(ctx, s.db, slugs)
	if err != nil {
		logger.Error("Failed to match synced slugs against catalog", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "同期結果の照合に失敗しました。", "", err)
	}

	now := time.Now()
	user.LeetCodeLastSyncAt = &now
	if err := s.userRepo.Update(ctx, s.db, user); err != nil {
		logger.Error("Failed to update last sync time", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "同期時刻の更新に失敗しました。", "", err)
	}

	logger.Info("LeetCode sync completed", "fetched", len(slugs), "matched", len(matched))
	return &model.LeetCodeSyncResponse{
		Matched:      len(matched),
		MarkedSolved: 0,
	}, nil
}

func (s *leetCodeService) findUserWithLeetCode(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrUserNotFound)
		}
		logger.Error("Error finding user for LeetCode operation", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	if user.LeetCodeUsername == "" {
		return nil, model.NewAppError("LEETCODE_USERNAME_NOT_SET", "LeetCodeユーザー名が設定されていません。プロフィールから設定してください。", "leetcode_username", model.ErrInvalidInput)
	}
	return user, nil
}

// postGraphQL はGraphQLクエリをPOSTし、レスポンスJSONを out にデコードします
func (s *leetCodeService) postGraphQL(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("leetCodeService.postGraphQL: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.LeetCode.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("leetCodeService.postGraphQL: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("leetCodeService.postGraphQL: do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// レート制限などの上流エラー。ボディは読み捨てる。
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("leetCodeService.postGraphQL: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("leetCodeService.postGraphQL: decode: %w", err)
	}
	return nil
}
