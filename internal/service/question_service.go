// internal/service/question_service.go
package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"algobloom/internal/config"
	"algobloom/internal/middleware"
	"algobloom/internal/model"
	"algobloom/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionService interface {
	ToggleSolved(ctx context.Context, userID, questionID uuid.UUID) (*model.ToggleResponse, error)
	ToggleRevisit(ctx context.Context, userID, questionID uuid.UUID) (*model.ToggleResponse, error)
	GetRevisitQuestions(ctx context.Context, userID uuid.UUID) ([]*model.QuestionWithProgress, error)
	Search(ctx context.Context, userID uuid.UUID, query string) (*model.SearchResponse, error)
}

type questionService struct {
	db           *gorm.DB
	questionRepo repository.QuestionRepository
	topicRepo    repository.TopicRepository
	progRepo     repository.ProgressRepository
	cfg          *config.Config
}

func NewQuestionService(db *gorm.DB, questionRepo repository.QuestionRepository, topicRepo repository.TopicRepository, progRepo repository.ProgressRepository, cfg *config.Config) QuestionService {
	return &questionService{
		db:           db,
		questionRepo: questionRepo,
		topicRepo:    topicRepo,
		progRepo:     progRepo,
		cfg:          cfg,
	}
}

// ToggleSolved は解答済みフラグを反転します。
// true への遷移で solved_at に現在時刻をセットし、false への遷移でクリアします。
func (s *questionService) ToggleSolved(ctx context.Context, userID, questionID uuid.UUID) (*model.ToggleResponse, error) {
	return s.toggle(ctx, userID, questionID, func(p *model.Progress, now time.Time) {
		p.IsSolved = !p.IsSolved
		if p.IsSolved {
			p.SolvedAt = &now
		} else {
			p.SolvedAt = nil
		}
	})
}

// ToggleRevisit は復習フラグを反転します。solved とは独立に変化します。
func (s *questionService) ToggleRevisit(ctx context.Context, userID, questionID uuid.UUID) (*model.ToggleResponse, error) {
	return s.toggle(ctx, userID, questionID, func(p *model.Progress, now time.Time) {
		p.IsRevisit = !p.IsRevisit
		if p.IsRevisit {
			p.RevisitAt = &now
		} else {
			p.RevisitAt = nil
		}
	})
}

// toggle は進捗行の find-or-create とフラグ反転をトランザクション内で行います。
// 進捗行は最初のトグルで遅延作成します。同一ペアへの同時作成は
// ユニーク制約違反 (ErrConflict) で片方が負け、既存行を読み直して反転を適用します。
func (s *questionService) toggle(ctx context.Context, userID, questionID uuid.UUID, apply func(*model.Progress, time.Time)) (*model.ToggleResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "question_id", questionID)

	if _, err := s.questionRepo.FindByID(ctx, s.db, questionID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("QUESTION_NOT_FOUND", "指定された問題が見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find question for toggle", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "問題の取得に失敗しました。", "", err)
	}

	var progress *model.Progress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		existing, err := s.progRepo.Find(ctx, tx, userID, questionID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}

		if existing == nil {
			fresh := &model.Progress{
				ProgressID: uuid.New(),
				UserID:     userID,
				QuestionID: questionID,
			}
			apply(fresh, now)
			if err := s.progRepo.Create(ctx, tx, fresh); err != nil {
				if !errors.Is(err, model.ErrConflict) {
					return err
				}
				// 同時作成に負けた側。既存行に反転を適用し直す。
				logger.Info("Concurrent progress creation detected, retrying on existing row")
				existing, err = s.progRepo.Find(ctx, tx, userID, questionID)
				if err != nil {
					return err
				}
			} else {
				progress = fresh
				return nil
			}
		}

		apply(existing, now)
		if err := s.progRepo.Update(ctx, tx, existing); err != nil {
			return err
		}
		progress = existing
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		logger.Error("Failed to toggle progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の更新に失敗しました。", "", err)
	}

	return &model.ToggleResponse{
		IsSolved:  progress.IsSolved,
		IsRevisit: progress.IsRevisit,
	}, nil
}

// GetRevisitQuestions は復習マーク済みの問題をタイトル昇順で返します
func (s *questionService) GetRevisitQuestions(ctx context.Context, userID uuid.UUID) ([]*model.QuestionWithProgress, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	progresses, err := s.progRepo.FindRevisit(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to find revisit questions", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習リストの取得に失敗しました。", "", err)
	}

	questions := make([]*model.QuestionWithProgress, 0, len(progresses))
	for _, p := range progresses {
		if p.Question == nil {
			// カタログ再シードで問題が消えた孤児行。レスポンスからは落とす。
			logger.Warn("Revisit progress references missing question", "question_id", p.QuestionID)
			continue
		}
		questions = append(questions, &model.QuestionWithProgress{
			QuestionID: p.Question.QuestionID,
			Title:      p.Question.Title,
			Link:       p.Question.Link,
			Difficulty: p.Question.Difficulty,
			Tags:       p.Question.Tags,
			IsSolved:   p.IsSolved,
			IsRevisit:  p.IsRevisit,
		})
	}
	sort.Slice(questions, func(i, j int) bool {
		return strings.ToLower(questions[i].Title) < strings.ToLower(questions[j].Title)
	})
	return questions, nil
}

// Search はトピック名と問題 (タイトル/タグ) の横断検索です。
// 空クエリは空の結果を返し、エラーにはしません。
func (s *questionService) Search(ctx context.Context, userID uuid.UUID, query string) (*model.SearchResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	resp := &model.SearchResponse{
		Topics:    []*model.TopicHit{},
		Questions: []*model.QuestionWithProgress{},
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return resp, nil
	}

	limit := s.cfg.App.SearchLimit

	topics, err := s.topicRepo.Search(ctx, s.db, query, limit)
	if err != nil {
		logger.Error("Failed to search topics", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "検索に失敗しました。", "", err)
	}
	for _, t := range topics {
		resp.Topics = append(resp.Topics, &model.TopicHit{
			TopicID:  t.TopicID,
			Name:     t.Name,
			Category: t.Category,
		})
	}

	questions, err := s.questionRepo.Search(ctx, s.db, query, limit)
	if err != nil {
		logger.Error("Failed to search questions", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "検索に失敗しました。", "", err)
	}
	resp.Questions, err = s.mergeProgress(ctx, userID, questions)
	if err != nil {
		logger.Error("Failed to merge progress into search results", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "検索に失敗しました。", "", err)
	}
	return resp, nil
}

// mergeProgress は問題一覧にユーザー進捗をマージします。進捗行がなければ両フラグfalse。
func (s *questionService) mergeProgress(ctx context.Context, userID uuid.UUID, questions []*model.Question) ([]*model.QuestionWithProgress, error) {
	ids := make([]uuid.UUID, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.QuestionID)
	}
	progresses, err := s.progRepo.FindByQuestionIDs(ctx, s.db, userID, ids)
	if err != nil {
		return nil, err
	}
	byQuestion := make(map[uuid.UUID]*model.Progress, len(progresses))
	for _, p := range progresses {
		byQuestion[p.QuestionID] = p
	}

	merged := make([]*model.QuestionWithProgress, 0, len(questions))
	for _, q := range questions {
		item := &model.QuestionWithProgress{
			QuestionID: q.QuestionID,
			Title:      q.Title,
			Link:       q.Link,
			Difficulty: q.Difficulty,
			Tags:       q.Tags,
		}
		if p, ok := byQuestion[q.QuestionID]; ok {
			item.IsSolved = p.IsSolved
			item.IsRevisit = p.IsRevisit
		}
		merged = append(merged, item)
	}
	return merged, nil
}
