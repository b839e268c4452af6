// internal/service/topic_service.go
package service

import (
	"context"
	"errors"

	"algobloom/internal/middleware"
	"algobloom/internal/model"
	"algobloom/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type TopicService interface {
	GetTopics(ctx context.Context, userID uuid.UUID) ([]*model.TopicSummary, error)
	GetTopicQuestions(ctx context.Context, userID, topicID uuid.UUID) (*model.TopicQuestionsResponse, error)
}

type topicService struct {
	db           *gorm.DB
	topicRepo    repository.TopicRepository
	questionRepo repository.QuestionRepository
	progRepo     repository.ProgressRepository
}

func NewTopicService(db *gorm.DB, topicRepo repository.TopicRepository, questionRepo repository.QuestionRepository, progRepo repository.ProgressRepository) TopicService {
	return &topicService{
		db:           db,
		topicRepo:    topicRepo,
		questionRepo: questionRepo,
		progRepo:     progRepo,
	}
}

// GetTopics は全トピックに solved / revisit 件数をマージして返します。
// 進捗のないトピックも件数0で必ず含めます。
func (s *topicService) GetTopics(ctx context.Context, userID uuid.UUID) ([]*model.TopicSummary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	var (
		topics      []*model.Topic
		solvedRows  []model.TopicProgressRow
		revisitRows []model.TopicProgressRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		topics, err = s.topicRepo.FindAll(gctx, s.db)
		return err
	})
	g.Go(func() error {
		var err error
		solvedRows, err = s.progRepo.CountSolvedByTopic(gctx, s.db, userID)
		return err
	})
	g.Go(func() error {
		var err error
		revisitRows, err = s.progRepo.CountRevisitByTopic(gctx, s.db, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to build topic summaries", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トピック一覧の取得に失敗しました。", "", err)
	}

	solvedByTopic := make(map[uuid.UUID]int, len(solvedRows))
	for _, row := range solvedRows {
		solvedByTopic[row.TopicID] = row.Count
	}
	revisitByTopic := make(map[uuid.UUID]int, len(revisitRows))
	for _, row := range revisitRows {
		revisitByTopic[row.TopicID] = row.Count
	}

	summaries := make([]*model.TopicSummary, 0, len(topics))
	for _, t := range topics {
		summaries = append(summaries, &model.TopicSummary{
			TopicID:  t.TopicID,
			Name:     t.Name,
			Slug:     t.Slug,
			Category: t.Category,
			Total:    t.QuestionCount,
			Solved:   solvedByTopic[t.TopicID],
			Revisit:  revisitByTopic[t.TopicID],
		})
	}
	return summaries, nil
}

// GetTopicQuestions はトピック配下の問題一覧に進捗をマージして返します
func (s *topicService) GetTopicQuestions(ctx context.Context, userID, topicID uuid.UUID) (*model.TopicQuestionsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "topic_id", topicID)

	topic, err := s.topicRepo.FindByID(ctx, s.db, topicID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TOPIC_NOT_FOUND", "指定されたトピックが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find topic", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トピックの取得に失敗しました。", "", err)
	}

	questions, err := s.questionRepo.FindByTopic(ctx, s.db, topicID)
	if err != nil {
		logger.Error("Failed to find questions by topic", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "問題一覧の取得に失敗しました。", "", err)
	}

	ids := make([]uuid.UUID, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.QuestionID)
	}
	progresses, err := s.progRepo.FindByQuestionIDs(ctx, s.db, userID, ids)
	if err != nil {
		logger.Error("Failed to find progress for topic questions", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
	}
	byQuestion := make(map[uuid.UUID]*model.Progress, len(progresses))
	for _, p := range progresses {
		byQuestion[p.QuestionID] = p
	}

	solved := 0
	revisit := 0
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
		if item.IsSolved {
			solved++
		}
		if item.IsRevisit {
			revisit++
		}
		merged = append(merged, item)
	}

	return &model.TopicQuestionsResponse{
		Topic: &model.TopicSummary{
			TopicID:  topic.TopicID,
			Name:     topic.Name,
			Slug:     topic.Slug,
			Category: topic.Category,
			Total:    len(merged),
			Solved:   solved,
			Revisit:  revisit,
		},
		Questions: merged,
	}, nil
}
