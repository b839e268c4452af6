//go:generate mockery --name QuestionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"algobloom/internal/middleware"
	"algobloom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionRepository は問題カタログへの読み取り専用アクセスです。
// カタログはシード処理が書き込み、本コアは集計のジョイン先としてのみ使います。
type QuestionRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.Question, error)
	FindByIDs(ctx context.Context, db *gorm.DB, questionIDs []uuid.UUID) ([]*model.Question, error)
	FindByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) ([]*model.Question, error)
	FindBySlugs(ctx context.Context, db *gorm.DB, slugs []string) ([]*model.Question, error)
	Search(ctx context.Context, db *gorm.DB, query string, limit int) ([]*model.Question, error)
	CountAll(ctx context.Context, db *gorm.DB) (int64, error)
	CountByDifficulty(ctx context.Context, db *gorm.DB) ([]model.DifficultyCountRow, error)
	CountByDifficultyForIDs(ctx context.Context, db *gorm.DB, questionIDs []uuid.UUID) ([]model.DifficultyCountRow, error)
	CountByTopicForIDs(ctx context.Context, db *gorm.DB, questionIDs []uuid.UUID, limit int) ([]*model.TopicCount, error)
}

type gormQuestionRepository struct{}

func NewGormQuestionRepository() QuestionRepository {
	return &gormQuestionRepository{}
}

func (r *gormQuestionRepository) FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var question model.Question

	result := db.WithContext(ctx).Where("question_id = ?", questionID).First(&question)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding question by ID in DB", "error", result.Error, "question_id", questionID.String())
		return nil, fmt.Errorf("gormQuestionRepository.FindByID: %w", result.Error)
	}
	return &question, nil
}

func (r *gormQuestionRepository) FindByIDs(ctx context.Context, db *gorm.DB, questionIDs []uuid.UUID) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	if len(questionIDs) == 0 {
		return []*model.Question{}, nil
	}

	var questions []*model.Question
	result := db.WithContext(ctx).Where("question_id IN ?", questionIDs).Find(&questions)
	if result.Error != nil {
		logger.Error("Error finding questions by IDs in DB", "error", result.Error)
		return nil, fmt.Errorf("gormQuestionRepository.FindByIDs: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) FindByTopic(ctx context.Context, db *gorm.DB, topicID uuid.UUID) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	var questions []*model.Question
	result := db.WithContext(ctx).
		Joins("JOIN question_topics ON question_topics.question_id = questions.question_id").
		Where("question_topics.topic_id = ?", topicID).
		Order("questions.difficulty ASC, questions.title ASC").
		Find(&questions)
	if result.Error != nil {
		logger.Error("Error finding questions by topic in DB", "error", result.Error, "topic_id", topicID.String())
		return nil, fmt.Errorf("gormQuestionRepository.FindByTopic: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) FindBySlugs(ctx context.Context, db *gorm.DB, slugs []string) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	if len(slugs) == 0 {
		return []*model.Question{}, nil
	}

	var questions []*model.Question
	result := db.WithContext(ctx).Where("leetcode_slug IN ?", slugs).Find(&questions)
	if result.Error != nil {
		logger.Error("Error finding questions by slugs in DB", "error", result.Error)
		return nil, fmt.Errorf("gormQuestionRepository.FindBySlugs: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) Search(ctx context.Context, db *gorm.DB, query string, limit int) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	pattern := "%" + strings.ToLower(query) + "%"
	var questions []*model.Question
	result := db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(tags) LIKE ?", pattern, pattern).
		Order("title ASC").
		Limit(limit).
		Find(&questions)
	if result.Error != nil {
		logger.Error("Error searching questions in DB", "error", result.Error)
		return nil, fmt.Errorf("gormQuestionRepository.Search: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) CountAll(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)

	var count int64
	result := db.WithContext(ctx).Model(&model.Question{}).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting questions in DB", "error", result.Error)
		return 0, fmt.Errorf("gormQuestionRepository.CountAll: %w", result.Error)
	}
	return count, nil
}

func (r *gormQuestionRepository) CountByDifficulty(ctx context.Context, db *gorm.DB) ([]model.DifficultyCountRow, error) {
	logger := middleware.GetLogger(ctx)

	var rows []model.DifficultyCountRow
	result := db.WithContext(ctx).Model(&model.Question{}).
		Select("difficulty, COUNT(*) AS count").
		Group("difficulty").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error counting questions by difficulty in DB", "error", result.Error)
		return nil, fmt.Errorf("gormQuestionRepository.CountByDifficulty: %w", result.Error)
	}
	return rows, nil
}

func (r *gormQuestionRepository) CountByDifficultyForIDs(ctx context.Context, db *gorm.DB, questionIDs []uuid.UUID) ([]model.DifficultyCountRow, error) {
	logger := middleware.GetLogger(ctx)

	if len(questionIDs) == 0 {
		return []model.DifficultyCountRow{}, nil
	}

	var rows []model.DifficultyCountRow
	result := db.WithContext(ctx).Model(&model.Question{}).
		Select("difficulty, COUNT(*) AS count").
		Where("question_id IN ?", questionIDs).
		Group("difficulty").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error counting questions by difficulty for IDs in DB", "error", result.Error)
		return nil, fmt.Errorf("gormQuestionRepository.CountByDifficultyForIDs: %w", result.Error)
	}
	return rows, nil
}

// CountByTopicForIDs は指定問題集合のトピック内訳を件数降順で返します (リストサマリ用)
func (r *gormQuestionRepository) CountByTopicForIDs(ctx context.Context, db *gorm.DB, questionIDs []uuid.UUID, limit int) ([]*model.TopicCount, error) {
	logger := middleware.GetLogger(ctx)

	if len(questionIDs) == 0 {
		return []*model.TopicCount{}, nil
	}

	var rows []*model.TopicCount
	result := db.WithContext(ctx).Model(&model.Question{}).
		Select("topics.name AS name, COUNT(*) AS count").
		Joins("JOIN question_topics ON question_topics.question_id = questions.question_id").
		Joins("JOIN topics ON topics.topic_id = question_topics.topic_id").
		Where("questions.question_id IN ?", questionIDs).
		Group("topics.name").
		Order("count DESC, name ASC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error counting questions by topic in DB", "error", result.Error)
		return nil, fmt.Errorf("gormQuestionRepository.CountByTopicForIDs: %w", result.Error)
	}
	return rows, nil
}
