//go:generate mockery --name TopicRepository --output ./mocks --outpkg mocks --case=underscore
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

type TopicRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Topic, error)
	FindByID(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.Topic, error)
	Search(ctx context.Context, db *gorm.DB, query string, limit int) ([]*model.Topic, error)
}

type gormTopicRepository struct{}

func NewGormTopicRepository() TopicRepository {
	return &gormTopicRepository{}
}

func (r *gormTopicRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Topic, error) {
	logger := middleware.GetLogger(ctx)

	var topics []*model.Topic
	result := db.WithContext(ctx).Order("category ASC, name ASC").Find(&topics)
	if result.Error != nil {
		logger.Error("Error finding all topics in DB", "error", result.Error)
		return nil, fmt.Errorf("gormTopicRepository.FindAll: %w", result.Error)
	}
	return topics, nil
}

func (r *gormTopicRepository) FindByID(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.Topic, error) {
	logger := middleware.GetLogger(ctx)
	var topic model.Topic

	result := db.WithContext(ctx).Where("topic_id = ?", topicID).First(&topic)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding topic by ID in DB", "error", result.Error, "topic_id", topicID.String())
		return nil, fmt.Errorf("gormTopicRepository.FindByID: %w", result.Error)
	}
	return &topic, nil
}

func (r *gormTopicRepository) Search(ctx context.Context, db *gorm.DB, query string, limit int) ([]*model.Topic, error) {
	logger := middleware.GetLogger(ctx)

	pattern := "%" + strings.ToLower(query) + "%"
	var topics []*model.Topic
	result := db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("name ASC").
		Limit(limit).
		Find(&topics)
	if result.Error != nil {
		logger.Error("Error searching topics in DB", "error", result.Error)
		return nil, fmt.Errorf("gormTopicRepository.Search: %w", result.Error)
	}
	return topics, nil
}
