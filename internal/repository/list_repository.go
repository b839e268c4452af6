//go:generate mockery --name ListRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"algobloom/internal/middleware"
	"algobloom/internal/model"

	"gorm.io/gorm"
)

type ListRepository interface {
	FindAll(ctx context.Context, db *gorm.DB, group string) ([]*model.List, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.List, error)
}

type gormListRepository struct{}

func NewGormListRepository() ListRepository {
	return &gormListRepository{}
}

// FindAll は group が空でなければ絞り込み、UI表示順で返します
func (r *gormListRepository) FindAll(ctx context.Context, db *gorm.DB, group string) ([]*model.List, error) {
	logger := middleware.GetLogger(ctx)

	query := db.WithContext(ctx)
	if group != "" {
		query = query.Where("\"group\" = ?", group)
	}

	var lists []*model.List
	result := query.Order("\"group\" ASC, ui_order ASC, name ASC").Find(&lists)
	if result.Error != nil {
		logger.Error("Error finding lists in DB", "error", result.Error, "group", group)
		return nil, fmt.Errorf("gormListRepository.FindAll: %w", result.Error)
	}
	return lists, nil
}

// FindBySlug はリストとその項目 (シート順) を取得します
func (r *gormListRepository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.List, error) {
	logger := middleware.GetLogger(ctx)
	var list model.List

	result := db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("list_items.position ASC")
		}).
		Preload("Items.Question").
		Where("slug = ?", slug).
		First(&list)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding list by slug in DB", "error", result.Error, "slug", slug)
		return nil, fmt.Errorf("gormListRepository.FindBySlug: %w", result.Error)
	}
	return &list, nil
}
