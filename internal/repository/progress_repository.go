//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"algobloom/internal/middleware"
	"algobloom/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ProgressRepository は (ユーザー, 問題) ごとの進捗の永続化と、
// ダッシュボード用の集計クエリを提供します。
// 集計はすべて読み取り専用で、書き込みはトグル時の遅延作成/更新のみです。
type ProgressRepository interface {
	Find(ctx context.Context, db *gorm.DB, userID, questionID uuid.UUID) (*model.Progress, error)
	Create(ctx context.Context, tx *gorm.DB, progress *model.Progress) error
	Update(ctx context.Context, tx *gorm.DB, progress *model.Progress) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error

	FindByQuestionIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, questionIDs []uuid.UUID) ([]*model.Progress, error)
	FindRevisit(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Progress, error)

	CountSolved(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	CountRevisit(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	CountSolvedByDay(ctx context.Context, db *gorm.DB, userID uuid.UUID, timezone string) ([]model.DayCount, error)
	CountSolvedByDifficulty(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.DifficultyCountRow, error)
	CountSolvedByTopic(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.TopicProgressRow, error)
	CountRevisitByTopic(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.TopicProgressRow, error)
	CountByList(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.ListProgressRow, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Find(ctx context.Context, db *gorm.DB, userID, questionID uuid.UUID) (*model.Progress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.Progress

	result := db.WithContext(ctx).Where("user_id = ? AND question_id = ?", userID, questionID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding progress in DB", "error", result.Error,
			"user_id", userID.String(), "question_id", questionID.String())
		return nil, fmt.Errorf("gormProgressRepository.Find: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.Progress) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		// 複合ユニーク制約 idx_user_question 違反。
		// 同一ペアへの同時トグルはここで検知し、呼び出し側が既存行を読み直して収束させる。
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating progress in DB", "error", result.Error,
			"user_id", progress.UserID.String(), "question_id", progress.QuestionID.String())
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.Progress) error {
	logger := middleware.GetLogger(ctx)

	// SolvedAt / RevisitAt は nil に戻すことがあるため、Save で全カラムを書き戻す
	result := tx.WithContext(ctx).Save(progress)
	if result.Error != nil {
		logger.Error("Error updating progress in DB", "error", result.Error,
			"progress_id", progress.ProgressID.String())
		return fmt.Errorf("gormProgressRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Progress{})
	if result.Error != nil {
		logger.Error("Error deleting progress by user in DB", "error", result.Error, "user_id", userID.String())
		return fmt.Errorf("gormProgressRepository.DeleteByUser: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) FindByQuestionIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, questionIDs []uuid.UUID) ([]*model.Progress, error) {
	logger := middleware.GetLogger(ctx)

	if len(questionIDs) == 0 {
		return []*model.Progress{}, nil
	}

	var progresses []*model.Progress
	result := db.WithContext(ctx).
		Where("user_id = ? AND question_id IN ?", userID, questionIDs).
		Find(&progresses)
	if result.Error != nil {
		logger.Error("Error finding progress by question IDs in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormProgressRepository.FindByQuestionIDs: %w", result.Error)
	}
	return progresses, nil
}

func (r *gormProgressRepository) FindRevisit(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Progress, error) {
	logger := middleware.GetLogger(ctx)

	var progresses []*model.Progress
	result := db.WithContext(ctx).
		Preload("Question").
		Where("user_id = ? AND is_revisit = ?", userID, true).
		Find(&progresses)
	if result.Error != nil {
		logger.Error("Error finding revisit progress in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormProgressRepository.FindRevisit: %w", result.Error)
	}
	return progresses, nil
}

func (r *gormProgressRepository) CountSolved(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	return r.countFlag(ctx, db, userID, "is_solved")
}

func (r *gormProgressRepository) CountRevisit(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	return r.countFlag(ctx, db, userID, "is_revisit")
}

// countFlag の column は定数 ("is_solved" / "is_revisit") のみ。ユーザー入力を渡さないこと。
func (r *gormProgressRepository) countFlag(ctx context.Context, db *gorm.DB, userID uuid.UUID, column string) (int64, error) {
	logger := middleware.GetLogger(ctx)

	var count int64
	result := db.WithContext(ctx).Model(&model.Progress{}).
		Where("user_id = ? AND "+column+" = ?", userID, true).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting progress in DB", "error", result.Error,
			"user_id", userID.String(), "column", column)
		return 0, fmt.Errorf("gormProgressRepository.countFlag(%s): %w", column, result.Error)
	}
	return count, nil
}

// CountSolvedByDay は solved_at をユーザーのタイムゾーンの暦日に変換して日別集計します。
// タイムゾーンの妥当性はサービス層で検証済み (不正値はUTCに縮退済み) の前提です。
func (r *gormProgressRepository) CountSolvedByDay(ctx context.Context, db *gorm.DB, userID uuid.UUID, timezone string) ([]model.DayCount, error) {
	logger := middleware.GetLogger(ctx)

	var rows []model.DayCount
	result := db.WithContext(ctx).Model(&model.Progress{}).
		Select("to_char(solved_at AT TIME ZONE ?, 'YYYY-MM-DD') AS day, COUNT(*) AS count", timezone).
		Where("user_id = ? AND is_solved = ? AND solved_at IS NOT NULL", userID, true).
		Group("day").
		Order("day ASC").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error counting solved by day in DB", "error", result.Error,
			"user_id", userID.String(), "timezone", timezone)
		return nil, fmt.Errorf("gormProgressRepository.CountSolvedByDay: %w", result.Error)
	}
	return rows, nil
}

func (r *gormProgressRepository) CountSolvedByDifficulty(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.DifficultyCountRow, error) {
	logger := middleware.GetLogger(ctx)

	var rows []model.DifficultyCountRow
	result := db.WithContext(ctx).Model(&model.Progress{}).
		Select("questions.difficulty AS difficulty, COUNT(*) AS count").
		Joins("JOIN questions ON questions.question_id = progress.question_id").
		Where("progress.user_id = ? AND progress.is_solved = ?", userID, true).
		Group("questions.difficulty").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error counting solved by difficulty in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormProgressRepository.CountSolvedByDifficulty: %w", result.Error)
	}
	return rows, nil
}

func (r *gormProgressRepository) CountSolvedByTopic(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.TopicProgressRow, error) {
	return r.countByTopic(ctx, db, userID, "is_solved")
}

func (r *gormProgressRepository) CountRevisitByTopic(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.TopicProgressRow, error) {
	return r.countByTopic(ctx, db, userID, "is_revisit")
}

// countByTopic の column は定数 ("is_solved" / "is_revisit") のみ。
func (r *gormProgressRepository) countByTopic(ctx context.Context, db *gorm.DB, userID uuid.UUID, column string) ([]model.TopicProgressRow, error) {
	logger := middleware.GetLogger(ctx)

	var rows []model.TopicProgressRow
	result := db.WithContext(ctx).Model(&model.Progress{}).
		Select("question_topics.topic_id AS topic_id, COUNT(*) AS count").
		Joins("JOIN question_topics ON question_topics.question_id = progress.question_id").
		Where("progress.user_id = ? AND progress."+column+" = ?", userID, true).
		Group("question_topics.topic_id").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error counting progress by topic in DB", "error", result.Error,
			"user_id", userID.String(), "column", column)
		return nil, fmt.Errorf("gormProgressRepository.countByTopic(%s): %w", column, result.Error)
	}
	return rows, nil
}

// CountByList はリストごとの solved / revisit 件数を1クエリで集計します。
// 進捗行のないリストは結果に現れないため、サービス層で0埋めしてマージします。
func (r *gormProgressRepository) CountByList(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.ListProgressRow, error) {
	logger := middleware.GetLogger(ctx)

	var rows []model.ListProgressRow
	result := db.WithContext(ctx).Model(&model.ListItem{}).
		Select("list_items.list_id AS list_id, " +
			"SUM(CASE WHEN progress.is_solved THEN 1 ELSE 0 END) AS solved, " +
			"SUM(CASE WHEN progress.is_revisit THEN 1 ELSE 0 END) AS revisit").
		Joins("JOIN progress ON progress.question_id = list_items.question_id AND progress.user_id = ?", userID).
		Group("list_items.list_id").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error counting progress by list in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormProgressRepository.CountByList: %w", result.Error)
	}
	return rows, nil
}
