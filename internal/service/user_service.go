// internal/service/user_service.go
package service

import (
	"context"
	"errors"
	"time"

	"algobloom/internal/middleware"
	"algobloom/internal/model"
	"algobloom/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.UserResponse, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, req *model.UpdatePreferencesRequest) (*model.UserResponse, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID, req *model.DeleteAccountRequest) error
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	progRepo repository.ProgressRepository
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository, progRepo repository.ProgressRepository) UserService {
	return &userService{
		db:       db,
		userRepo: userRepo,
		progRepo: progRepo,
	}
}

func (s *userService) GetMe(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return model.NewUserResponse(user), nil
}

// UpdateProfile はプロフィール項目を更新します。
// LeetCodeユーザー名の変更時は同期時刻をリセットします。
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.UserResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.LeetCodeUsername != nil && *req.LeetCodeUsername != user.LeetCodeUsername {
		user.LeetCodeUsername = *req.LeetCodeUsername
		user.LeetCodeLastSyncAt = nil
	}

	if err := s.userRepo.Update(ctx, s.db, user); err != nil {
		logger.Error("Failed to update user profile", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プロフィールの更新に失敗しました。", "", err)
	}
	logger.Info("User profile updated")
	return model.NewUserResponse(user), nil
}

// UpdatePreferences は設定を部分更新します (未指定フィールドは変更しない)。
// タイムゾーンは実在するIANA名のみ受け付けます。
func (s *userService) UpdatePreferences(ctx context.Context, userID uuid.UUID, req *model.UpdatePreferencesRequest) (*model.UserResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DailyGoal != nil {
		user.DailyGoal = *req.DailyGoal
	}
	if req.AutoSyncLeetCode != nil {
		user.AutoSyncLeetCode = *req.AutoSyncLeetCode
	}
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			logger.Warn("Invalid timezone in preferences update", "timezone", *req.Timezone)
			return nil, model.NewAppError("VALIDATION_ERROR", "タイムゾーンが不正です。", "timezone", model.ErrInvalidInput)
		}
		user.Timezone = *req.Timezone
	}

	if err := s.userRepo.Update(ctx, s.db, user); err != nil {
		logger.Error("Failed to update user preferences", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "設定の更新に失敗しました。", "", err)
	}
	logger.Info("User preferences updated")
	return model.NewUserResponse(user), nil
}

// DeleteAccount はパスワード確認のうえ、進捗ごとユーザーを削除します
func (s *userService) DeleteAccount(ctx context.Context, userID uuid.UUID, req *model.DeleteAccountRequest) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Account deletion rejected: password mismatch")
		return model.NewAppError("AUTHENTICATION_FAILED", "パスワードが正しくありません。", "password", model.ErrForbidden)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.progRepo.DeleteByUser(ctx, tx, userID); err != nil {
			return err
		}
		return s.userRepo.Delete(ctx, tx, userID)
	})
	if err != nil {
		logger.Error("Failed to delete account", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "アカウントの削除に失敗しました。", "", err)
	}

	logger.Info("Account deleted")
	return nil
}

func (s *userService) findUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found")
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrUserNotFound)
		}
		logger.Error("Error finding user by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	return user, nil
}
