package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ユーザーの基本情報と設定（タイムゾーン・デイリーゴール）
type User struct {
	UserID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Username           string     `gorm:"not null" json:"username"`
	Email              string     `gorm:"unique;not null" json:"email"`
	PasswordHash       string     `gorm:"not null" json:"-"`
	LeetCodeUsername   string     `gorm:"default:''" json:"leetcode_username"`
	LeetCodeLastSyncAt *time.Time `json:"leetcode_last_sync_at"`
	AutoSyncLeetCode   bool       `gorm:"default:true" json:"auto_sync_leetcode"`
	DailyGoal          int        `gorm:"not null;default:3" json:"daily_goal"`
	Timezone           string     `gorm:"not null;default:'UTC'" json:"timezone"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// GORM用のリレーション (JSONには含めない)
	Progress []Progress `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// RegisterRequest は新規登録APIのリクエストボディ (DTO)
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// JWTCustomClaims はJWTに含めるカスタムクレーム
type JWTCustomClaims struct {
	jwt.RegisteredClaims // 標準クレーム (iss, sub, exp など)
}

// UserResponse はクライアントに返すユーザー情報
type UserResponse struct {
	UserID             uuid.UUID  `json:"user_id"`
	Username           string     `json:"username"`
	Email              string     `json:"email"`
	LeetCodeUsername   string     `json:"leetcode_username"`
	LeetCodeLastSyncAt *time.Time `json:"leetcode_last_sync_at"`
	AutoSyncLeetCode   bool       `json:"auto_sync_leetcode"`
	DailyGoal          int        `json:"daily_goal"`
	Timezone           string     `json:"timezone"`
	CreatedAt          time.Time  `json:"created_at"`
}

func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		UserID:             u.UserID,
		Username:           u.Username,
		Email:              u.Email,
		LeetCodeUsername:   u.LeetCodeUsername,
		LeetCodeLastSyncAt: u.LeetCodeLastSyncAt,
		AutoSyncLeetCode:   u.AutoSyncLeetCode,
		DailyGoal:          u.DailyGoal,
		Timezone:           u.Timezone,
		CreatedAt:          u.CreatedAt,
	}
}

// UpdateProfileRequest はプロフィール更新リクエストDTO
type UpdateProfileRequest struct {
	LeetCodeUsername *string `json:"leetcode_username,omitempty" validate:"omitempty,max=64"`
}

// UpdatePreferencesRequest は設定更新リクエストDTO。
// 未指定フィールドは変更しない (PATCHセマンティクス)。
type UpdatePreferencesRequest struct {
	DailyGoal        *int    `json:"daily_goal,omitempty" validate:"omitempty,min=1,max=50"`
	AutoSyncLeetCode *bool   `json:"auto_sync_leetcode,omitempty"`
	Timezone         *string `json:"timezone,omitempty" validate:"omitempty,max=64"`
}

// DeleteAccountRequest は退会リクエストDTO (パスワード確認必須)
type DeleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}
