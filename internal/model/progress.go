// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Progress は (ユーザー, 問題) ごとの進捗状態です。
// 複合ユニークインデックスで1ペア1行を保証し、最初のトグル時に遅延作成されます。
// SolvedAt / RevisitAt は対応するフラグが true になった瞬間にセットし、
// false に戻したらクリアします。
type Progress struct {
	ProgressID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"progress_id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_question,unique" json:"user_id"`
	QuestionID uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_question,unique" json:"question_id"`
	IsSolved   bool       `gorm:"not null;default:false;index" json:"is_solved"`
	SolvedAt   *time.Time `json:"solved_at"`
	IsRevisit  bool       `gorm:"not null;default:false;index" json:"is_revisit"`
	RevisitAt  *time.Time `json:"revisit_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// 関連 (Preload用)
	Question *Question `gorm:"foreignKey:QuestionID;references:QuestionID" json:"-"`
}

func (Progress) TableName() string {
	return "progress"
}
