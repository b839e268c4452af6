// internal/model/question.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Difficulty は問題の難易度を表す閉じた列挙型です
type Difficulty string

const (
	DifficultyEasy    Difficulty = "Easy"
	DifficultyMedium  Difficulty = "Medium"
	DifficultyHard    Difficulty = "Hard"
	DifficultyUnknown Difficulty = "Unknown"
)

// Difficulties は集計で常に出力する難易度の固定順序
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyUnknown}

// ParseDifficulty は自由入力の難易度文字列を列挙値に正規化します。
// 不明な値は Unknown にフォールバックし、エラーにはしません。
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyUnknown
	}
}

// DifficultyRank は難易度ソート用のランクを返します (Easy < Medium < Hard < Unknown)
func DifficultyRank(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 9
	}
}

// Question はスプレッドシート由来の問題カタログの1件です。
// 本コアからは読み取り専用で、集計のジョイン先としてのみ使います。
type Question struct {
	QuestionID   uuid.UUID  `gorm:"type:uuid;primaryKey" json:"question_id"`
	Title        string     `gorm:"not null" json:"title"`
	Link         string     `gorm:"unique;not null" json:"link"`
	LeetCodeSlug string     `gorm:"index" json:"leetcode_slug"`
	Difficulty   Difficulty `gorm:"not null;default:'Unknown'" json:"difficulty"`
	Tags         string     `gorm:"default:''" json:"tags"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Topics []Topic `gorm:"many2many:question_topics;joinForeignKey:QuestionID;joinReferences:TopicID" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionWithProgress は問題とユーザー進捗をマージしたレスポンスDTO
type QuestionWithProgress struct {
	QuestionID uuid.UUID  `json:"question_id"`
	Title      string     `json:"title"`
	Link       string     `json:"link"`
	Difficulty Difficulty `json:"difficulty"`
	Tags       string     `json:"tags"`
	Position   int        `json:"position,omitempty"`
	IsSolved   bool       `json:"is_solved"`
	IsRevisit  bool       `json:"is_revisit"`
}

// ToggleResponse はsolved/revisitトグル後の状態レスポンス
type ToggleResponse struct {
	IsSolved  bool `json:"is_solved"`
	IsRevisit bool `json:"is_revisit"`
}

// SearchResponse はグローバル検索のレスポンス
type SearchResponse struct {
	Topics    []*TopicHit             `json:"topics"`
	Questions []*QuestionWithProgress `json:"questions"`
}

// TopicHit は検索ヒットしたトピックの要約
type TopicHit struct {
	TopicID  uuid.UUID `json:"topic_id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}
