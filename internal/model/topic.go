// internal/model/topic.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Topic は問題の分類カテゴリです (シート由来、読み取り専用)
type Topic struct {
	TopicID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"topic_id"`
	Name          string    `gorm:"not null" json:"name"`
	Slug          string    `gorm:"unique;not null" json:"slug"`
	Category      string    `gorm:"not null;default:'Topic'" json:"category"` // "Curated" or "Topic"
	QuestionCount int       `gorm:"not null;default:0" json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Questions []Question `gorm:"many2many:question_topics;joinForeignKey:TopicID;joinReferences:QuestionID" json:"-"`
}

func (Topic) TableName() string {
	return "topics"
}

// TopicSummary はトピック一覧用の進捗付きサマリ
type TopicSummary struct {
	TopicID  uuid.UUID `json:"topic_id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Category string    `json:"category"`
	Total    int       `json:"total"`
	Solved   int       `json:"solved"`
	Revisit  int       `json:"revisit"`
}

// TopicProgressRow はトピック別進捗集計クエリの1行
type TopicProgressRow struct {
	TopicID uuid.UUID `json:"topic_id"`
	Count   int       `json:"count"`
}

// TopicQuestionsResponse はトピック配下の問題一覧レスポンス
type TopicQuestionsResponse struct {
	Topic     *TopicSummary           `json:"topic"`
	Questions []*QuestionWithProgress `json:"questions"`
}
