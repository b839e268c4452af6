// internal/model/list.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// List はシート1枚ぶんの問題リストです (シート由来、読み取り専用)
type List struct {
	ListID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"list_id"`
	Name          string    `gorm:"not null" json:"name"`
	Slug          string    `gorm:"unique;not null" json:"slug"`
	Group         string    `gorm:"not null;default:'Other';index" json:"group"` // Curated | Difficulty | Topic | Other
	UIOrder       int       `gorm:"not null;default:0" json:"ui_order"`
	QuestionCount int       `gorm:"not null;default:0" json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Items []ListItem `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"-"`
}

func (List) TableName() string {
	return "lists"
}

// ListItem はリスト内の問題とシート上の並び順です
type ListItem struct {
	ListID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"list_id"`
	QuestionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"question_id"`
	Position   int       `gorm:"not null;default:0" json:"position"`

	Question *Question `gorm:"foreignKey:QuestionID;references:QuestionID" json:"-"`
}

func (ListItem) TableName() string {
	return "list_items"
}

// ListSummary はリスト一覧用の進捗付きサマリ
type ListSummary struct {
	ListID  uuid.UUID `json:"list_id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	Group   string    `json:"group"`
	Total   int       `json:"total"`
	Solved  int       `json:"solved"`
	Revisit int       `json:"revisit"`
}

// ListProgressRow はリスト別進捗集計クエリの1行
type ListProgressRow struct {
	ListID  uuid.UUID `json:"list_id"`
	Solved  int       `json:"solved"`
	Revisit int       `json:"revisit"`
}

// ListsResponse はリスト一覧レスポンス。Empty は未シード状態の判定用。
type ListsResponse struct {
	Lists []*ListSummary `json:"lists"`
	Empty bool           `json:"empty"`
}

// ListQuestionsResponse はリスト配下の問題一覧レスポンス
type ListQuestionsResponse struct {
	List      *ListSummary            `json:"list"`
	Questions []*QuestionWithProgress `json:"questions"`
}

// ListSummaryResponse はリストの難易度/トピック内訳レスポンス
type ListSummaryResponse struct {
	List         *ListSummary       `json:"list"`
	ByDifficulty map[Difficulty]int `json:"by_difficulty"`
	ByTopic      []*TopicCount      `json:"by_topic"`
}

// TopicCount はトピック名ごとの問題数
type TopicCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatusFilter は問題一覧の状態フィルタの閉じた列挙型です。
// 未知の値はエラーにせずデフォルト (all) に倒します。
type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusSolved   StatusFilter = "solved"
	StatusUnsolved StatusFilter = "unsolved"
	StatusRevisit  StatusFilter = "revisit"
)

func ParseStatusFilter(s string) StatusFilter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solved":
		return StatusSolved
	case "unsolved":
		return StatusUnsolved
	case "revisit":
		return StatusRevisit
	default:
		return StatusAll
	}
}

// SortOrder は問題一覧のソート順の閉じた列挙型です。
// 未知の値はデフォルト (order = シート順) に倒します。
type SortOrder string

const (
	SortByPosition   SortOrder = "order"
	SortByDifficulty SortOrder = "difficulty"
	SortByTitle      SortOrder = "title"
)

func ParseSortOrder(s string) SortOrder {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "difficulty":
		return SortByDifficulty
	case "title":
		return SortByTitle
	default:
		return SortByPosition
	}
}

// ListQuestionsQuery はリスト問題一覧のクエリパラメータを正規化したものです
type ListQuestionsQuery struct {
	Search     string
	Difficulty Difficulty // 空文字列なら絞り込みなし
	HasDiff    bool
	Status     StatusFilter
	Sort       SortOrder
}
