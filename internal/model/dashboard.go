// internal/model/dashboard.go
package model

// DayCount は日別の解答数 (リポジトリの集計結果の1行)。
// Day はユーザーのタイムゾーンに変換済みの "YYYY-MM-DD" 文字列。
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// DailySolved は直近30日チャート用の1エントリ
type DailySolved struct {
	Day    string `json:"day"`
	Solved int    `json:"solved"`
}

// DifficultyStat は難易度ごとの (ユーザーの解答数, カタログ総数)
type DifficultyStat struct {
	Solved int `json:"solved"`
	Total  int `json:"total"`
}

// DifficultyCountRow は難易度別集計クエリの1行
type DifficultyCountRow struct {
	Difficulty Difficulty `json:"difficulty"`
	Count      int        `json:"count"`
}

// DashboardResponse はダッシュボードの集約ペイロードです。
// 部分的な結果は返さず、いずれかの集計が失敗したらリクエスト全体を失敗させます。
type DashboardResponse struct {
	Timezone       string                        `json:"timezone"`
	TotalQuestions int                           `json:"total_questions"`
	SolvedCount    int                           `json:"solved_count"`
	RemainingCount int                           `json:"remaining_count"`
	RevisitCount   int                           `json:"revisit_count"`
	SolvedToday    int                           `json:"solved_today"`
	DailyGoal      int                           `json:"daily_goal"`
	GoalRemaining  int                           `json:"goal_remaining"`
	StreakCurrent  int                           `json:"streak_current"`
	StreakBest     int                           `json:"streak_best"`
	ByDifficulty   map[Difficulty]DifficultyStat `json:"by_difficulty"`
	Last30Days     []DailySolved                 `json:"last_30_days"`
	Heatmap90Days  []DayCount                    `json:"heatmap_90_days"`
	AllTimeDaily   map[string]int                `json:"all_time_daily"`
}
