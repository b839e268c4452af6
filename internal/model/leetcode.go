// internal/model/leetcode.go
package model

// LeetCodeProfileResponse はLeetCodeプロフィール取得のレスポンスDTO。
// フロントエンドが期待するキー名に合わせています。
type LeetCodeProfileResponse struct {
	Username     string `json:"username"`
	Avatar       string `json:"avatar"`
	Ranking      int    `json:"ranking"`
	Reputation   int    `json:"reputation"`
	EasySolved   int    `json:"easySolved"`
	MediumSolved int    `json:"mediumSolved"`
	HardSolved   int    `json:"hardSolved"`
	TotalSolved  int    `json:"totalSolved"`
}

// LeetCodeSyncResponse は直近AC同期のレスポンスDTO。
// MarkedSolved は自動solved反映が無効化されているため常に0です。
type LeetCodeSyncResponse struct {
	Matched      int `json:"matched"`
	MarkedSolved int `json:"marked_solved"`
}
