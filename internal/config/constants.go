// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "algobloom"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort             = ":8080"
	DefaultLogLevel               = "info"
	DefaultJWTExpiryHours         = 24 * 7 // 7日
	DefaultDailyGoal              = 3
	DefaultLeetCodeSyncLimit      = 50
	DefaultSearchLimit            = 80
	DefaultLeetCodeTimeoutSeconds = 15
)

// 外部サービスのエンドポイント
const LeetCodeGraphQLEndpoint = "https://leetcode.com/graphql"
