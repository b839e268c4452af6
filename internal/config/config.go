// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type JWTConfig struct {
	SecretKey   string `mapstructure:"secret_key"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

type AppConfig struct {
	DefaultDailyGoal  int `mapstructure:"default_daily_goal"`
	LeetCodeSyncLimit int `mapstructure:"leetcode_sync_limit"`
	SearchLimit       int `mapstructure:"search_limit"`
}

type LeetCodeConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type MailerConfig struct {
	Driver string `mapstructure:"driver"` // "log" or "ses"
	From   string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "iam_role" or "static_credentials"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	App      AppConfig      `mapstructure:"app"`
	LeetCode LeetCodeConfig `mapstructure:"leetcode"`
	Mailer   MailerConfig   `mapstructure:"mailer"`
	SES      SESConfig      `mapstructure:"ses"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書き (例: APP_SERVER_PORT)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	// シークレット系は個別の環境変数名に紐付け
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET")
	viper.BindEnv("ses.access_key_id", "AWS_ACCESS_KEY_ID")
	viper.BindEnv("ses.secret_access_key", "AWS_SECRET_ACCESS_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.JWT.ExpiryHours <= 0 {
		Cfg.JWT.ExpiryHours = DefaultJWTExpiryHours
	}
	if Cfg.App.DefaultDailyGoal <= 0 {
		Cfg.App.DefaultDailyGoal = DefaultDailyGoal
	}
	if Cfg.App.LeetCodeSyncLimit <= 0 {
		Cfg.App.LeetCodeSyncLimit = DefaultLeetCodeSyncLimit
	}
	// 同期件数は10〜200件に収める
	if Cfg.App.LeetCodeSyncLimit < 10 {
		Cfg.App.LeetCodeSyncLimit = 10
	}
	if Cfg.App.LeetCodeSyncLimit > 200 {
		Cfg.App.LeetCodeSyncLimit = 200
	}
	if Cfg.App.SearchLimit <= 0 {
		Cfg.App.SearchLimit = DefaultSearchLimit
	}
	if Cfg.LeetCode.Endpoint == "" {
		Cfg.LeetCode.Endpoint = LeetCodeGraphQLEndpoint
	}
	if Cfg.LeetCode.TimeoutSeconds <= 0 {
		Cfg.LeetCode.TimeoutSeconds = DefaultLeetCodeTimeoutSeconds
	}
	if Cfg.Mailer.Driver == "" {
		Cfg.Mailer.Driver = "log"
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("LeetCode Sync Limit: %d", Cfg.App.LeetCodeSyncLimit)

	return nil
}
