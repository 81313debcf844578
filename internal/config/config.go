package config

import (
	"fmt"
	"os"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // 指定があれば最優先
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     string // DBポート（5432）
	PostgresSSLMode  string

	JWTSecret    string        // JWT署名シークレット
	JWTExpiresIn time.Duration // アクセストークンの有効期限

	S3Bucket string // 商品画像のアップロード先（空なら画像アップロード無効）
}

// Loadは環境変数から設定を読み込む
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "app"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		S3Bucket: os.Getenv("S3_BUCKET"),
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	//トークン有効期限（未指定は24h）
	expires := getenv("JWT_EXPIRES_IN", "24h")
	d, err := time.ParseDuration(expires)
	if err != nil {
		return Config{}, fmt.Errorf("JWT_EXPIRES_IN must be a duration: %w", err)
	}
	cfg.JWTExpiresIn = d

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
