package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	JWTSecret  string

	// EncryptionKeys is a comma separated keyring of "version:base64key"
	// entries. EncryptionActiveKey names the version used for new writes;
	// older versions stay in the ring so existing ciphertext remains
	// decryptable.
	EncryptionKeys      string
	EncryptionActiveKey string

	PhotoStorageURL string
	PhotoStorageKey string
	SuggestionURL   string
	SuggestionKey   string

	FrontendURL string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:          getEnv("SERVER_PORT", "3001"),
		MySQLDSN:            getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/mindflow?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		JWTSecret:           getEnv("JWT_SECRET", "change-me"),
		EncryptionKeys:      os.Getenv("ENCRYPTION_KEYS"),
		EncryptionActiveKey: getEnv("ENCRYPTION_ACTIVE_KEY", "v1"),
		PhotoStorageURL:     getEnv("PHOTO_STORAGE_URL", "https://api.cloudinary.com/v1_1/mindflow"),
		PhotoStorageKey:     os.Getenv("PHOTO_STORAGE_KEY"),
		SuggestionURL:       getEnv("SUGGESTION_URL", "http://localhost:8089"),
		SuggestionKey:       os.Getenv("SUGGESTION_KEY"),
		FrontendURL:         getEnv("FRONT_END_URL", "http://localhost:3000"),
		SwaggerHost:         os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
