package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the application configuration, loaded from the environment
// with an optional .env file on top.
type Config struct {
	HTTPAddr       string
	DatabaseURL    string
	UploadDir      string
	AllowedOrigins []string

	// Telegram order notifications. Empty token disables them.
	TelegramToken string
	AdminChatID   int64
	AdminThreadID int
}

// parseChatTarget reads "-1001234567890" or "-1001234567890/4" where
// the part after the slash is a forum topic thread.
func parseChatTarget(raw string) (int64, int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, 0, nil
	}
	if idx := strings.Index(raw, "#"); idx >= 0 {
		raw = strings.TrimSpace(raw[:idx])
	}
	parts := strings.Split(raw, "/")
	if len(parts) > 2 {
		return 0, 0, fmt.Errorf("bad format, expected -1001234567890 or -1001234567890/2")
	}

	chatID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	if chatID > 0 {
		// Supergroup chat IDs are negative; fix up bare positives.
		chatID = -chatID
	}

	threadID := 0
	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		tid, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, fmt.Errorf("bad topic ID: %v", err)
		}
		if tid < 0 {
			tid = -tid
		}
		threadID = tid
	}

	return chatID, threadID, nil
}

// Load reads the configuration.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if raw := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				config.AllowedOrigins = append(config.AllowedOrigins, origin)
			}
		}
	}

	if rawGroupID := os.Getenv("ADMIN_GROUP_CHAT_ID"); rawGroupID != "" {
		chatID, threadID, err := parseChatTarget(rawGroupID)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_GROUP_CHAT_ID is malformed: %v", err)
		}
		config.AdminChatID = chatID
		config.AdminThreadID = threadID
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
