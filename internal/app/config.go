package app

import (
	"time"

	"github.com/yungbote/gigpay-backend/internal/logger"
	"github.com/yungbote/gigpay-backend/internal/utils"
)

type Config struct {
	Port           string
	RedisAddr      string
	ReportCacheTTL time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:           utils.GetEnv("PORT", "8080", log),
		RedisAddr:      utils.GetEnv("REDIS_ADDR", "", log),
		ReportCacheTTL: utils.GetEnvAsSeconds("REPORT_CACHE_TTL_SECONDS", 30, log),
	}
}
