package cfg

import (
	"os"
	"strings"
	"time"

	"github.com/DRSN-tech/cosmetic-product/pkg/e"
	"github.com/DRSN-tech/cosmetic-product/pkg/logger"
	"github.com/jimlawless/whereami"
)

// DateLayout — формат дат товара и CURRENT_DATE
const DateLayout = "2006-01-02"

type Config struct {
	App *AppCfg
	Log *LogCfg
}

type AppCfg struct {
	CurrentDate string // Дата, относительно которой проверяется срок годности (YYYY-MM-DD)
}

type LogCfg struct {
	Level  string // debug, info, warn, error
	Format string // text или json
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	app, err := loadAppCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	logCfg, err := loadLogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		App: app,
		Log: logCfg,
	}, nil
}

func loadAppCfg(log logger.Logger) (*AppCfg, error) {
	const (
		defaultCurrentDate = "2025-04-06"
	)

	currentDate := getEnvOrDefault("CURRENT_DATE", defaultCurrentDate)
	if _, err := time.Parse(DateLayout, currentDate); err != nil {
		log.Errorf(err, "invalid CURRENT_DATE")
		return nil, e.Wrap("CURRENT_DATE", e.ErrInvalidDate)
	}

	return &AppCfg{
		CurrentDate: currentDate,
	}, nil
}

func loadLogCfg(log logger.Logger) (*LogCfg, error) {
	const (
		defaultLevel  = "info"
		defaultFormat = "text"
	)

	level := strings.ToLower(getEnvOrDefault("LOG_LEVEL", defaultLevel))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		log.Warnf("invalid LOG_LEVEL: %s", level)
		return nil, e.Wrap("LOG_LEVEL", e.ErrIncorrectEnvVariable)
	}

	format := strings.ToLower(getEnvOrDefault("LOG_FORMAT", defaultFormat))
	if format != "text" && format != "json" {
		log.Warnf("invalid LOG_FORMAT: %s", format)
		return nil, e.Wrap("LOG_FORMAT", e.ErrIncorrectEnvVariable)
	}

	return &LogCfg{
		Level:  level,
		Format: format,
	}, nil
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
