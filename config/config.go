package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	AppPort int

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	GoogleMapsAPIKey  string
	RestaurantAddress string
	RestaurantTZ      string

	DeliveryRatePerMinute float64
	SweepInterval         time.Duration

	TelegramBotToken string
	AdminChatID      int64
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "foodexpress"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug"))
	cfg.AppPort = cast.ToInt(getOrReturnDefault("APP_PORT", 8080))

	cfg.PostgresHost = cast.ToString(getOrReturnDefault("POSTGRES_HOST", "localhost"))
	cfg.PostgresPort = cast.ToString(getOrReturnDefault("POSTGRES_PORT", "5432"))
	cfg.PostgresUser = cast.ToString(getOrReturnDefault("POSTGRES_USER", "postgres"))
	cfg.PostgresPassword = cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", "1234"))
	cfg.PostgresDB = cast.ToString(getOrReturnDefault("POSTGRES_DB", "foodexpress"))

	cfg.RedisHost = cast.ToString(getOrReturnDefault("REDIS_HOST", "localhost"))
	cfg.RedisPort = cast.ToString(getOrReturnDefault("REDIS_PORT", "6379"))
	cfg.RedisPassword = cast.ToString(getOrReturnDefault("REDIS_PASSWORD", ""))

	cfg.GoogleMapsAPIKey = cast.ToString(getOrReturnDefault("GOOGLE_MAPS_API_KEY", ""))
	cfg.RestaurantAddress = cast.ToString(getOrReturnDefault("RESTAURANT_ADDRESS", "Київ, Ніжинська 29"))
	cfg.RestaurantTZ = cast.ToString(getOrReturnDefault("RESTAURANT_TZ", "Europe/Kyiv"))

	cfg.DeliveryRatePerMinute = cast.ToFloat64(getOrReturnDefault("DELIVERY_RATE_PER_MINUTE", 0.5))
	cfg.SweepInterval = time.Duration(cast.ToInt(getOrReturnDefault("SWEEP_INTERVAL_SECONDS", 30))) * time.Second

	cfg.TelegramBotToken = cast.ToString(getOrReturnDefault("TG_BOT_TOKEN", ""))
	cfg.AdminChatID = cast.ToInt64(getOrReturnDefault("ADMIN_CHAT_ID", 0))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
