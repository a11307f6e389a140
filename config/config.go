package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort   string `mapstructure:"APP_PORT"`
	Env       string `mapstructure:"ENV"`
	JWTSecret string `mapstructure:"JWT_SECRET"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB          int    `mapstructure:"REDIS_AUTH_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Cal.com integration.
	CalAPIBaseURL string `mapstructure:"CAL_API_BASE_URL"`
	CalAPIKey     string `mapstructure:"CAL_API_KEY"`

	// Slot-grid defaults (minutes from midnight / step minutes). These were
	// hardcoded in an earlier iteration; keep them configurable.
	GridWindowStart int `mapstructure:"GRID_WINDOW_START"`
	GridWindowEnd   int `mapstructure:"GRID_WINDOW_END"`
	GridStep        int `mapstructure:"GRID_STEP"`

	// Session reminder lead time in minutes.
	ReminderLead int `mapstructure:"REMINDER_LEAD"`

	StripeKey string `mapstructure:"STRIPE_KEY"`

	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// Bootstrap admin credential. Admin endpoints stay closed until both
	// values are configured.
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("CAL_API_BASE_URL", "https://api.cal.com/v1")
	viper.SetDefault("GRID_WINDOW_START", 9*60)
	viper.SetDefault("GRID_WINDOW_END", 18*60)
	viper.SetDefault("GRID_STEP", 30)
	viper.SetDefault("REMINDER_LEAD", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
