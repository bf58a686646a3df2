package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// WeekStartDay is the first day of the "week" dashboard period.
	// 0 = Sunday ... 6 = Saturday.
	WeekStartDay time.Weekday

	CORSAllowedOrigins []string
	PosthogAPIKey      string

	// Initial admin account seeded when the user table is empty.
	AdminNome  string
	AdminEmail string
	AdminSenha string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "dashboard-braseiro")
	viper.SetDefault("WEEK_START_DAY", 0)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("ADMIN_NOME", "Administrador")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_SENHA", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 8 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	weekStart := viper.GetInt("WEEK_START_DAY")
	if weekStart < 0 || weekStart > 6 {
		log.Printf("Warning: Invalid value for WEEK_START_DAY (%d). Defaulting to Sunday.\n", weekStart)
		weekStart = 0
	}
	cfg.WeekStartDay = time.Weekday(weekStart)

	cfg.CORSAllowedOrigins = strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.AdminNome = viper.GetString("ADMIN_NOME")
	cfg.AdminEmail = viper.GetString("ADMIN_EMAIL")
	cfg.AdminSenha = viper.GetString("ADMIN_SENHA")

	return cfg, nil
}
