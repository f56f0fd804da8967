package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Storage struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	BucketName    string
	PublicBaseURL string
}

type Google struct {
	ClientID      string
	ClientSecret  string
	RedirectURI   string
	AllowedDomain string
}

type Config struct {
	Port           string
	PostgresURI    string
	RedisURI       string
	FrontendURL    string
	LoginPath      string
	SecretKey      string
	CookieName     string
	CookieSecure   bool
	SessionTTL     time.Duration
	CacheTTL       time.Duration
	UploadMaxBytes int
	LogLevel       string
	LogFormat      string
	Google         Google
	Storage        Storage
}

// LoadConfig reads settings from the environment. Call godotenv.Load first
// when a .env file should be honoured.
func LoadConfig() *Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("FRONTEND_URL", "http://localhost:5173")
	v.SetDefault("LOGIN_PATH", "/login")
	v.SetDefault("COOKIE_NAME", "brandlab_session")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("UPLOAD_MAX_BYTES", 200*1024*1024)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("STORAGE_REGION", "auto")

	return &Config{
		Port:           v.GetString("PORT"),
		PostgresURI:    v.GetString("POSTGRES_URI"),
		RedisURI:       v.GetString("REDIS_URI"),
		FrontendURL:    v.GetString("FRONTEND_URL"),
		LoginPath:      v.GetString("LOGIN_PATH"),
		SecretKey:      v.GetString("SECRET_KEY"),
		CookieName:     v.GetString("COOKIE_NAME"),
		CookieSecure:   v.GetBool("COOKIE_SECURE"),
		SessionTTL:     v.GetDuration("SESSION_TTL"),
		CacheTTL:       v.GetDuration("CACHE_TTL"),
		UploadMaxBytes: v.GetInt("UPLOAD_MAX_BYTES"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
		Google: Google{
			ClientID:      v.GetString("GOOGLE_CLIENT_ID"),
			ClientSecret:  v.GetString("GOOGLE_CLIENT_SECRET"),
			RedirectURI:   v.GetString("GOOGLE_REDIRECT_URI"),
			AllowedDomain: v.GetString("GOOGLE_ALLOWED_DOMAIN"),
		},
		Storage: Storage{
			Endpoint:      v.GetString("STORAGE_ENDPOINT"),
			Region:        v.GetString("STORAGE_REGION"),
			AccessKey:     v.GetString("STORAGE_ACCESS_KEY"),
			SecretKey:     v.GetString("STORAGE_SECRET_KEY"),
			BucketName:    v.GetString("STORAGE_BUCKET_NAME"),
			PublicBaseURL: v.GetString("STORAGE_PUBLIC_BASE_URL"),
		},
	}
}
