package config

import "os"

type Config struct {
	Port           string
	USDAAPIKey     string
	USDABaseURL    string
	GeminiAPIKey   string
	GeminiModel    string
	AllowedOrigins string
	StaticDir      string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		USDAAPIKey:     getEnv("USDA_API_KEY", ""),
		USDABaseURL:    getEnv("USDA_BASE_URL", "https://api.nal.usda.gov/fdc/v1"),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		StaticDir:      getEnv("STATIC_DIR", "static"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
