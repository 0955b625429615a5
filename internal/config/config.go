package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Session   SessionConfig
	Backend   BackendConfig
	Storage   StorageConfig
	Weather   WeatherConfig
	Assistant AssistantConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type SessionConfig struct {
	Secret string
}

// BackendConfig points at the remote zoo backend that owns articles, orders,
// payment methods and authentication.
type BackendConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// StorageConfig locates the directory for the local order journal
type StorageConfig struct {
	DataDir string
}

type WeatherConfig struct {
	BaseURL   string
	Latitude  float64
	Longitude float64
}

type AssistantConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "localhost"),
			Env:  getEnv("ENV", "development"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
		},
		Backend: BackendConfig{
			BaseURL:        getEnv("BACKEND_BASE_URL", "http://localhost:3000"),
			TimeoutSeconds: getEnvAsInt("BACKEND_TIMEOUT_SECONDS", 30),
		},
		Storage: StorageConfig{
			DataDir: getEnv("DATA_DIR", "./data"),
		},
		Weather: WeatherConfig{
			BaseURL:   getEnv("WEATHER_BASE_URL", "https://api.open-meteo.com"),
			Latitude:  getEnvAsFloat("WEATHER_LATITUDE", 47.3769),
			Longitude: getEnvAsFloat("WEATHER_LONGITUDE", 8.5417),
		},
		Assistant: AssistantConfig{
			BaseURL: getEnv("ASSISTANT_BASE_URL", "https://generativelanguage.googleapis.com"),
			APIKey:  getEnv("ASSISTANT_API_KEY", ""),
			Model:   getEnv("ASSISTANT_MODEL", "gemini-2.5-flash"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
