package cli

import "os"

// Config holds CLI configuration
type Config struct {
	// BoardSize is the initial board size; 0 uses the rules default
	BoardSize int
	// WinLength is the run length that wins; 0 uses the rules default
	WinLength int
	// Debug enables debug-level logging on stderr
	Debug bool
	// Storage selects the backend: memory or redis
	Storage string
	// RedisURL is the Redis connection URL when Storage is redis
	RedisURL string
	// Port is the HTTP listen port for serve mode
	Port int
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Storage:  getEnvOrDefault("GOMOKU_STORAGE", "memory"),
		RedisURL: getEnvOrDefault("GOMOKU_REDIS_URL", "redis://localhost:6379"),
		Port:     8080,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
