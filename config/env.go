package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names understood by LoadEnv.
const (
	EnvSkipMenu    = "PIGEM_SKIP_MENU"
	EnvLevel       = "PIGEM_LEVEL"
	EnvMetricsAddr = "PIGEM_METRICS_ADDR"
	EnvDebug       = "PIGEM_DEBUG"
)

// LoadEnv loads a .env file from the working directory, when present, and
// applies PIGEM_* overrides to the global configuration. Command-line flags
// are parsed afterwards and win over the environment.
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found, using environment variables only")
	} else {
		log.Printf("Loaded environment from %v", files)
	}
	ApplyEnv()
}

// ApplyEnv copies PIGEM_* environment variables into the global configuration.
func ApplyEnv() {
	Debug.SkipMenu = getEnvBool(EnvSkipMenu, Debug.SkipMenu)
	Debug.Overlay = getEnvBool(EnvDebug, Debug.Overlay)
	if level := os.Getenv(EnvLevel); level != "" {
		Level.Default = level
	}
	if addr := os.Getenv(EnvMetricsAddr); addr != "" {
		Telemetry.Addr = addr
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("Warning: ignoring %s=%q, not a boolean", key, v)
	}
	return defaultVal
}
