package env

import (
	"os"

	"github.com/joho/godotenv"
)

var Env map[string]string

// GetEnv returns the value for key from the loaded .env file, then from the
// process environment (Docker and test runs set variables there), then def.
func GetEnv(key, def string) string {
	if val, ok := Env[key]; ok {
		return val
	}
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// SetupEnvFile loads the .env file into Env. The relative fallbacks cover
// binaries started from a cmd/ subdirectory, like the migrate CLI.
func SetupEnvFile() {
	candidates := []string{".env", "../../.env", "../../../.env"}
	for _, envFile := range candidates {
		if parsed, err := godotenv.Read(envFile); err == nil {
			Env = parsed
			return
		}
	}
	panic("no .env file found next to the binary or in the project root")
}

// IsDev reports whether the app runs with APP_ENV=dev
func IsDev() bool {
	return GetEnv("APP_ENV", "prod") == "dev"
}
