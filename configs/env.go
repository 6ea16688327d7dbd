package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnvFor(v string) (x string) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	err := godotenv.Load(envFile)

	if err != nil {
		log.Fatal("Unable to load .env file")
	}

	x = os.Getenv(v)
	return
}

// LoadEnvOr reads an env key with a fallback, for optional settings
// like the staging directory and preview provider selection.
func LoadEnvOr(v, fallback string) string {
	_ = godotenv.Load()
	if x := os.Getenv(v); x != "" {
		return x
	}
	return fallback
}
