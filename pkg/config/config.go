package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	FirebaseProject  string
	StorageBucket    string
	Environment      string
	MapsAPIKey       string
	ContractTemplate string
	BodyLimit        string
	SignedURLTTLDays int
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		FirebaseProject:  getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:    getEnv("STORAGE_BUCKET", ""),
		Environment:      getEnv("ENVIRONMENT", "development"),
		MapsAPIKey:       getEnv("GOOGLE_MAPS_API_KEY", ""),
		ContractTemplate: getEnv("CONTRACT_TEMPLATE_PATH", "./template_contract.pdf"),
		BodyLimit:        getEnv("BODY_LIMIT", "25M"), // base64 PDFs and signatures ride in request bodies
		SignedURLTTLDays: getEnvAsInt("SIGNED_URL_TTL_DAYS", 7),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
