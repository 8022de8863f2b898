package config

import (
	"os"
	"strconv"
)

type Config struct {
	MongoURI             string
	MongoDatabase        string
	RedisAddr            string
	HTTPPort             string
	InsightFreshnessDays int
}

func Load() *Config {
	return &Config{
		MongoURI:             getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:        getEnv("MONGO_DATABASE", "coachpulse"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		InsightFreshnessDays: getEnvInt("INSIGHT_FRESHNESS_DAYS", 7),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}
