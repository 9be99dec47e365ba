package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is read once at startup. Empty MongoURI, RedisAddress or AMQPURL
// switch the matching backend off.
type Config struct {
	Env                 string
	Port                string
	MongoURI            string
	MongoDatabase       string
	RedisAddress        string
	RedisPassword       string
	JWTSecret           string
	ComplaintDailyLimit int
	RateLimitPrefix     string
	SeedFile            string
	AMQPURL             string
	AMQPExchange        string
	CORSOrigin          string
}

// Load reads .env when present, then the process environment
func Load() (*Config, bool) {
	envLoaded := godotenv.Load() == nil

	return &Config{
		Env:                 getEnv("APP_ENV", "dev"),
		Port:                getEnv("PORT", "8080"),
		MongoURI:            getEnv("MONGODB_URI", ""),
		MongoDatabase:       getEnv("MONGODB_DATABASE", "cityreport"),
		RedisAddress:        getEnv("REDIS_ADDRESS", ""),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		ComplaintDailyLimit: getEnvAsInt("COMPLAINT_DAILY_LIMIT", 10),
		RateLimitPrefix:     getEnv("REDIS_QUEUE_FOR_COMPLAINT_LIMIT", "complaint-limit"),
		SeedFile:            getEnv("SEED_FILE", ""),
		AMQPURL:             getEnv("AMQP_URL", ""),
		AMQPExchange:        getEnv("AMQP_EXCHANGE", "complaints"),
		CORSOrigin:          getEnv("CORS_ORIGIN", "*"),
	}, envLoaded
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
