// Package config reads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"nilenavigator/store"

	"github.com/joho/godotenv"
)

const (
	DefaultPort         = ":8080"
	DefaultSQLitePath   = "data/nile.db"
	DefaultPingMessage  = "ping"
	DefaultShareBaseURL = "https://nilenavigator.com"
	DefaultGuideRPS     = 1.0
	DefaultGuideBurst   = 5
)

type Config struct {
	Port         string
	Store        store.Options
	SentryDSN    string
	Environment  string
	CORSOrigins  []string
	ShareBaseURL string
	PingMessage  string
	GuideRPS     float64
	GuideBurst   int
}

// Load reads .env when present and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) Config {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	port := get("PORT", DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	return Config{
		Port: port,
		Store: store.Options{
			Backend:       get("STORE_BACKEND", "sqlite"),
			SQLitePath:    get("SQLITE_PATH", DefaultSQLitePath),
			RedisAddr:     get("REDIS_ADDR", ""),
			RedisPassword: getenv("REDIS_PASSWORD"),
			RedisDB:       atoi(get("REDIS_DB", "0"), 0),
			RedisPrefix:   get("REDIS_PREFIX", ""),
			MongoURI:      get("MONGO_URI", ""),
			MongoDatabase: get("MONGO_DB", ""),
		},
		SentryDSN:    getenv("SENTRY_DSN"),
		Environment:  get("APP_ENV", "development"),
		CORSOrigins:  splitList(get("CORS_ORIGINS", "*")),
		ShareBaseURL: strings.TrimRight(get("SHARE_BASE_URL", DefaultShareBaseURL), "/"),
		PingMessage:  get("PING_MESSAGE", DefaultPingMessage),
		GuideRPS:     atof(get("AI_GUIDE_RPS", ""), DefaultGuideRPS),
		GuideBurst:   atoi(get("AI_GUIDE_BURST", ""), DefaultGuideBurst),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoi(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func atof(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}
