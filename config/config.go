package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Cache    CacheConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessTTLMin int
	BcryptCost   int
}

type CacheConfig struct {
	// ReferenceTTLSec bounds staleness of cached reference-data lists;
	// writes invalidate the keys eagerly anyway.
	ReferenceTTLSec int
}

var AppConfig *Config

func LoadConfig() *Config {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	AppConfig = &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		JWT:      GetJWTConfig(),
		Cache:    GetCacheConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8081"},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5433",
			User:     "postgres",
			Password: "postgres",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: "6380",
			DB:   1,
		},
		JWT: JWTConfig{
			Secret:       "test-secret",
			AccessTTLMin: 15,
			BcryptCost:   4,
		},
		Cache: CacheConfig{ReferenceTTLSec: 1},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port: getEnv("SERVER_PORT", "8080"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetJWTConfig() JWTConfig {
	ttl, err := strconv.Atoi(getEnv("JWT_ACCESS_TTL_MIN", "60"))
	if err != nil {
		panic(err)
	}
	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	if err != nil {
		panic(err)
	}

	return JWTConfig{
		Secret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		AccessTTLMin: ttl,
		BcryptCost:   cost,
	}
}

func GetCacheConfig() CacheConfig {
	ttl, err := strconv.Atoi(getEnv("CACHE_REFERENCE_TTL_SEC", "300"))
	if err != nil {
		panic(err)
	}
	return CacheConfig{ReferenceTTLSec: ttl}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
