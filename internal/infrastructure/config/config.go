package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Database
	DBDriver        string // mysql | sqlite
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBPath          string // sqlite 文件路径
	DBMigrationMode string // 数据库迁移模式: "auto"(默认), "drop"(删除重建)

	// Server
	ServerPort  string
	CORSOrigins []string

	// Redis
	RedisEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Session
	JWTSecretKey string
	SessionTTL   time.Duration

	// Admin
	DefaultAdminEmail    string
	DefaultAdminPassword string

	// Optional collaborators of the dashboard
	FeaturePayments  bool
	FeatureContracts bool

	// Maintenance scheduler
	SchedulerEnabled  bool
	SchedulerInterval time.Duration

	// MQTT配置
	MQTTBrokerURL   string // MQTT服务器地址，如 tcp://broker.example.com:1883，为空则不发布
	MQTTClientID    string
	MQTTUsername    string
	MQTTPassword    string
	MQTTQoS         int
	MQTTRetained    bool
	MQTTTopicPrefix string

	// Logging
	LogDir   string
	LogLevel string
}

// LoadConfig loads config from environment variables based on ENV_TYPE.
// Keys are first looked up with the LOCAL_/SERVER_ prefix, then unprefixed.
func LoadConfig() *Config {
	envType := strings.ToUpper(getEnv("ENV_TYPE", "LOCAL"))
	prefix := ""

	switch envType {
	case "LOCAL":
		prefix = "LOCAL_"
	case "SERVER":
		prefix = "SERVER_"
	default:
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	env := func(key, def string) string {
		return getEnv(prefix+key, getEnv(key, def))
	}

	cfg := &Config{
		EnvType: envType,

		DBDriver:        strings.ToLower(env("DB_DRIVER", "mysql")),
		DBHost:          env("DB_HOST", "localhost"),
		DBUser:          env("DB_USER", "root"),
		DBPassword:      env("DB_PASSWORD", ""),
		DBName:          env("DB_NAME", "room_manager"),
		DBPort:          env("DB_PORT", "3306"),
		DBPath:          env("DB_PATH", "room_manager.db"),
		DBMigrationMode: env("DB_MIGRATION_MODE", "auto"),

		ServerPort:  env("SERVER_PORT", "8080"),
		CORSOrigins: splitList(env("CORS_ORIGINS", "*")),

		RedisEnabled:  getEnvAsBool("REDIS_ENABLED", false),
		RedisHost:     env("REDIS_HOST", "localhost"),
		RedisPort:     env("REDIS_PORT", "6379"),
		RedisPassword: env("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "room-manager-secret-key-change-in-production"),
		SessionTTL:   getEnvAsDuration("SESSION_TTL", 7*24*time.Hour),

		DefaultAdminEmail:    getEnv("DEFAULT_ADMIN_EMAIL", "admin@example.com"),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", ""),

		FeaturePayments:  getEnvAsBool("FEATURE_PAYMENTS", true),
		FeatureContracts: getEnvAsBool("FEATURE_CONTRACTS", true),

		SchedulerEnabled:  getEnvAsBool("SCHEDULER_ENABLED", false),
		SchedulerInterval: getEnvAsDuration("SCHEDULER_INTERVAL", time.Hour),

		MQTTBrokerURL:   getEnv("MQTT_BROKER_URL", ""),
		MQTTClientID:    getEnv("MQTT_CLIENT_ID", "room_manager_server"),
		MQTTUsername:    getEnv("MQTT_USERNAME", ""),
		MQTTPassword:    getEnv("MQTT_PASSWORD", ""),
		MQTTQoS:         getEnvAsInt("MQTT_QOS", 1),
		MQTTRetained:    getEnvAsBool("MQTT_RETAINED", false),
		MQTTTopicPrefix: getEnv("MQTT_TOPIC_PREFIX", "room-manager"),

		LogDir:   getEnv("LOG_DIR", "logs"),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	if cfg.EnvType == "SERVER" && cfg.DBDriver == "mysql" {
		cfg.DBPassword = getEnvRequired(prefix + "DB_PASSWORD")
	}

	return cfg
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// IsProduction reports whether the service runs in the SERVER environment.
func (c *Config) IsProduction() bool {
	return c.EnvType == "SERVER"
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	if c.DBDriver == "sqlite" {
		return c.DBPath
	}
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=UTC&allowNativePasswords=true"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as boolean with default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

// 要求必须提供环境变量的辅助函数
func getEnvRequired(key string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	panic(fmt.Sprintf("Required environment variable %s is not set", key))
}
