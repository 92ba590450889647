package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vladislavdragonenkov/menuboard/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/menuboard/internal/messaging/rabbitmq"
	"github.com/vladislavdragonenkov/menuboard/internal/service/snapshot"
)

// Драйверы хранилища снимков.
const (
	StorageDriverMemory   = "memory"
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
)

// Переменные окружения.
const (
	EnvConfigFile          = "MENU_CONFIG_FILE"
	EnvGRPCAddr            = "MENU_GRPC_ADDR"
	EnvMetricsAddr         = "MENU_METRICS_ADDR"
	EnvStorageDriver       = "MENU_STORAGE_DRIVER"
	EnvDataDir             = "MENU_DATA_DIR"
	EnvStorageKey          = "MENU_STORAGE_KEY"
	EnvPostgresDSN         = "MENU_POSTGRES_DSN"
	EnvPostgresAutoMigrate = "MENU_POSTGRES_AUTO_MIGRATE"
	EnvKafkaBrokers        = "MENU_KAFKA_BROKERS"
	EnvKafkaTopic          = "MENU_KAFKA_TOPIC"
	EnvKafkaGroup          = "MENU_KAFKA_GROUP"
	EnvRabbitMQURL         = "MENU_RABBITMQ_URL"
	EnvRabbitMQExchange    = "MENU_RABBITMQ_EXCHANGE"
	EnvTelegramToken       = "MENU_TELEGRAM_TOKEN"
	EnvLogLevel            = "MENU_LOG_LEVEL"
)

// DefaultEnvFile — .env, который подхватывается из рабочей директории.
const DefaultEnvFile = ".env"

// Config описывает настройки всех бинарников menuboard.
type Config struct {
	GRPCAddr    string `yaml:"grpc_addr"`
	MetricsAddr string `yaml:"metrics_addr"`

	StorageDriver       string `yaml:"storage_driver"`
	DataDir             string `yaml:"data_dir"`
	StorageKey          string `yaml:"storage_key"`
	PostgresDSN         string `yaml:"postgres_dsn"`
	PostgresAutoMigrate bool   `yaml:"postgres_auto_migrate"`

	// KafkaBrokers — список брокеров через запятую, пустая строка выключает Kafka.
	KafkaBrokers     string `yaml:"kafka_brokers"`
	KafkaTopic       string `yaml:"kafka_topic"`
	KafkaGroup       string `yaml:"kafka_group"`
	RabbitMQURL      string `yaml:"rabbitmq_url"`
	RabbitMQExchange string `yaml:"rabbitmq_exchange"`

	TelegramToken string `yaml:"telegram_token"`
	LogLevel      string `yaml:"log_level"`
}

// DefaultConfig возвращает базовые адреса и файловое хранилище в .menuboard.
// memory подключается явно, например в тестах.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:            ":50051",
		MetricsAddr:         ":9090",
		StorageDriver:       StorageDriverFile,
		DataDir:             ".menuboard",
		StorageKey:          snapshot.DefaultKey,
		PostgresAutoMigrate: true,
		KafkaTopic:          kafka.TopicMenuEvents,
		KafkaGroup:          "menuboard",
		RabbitMQExchange:    rabbitmq.ExchangeMenuEvents,
		LogLevel:            "info",
	}
}

// Brokers разбивает KafkaBrokers на адреса, отбрасывая пустые.
func (c Config) Brokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Validate проверяет согласованность настроек хранилища.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverFile:
		if strings.TrimSpace(c.DataDir) == "" {
			return errors.New("file storage requires data dir")
		}
	case StorageDriverPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return fmt.Errorf("postgres storage requires %s", EnvPostgresDSN)
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", c.StorageDriver)
	}
	if strings.TrimSpace(c.StorageKey) == "" {
		return errors.New("storage key must not be empty")
	}
	return nil
}

// ReadConfigFromEnv накладывает переменные окружения на DefaultConfig.
// Некорректные значения не прерывают загрузку: они возвращаются в warnings,
// а поле сохраняет прежнее значение.
func ReadConfigFromEnv(lookup func(string) (string, bool)) (Config, []string) {
	return applyEnv(DefaultConfig(), lookup)
}

func applyEnv(cfg Config, lookup func(string) (string, bool)) (Config, []string) {
	var warnings []string

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str(EnvGRPCAddr, &cfg.GRPCAddr)
	str(EnvMetricsAddr, &cfg.MetricsAddr)
	str(EnvDataDir, &cfg.DataDir)
	str(EnvStorageKey, &cfg.StorageKey)
	str(EnvPostgresDSN, &cfg.PostgresDSN)
	str(EnvKafkaBrokers, &cfg.KafkaBrokers)
	str(EnvKafkaTopic, &cfg.KafkaTopic)
	str(EnvKafkaGroup, &cfg.KafkaGroup)
	str(EnvRabbitMQURL, &cfg.RabbitMQURL)
	str(EnvRabbitMQExchange, &cfg.RabbitMQExchange)
	str(EnvTelegramToken, &cfg.TelegramToken)

	if v, ok := lookup(EnvStorageDriver); ok && strings.TrimSpace(v) != "" {
		driver := strings.ToLower(strings.TrimSpace(v))
		switch driver {
		case StorageDriverMemory, StorageDriverFile, StorageDriverPostgres:
			cfg.StorageDriver = driver
		default:
			warnings = append(warnings, fmt.Sprintf("%s: unknown driver %q, keeping %q", EnvStorageDriver, v, cfg.StorageDriver))
		}
	}

	if v, ok := lookup(EnvPostgresAutoMigrate); ok && strings.TrimSpace(v) != "" {
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: invalid bool %q, keeping %t", EnvPostgresAutoMigrate, v, cfg.PostgresAutoMigrate))
		} else {
			cfg.PostgresAutoMigrate = parsed
		}
	}

	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		if _, err := log.ParseLevel(strings.TrimSpace(v)); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: invalid level %q, keeping %q", EnvLogLevel, v, cfg.LogLevel))
		} else {
			cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
		}
	}

	return cfg, warnings
}

// LoadConfig собирает конфигурацию по слоям: значения по умолчанию, YAML-файл
// (configPath или MENU_CONFIG_FILE), .env-файл, окружение процесса.
// Отсутствующий .env не считается ошибкой, а отсутствующий YAML считается.
func LoadConfig(configPath, envFile string) (Config, []string, error) {
	cfg := DefaultConfig()

	dotenv := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = values
		case errors.Is(err, fs.ErrNotExist):
		default:
			return cfg, nil, fmt.Errorf("read env file %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if configPath == "" {
		configPath, _ = lookup(EnvConfigFile)
	}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return cfg, nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, nil, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	}

	cfg, warnings := applyEnv(cfg, lookup)
	return cfg, warnings, nil
}
