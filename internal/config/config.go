package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type RelayConfig struct {
	Env string `yaml:"env" env:"RELAY_ENV" env-default:"local"`
	HTTPServer  `yaml:"http_server"`
	RelayDB     `yaml:"relay_db"`
	LogConfig   `yaml:"log_config"`
	Gateway     GatewayConfig     `yaml:"pix_gateway"`
	Attribution AttributionConfig `yaml:"attribution"`
	Kafka       KafkaConfig       `yaml:"kafka-service"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type RelayDB struct {
	Dsn            string `yaml:"dsn" env:"RELAY_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"text"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type GatewayConfig struct {
	BaseURL       string `yaml:"base_url"`
	APIKey        string `yaml:"api_key" env:"PIX_GATEWAY_API_KEY"`
	APISecret     string `yaml:"api_secret" env:"PIX_GATEWAY_API_SECRET"`
	WebhookSecret string `yaml:"webhook_secret" env:"PIX_GATEWAY_WEBHOOK_SECRET"`
	CallbackURL   string `yaml:"callback_url"`
}

type AttributionConfig struct {
	APIURL            string  `yaml:"api_url"`
	APIToken          string  `yaml:"api_token" env:"ATTRIBUTION_API_TOKEN"`
	Platform          string  `yaml:"platform" env-default:"pix-relay"`
	GatewayFeePercent float64 `yaml:"gateway_fee_percent" env-default:"4.99"`
	QueueSize         int     `yaml:"queue_size" env-default:"64"`
}

type KafkaConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Topic   string `yaml:"topic" env-default:"pix-transaction-events"`
}

func MustLoad() *RelayConfig {

	// Processing env config variable and file
	configPath := os.Getenv("RELAY_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("RELAY_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg RelayConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
