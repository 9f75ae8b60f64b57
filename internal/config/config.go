package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrSecretRequired = errors.New("SECRET_KEY must be set")

// Config 服务配置，全部来自环境变量
type Config struct {
	Port     string `env:"PORT" envDefault:"5000"`
	MySQLDSN string `env:"MYSQL_DSN" envDefault:"user:password@tcp(127.0.0.1:3306)/community?charset=utf8mb4&parseTime=True"`
	// SecretKey 签名密钥，没有默认值，不设置则拒绝启动
	SecretKey string `env:"SECRET_KEY"`
	Redis     Redis  `envPrefix:"REDIS_"`
	Kafka     Kafka  `envPrefix:"KAFKA_"`
	SMTP      SMTP   `envPrefix:"SMTP_"`
}

type Redis struct {
	Addr     string `env:"ADDR" envDefault:"127.0.0.1:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Kafka brokers 为空时成员事件只打日志不投递
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"membership-events"`
}

type SMTP struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM"`
}

// Load 先读 .env（可选），再解析环境变量
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.SecretKey == "" {
		return nil, ErrSecretRequired
	}
	return &cfg, nil
}
