package main

import (
	"fmt"
	"strings"

	"scoutquest/internal/repository"
	"scoutquest/internal/service"
	"scoutquest/pkg/auth"
	"scoutquest/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configPath   = "./"
	configName   = "config"
	configFormat = "yaml"
)

type Config struct {
	Database repository.Config `yaml:"database"`
	Server   ServerConfig      `yaml:"server"`
	Session  auth.Config       `yaml:"session"`
	Redis    auth.RedisConfig  `yaml:"redis"`
	Telegram TelegramConfig    `yaml:"telegram"`
	Logger   logger.Config     `yaml:"logger"`
	CORS     CORSConfig        `yaml:"cors"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type TelegramConfig struct {
	BotToken    string `yaml:"botToken"`
	AdminChatID int64  `yaml:"adminChatID"`
	Debug       bool   `yaml:"debug"`
}

func (c TelegramConfig) Enabled() bool {
	return c.BotToken != "" && c.AdminChatID != 0
}

func (c TelegramConfig) Notifier() service.NotifierConfig {
	return service.NotifierConfig{
		BotToken:    c.BotToken,
		AdminChatID: c.AdminChatID,
		Debug:       c.Debug,
	}
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allowOrigins"`
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.name", "scoutquest")
	viper.SetDefault("database.sslMode", "disable")
	viper.SetDefault("database.connectRetries", 5)
	viper.SetDefault("database.migrate", true)

	viper.SetDefault("session.secret", "")
	viper.SetDefault("session.issuer", "scoutquest")
	viper.SetDefault("session.ttl", "24h")

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("telegram.botToken", "")
	viper.SetDefault("telegram.adminChatID", 0)
	viper.SetDefault("telegram.debug", false)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")

	viper.SetDefault("cors.allowOrigins", []string{})
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName(configName)
	viper.AddConfigPath(configPath)
	viper.SetConfigType(configFormat)

	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("session.secret is required")
	}

	return &cfg, nil
}
