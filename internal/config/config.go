package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	NewsAPI  NewsAPIConfig  `yaml:"newsapi"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Rotation RotationConfig `yaml:"rotation"`
	Server   ServerConfig   `yaml:"server"`
	LogLevel string         `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RabbitMQConfig configures the ingested-article event stream. An empty URL
// disables publishing.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type NewsAPIConfig struct {
	APIKey     string        `yaml:"api_key"`
	BaseURL    string        `yaml:"base_url"`
	MaxQueries int           `yaml:"max_queries"`
	PageSize   int           `yaml:"page_size"`
	QueryDelay time.Duration `yaml:"query_delay"`
	Timeout    time.Duration `yaml:"timeout"`
}

type IngestConfig struct {
	Interval     time.Duration `yaml:"interval"`
	MinRelevance int           `yaml:"min_relevance"`
	FeedTimeout  time.Duration `yaml:"feed_timeout"`
}

type RotationConfig struct {
	CheckInterval time.Duration `yaml:"check_interval"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// CronSecret is the bearer token required to trigger jobs over HTTP.
	// Empty disables the check.
	CronSecret  string `yaml:"cron_secret"`
	Environment string `yaml:"environment"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "newsroom"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "articles"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "newsroom_articles"
	}
	if c.NewsAPI.MaxQueries == 0 {
		c.NewsAPI.MaxQueries = 5
	}
	if c.NewsAPI.PageSize == 0 {
		c.NewsAPI.PageSize = 10
	}
	if c.NewsAPI.QueryDelay == 0 {
		c.NewsAPI.QueryDelay = 200 * time.Millisecond
	}
	if c.NewsAPI.Timeout == 0 {
		c.NewsAPI.Timeout = 10 * time.Second
	}
	if c.Ingest.Interval == 0 {
		c.Ingest.Interval = 6 * time.Hour
	}
	if c.Ingest.MinRelevance == 0 {
		c.Ingest.MinRelevance = 35
	}
	if c.Ingest.FeedTimeout == 0 {
		c.Ingest.FeedTimeout = 10 * time.Second
	}
	if c.Rotation.CheckInterval == 0 {
		c.Rotation.CheckInterval = time.Hour
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
