package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DB   *Postgres `yaml:"database"`
	RMQ  *RabbitMQ `yaml:"rabbitmq"`
	HTTP *HTTP     `yaml:"http"`
}

type Postgres struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type RabbitMQ struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	VHost    string `yaml:"vhost"`
}

type HTTP struct {
	Port int `yaml:"port"`
}

// LoadConfig reads the YAML config file. Credentials can be overridden
// through POS_DB_PASSWORD and POS_RMQ_PASSWORD so they stay out of the file.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DB == nil {
		return nil, fmt.Errorf("config: database section is required")
	}
	if cfg.RMQ == nil {
		return nil, fmt.Errorf("config: rabbitmq section is required")
	}
	if cfg.HTTP == nil {
		cfg.HTTP = &HTTP{Port: 3000}
	}

	cfg.DB.Password = getEnv("POS_DB_PASSWORD", cfg.DB.Password)
	cfg.RMQ.Password = getEnv("POS_RMQ_PASSWORD", cfg.RMQ.Password)

	return cfg, nil
}

// DSN builds the postgres connection string.
func (p *Postgres) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database,
	)
}

// URL builds the amqp connection string.
func (r *RabbitMQ) URL() string {
	vhost := r.VHost
	if vhost == "" {
		vhost = "/"
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%s%s", r.User, r.Password, r.Host, r.Port, vhost)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
