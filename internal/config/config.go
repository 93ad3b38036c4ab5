package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/thanhnt94/newmindstack-sub001/pkg/validator"
)

type Config struct {
	Session  SessionConfig `mapstructure:"session" validate:"required"`
	API      APIConfig     `mapstructure:"api" validate:"required"`
	Audio    AudioConfig   `mapstructure:"audio" validate:"required"`
	BotToken string        `mapstructure:"bot_token" validate:"required"`
	DB       DBConfig      `mapstructure:"db" validate:"required"`
	Env      string        `mapstructure:"env" validate:"oneof=development production staging"`
}

type SessionConfig struct {
	BatchSize    int `mapstructure:"batch_size" validate:"min=1,max=50"`
	LowWaterMark int `mapstructure:"low_water_mark" validate:"min=0,max=10"`
}

type APIConfig struct {
	BaseURL        string        `mapstructure:"base_url" validate:"required,url"`
	BatchPath      string        `mapstructure:"batch_path" validate:"required"`
	SubmitPath     string        `mapstructure:"submit_path" validate:"required"`
	RegeneratePath string        `mapstructure:"regenerate_path" validate:"required"`
	SettingsPath   string        `mapstructure:"settings_path" validate:"required"`
	CSRFToken      string        `mapstructure:"csrf_token"`
	FetchTimeout   time.Duration `mapstructure:"fetch_timeout" validate:"min=1"`
}

type AudioConfig struct {
	FlipDelay time.Duration `mapstructure:"flip_delay" validate:"min=0"`
	NextDelay time.Duration `mapstructure:"next_delay" validate:"min=0"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("bot_token", "BOT_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind BOT_TOKEN: %w", err)
	}
	if err := v.BindEnv("api.base_url", "API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind API_BASE_URL: %w", err)
	}
	if err := v.BindEnv("api.csrf_token", "API_CSRF_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind API_CSRF_TOKEN: %w", err)
	}
	if err := v.BindEnv("db.conn.host", "DB_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_HOST: %w", err)
	}
	if err := v.BindEnv("db.conn.port", "DB_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PORT: %w", err)
	}
	if err := v.BindEnv("db.conn.user", "DB_USER"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_USER: %w", err)
	}
	if err := v.BindEnv("db.conn.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD: %w", err)
	}
	if err := v.BindEnv("db.conn.name", "DB_NAME"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_NAME: %w", err)
	}
	if err := v.BindEnv("db.conn.ssl", "DB_SSL"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_SSL: %w", err)
	}

	v.SetDefault("session.batch_size", 3)
	v.SetDefault("session.low_water_mark", 1)
	v.SetDefault("api.fetch_timeout", 8*time.Second)
	v.SetDefault("audio.flip_delay", 2*time.Second)
	v.SetDefault("audio.next_delay", 3*time.Second)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
