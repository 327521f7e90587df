package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	MySQL  MySQLConfig
	Redis  RedisConfig
	JWT    JWTConfig
}

var (
	configInstance *Config
	once           sync.Once
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type MySQLConfig struct {
	DSN string
}

type RedisConfig struct {
	URI string
}

type JWTConfig struct {
	Secret         string
	ExpirationTime time.Duration
}

func LoadConfig() (*Config, error) {
	once.Do(func() {
		viper.SetDefault("TIPS_PORT", "8080")
		viper.SetDefault("TIPS_READ_TIMEOUT", 30*time.Second)
		viper.SetDefault("TIPS_WRITE_TIMEOUT", 30*time.Second)
		viper.SetDefault("TIPS_IDLE_TIMEOUT", 60*time.Second)
		viper.SetDefault("TIPS_JWT_SECRET", "secret")
		viper.SetDefault("TIPS_JWT_EXPIRE", "1h")
		viper.SetDefault("MYSQL_DSN", "tips:tips@tcp(127.0.0.1:3306)/tips?charset=utf8mb4&parseTime=True&loc=Local")
		viper.SetDefault("REDIS_URL", "redis://127.0.0.1:6379/0")
		viper.AutomaticEnv()

		configInstance = &Config{
			Server: ServerConfig{
				Host:         viper.GetString("TIPS_HOST"),
				Port:         viper.GetString("TIPS_PORT"),
				ReadTimeout:  viper.GetDuration("TIPS_READ_TIMEOUT"),
				WriteTimeout: viper.GetDuration("TIPS_WRITE_TIMEOUT"),
				IdleTimeout:  viper.GetDuration("TIPS_IDLE_TIMEOUT"),
			},
			MySQL: MySQLConfig{
				DSN: viper.GetString("MYSQL_DSN"),
			},
			Redis: RedisConfig{
				URI: viper.GetString("REDIS_URL"),
			},
			JWT: JWTConfig{
				Secret:         viper.GetString("TIPS_JWT_SECRET"),
				ExpirationTime: viper.GetDuration("TIPS_JWT_EXPIRE"),
			},
		}
	})

	return configInstance, nil
}
