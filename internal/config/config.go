package config

import "github.com/spf13/viper"

type Config struct {
	Port      string
	Env       string
	ClientURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads configuration from the environment. main loads .env first, so
// local overrides work the same way in development and in a container.
// REDIS_ADDR is optional; leaving it empty disables action rate limiting.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("CLIENT_URL", "*")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	return &Config{
		Port:          viper.GetString("PORT"),
		Env:           viper.GetString("ENV"),
		ClientURL:     viper.GetString("CLIENT_URL"),
		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),
		RedisDB:       viper.GetInt("REDIS_DB"),
	}, nil
}
