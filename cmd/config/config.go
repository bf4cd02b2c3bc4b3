package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("placard_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		viper.SetDefault("server.addr", ":3333")
		viper.SetDefault("renderer.timeout", "30s")
		viper.SetDefault("assets.refresh_schedule", "*/10 * * * *")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel: viper.GetString("general.log_level"),
			},
			Server: ServerConfig{
				Addr:           viper.GetString("server.addr"),
				AllowedOrigins: viper.GetStringSlice("server.allowed_origins"),
			},
			Renderer: RendererConfig{
				BaseURL: viper.GetString("renderer.base_url"),
				Timeout: viper.GetDuration("renderer.timeout"),
			},
			Assets: AssetsConfig{
				RefreshSchedule: viper.GetString("assets.refresh_schedule"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General  GeneralConfig
	Server   ServerConfig
	Renderer RendererConfig
	Assets   AssetsConfig
}

type GeneralConfig struct {
	LogLevel string
}

type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

type RendererConfig struct {
	BaseURL string
	Timeout time.Duration
}

type AssetsConfig struct {
	RefreshSchedule string
}
