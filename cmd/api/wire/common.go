//go:build wireinject
// +build wireinject

package wire

import (
	"time"

	"placard-server/cmd/config"
	"placard-server/internal/infra/cache"
	"placard-server/internal/renderer"
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideRendererClient(cfg config.AppConfig) *renderer.Client {
	return renderer.NewClient(cfg.Renderer.BaseURL, cfg.Renderer.Timeout)
}

func provideCache() (*cache.RistrettoCache, error) {
	return cache.New(nil)
}

func provideTicker() *time.Ticker {
	return time.NewTicker(30 * time.Second)
}

func provideRefreshSchedule(cfg config.AppConfig) string {
	return cfg.Assets.RefreshSchedule
}
