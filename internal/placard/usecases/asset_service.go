package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"placard-server/internal/infra/cache"
)

//go:generate mockgen -source=asset_service.go -destination=../../../test/unit/doubles/placard/usecases/asset_service_mock.go -package=usecases -mock_names=AssetCatalogService=MockAssetCatalogService

const (
	backgroundsCacheKey = "assets:backgrounds"
	fontsCacheKey       = "assets:fonts"

	assetCacheTTL = 10 * time.Minute
)

// AssetCatalogService exposes the background and font lists the rendering
// service offers. Lists are cached locally and refreshed on a schedule so
// the editor does not hit the service on every dropdown open.
type AssetCatalogService interface {
	Backgrounds(ctx context.Context) ([]string, error)
	Fonts(ctx context.Context) ([]string, error)
	Refresh(ctx context.Context) error
}

func NewAssetCatalogService(assets AssetRepository, store cache.Cache) *SimpleAssetCatalogService {
	return &SimpleAssetCatalogService{
		assets: assets,
		store:  store,
	}
}

var _ AssetCatalogService = &SimpleAssetCatalogService{}

type SimpleAssetCatalogService struct {
	assets AssetRepository
	store  cache.Cache
}

func (s *SimpleAssetCatalogService) Backgrounds(ctx context.Context) ([]string, error) {
	value, err := s.store.GetOrSet(ctx, backgroundsCacheKey, assetCacheTTL, func() (any, error) {
		return s.assets.ListBackgrounds(ctx)
	})
	if err != nil {
		slog.Error("listing backgrounds", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing backgrounds: %w", err)
	}

	return value.([]string), nil
}

func (s *SimpleAssetCatalogService) Fonts(ctx context.Context) ([]string, error) {
	value, err := s.store.GetOrSet(ctx, fontsCacheKey, assetCacheTTL, func() (any, error) {
		return s.assets.ListFonts(ctx)
	})
	if err != nil {
		slog.Error("listing fonts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing fonts: %w", err)
	}

	return value.([]string), nil
}

// Refresh re-fetches both lists and replaces the cached entries. Used by
// the periodic refresh worker; a failure keeps the previous entries.
func (s *SimpleAssetCatalogService) Refresh(ctx context.Context) error {
	backgrounds, err := s.assets.ListBackgrounds(ctx)
	if err != nil {
		return fmt.Errorf("refreshing backgrounds: %w", err)
	}
	fonts, err := s.assets.ListFonts(ctx)
	if err != nil {
		return fmt.Errorf("refreshing fonts: %w", err)
	}

	s.store.Set(ctx, backgroundsCacheKey, backgrounds, assetCacheTTL)
	s.store.Set(ctx, fontsCacheKey, fonts, assetCacheTTL)

	slog.Debug("asset catalog refreshed",
		slog.Int("backgrounds", len(backgrounds)),
		slog.Int("fonts", len(fonts)))
	return nil
}
