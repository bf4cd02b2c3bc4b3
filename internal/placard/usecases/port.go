package usecases

import (
	"context"
	"errors"
	"io"

	"placard-server/internal/placard/domain"
)

//go:generate mockgen -source=port.go -destination=../../../test/unit/doubles/placard/usecases/port_mock.go -package=usecases -mock_names=ProfileRepository=MockProfileRepository,PlacardRenderer=MockPlacardRenderer,AssetRepository=MockAssetRepository

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrEmptyProfileName    = errors.New("profile name must not be empty")
	ErrUnsupportedFileType = errors.New("unsupported catalog file type")
	ErrNoCatalogLoaded     = errors.New("no catalog loaded")
	ErrNoProductsLoaded    = errors.New("no products loaded")
	ErrNothingToGenerate   = errors.New("no placards selected for generation")
	ErrUnknownField        = errors.New("unknown field key")
)

// ProfileRepository persists named template profiles on the external
// rendering service. Calls are not retried; a failure leaves local state
// untouched and the caller decides what to do.
type ProfileRepository interface {
	FindAll(ctx context.Context) ([]domain.Profile, error)
	Get(ctx context.Context, name string) (domain.Profile, error)
	Save(ctx context.Context, name string, config domain.TemplateConfig) (domain.Profile, error)
	Delete(ctx context.Context, name string) error
}

// PlacardRenderer is the outbound port to the external rendering service.
// The renderer's validity verdicts are authoritative and opaque here.
type PlacardRenderer interface {
	UploadCatalog(ctx context.Context, filename string, file io.Reader) (domain.Catalog, error)
	RenderPreview(ctx context.Context, product domain.Product, config domain.TemplateConfig) (string, error)
	ValidatePlacard(ctx context.Context, filename string, config domain.TemplateConfig, index int) (domain.PlacardVerdict, error)
	AssembleDocument(ctx context.Context, filename string, config domain.TemplateConfig, selected []int) (domain.AssembledDocument, error)
	GenerateBarcode(ctx context.Context, code string) error
}

// AssetRepository lists the background and font assets the rendering
// service has available.
type AssetRepository interface {
	ListBackgrounds(ctx context.Context) ([]string, error)
	ListFonts(ctx context.Context) ([]string, error)
}
