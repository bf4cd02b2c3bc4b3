package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"placard-server/internal/placard/domain"
)

//go:generate mockgen -source=catalog_service.go -destination=../../../test/unit/doubles/placard/usecases/catalog_service_mock.go -package=usecases -mock_names=CatalogService=MockCatalogService

var allowedCatalogExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// CatalogService owns the uploaded product batch for the session. The
// rendering service keeps the raw file and does all parsing; this side
// keeps the parsed rows in upload order.
type CatalogService interface {
	Upload(ctx context.Context, filename string, file io.Reader) (domain.Catalog, error)
	Current() (domain.Catalog, bool)
	Products() []domain.Product
	WarmBarcodes(ctx context.Context) int
}

func NewCatalogService(renderer PlacardRenderer) *SimpleCatalogService {
	return &SimpleCatalogService{renderer: renderer}
}

var _ CatalogService = &SimpleCatalogService{}

type SimpleCatalogService struct {
	mu       sync.RWMutex
	renderer PlacardRenderer
	catalog  *domain.Catalog
}

// Upload proxies the file to the rendering service and keeps the parsed
// preview. The extension gate runs before any network call.
func (s *SimpleCatalogService) Upload(ctx context.Context, filename string, file io.Reader) (domain.Catalog, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedCatalogExtensions[ext] {
		return domain.Catalog{}, ErrUnsupportedFileType
	}

	catalog, err := s.renderer.UploadCatalog(ctx, filename, file)
	if err != nil {
		slog.Error("uploading catalog", slog.String("filename", filename), slog.String("error", err.Error()))
		return domain.Catalog{}, fmt.Errorf("uploading catalog: %w", err)
	}

	s.mu.Lock()
	s.catalog = &catalog
	s.mu.Unlock()

	slog.Info("catalog uploaded",
		slog.String("filename", catalog.Filename),
		slog.Int("total_products", catalog.TotalProducts),
		slog.Int("total_problems", catalog.TotalProblems))

	return catalog, nil
}

func (s *SimpleCatalogService) Current() (domain.Catalog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return domain.Catalog{}, false
	}
	return *s.catalog, true
}

func (s *SimpleCatalogService) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil
	}
	return s.catalog.Products
}

// WarmBarcodes asks the rendering service to pre-generate barcode images,
// one product at a time in upload order. Products without a well-formed
// EAN-13 code are skipped silently; per-code failures are logged and do
// not stop the run. Returns the number of codes generated.
func (s *SimpleCatalogService) WarmBarcodes(ctx context.Context) int {
	generated := 0
	for _, product := range s.Products() {
		if !product.HasEAN13() {
			continue
		}

		if err := s.renderer.GenerateBarcode(ctx, product.Barcode); err != nil {
			slog.Warn("generating barcode",
				slog.String("code", product.Barcode),
				slog.String("error", err.Error()))
			continue
		}
		generated++
	}

	slog.Info("barcode warm-up finished", slog.Int("generated", generated))
	return generated
}
