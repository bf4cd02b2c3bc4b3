package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

//go:generate mockgen -source=preview_service.go -destination=../../../test/unit/doubles/placard/usecases/preview_service_mock.go -package=usecases -mock_names=PreviewService=MockPreviewService

// PreviewService keeps a zero-based cursor over the loaded products and
// requests one rendered preview at a time. Navigation saturates at both
// ends instead of wrapping.
type PreviewService interface {
	Current() int
	Total() int
	Next() int
	Previous() int
	Select(index int) int
	RenderCurrent(ctx context.Context) (string, error)
}

func NewPreviewService(catalog CatalogService, templates TemplateService, renderer PlacardRenderer) *SimplePreviewService {
	return &SimplePreviewService{
		catalog:   catalog,
		templates: templates,
		renderer:  renderer,
	}
}

var _ PreviewService = &SimplePreviewService{}

type SimplePreviewService struct {
	mu        sync.Mutex
	catalog   CatalogService
	templates TemplateService
	renderer  PlacardRenderer
	cursor    int
}

func (s *SimplePreviewService) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clamped(s.cursor)
}

func (s *SimplePreviewService) Total() int {
	return len(s.catalog.Products())
}

func (s *SimplePreviewService) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = s.clamped(s.cursor + 1)
	return s.cursor
}

func (s *SimplePreviewService) Previous() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = s.clamped(s.cursor - 1)
	return s.cursor
}

func (s *SimplePreviewService) Select(index int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = s.clamped(index)
	return s.cursor
}

// RenderCurrent sends the current product and the full template config to
// the renderer and returns the preview URL. The renderer's verdict on the
// product is authoritative; this component only surfaces it.
func (s *SimplePreviewService) RenderCurrent(ctx context.Context) (string, error) {
	products := s.catalog.Products()
	if len(products) == 0 {
		return "", ErrNoCatalogLoaded
	}

	index := s.Current()
	previewURL, err := s.renderer.RenderPreview(ctx, products[index], s.templates.Get())
	if err != nil {
		slog.Error("rendering preview", slog.Int("index", index), slog.String("error", err.Error()))
		return "", fmt.Errorf("rendering preview: %w", err)
	}

	return previewURL, nil
}

// clamped bounds an index to [0, len-1]; with no products it pins to 0.
func (s *SimplePreviewService) clamped(index int) int {
	total := len(s.catalog.Products())
	if total == 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= total {
		return total - 1
	}
	return index
}
