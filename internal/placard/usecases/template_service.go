package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"placard-server/internal/placard/domain"
)

//go:generate mockgen -source=template_service.go -destination=../../../test/unit/doubles/placard/usecases/template_service_mock.go -package=usecases -mock_names=TemplateService=MockTemplateService

// TemplateService is the sole owner of the session's TemplateConfig. The
// editing surface never keeps its own copy; it reads the current value
// and requests mutations through Dispatch.
type TemplateService interface {
	Get() domain.TemplateConfig
	Dispatch(action Action) (domain.TemplateConfig, error)
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	LoadProfile(ctx context.Context, name string) (domain.TemplateConfig, error)
	SaveProfile(ctx context.Context, name string) (domain.Profile, error)
	DeleteProfile(ctx context.Context, name string) error
}

func NewTemplateService(profiles ProfileRepository) *SimpleTemplateService {
	return &SimpleTemplateService{
		profiles: profiles,
		current:  domain.DefaultTemplateConfig(),
	}
}

var _ TemplateService = &SimpleTemplateService{}

type SimpleTemplateService struct {
	mu       sync.RWMutex
	profiles ProfileRepository
	current  domain.TemplateConfig
}

func (s *SimpleTemplateService) Get() domain.TemplateConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Dispatch applies one action through the reducer and stores the result.
// It is synchronous and never calls out.
func (s *SimpleTemplateService) Dispatch(action Action) (domain.TemplateConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := reduce(s.current, action)
	if err != nil {
		return domain.TemplateConfig{}, err
	}

	s.current = next
	return next.Clone(), nil
}

func (s *SimpleTemplateService) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		slog.Error("listing profiles", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	return profiles, nil
}

// LoadProfile fetches a named profile and replaces the current config
// wholesale. The repository inflates stored profiles over the built-in
// defaults, so keys absent from the persisted record keep their default.
func (s *SimpleTemplateService) LoadProfile(ctx context.Context, name string) (domain.TemplateConfig, error) {
	profile, err := s.profiles.Get(ctx, name)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return domain.TemplateConfig{}, ErrProfileNotFound
		}
		slog.Error("loading profile", slog.String("name", name), slog.String("error", err.Error()))
		return domain.TemplateConfig{}, fmt.Errorf("loading profile: %w", err)
	}

	s.mu.Lock()
	s.current = profile.Config.Clone()
	s.mu.Unlock()

	slog.Info("profile loaded", slog.String("name", name))
	return profile.Config, nil
}

func (s *SimpleTemplateService) SaveProfile(ctx context.Context, name string) (domain.Profile, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return domain.Profile{}, ErrEmptyProfileName
	}

	profile, err := s.profiles.Save(ctx, trimmed, s.Get())
	if err != nil {
		slog.Error("saving profile", slog.String("name", trimmed), slog.String("error", err.Error()))
		return domain.Profile{}, fmt.Errorf("saving profile: %w", err)
	}

	slog.Info("profile saved", slog.String("name", trimmed))
	return profile, nil
}

func (s *SimpleTemplateService) DeleteProfile(ctx context.Context, name string) error {
	err := s.profiles.Delete(ctx, name)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return ErrProfileNotFound
		}
		slog.Error("deleting profile", slog.String("name", name), slog.String("error", err.Error()))
		return fmt.Errorf("deleting profile: %w", err)
	}

	slog.Info("profile deleted", slog.String("name", name))
	return nil
}
