package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/printdesk/printdesk/internal/platform/kvstore"
)

// Service reads and writes the settings document wholesale.
type Service struct {
	store kvstore.Store
}

func NewService(store kvstore.Store) *Service {
	return &Service{store: store}
}

// Get returns the stored settings, falling back to Defaults when nothing
// has been saved yet.
func (s *Service) Get(ctx context.Context) (Settings, error) {
	var settings Settings
	if err := s.store.Get(ctx, kvstore.KeySettings, &settings); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return Defaults(), nil
		}
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// Save replaces the settings document.
func (s *Service) Save(ctx context.Context, settings Settings) error {
	if err := s.store.Set(ctx, kvstore.KeySettings, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
