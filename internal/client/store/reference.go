package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/sjhoeksma/myfleetboatrobot/internal/client/api"
	"github.com/sjhoeksma/myfleetboatrobot/internal/client/models"
	"github.com/sjhoeksma/myfleetboatrobot/internal/logging"
)

// BoatStore holds the read-only boat name collection driving input
// suggestions.
type BoatStore struct {
	collection[string]

	api api.Client
	log logging.Logger
}

func NewBoatStore(c api.Client, log logging.Logger) *BoatStore {
	return &BoatStore{api: c, log: log.With("kind", "boat")}
}

func (s *BoatStore) Refresh(ctx context.Context) error {
	items, err := s.api.Boats(ctx)
	if err != nil {
		s.failRefresh()
		s.log.Warn(ctx, "refresh failed", "error", err)
		return fmt.Errorf("refresh boats: %w", err)
	}
	s.replace(items)
	return nil
}

// TargetStore holds the read-only notification-target collection.
type TargetStore struct {
	collection[models.WhatsAppTo]

	api api.Client
	log logging.Logger
}

func NewTargetStore(c api.Client, log logging.Logger) *TargetStore {
	return &TargetStore{api: c, log: log.With("kind", "whatsappto")}
}

func (s *TargetStore) Refresh(ctx context.Context) error {
	items, err := s.api.WhatsAppTargets(ctx)
	if err != nil {
		s.failRefresh()
		s.log.Warn(ctx, "refresh failed", "error", err)
		return fmt.Errorf("refresh notification targets: %w", err)
	}
	s.replace(items)
	return nil
}

// ConfigStore holds the server-owned Config singleton. It is fetched on
// mount and after every login/logout, never mutated locally.
type ConfigStore struct {
	api api.Client
	log logging.Logger

	mu         sync.Mutex
	config     models.Config
	loaded     bool
	connFailed bool
}

func NewConfigStore(c api.Client, log logging.Logger) *ConfigStore {
	return &ConfigStore{api: c, log: log.With("kind", "config")}
}

func (s *ConfigStore) Refresh(ctx context.Context) error {
	cfg, err := s.api.Config(ctx)
	if err != nil {
		s.mu.Lock()
		s.connFailed = true
		s.mu.Unlock()
		s.log.Warn(ctx, "refresh failed", "error", err)
		return fmt.Errorf("refresh config: %w", err)
	}
	s.mu.Lock()
	s.config = cfg
	s.loaded = true
	s.connFailed = false
	s.mu.Unlock()
	return nil
}

// Config returns the last fetched configuration and whether one has been
// loaded at all.
func (s *ConfigStore) Config() (models.Config, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config, s.loaded
}

func (s *ConfigStore) ConnectionFailed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connFailed
}
