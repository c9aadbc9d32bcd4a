package snapshot

import (
	"context"
	"fmt"
	"strings"

	"github.com/promptlab-io/labhub/internal/api"
	"github.com/promptlab-io/labhub/internal/db"
	"github.com/promptlab-io/labhub/internal/logging"
	"github.com/promptlab-io/labhub/internal/tokens"
)

// Backend is the slice of the API client the snapshot service needs.
type Backend interface {
	ListSessions(ctx context.Context) ([]api.Session, error)
	ListLabs(ctx context.Context, sessionID string) ([]api.PromptLab, error)
	ListPromptVersions(ctx context.Context, labID string) ([]api.PromptVersion, error)
}

// Store is the slice of the snapshot repository the service writes through.
type Store interface {
	UpsertSession(ctx context.Context, snapshot *db.SessionSnapshot) error
	HasVersion(ctx context.Context, labID string, version int) (bool, error)
	StoreVersion(ctx context.Context, record *db.PromptVersionRecord) error
	PruneSessions(ctx context.Context, keepIDs []string) (int, error)
}

type Service struct {
	cfg     Config
	store   Store
	backend Backend
	log     logging.Logger
}

func NewService(cfg Config, store Store, backend Backend, log logging.Logger) *Service {
	return &Service{cfg: cfg, store: store, backend: backend, log: log}
}

func (s *Service) Run(ctx context.Context) error {
	switch strings.ToUpper(s.cfg.Mode) {
	case "SESSIONS":
		_, err := s.syncSessions(ctx)
		return err
	case "PRUNE":
		return s.prune(ctx)
	case "FULL", "":
		return s.runFull(ctx)
	default:
		return fmt.Errorf("invalid snapshot mode: %s (must be FULL, SESSIONS, or PRUNE)", s.cfg.Mode)
	}
}

func (s *Service) runFull(ctx context.Context) error {
	sessions, err := s.syncSessions(ctx)
	if err != nil {
		return fmt.Errorf("session phase: %w", err)
	}
	if err := s.syncVersions(ctx, sessions); err != nil {
		return fmt.Errorf("version phase: %w", err)
	}
	return nil
}

func (s *Service) syncSessions(ctx context.Context) ([]api.Session, error) {
	sessions, err := s.backend.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if s.cfg.FetchMax > 0 && len(sessions) > s.cfg.FetchMax {
		sessions = sessions[:s.cfg.FetchMax]
	}

	stored := 0
	for _, session := range sessions {
		snapshot := &db.SessionSnapshot{
			ID:            session.ID,
			Name:          session.Name,
			Description:   session.Description,
			Status:        session.Status,
			InitialPrompt: session.InitialPrompt,
			CreatedAt:     session.CreatedAt,
			UpdatedAt:     session.UpdatedAt,
		}
		if err := s.store.UpsertSession(ctx, snapshot); err != nil {
			s.log.Error(err, "store session failed", "session", session.ID)
			continue
		}
		stored++
	}
	s.log.Info("sessions synced", "fetched", len(sessions), "stored", stored)
	return sessions, nil
}

func (s *Service) syncVersions(ctx context.Context, sessions []api.Session) error {
	stored := 0
	for _, session := range sessions {
		labs, err := s.backend.ListLabs(ctx, session.ID)
		if err != nil {
			s.log.Error(err, "list labs failed", "session", session.ID)
			continue
		}
		for _, lab := range labs {
			log := s.log.WithValues("lab", lab.ID)
			versions, err := s.backend.ListPromptVersions(ctx, lab.ID)
			if err != nil {
				log.Error(err, "list versions failed")
				continue
			}
			for _, version := range versions {
				exists, err := s.store.HasVersion(ctx, lab.ID, version.Version)
				if err != nil {
					return fmt.Errorf("check version %d of lab %s: %w", version.Version, lab.ID, err)
				}
				if exists {
					continue
				}
				record := &db.PromptVersionRecord{
					LabID:      lab.ID,
					Version:    version.Version,
					Content:    version.Content,
					Score:      version.Score,
					TokenCount: tokens.Estimate(version.Content),
					CreatedAt:  version.CreatedAt,
				}
				if err := s.store.StoreVersion(ctx, record); err != nil {
					return fmt.Errorf("store version %d of lab %s: %w", version.Version, lab.ID, err)
				}
				stored++
			}
		}
	}
	s.log.Info("prompt versions synced", "stored", stored)
	return nil
}

func (s *Service) prune(ctx context.Context) error {
	sessions, err := s.backend.ListSessions(ctx)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	ids := make([]string, 0, len(sessions))
	for _, session := range sessions {
		ids = append(ids, session.ID)
	}
	removed, err := s.store.PruneSessions(ctx, ids)
	if err != nil {
		return fmt.Errorf("prune sessions: %w", err)
	}
	s.log.Info("snapshot pruned", "kept", len(ids), "removed", removed)
	return nil
}
