package service

import (
	"context"
	"fmt"
	"log"

	"coachpulse/internal/cache"
	"coachpulse/internal/model"
	"coachpulse/internal/repository"
	"coachpulse/internal/scoring"
)

// ClientService handles client management and threshold configuration
type ClientService struct {
	clientRepo     repository.ClientRepo
	thresholdCache cache.ThresholdCache
	caseload       cache.CaseloadCache
	resolver       *scoring.ThresholdResolver
}

// NewClientService creates a new client service
func NewClientService(
	clientRepo repository.ClientRepo,
	thresholdCache cache.ThresholdCache,
	caseload cache.CaseloadCache,
) *ClientService {
	return &ClientService{
		clientRepo:     clientRepo,
		thresholdCache: thresholdCache,
		caseload:       caseload,
		resolver:       scoring.NewThresholdResolver(),
	}
}

// Create creates a new client for a coach
func (s *ClientService) Create(ctx context.Context, client *model.Client) (string, error) {
	return s.clientRepo.Create(ctx, client)
}

// GetByID retrieves a client by id
func (s *ClientService) GetByID(ctx context.Context, id string) (*model.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

// GetByCoachID retrieves all clients for a coach
func (s *ClientService) GetByCoachID(ctx context.Context, coachID string) ([]*model.Client, error) {
	return s.clientRepo.GetByCoachID(ctx, coachID)
}

// GetThresholds resolves a client's thresholds from their stored
// configuration, whatever historical shape it is in
func (s *ClientService) GetThresholds(ctx context.Context, clientID string) (*model.ScoringThresholds, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	resolved := s.resolver.Resolve(client.Scoring)
	return &resolved, nil
}

// UpdateThresholds stores a new scoring configuration and returns the
// resolved canonical thresholds. The cached resolution is invalidated so
// the next scoring call picks up the change.
func (s *ClientService) UpdateThresholds(ctx context.Context, clientID string, cfg *model.ScoringConfig) (*model.ScoringThresholds, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	if err := s.clientRepo.SetScoringConfig(ctx, clientID, cfg); err != nil {
		return nil, fmt.Errorf("failed to store scoring config: %w", err)
	}
	if err := s.thresholdCache.Invalidate(ctx, clientID); err != nil {
		log.Printf("failed to invalidate threshold cache for client %s: %v", clientID, err)
	}

	resolved := s.resolver.Resolve(cfg)
	return &resolved, nil
}

// GetCaseload returns the coach's clients ordered by latest score,
// lowest first
func (s *ClientService) GetCaseload(ctx context.Context, coachID string, limit int) ([]model.CaseloadEntry, error) {
	return s.caseload.GetAtRisk(ctx, coachID, limit)
}
