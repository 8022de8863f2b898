package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"coachpulse/internal/model"
	"coachpulse/internal/repository"
)

// DefaultFreshnessWindowDays is how long a stored analysis stays reusable
const DefaultFreshnessWindowDays = 7

// insightHistoryLimit caps how many check-ins feed one analysis
const insightHistoryLimit = 12

var ErrClientNotFound = errors.New("client not found")

// insightGenerator is the external analysis collaborator
type insightGenerator interface {
	Generate(ctx context.Context, client *model.Client, history []*model.CheckIn) (*model.ClientInsights, error)
}

// InsightService owns the reuse-or-regenerate decision for cached client
// analyses. Regeneration may run concurrently for the same client; there is
// no distributed lock, and last write wins on generatedAt ordering. This is
// a freshness cache, not a ledger.
type InsightService struct {
	clientRepo   repository.ClientRepo
	checkInRepo  repository.CheckInRepo
	analysisRepo repository.AnalysisRepo
	generator    insightGenerator
	broadcaster  Broadcaster
	windowDays   int
	now          func() time.Time
}

// NewInsightService creates a new insight service
func NewInsightService(
	clientRepo repository.ClientRepo,
	checkInRepo repository.CheckInRepo,
	analysisRepo repository.AnalysisRepo,
	generator *InsightGenerator,
	windowDays int,
) *InsightService {
	if windowDays <= 0 {
		windowDays = DefaultFreshnessWindowDays
	}
	return &InsightService{
		clientRepo:   clientRepo,
		checkInRepo:  checkInRepo,
		analysisRepo: analysisRepo,
		generator:    generator,
		windowDays:   windowDays,
		now:          time.Now,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *InsightService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// ShouldReuse reports whether an existing analysis is still inside the
// freshness window
func ShouldReuse(existing *model.CachedAnalysis, windowDays int, now time.Time) bool {
	if existing == nil {
		return false
	}
	return existing.AgeDays(now) < float64(windowDays)
}

// GetInsights returns the client's analysis, reusing the stored artifact
// when fresh and regenerating otherwise. force skips the freshness check.
func (s *InsightService) GetInsights(ctx context.Context, clientID string, force bool) (*model.InsightsResponse, error) {
	existing, err := s.analysisRepo.FindLatestByClient(ctx, clientID)
	if err != nil {
		// A broken read path must not block regeneration
		log.Printf("analysis lookup failed for client %s: %v", clientID, err)
		existing = nil
	}

	if !force && ShouldReuse(existing, s.windowDays, s.now()) {
		return insightsResponse(existing, false), nil
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return s.staleOrError(existing, clientID, fmt.Errorf("failed to load client: %w", err))
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	history, err := s.checkInRepo.GetRecentByClient(ctx, clientID, insightHistoryLimit)
	if err != nil {
		return s.staleOrError(existing, clientID, fmt.Errorf("failed to load check-in history: %w", err))
	}

	analysis, err := s.generator.Generate(ctx, client, history)
	if err != nil {
		return s.staleOrError(existing, clientID, err)
	}

	fresh := &model.CachedAnalysis{
		ClientID:     clientID,
		Analysis:     *analysis,
		GeneratedAt:  s.now(),
		CheckInCount: len(history),
	}
	if len(history) > 0 {
		fresh.LatestScore = history[0].Score
	}

	s.upsert(ctx, existing, fresh)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToCoach(client.CoachID, "insights_ready", map[string]interface{}{
			"clientId":    clientID,
			"generatedAt": fresh.GeneratedAt,
		})
	}

	return insightsResponse(fresh, false), nil
}

// upsert persists the regenerated analysis, updating the prior record in
// place when one exists. Best-effort: the caller already holds the fresh
// result, so a persistence failure is logged and swallowed.
func (s *InsightService) upsert(ctx context.Context, existing, fresh *model.CachedAnalysis) {
	var err error
	if existing != nil {
		fresh.ID = existing.ID
		err = s.analysisRepo.Update(ctx, existing.ID, fresh)
	} else {
		err = s.analysisRepo.Insert(ctx, fresh)
	}
	if err != nil {
		log.Printf("failed to persist analysis for client %s: %v", fresh.ClientID, err)
	}
}

// staleOrError serves the prior analysis when regeneration fails and a
// usable record exists; otherwise the failure propagates to the caller
func (s *InsightService) staleOrError(existing *model.CachedAnalysis, clientID string, err error) (*model.InsightsResponse, error) {
	if existing != nil {
		log.Printf("insight regeneration failed for client %s, serving stale analysis: %v", clientID, err)
		return insightsResponse(existing, true), nil
	}
	return nil, err
}

func insightsResponse(a *model.CachedAnalysis, stale bool) *model.InsightsResponse {
	return &model.InsightsResponse{
		ClientID:    a.ClientID,
		Analysis:    a.Analysis,
		GeneratedAt: a.GeneratedAt,
		Stale:       stale,
	}
}
