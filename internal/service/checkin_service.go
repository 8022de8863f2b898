package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"coachpulse/internal/cache"
	"coachpulse/internal/model"
	"coachpulse/internal/repository"
	"coachpulse/internal/scoring"
)

// CheckInService handles check-in submission and scoring
type CheckInService struct {
	questionRepo   repository.QuestionRepo
	checkInRepo    repository.CheckInRepo
	clientRepo     repository.ClientRepo
	resolver       *scoring.ThresholdResolver
	thresholdCache cache.ThresholdCache
	scoreCache     cache.ScoreCache
	caseload       cache.CaseloadCache
	broadcaster    Broadcaster
}

// NewCheckInService creates a new check-in service
func NewCheckInService(
	questionRepo repository.QuestionRepo,
	checkInRepo repository.CheckInRepo,
	clientRepo repository.ClientRepo,
	thresholdCache cache.ThresholdCache,
	scoreCache cache.ScoreCache,
	caseload cache.CaseloadCache,
) *CheckInService {
	return &CheckInService{
		questionRepo:   questionRepo,
		checkInRepo:    checkInRepo,
		clientRepo:     clientRepo,
		resolver:       scoring.NewThresholdResolver(),
		thresholdCache: thresholdCache,
		scoreCache:     scoreCache,
		caseload:       caseload,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *CheckInService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SubmitCheckIn scores a submitted check-in, classifies it against the
// client's thresholds, and persists the result. Scoring never fails on bad
// answers; only missing clients or persistence failures surface as errors.
func (s *CheckInService) SubmitCheckIn(ctx context.Context, clientID string, req *model.SubmitCheckInRequest) (*model.CheckInResult, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	ids := make([]string, 0, len(req.Answers))
	for _, ans := range req.Answers {
		ids = append(ids, ans.QuestionID)
	}
	byID, err := s.questionRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	questions := make([]*model.Question, 0, len(byID))
	for _, q := range byID {
		questions = append(questions, q)
	}

	agg := scoring.Aggregate(questions, req.Answers)
	thresholds := s.resolveThresholds(ctx, client)
	status := scoring.Classify(agg.Percent, thresholds)

	checkIn := &model.CheckIn{
		ClientID:    clientID,
		CoachID:     client.CoachID,
		Answers:     req.Answers,
		Score:       agg.Percent,
		Band:        status.Band,
		SubmittedAt: time.Now(),
	}
	id, err := s.checkInRepo.Create(ctx, checkIn)
	if err != nil {
		return nil, fmt.Errorf("failed to persist check-in: %w", err)
	}

	s.refreshCaches(ctx, client, checkIn)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToCoach(client.CoachID, "checkin_scored", map[string]interface{}{
			"clientId": clientID,
			"score":    agg.Percent,
			"band":     string(status.Band),
		})
	}

	return &model.CheckInResult{
		CheckInID: id,
		Score:     agg.Percent,
		Status:    status,
		Submitted: checkIn.SubmittedAt,
	}, nil
}

// refreshCaches updates the score summary and caseload ranking.
// Best-effort: the check-in is already persisted.
func (s *CheckInService) refreshCaches(ctx context.Context, client *model.Client, checkIn *model.CheckIn) {
	count, err := s.checkInRepo.CountByClient(ctx, client.ID)
	if err != nil {
		log.Printf("failed to count check-ins for client %s: %v", client.ID, err)
	}

	summary := &model.ScoreSummary{
		ClientID:     client.ID,
		Score:        checkIn.Score,
		Band:         checkIn.Band,
		CheckInCount: int(count),
		SubmittedAt:  checkIn.SubmittedAt,
	}
	if err := s.scoreCache.SetSummary(ctx, summary); err != nil {
		log.Printf("failed to cache score summary for client %s: %v", client.ID, err)
	}
	if err := s.caseload.UpdateScore(ctx, client.CoachID, client.ID, checkIn.Score); err != nil {
		log.Printf("failed to update caseload for coach %s: %v", client.CoachID, err)
	}
}

// resolveThresholds never fails: a cache miss falls through to the stored
// configuration, and resolution always yields usable cut points
func (s *CheckInService) resolveThresholds(ctx context.Context, client *model.Client) model.ScoringThresholds {
	if cached, err := s.thresholdCache.Get(ctx, client.ID); err == nil && cached != nil {
		return *cached
	}

	resolved := s.resolver.Resolve(client.Scoring)

	if client.Scoring == nil {
		// Lazily persist the profile default so the coach sees explicit values
		if err := s.clientRepo.SetScoringConfig(ctx, client.ID, scoring.Canonical(resolved)); err != nil {
			log.Printf("failed to persist default thresholds for client %s: %v", client.ID, err)
		}
	}
	if err := s.thresholdCache.Set(ctx, client.ID, resolved); err != nil {
		log.Printf("failed to cache thresholds for client %s: %v", client.ID, err)
	}
	return resolved
}

// GetClientStatus returns the client's latest score summary and its band
// descriptors, preferring the cache over a Mongo read
func (s *CheckInService) GetClientStatus(ctx context.Context, clientID string) (*model.ScoreSummary, *model.Status, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load client: %w", err)
	}
	if client == nil {
		return nil, nil, ErrClientNotFound
	}
	thresholds := s.resolveThresholds(ctx, client)

	if summary, err := s.scoreCache.GetSummary(ctx, clientID); err == nil && summary != nil {
		status := scoring.Classify(summary.Score, thresholds)
		return summary, &status, nil
	}

	recent, err := s.checkInRepo.GetRecentByClient(ctx, clientID, 1)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load check-ins: %w", err)
	}
	if len(recent) == 0 {
		return nil, nil, nil
	}

	latest := recent[0]
	count, _ := s.checkInRepo.CountByClient(ctx, clientID)
	summary := &model.ScoreSummary{
		ClientID:     clientID,
		Score:        latest.Score,
		Band:         latest.Band,
		CheckInCount: int(count),
		SubmittedAt:  latest.SubmittedAt,
	}
	status := scoring.Classify(latest.Score, thresholds)
	return summary, &status, nil
}

// ListCheckIns returns the client's check-ins, newest first
func (s *CheckInService) ListCheckIns(ctx context.Context, clientID string, limit int) ([]*model.CheckIn, error) {
	return s.checkInRepo.GetRecentByClient(ctx, clientID, limit)
}
