package service

import (
	"context"
	"sync"

	"coachpulse/internal/model"
)

// In-memory fakes for the repository and cache interfaces, shared across
// the service tests.

type fakeClientRepo struct {
	mu      sync.Mutex
	clients map[string]*model.Client
	configs map[string]*model.ScoringConfig
	getErr  error
}

func newFakeClientRepo(clients ...*model.Client) *fakeClientRepo {
	r := &fakeClientRepo{
		clients: make(map[string]*model.Client),
		configs: make(map[string]*model.ScoringConfig),
	}
	for _, c := range clients {
		r.clients[c.ID] = c
	}
	return r
}

func (r *fakeClientRepo) Create(_ context.Context, client *model.Client) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[client.ID] = client
	return client.ID, nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.clients[id], nil
}

func (r *fakeClientRepo) GetByCoachID(_ context.Context, coachID string) ([]*model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Client
	for _, c := range r.clients {
		if c.CoachID == coachID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) GetScoringConfig(_ context.Context, clientID string) (*model.ScoringConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.clients[clientID]; ok {
		return c.Scoring, nil
	}
	return nil, nil
}

func (r *fakeClientRepo) SetScoringConfig(_ context.Context, clientID string, cfg *model.ScoringConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[clientID] = cfg
	if c, ok := r.clients[clientID]; ok {
		c.Scoring = cfg
	}
	return nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *model.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[client.ID] = client
	return nil
}

type fakeCheckInRepo struct {
	mu       sync.Mutex
	checkIns []*model.CheckIn
	nextID   int
	getErr   error
}

func (r *fakeCheckInRepo) Create(_ context.Context, checkIn *model.CheckIn) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	if checkIn.ID == "" {
		checkIn.ID = "ci_" + string(rune('0'+r.nextID))
	}
	r.checkIns = append(r.checkIns, checkIn)
	return checkIn.ID, nil
}

func (r *fakeCheckInRepo) GetByID(_ context.Context, id string) (*model.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.checkIns {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCheckInRepo) GetRecentByClient(_ context.Context, clientID string, limit int) ([]*model.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	var out []*model.CheckIn
	for i := len(r.checkIns) - 1; i >= 0; i-- {
		if r.checkIns[i].ClientID == clientID {
			out = append(out, r.checkIns[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeCheckInRepo) CountByClient(_ context.Context, clientID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, c := range r.checkIns {
		if c.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

type fakeAnalysisRepo struct {
	mu        sync.Mutex
	records   map[string]*model.CachedAnalysis // keyed by record id
	nextID    int
	findErr   error
	insertErr error
	updateErr error
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{records: make(map[string]*model.CachedAnalysis)}
}

func (r *fakeAnalysisRepo) FindLatestByClient(_ context.Context, clientID string) (*model.CachedAnalysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	var latest *model.CachedAnalysis
	for _, a := range r.records {
		if a.ClientID != clientID {
			continue
		}
		if latest == nil || a.GeneratedAt.After(latest.GeneratedAt) {
			latest = a
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *fakeAnalysisRepo) Insert(_ context.Context, analysis *model.CachedAnalysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	r.nextID++
	if analysis.ID == "" {
		analysis.ID = "an_" + string(rune('0'+r.nextID))
	}
	cp := *analysis
	r.records[analysis.ID] = &cp
	return nil
}

func (r *fakeAnalysisRepo) Update(_ context.Context, id string, analysis *model.CachedAnalysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *analysis
	cp.ID = id
	r.records[id] = &cp
	return nil
}

func (r *fakeAnalysisRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

type fakeGenerator struct {
	mu     sync.Mutex
	calls  int
	err    error
	result *model.ClientInsights
}

func (g *fakeGenerator) Generate(_ context.Context, _ *model.Client, _ []*model.CheckIn) (*model.ClientInsights, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	if g.result != nil {
		cp := *g.result
		return &cp, nil
	}
	return &model.ClientInsights{Summary: "fresh analysis"}, nil
}

func (g *fakeGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type fakeThresholdCache struct {
	mu    sync.Mutex
	store map[string]model.ScoringThresholds
}

func newFakeThresholdCache() *fakeThresholdCache {
	return &fakeThresholdCache{store: make(map[string]model.ScoringThresholds)}
}

func (c *fakeThresholdCache) Get(_ context.Context, clientID string) (*model.ScoringThresholds, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.store[clientID]; ok {
		return &t, nil
	}
	return nil, nil
}

func (c *fakeThresholdCache) Set(_ context.Context, clientID string, t model.ScoringThresholds) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[clientID] = t
	return nil
}

func (c *fakeThresholdCache) Invalidate(_ context.Context, clientID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, clientID)
	return nil
}

type fakeScoreCache struct {
	mu    sync.Mutex
	store map[string]*model.ScoreSummary
}

func newFakeScoreCache() *fakeScoreCache {
	return &fakeScoreCache{store: make(map[string]*model.ScoreSummary)}
}

func (c *fakeScoreCache) GetSummary(_ context.Context, clientID string) (*model.ScoreSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store[clientID], nil
}

func (c *fakeScoreCache) SetSummary(_ context.Context, summary *model.ScoreSummary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[summary.ClientID] = summary
	return nil
}

type fakeCaseloadCache struct {
	mu     sync.Mutex
	scores map[string]map[string]int // coachID -> clientID -> score
}

func newFakeCaseloadCache() *fakeCaseloadCache {
	return &fakeCaseloadCache{scores: make(map[string]map[string]int)}
}

func (c *fakeCaseloadCache) UpdateScore(_ context.Context, coachID, clientID string, score int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scores[coachID] == nil {
		c.scores[coachID] = make(map[string]int)
	}
	c.scores[coachID][clientID] = score
	return nil
}

func (c *fakeCaseloadCache) GetAtRisk(_ context.Context, coachID string, limit int) ([]model.CaseloadEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []model.CaseloadEntry
	for clientID, score := range c.scores[coachID] {
		out = append(out, model.CaseloadEntry{ClientID: clientID, Score: score})
	}
	return out, nil
}

func (c *fakeCaseloadCache) Remove(_ context.Context, coachID, clientID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.scores[coachID], clientID)
	return nil
}

type fakeQuestionRepo struct {
	questions map[string]*model.Question
}

func newFakeQuestionRepo(questions ...*model.Question) *fakeQuestionRepo {
	r := &fakeQuestionRepo{questions: make(map[string]*model.Question)}
	for _, q := range questions {
		r.questions[q.ID] = q
	}
	return r
}

func (r *fakeQuestionRepo) Create(_ context.Context, q *model.Question) (string, error) {
	r.questions[q.ID] = q
	return q.ID, nil
}

func (r *fakeQuestionRepo) GetByID(_ context.Context, id string) (*model.Question, error) {
	return r.questions[id], nil
}

func (r *fakeQuestionRepo) GetByIDs(_ context.Context, ids []string) (map[string]*model.Question, error) {
	out := make(map[string]*model.Question)
	for _, id := range ids {
		if q, ok := r.questions[id]; ok {
			out[id] = q
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) GetByCoachID(_ context.Context, coachID string) ([]*model.Question, error) {
	var out []*model.Question
	for _, q := range r.questions {
		if q.CoachID == coachID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) Update(_ context.Context, q *model.Question) error {
	r.questions[q.ID] = q
	return nil
}

func (r *fakeQuestionRepo) Delete(_ context.Context, id string) error {
	delete(r.questions, id)
	return nil
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (b *fakeBroadcaster) BroadcastToCoach(_ string, msgType string, _ interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, msgType)
}

func (b *fakeBroadcaster) BroadcastToClient(_ string, msgType string, _ interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, msgType)
}

func (b *fakeBroadcaster) received(msgType string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.events {
		if e == msgType {
			return true
		}
	}
	return false
}
