package service

import (
	"context"

	"coachpulse/internal/model"
	"coachpulse/internal/repository"
)

// QuestionService handles question library CRUD operations
type QuestionService struct {
	questionRepo repository.QuestionRepo
}

// NewQuestionService creates a new question service
func NewQuestionService(questionRepo repository.QuestionRepo) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
	}
}

// Create creates a new question
func (s *QuestionService) Create(ctx context.Context, question *model.Question) (string, error) {
	return s.questionRepo.Create(ctx, question)
}

// GetByID retrieves a question by id
func (s *QuestionService) GetByID(ctx context.Context, id string) (*model.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// GetByCoachID retrieves all questions for a coach
func (s *QuestionService) GetByCoachID(ctx context.Context, coachID string) ([]*model.Question, error) {
	return s.questionRepo.GetByCoachID(ctx, coachID)
}

// Update updates an existing question. Historical check-ins keep their
// stored scores; the change applies to future scoring only.
func (s *QuestionService) Update(ctx context.Context, question *model.Question) error {
	return s.questionRepo.Update(ctx, question)
}

// Delete deletes a question. Answers referencing it are skipped by the
// aggregator from then on.
func (s *QuestionService) Delete(ctx context.Context, id string) error {
	return s.questionRepo.Delete(ctx, id)
}
