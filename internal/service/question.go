package service

import (
	"errors"
	"fmt"

	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionService serves the question catalogue. Questions are seeded, never written through the API.
type QuestionService struct {
	repo        repository.QuestionRepositoryInterface
	sessionRepo repository.OneOnOneRepositoryInterface
	userRepo    repository.UserRepositoryInterface
}

// NewQuestionService creates a new question service
func NewQuestionService(repo repository.QuestionRepositoryInterface, sessionRepo repository.OneOnOneRepositoryInterface, userRepo repository.UserRepositoryInterface) *QuestionService {
	return &QuestionService{repo: repo, sessionRepo: sessionRepo, userRepo: userRepo}
}

// ListForTeam returns the active company questions, plus the team's own when teamID is set
func (s *QuestionService) ListForTeam(teamID *uuid.UUID) ([]models.Question, error) {
	var teamIDs []uuid.UUID
	if teamID != nil {
		teamIDs = []uuid.UUID{*teamID}
	}
	questions, err := s.repo.ListActive(teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// ListForSession returns the questions that apply to a session: company questions and
// the questions of every team its developer belongs to.
func (s *QuestionService) ListForSession(actor *models.User, sessionID uuid.UUID) ([]models.Question, error) {
	session, err := s.sessionRepo.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOneOnOneNotFound
		}
		return nil, fmt.Errorf("failed to get one-on-one: %w", err)
	}
	if err := RequireSessionParticipant(actor, session); err != nil {
		return nil, err
	}

	teamIDs, err := s.userRepo.GetTeamIDs(session.DeveloperID)
	if err != nil {
		return nil, fmt.Errorf("failed to get developer teams: %w", err)
	}
	questions, err := s.repo.ListActive(teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}
