package service

import (
	"errors"
	"fmt"
	"strings"

	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerService writes answers and notes on a one-on-one
type AnswerService struct {
	repo         repository.AnswerRepositoryInterface
	sessionRepo  repository.OneOnOneRepositoryInterface
	questionRepo repository.QuestionRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	validator    *validator.Validate
}

// NewAnswerService creates a new answer service
func NewAnswerService(repo repository.AnswerRepositoryInterface, sessionRepo repository.OneOnOneRepositoryInterface, questionRepo repository.QuestionRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *AnswerService {
	return &AnswerService{
		repo:         repo,
		sessionRepo:  sessionRepo,
		questionRepo: questionRepo,
		userRepo:     userRepo,
		validator:    validator,
	}
}

// SubmitAnswerRequest represents a single answer
type SubmitAnswerRequest struct {
	OneOnOneID uuid.UUID          `json:"one_on_one_id" validate:"required"`
	QuestionID uuid.UUID          `json:"question_id" validate:"required"`
	AnswerType models.Participant `json:"answer_type" validate:"required,oneof=developer manager"`
	Rating     *int               `json:"rating,omitempty"`
	TextAnswer *string            `json:"text_answer,omitempty" validate:"omitempty,max=5000"`
}

// AnswerInput is one entry of a batch
type AnswerInput struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	Rating     *int      `json:"rating,omitempty"`
	TextAnswer *string   `json:"text_answer,omitempty" validate:"omitempty,max=5000"`
}

// SubmitAnswersRequest represents several answers of one participant, stored all or nothing
type SubmitAnswersRequest struct {
	OneOnOneID uuid.UUID          `json:"one_on_one_id" validate:"required"`
	AnswerType models.Participant `json:"answer_type" validate:"required,oneof=developer manager"`
	Answers    []AnswerInput      `json:"answers" validate:"required,min=1,dive"`
}

// SaveNoteRequest represents a note write
type SaveNoteRequest struct {
	OneOnOneID uuid.UUID       `json:"one_on_one_id" validate:"required"`
	NoteType   models.NoteType `json:"note_type" validate:"required,oneof=developer_notes manager_feedback"`
	Content    string          `json:"content" validate:"max=10000"`
}

// writableSession loads a session and checks actor may write on the given side of it
func (s *AnswerService) writableSession(actor *models.User, id uuid.UUID, side models.Participant) (*models.OneOnOne, error) {
	session, err := s.sessionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOneOnOneNotFound
		}
		return nil, fmt.Errorf("failed to get one-on-one: %w", err)
	}
	if err := RequireAuthorOf(actor, session, side); err != nil {
		return nil, err
	}
	if session.Status == models.OneOnOneStatusCompleted {
		return nil, apperrors.ErrOneOnOneLocked
	}
	return session, nil
}

// applicable reports whether a question may be answered in a session of a developer with the given teams
func applicable(q *models.Question, developerTeams []uuid.UUID) bool {
	if !q.IsActive {
		return false
	}
	if q.Scope != models.QuestionScopeTeam {
		return true
	}
	if q.TeamID == nil {
		return false
	}
	for _, id := range developerTeams {
		if id == *q.TeamID {
			return true
		}
	}
	return false
}

// checkAnswerValue validates the rating or text against the question type
func checkAnswerValue(q *models.Question, rating *int, text *string) error {
	switch {
	case q.QuestionType.IsRating():
		if rating == nil || *rating < 1 || *rating > q.QuestionType.MaxRating() {
			return apperrors.NewValidationError("rating", fmt.Sprintf("must be between 1 and %d", q.QuestionType.MaxRating()))
		}
	case q.QuestionType == models.QuestionTypeYesNo:
		if rating != nil || text == nil || (*text != "yes" && *text != "no") {
			return apperrors.NewValidationError("text_answer", `must be "yes" or "no"`)
		}
	default:
		if rating != nil {
			return apperrors.ErrInvalidAnswer
		}
		if text == nil || strings.TrimSpace(*text) == "" {
			return apperrors.NewValidationError("text_answer", "is required")
		}
	}
	return nil
}

func (s *AnswerService) buildAnswers(session *models.OneOnOne, side models.Participant, inputs []AnswerInput) ([]models.Answer, error) {
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.QuestionID)
	}
	questions, err := s.questionRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	byID := make(map[uuid.UUID]*models.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	teamIDs, err := s.userRepo.GetTeamIDs(session.DeveloperID)
	if err != nil {
		return nil, fmt.Errorf("failed to get developer teams: %w", err)
	}

	answers := make([]models.Answer, 0, len(inputs))
	for _, in := range inputs {
		q, ok := byID[in.QuestionID]
		if !ok {
			return nil, apperrors.ErrQuestionNotFound
		}
		if !applicable(q, teamIDs) {
			return nil, apperrors.ErrQuestionNotApplicable
		}
		if err := checkAnswerValue(q, in.Rating, in.TextAnswer); err != nil {
			return nil, err
		}
		answers = append(answers, models.Answer{
			OneOnOneID: session.ID,
			QuestionID: q.ID,
			AnswerType: side,
			Rating:     in.Rating,
			TextAnswer: in.TextAnswer,
		})
	}
	return answers, nil
}

// SubmitAnswer creates or replaces the actor's answer to one question
func (s *AnswerService) SubmitAnswer(actor *models.User, req *SubmitAnswerRequest) (*models.Answer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	session, err := s.writableSession(actor, req.OneOnOneID, req.AnswerType)
	if err != nil {
		return nil, err
	}

	answers, err := s.buildAnswers(session, req.AnswerType, []AnswerInput{{
		QuestionID: req.QuestionID, Rating: req.Rating, TextAnswer: req.TextAnswer,
	}})
	if err != nil {
		return nil, err
	}
	answer := &answers[0]
	if err := s.repo.Upsert(answer); err != nil {
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}
	return answer, nil
}

// SubmitAnswers stores a batch of answers in one transaction
func (s *AnswerService) SubmitAnswers(actor *models.User, req *SubmitAnswersRequest) ([]models.Answer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	session, err := s.writableSession(actor, req.OneOnOneID, req.AnswerType)
	if err != nil {
		return nil, err
	}

	answers, err := s.buildAnswers(session, req.AnswerType, req.Answers)
	if err != nil {
		return nil, err
	}
	saved, err := s.repo.UpsertBatch(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to save answers: %w", err)
	}
	return saved, nil
}

// SaveNote creates or replaces the developer notes or the manager feedback of a session
func (s *AnswerService) SaveNote(actor *models.User, req *SaveNoteRequest) (*models.Note, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.writableSession(actor, req.OneOnOneID, req.NoteType.Author()); err != nil {
		return nil, err
	}

	note := &models.Note{
		OneOnOneID: req.OneOnOneID,
		NoteType:   req.NoteType,
		Content:    req.Content,
		CreatedBy:  actor.ID,
	}
	if err := s.repo.UpsertNote(note); err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}
	return note, nil
}
