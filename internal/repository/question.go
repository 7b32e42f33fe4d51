package repository

import (
	"one-on-one-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionRepository handles database operations for questions
type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Create creates a new question
func (r *QuestionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

// GetByID retrieves a question by ID
func (r *QuestionRepository) GetByID(id uuid.UUID) (*models.Question, error) {
	var question models.Question
	err := r.db.First(&question, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// GetByIDs retrieves the questions with the given ids; missing ids are ignored
func (r *QuestionRepository) GetByIDs(ids []uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	if len(ids) == 0 {
		return questions, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}

// ListActive returns active company questions plus active questions of the given teams
func (r *QuestionRepository) ListActive(teamIDs []uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	query := r.db.Where("is_active = ?", true)
	if len(teamIDs) > 0 {
		query = query.Where("scope = ? OR (scope = ? AND team_id IN ?)", models.QuestionScopeCompany, models.QuestionScopeTeam, teamIDs)
	} else {
		query = query.Where("scope = ?", models.QuestionScopeCompany)
	}
	err := query.Order("sort_order ASC").Order("created_at ASC").Find(&questions).Error
	return questions, err
}
