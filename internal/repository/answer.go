package repository

import (
	"one-on-one-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AnswerRepository handles database operations for answers and notes
type AnswerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository creates a new answer repository
func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

// upsertAnswer writes the answer with INSERT ... ON CONFLICT on (session, question, type)
// and reloads it, so an existing row keeps its id.
func upsertAnswer(tx *gorm.DB, answer *models.Answer) error {
	err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "one_on_one_id"}, {Name: "question_id"}, {Name: "answer_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "text_answer", "updated_at"}),
	}).Create(answer).Error
	if err != nil {
		return err
	}

	var stored models.Answer
	err = tx.Where("one_on_one_id = ? AND question_id = ? AND answer_type = ?",
		answer.OneOnOneID, answer.QuestionID, answer.AnswerType).First(&stored).Error
	if err != nil {
		return err
	}
	*answer = stored
	return nil
}

// Upsert creates or replaces a participant's answer to a question
func (r *AnswerRepository) Upsert(answer *models.Answer) error {
	return upsertAnswer(r.db, answer)
}

// UpsertBatch upserts several answers in one transaction; either all are written or none
func (r *AnswerRepository) UpsertBatch(answers []models.Answer) ([]models.Answer, error) {
	saved := make([]models.Answer, len(answers))
	copy(saved, answers)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range saved {
			if err := upsertAnswer(tx, &saved[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// GetByOneOnOneID retrieves all answers of a session with their questions
func (r *AnswerRepository) GetByOneOnOneID(oneOnOneID uuid.UUID) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.Preload("Question").Where("one_on_one_id = ?", oneOnOneID).
		Order("created_at ASC").Find(&answers).Error
	return answers, err
}

// UpsertNote creates or replaces the note of a given type on a session
func (r *AnswerRepository) UpsertNote(note *models.Note) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "one_on_one_id"}, {Name: "note_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "created_by", "updated_at"}),
	}).Create(note).Error
	if err != nil {
		return err
	}

	var stored models.Note
	err = r.db.Where("one_on_one_id = ? AND note_type = ?", note.OneOnOneID, note.NoteType).First(&stored).Error
	if err != nil {
		return err
	}
	*note = stored
	return nil
}

// GetNotesByOneOnOneID retrieves the notes of a session
func (r *AnswerRepository) GetNotesByOneOnOneID(oneOnOneID uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("one_on_one_id = ?", oneOnOneID).Order("note_type ASC").Find(&notes).Error
	return notes, err
}
