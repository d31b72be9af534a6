package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/repository/models"
	"quiz-forge/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// Column aliases are quoted so Oracle returns lowercase names for sqlx mapping.
const quizColumns = `
	id "id",
	name "name",
	description "description",
	questions "questions",
	created_at "created_at",
	updated_at "updated_at"`

// GetAllQuizzes implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetAllQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	query := `SELECT ` + quizColumns + `
	FROM quizzes
	ORDER BY created_at DESC`

	var modelQuizzes []models.Quiz
	if err := a.db.SelectContext(ctx, &modelQuizzes, query); err != nil {
		return nil, fmt.Errorf("failed to get all quizzes: %w", err)
	}

	quizzes := make([]*domain.Quiz, 0, len(modelQuizzes))
	for i := range modelQuizzes {
		quizzes = append(quizzes, toDomainQuiz(&modelQuizzes[i]))
	}
	return quizzes, nil
}

// GetQuizByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	query := `SELECT ` + quizColumns + `
	FROM quizzes
	WHERE id = :1`

	var modelQuiz models.Quiz
	err := a.db.GetContext(ctx, &modelQuiz, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}
	return toDomainQuiz(&modelQuiz), nil
}

// SaveQuiz implements domain.QuizRepository. It assigns identities to the quiz
// and every embedded question before insert.
func (a *QuizDatabaseAdapter) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz == nil {
		return fmt.Errorf("cannot save nil quiz")
	}

	modelQuiz := toModelQuiz(quiz)
	modelQuiz.ID = util.NewULID()
	for i := range modelQuiz.Questions {
		modelQuiz.Questions[i].ID = util.NewULID()
	}
	now := time.Now()
	modelQuiz.CreatedAt = now
	modelQuiz.UpdatedAt = now

	query := `INSERT INTO quizzes (
		id, name, description, questions, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6
	)`

	_, err := a.db.ExecContext(ctx, query,
		modelQuiz.ID,
		modelQuiz.Name,
		modelQuiz.Description,
		modelQuiz.Questions,
		modelQuiz.CreatedAt,
		modelQuiz.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}

	applyModelQuiz(quiz, modelQuiz)
	return nil
}

// UpdateQuiz implements domain.QuizRepository. Content is replaced wholesale
// and embedded questions get fresh identities, matching create semantics.
func (a *QuizDatabaseAdapter) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) (bool, error) {
	if quiz == nil {
		return false, fmt.Errorf("cannot update nil quiz")
	}
	if quiz.ID == "" {
		return false, fmt.Errorf("cannot update quiz with empty ID")
	}

	modelQuiz := toModelQuiz(quiz)
	for i := range modelQuiz.Questions {
		modelQuiz.Questions[i].ID = util.NewULID()
	}
	modelQuiz.UpdatedAt = time.Now()

	query := `UPDATE quizzes SET
		name = :1,
		description = :2,
		questions = :3,
		updated_at = :4
	WHERE id = :5`

	result, err := a.db.ExecContext(ctx, query,
		modelQuiz.Name,
		modelQuiz.Description,
		modelQuiz.Questions,
		modelQuiz.UpdatedAt,
		modelQuiz.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update quiz: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return false, nil
	}

	applyModelQuiz(quiz, modelQuiz)
	return true, nil
}

// DeleteQuiz implements domain.QuizRepository. Results referencing the quiz
// are deliberately left in place.
func (a *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM quizzes WHERE id = :1`

	result, err := a.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete quiz %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// --- converters ---

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	questions := make([]domain.Question, 0, len(m.Questions))
	for _, q := range m.Questions {
		questions = append(questions, domain.Question{
			ID:            q.ID,
			Text:          q.Question,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
			Explanation:   q.Explanation,
		})
	}
	return &domain.Quiz{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Questions:   questions,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toModelQuiz(q *domain.Quiz) *models.Quiz {
	if q == nil {
		return nil
	}
	questions := make(models.QuestionList, 0, len(q.Questions))
	for _, dq := range q.Questions {
		questions = append(questions, models.Question{
			ID:            dq.ID,
			Question:      dq.Text,
			Options:       dq.Options,
			CorrectOption: dq.CorrectOption,
			Explanation:   dq.Explanation,
		})
	}
	return &models.Quiz{
		ID:          q.ID,
		Name:        q.Name,
		Description: q.Description,
		Questions:   questions,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

// applyModelQuiz copies store-assigned fields back onto the domain entity.
func applyModelQuiz(quiz *domain.Quiz, m *models.Quiz) {
	quiz.ID = m.ID
	quiz.CreatedAt = m.CreatedAt
	quiz.UpdatedAt = m.UpdatedAt
	for i := range m.Questions {
		quiz.Questions[i].ID = m.Questions[i].ID
	}
}
