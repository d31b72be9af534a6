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

// SQLXQuizResultRepository implements domain.QuizResultRepository using sqlx.DB
type SQLXQuizResultRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizResultRepository creates a new instance of SQLXQuizResultRepository
func NewSQLXQuizResultRepository(db *sqlx.DB) domain.QuizResultRepository {
	return &SQLXQuizResultRepository{db: db}
}

const quizResultColumns = `
	id "id",
	quiz_id "quiz_id",
	quiz_name "quiz_name",
	user_email "user_email",
	total_questions "total_questions",
	correct_answers "correct_answers",
	incorrect_answers "incorrect_answers",
	score "score",
	created_at "created_at"`

// SaveResult implements domain.QuizResultRepository
func (r *SQLXQuizResultRepository) SaveResult(ctx context.Context, result *domain.QuizResult) error {
	if result == nil {
		return fmt.Errorf("cannot save nil quiz result")
	}

	model := toModelQuizResult(result)
	model.ID = util.NewULID()
	model.CreatedAt = time.Now()

	query := `INSERT INTO quiz_results (
		id, quiz_id, quiz_name, user_email,
		total_questions, correct_answers, incorrect_answers, score, created_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9
	)`

	_, err := r.db.ExecContext(ctx, query,
		model.ID,
		model.QuizID,
		model.QuizName,
		model.UserEmail,
		model.TotalQuestions,
		model.CorrectAnswers,
		model.IncorrectAnswers,
		model.Score,
		model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz result: %w", err)
	}

	result.ID = model.ID
	result.CreatedAt = model.CreatedAt
	return nil
}

// GetResultByID implements domain.QuizResultRepository
func (r *SQLXQuizResultRepository) GetResultByID(ctx context.Context, id string) (*domain.QuizResult, error) {
	query := `SELECT ` + quizResultColumns + `
	FROM quiz_results
	WHERE id = :1`

	var model models.QuizResult
	err := r.db.GetContext(ctx, &model, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz result by ID %s: %w", id, err)
	}
	return toDomainQuizResult(&model), nil
}

// GetAllResults implements domain.QuizResultRepository
func (r *SQLXQuizResultRepository) GetAllResults(ctx context.Context) ([]*domain.QuizResult, error) {
	query := `SELECT ` + quizResultColumns + `
	FROM quiz_results
	ORDER BY created_at DESC`

	var modelResults []models.QuizResult
	if err := r.db.SelectContext(ctx, &modelResults, query); err != nil {
		return nil, fmt.Errorf("failed to get all quiz results: %w", err)
	}

	results := make([]*domain.QuizResult, 0, len(modelResults))
	for i := range modelResults {
		results = append(results, toDomainQuizResult(&modelResults[i]))
	}
	return results, nil
}

// GetResultsByUserEmail implements domain.QuizResultRepository
func (r *SQLXQuizResultRepository) GetResultsByUserEmail(ctx context.Context, email string) ([]*domain.QuizResult, error) {
	query := `SELECT ` + quizResultColumns + `
	FROM quiz_results
	WHERE user_email = :1
	ORDER BY created_at DESC`

	var modelResults []models.QuizResult
	if err := r.db.SelectContext(ctx, &modelResults, query, email); err != nil {
		return nil, fmt.Errorf("failed to get quiz results for %s: %w", email, err)
	}

	results := make([]*domain.QuizResult, 0, len(modelResults))
	for i := range modelResults {
		results = append(results, toDomainQuizResult(&modelResults[i]))
	}
	return results, nil
}

// --- converters ---

func toDomainQuizResult(m *models.QuizResult) *domain.QuizResult {
	if m == nil {
		return nil
	}
	return &domain.QuizResult{
		ID:               m.ID,
		QuizID:           m.QuizID,
		QuizName:         m.QuizName,
		UserEmail:        util.NullStringToString(m.UserEmail),
		TotalQuestions:   m.TotalQuestions,
		CorrectAnswers:   m.CorrectAnswers,
		IncorrectAnswers: m.IncorrectAnswers,
		Score:            m.Score,
		CreatedAt:        m.CreatedAt,
	}
}

func toModelQuizResult(r *domain.QuizResult) *models.QuizResult {
	if r == nil {
		return nil
	}
	return &models.QuizResult{
		ID:               r.ID,
		QuizID:           r.QuizID,
		QuizName:         r.QuizName,
		UserEmail:        util.StringToNullString(r.UserEmail),
		TotalQuestions:   r.TotalQuestions,
		CorrectAnswers:   r.CorrectAnswers,
		IncorrectAnswers: r.IncorrectAnswers,
		Score:            r.Score,
		CreatedAt:        r.CreatedAt,
	}
}
