package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultRows(id, email string, createdAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "quiz_id", "quiz_name", "user_email", "total_questions", "correct_answers", "incorrect_answers", "score", "created_at"}).
		AddRow(id, "01HQ5QX0000000000000000001", "Go Basics", email, 4, 3, 1, 75.0, createdAt)
}

func TestSQLXQuizResultRepository_SaveResult(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	repo := NewSQLXQuizResultRepository(db)
	defer db.Close()

	result := domain.NewQuizResult("01HQ5QX0000000000000000001", "Go Basics", "dev@example.com", 4, 3, 1, 75)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO quiz_results (`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveResult(context.Background(), result)

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizResultRepository_SaveResult_Nil(t *testing.T) {
	db, _ := setupQuizTestDB(t)
	repo := NewSQLXQuizResultRepository(db)
	defer db.Close()

	assert.Error(t, repo.SaveResult(context.Background(), nil))
}

func TestSQLXQuizResultRepository_GetResultByID_Success(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	repo := NewSQLXQuizResultRepository(db)
	defer db.Close()

	resultID := "01HQ5QX000000000000000R001"
	mock.ExpectQuery(`SELECT(.|\s)+FROM quiz_results\s+WHERE id = :1`).
		WithArgs(resultID).
		WillReturnRows(resultRows(resultID, "dev@example.com", time.Now()))

	result, err := repo.GetResultByID(context.Background(), resultID)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, resultID, result.ID)
	assert.Equal(t, "Go Basics", result.QuizName)
	assert.Equal(t, 75.0, result.Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizResultRepository_GetResultByID_NotFound(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	repo := NewSQLXQuizResultRepository(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT(.|\s)+FROM quiz_results\s+WHERE id = :1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	result, err := repo.GetResultByID(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestSQLXQuizResultRepository_GetResultsByUserEmail(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	repo := NewSQLXQuizResultRepository(db)
	defer db.Close()

	email := "dev@example.com"
	mock.ExpectQuery(`SELECT(.|\s)+FROM quiz_results\s+WHERE user_email = :1`).
		WithArgs(email).
		WillReturnRows(resultRows("01HQ5QX000000000000000R001", email, time.Now()))

	results, err := repo.GetResultsByUserEmail(context.Background(), email)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, email, results[0].UserEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizResultRepository_GetAllResults_Empty(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	repo := NewSQLXQuizResultRepository(db)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "quiz_id", "quiz_name", "user_email", "total_questions", "correct_answers", "incorrect_answers", "score", "created_at"})
	mock.ExpectQuery(`SELECT(.|\s)+FROM quiz_results\s+ORDER BY created_at DESC`).
		WillReturnRows(rows)

	results, err := repo.GetAllResults(context.Background())

	require.NoError(t, err)
	assert.Empty(t, results)
}

// --- Tests for Converter Functions ---

func TestToDomainQuizResult_NullEmail(t *testing.T) {
	model := &models.QuizResult{
		ID:               "r1",
		QuizID:           "q1",
		QuizName:         "Go Basics",
		UserEmail:        sql.NullString{},
		TotalQuestions:   2,
		CorrectAnswers:   1,
		IncorrectAnswers: 1,
		Score:            50,
	}

	result := toDomainQuizResult(model)
	require.NotNil(t, result)
	assert.Equal(t, "", result.UserEmail)

	assert.Nil(t, toDomainQuizResult(nil))
}

func TestToModelQuizResult_EmptyEmailIsNull(t *testing.T) {
	result := domain.NewQuizResult("q1", "Go Basics", "", 2, 1, 1, 50)

	model := toModelQuizResult(result)
	require.NotNil(t, model)
	assert.False(t, model.UserEmail.Valid)

	assert.Nil(t, toModelQuizResult(nil))
}
