package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupQuizTestDB creates a new sqlx.DB instance and sqlmock for quiz repository testing.
func setupQuizTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

const questionsJSON = `[{"id":"01HQ5QX000000000000000Q001","question":"Q1?","options":["A","B"],"correctOption":"A","explanation":"A is right"}]`

func quizRows(id string, createdAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "questions", "created_at", "updated_at"}).
		AddRow(id, "Go Basics", "Introductory questions", questionsJSON, createdAt, createdAt)
}

func TestQuizDatabaseAdapter_GetQuizByID_Success(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	defer db.Close()

	quizID := "01HQ5QX0000000000000000001"
	now := time.Now()

	mock.ExpectQuery(`SELECT(.|\s)+FROM quizzes\s+WHERE id = :1`).
		WithArgs(quizID).
		WillReturnRows(quizRows(quizID, now))

	quiz, err := repo.GetQuizByID(context.Background(), quizID)

	require.NoError(t, err)
	require.NotNil(t, quiz)
	assert.Equal(t, quizID, quiz.ID)
	assert.Equal(t, "Go Basics", quiz.Name)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "Q1?", quiz.Questions[0].Text)
	assert.Equal(t, "A", quiz.Questions[0].CorrectOption)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_GetQuizByID_NotFound(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT(.|\s)+FROM quizzes\s+WHERE id = :1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	quiz, err := repo.GetQuizByID(context.Background(), "missing")

	// Absence is not an error at this layer.
	assert.NoError(t, err)
	assert.Nil(t, quiz)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_GetAllQuizzes(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "description", "questions", "created_at", "updated_at"}).
		AddRow("01HQ5QX0000000000000000002", "Second", "Newer quiz", questionsJSON, now, now).
		AddRow("01HQ5QX0000000000000000001", "First", "Older quiz", questionsJSON, now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT(.|\s)+FROM quizzes\s+ORDER BY created_at DESC`).
		WillReturnRows(rows)

	quizzes, err := repo.GetAllQuizzes(context.Background())

	require.NoError(t, err)
	require.Len(t, quizzes, 2)
	assert.Equal(t, "Second", quizzes[0].Name)
	assert.Equal(t, "First", quizzes[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_SaveQuiz_AssignsIdentity(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	defer db.Close()

	quiz := domain.NewQuiz("Go Basics", "Introductory questions", []domain.Question{
		{Text: "Q1?", Options: []string{"A", "B"}, CorrectOption: "A", Explanation: "A is right"},
	})

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO quizzes (`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveQuiz(context.Background(), quiz)

	require.NoError(t, err)
	assert.NotEmpty(t, quiz.ID)
	assert.NotEmpty(t, quiz.Questions[0].ID)
	assert.False(t, quiz.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_SaveQuiz_Nil(t *testing.T) {
	db, _ := setupQuizTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	defer db.Close()

	assert.Error(t, repo.SaveQuiz(context.Background(), nil))
}

func TestQuizDatabaseAdapter_UpdateQuiz_Found(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	defer db.Close()

	quiz := domain.NewQuiz("Go Basics", "Updated description", []domain.Question{
		{ID: "stale", Text: "Q1?", Options: []string{"A", "B"}, CorrectOption: "A", Explanation: "A is right"},
	})
	quiz.ID = "01HQ5QX0000000000000000001"

	mock.ExpectExec(`UPDATE quizzes SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	found, err := repo.UpdateQuiz(context.Background(), quiz)

	require.NoError(t, err)
	assert.True(t, found)
	// Replacement assigns fresh question identities, matching create semantics.
	assert.NotEqual(t, "stale", quiz.Questions[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_UpdateQuiz_NotFound(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	defer db.Close()

	quiz := domain.NewQuiz("Go Basics", "Updated description", []domain.Question{
		{Text: "Q1?", Options: []string{"A", "B"}, CorrectOption: "A", Explanation: "A is right"},
	})
	quiz.ID = "01HQ5QX0000000000000000404"

	mock.ExpectExec(`UPDATE quizzes SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	found, err := repo.UpdateQuiz(context.Background(), quiz)

	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_DeleteQuiz(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM quizzes WHERE id = :1`).
		WithArgs("01HQ5QX0000000000000000001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	found, err := repo.DeleteQuiz(context.Background(), "01HQ5QX0000000000000000001")

	require.NoError(t, err)
	assert.True(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_DeleteQuiz_NotFound(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM quizzes WHERE id = :1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	found, err := repo.DeleteQuiz(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, found)
}

func TestQuizDatabaseAdapter_GetAllQuizzes_Error(t *testing.T) {
	db, mock := setupQuizTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT(.|\s)+FROM quizzes`).
		WillReturnError(errors.New("ORA-12541: no listener"))

	_, err := repo.GetAllQuizzes(context.Background())
	assert.Error(t, err)
}

// --- Tests for Converter Functions ---

func TestToDomainQuiz(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	model := &models.Quiz{
		ID:          "01HQ5QX0000000000000000001",
		Name:        "Go Basics",
		Description: "Introductory questions",
		Questions: models.QuestionList{
			{ID: "q1", Question: "Q1?", Options: []string{"A", "B"}, CorrectOption: "A", Explanation: "A is right"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	quiz := toDomainQuiz(model)
	require.NotNil(t, quiz)
	assert.Equal(t, model.ID, quiz.ID)
	assert.Equal(t, model.Name, quiz.Name)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "Q1?", quiz.Questions[0].Text)
	assert.True(t, model.CreatedAt.Equal(quiz.CreatedAt))

	assert.Nil(t, toDomainQuiz(nil))
}

func TestToModelQuiz_RoundTrip(t *testing.T) {
	quiz := domain.NewQuiz("Go Basics", "Introductory questions", []domain.Question{
		{ID: "q1", Text: "Q1?", Options: []string{"A", "B"}, CorrectOption: "A", Explanation: "A is right"},
	})

	model := toModelQuiz(quiz)
	require.NotNil(t, model)
	back := toDomainQuiz(model)
	assert.Equal(t, quiz.Name, back.Name)
	assert.Equal(t, quiz.Questions, back.Questions)

	assert.Nil(t, toModelQuiz(nil))
}
