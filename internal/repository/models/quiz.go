package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Question is the persisted shape of one embedded question. The JSON field
// names match the wire format so a stored quiz round-trips unchanged.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correctOption"`
	Explanation   string   `json:"explanation"`
}

// QuestionList stores a quiz's embedded questions as a JSON document in a
// single CLOB column, keeping the quiz atomic at single-row granularity.
type QuestionList []Question

// Value implements the driver.Valuer interface
func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (q *QuestionList) Scan(value interface{}) error {
	if value == nil {
		*q = QuestionList{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("QuestionList Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*q = QuestionList{}
		return nil
	}

	return json.Unmarshal(bytesToParse, q)
}

// Quiz is the quizzes table row
type Quiz struct {
	ID          string       `db:"id"`
	Name        string       `db:"name"`
	Description string       `db:"description"`
	Questions   QuestionList `db:"questions"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

// QuizResult is the quiz_results table row. QuizID is not a foreign key;
// results must outlive their quiz.
type QuizResult struct {
	ID               string         `db:"id"`
	QuizID           string         `db:"quiz_id"`
	QuizName         string         `db:"quiz_name"`
	UserEmail        sql.NullString `db:"user_email"`
	TotalQuestions   int            `db:"total_questions"`
	CorrectAnswers   int            `db:"correct_answers"`
	IncorrectAnswers int            `db:"incorrect_answers"`
	Score            float64        `db:"score"`
	CreatedAt        time.Time      `db:"created_at"`
}
