package domain

import (
	"time"
)

// Question is a single multiple-choice question embedded in a Quiz.
// Questions have no lifecycle of their own; the store assigns IDs when the
// owning quiz is created or its content replaced.
type Question struct {
	ID            string
	Text          string
	Options       []string
	CorrectOption string
	Explanation   string
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.Text == "" {
		return ValidationErrors{NewMissingFieldError("question")}
	}
	if len(q.Options) == 0 {
		return ValidationErrors{NewMissingFieldError("options")}
	}
	if q.CorrectOption == "" {
		return ValidationErrors{NewMissingFieldError("correctOption")}
	}
	if q.Explanation == "" {
		return ValidationErrors{NewMissingFieldError("explanation")}
	}
	return nil
}

// Quiz represents a quiz in the domain. It owns its embedded questions.
type Quiz struct {
	ID          string
	Name        string
	Description string
	Questions   []Question
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewQuiz creates a new Quiz instance
func NewQuiz(name, description string, questions []Question) *Quiz {
	now := time.Now()
	return &Quiz{
		Name:        name,
		Description: description,
		Questions:   questions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate validates the quiz
func (q *Quiz) Validate() error {
	if q.Name == "" {
		return ValidationErrors{NewMissingFieldError("quizName")}
	}
	if q.Description == "" {
		return ValidationErrors{NewMissingFieldError("description")}
	}
	if len(q.Questions) == 0 {
		return ValidationErrors{NewMissingFieldError("questions")}
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// QuizResult records one scored submission against a quiz. QuizID is a weak
// reference: the quiz name is denormalized so the result survives quiz
// deletion.
type QuizResult struct {
	ID               string
	QuizID           string
	QuizName         string
	UserEmail        string
	TotalQuestions   int
	CorrectAnswers   int
	IncorrectAnswers int
	Score            float64
	CreatedAt        time.Time
}

// NewQuizResult creates a new QuizResult instance
func NewQuizResult(quizID, quizName, userEmail string, totalQuestions, correctAnswers, incorrectAnswers int, score float64) *QuizResult {
	return &QuizResult{
		QuizID:           quizID,
		QuizName:         quizName,
		UserEmail:        userEmail,
		TotalQuestions:   totalQuestions,
		CorrectAnswers:   correctAnswers,
		IncorrectAnswers: incorrectAnswers,
		Score:            score,
		CreatedAt:        time.Now(),
	}
}

// Validate validates the quiz result counters
func (r *QuizResult) Validate() error {
	if r.QuizID == "" {
		return ValidationErrors{NewMissingFieldError("quizId")}
	}
	if r.QuizName == "" {
		return ValidationErrors{NewMissingFieldError("quizName")}
	}
	if r.TotalQuestions < 0 || r.CorrectAnswers < 0 || r.IncorrectAnswers < 0 {
		return NewInvalidInputError("result counters must be non-negative")
	}
	if r.CorrectAnswers+r.IncorrectAnswers != r.TotalQuestions {
		return NewInvalidInputError("correct and incorrect answers must sum to total questions")
	}
	if r.Score < 0 || r.Score > 100 {
		return NewInvalidInputError("score must be between 0 and 100")
	}
	return nil
}
