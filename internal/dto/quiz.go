package dto

import "time"

// QuestionPayload represents one question on the wire. The correct option and
// explanation are included: this API serves quiz authoring and review, not a
// cheat-proof play surface.
type QuestionPayload struct {
	ID            string   `json:"id,omitempty"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correctOption"`
	Explanation   string   `json:"explanation"`
}

// QuizRequest is the body for creating or replacing a quiz
// @Description Quiz create/update payload
type QuizRequest struct {
	QuizName    string            `json:"quizName"`
	Description string            `json:"description"`
	Questions   []QuestionPayload `json:"questions"`
}

// QuizResponse represents a quiz in the API response
// @Description Quiz information
type QuizResponse struct {
	ID          string            `json:"id"`
	QuizName    string            `json:"quizName"`
	Description string            `json:"description"`
	Questions   []QuestionPayload `json:"questions"`
	CreatedAt   time.Time         `json:"date"`
}

// GenerateQuizRequest is the body for requesting an auto-generated quiz.
// NumberOfQuestions accepts a JSON number or a numeric string.
type GenerateQuizRequest struct {
	Difficulty        string      `json:"difficulty"`
	Topic             string      `json:"topic"`
	NumberOfQuestions interface{} `json:"numberOfQuestions"`
}

// QuizResultResponse represents a scored submission in the API response
// @Description Quiz result information
type QuizResultResponse struct {
	ID               string    `json:"id"`
	QuizID           string    `json:"quizId"`
	QuizName         string    `json:"quizName"`
	UserEmail        string    `json:"userEmail,omitempty"`
	TotalQuestions   int       `json:"totalQuestions"`
	CorrectAnswers   int       `json:"correctAnswers"`
	IncorrectAnswers int       `json:"incorrectAnswers"`
	Score            float64   `json:"score"`
	CreatedAt        time.Time `json:"date"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
