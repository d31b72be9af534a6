package domain

import "context"

// QuizRepository defines the interface for quiz persistence
type QuizRepository interface {
	// GetAllQuizzes returns every stored quiz, newest first
	GetAllQuizzes(ctx context.Context) ([]*Quiz, error)

	// GetQuizByID retrieves a quiz by its ID. Returns (nil, nil) when absent.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)

	// SaveQuiz persists a new quiz, assigning IDs to it and its questions
	SaveQuiz(ctx context.Context, quiz *Quiz) error

	// UpdateQuiz replaces a quiz's content wholesale. Returns false when the
	// quiz does not exist.
	UpdateQuiz(ctx context.Context, quiz *Quiz) (bool, error)

	// DeleteQuiz removes a quiz. Existing results referencing it are left
	// untouched. Returns false when the quiz does not exist.
	DeleteQuiz(ctx context.Context, id string) (bool, error)
}

// QuizResultRepository defines the interface for quiz result persistence
type QuizResultRepository interface {
	// SaveResult persists a new quiz result, assigning its ID
	SaveResult(ctx context.Context, result *QuizResult) error

	// GetResultByID retrieves a result by its ID. Returns (nil, nil) when absent.
	GetResultByID(ctx context.Context, id string) (*QuizResult, error)

	// GetAllResults returns every stored result, newest first
	GetAllResults(ctx context.Context) ([]*QuizResult, error)

	// GetResultsByUserEmail returns the results submitted under the given email
	GetResultsByUserEmail(ctx context.Context, email string) ([]*QuizResult, error)
}
