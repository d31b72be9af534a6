package service

import (
	"context"
	"os"
	"testing"
	"time"

	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/logger"

	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Initialize(config.LoggerConfig{Level: "debug"})
	os.Exit(m.Run())
}

type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) GetAllQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) (bool, error) {
	args := m.Called(ctx, quiz)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuizRepository) DeleteQuiz(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockQuizResultRepository struct {
	mock.Mock
}

func (m *MockQuizResultRepository) SaveResult(ctx context.Context, result *domain.QuizResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockQuizResultRepository) GetResultByID(ctx context.Context, id string) (*domain.QuizResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizResult), args.Error(1)
}

func (m *MockQuizResultRepository) GetAllResults(ctx context.Context) ([]*domain.QuizResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizResult), args.Error(1)
}

func (m *MockQuizResultRepository) GetResultsByUserEmail(ctx context.Context, email string) ([]*domain.QuizResult, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizResult), args.Error(1)
}

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error) {
	args := m.Called(ctx, systemInstruction, prompt)
	return args.String(0), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
