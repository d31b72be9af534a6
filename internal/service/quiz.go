package service

import (
	"context"
	"encoding/json"
	"time"

	"quiz-forge/internal/cache"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuizService defines the interface for quiz CRUD and scoring operations
type QuizService interface {
	GetAllQuizzes(ctx context.Context) ([]*dto.QuizResponse, error)
	GetQuiz(ctx context.Context, id string) (*dto.QuizResponse, error)
	CreateQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
	UpdateQuiz(ctx context.Context, id string, req *dto.QuizRequest) (*dto.QuizResponse, error)
	DeleteQuiz(ctx context.Context, id string) error

	SubmitResult(ctx context.Context, quizID string, answers map[string]string) (*dto.QuizResultResponse, error)
	GetResult(ctx context.Context, resultID string) (*dto.QuizResultResponse, error)
	GetAllResults(ctx context.Context) ([]*dto.QuizResultResponse, error)
	GetResultsByUserEmail(ctx context.Context, email string) ([]*dto.QuizResultResponse, error)
}

// quizService implements QuizService
type quizService struct {
	repo       domain.QuizRepository
	resultRepo domain.QuizResultRepository
	cache      domain.Cache
	quizTTL    time.Duration
	validator  *validation.Validator
	sfGroup    singleflight.Group
}

// NewQuizService creates a new instance of quizService. cache may be nil, in
// which case every read goes to the repository.
func NewQuizService(
	repo domain.QuizRepository,
	resultRepo domain.QuizResultRepository,
	cacheClient domain.Cache,
	quizTTL time.Duration,
) QuizService {
	return &quizService{
		repo:       repo,
		resultRepo: resultRepo,
		cache:      cacheClient,
		quizTTL:    quizTTL,
		validator:  validation.NewValidator(),
	}
}

func quizCacheKey(id string) string {
	return cache.GenerateCacheKey("quiz", "doc", id)
}

func quizListCacheKey() string {
	return cache.GenerateCacheKey("quiz", "list", "all")
}

// GetAllQuizzes implements QuizService with a read-through list cache.
func (s *quizService) GetAllQuizzes(ctx context.Context) ([]*dto.QuizResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, quizListCacheKey()); err == nil {
			var responses []*dto.QuizResponse
			if err := json.Unmarshal([]byte(cached), &responses); err == nil {
				return responses, nil
			}
			// A corrupt entry falls through to the repository.
		} else if err != domain.ErrCacheMiss {
			logger.Get().Warn("Quiz list cache read failed", zap.Error(err))
		}
	}

	// singleflight collapses concurrent fills after a miss or invalidation.
	v, err, _ := s.sfGroup.Do(quizListCacheKey(), func() (interface{}, error) {
		quizzes, err := s.repo.GetAllQuizzes(ctx)
		if err != nil {
			return nil, domain.NewDatabaseError("Failed to get quizzes", err)
		}
		responses := make([]*dto.QuizResponse, 0, len(quizzes))
		for _, q := range quizzes {
			responses = append(responses, toQuizResponse(q))
		}
		s.cacheSet(ctx, quizListCacheKey(), responses)
		return responses, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*dto.QuizResponse), nil
}

// GetQuiz implements QuizService with a read-through document cache.
func (s *quizService) GetQuiz(ctx context.Context, id string) (*dto.QuizResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, quizCacheKey(id)); err == nil {
			var response dto.QuizResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				return &response, nil
			}
		} else if err != domain.ErrCacheMiss {
			logger.Get().Warn("Quiz cache read failed", zap.Error(err), zap.String("quiz_id", id))
		}
	}

	v, err, _ := s.sfGroup.Do(quizCacheKey(id), func() (interface{}, error) {
		quiz, err := s.repo.GetQuizByID(ctx, id)
		if err != nil {
			return nil, domain.NewDatabaseError("Failed to get quiz", err)
		}
		if quiz == nil {
			return nil, domain.NewQuizNotFoundError(id)
		}
		response := toQuizResponse(quiz)
		s.cacheSet(ctx, quizCacheKey(id), response)
		return response, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*dto.QuizResponse), nil
}

// CreateQuiz implements QuizService
func (s *quizService) CreateQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if errs := s.validator.ValidateQuizRequest(req); len(errs) > 0 {
		return nil, errs
	}

	quiz := domain.NewQuiz(req.QuizName, req.Description, toDomainQuestions(req.Questions))
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveQuiz(ctx, quiz); err != nil {
		return nil, domain.NewDatabaseError("Failed to create quiz", err)
	}

	s.invalidate(ctx, quizListCacheKey())
	return toQuizResponse(quiz), nil
}

// UpdateQuiz implements QuizService. Content is replaced wholesale.
func (s *quizService) UpdateQuiz(ctx context.Context, id string, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if errs := s.validator.ValidateQuizRequest(req); len(errs) > 0 {
		return nil, errs
	}

	quiz := domain.NewQuiz(req.QuizName, req.Description, toDomainQuestions(req.Questions))
	quiz.ID = id
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	found, err := s.repo.UpdateQuiz(ctx, quiz)
	if err != nil {
		return nil, domain.NewDatabaseError("Failed to update quiz", err)
	}
	if !found {
		return nil, domain.NewQuizNotFoundError(id)
	}

	s.invalidate(ctx, quizCacheKey(id), quizListCacheKey())

	// Re-read so the response carries the stored creation timestamp.
	updated, err := s.repo.GetQuizByID(ctx, id)
	if err != nil || updated == nil {
		return toQuizResponse(quiz), nil
	}
	return toQuizResponse(updated), nil
}

// DeleteQuiz implements QuizService. Results referencing the quiz survive;
// they carry the quiz name denormalized.
func (s *quizService) DeleteQuiz(ctx context.Context, id string) error {
	found, err := s.repo.DeleteQuiz(ctx, id)
	if err != nil {
		return domain.NewDatabaseError("Failed to delete quiz", err)
	}
	if !found {
		return domain.NewQuizNotFoundError(id)
	}

	s.invalidate(ctx, quizCacheKey(id), quizListCacheKey())
	return nil
}

// SubmitResult implements QuizService: the scoring engine. answers maps
// question IDs to submitted options; the "email" entry is attribution only.
func (s *quizService) SubmitResult(ctx context.Context, quizID string, answers map[string]string) (*dto.QuizResultResponse, error) {
	email := answers["email"]

	quiz, err := s.repo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewDatabaseError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	correct, incorrect := 0, 0
	for _, q := range quiz.Questions {
		submitted, ok := answers[q.ID]
		if ok && submitted == q.CorrectOption {
			correct++
		} else {
			// An unanswered question scores as incorrect.
			incorrect++
		}
	}

	total := len(quiz.Questions)
	score := 0.0
	if total > 0 {
		score = float64(correct) * 100 / float64(total)
	}

	result := domain.NewQuizResult(quiz.ID, quiz.Name, email, total, correct, incorrect, score)
	if err := result.Validate(); err != nil {
		return nil, err
	}

	if err := s.resultRepo.SaveResult(ctx, result); err != nil {
		return nil, domain.NewDatabaseError("Failed to save quiz result", err)
	}

	logger.Get().Info("Scored quiz submission",
		zap.String("quiz_id", quiz.ID),
		zap.Int("correct", correct),
		zap.Int("incorrect", incorrect),
		zap.Float64("score", score),
	)

	return toQuizResultResponse(result), nil
}

// GetResult implements QuizService
func (s *quizService) GetResult(ctx context.Context, resultID string) (*dto.QuizResultResponse, error) {
	result, err := s.resultRepo.GetResultByID(ctx, resultID)
	if err != nil {
		return nil, domain.NewDatabaseError("Failed to get quiz result", err)
	}
	if result == nil {
		return nil, domain.NewQuizResultNotFoundError(resultID)
	}
	return toQuizResultResponse(result), nil
}

// GetAllResults implements QuizService
func (s *quizService) GetAllResults(ctx context.Context) ([]*dto.QuizResultResponse, error) {
	results, err := s.resultRepo.GetAllResults(ctx)
	if err != nil {
		return nil, domain.NewDatabaseError("Failed to get quiz results", err)
	}
	responses := make([]*dto.QuizResultResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, toQuizResultResponse(r))
	}
	return responses, nil
}

// GetResultsByUserEmail implements QuizService
func (s *quizService) GetResultsByUserEmail(ctx context.Context, email string) ([]*dto.QuizResultResponse, error) {
	results, err := s.resultRepo.GetResultsByUserEmail(ctx, email)
	if err != nil {
		return nil, domain.NewDatabaseError("Failed to get quiz results by user", err)
	}
	responses := make([]*dto.QuizResultResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, toQuizResultResponse(r))
	}
	return responses, nil
}

// --- cache helpers ---

func (s *quizService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.quizTTL); err != nil {
		logger.Get().Warn("Cache write failed", zap.Error(err), zap.String("key", key))
	}
}

func (s *quizService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			logger.Get().Warn("Cache invalidation failed", zap.Error(err), zap.String("key", key))
		}
	}
}

// --- converters shared with the generation service ---

func toDomainQuestions(payloads []dto.QuestionPayload) []domain.Question {
	questions := make([]domain.Question, 0, len(payloads))
	for _, p := range payloads {
		questions = append(questions, domain.Question{
			ID:            p.ID,
			Text:          p.Question,
			Options:       p.Options,
			CorrectOption: p.CorrectOption,
			Explanation:   p.Explanation,
		})
	}
	return questions
}

func toQuizResponse(quiz *domain.Quiz) *dto.QuizResponse {
	questions := make([]dto.QuestionPayload, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, dto.QuestionPayload{
			ID:            q.ID,
			Question:      q.Text,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
			Explanation:   q.Explanation,
		})
	}
	return &dto.QuizResponse{
		ID:          quiz.ID,
		QuizName:    quiz.Name,
		Description: quiz.Description,
		Questions:   questions,
		CreatedAt:   quiz.CreatedAt,
	}
}

func toQuizResultResponse(result *domain.QuizResult) *dto.QuizResultResponse {
	return &dto.QuizResultResponse{
		ID:               result.ID,
		QuizID:           result.QuizID,
		QuizName:         result.QuizName,
		UserEmail:        result.UserEmail,
		TotalQuestions:   result.TotalQuestions,
		CorrectAnswers:   result.CorrectAnswers,
		IncorrectAnswers: result.IncorrectAnswers,
		Score:            result.Score,
		CreatedAt:        result.CreatedAt,
	}
}
