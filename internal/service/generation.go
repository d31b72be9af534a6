package service

import (
	"context"
	"fmt"

	"quiz-forge/internal/cache"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/validation"

	"go.uber.org/zap"
)

// generationSystemInstruction is the fixed system-level contract given to the
// model. Uniqueness, quote escaping and option shuffling are advisory to the
// generator; nothing local enforces them.
const generationSystemInstruction = `You are an expert quiz generator. Your task is to generate JSON data for quizzes based on given topics and difficulty levels.
The generated quizzes must strictly adhere to the output JSON structure provided and MUST generate exactly the number of questions specified - no more, no less.
Ensure each question is unique and relevant to the specified topic.
Provide clear and concise explanations for the correct answers. Randomize the order of options for each question.
Include a variety of question types (multiple-choice, true/false, fill-in-the-blank, predict output of the program, etc.) if necessary.
Add code snippets in the questions themselves when appropriate and add backslash before double quotes in the generated json.`

const generationPromptTemplate = `Generate strictly valid JSON data for a quiz with EXACTLY %d questions based on the following:
    Topic: %s
    Difficulty: %s

    IMPORTANT: The response MUST contain exactly %d questions - no more, no less.

    Output JSON Structure without any ellipses or additional text:

    {
      "quizName": "<Topic> Quiz",
      "description": "<Description of the quiz covering the specified topic>",
      "questions": [
        {
          "question": "<Question 1>",
          "options": [
            "<Option 1>",
            "<Option 2>",
            "<Option 3>",
            "<Option 4>"
          ],
          "correctOption": "<Correct Option>",
          "explanation": "<Concise Explanation of the correct answer>"
        }
      ]
    }`

// GenerationService turns a (topic, difficulty, count) request into a
// persisted quiz via one external text-generation call.
type GenerationService interface {
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.QuizResponse, error)
}

type generationService struct {
	repo      domain.QuizRepository
	generator domain.TextGenerator
	cache     domain.Cache
	validator *validation.Validator
}

// NewGenerationService creates a new instance of generationService.
// cache may be nil; invalidation is then skipped.
func NewGenerationService(repo domain.QuizRepository, generator domain.TextGenerator, cacheClient domain.Cache) GenerationService {
	return &generationService{
		repo:      repo,
		generator: generator,
		cache:     cacheClient,
		validator: validation.NewValidator(),
	}
}

// GenerateQuiz implements GenerationService. Stages: validate, prompt, one
// generator call, defensive extraction, count reconciliation, persist.
// Validation failures never reach the generator, and nothing here retries.
func (s *generationService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.QuizResponse, error) {
	l := logger.Get()

	count, validationErrs := s.validator.ValidateGenerateQuizRequest(req)
	if len(validationErrs) > 0 {
		return nil, validationErrs
	}

	prompt := fmt.Sprintf(generationPromptTemplate, count, req.Topic, req.Difficulty, count)

	rawText, err := s.generator.GenerateText(ctx, generationSystemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	payload, err := extractQuizPayload(rawText)
	if err != nil {
		// The raw text goes to logs for postmortem, never to the caller.
		l.Error("Failed to extract quiz payload from generator output",
			zap.Error(err),
			zap.String("topic", req.Topic),
			zap.String("raw_text", rawText),
		)
		return nil, domain.NewGenerationFailedError(err)
	}

	// Over-production is trimmed to the requested prefix; under-production is
	// accepted as-is. A short quiz is still useful, an oversized one breaks
	// the caller's contract.
	if len(payload.Questions) > count {
		l.Info("Generator over-produced questions, trimming",
			zap.Int("requested", count),
			zap.Int("generated", len(payload.Questions)),
		)
		payload.Questions = payload.Questions[:count]
	} else if len(payload.Questions) < count {
		l.Warn("Generator under-produced questions, proceeding with deficit",
			zap.Int("requested", count),
			zap.Int("generated", len(payload.Questions)),
		)
	}

	questions := make([]domain.Question, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		questions = append(questions, domain.Question{
			Text:          q.Question,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
			Explanation:   q.Explanation,
		})
	}

	quiz := domain.NewQuiz(payload.QuizName, payload.Description, questions)
	if err := quiz.Validate(); err != nil {
		l.Error("Generated payload parsed but failed quiz validation",
			zap.Error(err),
			zap.String("topic", req.Topic),
			zap.String("raw_text", rawText),
		)
		return nil, domain.NewGenerationFailedError(err)
	}

	if err := s.repo.SaveQuiz(ctx, quiz); err != nil {
		return nil, domain.NewDatabaseError("Failed to save generated quiz", err)
	}

	s.invalidateListCache(ctx)

	l.Info("Generated and persisted quiz",
		zap.String("quiz_id", quiz.ID),
		zap.String("topic", req.Topic),
		zap.String("difficulty", req.Difficulty),
		zap.Int("questions", len(quiz.Questions)),
	)

	return toQuizResponse(quiz), nil
}

func (s *generationService) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	key := cache.GenerateCacheKey("quiz", "list", "all")
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Get().Warn("Failed to invalidate quiz list cache", zap.Error(err))
	}
}
