package handler

import (
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler exposes quiz CRUD, scoring and generation over HTTP. Handlers
// return errors; the app-level error handler turns them into responses.
type QuizHandler struct {
	quizService       service.QuizService
	generationService service.GenerationService
}

// NewQuizHandler creates a new QuizHandler
func NewQuizHandler(quizService service.QuizService, generationService service.GenerationService) *QuizHandler {
	return &QuizHandler{
		quizService:       quizService,
		generationService: generationService,
	}
}

// Hello godoc
// @Summary Health check
// @Description Returns a fixed greeting, useful as a smoke test
// @Tags quiz
// @Produce plain
// @Success 200 {string} string "Hello World!"
// @Router /api/quizzes/hello [get]
func (h *QuizHandler) Hello(c *fiber.Ctx) error {
	return c.SendString("Hello World!")
}

// GetAllQuizzes godoc
// @Summary List all quizzes
// @Tags quiz
// @Produce json
// @Success 200 {array} dto.QuizResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/quizzes [get]
func (h *QuizHandler) GetAllQuizzes(c *fiber.Ctx) error {
	quizzes, err := h.quizService.GetAllQuizzes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}

// GetQuiz godoc
// @Summary Get a quiz by ID
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quiz, err := h.quizService.GetQuiz(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Tags quiz
// @Accept json
// @Produce json
// @Param quiz body dto.QuizRequest true "Quiz payload"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /api/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	quiz, err := h.quizService.CreateQuiz(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(quiz)
}

// UpdateQuiz godoc
// @Summary Replace a quiz
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param quiz body dto.QuizRequest true "Quiz payload"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	quiz, err := h.quizService.UpdateQuiz(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Deletes a quiz. Results referencing it are kept.
// @Tags quiz
// @Param id path string true "Quiz ID"
// @Success 204 "No Content"
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	if err := h.quizService.DeleteQuiz(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SubmitResult godoc
// @Summary Submit answers for scoring
// @Description Body maps question IDs to submitted options; an optional "email" entry attributes the result.
// @Tags result
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param answers body map[string]string true "Answers keyed by question ID"
// @Success 201 {object} dto.QuizResultResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/quizzes/{id}/result [post]
func (h *QuizHandler) SubmitResult(c *fiber.Ctx) error {
	answers := make(map[string]string)
	if err := c.BodyParser(&answers); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	result, err := h.quizService.SubmitResult(c.Context(), c.Params("id"), answers)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetResult godoc
// @Summary Get a scored result by ID
// @Tags result
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} dto.QuizResultResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/quizzes/{id}/result [get]
func (h *QuizHandler) GetResult(c *fiber.Ctx) error {
	result, err := h.quizService.GetResult(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GetAllResults godoc
// @Summary List all scored results
// @Tags result
// @Produce json
// @Success 200 {array} dto.QuizResultResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/quizzes/result [get]
func (h *QuizHandler) GetAllResults(c *fiber.Ctx) error {
	results, err := h.quizService.GetAllResults(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(results)
}

// GetResultsByEmail godoc
// @Summary List results submitted under an email
// @Tags result
// @Produce json
// @Param email path string true "Submitter email"
// @Success 200 {array} dto.QuizResultResponse
// @Router /api/quizzes/result/{email} [get]
func (h *QuizHandler) GetResultsByEmail(c *fiber.Ctx) error {
	results, err := h.quizService.GetResultsByUserEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(results)
}

// GenerateQuiz godoc
// @Summary Generate and persist a quiz
// @Description Generates a quiz for the given topic, difficulty and question count via the configured LLM.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Generation parameters"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/quizzes/generate [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	quiz, err := h.generationService.GenerateQuiz(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// RegisterRoutes mounts all quiz routes on the app. Literal routes are
// registered before the parameterized ones so /result, /generate and /hello
// are not captured by /:id.
func (h *QuizHandler) RegisterRoutes(app *fiber.App, validateID fiber.Handler) {
	api := app.Group("/api/quizzes")

	api.Get("/hello", h.Hello)
	api.Get("/result", h.GetAllResults)
	api.Get("/result/:email", h.GetResultsByEmail)
	api.Post("/generate", h.GenerateQuiz)

	api.Get("/", h.GetAllQuizzes)
	api.Post("/", h.CreateQuiz)
	api.Get("/:id", validateID, h.GetQuiz)
	api.Put("/:id", validateID, h.UpdateQuiz)
	api.Delete("/:id", validateID, h.DeleteQuiz)
	api.Post("/:id/result", validateID, h.SubmitResult)
	api.Get("/:id/result", validateID, h.GetResult)
}
