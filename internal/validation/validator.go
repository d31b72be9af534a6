package validation

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
)

// Question-count bounds for generation requests. The ceiling bounds
// worst-case generation cost and payload size.
const (
	MinQuestions = 1
	MaxQuestions = 50
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest validates a generation request and returns the
// parsed question count. Validation happens before any external call is made.
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) (int, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Difficulty) == "" {
		errors = append(errors, domain.NewMissingFieldError("difficulty"))
	}
	if strings.TrimSpace(req.Topic) == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	}

	count, ok := parseQuestionCount(req.NumberOfQuestions)
	if !ok {
		errors = append(errors, domain.NewMissingFieldError("numberOfQuestions"))
	} else if count < MinQuestions || count > MaxQuestions {
		errors = append(errors, domain.NewOutOfRangeError("numberOfQuestions", count, MinQuestions, MaxQuestions))
	}

	return count, errors
}

// ValidateQuizRequest validates a quiz create/update body. Option membership
// of correctOption is not enforced here; the generation prompt contract is
// the only guarantee of that property.
func (v *Validator) ValidateQuizRequest(req *dto.QuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.QuizName) == "" {
		errors = append(errors, domain.NewMissingFieldError("quizName"))
	}
	if strings.TrimSpace(req.Description) == "" {
		errors = append(errors, domain.NewMissingFieldError("description"))
	}
	if len(req.Questions) == 0 {
		errors = append(errors, domain.NewMissingFieldError("questions"))
	}
	for _, q := range req.Questions {
		if strings.TrimSpace(q.Question) == "" {
			errors = append(errors, domain.NewMissingFieldError("questions.question"))
		}
		if len(q.Options) == 0 {
			errors = append(errors, domain.NewMissingFieldError("questions.options"))
		}
		if strings.TrimSpace(q.CorrectOption) == "" {
			errors = append(errors, domain.NewMissingFieldError("questions.correctOption"))
		}
		if strings.TrimSpace(q.Explanation) == "" {
			errors = append(errors, domain.NewMissingFieldError("questions.explanation"))
		}
	}

	return errors
}

// parseQuestionCount accepts the integer-convertible forms a JSON body can
// carry: a number, a numeric string, or a json.Number.
func parseQuestionCount(value interface{}) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

var validULID = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// IsValidULID checks if the string is a valid ULID format
func IsValidULID(s string) bool {
	return len(s) == 26 && validULID.MatchString(s)
}
