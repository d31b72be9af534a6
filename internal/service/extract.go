package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// The generator returns free-form text that usually, but not always, wraps a
// JSON object in markdown fencing or prose. Extraction is a fixed pipeline of
// total steps, each with its own failure mode, so it can be tested without a
// network in sight.

var errNoJSONDelimiters = errors.New("JSON delimiters not found")

// generatedQuiz is the payload shape the generation prompt mandates.
type generatedQuiz struct {
	QuizName    string              `json:"quizName"`
	Description string              `json:"description"`
	Questions   []generatedQuestion `json:"questions"`
}

type generatedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correctOption"`
	Explanation   string   `json:"explanation"`
}

// stripBackticks removes every literal backtick, collapsing markdown fences.
func stripBackticks(s string) string {
	return strings.ReplaceAll(s, "`", "")
}

// removeJSONLabel drops the first case-insensitive occurrence of "JSON",
// which is usually a stray fence language label.
func removeJSONLabel(s string) string {
	idx := strings.Index(strings.ToLower(s), "json")
	if idx == -1 {
		return s
	}
	return s[:idx] + s[idx+len("json"):]
}

// locateJSONBounds finds the first '{' and the last '}'.
func locateJSONBounds(s string) (int, int, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return 0, 0, errNoJSONDelimiters
	}
	return start, end, nil
}

// extractQuizPayload runs the full pipeline: strip, delabel, locate bounds,
// slice inclusive, parse. The caller owns logging of the raw text; it must
// never be echoed to an API caller.
func extractQuizPayload(raw string) (*generatedQuiz, error) {
	cleaned := removeJSONLabel(stripBackticks(raw))

	start, end, err := locateJSONBounds(cleaned)
	if err != nil {
		return nil, err
	}
	candidate := cleaned[start : end+1]

	var payload generatedQuiz
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return nil, fmt.Errorf("parsing extracted payload: %w", err)
	}
	return &payload, nil
}
