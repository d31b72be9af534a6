package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanPayload = `{"quizName":"Go Quiz","description":"Basics of Go","questions":[{"question":"What is a goroutine?","options":["A thread","A lightweight thread","A process","A channel"],"correctOption":"A lightweight thread","explanation":"Goroutines are lightweight threads managed by the Go runtime."}]}`

func TestExtractQuizPayload_Clean(t *testing.T) {
	payload, err := extractQuizPayload(cleanPayload)
	require.NoError(t, err)
	assert.Equal(t, "Go Quiz", payload.QuizName)
	assert.Len(t, payload.Questions, 1)
	assert.Equal(t, "A lightweight thread", payload.Questions[0].CorrectOption)
}

func TestExtractQuizPayload_MarkdownFenced(t *testing.T) {
	fenced := "```json\n" + cleanPayload + "\n```"
	payload, err := extractQuizPayload(fenced)
	require.NoError(t, err)
	assert.Equal(t, "Go Quiz", payload.QuizName)
	assert.Len(t, payload.Questions, 1)
}

func TestExtractQuizPayload_ProseWrapped(t *testing.T) {
	wrapped := "Sure! Here is the quiz you asked for:\n" + cleanPayload + "\nLet me know if you need more."
	payload, err := extractQuizPayload(wrapped)
	require.NoError(t, err)
	assert.Equal(t, "Go Quiz", payload.QuizName)
	assert.Equal(t, "Basics of Go", payload.Description)
}

func TestExtractQuizPayload_NoDelimiters(t *testing.T) {
	_, err := extractQuizPayload("I could not produce a quiz for that topic.")
	assert.ErrorIs(t, err, errNoJSONDelimiters)
}

func TestExtractQuizPayload_MalformedJSON(t *testing.T) {
	_, err := extractQuizPayload(`{"quizName": "Broken`)
	assert.ErrorIs(t, err, errNoJSONDelimiters)

	_, err = extractQuizPayload(`{"quizName": "Broken", "questions": [}`)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errNoJSONDelimiters)
}

func TestStripBackticks(t *testing.T) {
	assert.Equal(t, "json\n{}\n", stripBackticks("```json\n{}\n```"))
	assert.Equal(t, "no fences", stripBackticks("no fences"))
}

func TestRemoveJSONLabel(t *testing.T) {
	// Only the first occurrence goes; field names containing "json" later in
	// the text are left alone.
	assert.Equal(t, "\n{}", removeJSONLabel("json\n{}"))
	assert.Equal(t, "\n{}", removeJSONLabel("JSON\n{}"))
	assert.Equal(t, "no label here", removeJSONLabel("no label here"))
}

func TestLocateJSONBounds(t *testing.T) {
	start, end, err := locateJSONBounds(`prefix {"a":1} suffix`)
	require.NoError(t, err)
	assert.Equal(t, 7, start)
	assert.Equal(t, 13, end)

	_, _, err = locateJSONBounds("} reversed {")
	assert.ErrorIs(t, err, errNoJSONDelimiters)

	_, _, err = locateJSONBounds("nothing at all")
	assert.ErrorIs(t, err, errNoJSONDelimiters)
}
