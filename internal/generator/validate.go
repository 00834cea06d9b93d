package generator

import (
	"math"
	"strings"

	"github.com/qforge/qforge-backend/internal/model"
)

// optionKeys are the four mcq option labels, in canonical order.
var optionKeys = []string{"A", "B", "C", "D"}

// placeholderOptions is the canonical substitute set used when a candidate
// claims to be mcq but ships an incomplete options object.
func placeholderOptions() map[string]string {
	return map[string]string{
		"A": "Option A",
		"B": "Option B",
		"C": "Option C",
		"D": "Option D",
	}
}

// ValidateCandidate normalizes one decoded candidate object into a
// QuestionRecord. Missing question_text is the only fatal defect; every
// other missing or malformed field is repaired with a documented default
// so a flaky generation still yields usable questions.
func ValidateCandidate(obj map[string]interface{}, fallbackTopic string) (QuestionRecord, error) {
	text := stringField(obj, "question_text")
	if strings.TrimSpace(text) == "" {
		return QuestionRecord{}, &ValidationError{Field: "question_text", Reason: "missing or empty"}
	}

	rec := QuestionRecord{
		QuestionText: text,
		QuestionType: model.QuestionType(stringField(obj, "question_type")),
		Difficulty:   model.Difficulty(stringField(obj, "difficulty")),
		Marks:        intField(obj, "marks", 2),
		TopicName:    stringField(obj, "topic"),
		Answer:       stringField(obj, "answer"),
	}

	if !model.KnownQuestionType(rec.QuestionType) {
		rec.QuestionType = model.QuestionTypeShort
	}
	if !model.KnownDifficulty(rec.Difficulty) {
		rec.Difficulty = model.DifficultyMedium
	}
	if rec.TopicName == "" {
		rec.TopicName = fallbackTopic
	}

	if rec.QuestionType == model.QuestionTypeMCQ {
		rec.Options = mcqOptions(obj)
		rec.CorrectOption = stringField(obj, "correct_option")
	}

	return rec, nil
}

// mcqOptions extracts the A-D option set from a candidate. An incomplete
// or malformed set is replaced wholesale with placeholders rather than
// rejecting the question.
func mcqOptions(obj map[string]interface{}) map[string]string {
	raw, ok := obj["options"].(map[string]interface{})
	if !ok {
		return placeholderOptions()
	}

	options := make(map[string]string, len(optionKeys))
	for _, key := range optionKeys {
		v, ok := raw[key].(string)
		if !ok || strings.TrimSpace(v) == "" {
			return placeholderOptions()
		}
		options[key] = v
	}
	return options
}

func stringField(obj map[string]interface{}, key string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return ""
}

// intField returns the integer value at key, or fallback when the value
// is absent or not an integral JSON number.
func intField(obj map[string]interface{}, key string, fallback int) int {
	v, ok := obj[key].(float64)
	if !ok || v != math.Trunc(v) {
		return fallback
	}
	return int(v)
}
