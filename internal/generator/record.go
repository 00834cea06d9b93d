package generator

import (
	"fmt"

	"github.com/qforge/qforge-backend/internal/model"
)

// QuestionRecord is a fully validated candidate question ready for
// persistence. Options and CorrectOption carry the mcq payload and are
// empty for every other question type.
type QuestionRecord struct {
	QuestionText  string
	QuestionType  model.QuestionType
	Difficulty    model.Difficulty
	Marks         int
	TopicName     string
	Answer        string
	Options       map[string]string
	CorrectOption string
}

// ParseError reports that no JSON array of candidates could be extracted
// from a generation response.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse candidates: " + e.Reason
}

// ValidationError reports why a single candidate was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid candidate: field %q %s", e.Field, e.Reason)
}
