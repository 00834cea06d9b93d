package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// QuestionType enumerates the supported question kinds.
type QuestionType string

const (
	QuestionTypeMCQ       QuestionType = "mcq"
	QuestionTypeShort     QuestionType = "short"
	QuestionTypeLong      QuestionType = "long"
	QuestionTypeFill      QuestionType = "fill"
	QuestionTypeTrueFalse QuestionType = "true_false"
)

// KnownQuestionType reports whether t is one of the five supported kinds.
func KnownQuestionType(t QuestionType) bool {
	switch t {
	case QuestionTypeMCQ, QuestionTypeShort, QuestionTypeLong, QuestionTypeFill, QuestionTypeTrueFalse:
		return true
	}
	return false
}

// Difficulty enumerates question difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// KnownDifficulty reports whether d is a supported difficulty level.
func KnownDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question represents a persisted exam question. Options and CorrectOption
// are populated only for mcq questions; Options is a JSON object keyed A-D.
type Question struct {
	ID            uuid.UUID       `json:"id"`
	QuestionText  string          `json:"question_text"`
	QuestionType  QuestionType    `json:"question_type"`
	Difficulty    Difficulty      `json:"difficulty"`
	BloomLevel    string          `json:"bloom_level"`
	Marks         int             `json:"marks"`
	TimeToSolve   int             `json:"time_to_solve"`
	TopicID       int             `json:"topic_id"`
	TopicName     string          `json:"topic_name,omitempty"`
	Answer        string          `json:"answer"`
	Explanation   string          `json:"explanation"`
	Options       json.RawMessage `json:"options,omitempty"`
	CorrectOption string          `json:"correct_option,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreateQuestionRequest is the payload for adding a question directly.
type CreateQuestionRequest struct {
	QuestionText  string            `json:"question_text" binding:"required,min=1,max=2000"`
	QuestionType  string            `json:"question_type" binding:"required,oneof=mcq short long fill true_false"`
	Difficulty    string            `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Marks         int               `json:"marks" binding:"required,min=1"`
	TopicID       int               `json:"topic_id" binding:"required,min=1"`
	Answer        string            `json:"answer" binding:"omitempty,max=5000"`
	Explanation   string            `json:"explanation" binding:"omitempty,max=5000"`
	Options       map[string]string `json:"options" binding:"omitempty"`
	CorrectOption string            `json:"correct_option" binding:"omitempty,oneof=A B C D"`
}
