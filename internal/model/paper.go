package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionPaper is an immutable, generated collection of questions.
// Papers are created once by the generation flow and never updated.
type QuestionPaper struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	SubjectID       int             `json:"subject_id"`
	GradeID         int             `json:"grade_id"`
	SubjectName     string          `json:"subject_name,omitempty"`
	GradeName       string          `json:"grade_name,omitempty"`
	TotalMarks      int             `json:"total_marks"`
	DurationMinutes int             `json:"duration_minutes"`
	Instructions    string          `json:"instructions"`
	Questions       []PaperQuestion `json:"questions"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PaperQuestion is a question placed on a paper with its section and
// 1-based order within that section.
type PaperQuestion struct {
	Question
	Section  string `json:"section"`
	OrderNum int    `json:"order"`
}

// GeneratePaperRequest is the payload for POST /generate-paper.
type GeneratePaperRequest struct {
	Grade                  string         `json:"grade" binding:"required,min=1,max=2"`
	Subject                string         `json:"subject" binding:"required,min=1,max=100"`
	Topics                 []string       `json:"topics" binding:"required,min=1,dive,required,max=200"`
	TotalMarks             int            `json:"total_marks" binding:"required,min=1,max=100"`
	Duration               int            `json:"duration" binding:"required,min=30,max=300"`
	DifficultyDistribution map[string]int `json:"difficulty_distribution" binding:"omitempty"`
	QuestionTypes          []string       `json:"question_types" binding:"omitempty,dive,oneof=mcq short long fill true_false"`
}
