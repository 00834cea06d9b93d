package model

import "time"

// Subject represents an academic subject (e.g. Math, Science).
type Subject struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateSubjectRequest is the payload for creating a subject.
type CreateSubjectRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Code        string `json:"code" binding:"required,min=2,max=20"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}
