package model

// Grade represents a school grade level (1 through 12).
type Grade struct {
	ID    int    `json:"id"`
	Level string `json:"level"`
	Name  string `json:"name"`
}

// CreateGradeRequest is the payload for creating a grade.
// Name is optional; when omitted it defaults to "Grade {level}".
type CreateGradeRequest struct {
	Level string `json:"level" binding:"required,min=1,max=2"`
	Name  string `json:"name" binding:"omitempty,max=50"`
}
