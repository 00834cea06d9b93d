package model

// Topic represents a syllabus topic owned by a subject/grade pair.
// Identity key is (name, subject_id, grade_id); lookup-or-create never
// duplicates a topic for the same key.
type Topic struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	SubjectID     int    `json:"subject_id"`
	GradeID       int    `json:"grade_id"`
	ChapterNumber *int   `json:"chapter_number,omitempty"`
	Description   string `json:"description"`
	SubjectName   string `json:"subject_name,omitempty"`
	GradeName     string `json:"grade_name,omitempty"`
}

// CreateTopicRequest is the payload for creating a topic.
type CreateTopicRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	SubjectID     int    `json:"subject_id" binding:"required,min=1"`
	GradeID       int    `json:"grade_id" binding:"required,min=1"`
	ChapterNumber *int   `json:"chapter_number" binding:"omitempty,min=1"`
	Description   string `json:"description" binding:"omitempty,max=2000"`
}
