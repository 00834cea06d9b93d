package generator

import (
	"fmt"

	"github.com/qforge/qforge-backend/internal/model"
)

// Synthesize deterministically produces count valid question records from
// the request's topics. It is the guaranteed-success path used when the
// generation call fails or yields no usable candidates: pure, no external
// calls, identical output for identical input.
//
// Record i rotates through topics by i mod len(topics) and cycles
// mcq/short/long by i mod 3.
func Synthesize(subject string, topics []string, count int) []QuestionRecord {
	if count <= 0 || len(topics) == 0 {
		return []QuestionRecord{}
	}

	records := make([]QuestionRecord, 0, count)
	for i := 0; i < count; i++ {
		topic := topics[i%len(topics)]

		switch i % 3 {
		case 0:
			records = append(records, QuestionRecord{
				QuestionText: fmt.Sprintf("What is the main concept in %s?", topic),
				QuestionType: model.QuestionTypeMCQ,
				Difficulty:   model.DifficultyMedium,
				Marks:        1,
				TopicName:    topic,
				Answer:       fmt.Sprintf("Basic concept of %s", topic),
				Options: map[string]string{
					"A": fmt.Sprintf("Basic concept of %s", topic),
					"B": fmt.Sprintf("Advanced theory of %s", topic),
					"C": fmt.Sprintf("Application of %s", topic),
					"D": fmt.Sprintf("History of %s", topic),
				},
				CorrectOption: "A",
			})
		case 1:
			records = append(records, QuestionRecord{
				QuestionText: fmt.Sprintf("Explain the importance of %s in %s.", topic, subject),
				QuestionType: model.QuestionTypeShort,
				Difficulty:   model.DifficultyMedium,
				Marks:        3,
				TopicName:    topic,
				Answer:       fmt.Sprintf("%s is important in %s because it forms the foundation for understanding key concepts.", topic, subject),
			})
		default:
			records = append(records, QuestionRecord{
				QuestionText: fmt.Sprintf("Discuss the various aspects of %s and its applications.", topic),
				QuestionType: model.QuestionTypeLong,
				Difficulty:   model.DifficultyHard,
				Marks:        5,
				TopicName:    topic,
				Answer:       fmt.Sprintf("Detailed explanation of %s covering theoretical aspects, practical applications, and real-world examples.", topic),
			})
		}
	}
	return records
}
