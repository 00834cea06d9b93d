package generator

import (
	"reflect"
	"testing"

	"github.com/qforge/qforge-backend/internal/model"
)

func TestSynthesize_Deterministic(t *testing.T) {
	first := Synthesize("Math", []string{"Fractions", "Decimals"}, 5)
	second := Synthesize("Math", []string{"Fractions", "Decimals"}, 5)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two identical calls produced different output")
	}
}

func TestSynthesize_CountAndCycle(t *testing.T) {
	records := Synthesize("Science", []string{"Plants"}, 6)
	if len(records) != 6 {
		t.Fatalf("expected 6 records, got %d", len(records))
	}

	wantTypes := []model.QuestionType{
		model.QuestionTypeMCQ, model.QuestionTypeShort, model.QuestionTypeLong,
		model.QuestionTypeMCQ, model.QuestionTypeShort, model.QuestionTypeLong,
	}
	wantMarks := []int{1, 3, 5, 1, 3, 5}

	for i, rec := range records {
		if rec.QuestionType != wantTypes[i] {
			t.Errorf("record %d: expected type %s, got %s", i, wantTypes[i], rec.QuestionType)
		}
		if rec.Marks != wantMarks[i] {
			t.Errorf("record %d: expected %d marks, got %d", i, wantMarks[i], rec.Marks)
		}
		if rec.TopicName != "Plants" {
			t.Errorf("record %d: expected topic Plants, got %q", i, rec.TopicName)
		}
		if rec.QuestionText == "" || rec.Answer == "" {
			t.Errorf("record %d: empty question or answer", i)
		}
	}
}

func TestSynthesize_TopicRotation(t *testing.T) {
	topics := []string{"Fractions", "Decimals", "Percentages"}
	records := Synthesize("Math", topics, 7)

	for i, rec := range records {
		want := topics[i%len(topics)]
		if rec.TopicName != want {
			t.Errorf("record %d: expected topic %q, got %q", i, want, rec.TopicName)
		}
	}
}

func TestSynthesize_MCQShape(t *testing.T) {
	records := Synthesize("Math", []string{"Algebra"}, 1)
	rec := records[0]

	if rec.QuestionType != model.QuestionTypeMCQ {
		t.Fatalf("record 0 should be mcq, got %s", rec.QuestionType)
	}
	if len(rec.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(rec.Options))
	}
	for _, key := range optionKeys {
		if rec.Options[key] == "" {
			t.Errorf("option %s is empty", key)
		}
	}
	if rec.CorrectOption != "A" {
		t.Errorf("expected correct option A, got %q", rec.CorrectOption)
	}
	if rec.Answer != rec.Options["A"] {
		t.Errorf("answer should match the correct option text")
	}
}

func TestSynthesize_DifficultyCycle(t *testing.T) {
	records := Synthesize("Math", []string{"Algebra"}, 3)

	if records[0].Difficulty != model.DifficultyMedium ||
		records[1].Difficulty != model.DifficultyMedium ||
		records[2].Difficulty != model.DifficultyHard {
		t.Errorf("unexpected difficulty cycle: %s %s %s",
			records[0].Difficulty, records[1].Difficulty, records[2].Difficulty)
	}
}

func TestSynthesize_ZeroCount(t *testing.T) {
	if got := Synthesize("Math", []string{"Algebra"}, 0); len(got) != 0 {
		t.Errorf("expected empty slice for count 0, got %d records", len(got))
	}
	if got := Synthesize("Math", nil, 5); len(got) != 0 {
		t.Errorf("expected empty slice for no topics, got %d records", len(got))
	}
}
