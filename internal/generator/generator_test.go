package generator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/qforge/qforge-backend/internal/model"
	"github.com/rs/zerolog"
)

type fakeTextGenerator struct {
	response string
	err      error
	calls    int
}

func (f *fakeTextGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.response, f.err
}

func paperRequest(totalMarks int) *model.GeneratePaperRequest {
	return &model.GeneratePaperRequest{
		Subject:    "Math",
		Grade:      "5",
		Topics:     []string{"Fractions", "Decimals"},
		TotalMarks: totalMarks,
		Duration:   60,
	}
}

func TestQuestionCount(t *testing.T) {
	tests := []struct {
		totalMarks int
		want       int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{10, 5},
		{20, 10},
		{50, 10},
		{100, 10},
	}
	for _, tt := range tests {
		if got := QuestionCount(tt.totalMarks); got != tt.want {
			t.Errorf("QuestionCount(%d) = %d, want %d", tt.totalMarks, got, tt.want)
		}
	}
}

func TestGenerate_CallError(t *testing.T) {
	fake := &fakeTextGenerator{err: errors.New("connection refused")}
	g := New(fake, zerolog.Nop())
	req := paperRequest(20)

	got := g.Generate(context.Background(), req)
	want := Synthesize(req.Subject, req.Topics, 10)

	if !reflect.DeepEqual(got, want) {
		t.Fatal("failed generation call should yield exactly the synthesized set")
	}
}

func TestGenerate_UnparseableResponse(t *testing.T) {
	fake := &fakeTextGenerator{response: "Sorry, I cannot help with that."}
	g := New(fake, zerolog.Nop())
	req := paperRequest(10)

	got := g.Generate(context.Background(), req)
	want := Synthesize(req.Subject, req.Topics, 5)

	if !reflect.DeepEqual(got, want) {
		t.Fatal("unparseable response should yield exactly the synthesized set")
	}
}

func TestGenerate_MixedCandidates(t *testing.T) {
	// One valid candidate and one missing question_text. The batch keeps
	// the valid one and does not trigger the fallback.
	fake := &fakeTextGenerator{response: `[
		{"question_text": "What is 1/2 + 1/4?", "question_type": "short",
		 "difficulty": "easy", "marks": 2, "topic": "Fractions", "answer": "3/4"},
		{"question_type": "short", "marks": 2, "topic": "Fractions"}
	]`}
	g := New(fake, zerolog.Nop())

	got := g.Generate(context.Background(), paperRequest(20))
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].QuestionText != "What is 1/2 + 1/4?" {
		t.Errorf("unexpected question text %q", got[0].QuestionText)
	}
	if got[0].QuestionType != model.QuestionTypeShort {
		t.Errorf("expected short, got %s", got[0].QuestionType)
	}
}

func TestGenerate_AllCandidatesInvalid(t *testing.T) {
	fake := &fakeTextGenerator{response: `[{"marks": 2}, {"question_text": "  "}]`}
	g := New(fake, zerolog.Nop())
	req := paperRequest(6)

	got := g.Generate(context.Background(), req)
	want := Synthesize(req.Subject, req.Topics, 3)

	if !reflect.DeepEqual(got, want) {
		t.Fatal("all-invalid batch should yield exactly the synthesized set")
	}
}

func TestGenerate_TruncatesOverGeneration(t *testing.T) {
	// Eight valid candidates against a count bound of three.
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < 8; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"question_text": "Question %d", "question_type": "short",
			"difficulty": "easy", "marks": 2, "topic": "Fractions", "answer": "A%d"}`, i, i)
	}
	sb.WriteString("]")

	fake := &fakeTextGenerator{response: sb.String()}
	g := New(fake, zerolog.Nop())

	got := g.Generate(context.Background(), paperRequest(6))
	if len(got) != 3 {
		t.Fatalf("expected batch truncated to 3 records, got %d", len(got))
	}
	for i, rec := range got {
		want := fmt.Sprintf("Question %d", i)
		if rec.QuestionText != want {
			t.Errorf("record %d: expected %q, got %q", i, want, rec.QuestionText)
		}
	}
}

func TestGenerate_ZeroCount(t *testing.T) {
	fake := &fakeTextGenerator{}
	g := New(fake, zerolog.Nop())

	got := g.Generate(context.Background(), paperRequest(1))
	if len(got) != 0 {
		t.Fatalf("expected empty batch, got %d records", len(got))
	}
	if fake.calls != 0 {
		t.Error("no generation call should be made when the count is zero")
	}
}

func TestGenerate_FencedResponse(t *testing.T) {
	fake := &fakeTextGenerator{response: "```json\n" + `[
		{"question_text": "Define a fraction.", "question_type": "short",
		 "difficulty": "medium", "marks": 3, "topic": "Fractions", "answer": "A part of a whole."}
	]` + "\n```"}
	g := New(fake, zerolog.Nop())

	got := g.Generate(context.Background(), paperRequest(10))
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Marks != 3 {
		t.Errorf("expected 3 marks, got %d", got[0].Marks)
	}
}
