package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/qforge/qforge-backend/internal/model"
	"github.com/rs/zerolog"
)

// MaxQuestions caps the number of questions requested per paper to bound
// generation cost and response size.
const MaxQuestions = 10

const systemPrompt = "You are an expert teacher creating educational questions. " +
	"Always return a valid JSON array and nothing else."

// TextGenerator is the opaque text-completion dependency. The returned
// string is untrusted and unstructured; the call may time out or fail.
type TextGenerator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Generator turns a paper request into a list of validated question
// records, falling back to synthesized questions whenever the external
// generation path produces nothing usable.
type Generator struct {
	gen TextGenerator
	log zerolog.Logger
}

func New(gen TextGenerator, log zerolog.Logger) *Generator {
	return &Generator{
		gen: gen,
		log: log.With().Str("component", "question_generator").Logger(),
	}
}

// QuestionCount derives how many questions a paper needs from its total
// marks: one question per two marks, capped at MaxQuestions.
func QuestionCount(totalMarks int) int {
	count := totalMarks / 2
	if count > MaxQuestions {
		count = MaxQuestions
	}
	return count
}

// Generate produces between 1 and QuestionCount(req.TotalMarks) records
// for any valid request, and an empty list only when the derived count is
// zero. It never fails: generation, parse, and per-candidate validation
// errors all degrade toward the deterministic fallback set.
func (g *Generator) Generate(ctx context.Context, req *model.GeneratePaperRequest) []QuestionRecord {
	count := QuestionCount(req.TotalMarks)
	if count == 0 {
		return []QuestionRecord{}
	}

	raw, err := g.gen.Generate(ctx, systemPrompt, buildPrompt(req, count))
	if err != nil {
		g.log.Warn().Err(err).Msg("Generation call failed, using fallback questions")
		return Synthesize(req.Subject, req.Topics, count)
	}

	candidates, err := ParseCandidates(raw)
	if err != nil {
		g.log.Warn().Err(err).Int("response_len", len(raw)).Msg("Unparseable generation response, using fallback questions")
		return Synthesize(req.Subject, req.Topics, count)
	}

	records := make([]QuestionRecord, 0, len(candidates))
	for i, candidate := range candidates {
		rec, err := ValidateCandidate(candidate, req.Topics[0])
		if err != nil {
			// One bad candidate never aborts the batch.
			g.log.Debug().Err(err).Int("index", i).Msg("Dropping invalid candidate")
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		g.log.Warn().Int("candidates", len(candidates)).Msg("No valid candidates, using fallback questions")
		return Synthesize(req.Subject, req.Topics, count)
	}

	// Under-generation is accepted; the batch is never padded. Over-
	// generation is truncated so the count bound holds.
	if len(records) > count {
		g.log.Debug().Int("valid", len(records)).Int("count", count).Msg("Truncating over-generated batch")
		records = records[:count]
	}
	return records
}

// buildPrompt renders the user prompt, demanding a bare JSON array with
// the canonical field names so the parser has a fighting chance.
func buildPrompt(req *model.GeneratePaperRequest, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d educational questions for:\n", count)
	fmt.Fprintf(&b, "- Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "- Grade: %s\n", req.Grade)
	fmt.Fprintf(&b, "- Topics: %s\n", strings.Join(req.Topics, ", "))
	fmt.Fprintf(&b, "- Total marks should be around %d\n", req.TotalMarks)
	fmt.Fprintf(&b, "- Duration: %d minutes\n\n", req.Duration)

	b.WriteString("Create a mix of multiple choice, short answer, and long answer questions.\n\n")
	b.WriteString("Respond with a bare JSON array only: no prose, no markdown fences. ")
	b.WriteString("Each element must be an object with these fields:\n")
	b.WriteString(`  "question_text" (string), "question_type" (one of mcq|short|long|fill|true_false), ` + "\n")
	b.WriteString(`  "difficulty" (one of easy|medium|hard), "marks" (integer 1-5), ` + "\n")
	b.WriteString(`  "topic" (string), "answer" (string), ` + "\n")
	b.WriteString(`  and for mcq only: "options" (object with keys A, B, C, D) and "correct_option" (A|B|C|D).` + "\n\n")
	fmt.Fprintf(&b, "Make questions age-appropriate for grade %s students.\n", req.Grade)

	return b.String()
}
