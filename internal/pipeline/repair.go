package pipeline

import (
	"math"
	"slices"
	"strings"

	"interview-ai/internal/domain"
)

// Generic lists used when the provider omits a list or returns too few items.
var (
	genericStrengths = []string{
		"Attempted to address the question directly",
		"Showed awareness of the core concepts",
		"Communicated the answer in a readable way",
	}
	genericImprovements = []string{
		"Include comprehensive technical details and proper terminology",
		"Provide specific real-world examples and use cases",
		"Explain reasoning, trade-offs, and alternative approaches",
	}
	genericConfidenceTips = []string{
		"Structure answers clearly: introduce concept, explain details, provide example",
		"Practice explaining technical concepts out loud before interviews",
		"Use the STAR method for behavioral questions: Situation, Task, Action, Result",
	}
)

const genericFeedback = "Thanks for your answer. Keep building on it by explaining the key concepts in your own words and backing them up with a concrete example."

// repairQuestions turns a parsed batch into questions.
// Elements without a question are dropped, difficulty is forced and topic defaults to skill.
func repairQuestions(parsed any, skill string, difficulty domain.Difficulty, count int) ([]domain.InterviewQuestion, error) {
	items, err := validateQuestionBatch(parsed)
	if err != nil {
		return nil, err
	}

	questions := make([]domain.InterviewQuestion, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		text, _ := obj["question"].(string)
		if strings.TrimSpace(text) == "" {
			continue
		}
		topic, _ := obj["topic"].(string)
		if strings.TrimSpace(topic) == "" {
			topic = skill
		}
		questions = append(questions, domain.InterviewQuestion{
			Text:       text,
			Difficulty: difficulty,
			Topic:      topic,
		})
		if len(questions) == count {
			break
		}
	}

	if len(questions) == 0 {
		return nil, stageErrorf(ValidationFailed, "none of the %d items had a question", len(items))
	}
	return questions, nil
}

// repairEvaluation builds a well-formed evaluation from a parsed object.
// It only fails when the payload is not an object. The names of repaired fields are returned.
func repairEvaluation(parsed any, answer string) (domain.AnswerEvaluation, []string, error) {
	obj, ok := parsed.(map[string]any)
	if !ok {
		return domain.AnswerEvaluation{}, nil, stageErrorf(ParseFailed, "evaluation is %T, not an object", parsed)
	}

	var repairs []string
	eval := domain.AnswerEvaluation{}

	if score, ok := scoreFrom(obj["score"]); ok {
		eval.Score = score
	} else {
		eval.Score = HeuristicScore(answer)
		repairs = append(repairs, "score")
	}

	if fb, _ := obj["feedback"].(string); strings.TrimSpace(fb) != "" {
		eval.Feedback = fb
	} else {
		eval.Feedback = genericFeedback
		repairs = append(repairs, "feedback")
	}

	var fixed bool
	if eval.Strengths, fixed = repairList(obj["strengths"], genericStrengths); fixed {
		repairs = append(repairs, "strengths")
	}
	if eval.Improvements, fixed = repairList(obj["improvements"], genericImprovements); fixed {
		repairs = append(repairs, "improvements")
	}
	if eval.ConfidenceTips, fixed = repairList(obj["confidenceTips"], genericConfidenceTips); fixed {
		repairs = append(repairs, "confidenceTips")
	}

	return eval, repairs, nil
}

// scoreFrom accepts only numbers within [0, MaxScore].
// Out-of-range values are distrusted rather than clamped.
func scoreFrom(v any) (int, bool) {
	n, ok := v.(float64)
	if !ok || math.IsNaN(n) || n < 0 || n > domain.MaxScore {
		return 0, false
	}
	return int(math.Round(n)), true
}

// repairList returns exactly EvaluationListSize items.
// A missing, non-array or empty value is replaced by generic; otherwise blank and
// non-string items are dropped and the rest is truncated or padded from generic.
func repairList(v any, generic []string) ([]string, bool) {
	raw, ok := v.([]any)
	if !ok || len(raw) == 0 {
		return slices.Clone(generic), true
	}

	items := make([]string, 0, domain.EvaluationListSize)
	for _, r := range raw {
		s, ok := r.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		items = append(items, s)
	}

	fixed := len(items) != len(raw) || len(items) != domain.EvaluationListSize
	if len(items) > domain.EvaluationListSize {
		items = items[:domain.EvaluationListSize]
	}
	for _, filler := range generic {
		if len(items) == domain.EvaluationListSize {
			break
		}
		if !slices.Contains(items, filler) {
			items = append(items, filler)
		}
	}
	return items, fixed
}

