// Package pipeline turns unreliable provider output into interview questions and
// answer evaluations. Every call returns usable content: failures anywhere along
// prompt → provider → extraction → validation end in local fallback content.
package pipeline

import (
	"context"

	"interview-ai/internal/adapter/provider"
	"interview-ai/internal/domain"
	"interview-ai/internal/logger"

	"go.uber.org/zap"
)

// Config wires a Pipeline. A nil Gateway means no provider is configured.
type Config struct {
	Gateway provider.Gateway
	Logger  *zap.Logger
}

// Pipeline is the content pipeline. It holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	gateway provider.Gateway
	log     *zap.Logger
}

var _ domain.ContentPipeline = (*Pipeline)(nil)

// New creates a Pipeline from cfg
func New(cfg Config) *Pipeline {
	log := cfg.Logger
	if log == nil {
		log = logger.Get()
	}
	return &Pipeline{gateway: cfg.Gateway, log: log.Named("pipeline")}
}

// ProviderName returns the configured provider, or "none"
func (p *Pipeline) ProviderName() string {
	if p.gateway == nil {
		return "none"
	}
	return p.gateway.Name()
}

// GenerateQuestions returns between 1 and count questions for skill.
func (p *Pipeline) GenerateQuestions(ctx context.Context, skill string, difficulty domain.Difficulty, count int) []domain.InterviewQuestion {
	questions, _ := p.GenerateQuestionsWithOutcome(ctx, skill, difficulty, count)
	return questions
}

// GenerateQuestionsWithOutcome is GenerateQuestions that also reports how the request ended.
func (p *Pipeline) GenerateQuestionsWithOutcome(ctx context.Context, skill string, difficulty domain.Difficulty, count int) ([]domain.InterviewQuestion, Outcome) {
	if count < 1 {
		count = 1
	}
	if _, ok := domain.ParseDifficulty(string(difficulty)); !ok {
		difficulty = domain.DefaultDifficulty
	}

	log := p.log.With(
		zap.String("skill", skill),
		zap.String("difficulty", string(difficulty)),
		zap.Int("count", count),
	)

	questions, err := p.generateQuestions(ctx, log, skill, difficulty, count)
	if err != nil {
		log.Warn("Question generation failed, using fallback questions",
			zap.String("failure", KindOf(err).String()),
			zap.Error(err))
		return FallbackQuestions(skill, difficulty, count), fellBack(err)
	}

	log.Info("Generated questions", zap.Int("generated", len(questions)))
	return questions, delivered(nil)
}

func (p *Pipeline) generateQuestions(ctx context.Context, log *zap.Logger, skill string, difficulty domain.Difficulty, count int) ([]domain.InterviewQuestion, error) {
	if p.gateway == nil {
		return nil, &StageError{Kind: NotConfigured, Err: errNoProvider}
	}

	prompt := BuildQuestionsPrompt(skill, difficulty, count)
	result := p.gateway.Generate(ctx, prompt, provider.QuestionParams)
	if !result.OK() {
		return nil, failureFromResult(result)
	}
	log.Debug("Raw provider response", zap.String("provider", p.gateway.Name()), zap.String("raw_response", result.Text))

	payload, err := ExtractPayload(result.Text, ShapeArray)
	if err != nil {
		return nil, err
	}
	parsed, err := parsePayload(payload)
	if err != nil {
		return nil, err
	}
	return repairQuestions(parsed, skill, difficulty, count)
}

// EvaluateAnswer scores answer. The result is always well formed.
// Callers must reject answers that are empty after trimming.
func (p *Pipeline) EvaluateAnswer(ctx context.Context, question, answer, skill string) domain.AnswerEvaluation {
	eval, _ := p.EvaluateAnswerWithOutcome(ctx, question, answer, skill)
	return eval
}

// EvaluateAnswerWithOutcome is EvaluateAnswer that also reports how the request ended.
func (p *Pipeline) EvaluateAnswerWithOutcome(ctx context.Context, question, answer, skill string) (domain.AnswerEvaluation, Outcome) {
	log := p.log.With(
		zap.String("skill", skill),
		zap.Int("answer_length", len(answer)),
	)

	eval, repairs, err := p.evaluateAnswer(ctx, log, question, answer, skill)
	if err != nil {
		log.Warn("Answer evaluation failed, using heuristic evaluation",
			zap.String("failure", KindOf(err).String()),
			zap.Error(err))
		return FallbackEvaluation(answer), fellBack(err)
	}

	if len(repairs) > 0 {
		log.Info("Repaired evaluation fields", zap.Strings("fields", repairs))
	}
	return eval, delivered(repairs)
}

func (p *Pipeline) evaluateAnswer(ctx context.Context, log *zap.Logger, question, answer, skill string) (domain.AnswerEvaluation, []string, error) {
	if p.gateway == nil {
		return domain.AnswerEvaluation{}, nil, &StageError{Kind: NotConfigured, Err: errNoProvider}
	}

	prompt := BuildEvaluationPrompt(question, answer, skill)
	result := p.gateway.Generate(ctx, prompt, provider.EvaluationParams)
	if !result.OK() {
		return domain.AnswerEvaluation{}, nil, failureFromResult(result)
	}
	log.Debug("Raw provider response", zap.String("provider", p.gateway.Name()), zap.String("raw_response", result.Text))

	payload, err := ExtractPayload(result.Text, ShapeObject)
	if err != nil {
		return domain.AnswerEvaluation{}, nil, err
	}
	parsed, err := parsePayload(payload)
	if err != nil {
		return domain.AnswerEvaluation{}, nil, err
	}
	if verr := checkEvaluation(parsed); verr != nil {
		log.Debug("Evaluation needs repair", zap.String("reason", verr.Error()))
	}
	return repairEvaluation(parsed, answer)
}
