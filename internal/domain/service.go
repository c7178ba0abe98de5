package domain

import (
	"context"
)

// ContentPipeline produces interview questions and answer evaluations.
// Implementations never fail: when the provider is unusable they return
// locally generated content instead.
type ContentPipeline interface {
	// GenerateQuestions returns between 1 and count questions, all with the requested difficulty.
	GenerateQuestions(ctx context.Context, skill string, difficulty Difficulty, count int) []InterviewQuestion
	// EvaluateAnswer scores an answer. The answer must be non-empty after trimming.
	EvaluateAnswer(ctx context.Context, question, answer, skill string) AnswerEvaluation
}

// InterviewRepository persists interviews and their responses.
// Getters return nil, nil when the record does not exist.
type InterviewRepository interface {
	CreateInterview(ctx context.Context, interview *Interview, responses []*InterviewResponse) error
	GetInterviewByID(ctx context.Context, id string) (*Interview, error)
	ListInterviewsByUser(ctx context.Context, userID string) ([]*Interview, error)
	GetResponseByID(ctx context.Context, id string) (*InterviewResponse, error)
	GetResponsesByInterview(ctx context.Context, interviewID string) ([]*InterviewResponse, error)
	SaveEvaluation(ctx context.Context, responseID, userAnswer string, evaluation AnswerEvaluation) error
	CompleteInterview(ctx context.Context, interviewID string, score InterviewScore) error
	// ListCompletedSkills returns the distinct skills of completed interviews in alphabetical order.
	ListCompletedSkills(ctx context.Context) ([]string, error)
}

// Leaderboard ranks users by their best average interview score
type Leaderboard interface {
	// Record stores avgScore for the user under skill unless a higher score is already there.
	Record(ctx context.Context, skill, userID, userName string, avgScore float64) error
	// Top returns at most limit entries ordered by score, best first.
	Top(ctx context.Context, skill string, limit int) ([]LeaderboardEntry, error)
}
