package domain

import (
	"strings"
	"time"
)

// Difficulty is the requested level of an interview
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is used when a caller does not pick one
const DefaultDifficulty = DifficultyMedium

// EvaluationListSize is the exact length of every list in an AnswerEvaluation
const EvaluationListSize = 3

// MaxScore is the top of the evaluation scale
const MaxScore = 10

// ParseDifficulty converts free text into a Difficulty.
// It reports false when the value is not one of easy, medium or hard.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyMedium:
		return DifficultyMedium, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}

func (d Difficulty) String() string {
	return string(d)
}

// InterviewQuestion is a single generated question
type InterviewQuestion struct {
	Text       string     `json:"question"`
	Difficulty Difficulty `json:"difficulty"`
	Topic      string     `json:"topic"`
}

// AnswerEvaluation is the structured feedback for one submitted answer.
// Score is within [0, MaxScore] and every list has exactly EvaluationListSize items.
type AnswerEvaluation struct {
	Score          int      `json:"score"`
	Feedback       string   `json:"feedback"`
	Strengths      []string `json:"strengths"`
	Improvements   []string `json:"improvements"`
	ConfidenceTips []string `json:"confidenceTips"`
}

// Interview is one practice session of a user for a skill
type Interview struct {
	ID                 string
	UserID             string
	UserName           string
	Skill              string
	Difficulty         Difficulty
	IsCompleted        bool
	TotalScore         int
	AvgScore           float64
	QuestionsAttempted int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewInterview creates a new Interview instance
func NewInterview(id, userID, userName, skill string, difficulty Difficulty) *Interview {
	now := time.Now()
	return &Interview{
		ID:         id,
		UserID:     userID,
		UserName:   userName,
		Skill:      skill,
		Difficulty: difficulty,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// InterviewResponse is a question of an interview together with the user's answer
// and its evaluation once the answer has been submitted.
type InterviewResponse struct {
	ID             string
	InterviewID    string
	QuestionNumber int
	Question       string
	Topic          string
	UserAnswer     string
	Evaluation     *AnswerEvaluation
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsAnswered reports whether the response already carries an evaluation
func (r *InterviewResponse) IsAnswered() bool {
	return r.Evaluation != nil
}

// InterviewScore is the aggregate computed when an interview is completed
type InterviewScore struct {
	TotalScore         int
	AvgScore           float64
	QuestionsAttempted int
}

// ScoreResponses sums the scores of answered responses.
// AvgScore is zero when nothing was answered.
func ScoreResponses(responses []*InterviewResponse) InterviewScore {
	var s InterviewScore
	for _, r := range responses {
		if r == nil || !r.IsAnswered() {
			continue
		}
		s.TotalScore += r.Evaluation.Score
		s.QuestionsAttempted++
	}
	if s.QuestionsAttempted > 0 {
		s.AvgScore = float64(s.TotalScore) / float64(s.QuestionsAttempted)
	}
	return s
}

// PerformanceLabel describes an average score the way reports show it
func PerformanceLabel(avg float64) string {
	switch {
	case avg >= 8:
		return "Excellent Performance"
	case avg >= 6:
		return "Good Performance"
	case avg >= 4:
		return "Average Performance"
	default:
		return "Needs Improvement"
	}
}

// LeaderboardEntry is one ranked user on a leaderboard
type LeaderboardEntry struct {
	Rank     int
	UserID   string
	UserName string
	AvgScore float64
}
