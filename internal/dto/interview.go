package dto

import "time"

// StartInterviewRequest is the body of POST /api/interviews/start
type StartInterviewRequest struct {
	Skill      string `json:"skill"`
	Difficulty string `json:"difficulty,omitempty"`
}

// QuestionResponse is one question of an interview
type QuestionResponse struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Question string `json:"question"`
	Topic    string `json:"topic,omitempty"`
	Answered bool   `json:"answered"`
}

// StartInterviewResponse represents a freshly created interview
type StartInterviewResponse struct {
	InterviewID string             `json:"interview_id"`
	Skill       string             `json:"skill"`
	Difficulty  string             `json:"difficulty"`
	Questions   []QuestionResponse `json:"questions"`
}

// SubmitAnswerRequest is the body of POST /api/interviews/:id/answer
type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// EvaluationResponse is the feedback for one answer
type EvaluationResponse struct {
	Score          int      `json:"score"`
	Feedback       string   `json:"feedback"`
	Strengths      []string `json:"strengths"`
	Improvements   []string `json:"improvements"`
	ConfidenceTips []string `json:"confidence_tips"`
}

type SubmitAnswerResponse struct {
	QuestionID string             `json:"question_id"`
	Evaluation EvaluationResponse `json:"evaluation"`
}

// InterviewSummary is an interview without its questions
type InterviewSummary struct {
	ID                 string    `json:"id"`
	Skill              string    `json:"skill"`
	Difficulty         string    `json:"difficulty"`
	IsCompleted        bool      `json:"is_completed"`
	TotalScore         int       `json:"total_score"`
	AvgScore           float64   `json:"avg_score"`
	QuestionsAttempted int       `json:"questions_attempted"`
	CreatedAt          time.Time `json:"created_at"`
}

type InterviewListResponse struct {
	Interviews []InterviewSummary `json:"interviews"`
}

type InterviewQuestionsResponse struct {
	InterviewID string             `json:"interview_id"`
	Skill       string             `json:"skill"`
	Difficulty  string             `json:"difficulty"`
	IsCompleted bool               `json:"is_completed"`
	Questions   []QuestionResponse `json:"questions"`
}

// CompleteInterviewResponse carries the final score of an interview
type CompleteInterviewResponse struct {
	InterviewID        string  `json:"interview_id"`
	TotalScore         int     `json:"total_score"`
	AvgScore           float64 `json:"avg_score"`
	QuestionsAttempted int     `json:"questions_attempted"`
	TotalQuestions     int     `json:"total_questions"`
	Performance        string  `json:"performance"`
}

// ReportItem is one question of a report with the answer given, if any
type ReportItem struct {
	Number     int                 `json:"number"`
	Question   string              `json:"question"`
	Topic      string              `json:"topic,omitempty"`
	UserAnswer string              `json:"user_answer,omitempty"`
	Answered   bool                `json:"answered"`
	Evaluation *EvaluationResponse `json:"evaluation,omitempty"`
}

// ReportResponse represents the detailed report of an interview
type ReportResponse struct {
	Interview      InterviewSummary `json:"interview"`
	Performance    string           `json:"performance"`
	TotalQuestions int              `json:"total_questions"`
	Items          []ReportItem     `json:"items"`
}

// SkillsResponse lists the skills that have a leaderboard
type SkillsResponse struct {
	Skills []string `json:"skills"`
}

type LeaderboardEntryResponse struct {
	Rank     int     `json:"rank"`
	UserID   string  `json:"user_id"`
	UserName string  `json:"user_name,omitempty"`
	AvgScore float64 `json:"avg_score"`
}

// LeaderboardResponse lists the best users. Skill is empty for the global board.
type LeaderboardResponse struct {
	Skill   string                     `json:"skill,omitempty"`
	Entries []LeaderboardEntryResponse `json:"entries"`
}
