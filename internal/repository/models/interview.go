package models

import (
	"database/sql"
	"time"
)

// Interview is a row of the INTERVIEWS table.
type Interview struct {
	ID                 string          `db:"ID"`                  // ULID
	UserID             string          `db:"USER_ID"`             // Subject of the caller's token
	UserName           sql.NullString  `db:"USER_NAME"`           // Display name shown on leaderboards
	Skill              string          `db:"SKILL"`               // e.g. "Python"
	Difficulty         string          `db:"DIFFICULTY"`          // easy | medium | hard
	IsCompleted        bool            `db:"IS_COMPLETED"`        // Set once by CompleteInterview
	TotalScore         sql.NullInt64   `db:"TOTAL_SCORE"`         // Sum of answered scores
	AvgScore           sql.NullFloat64 `db:"AVG_SCORE"`           // TotalScore / QuestionsAttempted
	QuestionsAttempted sql.NullInt64   `db:"QUESTIONS_ATTEMPTED"` // Number of answered questions
	CreatedAt          time.Time       `db:"CREATED_AT"`
	UpdatedAt          time.Time       `db:"UPDATED_AT"`
}

// InterviewResponse is a row of the INTERVIEW_RESPONSES table.
// The evaluation columns stay NULL until the question is answered.
type InterviewResponse struct {
	ID             string         `db:"ID"`
	InterviewID    string         `db:"INTERVIEW_ID"`
	QuestionNumber int            `db:"QUESTION_NUMBER"` // 1-based position within the interview
	Question       string         `db:"QUESTION"`
	Topic          sql.NullString `db:"TOPIC"`
	UserAnswer     sql.NullString `db:"USER_ANSWER"`
	Score          sql.NullInt64  `db:"SCORE"`
	Feedback       sql.NullString `db:"FEEDBACK"`
	Strengths      StringSlice    `db:"STRENGTHS"`
	Improvements   StringSlice    `db:"IMPROVEMENTS"`
	ConfidenceTips StringSlice    `db:"CONFIDENCE_TIPS"`
	CreatedAt      time.Time      `db:"CREATED_AT"`
	UpdatedAt      time.Time      `db:"UPDATED_AT"`
}
