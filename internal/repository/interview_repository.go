package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"interview-ai/internal/domain"
	"interview-ai/internal/repository/models"
	"interview-ai/internal/util"

	"github.com/jmoiron/sqlx"
)

const interviewColumns = `id, user_id, user_name, skill, difficulty, is_completed, total_score, avg_score, questions_attempted, created_at, updated_at`

const responseColumns = `id, interview_id, question_number, question, topic, user_answer, score, feedback, strengths, improvements, confidence_tips, created_at, updated_at`

// sqlxInterviewRepository implements domain.InterviewRepository using sqlx.
type sqlxInterviewRepository struct {
	db *sqlx.DB
	tm *TransactionManager
}

// NewSQLXInterviewRepository creates a new instance of sqlxInterviewRepository.
func NewSQLXInterviewRepository(db *sqlx.DB) domain.InterviewRepository {
	return &sqlxInterviewRepository{db: db, tm: NewTransactionManager(db)}
}

func toDomainInterview(m *models.Interview) *domain.Interview {
	if m == nil {
		return nil
	}
	return &domain.Interview{
		ID:                 m.ID,
		UserID:             m.UserID,
		UserName:           m.UserName.String,
		Skill:              m.Skill,
		Difficulty:         domain.Difficulty(m.Difficulty),
		IsCompleted:        m.IsCompleted,
		TotalScore:         int(m.TotalScore.Int64),
		AvgScore:           m.AvgScore.Float64,
		QuestionsAttempted: int(m.QuestionsAttempted.Int64),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func fromDomainInterview(d *domain.Interview) *models.Interview {
	if d == nil {
		return nil
	}
	m := &models.Interview{
		ID:          d.ID,
		UserID:      d.UserID,
		UserName:    util.StringToNullString(d.UserName),
		Skill:       d.Skill,
		Difficulty:  string(d.Difficulty),
		IsCompleted: d.IsCompleted,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.IsCompleted {
		m.TotalScore = sql.NullInt64{Int64: int64(d.TotalScore), Valid: true}
		m.AvgScore = sql.NullFloat64{Float64: d.AvgScore, Valid: true}
		m.QuestionsAttempted = sql.NullInt64{Int64: int64(d.QuestionsAttempted), Valid: true}
	}
	return m
}

func toDomainResponse(m *models.InterviewResponse) *domain.InterviewResponse {
	if m == nil {
		return nil
	}
	r := &domain.InterviewResponse{
		ID:             m.ID,
		InterviewID:    m.InterviewID,
		QuestionNumber: m.QuestionNumber,
		Question:       m.Question,
		Topic:          m.Topic.String,
		UserAnswer:     m.UserAnswer.String,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	// A NULL score means the question has not been answered yet
	if m.Score.Valid {
		r.Evaluation = &domain.AnswerEvaluation{
			Score:          int(m.Score.Int64),
			Feedback:       m.Feedback.String,
			Strengths:      []string(m.Strengths),
			Improvements:   []string(m.Improvements),
			ConfidenceTips: []string(m.ConfidenceTips),
		}
	}
	return r
}

// CreateInterview inserts the interview and its question rows in one transaction.
func (r *sqlxInterviewRepository) CreateInterview(ctx context.Context, interview *domain.Interview, responses []*domain.InterviewResponse) error {
	now := time.Now()
	if interview.CreatedAt.IsZero() {
		interview.CreatedAt = now
	}
	interview.UpdatedAt = now
	m := fromDomainInterview(interview)

	return r.tm.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, r.db)

		query := `INSERT INTO interviews (id, user_id, user_name, skill, difficulty, is_completed, created_at, updated_at)
		          VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`
		if _, err := exec.ExecContext(ctx, query,
			m.ID, m.UserID, m.UserName, m.Skill, m.Difficulty, m.IsCompleted, m.CreatedAt, m.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to create interview: %w", err)
		}

		responseQuery := `INSERT INTO interview_responses (id, interview_id, question_number, question, topic, created_at, updated_at)
		                  VALUES (:1, :2, :3, :4, :5, :6, :7)`
		for _, resp := range responses {
			if resp.CreatedAt.IsZero() {
				resp.CreatedAt = now
			}
			resp.UpdatedAt = now
			resp.InterviewID = interview.ID
			if _, err := exec.ExecContext(ctx, responseQuery,
				resp.ID, resp.InterviewID, resp.QuestionNumber, resp.Question,
				util.StringToNullString(resp.Topic), resp.CreatedAt, resp.UpdatedAt,
			); err != nil {
				return fmt.Errorf("failed to create interview question %d: %w", resp.QuestionNumber, err)
			}
		}
		return nil
	})
}

// GetInterviewByID returns nil, nil when the interview does not exist.
func (r *sqlxInterviewRepository) GetInterviewByID(ctx context.Context, id string) (*domain.Interview, error) {
	var m models.Interview
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = :1`

	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview by id: %w", err)
	}
	return toDomainInterview(&m), nil
}

// ListInterviewsByUser returns the user's interviews, newest first.
func (r *sqlxInterviewRepository) ListInterviewsByUser(ctx context.Context, userID string) ([]*domain.Interview, error) {
	var rows []models.Interview
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE user_id = :1 ORDER BY created_at DESC`

	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list interviews for user: %w", err)
	}

	interviews := make([]*domain.Interview, 0, len(rows))
	for i := range rows {
		interviews = append(interviews, toDomainInterview(&rows[i]))
	}
	return interviews, nil
}

// GetResponseByID returns nil, nil when the response does not exist.
func (r *sqlxInterviewRepository) GetResponseByID(ctx context.Context, id string) (*domain.InterviewResponse, error) {
	var m models.InterviewResponse
	query := `SELECT ` + responseColumns + ` FROM interview_responses WHERE id = :1`

	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview response by id: %w", err)
	}
	return toDomainResponse(&m), nil
}

// GetResponsesByInterview returns the questions of an interview in order.
func (r *sqlxInterviewRepository) GetResponsesByInterview(ctx context.Context, interviewID string) ([]*domain.InterviewResponse, error) {
	var rows []models.InterviewResponse
	query := `SELECT ` + responseColumns + ` FROM interview_responses WHERE interview_id = :1 ORDER BY question_number`

	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, interviewID); err != nil {
		return nil, fmt.Errorf("failed to get responses for interview: %w", err)
	}

	responses := make([]*domain.InterviewResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, toDomainResponse(&rows[i]))
	}
	return responses, nil
}

// SaveEvaluation stores the answer and its evaluation. Answering again overwrites the previous one.
func (r *sqlxInterviewRepository) SaveEvaluation(ctx context.Context, responseID, userAnswer string, evaluation domain.AnswerEvaluation) error {
	query := `UPDATE interview_responses SET
	            user_answer = :1,
	            score = :2,
	            feedback = :3,
	            strengths = :4,
	            improvements = :5,
	            confidence_tips = :6,
	            updated_at = :7
	          WHERE id = :8`

	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		userAnswer,
		evaluation.Score,
		evaluation.Feedback,
		models.StringSlice(evaluation.Strengths),
		models.StringSlice(evaluation.Improvements),
		models.StringSlice(evaluation.ConfidenceTips),
		time.Now(),
		responseID,
	)
	if err != nil {
		return fmt.Errorf("failed to save evaluation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuestionNotFoundError(responseID)
	}
	return nil
}

// ListCompletedSkills returns the skills that have at least one completed interview.
func (r *sqlxInterviewRepository) ListCompletedSkills(ctx context.Context) ([]string, error) {
	skills := []string{}
	query := `SELECT DISTINCT skill FROM interviews WHERE is_completed = 1 ORDER BY skill`

	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &skills, query); err != nil {
		return nil, fmt.Errorf("failed to list completed skills: %w", err)
	}
	return skills, nil
}

// CompleteInterview marks the interview completed and stores its score.
func (r *sqlxInterviewRepository) CompleteInterview(ctx context.Context, interviewID string, score domain.InterviewScore) error {
	query := `UPDATE interviews SET
	            is_completed = 1,
	            total_score = :1,
	            avg_score = :2,
	            questions_attempted = :3,
	            updated_at = :4
	          WHERE id = :5`

	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		score.TotalScore, score.AvgScore, score.QuestionsAttempted, time.Now(), interviewID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete interview: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewInterviewNotFoundError(interviewID)
	}
	return nil
}
