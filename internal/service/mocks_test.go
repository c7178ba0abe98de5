package service

import (
	"context"

	"interview-ai/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockInterviewRepository ---
type MockInterviewRepository struct {
	mock.Mock
}

func (m *MockInterviewRepository) CreateInterview(ctx context.Context, interview *domain.Interview, responses []*domain.InterviewResponse) error {
	args := m.Called(ctx, interview, responses)
	return args.Error(0)
}

func (m *MockInterviewRepository) GetInterviewByID(ctx context.Context, id string) (*domain.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}

func (m *MockInterviewRepository) ListInterviewsByUser(ctx context.Context, userID string) ([]*domain.Interview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Interview), args.Error(1)
}

func (m *MockInterviewRepository) GetResponseByID(ctx context.Context, id string) (*domain.InterviewResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewResponse), args.Error(1)
}

func (m *MockInterviewRepository) GetResponsesByInterview(ctx context.Context, interviewID string) ([]*domain.InterviewResponse, error) {
	args := m.Called(ctx, interviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InterviewResponse), args.Error(1)
}

func (m *MockInterviewRepository) SaveEvaluation(ctx context.Context, responseID, userAnswer string, evaluation domain.AnswerEvaluation) error {
	args := m.Called(ctx, responseID, userAnswer, evaluation)
	return args.Error(0)
}

func (m *MockInterviewRepository) CompleteInterview(ctx context.Context, interviewID string, score domain.InterviewScore) error {
	args := m.Called(ctx, interviewID, score)
	return args.Error(0)
}

func (m *MockInterviewRepository) ListCompletedSkills(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- MockContentPipeline ---
type MockContentPipeline struct {
	mock.Mock
}

func (m *MockContentPipeline) GenerateQuestions(ctx context.Context, skill string, difficulty domain.Difficulty, count int) []domain.InterviewQuestion {
	args := m.Called(ctx, skill, difficulty, count)
	return args.Get(0).([]domain.InterviewQuestion)
}

func (m *MockContentPipeline) EvaluateAnswer(ctx context.Context, question, answer, skill string) domain.AnswerEvaluation {
	args := m.Called(ctx, question, answer, skill)
	return args.Get(0).(domain.AnswerEvaluation)
}

// --- MockLeaderboard ---
type MockLeaderboard struct {
	mock.Mock
}

func (m *MockLeaderboard) Record(ctx context.Context, skill, userID, userName string, avgScore float64) error {
	args := m.Called(ctx, skill, userID, userName, avgScore)
	return args.Error(0)
}

func (m *MockLeaderboard) Top(ctx context.Context, skill string, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, skill, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}
