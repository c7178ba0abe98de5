package service

import (
	"context"
	"errors"
	"strings"

	"interview-ai/internal/domain"
	"interview-ai/internal/dto"
	"interview-ai/internal/logger"
	"interview-ai/internal/util"
	"interview-ai/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuestionsPerInterview is how many questions a new interview asks for
const QuestionsPerInterview = 10

// InterviewService defines the interview operations exposed over HTTP
type InterviewService interface {
	StartInterview(ctx context.Context, userID, userName string, req *dto.StartInterviewRequest) (*dto.StartInterviewResponse, error)
	SubmitAnswer(ctx context.Context, userID, interviewID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	CompleteInterview(ctx context.Context, userID, interviewID string) (*dto.CompleteInterviewResponse, error)
	ListInterviews(ctx context.Context, userID string) (*dto.InterviewListResponse, error)
	GetQuestions(ctx context.Context, userID, interviewID string) (*dto.InterviewQuestionsResponse, error)
	GetReport(ctx context.Context, userID, interviewID string) (*dto.ReportResponse, error)
	Leaderboard(ctx context.Context, skill string, limit int) (*dto.LeaderboardResponse, error)
	LeaderboardSkills(ctx context.Context) (*dto.SkillsResponse, error)
}

type interviewService struct {
	repo      domain.InterviewRepository
	pipeline  domain.ContentPipeline
	board     domain.Leaderboard
	validator *validation.Validator
}

// NewInterviewService creates a new InterviewService. board may be nil, in which
// case completed interviews are not ranked and Leaderboard returns no entries.
func NewInterviewService(repo domain.InterviewRepository, pipeline domain.ContentPipeline, board domain.Leaderboard) InterviewService {
	return &interviewService{
		repo:      repo,
		pipeline:  pipeline,
		board:     board,
		validator: validation.NewValidator(),
	}
}

func (s *interviewService) StartInterview(ctx context.Context, userID, userName string, req *dto.StartInterviewRequest) (*dto.StartInterviewResponse, error) {
	if errs := s.validator.ValidateStartInterview(req.Skill, req.Difficulty); len(errs) > 0 {
		return nil, errs
	}

	skill := strings.TrimSpace(req.Skill)
	difficulty := domain.DefaultDifficulty
	if d, ok := domain.ParseDifficulty(req.Difficulty); ok {
		difficulty = d
	}

	questions := s.pipeline.GenerateQuestions(ctx, skill, difficulty, QuestionsPerInterview)

	interview := domain.NewInterview(util.NewULID(), userID, userName, skill, difficulty)
	responses := make([]*domain.InterviewResponse, 0, len(questions))
	for i, q := range questions {
		responses = append(responses, &domain.InterviewResponse{
			ID:             util.NewULID(),
			InterviewID:    interview.ID,
			QuestionNumber: i + 1,
			Question:       q.Text,
			Topic:          q.Topic,
		})
	}

	if err := s.repo.CreateInterview(ctx, interview, responses); err != nil {
		return nil, domain.NewInternalError("Failed to create interview", err)
	}

	logger.Get().Info("Interview started",
		zap.String("interviewID", interview.ID),
		zap.String("userID", userID),
		zap.String("skill", skill),
		zap.String("difficulty", difficulty.String()),
		zap.Int("questions", len(responses)))

	return &dto.StartInterviewResponse{
		InterviewID: interview.ID,
		Skill:       interview.Skill,
		Difficulty:  interview.Difficulty.String(),
		Questions:   toQuestionResponses(responses),
	}, nil
}

func (s *interviewService) SubmitAnswer(ctx context.Context, userID, interviewID string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	if errs := s.validator.ValidateSubmitAnswer(req.QuestionID, req.Answer); len(errs) > 0 {
		return nil, errs
	}
	answer := strings.TrimSpace(req.Answer)

	interview, err := s.ownedInterview(ctx, userID, interviewID)
	if err != nil {
		return nil, err
	}
	if interview.IsCompleted {
		return nil, domain.NewInterviewClosedError(interviewID)
	}

	response, err := s.repo.GetResponseByID(ctx, req.QuestionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if response == nil || response.InterviewID != interview.ID {
		return nil, domain.NewQuestionNotFoundError(req.QuestionID)
	}

	evaluation := s.pipeline.EvaluateAnswer(ctx, response.Question, answer, interview.Skill)

	if err := s.repo.SaveEvaluation(ctx, response.ID, answer, evaluation); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		return nil, domain.NewInternalError("Failed to save evaluation", err)
	}

	return &dto.SubmitAnswerResponse{
		QuestionID: response.ID,
		Evaluation: toEvaluationResponse(evaluation),
	}, nil
}

func (s *interviewService) CompleteInterview(ctx context.Context, userID, interviewID string) (*dto.CompleteInterviewResponse, error) {
	interview, err := s.ownedInterview(ctx, userID, interviewID)
	if err != nil {
		return nil, err
	}
	if interview.IsCompleted {
		return nil, domain.NewInterviewClosedError(interviewID)
	}

	responses, err := s.repo.GetResponsesByInterview(ctx, interview.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get interview responses", err)
	}

	score := domain.ScoreResponses(responses)
	if err := s.repo.CompleteInterview(ctx, interview.ID, score); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		return nil, domain.NewInternalError("Failed to complete interview", err)
	}

	// Ranking is best effort, the interview is already stored as completed
	if s.board != nil && score.QuestionsAttempted > 0 {
		if err := s.board.Record(ctx, interview.Skill, interview.UserID, interview.UserName, score.AvgScore); err != nil {
			logger.Get().Warn("Failed to record leaderboard score",
				zap.Error(err),
				zap.String("interviewID", interview.ID),
				zap.String("skill", interview.Skill))
		}
	}

	avg := util.RoundTo(score.AvgScore, 2)
	return &dto.CompleteInterviewResponse{
		InterviewID:        interview.ID,
		TotalScore:         score.TotalScore,
		AvgScore:           avg,
		QuestionsAttempted: score.QuestionsAttempted,
		TotalQuestions:     len(responses),
		Performance:        domain.PerformanceLabel(score.AvgScore),
	}, nil
}

func (s *interviewService) ListInterviews(ctx context.Context, userID string) (*dto.InterviewListResponse, error) {
	interviews, err := s.repo.ListInterviewsByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list interviews", err)
	}

	items := make([]dto.InterviewSummary, 0, len(interviews))
	for _, interview := range interviews {
		items = append(items, toInterviewSummary(interview))
	}
	return &dto.InterviewListResponse{Interviews: items}, nil
}

func (s *interviewService) GetQuestions(ctx context.Context, userID, interviewID string) (*dto.InterviewQuestionsResponse, error) {
	interview, err := s.ownedInterview(ctx, userID, interviewID)
	if err != nil {
		return nil, err
	}

	responses, err := s.repo.GetResponsesByInterview(ctx, interview.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get interview questions", err)
	}

	return &dto.InterviewQuestionsResponse{
		InterviewID: interview.ID,
		Skill:       interview.Skill,
		Difficulty:  interview.Difficulty.String(),
		IsCompleted: interview.IsCompleted,
		Questions:   toQuestionResponses(responses),
	}, nil
}

func (s *interviewService) GetReport(ctx context.Context, userID, interviewID string) (*dto.ReportResponse, error) {
	var (
		interview *domain.Interview
		responses []*domain.InterviewResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		interview, err = s.repo.GetInterviewByID(gctx, interviewID)
		return err
	})
	g.Go(func() error {
		var err error
		responses, err = s.repo.GetResponsesByInterview(gctx, interviewID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to load interview report", err)
	}

	if interview == nil {
		return nil, domain.NewInterviewNotFoundError(interviewID)
	}
	if interview.UserID != userID {
		return nil, domain.NewForbiddenError("Interview belongs to another user")
	}

	// Reports of unfinished interviews show the running score
	summary := toInterviewSummary(interview)
	avg := interview.AvgScore
	if !interview.IsCompleted {
		score := domain.ScoreResponses(responses)
		summary.TotalScore = score.TotalScore
		summary.QuestionsAttempted = score.QuestionsAttempted
		summary.AvgScore = util.RoundTo(score.AvgScore, 2)
		avg = score.AvgScore
	}

	items := make([]dto.ReportItem, 0, len(responses))
	for _, r := range responses {
		item := dto.ReportItem{
			Number:     r.QuestionNumber,
			Question:   r.Question,
			Topic:      r.Topic,
			UserAnswer: r.UserAnswer,
			Answered:   r.IsAnswered(),
		}
		if r.IsAnswered() {
			eval := toEvaluationResponse(*r.Evaluation)
			item.Evaluation = &eval
		}
		items = append(items, item)
	}

	return &dto.ReportResponse{
		Interview:      summary,
		Performance:    domain.PerformanceLabel(avg),
		TotalQuestions: len(responses),
		Items:          items,
	}, nil
}

func (s *interviewService) Leaderboard(ctx context.Context, skill string, limit int) (*dto.LeaderboardResponse, error) {
	skill = strings.TrimSpace(skill)
	if skill != "" {
		if errs := s.validator.ValidateSkill(skill); len(errs) > 0 {
			return nil, errs
		}
	}
	if errs := s.validator.ValidateLeaderboardLimit(limit); len(errs) > 0 {
		return nil, errs
	}

	resp := &dto.LeaderboardResponse{Skill: skill, Entries: []dto.LeaderboardEntryResponse{}}
	if s.board == nil {
		return resp, nil
	}

	entries, err := s.board.Top(ctx, skill, limit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to read leaderboard", err)
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, dto.LeaderboardEntryResponse{
			Rank:     e.Rank,
			UserID:   e.UserID,
			UserName: e.UserName,
			AvgScore: util.RoundTo(e.AvgScore, 2),
		})
	}
	return resp, nil
}

func (s *interviewService) LeaderboardSkills(ctx context.Context) (*dto.SkillsResponse, error) {
	skills, err := s.repo.ListCompletedSkills(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list skills", err)
	}
	if skills == nil {
		skills = []string{}
	}
	return &dto.SkillsResponse{Skills: skills}, nil
}

// ownedInterview loads an interview and checks that userID owns it
func (s *interviewService) ownedInterview(ctx context.Context, userID, interviewID string) (*domain.Interview, error) {
	interview, err := s.repo.GetInterviewByID(ctx, interviewID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get interview", err)
	}
	if interview == nil {
		return nil, domain.NewInterviewNotFoundError(interviewID)
	}
	if interview.UserID != userID {
		return nil, domain.NewForbiddenError("Interview belongs to another user")
	}
	return interview, nil
}
