package service

import (
	"interview-ai/internal/domain"
	"interview-ai/internal/dto"
)

func toQuestionResponses(responses []*domain.InterviewResponse) []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, 0, len(responses))
	for _, r := range responses {
		out = append(out, dto.QuestionResponse{
			ID:       r.ID,
			Number:   r.QuestionNumber,
			Question: r.Question,
			Topic:    r.Topic,
			Answered: r.IsAnswered(),
		})
	}
	return out
}

func toEvaluationResponse(e domain.AnswerEvaluation) dto.EvaluationResponse {
	return dto.EvaluationResponse{
		Score:          e.Score,
		Feedback:       e.Feedback,
		Strengths:      e.Strengths,
		Improvements:   e.Improvements,
		ConfidenceTips: e.ConfidenceTips,
	}
}

func toInterviewSummary(i *domain.Interview) dto.InterviewSummary {
	return dto.InterviewSummary{
		ID:                 i.ID,
		Skill:              i.Skill,
		Difficulty:         i.Difficulty.String(),
		IsCompleted:        i.IsCompleted,
		TotalScore:         i.TotalScore,
		AvgScore:           i.AvgScore,
		QuestionsAttempted: i.QuestionsAttempted,
		CreatedAt:          i.CreatedAt,
	}
}
