package handler

import (
	"strconv"

	"interview-ai/internal/domain"
	"interview-ai/internal/dto"
	"interview-ai/internal/middleware"
	"interview-ai/internal/service"

	"github.com/gofiber/fiber/v2"
)

// InterviewHandler handles interview-related HTTP requests
type InterviewHandler struct {
	service service.InterviewService
}

// NewInterviewHandler creates a new InterviewHandler instance
func NewInterviewHandler(service service.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		service: service,
	}
}

// StartInterview handles POST /api/interviews/start
func (h *InterviewHandler) StartInterview(c *fiber.Ctx) error {
	var req dto.StartInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body must be a JSON object")
	}

	resp, err := h.service.StartInterview(c.UserContext(), middleware.UserID(c), middleware.UserName(c), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListInterviews handles GET /api/interviews
func (h *InterviewHandler) ListInterviews(c *fiber.Ctx) error {
	resp, err := h.service.ListInterviews(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestions handles GET /api/interviews/:id/questions
func (h *InterviewHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.service.GetQuestions(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAnswer handles POST /api/interviews/:id/answer
func (h *InterviewHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body must be a JSON object")
	}

	resp, err := h.service.SubmitAnswer(c.UserContext(), middleware.UserID(c), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CompleteInterview handles POST /api/interviews/:id/complete
func (h *InterviewHandler) CompleteInterview(c *fiber.Ctx) error {
	resp, err := h.service.CompleteInterview(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetReport handles GET /api/reports/:id
func (h *InterviewHandler) GetReport(c *fiber.Ctx) error {
	resp, err := h.service.GetReport(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// LeaderboardSkills handles GET /api/leaderboard/skills
func (h *InterviewHandler) LeaderboardSkills(c *fiber.Ctx) error {
	resp, err := h.service.LeaderboardSkills(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Leaderboard handles GET /api/leaderboard?skill=&limit=
func (h *InterviewHandler) Leaderboard(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("limit", raw)}
		}
		limit = n
	}

	resp, err := h.service.Leaderboard(c.UserContext(), c.Query("skill"), limit)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
