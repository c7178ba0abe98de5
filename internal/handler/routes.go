package handler

import (
	"interview-ai/internal/middleware"
	"interview-ai/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RouteDeps are the collaborators the HTTP routes need
type RouteDeps struct {
	Interviews   service.InterviewService
	Auth         service.AuthService
	ProviderName string
}

// RegisterRoutes mounts every API route on app
func RegisterRoutes(app *fiber.App, deps RouteDeps) {
	h := NewInterviewHandler(deps.Interviews)
	vm := middleware.NewValidationMiddleware()
	protected := middleware.Protected(deps.Auth)

	app.Get("/healthz", Health(deps.ProviderName))

	api := app.Group("/api")
	api.Get("/leaderboard", h.Leaderboard)
	api.Get("/leaderboard/skills", h.LeaderboardSkills)

	interviews := api.Group("/interviews", protected)
	interviews.Post("/start", h.StartInterview)
	interviews.Get("/", h.ListInterviews)
	interviews.Get("/:id/questions", vm.ValidateInterviewID(), h.GetQuestions)
	interviews.Post("/:id/answer", vm.ValidateInterviewID(), h.SubmitAnswer)
	interviews.Post("/:id/complete", vm.ValidateInterviewID(), h.CompleteInterview)

	api.Get("/reports/:id", protected, vm.ValidateInterviewID(), h.GetReport)

	app.Use(NotFound)
}
