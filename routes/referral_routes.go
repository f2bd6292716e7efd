package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/synthosphere/academy_backend/handlers"
)

func ReferralRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	referral := api.Group("/referral")
	referral.Post("/realtime", handlers.GetRealtimeReferralPoints)
	referral.Post("/team-summary", handlers.GetTeamSummary)
	referral.Get("/team-summaries", handlers.GetAllTeamSummaries)
	referral.Get("/:userId", handlers.GetUserWithReferrals)
}
