package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/synthosphere/academy_backend/handlers"
	"github.com/synthosphere/academy_backend/middleware"
)

func RankRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	rank := api.Group("/rank")
	rank.Post("/save-rank", handlers.SaveRankAchievement)
	rank.Get("/all", middleware.Protected(), middleware.AdminRequired(), handlers.GetAllRanks)
	rank.Put("/approve-rank", middleware.Protected(), middleware.AdminRequired(), handlers.ApproveRankStatus)
	rank.Get("/user/:userId", handlers.GetUserRanks)
}
