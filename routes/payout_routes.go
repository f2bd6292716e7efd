package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/synthosphere/academy_backend/handlers"
	"github.com/synthosphere/academy_backend/middleware"
)

func PayoutRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payout := api.Group("/payout")
	payout.Post("/run", middleware.Protected(), middleware.AdminRequired(), handlers.RunGlobalPayout)
	payout.Get("/all-payouts", middleware.Protected(), middleware.AdminRequired(), handlers.GetAllPayouts)
	payout.Put("/status/:userId/:payoutId", middleware.Protected(), middleware.AdminRequired(), handlers.UpdatePayoutStatus)
	payout.Get("/:userId", handlers.GetUserPayouts)
}
