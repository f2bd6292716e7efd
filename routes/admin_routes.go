package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/synthosphere/academy_backend/handlers"
	"github.com/synthosphere/academy_backend/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/dashboard-stats", handlers.GetDashboardStats)
}
