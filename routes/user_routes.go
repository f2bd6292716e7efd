package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/synthosphere/academy_backend/handlers"
	"github.com/synthosphere/academy_backend/middleware"
)

func UserRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	users := api.Group("/users")
	users.Post("/register", handlers.RegisterUser)
	users.Post("/login", handlers.LoginUser)
	users.Post("/getuserdetails", handlers.GetUserByID)
	users.Post("/full-details", handlers.GetUserFullDetails)
	users.Get("/all", middleware.Protected(), middleware.AdminRequired(), handlers.GetAllUsers)
	users.Put("/update/:userId", middleware.Protected(), handlers.UpdateUserDetails)
	users.Put("/status/:userId", middleware.Protected(), middleware.AdminRequired(), handlers.UpdateUserStatus)
}
