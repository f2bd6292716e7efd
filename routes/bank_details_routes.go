package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/synthosphere/academy_backend/handlers"
	"github.com/synthosphere/academy_backend/middleware"
)

func BankDetailsRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	bank := api.Group("/bankdetails")
	bank.Post("/save", handlers.SaveBankDetails)
	bank.Get("/all", middleware.Protected(), middleware.AdminRequired(), handlers.GetAllKYCDetails)
	bank.Put("/status/:userId", middleware.Protected(), middleware.AdminRequired(), handlers.UpdateKYCStatus)
	bank.Get("/:userId", handlers.GetUserBankDetails)
}
