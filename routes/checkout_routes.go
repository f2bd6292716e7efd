package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/synthosphere/academy_backend/handlers"
)

func CheckoutRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	checkout := api.Group("/checkout")
	checkout.Post("", handlers.Checkout)
	checkout.Post("/verify", handlers.PaymentVerification)
	checkout.Post("/orders", handlers.GetOrderDetailsByUser)
	checkout.Get("/:userId", handlers.GetUserCheckoutDetails)
}
