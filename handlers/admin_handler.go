package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/synthosphere/academy_backend/database"
	"github.com/synthosphere/academy_backend/models"
)

// GetDashboardStats summarizes the member base and the checkout volume for
// the admin overview.
func GetDashboardStats(c *fiber.Ctx) error {
	var totalUsers int64
	if err := database.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch dashboard stats"})
	}

	var totalAmount float64
	if err := database.DB.Model(&models.Checkout{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalAmount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch dashboard stats"})
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0)

	var currentMonthAmount float64
	if err := database.DB.Model(&models.Checkout{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("created_at >= ? AND created_at < ?", startOfMonth, endOfMonth).
		Scan(&currentMonthAmount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch dashboard stats"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Dashboard stats fetched successfully",
		"data": fiber.Map{
			"totalUsers":         totalUsers,
			"totalAmount":        totalAmount,
			"currentMonthAmount": currentMonthAmount,
			"currentMonth":       now.Format("January 2006"),
		},
	})
}
