package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/synthosphere/academy_backend/database"
	"github.com/synthosphere/academy_backend/models"
	"github.com/synthosphere/academy_backend/services"
)

// RunGlobalPayout settles the whole population in one pass.
func RunGlobalPayout(c *fiber.Ctx) error {
	log.Println("Running global payout process...")

	results, err := services.RunGlobalPayout()
	if err != nil {
		log.Printf("🔥 Global payout failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error generating global payout"})
	}
	if len(results) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No users found"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Global payout generated successfully",
		"totalUsers": len(results),
		"payouts":    results,
	})
}

func GetUserPayouts(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var payouts []models.Payout
	if err := database.DB.Preload("Entries").Where("user_id = ?", userID).Find(&payouts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch payouts"})
	}
	if len(payouts) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No payout records found for this user"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payout records fetched successfully",
		"data":    payouts,
	})
}

func GetAllPayouts(c *fiber.Ctx) error {
	var allPayouts []models.Payout
	if err := database.DB.Preload("Entries").Order("created_at desc").Find(&allPayouts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch payouts"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "All user payouts fetched successfully",
		"data":    allPayouts,
	})
}

// UpdatePayoutStatus moves one payout entry out of pending. The transition is
// blocked while the member's KYC is not verified, and a completed or failed
// entry never changes again.
func UpdatePayoutStatus(c *fiber.Ctx) error {
	type Request struct {
		Status string `json:"status" validate:"required"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Status is required"})
	}

	status := strings.ToLower(req.Status)
	if !services.IsValidPayoutStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid status value"})
	}

	userID := c.Params("userId")
	payoutID := c.Params("payoutId")

	var kyc models.BankDetails
	if err := database.DB.Where("user_id = ?", userID).First(&kyc).Error; err != nil || !services.IsKYCVerified(kyc.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "User KYC is not verified. Cannot update payout status."})
	}

	var payoutRecord models.Payout
	if err := database.DB.Where("user_id = ?", userID).First(&payoutRecord).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No payout record found for this user"})
	}

	var entry models.PayoutEntry
	if err := database.DB.Where("id = ? AND payout_id = ?", payoutID, payoutRecord.ID).First(&entry).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Payout entry not found"})
	}

	if !services.CanUpdatePayoutEntry(entry.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Payout entry is already " + entry.Status})
	}

	entry.Status = status
	if err := database.DB.Save(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update payout status"})
	}

	database.DB.Preload("Entries").First(&payoutRecord, "id = ?", payoutRecord.ID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payout status updated to " + status,
		"data":    payoutRecord,
	})
}
