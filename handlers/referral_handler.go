package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/synthosphere/academy_backend/database"
	"github.com/synthosphere/academy_backend/models"
	"github.com/synthosphere/academy_backend/services"
	"gorm.io/gorm"
)

// GetRealtimeReferralPoints computes the direct and multi-level referral
// points for one member and refreshes the snapshot on the payout record. The
// response reports the direct share, the recursive total (which includes the
// level-2 term again) and their sum — all three on purpose.
func GetRealtimeReferralPoints(c *fiber.Ctx) error {
	type Request struct {
		UserID string `json:"userId" validate:"required"`
		Name   string `json:"name" validate:"required"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "userId and name are required."})
	}

	graph, err := services.BuildUserGraph()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error calculating real-time referral points"})
	}
	if _, ok := graph.Nodes[req.UserID]; !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found."})
	}

	directReferredPoints := services.CalculateDirectReferralPoints(graph, req.UserID)
	referredPoints := services.CalculateRealtimeReferralPoints(graph, req.UserID)
	referralPoint := referredPoints + directReferredPoints

	// Refresh the snapshot on the payout record; the lifetime TotalPoints is
	// only ever moved by a settlement run.
	var payout models.Payout
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", req.UserID).First(&payout).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			payout = models.Payout{
				UserID:               req.UserID,
				Name:                 req.Name,
				ReferredPoints:       referredPoints,
				DirectReferredPoints: directReferredPoints,
			}
			return tx.Create(&payout).Error
		}
		if err != nil {
			return err
		}
		payout.ReferredPoints = referredPoints
		payout.DirectReferredPoints = directReferredPoints
		return tx.Save(&payout).Error
	})
	if err != nil {
		log.Printf("🔥 Failed to update payout snapshot for %s: %v", req.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Error calculating real-time referral points"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Referral and direct points calculated successfully.",
		"data": fiber.Map{
			"userId":               req.UserID,
			"name":                 req.Name,
			"directReferredPoints": directReferredPoints,
			"referredPoints":       referredPoints,
			"referralPoint":        referralPoint,
			"totalPoints":          payout.TotalPoints,
		},
	})
}

// GetUserWithReferrals returns a member and its direct referrals for the tree
// view.
func GetUserWithReferrals(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var mainUser models.User
	if err := database.DB.Where("user_id = ?", userID).First(&mainUser).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}

	var referredUsers []models.User
	if err := database.DB.Where("parent_id = ?", userID).Order("created_at asc").Find(&referredUsers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch referral details"})
	}

	type memberView struct {
		UserID          string  `json:"userId"`
		Name            string  `json:"name"`
		Email           string  `json:"email"`
		Phone           string  `json:"phone"`
		Address         string  `json:"address"`
		SelfPoints      float64 `json:"selfPoints"`
		TotalSelfPoints float64 `json:"totalSelfPoints"`
		Status          string  `json:"status"`
	}

	referred := make([]memberView, 0, len(referredUsers))
	for _, u := range referredUsers {
		referred = append(referred, memberView{
			UserID:          u.UserID,
			Name:            u.Name,
			Email:           u.Email,
			Phone:           u.Phone,
			Address:         u.Address,
			SelfPoints:      u.SelfPoints,
			TotalSelfPoints: u.TotalSelfPoints,
			Status:          u.Status,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User and referred users fetched successfully",
		"data": fiber.Map{
			"mainUser": fiber.Map{
				"userId":          mainUser.UserID,
				"name":            mainUser.Name,
				"email":           mainUser.Email,
				"phone":           mainUser.Phone,
				"address":         mainUser.Address,
				"referralLink":    mainUser.ReferralLink,
				"selfPoints":      mainUser.SelfPoints,
				"totalSelfPoints": mainUser.TotalSelfPoints,
				"status":          mainUser.Status,
			},
			"referredUsers": referred,
		},
	})
}

// GetTeamSummary reports downline size and point mass for one member. Only
// members with a checkout record count toward the downline numbers.
func GetTeamSummary(c *fiber.Ctx) error {
	type Request struct {
		UserID string `json:"userId" validate:"required"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "userId is required in request body"})
	}

	graph, err := services.BuildUserGraph()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Server error"})
	}

	rootNode, ok := graph.Nodes[req.UserID]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	qualified, err := services.LoadCheckoutUserIDs()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Server error"})
	}

	totalPoints, totalDownlineCount := services.CalculateTeamSummary(graph, qualified, req.UserID)
	directReferrals := services.CountQualifiedDirectReferrals(graph, qualified, req.UserID)

	return c.JSON(fiber.Map{
		"success":            true,
		"userId":             rootNode.UserID,
		"name":               rootNode.Name,
		"totalPoints":        totalPoints,
		"totalDownlineCount": totalDownlineCount,
		"directReferrals":    directReferrals,
	})
}

// GetAllTeamSummaries computes a team summary rooted at every member.
func GetAllTeamSummaries(c *fiber.Ctx) error {
	graph, err := services.BuildUserGraph()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Server error"})
	}

	qualified, err := services.LoadCheckoutUserIDs()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Server error"})
	}

	results := services.CalculateAllTeamSummaries(graph, qualified)

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(results),
		"data":    results,
	})
}
