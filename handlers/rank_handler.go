package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/synthosphere/academy_backend/database"
	"github.com/synthosphere/academy_backend/models"
	"gorm.io/gorm"
)

type RankRequest struct {
	UserID     string  `json:"userId" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	RankName   string  `json:"rankName" validate:"required"`
	TotalTeam  int     `json:"totalTeam"`
	DirectTeam int     `json:"directTeam"`
	Points     float64 `json:"points"`
}

// SaveRankAchievement appends a pending rank reward for a member, creating
// the rank record on first achievement.
func SaveRankAchievement(c *fiber.Ctx) error {
	var req RankRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "userId, name and rankName are required"})
	}

	var rank models.Rank
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", req.UserID).First(&rank).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rank = models.Rank{
				UserID:     req.UserID,
				Name:       req.Name,
				TotalTeam:  req.TotalTeam,
				DirectTeam: req.DirectTeam,
				Points:     req.Points,
			}
			if err := tx.Create(&rank).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			rank.TotalTeam = req.TotalTeam
			rank.DirectTeam = req.DirectTeam
			rank.Points = req.Points
			if err := tx.Save(&rank).Error; err != nil {
				return err
			}
		}

		reward := models.RankReward{
			RankID:     rank.ID,
			RankName:   req.RankName,
			Status:     "pending",
			AchievedAt: time.Now(),
		}
		return tx.Create(&reward).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to save rank achievement"})
	}

	database.DB.Preload("Rewards").First(&rank, "id = ?", rank.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Rank achievement saved successfully",
		"data":    rank,
	})
}

func GetAllRanks(c *fiber.Ctx) error {
	var ranks []models.Rank
	if err := database.DB.Preload("Rewards").Order("created_at desc").Find(&ranks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch ranks"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(ranks),
		"data":    ranks,
	})
}

func GetUserRanks(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var rank models.Rank
	if err := database.DB.Preload("Rewards").Where("user_id = ?", userID).First(&rank).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No rank records found for this user"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    rank,
	})
}

// ApproveRankStatus moves one rank reward out of pending.
func ApproveRankStatus(c *fiber.Ctx) error {
	type Request struct {
		UserID   string `json:"userId" validate:"required"`
		RewardID string `json:"rewardId" validate:"required"`
		Status   string `json:"status" validate:"required,oneof=pending approved rejected"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	var rank models.Rank
	if err := database.DB.Where("user_id = ?", req.UserID).First(&rank).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No rank records found for this user"})
	}

	var reward models.RankReward
	if err := database.DB.Where("id = ? AND rank_id = ?", req.RewardID, rank.ID).First(&reward).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Rank reward not found"})
	}

	reward.Status = req.Status
	if err := database.DB.Save(&reward).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update rank status"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Rank status updated to " + req.Status,
		"data":    reward,
	})
}
