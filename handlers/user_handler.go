package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/synthosphere/academy_backend/database"
	"github.com/synthosphere/academy_backend/models"
	"github.com/synthosphere/academy_backend/services"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID returns a member together with the size and point mass of its
// entire downline (no depth cap, cycle-guarded).
func GetUserByID(c *fiber.Ctx) error {
	type Request struct {
		UserID string `json:"userId" validate:"required"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.Where("user_id = ?", req.UserID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	graph, err := services.BuildUserGraph()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load user population"})
	}

	members := services.TeamMembers(graph, req.UserID)
	totalTeamSelfPoints := 0.0
	for _, m := range members {
		totalTeamSelfPoints += m.SelfPoints
	}

	return c.JSON(fiber.Map{
		"success":             true,
		"message":             "User details with team data fetched successfully",
		"user":                user,
		"totalTeamMembers":    len(members),
		"totalTeamSelfPoints": totalTeamSelfPoints,
	})
}

// GetUserFullDetails aggregates everything known about one member.
func GetUserFullDetails(c *fiber.Ctx) error {
	type Request struct {
		UserID string `json:"userId" validate:"required"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.Where("user_id = ?", req.UserID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	var bankDetails models.BankDetails
	database.DB.Where("user_id = ?", req.UserID).First(&bankDetails)

	var payout models.Payout
	database.DB.Preload("Entries").Where("user_id = ?", req.UserID).First(&payout)

	var courseDetails models.CourseDetails
	database.DB.Preload("PurchaseHistory").Where("user_id = ?", req.UserID).First(&courseDetails)

	var checkouts []models.Checkout
	database.DB.Where("user_id = ?", req.UserID).Order("created_at desc").Find(&checkouts)

	return c.JSON(fiber.Map{
		"success":       true,
		"user":          user,
		"bankDetails":   bankDetails,
		"payout":        payout,
		"courseDetails": courseDetails,
		"checkouts":     checkouts,
	})
}

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(users),
		"data":    users,
	})
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	AadharNo *string `json:"aadhar_no"`
	Password *string `json:"password"`
}

func UpdateUserDetails(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		var existing models.User
		if err := database.DB.Where("email = ? AND user_id <> ?", *req.Email, userID).First(&existing).Error; err == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Email already in use"})
		}
		user.Email = *req.Email
	}
	if req.Phone != nil {
		var existing models.User
		if err := database.DB.Where("phone = ? AND user_id <> ?", *req.Phone, userID).First(&existing).Error; err == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Phone number already in use"})
		}
		user.Phone = *req.Phone
	}
	if req.AadharNo != nil {
		var existing models.User
		if err := database.DB.Where("aadhar_no = ? AND user_id <> ?", *req.AadharNo, userID).First(&existing).Error; err == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Aadhaar number already in use"})
		}
		user.AadharNo = *req.AadharNo
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
		}
		user.Password = string(hashedPassword)
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update user details"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User details updated successfully",
		"data":    user,
	})
}

func UpdateUserStatus(c *fiber.Ctx) error {
	type Request struct {
		Status string `json:"status" validate:"required,oneof=pending active inactive"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid status value"})
	}

	userID := c.Params("userId")

	var user models.User
	if err := database.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	user.Status = req.Status
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update user status"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User status updated to " + req.Status,
		"data":    user,
	})
}
