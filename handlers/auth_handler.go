package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/synthosphere/academy_backend/configs"
	"github.com/synthosphere/academy_backend/database"
	"github.com/synthosphere/academy_backend/models"
	"github.com/synthosphere/academy_backend/notifications"
	"github.com/synthosphere/academy_backend/services"
	"github.com/synthosphere/academy_backend/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Phone    string `json:"phone" validate:"required,min=10"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"required"`
	AadharNo string `json:"aadhar_no" validate:"required"`
	PanNo    string `json:"pan_no" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	ParentID string `json:"parent_id"`
}

type LoginRequest struct {
	EmailOrPhone string `json:"email_or_phone" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// RegisterUser creates a member from a multipart form carrying the KYC
// document images alongside the profile fields.
func RegisterUser(c *fiber.Ctx) error {
	req := RegisterRequest{
		Name:     c.FormValue("name"),
		Phone:    c.FormValue("phone"),
		Email:    c.FormValue("email"),
		Address:  c.FormValue("address"),
		AadharNo: c.FormValue("aadhar_no"),
		PanNo:    c.FormValue("pan_no"),
		Password: c.FormValue("password"),
		ParentID: c.FormValue("parent_id"),
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.User
	err := database.DB.
		Where("phone = ? OR email = ? OR aadhar_no = ? OR pan_no = ?", req.Phone, req.Email, req.AadharNo, req.PanNo).
		First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User already exists with given details"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	var parentID *string
	if req.ParentID != "" {
		var parent models.User
		if err := database.DB.Where("user_id = ?", req.ParentID).First(&parent).Error; err != nil {
			log.Printf("Invalid parent ID used during registration: %s", req.ParentID)
		} else {
			parentID = &parent.UserID
		}
	}

	aadharFrontURL := uploadIfPresent(c, "aadharFront", "aadhar-front")
	aadharBackURL := uploadIfPresent(c, "aadharBack", "aadhar-back")
	panPhotoURL := uploadIfPresent(c, "panPhoto", "pan-photo")

	var newUser models.User
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		userID, err := utils.GenerateUniqueUserID(tx)
		if err != nil {
			return errors.New("failed to generate unique user ID")
		}

		newUser = models.User{
			UserID:           userID,
			Name:             req.Name,
			Phone:            req.Phone,
			Email:            req.Email,
			Address:          req.Address,
			AadharNo:         req.AadharNo,
			AadharPhotoFront: aadharFrontURL,
			AadharPhotoBack:  aadharBackURL,
			PanNo:            req.PanNo,
			PanPhoto:         panPhotoURL,
			Password:         string(hashedPassword),
			ReferralLink:     utils.ReferralLinkFor(userID),
			ParentID:         parentID,
		}
		if err := tx.Create(&newUser).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.New("user already exists")
			}
			return err
		}
		return nil
	})

	if err != nil {
		if err.Error() == "user already exists" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "User already exists with given details"})
		}
		log.Printf("🔥 Registration failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Registration failed"})
	}

	go notifications.SendEmail(newUser.Name, newUser.Email, "Welcome to Synthosphere Academy!",
		"<h1>Welcome!</h1><p>Your member ID is <b>"+newUser.UserID+"</b>. Share your referral link to start building your team.</p>")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"data": fiber.Map{
			"user_id":       newUser.UserID,
			"name":          newUser.Name,
			"email":         newUser.Email,
			"phone":         newUser.Phone,
			"referral_link": newUser.ReferralLink,
		},
	})
}

func uploadIfPresent(c *fiber.Ctx, field, tag string) string {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return ""
	}
	url, err := services.UploadKYCDocument(fileHeader, tag)
	if err != nil {
		log.Printf("🔥 Failed to upload %s: %v", field, err)
		return ""
	}
	return url
}

func LoginUser(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	result := database.DB.Where("email = ? OR phone = ?", req.EmailOrPhone, req.EmailOrPhone).First(&user)
	if result.Error != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	claims := jwt.MapClaims{
		"user_id": user.UserID,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful.",
		"token":   t,
		"user": fiber.Map{
			"user_id": user.UserID,
			"name":    user.Name,
			"email":   user.Email,
			"phone":   user.Phone,
			"status":  user.Status,
		},
	})
}
