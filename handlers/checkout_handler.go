package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/synthosphere/academy_backend/database"
	"github.com/synthosphere/academy_backend/models"
	"github.com/synthosphere/academy_backend/payments"
	"github.com/synthosphere/academy_backend/services"
	"gorm.io/gorm"
)

// Checkout opens a gateway order for the requested amount.
func Checkout(c *fiber.Ctx) error {
	type Request struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	order, err := payments.CreateOrder(req.Amount)
	if err != nil {
		log.Printf("🔥 Error creating Razorpay order: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Failed to create order"})
	}

	return c.JSON(fiber.Map{"success": true, "order": order})
}

type PaymentVerificationRequest struct {
	RazorpayOrderID   string  `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string  `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string  `json:"razorpay_signature" validate:"required"`
	FullName          string  `json:"fullname" validate:"required"`
	UserID            string  `json:"userId" validate:"required"`
	PhoneNo           string  `json:"phoneno" validate:"required"`
	Email             string  `json:"email" validate:"required,email"`
	Address           string  `json:"address" validate:"required"`
	PackageName       string  `json:"packagename" validate:"required"`
	CourseName        string  `json:"coursename" validate:"required"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
}

// PaymentVerification finalizes a checkout: it checks the gateway signature,
// stores the payment, accrues the purchase points on the buyer and moves the
// course validity window.
func PaymentVerification(c *fiber.Ctx) error {
	var req PaymentVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !payments.VerifyPaymentSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid signature"})
	}

	var user models.User
	if err := database.DB.Where("user_id = ?", req.UserID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	pointsToAdd := services.PointsForAmount(req.Amount)
	now := time.Now()

	var courseDetails models.CourseDetails
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		checkout := models.Checkout{
			FullName:          req.FullName,
			UserID:            req.UserID,
			PhoneNo:           req.PhoneNo,
			Address:           req.Address,
			Email:             req.Email,
			PackageName:       req.PackageName,
			CourseName:        req.CourseName,
			Amount:            req.Amount,
			RazorpayOrderID:   req.RazorpayOrderID,
			RazorpayPaymentID: req.RazorpayPaymentID,
			RazorpaySignature: req.RazorpaySignature,
		}
		if err := tx.Create(&checkout).Error; err != nil {
			return err
		}

		if err := services.AccrueCheckoutPoints(tx, req.UserID, pointsToAdd).Error; err != nil {
			return err
		}

		err := tx.Preload("PurchaseHistory").Where("user_id = ?", req.UserID).First(&courseDetails).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			courseDetails = models.CourseDetails{
				UserID: req.UserID,
				Name:   req.FullName,
			}
			services.ApplyPurchase(&courseDetails, req.CourseName, req.PackageName, req.Amount, now)
			return tx.Create(&courseDetails).Error
		}
		if err != nil {
			return err
		}

		services.ApplyPurchase(&courseDetails, req.CourseName, req.PackageName, req.Amount, now)
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&courseDetails).Error
	})
	if err != nil {
		log.Printf("🔥 Error verifying payment for %s: %v", req.UserID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Payment verification failed"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment successful & course validity updated.",
		"data": fiber.Map{
			"userId":        req.UserID,
			"coursename":    req.CourseName,
			"packagename":   req.PackageName,
			"validityStart": courseDetails.ValidityStart,
			"validityEnd":   courseDetails.ValidityEnd,
			"pointsAdded":   pointsToAdd,
		},
	})
}

func GetOrderDetailsByUser(c *fiber.Ctx) error {
	type Request struct {
		UserID string `json:"userId" validate:"required"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	var orders []models.Checkout
	if err := database.DB.Where("user_id = ?", req.UserID).Order("created_at desc").Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch orders"})
	}
	if len(orders) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No orders found for this user"})
	}

	return c.JSON(orders)
}

func GetUserCheckoutDetails(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var checkouts []models.Checkout
	if err := database.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&checkouts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch checkout records"})
	}
	if len(checkouts) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No checkout records found for this user"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Checkout details fetched successfully",
		"data":    checkouts,
	})
}
