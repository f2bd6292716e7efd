package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/synthosphere/academy_backend/database"
	"github.com/synthosphere/academy_backend/models"
	"github.com/synthosphere/academy_backend/services"
)

type BankDetailsRequest struct {
	UserID            string `json:"user_id" validate:"required"`
	Name              string `json:"name" validate:"required"`
	NameAsPerDocument string `json:"name_as_per_document" validate:"required"`
	BankName          string `json:"bank_name" validate:"required"`
	AccountNo         string `json:"account_no" validate:"required"`
	BranchName        string `json:"branch_name" validate:"required"`
	IFSCCode          string `json:"ifsc_code" validate:"required"`
}

// SaveBankDetails records a member's bank account plus passbook photo for KYC
// review. One submission per member.
func SaveBankDetails(c *fiber.Ctx) error {
	req := BankDetailsRequest{
		UserID:            c.FormValue("user_id"),
		Name:              c.FormValue("name"),
		NameAsPerDocument: c.FormValue("name_as_per_document"),
		BankName:          c.FormValue("bank_name"),
		AccountNo:         c.FormValue("account_no"),
		BranchName:        c.FormValue("branch_name"),
		IFSCCode:          c.FormValue("ifsc_code"),
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required."})
	}

	var existing models.BankDetails
	if err := database.DB.Where("user_id = ?", req.UserID).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Bank details already exist for this user."})
	}

	fileHeader, err := c.FormFile("passbookPhoto")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Passbook photo is required."})
	}
	passbookPhotoURL, err := services.UploadKYCDocument(fileHeader, "passbook-photo")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to upload passbook photo."})
	}

	bankDetails := models.BankDetails{
		UserID:            req.UserID,
		Name:              req.Name,
		NameAsPerDocument: req.NameAsPerDocument,
		BankName:          req.BankName,
		BranchName:        req.BranchName,
		AccountNo:         req.AccountNo,
		IFSCCode:          strings.ToUpper(req.IFSCCode),
		PassbookPhoto:     passbookPhotoURL,
	}

	if err := database.DB.Create(&bankDetails).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to save bank details."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Bank details saved successfully.",
		"data":    bankDetails,
	})
}

func GetUserBankDetails(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var bankDetails models.BankDetails
	if err := database.DB.Where("user_id = ?", userID).First(&bankDetails).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No bank details found for this user"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bankDetails,
	})
}

func GetAllKYCDetails(c *fiber.Ctx) error {
	var allDetails []models.BankDetails
	if err := database.DB.Order("created_at desc").Find(&allDetails).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch KYC details"})
	}
	if len(allDetails) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No KYC details found in the system"})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Fetched all KYC details successfully",
		"totalRecords": len(allDetails),
		"data":         allDetails,
	})
}

// UpdateKYCStatus flips a member's KYC verification state. Payout entries can
// only be completed while this is "verified".
func UpdateKYCStatus(c *fiber.Ctx) error {
	type Request struct {
		Status string `json:"status" validate:"required,oneof=pending verified rejected"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid status value"})
	}

	userID := c.Params("userId")

	var bankDetails models.BankDetails
	if err := database.DB.Where("user_id = ?", userID).First(&bankDetails).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No bank details found for this user"})
	}

	bankDetails.Status = req.Status
	if err := database.DB.Save(&bankDetails).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update KYC status"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "KYC status updated to " + req.Status,
		"data":    bankDetails,
	})
}
