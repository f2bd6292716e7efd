package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	config "github.com/synthosphere/academy_backend/configs"
)

const KYCUploadFolder = "academy_kyc"

// UploadKYCDocument pushes one uploaded document (Aadhaar, PAN, passbook) to
// Cloudinary and returns its secure URL.
func UploadKYCDocument(fileHeader *multipart.FileHeader, tag string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", fmt.Errorf("failed to initialize Cloudinary: %v", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   KYCUploadFolder,
		PublicID: fmt.Sprintf("%s_%d", tag, time.Now().UnixNano()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %v", tag, err)
	}

	return resp.SecureURL, nil
}
