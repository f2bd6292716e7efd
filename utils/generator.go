package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/synthosphere/academy_backend/models"
	"gorm.io/gorm"
)

const userIDPrefix = "SA"

const BaseReferralURL = "https://synthosphereacademy.com/register/"

// GenerateUniqueUserID returns an SA-prefixed five digit member code that does
// not yet exist in the users table.
func GenerateUniqueUserID(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		id := fmt.Sprintf("%s%d", userIDPrefix, 10000+seededRand.Intn(90000))

		var user models.User
		err := tx.Where("user_id = ?", id).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return id, nil
			}
			return "", err
		}
	}
}

func ReferralLinkFor(userID string) string {
	return BaseReferralURL + userID
}
