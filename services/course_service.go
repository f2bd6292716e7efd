package services

import (
	"math"
	"time"

	"github.com/synthosphere/academy_backend/models"
	"gorm.io/gorm"
)

// Reward tables are exact-match on the rounded purchase amount. An amount
// outside the table grants nothing — range matching would silently change the
// payout economics.
var amountPoints = map[int]float64{
	944:   800,
	1770:  1500,
	3540:  3000,
	7080:  6000,
	11800: 10000,
	59000: 25000,
}

var amountValidityMonths = map[int]int{
	944:   1,
	1770:  1,
	3540:  3,
	7080:  6,
	11800: 12,
	59000: 12,
}

func PointsForAmount(amount float64) float64 {
	return amountPoints[int(math.Round(amount))]
}

func ValidityMonthsForAmount(amount float64) int {
	return amountValidityMonths[int(math.Round(amount))]
}

// AccrueCheckoutPoints credits purchase points to both counters with a single
// in-database update. A read-modify-write through a loaded row could overwrite
// a settlement reset that committed in between.
func AccrueCheckoutPoints(tx *gorm.DB, userID string, points float64) *gorm.DB {
	return tx.Model(&models.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"self_points":       gorm.Expr("self_points + ?", points),
			"total_self_points": gorm.Expr("total_self_points + ?", points),
		})
}

// ApplyPurchase records one successful checkout on a course record and moves
// the validity window:
//   - no window yet: open one from now,
//   - window already expired: reset it to start now,
//   - window still active: extend the end, keep the original start.
//
// The purchase history grows by one completed entry whichever branch runs.
func ApplyPurchase(course *models.CourseDetails, courseName, packageName string, amount float64, now time.Time) {
	months := ValidityMonthsForAmount(amount)

	if course.ValidityStart == nil || course.ValidityEnd == nil || course.ValidityEnd.Before(now) {
		start := now
		end := now.AddDate(0, months, 0)
		course.ValidityStart = &start
		course.ValidityEnd = &end
	} else {
		end := course.ValidityEnd.AddDate(0, months, 0)
		course.ValidityEnd = &end
	}

	course.CourseName = courseName
	course.PackageName = packageName
	course.PurchaseHistory = append(course.PurchaseHistory, models.Purchase{
		CourseName:  courseName,
		PackageName: packageName,
		Amount:      amount,
		Date:        now,
		Status:      "completed",
	})
}
