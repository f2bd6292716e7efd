package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/synthosphere/academy_backend/database"
	"github.com/synthosphere/academy_backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PayoutDeductionRate is withheld from every settlement.
const PayoutDeductionRate = 0.05

// payoutRunMu serializes global payout runs. The cron trigger and the admin
// endpoint share it so two runs never interleave on the same user rows.
var payoutRunMu sync.Mutex

var validPayoutStatuses = map[string]bool{
	"pending":   true,
	"completed": true,
	"failed":    true,
}

func IsValidPayoutStatus(status string) bool {
	return validPayoutStatuses[status]
}

// CanUpdatePayoutEntry reports whether a payout entry may still change
// status. Completed and failed entries are final.
func CanUpdatePayoutEntry(current string) bool {
	return current == "pending"
}

// IsKYCVerified gates settlement: a payout entry may only leave pending while
// the member's bank verification is complete.
func IsKYCVerified(kycStatus string) bool {
	return kycStatus == "verified"
}

// ApplySettlement folds one run's entitlement into a payout ledger: the
// lifetime total grows, the since-last-settlement snapshots reset, and a new
// pending entry is produced. The asymmetry is intentional — TotalPoints is
// cumulative, the snapshots are not.
func ApplySettlement(record *models.Payout, totalPoints float64) models.PayoutEntry {
	record.TotalPoints += totalPoints
	record.ReferredPoints = 0
	record.DirectReferredPoints = 0

	return models.PayoutEntry{
		ID:           uuid.New(),
		Amount:       totalPoints,
		PayoutAmount: totalPoints - totalPoints*PayoutDeductionRate,
		Status:       "pending",
		Date:         time.Now(),
	}
}

// resetSettledSelfPoints zeroes a user's accrual only while it still matches
// the snapshot this run settled. Points from a checkout that landed after the
// graph was built were in nobody's entitlement, so they stay for the next run.
func resetSettledSelfPoints(tx *gorm.DB, userID string, settled float64) *gorm.DB {
	return tx.Model(&models.User{}).
		Where("user_id = ? AND self_points = ?", userID, settled).
		Update("self_points", 0)
}

// PayoutRunResult summarizes one user's slice of a global payout run.
type PayoutRunResult struct {
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	PayoutAmount float64   `json:"payoutAmount"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`
}

// RunGlobalPayout settles every user in one sequential pass: it computes the
// realtime referral entitlement against a single graph index built for this
// run, appends a pending payout entry, and resets the user's accrued self
// points. A user whose records cannot be updated is skipped, not fatal — one
// inconsistent row must not abort the whole batch.
func RunGlobalPayout() ([]PayoutRunResult, error) {
	payoutRunMu.Lock()
	defer payoutRunMu.Unlock()

	graph, err := BuildUserGraph()
	if err != nil {
		return nil, err
	}

	results := make([]PayoutRunResult, 0, len(graph.Order))

	for _, userID := range graph.Order {
		node := graph.Nodes[userID]
		totalPoints := CalculateRealtimeReferralPoints(graph, userID)

		var entry models.PayoutEntry
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var record models.Payout
			err := tx.Where("user_id = ?", userID).First(&record).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				record = models.Payout{ID: uuid.New(), UserID: userID, Name: node.Name}
				entry = ApplySettlement(&record, totalPoints)
				if err := tx.Create(&record).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				entry = ApplySettlement(&record, totalPoints)
				if err := tx.Save(&record).Error; err != nil {
					return err
				}
			}

			entry.PayoutID = record.ID
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}

			// Accrual since the last payout is spent; the lifetime counter
			// on the user is untouched.
			return resetSettledSelfPoints(tx, userID, node.SelfPoints).Error
		})
		if err != nil {
			log.Printf("🔥 Payout run: skipping user %s: %v", userID, err)
			continue
		}

		results = append(results, PayoutRunResult{
			UserID:       userID,
			Name:         node.Name,
			PayoutAmount: entry.Amount,
			Date:         entry.Date,
			Status:       entry.Status,
		})
	}

	return results, nil
}
