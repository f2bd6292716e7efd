package services

import (
	"testing"

	"github.com/synthosphere/academy_backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB builds statements without touching a database.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=app dbname=app"), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestApplySettlementNewRecord(t *testing.T) {
	record := models.Payout{ID: uuid.New(), UserID: "SA10001", Name: "Asha"}

	entry := ApplySettlement(&record, 1000)

	assert.InDelta(t, 1000.0, entry.Amount, 1e-9)
	assert.InDelta(t, 950.0, entry.PayoutAmount, 1e-9)
	assert.Equal(t, "pending", entry.Status)
	assert.NotEqual(t, uuid.Nil, entry.ID)
	require.False(t, entry.Date.IsZero())

	assert.InDelta(t, 1000.0, record.TotalPoints, 1e-9)
	assert.Equal(t, 0.0, record.ReferredPoints)
	assert.Equal(t, 0.0, record.DirectReferredPoints)
}

func TestApplySettlementAccumulatesLifetimeTotal(t *testing.T) {
	record := models.Payout{
		ID:                   uuid.New(),
		UserID:               "SA10001",
		TotalPoints:          500,
		ReferredPoints:       42,
		DirectReferredPoints: 7,
	}

	entry := ApplySettlement(&record, 1000)

	// Lifetime total keeps growing while the per-cycle snapshots reset.
	assert.InDelta(t, 1500.0, record.TotalPoints, 1e-9)
	assert.Equal(t, 0.0, record.ReferredPoints)
	assert.Equal(t, 0.0, record.DirectReferredPoints)
	assert.InDelta(t, 950.0, entry.PayoutAmount, 1e-9)
}

func TestApplySettlementZeroEntitlement(t *testing.T) {
	record := models.Payout{ID: uuid.New(), UserID: "SA10001", TotalPoints: 300}

	entry := ApplySettlement(&record, 0)

	assert.Equal(t, 0.0, entry.Amount)
	assert.Equal(t, 0.0, entry.PayoutAmount)
	assert.InDelta(t, 300.0, record.TotalPoints, 1e-9)
}

func TestIsValidPayoutStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"pending", true},
		{"completed", true},
		{"failed", true},
		{"Pending", false},
		{"cancelled", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPayoutStatus(tt.status))
		})
	}
}

func TestCanUpdatePayoutEntry(t *testing.T) {
	assert.True(t, CanUpdatePayoutEntry("pending"))
	assert.False(t, CanUpdatePayoutEntry("completed"))
	assert.False(t, CanUpdatePayoutEntry("failed"))
}

func TestIsKYCVerified(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"verified", true},
		{"pending", false},
		{"rejected", false},
		{"Verified", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, IsKYCVerified(tt.status))
		})
	}
}

func TestSelfPointsResetGuardedBySnapshot(t *testing.T) {
	db := newDryRunDB(t)

	tx := resetSettledSelfPoints(db, "SA10001", 120)
	require.NoError(t, tx.Error)

	// The reset must only apply while the accrual still equals what this run
	// settled. A checkout committing after the graph snapshot keeps its
	// points for the next run.
	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, "AND self_points = $")
	assert.Contains(t, tx.Statement.Vars, "SA10001")
	assert.Contains(t, tx.Statement.Vars, 120.0)
}
