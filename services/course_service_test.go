package services

import (
	"testing"
	"time"

	"github.com/synthosphere/academy_backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsForAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   float64
	}{
		{"starter package", 944, 800},
		{"basic package", 1770, 1500},
		{"silver package", 3540, 3000},
		{"gold package", 7080, 6000},
		{"platinum package", 11800, 10000},
		{"elite package", 59000, 25000},
		{"gateway rounding", 943.60, 800},
		{"unmapped amount", 1000, 0},
		{"zero amount", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointsForAmount(tt.amount))
		})
	}
}

func TestValidityMonthsForAmount(t *testing.T) {
	assert.Equal(t, 1, ValidityMonthsForAmount(944))
	assert.Equal(t, 1, ValidityMonthsForAmount(1770))
	assert.Equal(t, 3, ValidityMonthsForAmount(3540))
	assert.Equal(t, 6, ValidityMonthsForAmount(7080))
	assert.Equal(t, 12, ValidityMonthsForAmount(11800))
	assert.Equal(t, 12, ValidityMonthsForAmount(59000))
	assert.Equal(t, 0, ValidityMonthsForAmount(500))
}

func TestApplyPurchaseOpensWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	course := models.CourseDetails{UserID: "SA10001"}

	ApplyPurchase(&course, "Stock Market Mastery", "Starter", 944, now)

	require.NotNil(t, course.ValidityStart)
	require.NotNil(t, course.ValidityEnd)
	assert.True(t, course.ValidityStart.Equal(now))
	assert.True(t, course.ValidityEnd.Equal(now.AddDate(0, 1, 0)))

	require.Len(t, course.PurchaseHistory, 1)
	assert.Equal(t, "completed", course.PurchaseHistory[0].Status)
	assert.Equal(t, 944.0, course.PurchaseHistory[0].Amount)
}

func TestApplyPurchaseResetsExpiredWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	oldStart := now.AddDate(0, -8, 0)
	oldEnd := now.AddDate(0, -2, 0)
	course := models.CourseDetails{
		UserID:        "SA10001",
		ValidityStart: &oldStart,
		ValidityEnd:   &oldEnd,
	}

	ApplyPurchase(&course, "Stock Market Mastery", "Gold", 7080, now)

	assert.True(t, course.ValidityStart.Equal(now))
	assert.True(t, course.ValidityEnd.Equal(now.AddDate(0, 6, 0)))
}

func TestApplyPurchaseExtendsActiveWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	start := now.AddDate(0, -1, 0)
	end := now.AddDate(0, 2, 0)
	course := models.CourseDetails{
		UserID:        "SA10001",
		ValidityStart: &start,
		ValidityEnd:   &end,
	}

	ApplyPurchase(&course, "Stock Market Mastery", "Silver", 3540, now)

	// Renewal stacks on the remaining validity instead of restarting it.
	assert.True(t, course.ValidityStart.Equal(start))
	assert.True(t, course.ValidityEnd.Equal(end.AddDate(0, 3, 0)))
}

func TestCheckoutAccrualIsSingleStatement(t *testing.T) {
	db := newDryRunDB(t)

	tx := AccrueCheckoutPoints(db, "SA10001", 800)
	require.NoError(t, tx.Error)

	// Both counters move inside the database in one statement, never through
	// a stale loaded row.
	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, `"self_points"=self_points + $`)
	assert.Contains(t, sql, `"total_self_points"=total_self_points + $`)
	assert.Contains(t, tx.Statement.Vars, 800.0)
}

func TestApplyPurchaseAlwaysAppendsHistory(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	course := models.CourseDetails{UserID: "SA10001"}

	ApplyPurchase(&course, "Stock Market Mastery", "Starter", 944, now)
	ApplyPurchase(&course, "Stock Market Mastery", "Silver", 3540, now.AddDate(0, 0, 5))
	ApplyPurchase(&course, "Stock Market Mastery", "Gold", 7080, now.AddDate(0, 7, 0))

	require.Len(t, course.PurchaseHistory, 3)
	for _, p := range course.PurchaseHistory {
		assert.Equal(t, "completed", p.Status)
	}
	assert.Equal(t, "Gold", course.PackageName)
}
