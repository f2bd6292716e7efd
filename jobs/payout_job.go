package jobs

import (
	"log"

	"github.com/synthosphere/academy_backend/services"
)

// RunScheduledPayout is the cron entry for the periodic global payout run.
func RunScheduledPayout() {
	log.Println("Running job: scheduled global payout...")

	results, err := services.RunGlobalPayout()
	if err != nil {
		log.Printf("🔥 Scheduled payout run failed: %v", err)
		return
	}

	log.Printf("Scheduled payout run settled %d user(s).", len(results))
}
