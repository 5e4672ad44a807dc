package utils

import (
	"earnbox/config"
	"earnbox/ledger"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeSettlementScheduler sets up the daily earnings settlement job.
// A single scheduler instance runs it once per day at the configured hour in
// the configured timezone.
func InitializeSettlementScheduler(store *ledger.Store) *cron.Cron {
	log.Println("[SETTLEMENT] Initializing settlement scheduler...")

	loc, err := time.LoadLocation(config.AppConfig.SettlementTZ)
	if err != nil {
		log.Printf("[SETTLEMENT] Unknown timezone %s, falling back to IST", config.AppConfig.SettlementTZ)
		loc = time.FixedZone("IST", 5*60*60+30*60)
	}

	c := cron.New(cron.WithLocation(loc))

	spec := fmt.Sprintf("0 %d * * *", config.AppConfig.SettlementHour)
	c.AddFunc(spec, func() {
		log.Println("[SETTLEMENT] Running daily settlement...")
		store.SettleActiveOrders(time.Now().In(loc))
	})

	c.Start()
	log.Printf("[SETTLEMENT] Settlement scheduler started - runs daily at %d:00 %s", config.AppConfig.SettlementHour, config.AppConfig.SettlementTZ)
	return c
}
