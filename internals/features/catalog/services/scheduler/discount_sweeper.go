package scheduler

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	model "layananku_backend/internals/features/catalog/services/model"
)

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ── ENTRYPOINT: panggil dari main.go.
// Sweeper ini murni kosmetik (bukan bagian invariant billing):
// diskon yang window-nya sudah lewat dibersihkan supaya listing rapi.
func StartDiscountSweepCron(db *gorm.DB) {
	schedule := getEnvOrDefault("DISCOUNT_SWEEP_CRON", "30 1 * * *")

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := runDiscountSweep(ctx, db); err != nil {
			log.Printf("[DISCOUNT-SWEEP] error: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("[DISCOUNT-SWEEP] add cron gagal: %v", err)
	}
	log.Printf("[DISCOUNT-SWEEP] started schedule=%q", schedule)
	c.Start()
}

func runDiscountSweep(ctx context.Context, db *gorm.DB) error {
	res := db.WithContext(ctx).Model(&model.Service{}).
		Where("service_has_discount = TRUE AND service_discount_end_date < NOW()").
		Updates(map[string]any{
			"service_has_discount":        false,
			"service_discount_type":       nil,
			"service_discount_value":      nil,
			"service_discount_start_date": nil,
			"service_discount_end_date":   nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("[DISCOUNT-SWEEP] %d service dibersihkan diskonnya", res.RowsAffected)
	} else {
		log.Println("[DISCOUNT-SWEEP] tidak ada diskon kadaluarsa")
	}
	return nil
}
