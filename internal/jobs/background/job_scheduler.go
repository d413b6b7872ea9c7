package background

import (
	"context"
	"log"
	"time"

	"threadmart/internal/repositories"

	"github.com/go-co-op/gocron/v2"
)

const stalePendingAge = 24 * time.Hour

// JobScheduler manages recurring maintenance jobs.
type JobScheduler struct {
	scheduler gocron.Scheduler
	otpRepo   repositories.OTPRepository
	orderRepo repositories.OrderRepository
}

// NewJobScheduler creates a new job scheduler.
func NewJobScheduler(otpRepo repositories.OTPRepository, orderRepo repositories.OrderRepository) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler: scheduler,
		otpRepo:   otpRepo,
		orderRepo: orderRepo,
	}
	js.registerJobs()
	return js, nil
}

// Start starts the job scheduler.
func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

// Stop stops the job scheduler.
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	// Expired OTP purge - every hour
	if _, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(js.purgeExpiredOTPs, context.Background()),
		gocron.WithName("otp-purge"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		log.Printf("Failed to create OTP purge job: %v", err)
	}

	// Stale pending-order report - every 6 hours
	if _, err := js.scheduler.NewJob(
		gocron.DurationJob(6*time.Hour),
		gocron.NewTask(js.reportStalePendingOrders, context.Background()),
		gocron.WithName("stale-order-report"),
	); err != nil {
		log.Printf("Failed to create stale order report job: %v", err)
	}
}

func (js *JobScheduler) purgeExpiredOTPs(ctx context.Context) {
	deleted, err := js.otpRepo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("ERROR: OTP purge failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Purged %d expired OTPs", deleted)
	}
}

func (js *JobScheduler) reportStalePendingOrders(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-stalePendingAge)
	count, err := js.orderRepo.CountPendingOlderThan(ctx, cutoff)
	if err != nil {
		log.Printf("ERROR: stale order report failed: %v", err)
		return
	}
	if count > 0 {
		log.Printf("WARNING: %d orders pending for more than %s", count, stalePendingAge)
	}
}
