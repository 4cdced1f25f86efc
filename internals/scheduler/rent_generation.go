// file: internals/scheduler/rent_generation.go
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	rentService "hostelku_backend/internals/features/finance/rent_payments/service"
	blockService "hostelku_backend/internals/features/hostels/blocks/service"
)

type Config struct {
	RentEnabled   bool
	RentSchedule  string // cron spec, minute resolution
	ReaperEnabled bool
	ReaperSpec    string
	RetentionDays int
	Location      *time.Location
}

// Enabled reports whether any job would be registered.
func (c Config) Enabled() bool { return c.RentEnabled || c.ReaperEnabled }

type RunSummary struct {
	Blocks    int
	Failed    int
	Generated int
	Skipped   int
}

// RunRentGeneration refreshes every block with automatic generation on.
// A failing block is logged and the run moves on.
func RunRentGeneration(ctx context.Context, svc *rentService.Service) (RunSummary, error) {
	var sum RunSummary
	blocks, err := blockService.ListGenerationEnabled(ctx, svc.DB)
	if err != nil {
		return sum, fmt.Errorf("list blocks: %w", err)
	}
	for i := range blocks {
		b := &blocks[i]
		res, err := svc.RefreshBlock(ctx, b)
		if err != nil {
			sum.Failed++
			log.Printf("[CRON] rent generation block=%s failed: %v", b.BlockID, err)
			continue
		}
		sum.Blocks++
		sum.Generated += res.Generated
		sum.Skipped += res.Skipped
	}
	return sum, nil
}

// Start registers each enabled job on one cron instance and starts it. Stop the
// returned cron on shutdown. With no job enabled it returns nil.
func Start(db *gorm.DB, cfg Config) (*cron.Cron, error) {
	if !cfg.Enabled() {
		log.Println("[CRON] no jobs enabled")
		return nil, nil
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	if cfg.RentEnabled {
		svc := rentService.New(db)
		svc.Loc = loc
		if _, err := c.AddFunc(cfg.RentSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			start := time.Now()
			sum, err := RunRentGeneration(ctx, svc)
			if err != nil {
				log.Printf("[CRON] rent generation error: %v", err)
				return
			}
			log.Printf("[CRON] rent generation blocks=%d failed=%d generated=%d skipped=%d dur=%s",
				sum.Blocks, sum.Failed, sum.Generated, sum.Skipped, time.Since(start))
		}); err != nil {
			return nil, fmt.Errorf("add rent generation job %q: %w", cfg.RentSchedule, err)
		}
		log.Printf("[CRON] rent generation scheduled %q (%s)", cfg.RentSchedule, loc)
	} else {
		log.Println("[CRON] rent generation disabled")
	}

	if cfg.ReaperEnabled {
		retention := time.Duration(cfg.RetentionDays) * 24 * time.Hour
		if _, err := c.AddFunc(cfg.ReaperSpec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
			defer cancel()
			if _, err := RunTrashReaper(ctx, db, time.Now().Add(-retention)); err != nil {
				log.Printf("[DB-REAPER] error: %v", err)
			}
		}); err != nil {
			return nil, fmt.Errorf("add reaper job %q: %w", cfg.ReaperSpec, err)
		}
		log.Printf("[DB-REAPER] scheduled %q retention=%dd", cfg.ReaperSpec, cfg.RetentionDays)
	}

	c.Start()
	return c, nil
}
