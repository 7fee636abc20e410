package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"MarketWarRoom/internal/dashboard"
)

// Scheduler periodically rebuilds the sector heatmap so the provider
// cache stays warm and the first dashboard load of the day is fast.
type Scheduler struct {
	Cron      *cron.Cron
	Assembler *dashboard.Assembler
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, asm *dashboard.Assembler) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Assembler: asm,
		Ctx:       ctx,
	}
}

// Register registers the sector refresh task with the given cron spec.
func (s *Scheduler) Register(sectorCron string) error {
	if _, err := s.Cron.AddFunc(sectorCron, s.refreshSectors); err != nil {
		return fmt.Errorf("register sector refresh: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the sector refresh immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.refreshSectors()
}

func (s *Scheduler) refreshSectors() {
	log.Println("[INFO] refreshing sector performance")
	view, err := s.Assembler.BuildHeatmapView(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] sector refresh: %v", err)
		return
	}
	log.Printf("[INFO] sector refresh done: %d tiles, avg %+.2f%%", len(view.Tiles), view.AverageChange)
}
