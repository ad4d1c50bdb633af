package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"

	"dreamcatcher/database"
)

// SchedulerService runs the background maintenance tasks, currently only the
// purge of expired sign-in sessions.
type SchedulerService struct {
	scheduler *gocron.Scheduler
	DB        *gorm.DB
}

func NewSchedulerService(DB *gorm.DB) *SchedulerService {
	s := gocron.NewScheduler(time.UTC)

	return &SchedulerService{
		scheduler: s,
		DB:        DB,
	}
}

func (s *SchedulerService) Start() {
	log.Println("Starting scheduler service...")

	s.scheduler.Every(1).Hour().Do(func() {
		purged, err := database.PurgeExpiredSessions(s.DB)
		if err != nil {
			log.Printf("Failed to purge expired sessions: %v", err)
			return
		}
		if purged > 0 {
			log.Printf("Purged %d expired sessions", purged)
		}
	})

	s.scheduler.StartAsync()
}

func (s *SchedulerService) Stop() {
	s.scheduler.Stop()
}
