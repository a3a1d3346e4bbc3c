package services

import (
	"context"
	"errors"
	"log"
	"time"
)

// VacancySweeper periodically reclaims every overdue room so guests do not
// have to wait for an employee to free rooms whose checkout time has passed.
type VacancySweeper struct {
	Bookings *BookingService
	Interval time.Duration
}

func NewVacancySweeper(bookings *BookingService, interval time.Duration) *VacancySweeper {
	return &VacancySweeper{Bookings: bookings, Interval: interval}
}

// Run blocks until ctx is cancelled, sweeping once per interval.
func (s *VacancySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	log.Printf("vacancy sweeper running every %s", s.Interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("vacancy sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep performs one reclaim-all pass. An empty overdue set is a no-op.
func (s *VacancySweeper) Sweep() {
	rooms, err := s.Bookings.ReclaimOverdue()
	switch {
	case errors.Is(err, ErrNoOverdueRooms):
	case err != nil:
		log.Printf("vacancy sweep failed: %v", err)
	default:
		log.Printf("vacancy sweep reclaimed %d room(s)", len(rooms))
	}
}
