package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reminderSender interface {
	SendCheckInReminders(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically reminds guests about tomorrow's check-ins.
type Scheduler struct {
	bookingService reminderSender
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService reminderSender,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reminded, err := s.bookingService.SendCheckInReminders(ctx)
	if err != nil {
		s.logger.Error("failed to send check-in reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range reminded {
		roomID := ""
		if b.RoomID != nil {
			roomID = *b.RoomID
		}
		s.logger.Info("check-in reminder queued",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("room_id", roomID),
		)
	}
}
