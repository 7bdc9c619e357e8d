package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/StayBooker/internal/access"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/metrics"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo    ports.BookingRepo
	roomRepo       ports.RoomRepo
	experienceRepo ports.ExperienceRepo
	userRepo       ports.UserRepo
	availability   *Availability
	notifier       ports.BookingNotifier
	logger         logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	roomRepo ports.RoomRepo,
	experienceRepo ports.ExperienceRepo,
	userRepo ports.UserRepo,
	availability *Availability,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		experienceRepo: experienceRepo,
		userRepo:       userRepo,
		availability:   availability,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *BookingService) BookRoom(ctx context.Context, actorID, roomID string, input domain.CreateRoomBookingInput) (*domain.Booking, error) {
	if err := access.Authorize(actorID, nil, access.ActionCreate); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	ok, err := s.availability.IsAvailable(ctx, roomID, input.CheckIn, input.CheckOut)
	if err != nil {
		metrics.BookingRejected(rejectReason(err))
		return nil, err
	}
	if !ok {
		metrics.BookingRejected(rejectReason(domain.ErrRoomAlreadyBooked))
		return nil, domain.ErrRoomAlreadyBooked
	}

	guest, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	checkIn, checkOut := domain.CivilDate(input.CheckIn), domain.CivilDate(input.CheckOut)
	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		Kind:      domain.BookingKindRoom,
		UserID:    actorID,
		RoomID:    &room.ID,
		CheckIn:   &checkIn,
		CheckOut:  &checkOut,
		Guests:    input.Guests,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// повторная проверка пересечения под блокировкой комнаты
	if err = s.bookingRepo.CreateRoomBooking(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrRoomAlreadyBooked) {
			metrics.BookingRejected(rejectReason(err))
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingCreated(string(domain.BookingKindRoom))
	s.logger.Info("room booked",
		logger.String("booking_id", booking.ID),
		logger.String("room_id", roomID),
		logger.String("user_id", actorID),
	)

	go s.notifier.NotifyRoomBooked(context.WithoutCancel(ctx), guest, room, booking)

	return booking, nil
}

func (s *BookingService) CheckRoomAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return false, fmt.Errorf("get room: %w", err)
	}
	return s.availability.IsAvailable(ctx, roomID, checkIn, checkOut)
}

func (s *BookingService) ListRoomBookings(ctx context.Context, roomID string) ([]*domain.Booking, error) {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	return s.bookingRepo.ListUpcomingByRoom(ctx, roomID, s.availability.Today())
}

func (s *BookingService) BookExperience(ctx context.Context, actorID, experienceID string, input domain.CreateExperienceBookingInput) (*domain.Booking, error) {
	if err := access.Authorize(actorID, nil, access.ActionCreate); err != nil {
		return nil, err
	}

	experience, err := s.experienceRepo.GetByID(ctx, experienceID)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}

	if input.ExperienceTime.Before(s.availability.Now()) {
		metrics.BookingRejected(rejectReason(domain.ErrPastDate))
		return nil, domain.ErrPastDate
	}

	guest, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	at := input.ExperienceTime.UTC()
	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:             uuid.New().String(),
		Kind:           domain.BookingKindExperience,
		UserID:         actorID,
		ExperienceID:   &experience.ID,
		ExperienceTime: &at,
		Guests:         input.Guests,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err = s.bookingRepo.CreateExperienceBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingCreated(string(domain.BookingKindExperience))
	s.logger.Info("experience booked",
		logger.String("booking_id", booking.ID),
		logger.String("experience_id", experienceID),
		logger.String("user_id", actorID),
	)

	go s.notifier.NotifyExperienceBooked(context.WithoutCancel(ctx), guest, experience, booking)

	return booking, nil
}

func (s *BookingService) ListExperienceBookings(ctx context.Context, experienceID string) ([]*domain.Booking, error) {
	if _, err := s.experienceRepo.GetByID(ctx, experienceID); err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}
	return s.bookingRepo.ListUpcomingByExperience(ctx, experienceID, s.availability.Now())
}

// ListMine returns only the caller's own bookings.
func (s *BookingService) ListMine(ctx context.Context, actorID string) ([]*domain.Booking, error) {
	if err := access.RequireIdentity(actorID); err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByUser(ctx, actorID)
}

// SendCheckInReminders marks tomorrow's room bookings as reminded and
// notifies their guests in the background.
func (s *BookingService) SendCheckInReminders(ctx context.Context) ([]*domain.Booking, error) {
	tomorrow := s.availability.Today().AddDate(0, 0, 1)

	reminded, err := s.bookingRepo.MarkReminded(ctx, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("mark reminded: %w", err)
	}

	if len(reminded) > 0 {
		s.logger.Info("check-in reminders due",
			logger.Int("count", len(reminded)),
		)
		metrics.RemindersSent(len(reminded))

		go s.notifyReminders(context.WithoutCancel(ctx), reminded)
	}

	return reminded, nil
}

func (s *BookingService) notifyReminders(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		guest, err := s.userRepo.GetByID(ctx, b.UserID)
		if err != nil {
			s.logger.Error("failed to get user for reminder",
				logger.String("user_id", b.UserID),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.notifier.NotifyCheckInReminder(ctx, guest, b)
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrPastDate):
		return "past_date"
	case errors.Is(err, domain.ErrInvalidStay):
		return "invalid_stay"
	case errors.Is(err, domain.ErrRoomAlreadyBooked):
		return "overlap"
	default:
		return "error"
	}
}
