package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestRoomBookedText(t *testing.T) {
	in := time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC)
	out := time.Date(2026, 11, 12, 0, 0, 0, 0, time.UTC)

	text := roomBookedText(
		&domain.Room{Title: "Hanok", City: "Seoul", Country: "Korea"},
		&domain.Booking{CheckIn: &in, CheckOut: &out, Guests: 3},
	)

	assert.Contains(t, text, "Hanok, Seoul, Korea")
	assert.Contains(t, text, "10.11.2026")
	assert.Contains(t, text, "12.11.2026")
	assert.Contains(t, text, "Гостей: 3")
}

func TestReminderText_MissingDates(t *testing.T) {
	text := reminderText(&domain.Booking{})
	assert.Contains(t, text, "-")
}

func TestExperienceBookedText(t *testing.T) {
	at := time.Date(2026, 11, 10, 14, 30, 0, 0, time.UTC)

	text := experienceBookedText(
		&domain.Experience{Name: "Tea ceremony", City: "Seoul"},
		&domain.Booking{ExperienceTime: &at, Guests: 2},
	)

	assert.Contains(t, text, "Tea ceremony, Seoul")
	assert.Contains(t, text, "10.11.2026 14:30")
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(42)
	guest := &domain.User{ID: "u1", TelegramChatID: &chatID}

	assert.NotPanics(t, func() {
		n.NotifyCheckInReminder(context.Background(), guest, &domain.Booking{ID: "b1"})
		n.NotifyRoomBooked(context.Background(), guest, &domain.Room{Title: "Hanok"}, &domain.Booking{ID: "b1"})
	})
}
