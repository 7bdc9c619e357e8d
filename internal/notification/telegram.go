package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateFormat = "02.01.2006"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRoomBooked(ctx context.Context, guest *domain.User, room *domain.Room, booking *domain.Booking) {
	n.send(ctx, guest.TelegramChatID, roomBookedText(room, booking))
}

func (n *TelegramNotifier) NotifyExperienceBooked(ctx context.Context, guest *domain.User, experience *domain.Experience, booking *domain.Booking) {
	n.send(ctx, guest.TelegramChatID, experienceBookedText(experience, booking))
}

func (n *TelegramNotifier) NotifyCheckInReminder(ctx context.Context, guest *domain.User, booking *domain.Booking) {
	n.send(ctx, guest.TelegramChatID, reminderText(booking))
}

func roomBookedText(room *domain.Room, b *domain.Booking) string {
	return fmt.Sprintf(
		"*Жильё забронировано!*\n\n"+"%s, %s, %s\n"+"Заезд: %s\n"+"Выезд: %s\n"+"Гостей: %d",
		room.Title, room.City, room.Country,
		formatDate(b.CheckIn), formatDate(b.CheckOut), b.Guests,
	)
}

func experienceBookedText(e *domain.Experience, b *domain.Booking) string {
	at := "-"
	if b.ExperienceTime != nil {
		at = b.ExperienceTime.Format("02.01.2006 15:04")
	}
	return fmt.Sprintf(
		"*Впечатление забронировано!*\n\n"+"%s, %s\n"+"Начало (время указано в UTC): %s\n"+"Гостей: %d",
		e.Name, e.City, at, b.Guests,
	)
}

func reminderText(b *domain.Booking) string {
	return fmt.Sprintf(
		"*Напоминание о заезде*\n\n"+"Заезд завтра, %s.\n"+"Выезд: %s",
		formatDate(b.CheckIn), formatDate(b.CheckOut),
	)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(dateFormat)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
