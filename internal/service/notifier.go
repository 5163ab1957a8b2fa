package service

import (
	"context"
	"fmt"

	"scoutquest/internal/events"
	"scoutquest/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const notifierBuffer = 64

type NotifierConfig struct {
	BotToken    string
	AdminChatID int64
	Debug       bool
}

type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier relays application events to the administrators' chat.
type TelegramNotifier struct {
	bot    MessageSender
	chatID int64
	queue  chan events.Event
}

func NewTelegramNotifier(config NotifierConfig) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(config.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot: %w", err)
	}

	bot.Debug = config.Debug

	return NewNotifierWithSender(bot, config.AdminChatID), nil
}

func NewNotifierWithSender(bot MessageSender, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
		queue:  make(chan events.Event, notifierBuffer),
	}
}

// Publish queues the event. Events are dropped while the queue is full.
func (n *TelegramNotifier) Publish(_ context.Context, event events.Event) {
	select {
	case n.queue <- event:
	default:
		logger.Logger().Warn("Notifier queue is full, dropping event", zap.String("type", event.Type))
	}
}

func (n *TelegramNotifier) Run(ctx context.Context) {
	log := logger.Logger()

	for {
		select {
		case event := <-n.queue:
			msg := tgbotapi.NewMessage(n.chatID, notificationText(event))
			if _, err := n.bot.Send(msg); err != nil {
				log.Error("Failed to send notification",
					zap.String("type", event.Type),
					zap.Error(err))
			}

		case <-ctx.Done():
			return
		}
	}
}

func notificationText(event events.Event) string {
	name, _ := event.Payload["achievement_name"].(string)
	if name == "" {
		name, _ = event.Payload["achievement_id"].(string)
	}

	switch event.Type {
	case events.ApplicationSubmitted:
		return fmt.Sprintf("New application for %q from scout %s is waiting for review.", name, event.ScoutID)
	case events.ApplicationApproved:
		return fmt.Sprintf("Application for %q by scout %s approved: +%v points (total %v).",
			name, event.ScoutID, event.Payload["points_awarded"], event.Payload["scout_points"])
	case events.ApplicationRejected:
		return fmt.Sprintf("Application for %q by scout %s rejected.", name, event.ScoutID)
	}
	return fmt.Sprintf("%s: scout %s", event.Type, event.ScoutID)
}
