// Package notify pushes order events to the restaurant's Telegram chat.
package notify

import (
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"foodexpress/pkg/logger"
	"foodexpress/pkg/models"
)

type Notifier interface {
	OrderCreated(order *models.Order)
	OrderDelivered(orderID int64)
}

type telegramNotifier struct {
	bot    *tele.Bot
	chatID int64
	log    logger.ILogger
}

// NewTelegram builds a Telegram notifier. When the token is empty it falls
// back to a no-op so local setups run without a bot.
func NewTelegram(token string, chatID int64, log logger.ILogger) (Notifier, error) {
	if token == "" {
		return NewNoop(), nil
	}

	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	return &telegramNotifier{bot: b, chatID: chatID, log: log}, nil
}

func (n *telegramNotifier) OrderCreated(order *models.Order) {
	msg := fmt.Sprintf("🛵 New order #%d\nTotal: %.2f\nDelivery by %s",
		order.ID, order.TotalPrice, order.DeliveryTime)
	n.send(msg)
}

func (n *telegramNotifier) OrderDelivered(orderID int64) {
	n.send(fmt.Sprintf("✅ Order #%d delivered", orderID))
}

func (n *telegramNotifier) send(msg string) {
	if _, err := n.bot.Send(tele.ChatID(n.chatID), msg); err != nil {
		n.log.Warning("failed to send telegram notification", logger.Error(err))
	}
}

type noopNotifier struct{}

// NewNoop returns a notifier that drops every event.
func NewNoop() Notifier {
	return noopNotifier{}
}

func (noopNotifier) OrderCreated(*models.Order) {}
func (noopNotifier) OrderDelivered(int64)       {}
