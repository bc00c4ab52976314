// Package notify pushes order events to the admins' Telegram group.
package notify

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/furnishfusion/storefront/internal/domain/entity"
	"github.com/furnishfusion/storefront/internal/planner"
)

// Notifier receives order lifecycle events. Implementations must not
// block the request path on delivery failures.
type Notifier interface {
	OrderPlaced(order entity.Order, items []entity.OrderItem)
	OrderStatusChanged(order entity.Order, newStatus string)
}

// Noop is used when no Telegram credentials are configured.
type Noop struct{}

func (Noop) OrderPlaced(entity.Order, []entity.OrderItem) {}
func (Noop) OrderStatusChanged(entity.Order, string)      {}

// botAPI is the subset of *tgbotapi.BotAPI the notifier uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error)
}

// Telegram sends order events to a group chat, optionally into a forum
// topic thread. Delivery happens on a background goroutine so order
// placement never waits on the Telegram API.
type Telegram struct {
	bot      botAPI
	chatID   int64
	threadID int
}

// NewTelegram connects the bot. Returns an error when the token is
// rejected; callers fall back to Noop.
func NewTelegram(token string, chatID int64, threadID int) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &Telegram{bot: bot, chatID: chatID, threadID: threadID}, nil
}

func (t *Telegram) OrderPlaced(order entity.Order, items []entity.OrderItem) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🛒 New order #%d\n", order.ID)
	fmt.Fprintf(&sb, "Total: ₹%s", planner.FormatAmount(order.Total))
	if order.DiscountAmount > 0 {
		fmt.Fprintf(&sb, " (discount ₹%s)", planner.FormatAmount(order.DiscountAmount))
	}
	fmt.Fprintf(&sb, "\nPayment: %s / %s\n", order.PaymentMethod, order.PaymentStatus)
	if order.AdvanceAmount != nil {
		fmt.Fprintf(&sb, "Advance due: ₹%s\n", planner.FormatAmount(*order.AdvanceAmount))
	}
	fmt.Fprintf(&sb, "Mobile: %s\nAddress: %s\n", order.ContactMobile, order.ContactAddress)
	for _, it := range items {
		fmt.Fprintf(&sb, "• %s ×%d @ ₹%s\n", it.ProductName, it.Quantity, planner.FormatAmount(it.Price))
	}
	t.send(sb.String())
}

func (t *Telegram) OrderStatusChanged(order entity.Order, newStatus string) {
	t.send(fmt.Sprintf("📦 Order #%d status: %s → %s", order.ID, order.Status, newStatus))
}

// send dispatches the delivery asynchronously; failures are logged and
// dropped.
func (t *Telegram) send(text string) {
	if t.bot == nil || t.chatID == 0 {
		return
	}
	go t.post(text)
}

// post does the actual API call, using a raw sendMessage request when a
// forum topic thread is configured (the typed API has no thread field).
func (t *Telegram) post(text string) {
	if t.threadID > 0 {
		params := make(tgbotapi.Params)
		params.AddNonZero64("chat_id", t.chatID)
		params.AddNonZero("message_thread_id", t.threadID)
		params.AddNonEmpty("text", text)
		if _, err := t.bot.MakeRequest("sendMessage", params); err != nil {
			log.Printf("telegram notify error: %v", err)
		}
		return
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("telegram notify error: %v", err)
	}
}
