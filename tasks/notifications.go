package tasks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

// Notification is the payload delivered to the webhook and to websocket
// subscribers.
type Notification struct {
	JobID   string             `json:"job_id"`
	OrderID uint               `json:"order_id"`
	UserID  uint               `json:"user_id"`
	Status  models.OrderStatus `json:"status"`
	Message string             `json:"message"`
	SentAt  time.Time          `json:"sent_at"`
}

type NotifierConfig struct {
	Delay      time.Duration
	WebhookURL string
	Mailer     utils.Mailer
	Hub        *Hub
}

// OrderNotifier delivers "order changed" notifications. Every channel is
// optional; with none configured the job only logs.
type OrderNotifier struct {
	db     *gorm.DB
	config NotifierConfig
	client *resty.Client
}

func NewOrderNotifier(db *gorm.DB, config NotifierConfig) *OrderNotifier {
	client := resty.New().
		SetTimeout(10*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &OrderNotifier{db: db, config: config, client: client}
}

// Handle is the queue handler. A missing order is logged and treated as done.
func (n *OrderNotifier) Handle(ctx context.Context, job Job) error {
	log.Printf("Sending notification for order %d: %s", job.OrderID, job.Message)

	var order models.Order
	err := n.db.WithContext(ctx).Preload("User").First(&order, job.OrderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Order %d not found", job.OrderID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}

	if n.config.Delay > 0 {
		timer := time.NewTimer(n.config.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	notification := Notification{
		JobID:   job.ID,
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  order.Status,
		Message: job.Message,
		SentAt:  time.Now().UTC(),
	}

	var errs []error
	if n.config.WebhookURL != "" {
		if err := n.postWebhook(ctx, notification); err != nil {
			errs = append(errs, err)
		}
	}
	if n.config.Mailer.Enabled() && order.User.Email != "" {
		data := utils.EmailData{Name: order.User.Username, Message: job.Message, OrderID: order.ID}
		subject := fmt.Sprintf("Order #%d update", order.ID)
		if err := n.config.Mailer.SendEmail(order.User.Email, subject, data); err != nil {
			errs = append(errs, err)
		}
	}
	if n.config.Hub != nil {
		n.config.Hub.Publish(order.UserID, notification)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	log.Printf("Notification sent for order %d", order.ID)
	return nil
}

func (n *OrderNotifier) postWebhook(ctx context.Context, notification Notification) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(notification).
		Post(n.config.WebhookURL)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}
	return nil
}
