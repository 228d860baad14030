package tasks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/testutil"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createOrder(t *testing.T, db *gorm.DB, status models.OrderStatus) models.Order {
	t.Helper()
	user := testutil.CreateUser(t, db, "alice")
	order := models.Order{UserID: user.ID, Status: status}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestOrderNotifierPostsWebhook(t *testing.T) {
	db := testutil.NewDB(t)
	order := createOrder(t, db, models.OrderStatusDone)

	received := make(chan Notification, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var n Notification
		if err := json.NewDecoder(r.Body).Decode(&n); err == nil {
			received <- n
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := NewOrderNotifier(db, NotifierConfig{WebhookURL: server.URL})
	err := notifier.Handle(context.Background(), Job{ID: "job-1", OrderID: order.ID, Message: "Order status changed to done"})
	require.NoError(t, err)

	select {
	case n := <-received:
		assert.Equal(t, "job-1", n.JobID)
		assert.Equal(t, order.ID, n.OrderID)
		assert.Equal(t, order.UserID, n.UserID)
		assert.Equal(t, models.OrderStatusDone, n.Status)
		assert.Equal(t, "Order status changed to done", n.Message)
	default:
		t.Fatal("webhook was not called")
	}
}

func TestOrderNotifierReportsWebhookFailure(t *testing.T) {
	db := testutil.NewDB(t)
	order := createOrder(t, db, models.OrderStatusNew)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer server.Close()

	notifier := NewOrderNotifier(db, NotifierConfig{WebhookURL: server.URL})
	err := notifier.Handle(context.Background(), Job{OrderID: order.ID, Message: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestOrderNotifierIgnoresMissingOrder(t *testing.T) {
	db := testutil.NewDB(t)
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	notifier := NewOrderNotifier(db, NotifierConfig{WebhookURL: server.URL})
	assert.NoError(t, notifier.Handle(context.Background(), Job{OrderID: 404, Message: "x"}))
	assert.False(t, called)
}

func TestOrderNotifierDelayHonoursContext(t *testing.T) {
	db := testutil.NewDB(t)
	order := createOrder(t, db, models.OrderStatusNew)

	notifier := NewOrderNotifier(db, NotifierConfig{Delay: time.Hour})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, notifier.Handle(ctx, Job{OrderID: order.ID}), context.DeadlineExceeded)
}

func TestOrderNotifierPublishesToHub(t *testing.T) {
	db := testutil.NewDB(t)
	order := createOrder(t, db, models.OrderStatusInProgress)
	hub := NewHub()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Add(order.UserID, conn)
	}))
	defer server.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()
	require.Eventually(t, func() bool { return hub.Connections(order.UserID) == 1 }, 2*time.Second, 10*time.Millisecond)

	notifier := NewOrderNotifier(db, NotifierConfig{Hub: hub})
	require.NoError(t, notifier.Handle(context.Background(), Job{OrderID: order.ID, Message: "Order status changed to in_progress"}))

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	var n Notification
	require.NoError(t, client.ReadJSON(&n))
	assert.Equal(t, order.ID, n.OrderID)
	assert.Equal(t, models.OrderStatusInProgress, n.Status)
}
