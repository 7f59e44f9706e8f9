package events_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/events"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/order"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/testutil"
)

func TestPublishOrderCreated(t *testing.T) {
	if os.Getenv("INTEGRATION") == "" {
		t.Skip("set INTEGRATION=1 to run container-backed tests")
	}
	t.Parallel()

	conn, _ := testutil.StartRabbitMQ(t)

	pub, err := events.NewPublisher(conn)
	require.NoError(t, err)
	defer pub.Close()

	o := &order.Order{
		ID:            "o1",
		CustomerName:  "أحمد",
		CustomerPhone: "01012345678",
		TotalAmount:   4100,
		Items: []order.Item{
			{ProductID: "s1", ProductName: "Sauvage", Quantity: 2, Price: 1200},
		},
	}
	require.NoError(t, pub.PublishOrderCreated(context.Background(), o))

	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	msgs, err := ch.Consume(events.OrderCreatedQueue, "", true, false, false, false, nil)
	require.NoError(t, err)

	select {
	case msg := <-msgs:
		var ev events.OrderCreated
		require.NoError(t, json.Unmarshal(msg.Body, &ev))
		require.Equal(t, events.EventTypeOrderCreated, ev.EventType)
		require.Equal(t, "o1", ev.OrderID)
		require.Len(t, ev.Items, 1)
		require.Equal(t, 4100.0, ev.TotalAmount)
	case <-time.After(10 * time.Second):
		t.Fatal("no OrderCreated message received")
	}
}
