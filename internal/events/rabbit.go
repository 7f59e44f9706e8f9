package events

import (
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// MustDialRabbit connects to the broker or exits. Callers skip it entirely
// when no broker is configured; order publishing is optional.
func MustDialRabbit(url string) *amqp.Connection {
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	return conn
}
