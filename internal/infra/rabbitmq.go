package infra

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DialRabbitMQ opens the broker connection used by the event publisher.
func DialRabbitMQ(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}
	return conn, nil
}
