// Package notify publishes donation change events to RabbitMQ so list views
// can re-fetch instead of polling. The publisher is optional: a nil *Publisher
// no-ops, and the API runs without a broker.
package notify

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"unityeats/internal/models"

	"github.com/streadway/amqp"
)

const (
	EventDonationCreated   = "donation.created"
	EventDonationAccepted  = "donation.accepted"
	EventDonationCollected = "donation.collected"
	EventDonationExpired   = "donation.expired"
)

type donationEvent struct {
	Event    string          `json:"event"`
	Donation models.Donation `json:"donation"`
	At       time.Time       `json:"at"`
}

type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{conn: conn, channel: channel, exchange: exchange}, nil
}

// DonationEvent publishes the event with the event name as routing key.
// Delivery is best effort: a failed publish is logged, never retried, and
// never fails the triggering request.
func (p *Publisher) DonationEvent(event string, donation models.Donation) {
	if p == nil {
		return
	}

	body, err := json.Marshal(donationEvent{Event: event, Donation: donation, At: time.Now()})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}

	err = p.channel.Publish(p.exchange, event, false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        body,
	})
	if err != nil {
		log.Printf("Failed to publish %s event for donation %s: %v", event, donation.ID, err)
	}
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
