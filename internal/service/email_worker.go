package service

import (
	"encoding/json"
	"log"

	"github.com/abidnoul/portfolio/internal/util"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EmailWorker consumes contact-notification messages from RabbitMQ and
// mails the site owner.
type EmailWorker struct {
	emailService *EmailService
	rabbitMQ     *util.RabbitMQClient
	stopChan     chan bool
}

// NewEmailWorker creates a new email worker
func NewEmailWorker(emailService *EmailService, rabbitMQ *util.RabbitMQClient) *EmailWorker {
	return &EmailWorker{
		emailService: emailService,
		rabbitMQ:     rabbitMQ,
		stopChan:     make(chan bool),
	}
}

// Start declares the topology and starts consuming contact notifications.
func (w *EmailWorker) Start() error {
	if w.rabbitMQ == nil {
		return nil // RabbitMQ not available, worker will not start
	}

	channel := w.rabbitMQ.GetChannel()
	if channel == nil {
		return nil
	}

	if err := channel.ExchangeDeclare(
		ContactExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return err
	}

	queue, err := channel.QueueDeclare(
		ContactQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	if err := channel.QueueBind(
		queue.Name,
		ContactRoutingKey,
		ContactExchange,
		false,
		nil,
	); err != nil {
		return err
	}

	msgs, err := channel.Consume(
		queue.Name,
		"email_worker",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	go func() {
		log.Println("Email worker started, consuming messages...")
		for {
			select {
			case <-w.stopChan:
				log.Println("Email worker stopped")
				return
			case msg, ok := <-msgs:
				if !ok {
					log.Println("Contact notification queue closed")
					return
				}
				if err := w.processMessage(msg); err != nil {
					log.Printf("Error processing contact notification: %v", err)
					// Don't ack on error, let RabbitMQ requeue
					msg.Nack(false, true)
				} else {
					msg.Ack(false)
				}
			}
		}
	}()

	return nil
}

// Stop signals the consume loop to exit.
func (w *EmailWorker) Stop() {
	close(w.stopChan)
}

func (w *EmailWorker) processMessage(msg amqp.Delivery) error {
	var notification ContactNotification
	if err := json.Unmarshal(msg.Body, &notification); err != nil {
		return err
	}

	return w.emailService.SendContactNotification(notification)
}
