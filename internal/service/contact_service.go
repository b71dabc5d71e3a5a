package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/abidnoul/portfolio/internal/model"
	"github.com/abidnoul/portfolio/internal/repository"
	"github.com/abidnoul/portfolio/internal/util"

	"gorm.io/gorm"
)

// RabbitMQ topology for owner-notification mail.
const (
	ContactExchange   = "contact_exchange"
	ContactQueueName  = "contact_notification_queue"
	ContactRoutingKey = "contact"
)

// ContactService handles contact-form intake and the operator-side view of
// submissions.
type ContactService interface {
	Submit(req SubmitContactRequest) (*model.Contact, error)
	List() ([]model.Contact, error)
	SetResponded(id uint, responded bool) (*model.Contact, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	rabbitMQ    *util.RabbitMQClient
}

// SubmitContactRequest carries the four contact-form fields. All of them
// are required.
type SubmitContactRequest struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Subject string `form:"subject" json:"subject"`
	Message string `form:"message" json:"message"`
}

// ContactNotification is the message published for each new submission.
type ContactNotification struct {
	ContactID uint   `json:"contact_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
}

func NewContactService(contactRepo repository.ContactRepository, rabbitMQ *util.RabbitMQClient) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		rabbitMQ:    rabbitMQ,
	}
}

// Submit validates and persists a submission. Every valid submission creates
// a new row; duplicates are not deduplicated. When RabbitMQ is configured a
// notification message is published for the email worker; publish failures
// are logged and never fail the submission.
func (s *contactService) Submit(req SubmitContactRequest) (*model.Contact, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Subject) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return nil, ErrValidation
	}

	contact := &model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	s.publishNotification(contact)

	return contact, nil
}

// List returns all submissions, newest first.
func (s *contactService) List() ([]model.Contact, error) {
	return s.contactRepo.FindAll()
}

// SetResponded toggles the responded flag and returns the updated row.
func (s *contactService) SetResponded(id uint, responded bool) (*model.Contact, error) {
	err := s.contactRepo.SetResponded(id, responded)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update contact %d: %w", id, err)
	}
	return s.contactRepo.FindByID(id)
}

func (s *contactService) publishNotification(contact *model.Contact) {
	if s.rabbitMQ == nil {
		return
	}

	msg := ContactNotification{
		ContactID: contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Subject:   contact.Subject,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Failed to marshal contact notification: %v", err)
		return
	}

	if err := s.rabbitMQ.Publish(ContactExchange, ContactRoutingKey, body); err != nil {
		log.Printf("Failed to publish contact notification: %v", err)
	}
}
