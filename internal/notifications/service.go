package notifications

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"stagepass/internal/shared/config"
	"stagepass/pkg/logger"
)

// UserDirectory resolves recipient contact details without importing the auth package.
type UserDirectory interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (email, firstName, lastName string, err error)
}

type Service interface {
	NotifyEventDecision(ctx context.Context, eventID uint, eventName string, organizerID uuid.UUID, decision string) error
	NotifyUserRegistered(ctx context.Context, email, firstName string) error

	Start(ctx context.Context) error
	Stop() error
	HealthCheck(ctx context.Context) error
}

type service struct {
	config       *config.Config
	directory    UserDirectory
	producer     NotificationProducer
	consumer     NotificationConsumer
	emailService EmailService

	isRunning bool
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewService builds the notification pipeline. With Kafka enabled notifications
// go through the broker and a consumer pool delivers them; otherwise they are
// delivered inline. Missing SMTP settings degrade to a log-only sender.
func NewService(cfg *config.Config, directory UserDirectory) (Service, error) {
	var emailService EmailService
	if cfg.Email.SMTPHost != "" && cfg.Email.SMTPUsername != "" {
		smtpService, err := NewSMTPEmailService(&SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			UseTLS:    true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create SMTP email service: %w", err)
		}
		emailService = smtpService
	} else {
		logger.GetDefault().Warn("SMTP not configured, emails will only be logged")
		emailService = NewMockEmailService()
	}

	ctx, cancel := context.WithCancel(context.Background())

	svc := &service{
		config:       cfg,
		directory:    directory,
		emailService: emailService,
		ctx:          ctx,
		cancel:       cancel,
	}

	if cfg.Kafka.Enabled {
		producerConfig := DefaultKafkaProducerConfig()
		producerConfig.Brokers = cfg.Kafka.Brokers
		producerConfig.NotificationTopic = cfg.Kafka.NotificationTopic

		producer, err := NewKafkaNotificationProducer(producerConfig)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to create notification producer: %w", err)
		}

		consumerConfig := DefaultConsumerConfig()
		consumerConfig.Brokers = cfg.Kafka.Brokers
		consumerConfig.Topics = []string{cfg.Kafka.NotificationTopic}

		consumer, err := NewKafkaNotificationConsumer(consumerConfig, emailService)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to create notification consumer: %w", err)
		}

		svc.producer = producer
		svc.consumer = consumer
	}

	return svc, nil
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("notification service is already running")
	}

	if s.consumer != nil {
		if err := s.consumer.StartConsumers(s.ctx, 3); err != nil {
			return fmt.Errorf("failed to start consumers: %w", err)
		}
	}

	s.isRunning = true
	return nil
}

func (s *service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return fmt.Errorf("notification service is not running")
	}

	s.cancel()

	if s.consumer != nil {
		if err := s.consumer.Stop(); err != nil {
			logger.GetDefault().WithError(err).Warn("Error stopping notification consumer")
		}
	}

	if s.producer != nil {
		if err := s.producer.Close(); err != nil {
			logger.GetDefault().WithError(err).Warn("Error closing notification producer")
		}
	}

	s.isRunning = false
	return nil
}

// NotifyEventDecision tells the organizer the outcome of an approval review.
func (s *service) NotifyEventDecision(ctx context.Context, eventID uint, eventName string, organizerID uuid.UUID, decision string) error {
	email, firstName, lastName, err := s.directory.GetUserByID(ctx, organizerID)
	if err != nil {
		return fmt.Errorf("failed to resolve organizer %s: %w", organizerID, err)
	}

	notType := NotificationTypeEventDisapproved
	subject := fmt.Sprintf("Your event %q was not approved", eventName)
	if decision == "Approved" {
		notType = NotificationTypeEventApproved
		subject = fmt.Sprintf("Your event %q has been approved", eventName)
	}

	notification := NewNotificationBuilder().
		WithType(notType).
		WithRecipient(organizerID, email, firstName+" "+lastName).
		WithSubject(subject).
		WithEventContext(eventID).
		WithTemplateData(map[string]interface{}{
			"event_name": eventName,
			"decision":   decision,
		}).
		Build()

	return s.dispatch(ctx, notification)
}

// NotifyUserRegistered sends a welcome email to a new account.
func (s *service) NotifyUserRegistered(ctx context.Context, email, firstName string) error {
	notification := NewNotificationBuilder().
		WithType(NotificationTypeWelcome).
		WithRecipient(uuid.New(), email, firstName).
		WithSubject("Welcome to StagePass").
		Build()

	return s.dispatch(ctx, notification)
}

func (s *service) dispatch(ctx context.Context, notification *EmailNotification) error {
	if s.producer != nil {
		return s.producer.PublishNotification(ctx, notification)
	}
	return s.emailService.SendNotification(ctx, notification)
}

func (s *service) HealthCheck(ctx context.Context) error {
	s.mu.RLock()
	isRunning := s.isRunning
	s.mu.RUnlock()

	if !isRunning {
		return fmt.Errorf("notification service is not running")
	}

	if s.producer != nil {
		if err := s.producer.HealthCheck(ctx); err != nil {
			return fmt.Errorf("producer health check failed: %w", err)
		}
	}

	if s.consumer != nil {
		if err := s.consumer.HealthCheck(ctx); err != nil {
			return fmt.Errorf("consumer health check failed: %w", err)
		}
	}

	return nil
}
