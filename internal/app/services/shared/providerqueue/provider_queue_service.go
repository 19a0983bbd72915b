package providerqueue

import (
	"context"
	"sync"
	"time"

	"healiinn-service/internal/app/config"
	"healiinn-service/internal/app/contracts"
	"healiinn-service/internal/app/models"
	"healiinn-service/internal/pkg/constvars"
	"healiinn-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	EventPaymentConfirmed = "payment_confirmed"
	EventRequestCancelled = "request_cancelled"
)

// ProviderNotification is the payload pushed to the provider-facing queue.
// The downstream consumer owns delivery to the actual lab or pharmacy.
type ProviderNotification struct {
	ID           string          `json:"id"`
	Event        string          `json:"event"`
	RequestID    string          `json:"request_id"`
	PatientID    string          `json:"patient_id"`
	ProviderIDs  []string        `json:"provider_ids,omitempty"`
	CancelReason string          `json:"cancel_reason,omitempty"`
	Body         json.RawMessage `json:"body,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Service manages the durable provider notification queue and its DLQ.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	queue    string
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService declares the durable queues, enables publisher confirms and sets
// QoS, mirroring the delivery guarantees the rest of the platform expects.
func NewService(conn *amqp.Connection, queueConfig config.AppProviderQueue, log *zap.Logger) (contracts.ProviderNotifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueConfig.QueueName, // name
		true,                  // durable
		false,                 // autoDelete
		false,                 // exclusive
		false,                 // noWait
		nil,                   // args
	)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueConfig.DeadLetterQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	prefetch := queueConfig.Prefetch
	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:       ch,
		log:      log,
		queue:    queueConfig.QueueName,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}
	return svc, nil
}

func (s *Service) PublishPaymentConfirmed(ctx context.Context, request *models.ServiceRequest, transaction *models.Transaction) error {
	body, err := json.Marshal(transaction)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	notification := &ProviderNotification{
		ID:          uuid.NewString(),
		Event:       EventPaymentConfirmed,
		RequestID:   request.ID,
		PatientID:   request.PatientID,
		ProviderIDs: providerIDs(request),
		Body:        body,
		CreatedAt:   time.Now().UTC(),
	}
	return s.publish(ctx, notification)
}

func (s *Service) PublishRequestCancelled(ctx context.Context, request *models.ServiceRequest) error {
	notification := &ProviderNotification{
		ID:           uuid.NewString(),
		Event:        EventRequestCancelled,
		RequestID:    request.ID,
		PatientID:    request.PatientID,
		ProviderIDs:  providerIDs(request),
		CancelReason: request.CancelReason,
		CreatedAt:    time.Now().UTC(),
	}
	return s.publish(ctx, notification)
}

func (s *Service) publish(ctx context.Context, notification *ProviderNotification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.ch.PublishWithContext(ctx,
		"",      // exchange
		s.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			MessageId:    notification.ID,
			Timestamp:    notification.CreatedAt,
			Body:         payload,
		},
	)
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	select {
	case confirmation := <-s.confirms:
		if !confirmation.Ack {
			return exceptions.ErrQueuePublish(amqp.ErrClosed)
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublish(ctx.Err())
	}

	s.log.Info("provider notification published",
		zap.String(constvars.LoggingQueueKey, s.queue),
		zap.String(constvars.LoggingEventKey, notification.Event),
		zap.String(constvars.LoggingServiceRequestKey, notification.RequestID),
	)
	return nil
}

// providerIDs collects the distinct providers named in the admin response so
// the consumer knows who to notify.
func providerIDs(request *models.ServiceRequest) []string {
	if request.AdminResponse == nil {
		return nil
	}
	seen := make(map[string]bool)
	var ids []string
	for _, medicine := range request.AdminResponse.Medicines {
		if medicine.PharmacyID != "" && !seen[medicine.PharmacyID] {
			seen[medicine.PharmacyID] = true
			ids = append(ids, medicine.PharmacyID)
		}
	}
	for _, test := range request.AdminResponse.Tests {
		if test.LabID != "" && !seen[test.LabID] {
			seen[test.LabID] = true
			ids = append(ids, test.LabID)
		}
	}
	return ids
}
