package event

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"time"
	"tripavail/config"
	"tripavail/infras/kafka"
	"tripavail/infras/otel"
	"tripavail/internal/domains/booking/model"
	"tripavail/shared/constant"
	"tripavail/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const publishTimeout = 5 * time.Second

// Publisher emits lifecycle events for committed transitions. Publishing never
// fails the caller, a lost event is logged.
type Publisher interface {
	Publish(ctx context.Context, booking model.Booking, eventType model.EventType)
}

type publisherImpl struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topic.BookingEvents,
		otel:   otel,
	}
}

// NewEvent snapshots a booking into an event payload.
func NewEvent(booking model.Booking, eventType model.EventType) model.Event {
	return model.Event{
		EventID:    uuid.NewString(),
		Type:       eventType,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		ProviderID: booking.ProviderID,
		Status:     booking.Status,
		OccurredAt: timezone.Now(),
	}
}

func (p *publisherImpl) Publish(ctx context.Context, booking model.Booking, eventType model.EventType) {
	evt := NewEvent(booking, eventType)

	go func() {
		c, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		c, scope := p.otel.NewScope(c, constant.OtelEventScopeName, constant.OtelEventScopeName+".booking.Publish")
		defer scope.End()

		scope.SetAttribute("event.type", string(eventType))

		err := p.client.SendMessages(c, p.topic, kafka.Message{Key: booking.ID, Value: evt})
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("booking_id", booking.ID).Str("type", string(eventType)).Msg("failed to publish booking event")

			return
		}

		log.Debug().Str("booking_id", booking.ID).Str("type", string(eventType)).Msg("booking event published")
	}()
}
