package event_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"tripavail/config"
	"tripavail/infras/kafka"
	kafkaMocks "tripavail/infras/kafka/mocks"
	"tripavail/infras/otel/mocks"
	"tripavail/internal/domains/booking/event"
	"tripavail/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var _ kafka.Client = (*kafkaMocks.MockClient)(nil)

func TestNewEvent(t *testing.T) {
	booking := model.Booking{ID: "booking-1", UserID: "user-1", ProviderID: "provider-1", Status: model.StatusConfirmed}

	evt := event.NewEvent(booking, model.EventConfirmed)

	assert.NotEmpty(t, evt.EventID)
	assert.Equal(t, model.EventConfirmed, evt.Type)
	assert.Equal(t, "booking-1", evt.BookingID)
	assert.Equal(t, "user-1", evt.UserID)
	assert.Equal(t, "provider-1", evt.ProviderID)
	assert.Equal(t, model.StatusConfirmed, evt.Status)
	assert.False(t, evt.OccurredAt.IsZero())
}

func TestPublisher_Publish(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
	}{
		{name: "sends keyed by booking"},
		{name: "swallows broker failure", sendErr: errors.New("broker down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := &config.Config{}
			cfg.Kafka.Topic.BookingEvents = "booking.events"

			client := kafkaMocks.NewMockClient(ctrl)
			sent := make(chan kafka.Message, 1)

			client.EXPECT().
				SendMessages(gomock.Any(), "booking.events", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
					sent <- messages[0]

					return tt.sendErr
				})

			ctx, cancel := context.WithCancel(context.Background())

			publisher := event.New(client, cfg, mocks.NewOtel())
			publisher.Publish(ctx, model.Booking{ID: "booking-1", Status: model.StatusHold}, model.EventHeld)

			cancel()

			select {
			case msg := <-sent:
				assert.Equal(t, "booking-1", msg.Key)

				evt, ok := msg.Value.(model.Event)
				require.True(t, ok)
				assert.Equal(t, model.EventHeld, evt.Type)
				assert.Equal(t, model.StatusHold, evt.Status)
			case <-time.After(time.Second):
				t.Fatal("event was not published")
			}
		})
	}
}
