package service_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"tripavail/config"
	"tripavail/internal/domains/booking/service"
	serviceMocks "tripavail/internal/domains/booking/service/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReaper_Sweep(t *testing.T) {
	cfg := &config.Config{}
	cfg.Booking.Reaper.BatchSize = 2

	tests := []struct {
		name      string
		setupMock func(m *serviceMocks.MockBooking)
		want      int
	}{
		{
			name: "drains full batches until one comes back short",
			setupMock: func(m *serviceMocks.MockBooking) {
				gomock.InOrder(
					m.EXPECT().ExpireHolds(gomock.Any(), 2).Return(2, nil),
					m.EXPECT().ExpireHolds(gomock.Any(), 2).Return(2, nil),
					m.EXPECT().ExpireHolds(gomock.Any(), 2).Return(1, nil),
				)
			},
			want: 5,
		},
		{
			name: "nothing to expire",
			setupMock: func(m *serviceMocks.MockBooking) {
				m.EXPECT().ExpireHolds(gomock.Any(), 2).Return(0, nil)
			},
			want: 0,
		},
		{
			name: "stops on error and keeps the partial count",
			setupMock: func(m *serviceMocks.MockBooking) {
				m.EXPECT().ExpireHolds(gomock.Any(), 2).Return(1, errors.New("database error"))
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockBooking := serviceMocks.NewMockBooking(ctrl)
			tt.setupMock(mockBooking)

			reaper := service.NewReaper(mockBooking, cfg)

			assert.Equal(t, tt.want, reaper.Sweep(context.Background()))
		})
	}
}

func TestReaper_Run_StopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBooking := serviceMocks.NewMockBooking(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	mockBooking.EXPECT().
		ExpireHolds(gomock.Any(), 1).
		DoAndReturn(func(_ context.Context, _ int) (int, error) {
			cancel()

			return 0, nil
		})

	cfg := &config.Config{}
	cfg.Booking.Reaper.IntervalSeconds = 3600

	done := make(chan error, 1)

	go func() { done <- service.NewReaper(mockBooking, cfg).Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reaper did not stop after cancellation")
	}
}
