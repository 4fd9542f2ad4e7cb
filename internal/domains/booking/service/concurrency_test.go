package service_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"
	"tripavail/config"
	metricsMocks "tripavail/infras/metrics/mocks"
	otelMocks "tripavail/infras/otel/mocks"
	"tripavail/infras/processor"
	eventMocks "tripavail/internal/domains/booking/event/mocks"
	"tripavail/internal/domains/booking/model"
	"tripavail/internal/domains/booking/model/dto"
	"tripavail/internal/domains/booking/service"
	catalogModel "tripavail/internal/domains/catalog/model"
	catalogMocks "tripavail/internal/domains/catalog/service/mocks"
	idempotencyService "tripavail/internal/domains/idempotency/service"
	inventoryService "tripavail/internal/domains/inventory/service"
	ledgerMocks "tripavail/internal/domains/ledger/service/mocks"
	paymentModel "tripavail/internal/domains/payment/model"
	paymentDto "tripavail/internal/domains/payment/model/dto"
	paymentService "tripavail/internal/domains/payment/service"
	pricingService "tripavail/internal/domains/pricing/service"
	"tripavail/shared/cache"
	cacheMocks "tripavail/shared/cache/mocks"
	"tripavail/shared/constant"
	"tripavail/shared/failure"
	"tripavail/shared/timezone"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// bench wires the real inventory, idempotency and payment services over the
// in-memory store so concurrent callers race through the whole booking flow.
type bench struct {
	store     *store
	processor *countingProcessor
	svc       service.Booking
}

func newBench(t *testing.T) *bench {
	t.Helper()

	ctrl := gomock.NewController(t)
	db := newStore()
	otel := otelMocks.NewOtel()
	metrics := metricsMocks.NewMetrics()

	catalog := catalogMocks.NewMockCatalog(ctrl)
	catalog.EXPECT().GetPackage(gomock.Any(), packageID).Return(hotelDetail(), nil).AnyTimes()

	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	publisher := eventMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	cfg := &config.Config{}
	cfg.Booking.Currency = "USD"
	cfg.Booking.QuoteTTLHours = 24
	cfg.Booking.HoldTTLMinutes = 15

	b := &bench{
		store:     db,
		processor: &countingProcessor{Processor: processor.NewSandbox()},
	}

	b.svc = service.New(
		bookingRepo{db},
		catalog,
		pricingService.NewWithRates(decimal.RequireFromString("0.10"), decimal.RequireFromString("0.10")),
		inventoryService.New(inventoryRepo{db}, metrics, otel),
		paymentService.New(paymentRepo{db}, b.processor, otel),
		ledgerMocks.NewMockLedger(ctrl),
		idempotencyService.New(idempotencyRepo{db}, redis, otel),
		db,
		publisher,
		metrics,
		cfg,
		redis,
		otel,
	)

	return b
}

// fanOut releases n callers at once and waits for all of them.
func fanOut(n int, call func(i int)) {
	var wg sync.WaitGroup

	start := make(chan struct{})

	for i := range n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			<-start
			call(i)
		}()
	}

	close(start)
	wg.Wait()
}

func TestBookingService_ConcurrentQuotesShareOneKey(t *testing.T) {
	b := newBench(t)
	ctx := asUser(guestID, constant.RoleUser)

	req := dto.QuoteRequest{
		PackageType:    catalogModel.PackageTypeHotel,
		PackageID:      packageID,
		CheckInDate:    timezone.Now().AddDate(0, 0, 10).Format(constant.DateOnlyFormat),
		CheckOutDate:   timezone.Now().AddDate(0, 0, 12).Format(constant.DateOnlyFormat),
		NumberOfGuests: 2,
		IdempotencyKey: "quote-burst-1",
	}

	const callers = 10

	ids := make([]string, callers)
	errs := make([]error, callers)

	fanOut(callers, func(i int) {
		res, err := b.svc.Quote(ctx, req)
		ids[i], errs[i] = res.ID, err
	})

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i], "caller %d got a different booking", i)
	}

	assert.Len(t, b.store.bookings, 1)
	assert.Len(t, b.store.keys, 1)
	assert.Contains(t, b.store.bookings, ids[0])
}

func TestBookingService_ConcurrentHoldsNeverOversell(t *testing.T) {
	b := newBench(t)
	ctx := asUser(guestID, constant.RoleUser)

	const quotes = 8

	template := booking(model.StatusQuote)
	firstNight, secondNight := template.CheckInDate, template.CheckInDate.AddDate(0, 0, 1)

	// The second night runs out first, so late holders decrement the first
	// night and must give it back when the second one refuses them.
	b.store.seedNight(roomID, firstNight, 5)
	b.store.seedNight(roomID, secondNight, 3)

	ids := make([]string, quotes)
	for i := range quotes {
		quote := template
		quote.ID = fmt.Sprintf("quote-%d", i)
		b.store.bookings[quote.ID] = quote
		ids[i] = quote.ID
	}

	errs := make([]error, quotes)

	fanOut(quotes, func(i int) {
		_, errs[i] = b.svc.Hold(ctx, dto.HoldRequest{BookingID: ids[i]})
	})

	holds := 0

	for i, err := range errs {
		if err == nil {
			holds++

			assert.Len(t, b.store.claimsOf(ids[i]), 2, "hold %s should claim both nights", ids[i])

			continue
		}

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.ErrorContains(t, err, "Insufficient inventory")
		assert.Empty(t, b.store.claimsOf(ids[i]), "rejected hold %s kept a claim", ids[i])
	}

	assert.Equal(t, 3, holds)
	assert.Equal(t, 2, b.store.available(roomID, firstNight))
	assert.Equal(t, 0, b.store.available(roomID, secondNight))
	assert.Equal(t, map[model.Status]int{model.StatusHold: 3, model.StatusQuote: 5}, bookingRepo{b.store}.statuses())
}

func TestBookingService_ConcurrentPreAuthorize(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		wantSuccess int
	}{
		{name: "shared key replays one payment", key: "pay-burst-1", wantSuccess: 5},
		{name: "without a key only the first caller pays", wantSuccess: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBench(t)
			ctx := asUser(guestID, constant.RoleUser)

			hold := held(10 * time.Minute)
			b.store.bookings[hold.ID] = hold

			const callers = 5

			payments := make([]string, callers)
			errs := make([]error, callers)

			fanOut(callers, func(i int) {
				res, err := b.svc.PreAuthorize(ctx, paymentDto.PreAuthorizeRequest{
					BookingID:       hold.ID,
					PaymentMethodID: "pm_card_visa",
					IdempotencyKey:  tt.key,
				})
				payments[i], errs[i] = res.ID, err
			})

			success := map[string]int{}

			for i, err := range errs {
				if err != nil {
					assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
					assert.ErrorContains(t, err, string(model.StatusHold))

					continue
				}

				success[payments[i]]++
			}

			assert.Len(t, success, 1, "every successful caller sees the same payment")

			for _, count := range success {
				assert.Equal(t, tt.wantSuccess, count)
			}

			assert.Equal(t, 1, paymentRepo{b.store}.count())
			assert.Equal(t, int32(1), b.processor.authorizations.Load())

			reloaded, err := bookingRepo{b.store}.Get(ctx, byID(hold.ID))
			require.NoError(t, err)
			assert.Equal(t, model.StatusPaymentPending, reloaded.Status)
			assert.Equal(t, paymentModel.StatusPreAuthorized, b.store.payments[0].Status)
		})
	}
}
