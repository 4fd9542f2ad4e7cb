package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"tripavail/infras/otel/mocks"
	"tripavail/infras/processor"
	processorMocks "tripavail/infras/processor/mocks"
	paymentMocks "tripavail/internal/domains/payment/mocks"
	"tripavail/internal/domains/payment/model"
	"tripavail/internal/domains/payment/service"
	"tripavail/shared/constant"
	"tripavail/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authorizeInput() service.AuthorizeInput {
	return service.AuthorizeInput{
		BookingID:       "booking-1",
		UserID:          "user-1",
		Amount:          decimal.RequireFromString("110.00"),
		Currency:        "USD",
		PaymentMethodID: "pm_card_visa",
		IdempotencyKey:  "key-1",
	}
}

func TestPaymentService_AuthorizeTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockProcessor := processorMocks.NewMockProcessor(ctrl)

	svc := service.New(mockRepo, mockProcessor, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name: "pre-authorizes the total",
			setupMock: func() {
				mockRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Payment{}, nil)
				mockProcessor.EXPECT().
					Authorize(gomock.Any(), processor.AuthorizeRequest{
						Amount:          decimal.RequireFromString("110.00"),
						Currency:        "USD",
						PaymentMethodID: "pm_card_visa",
						Reference:       "booking-1",
						IdempotencyKey:  "authorize:booking-1:pm_card_visa",
					}).
					Return(processor.Intent{ID: "pi_1", Status: processor.IntentStatusRequiresCapture}, nil)
				mockRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "booking already paid",
			setupMock: func() {
				mockRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Payment{ID: "payment-1"}, nil)
			},
			wantCode: 400,
		},
		{
			name: "declined card",
			setupMock: func() {
				mockRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Payment{}, nil)
				mockProcessor.EXPECT().
					Authorize(gomock.Any(), gomock.Any()).
					Return(processor.Intent{}, fmt.Errorf("%w: insufficient funds", processor.ErrDeclined))
			},
			wantCode: 402,
		},
		{
			name: "processor unavailable",
			setupMock: func() {
				mockRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Payment{}, nil)
				mockProcessor.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(processor.Intent{}, errors.New("timeout"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.AuthorizeTx(context.Background(), nil, authorizeInput())

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StatusPreAuthorized, res.Status)
			assert.Equal(t, "pi_1", res.PaymentIntentID)
			require.NotNil(t, res.IdempotencyKey)
			assert.Equal(t, "key-1", *res.IdempotencyKey)
		})
	}
}

func TestPaymentService_CaptureTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockProcessor := processorMocks.NewMockProcessor(ctrl)

	svc := service.New(mockRepo, mockProcessor, mocks.NewOtel())

	amount := decimal.RequireFromString("110.00")
	authorized := model.Payment{ID: "payment-1", BookingID: "booking-1", Status: model.StatusPreAuthorized, Amount: amount, PaymentIntentID: "pi_1"}

	tests := []struct {
		name       string
		amount     decimal.Decimal
		setupMock  func()
		wantStatus model.Status
		wantCode   int
	}{
		{
			name:   "captures the authorized amount",
			amount: amount,
			setupMock: func() {
				mockRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(authorized, nil)
				mockProcessor.EXPECT().Capture(gomock.Any(), "pi_1", amount, "capture:booking-1").Return(processor.Intent{ID: "pi_1"}, nil)
				mockRepo.EXPECT().UpdateTxCount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
			wantStatus: model.StatusCaptured,
		},
		{
			name:   "already captured",
			amount: amount,
			setupMock: func() {
				captured := authorized
				captured.Status = model.StatusCaptured

				mockRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(captured, nil)
			},
			wantStatus: model.StatusCaptured,
		},
		{
			name:   "amount mismatch",
			amount: decimal.RequireFromString("100.00"),
			setupMock: func() {
				mockRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(authorized, nil)
			},
			wantCode: 400,
		},
		{
			name:   "no payment",
			amount: amount,
			setupMock: func() {
				mockRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Payment{}, nil)
			},
			wantCode: 404,
		},
		{
			name:   "capture fails",
			amount: amount,
			setupMock: func() {
				mockRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(authorized, nil)
				mockProcessor.EXPECT().Capture(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(processor.Intent{}, errors.New("timeout"))
			},
			wantCode: 500,
		},
		{
			name:   "concurrent modification",
			amount: amount,
			setupMock: func() {
				mockRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(authorized, nil)
				mockProcessor.EXPECT().Capture(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(processor.Intent{ID: "pi_1"}, nil)
				mockRepo.EXPECT().UpdateTxCount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.CaptureTx(context.Background(), nil, "booking-1", tt.amount)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestPaymentService_RefundTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockProcessor := processorMocks.NewMockProcessor(ctrl)

	svc := service.New(mockRepo, mockProcessor, mocks.NewOtel())

	captured := model.Payment{ID: "payment-1", BookingID: "booking-1", Status: model.StatusCaptured, Amount: decimal.NewFromInt(110), PaymentIntentID: "pi_1"}

	t.Run("partial refund", func(t *testing.T) {
		refund := decimal.RequireFromString("55.00")

		mockRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(captured, nil)
		mockProcessor.EXPECT().Refund(gomock.Any(), "pi_1", refund, "refund:booking-1").Return(processor.Refund{ID: "re_1"}, nil)
		mockRepo.EXPECT().UpdateTxCount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

		res, err := svc.RefundTx(context.Background(), nil, "booking-1", refund)

		require.NoError(t, err)
		assert.Equal(t, model.StatusRefunded, res.Status)
		assert.True(t, res.RefundAmount.Equal(refund))
	})

	t.Run("refund above captured amount", func(t *testing.T) {
		mockRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(captured, nil)

		_, err := svc.RefundTx(context.Background(), nil, "booking-1", decimal.NewFromInt(111))

		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("not captured", func(t *testing.T) {
		authorized := captured
		authorized.Status = model.StatusPreAuthorized

		mockRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(authorized, nil)

		_, err := svc.RefundTx(context.Background(), nil, "booking-1", decimal.NewFromInt(10))

		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestPaymentService_GetByBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	svc := service.New(mockRepo, processorMocks.NewMockProcessor(ctrl), mocks.NewOtel())

	payment := model.Payment{ID: "payment-1", BookingID: "booking-1", UserID: "user-1", Status: model.StatusCaptured, Amount: decimal.NewFromInt(110)}

	tests := []struct {
		name     string
		userID   string
		role     string
		found    model.Payment
		wantCode int
	}{
		{name: "payer", userID: "user-1", role: constant.RoleUser, found: payment},
		{name: "admin", userID: "admin-1", role: constant.RoleAdmin, found: payment},
		{name: "someone else", userID: "user-2", role: constant.RoleUser, found: payment, wantCode: 403},
		{name: "missing", userID: "user-1", role: constant.RoleUser, found: model.Payment{}, wantCode: 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.found, nil)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, tt.userID)
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)

			res, err := svc.GetByBooking(ctx, "booking-1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "110.00", res.Amount)
		})
	}
}

func TestProcessorKey(t *testing.T) {
	assert.Equal(t, "capture:booking-1", service.ProcessorKey("capture", "booking-1"))
	assert.Equal(t, "authorize:booking-1:pm_1", service.ProcessorKey("authorize", "booking-1", "pm_1"))
}
