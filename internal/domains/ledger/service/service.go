package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"
	"tripavail/infras/otel"
	"tripavail/infras/s3"
	"tripavail/internal/domains/ledger/model"
	"tripavail/internal/domains/ledger/model/dto"
	"tripavail/internal/domains/ledger/repository"
	"tripavail/shared"
	"tripavail/shared/constant"
	gDto "tripavail/shared/dto"
	"tripavail/shared/failure"
	"tripavail/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	percentDivisor    = 100
	moneyPlaces       = 2
	statementDir      = "statements"
	refundSequenceGap = 3
)

var (
	ErrInvalidAmount  = failure.BadRequestFromString("ledger amounts must be positive and commission must not exceed total")
	ErrInvalidAccount = failure.BadRequestFromString("invalid account")
)

type ConfirmationInput struct {
	BookingID  string
	UserID     string
	ProviderID string
	Total      decimal.Decimal
	Commission decimal.Decimal
}

type RefundInput struct {
	BookingID        string
	UserID           string
	ProviderID       string
	Total            decimal.Decimal
	Commission       decimal.Decimal
	RefundPercentage int
}

// Ledger posts balanced double entries. The *Tx methods join the caller's
// transaction so postings commit atomically with the booking transition.
type Ledger interface {
	RecordConfirmationTx(ctx context.Context, sqltx *sqlx.Tx, in ConfirmationInput) ([]model.Entry, error)
	RecordRefundTx(ctx context.Context, sqltx *sqlx.Tx, in RefundInput) ([]model.Entry, error)
	GetBookingEntries(ctx context.Context, bookingID string) (dto.BookingLedgerResponse, error)
	GetAccountBalance(ctx context.Context, account string) (dto.BalanceResponse, error)
	GetProviderEarnings(ctx context.Context, providerID string) (dto.EarningsResponse, error)
	GetPlatformRevenue(ctx context.Context) (dto.RevenueResponse, error)
	ExportBookingStatement(ctx context.Context, bookingID string) (dto.ExportResponse, error)
}

type serviceImpl struct {
	repo repository.Ledger
	s3   s3.S3
	otel otel.Otel
}

func New(repo repository.Ledger, s3 s3.S3, otel otel.Otel) Ledger {
	return &serviceImpl{
		repo: repo,
		s3:   s3,
		otel: otel,
	}
}

// ConfirmationEntries splits a captured total through escrow into the
// provider share and platform commission.
func ConfirmationEntries(in ConfirmationInput, now time.Time) []model.Entry {
	providerShare := in.Total.Sub(in.Commission)

	return []model.Entry{
		newEntry(in.BookingID, 1, model.EntryTypeBookingConfirmed, model.TravelerAccount(in.UserID), model.AccountEscrow, in.Total, "Traveler payment captured into escrow", now),
		newEntry(in.BookingID, 2, model.EntryTypeBookingConfirmed, model.AccountEscrow, model.ProviderAccount(in.ProviderID), providerShare, "Provider share released from escrow", now),
		newEntry(in.BookingID, 3, model.EntryTypeBookingConfirmed, model.AccountEscrow, model.AccountRevenue, in.Commission, "Platform commission", now),
	}
}

// RefundEntries reverses a confirmation by the refund fraction. The traveler
// refund and revenue reversal are rounded to cents and the provider takes
// the remainder, so the three entries balance exactly. A zero percentage still
// yields the three entries with zero amounts.
func RefundEntries(in RefundInput, now time.Time) []model.Entry {
	travelerRefund := scale(in.Total, in.RefundPercentage)
	revenueReversal := scale(in.Commission, in.RefundPercentage)
	providerReversal := travelerRefund.Sub(revenueReversal)
	pct := strconv.Itoa(in.RefundPercentage)

	return []model.Entry{
		newEntry(in.BookingID, refundSequenceGap+1, model.EntryTypeRefundProcessed, model.ProviderAccount(in.ProviderID), model.AccountEscrow, providerReversal, "Provider share reversed ("+pct+"%)", now),
		newEntry(in.BookingID, refundSequenceGap+2, model.EntryTypeRefundProcessed, model.AccountRevenue, model.AccountEscrow, revenueReversal, "Platform commission reversed ("+pct+"%)", now),
		newEntry(in.BookingID, refundSequenceGap+3, model.EntryTypeRefundProcessed, model.AccountEscrow, model.TravelerAccount(in.UserID), travelerRefund, "Refund paid to traveler ("+pct+"%)", now),
	}
}

func (s *serviceImpl) RecordConfirmationTx(ctx context.Context, sqltx *sqlx.Tx, in ConfirmationInput) (res []model.Entry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.RecordConfirmationTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !in.Total.IsPositive() || in.Commission.IsNegative() || in.Commission.GreaterThan(in.Total) {
		return nil, ErrInvalidAmount
	}

	res = ConfirmationEntries(in, timezone.Now())

	if err = s.repo.InsertBulkTx(ctx, sqltx, res); err != nil {
		log.Error().Err(err).Str("booking_id", in.BookingID).Msg("failed to post confirmation entries")

		return nil, fmt.Errorf("failed to post confirmation entries: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) RecordRefundTx(ctx context.Context, sqltx *sqlx.Tx, in RefundInput) (res []model.Entry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.RecordRefundTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if in.RefundPercentage < 0 || in.RefundPercentage > percentDivisor || in.Commission.GreaterThan(in.Total) {
		return nil, ErrInvalidAmount
	}

	res = RefundEntries(in, timezone.Now())

	if err = s.repo.InsertBulkTx(ctx, sqltx, res); err != nil {
		log.Error().Err(err).Str("booking_id", in.BookingID).Msg("failed to post refund entries")

		return nil, fmt.Errorf("failed to post refund entries: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetBookingEntries(ctx context.Context, bookingID string) (res dto.BookingLedgerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.GetBookingEntries")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	entries, err := s.bookingEntries(ctx, bookingID)
	if err != nil {
		return res, err
	}

	res.FromModels(bookingID, entries)

	return res, nil
}

func (s *serviceImpl) GetAccountBalance(ctx context.Context, account string) (res dto.BalanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.GetAccountBalance")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !validAccount(account) {
		return res, ErrInvalidAccount
	}

	totals, err := s.repo.Totals(ctx, account)
	if err != nil {
		log.Error().Err(err).Str("account", account).Msg("failed to get account balance")

		return res, fmt.Errorf("failed to get account balance: %w", err)
	}

	res.FromModel(account, totals)

	return res, nil
}

// GetProviderEarnings lets a provider read only their own account.
func (s *serviceImpl) GetProviderEarnings(ctx context.Context, providerID string) (res dto.EarningsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.GetProviderEarnings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if role == constant.RoleProvider && userID != providerID {
		return res, failure.Forbidden("You can only view your own earnings") //nolint:wrapcheck
	}

	totals, err := s.repo.Totals(ctx, model.ProviderAccount(providerID))
	if err != nil {
		log.Error().Err(err).Str("provider_id", providerID).Msg("failed to get provider earnings")

		return res, fmt.Errorf("failed to get provider earnings: %w", err)
	}

	res.FromModel(providerID, totals)

	return res, nil
}

func (s *serviceImpl) GetPlatformRevenue(ctx context.Context) (res dto.RevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.GetPlatformRevenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	totals, err := s.repo.Totals(ctx, model.AccountRevenue)
	if err != nil {
		log.Error().Err(err).Msg("failed to get platform revenue")

		return res, fmt.Errorf("failed to get platform revenue: %w", err)
	}

	res.FromModel(totals)

	return res, nil
}

// ExportBookingStatement writes the booking's entries as CSV to object storage.
func (s *serviceImpl) ExportBookingStatement(ctx context.Context, bookingID string) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.ExportBookingStatement")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	entries, err := s.bookingEntries(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if len(entries) == 0 {
		return res, failure.NotFound("ledger entries not found") //nolint:wrapcheck
	}

	data, err := Statement(entries)
	if err != nil {
		return res, err
	}

	key := path.Join(statementDir, fmt.Sprintf("%s-%d.csv", bookingID, timezone.Now().Unix()))

	obj, err := s.s3.Put(ctx, key, constant.ContentTypeCSV, data)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to upload ledger statement")

		return res, fmt.Errorf("failed to upload ledger statement: %w", err)
	}

	log.Info().Str("booking_id", bookingID).Str("key", obj.Key).Msg("ledger statement exported")

	return dto.ExportResponse{BookingID: bookingID, URL: obj.URL, Entries: len(entries)}, nil
}

// Statement renders entries as CSV with a header row.
func Statement(entries []model.Entry) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	rows := [][]string{{"sequence", "created_at", "type", "debit_account", "credit_account", "amount", "description"}}
	for _, entry := range entries {
		rows = append(rows, []string{
			strconv.Itoa(entry.Sequence),
			timezone.Format(entry.CreatedAt, constant.DateFormat),
			string(entry.Type),
			entry.DebitAccount,
			entry.CreditAccount,
			entry.Amount.StringFixed(moneyPlaces),
			entry.Description,
		})
	}

	if err := writer.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write ledger statement: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *serviceImpl) bookingEntries(ctx context.Context, bookingID string) ([]model.Entry, error) {
	params := gDto.QueryParams{SortBy: model.FieldSequence, SortDir: gDto.SortDirAsc}

	entries, err := s.repo.GetAll(ctx, params, shared.FilterByID(bookingID, model.FieldBookingID, constant.Empty))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get ledger entries")

		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}

	return entries, nil
}

func newEntry(bookingID string, sequence int, entryType model.EntryType, debit, credit string, amount decimal.Decimal, description string, now time.Time) model.Entry {
	return model.Entry{
		ID:            uuid.NewString(),
		BookingID:     bookingID,
		Sequence:      sequence,
		Type:          entryType,
		DebitAccount:  debit,
		CreditAccount: credit,
		Amount:        amount,
		Description:   description,
		CreatedAt:     now,
	}
}

func scale(amount decimal.Decimal, percentage int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(percentage))).Div(decimal.NewFromInt(percentDivisor)).Round(moneyPlaces)
}

func validAccount(account string) bool {
	switch {
	case account == model.AccountEscrow, account == model.AccountRevenue:
		return true
	case strings.HasPrefix(account, model.AccountTravelerPrefix), strings.HasPrefix(account, model.AccountProviderPrefix):
		_, id, _ := strings.Cut(account, ":")

		return id != constant.Empty
	default:
		return false
	}
}
