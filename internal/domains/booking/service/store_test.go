package service_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
	"time"
	"tripavail/infras/postgres"
	"tripavail/infras/processor"
	"tripavail/internal/domains/booking/model"
	idempotencyModel "tripavail/internal/domains/idempotency/model"
	inventoryModel "tripavail/internal/domains/inventory/model"
	paymentModel "tripavail/internal/domains/payment/model"
	gDto "tripavail/shared/dto"

	"github.com/jmoiron/sqlx"
)

var errUnsupported = errors.New("not supported by the in-memory store")

// store keeps bookings, keys, payments and inventory in memory. Transaction
// bodies run one at a time, the way writers on a row locked FOR UPDATE queue
// behind each other, and a body that fails has its writes undone. Reads
// outside a transaction wait for the running one and see committed data only.
type store struct {
	tx sync.RWMutex

	mu       sync.Mutex
	bookings map[string]model.Booking
	keys     map[string]idempotencyModel.Record
	payments []paymentModel.Payment
	nights   map[string]int
	totals   map[string]int
	claims   []inventoryModel.Claim
	undo     []func()
}

func newStore() *store {
	return &store{
		bookings: map[string]model.Booking{},
		keys:     map[string]idempotencyModel.Record{},
		nights:   map[string]int{},
		totals:   map[string]int{},
	}
}

func (s *store) WithTransaction(ctx context.Context, fn postgres.TxFunc) error {
	s.tx.Lock()
	defer s.tx.Unlock()

	err := fn(ctx, nil)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		for i := len(s.undo) - 1; i >= 0; i-- {
			s.undo[i]()
		}
	}

	s.undo = nil

	return err
}

// committed runs fn against committed state.
func (s *store) committed(fn func()) {
	s.tx.RLock()
	defer s.tx.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	fn()
}

func (s *store) seedNight(roomID string, date time.Time, units int) {
	s.nights[nightKey(roomID, date)] = units
	s.totals[nightKey(roomID, date)] = units
}

func (s *store) available(roomID string, date time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.nights[nightKey(roomID, date)]
}

func (s *store) claimsOf(bookingID string) []inventoryModel.Claim {
	s.mu.Lock()
	defer s.mu.Unlock()

	var claims []inventoryModel.Claim

	for _, claim := range s.claims {
		if claim.BookingID == bookingID {
			claims = append(claims, claim)
		}
	}

	return claims
}

func nightKey(roomID string, date time.Time) string {
	return roomID + "|" + date.Format(time.DateOnly)
}

func idempotencyKey(userID, op, key string) string {
	return userID + "|" + op + "|" + key
}

// valueOf returns the value an equality filter on field compares against.
func valueOf(filter gDto.FilterGroup, field string) (string, bool) {
	for _, f := range filter.Filters {
		if cond, ok := f.(gDto.Filter); ok && cond.Field == field && cond.Operator == gDto.FilterOperatorEq {
			return fmt.Sprint(cond.Value), true
		}
	}

	return "", false
}

// apply writes an update map onto a row struct by its db tags.
func apply(row any, fields map[string]any) error {
	v := reflect.ValueOf(row).Elem()

	for column, value := range fields {
		field, ok := fieldByColumn(v, column)
		if !ok {
			return fmt.Errorf("unknown column %s", column)
		}

		if value == nil {
			field.SetZero()

			continue
		}

		val := reflect.ValueOf(value)

		switch {
		case val.Type().AssignableTo(field.Type()):
			field.Set(val)
		case field.Kind() == reflect.Pointer && val.Type().AssignableTo(field.Type().Elem()):
			ptr := reflect.New(field.Type().Elem())
			ptr.Elem().Set(val)
			field.Set(ptr)
		case val.Type().ConvertibleTo(field.Type()):
			field.Set(val.Convert(field.Type()))
		default:
			return fmt.Errorf("cannot store %T in column %s", value, column)
		}
	}

	return nil
}

func fieldByColumn(v reflect.Value, column string) (reflect.Value, bool) {
	t := v.Type()

	for i := range t.NumField() {
		sf := t.Field(i)

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			if field, ok := fieldByColumn(v.Field(i), column); ok {
				return field, true
			}

			continue
		}

		if sf.Tag.Get("db") == column {
			return v.Field(i), true
		}
	}

	return reflect.Value{}, false
}

type bookingRepo struct{ *store }

func (r bookingRepo) InsertTx(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; ok {
		return fmt.Errorf("duplicate booking %s", booking.ID)
	}

	r.bookings[booking.ID] = booking
	r.undo = append(r.undo, func() { delete(r.bookings, booking.ID) })

	return nil
}

func (r bookingRepo) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (res model.Booking, err error) {
	r.committed(func() { res = r.find(filter) })

	return res, nil
}

func (r bookingRepo) GetTx(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.find(filter), nil
}

func (r bookingRepo) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error) {
	return r.GetTx(ctx, sqltx, filter, columns...)
}

func (r bookingRepo) GetAll(context.Context, gDto.QueryParams, gDto.FilterGroup, ...string) ([]model.Booking, error) {
	return nil, errUnsupported
}

func (r bookingRepo) Count(context.Context, gDto.FilterGroup) (int, error) {
	return 0, errUnsupported
}

func (r bookingRepo) UpdateTxCount(_ context.Context, _ *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking := r.find(filter)
	if booking.ID == "" {
		return 0, nil
	}

	if status, ok := valueOf(filter, model.FieldStatus); ok && string(booking.Status) != status {
		return 0, nil
	}

	previous := booking
	if err := apply(&booking, fields); err != nil {
		return 0, err
	}

	r.bookings[booking.ID] = booking
	r.undo = append(r.undo, func() { r.bookings[previous.ID] = previous })

	return 1, nil
}

func (r bookingRepo) find(filter gDto.FilterGroup) model.Booking {
	id, _ := valueOf(filter, model.FieldID)

	return r.bookings[id]
}

func (r bookingRepo) statuses() map[model.Status]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := map[model.Status]int{}
	for _, booking := range r.bookings {
		counts[booking.Status]++
	}

	return counts
}

type idempotencyRepo struct{ *store }

func (r idempotencyRepo) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (res idempotencyModel.Record, err error) {
	r.committed(func() { res = r.find(filter) })

	return res, nil
}

func (r idempotencyRepo) GetTx(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup, _ ...string) (idempotencyModel.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.find(filter), nil
}

// InsertIfAbsentTx keeps the first record per (user, operation, key).
func (r idempotencyRepo) InsertIfAbsentTx(_ context.Context, _ *sqlx.Tx, record idempotencyModel.Record) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := idempotencyKey(record.UserID, string(record.Operation), record.IdempotencyKey)
	if _, ok := r.keys[key]; ok {
		return false, nil
	}

	r.keys[key] = record
	r.undo = append(r.undo, func() { delete(r.keys, key) })

	return true, nil
}

func (r idempotencyRepo) find(filter gDto.FilterGroup) idempotencyModel.Record {
	userID, _ := valueOf(filter, idempotencyModel.FieldUserID)
	op, _ := valueOf(filter, idempotencyModel.FieldOperation)
	key, _ := valueOf(filter, idempotencyModel.FieldIdempotencyKey)

	return r.keys[idempotencyKey(userID, op, key)]
}

type paymentRepo struct{ *store }

func (r paymentRepo) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (res paymentModel.Payment, err error) {
	r.committed(func() { res = r.live(filter) })

	return res, nil
}

func (r paymentRepo) GetForUpdateTx(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup, _ ...string) (paymentModel.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.live(filter), nil
}

func (r paymentRepo) Insert(_ context.Context, payment paymentModel.Payment) error {
	r.committed(func() { r.payments = append(r.payments, payment) })

	return nil
}

func (r paymentRepo) InsertTx(_ context.Context, _ *sqlx.Tx, payment paymentModel.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.payments = append(r.payments, payment)
	r.undo = append(r.undo, func() {
		r.payments = slices.DeleteFunc(r.payments, func(p paymentModel.Payment) bool { return p.ID == payment.ID })
	})

	return nil
}

func (r paymentRepo) UpdateTxCount(_ context.Context, _ *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, _ := valueOf(filter, paymentModel.FieldID)
	status, guarded := valueOf(filter, paymentModel.FieldStatus)

	for i, payment := range r.payments {
		if payment.ID != id || (guarded && string(payment.Status) != status) {
			continue
		}

		previous := payment
		if err := apply(&r.payments[i], fields); err != nil {
			return 0, err
		}

		r.undo = append(r.undo, func() { r.payments[i] = previous })

		return 1, nil
	}

	return 0, nil
}

// live is the booking's payment that has not failed.
func (r paymentRepo) live(filter gDto.FilterGroup) paymentModel.Payment {
	bookingID, _ := valueOf(filter, paymentModel.FieldBookingID)

	for _, payment := range r.payments {
		if payment.BookingID == bookingID && payment.Status != paymentModel.StatusFailed {
			return payment
		}
	}

	return paymentModel.Payment{}
}

func (r paymentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.payments)
}

type inventoryRepo struct{ *store }

func (r inventoryRepo) GetNights(context.Context, gDto.QueryParams, gDto.FilterGroup, ...string) ([]inventoryModel.Night, error) {
	return nil, errUnsupported
}

// DecrementTx takes units only if enough remain.
func (r inventoryRepo) DecrementTx(_ context.Context, _ *sqlx.Tx, req inventoryModel.Request, _ time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := nightKey(req.RoomID, req.Date)

	available, ok := r.nights[key]
	if !ok || available < req.Units {
		return false, nil
	}

	r.nights[key] = available - req.Units
	r.undo = append(r.undo, func() { r.nights[key] = available })

	return true, nil
}

// IncrementTx returns units, never past the night's total.
func (r inventoryRepo) IncrementTx(_ context.Context, _ *sqlx.Tx, claim inventoryModel.Claim, _ time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := nightKey(claim.RoomID, claim.Date)

	available, ok := r.nights[key]
	if !ok || available+claim.Units > r.totals[key] {
		return false, nil
	}

	r.nights[key] = available + claim.Units
	r.undo = append(r.undo, func() { r.nights[key] = available })

	return true, nil
}

func (r inventoryRepo) InsertClaimsTx(_ context.Context, _ *sqlx.Tx, claims []inventoryModel.Claim) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := len(r.claims)
	r.claims = append(r.claims, claims...)
	r.undo = append(r.undo, func() { r.claims = r.claims[:size] })

	return nil
}

// ReleaseClaimsTx marks the booking's open claims released and returns them.
func (r inventoryRepo) ReleaseClaimsTx(_ context.Context, _ *sqlx.Tx, bookingID string, now time.Time) ([]inventoryModel.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var released []inventoryModel.Claim

	for i, claim := range r.claims {
		if claim.BookingID != bookingID || claim.ReleasedAt != nil {
			continue
		}

		r.claims[i].ReleasedAt = &now
		r.undo = append(r.undo, func() { r.claims[i].ReleasedAt = nil })
		released = append(released, r.claims[i])
	}

	return released, nil
}

func (r inventoryRepo) FirmClaimsTx(_ context.Context, _ *sqlx.Tx, bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, claim := range r.claims {
		if claim.BookingID != bookingID || claim.ExpiresAt == nil {
			continue
		}

		expiresAt := claim.ExpiresAt
		r.claims[i].ExpiresAt = nil
		r.undo = append(r.undo, func() { r.claims[i].ExpiresAt = expiresAt })
	}

	return nil
}

func (r inventoryRepo) OverdueBookingIDsTx(context.Context, *sqlx.Tx, []string, []time.Time, time.Time) ([]string, error) {
	return nil, nil
}

// countingProcessor counts authorizations before the sandbox dedupes them.
type countingProcessor struct {
	processor.Processor
	authorizations atomic.Int32
}

func (p *countingProcessor) Authorize(ctx context.Context, req processor.AuthorizeRequest) (processor.Intent, error) {
	p.authorizations.Add(1)

	return p.Processor.Authorize(ctx, req) //nolint:wrapcheck
}
