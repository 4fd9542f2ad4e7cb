package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryTypeBookingConfirmed EntryType = "BOOKING_CONFIRMED"
	EntryTypeRefundProcessed  EntryType = "REFUND_PROCESSED"
	EntryTypeDebit            EntryType = "DEBIT"
	EntryTypeCredit           EntryType = "CREDIT"
)

const (
	TableName  = "ledger_entries"
	EntityName = "ledger_entry"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldSequence      = "sequence"
	FieldDebitAccount  = "debit_account"
	FieldCreditAccount = "credit_account"
)

const (
	AccountEscrow  = "platform:escrow"
	AccountRevenue = "platform:revenue"

	AccountTravelerPrefix = "traveler:"
	AccountProviderPrefix = "provider:"
)

func TravelerAccount(userID string) string {
	return AccountTravelerPrefix + userID
}

func ProviderAccount(providerID string) string {
	return AccountProviderPrefix + providerID
}

// Entry is one append-only double-entry posting. Sequence orders the entries
// of one booking that share a timestamp.
type Entry struct {
	ID            string          `db:"id"`
	BookingID     string          `db:"booking_id"`
	Sequence      int             `db:"sequence"`
	Type          EntryType       `db:"type"`
	DebitAccount  string          `db:"debit_account"`
	CreditAccount string          `db:"credit_account"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
}

// Totals aggregates every entry touching one account.
type Totals struct {
	Credits      decimal.Decimal `db:"credits"`
	Debits       decimal.Decimal `db:"debits"`
	BookingCount int             `db:"booking_count"`
}

// Balance is credits minus debits.
func (t Totals) Balance() decimal.Decimal {
	return t.Credits.Sub(t.Debits)
}

// Net returns credits minus debits per account over the given entries.
func Net(entries []Entry) map[string]decimal.Decimal {
	net := map[string]decimal.Decimal{}

	for _, entry := range entries {
		net[entry.CreditAccount] = net[entry.CreditAccount].Add(entry.Amount)
		net[entry.DebitAccount] = net[entry.DebitAccount].Sub(entry.Amount)
	}

	return net
}
