package dto

import (
	"sort"
	"tripavail/internal/domains/ledger/model"
	"tripavail/shared/constant"
	"tripavail/shared/timezone"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

type EntryResponse struct {
	ID            string `json:"id"`
	Sequence      int    `json:"sequence"`
	Type          string `json:"type"`
	DebitAccount  string `json:"debitAccount"`
	CreditAccount string `json:"creditAccount"`
	Amount        string `json:"amount"`
	Description   string `json:"description,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

func (r *EntryResponse) FromModel(entry model.Entry) {
	r.ID = entry.ID
	r.Sequence = entry.Sequence
	r.Type = string(entry.Type)
	r.DebitAccount = entry.DebitAccount
	r.CreditAccount = entry.CreditAccount
	r.Amount = entry.Amount.StringFixed(moneyPlaces)
	r.Description = entry.Description
	r.CreatedAt = timezone.Format(entry.CreatedAt, constant.DateFormat)
}

type AccountNet struct {
	Account string `json:"account"`
	Net     string `json:"net"`
}

type BookingLedgerResponse struct {
	BookingID string          `json:"bookingId"`
	Entries   []EntryResponse `json:"entries"`
	Balances  []AccountNet    `json:"balances"`
	Balanced  bool            `json:"balanced"`
}

func (r *BookingLedgerResponse) FromModels(bookingID string, entries []model.Entry) {
	r.BookingID = bookingID
	r.Entries = make([]EntryResponse, len(entries))

	for i, entry := range entries {
		r.Entries[i].FromModel(entry)
	}

	net := model.Net(entries)
	sum := decimal.Zero

	r.Balances = make([]AccountNet, 0, len(net))
	for account, amount := range net {
		r.Balances = append(r.Balances, AccountNet{Account: account, Net: amount.StringFixed(moneyPlaces)})
		sum = sum.Add(amount)
	}

	sort.Slice(r.Balances, func(i, j int) bool { return r.Balances[i].Account < r.Balances[j].Account })

	r.Balanced = sum.IsZero()
}

type BalanceResponse struct {
	Account string `json:"account"`
	Credits string `json:"credits"`
	Debits  string `json:"debits"`
	Balance string `json:"balance"`
}

func (r *BalanceResponse) FromModel(account string, totals model.Totals) {
	r.Account = account
	r.Credits = totals.Credits.StringFixed(moneyPlaces)
	r.Debits = totals.Debits.StringFixed(moneyPlaces)
	r.Balance = totals.Balance().StringFixed(moneyPlaces)
}

type EarningsResponse struct {
	ProviderID    string `json:"providerId"`
	Account       string `json:"account"`
	TotalEarned   string `json:"totalEarned"`
	TotalReversed string `json:"totalReversed"`
	NetEarnings   string `json:"netEarnings"`
	BookingCount  int    `json:"bookingCount"`
}

func (r *EarningsResponse) FromModel(providerID string, totals model.Totals) {
	r.ProviderID = providerID
	r.Account = model.ProviderAccount(providerID)
	r.TotalEarned = totals.Credits.StringFixed(moneyPlaces)
	r.TotalReversed = totals.Debits.StringFixed(moneyPlaces)
	r.NetEarnings = totals.Balance().StringFixed(moneyPlaces)
	r.BookingCount = totals.BookingCount
}

type RevenueResponse struct {
	Account         string `json:"account"`
	TotalCommission string `json:"totalCommission"`
	TotalReversed   string `json:"totalReversed"`
	NetRevenue      string `json:"netRevenue"`
	BookingCount    int    `json:"bookingCount"`
}

func (r *RevenueResponse) FromModel(totals model.Totals) {
	r.Account = model.AccountRevenue
	r.TotalCommission = totals.Credits.StringFixed(moneyPlaces)
	r.TotalReversed = totals.Debits.StringFixed(moneyPlaces)
	r.NetRevenue = totals.Balance().StringFixed(moneyPlaces)
	r.BookingCount = totals.BookingCount
}

type ExportResponse struct {
	BookingID string `json:"bookingId"`
	URL       string `json:"url"`
	Entries   int    `json:"entries"`
}
