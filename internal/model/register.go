package model

import (
	"time"

	"github.com/google/uuid"
)

type RegisterStatus string

const (
	RegisterOpen   RegisterStatus = "open"
	RegisterClosed RegisterStatus = "closed"
)

// CashRegister is one cashier shift. It stores only the entered amounts;
// sales totals are computed at read time from the payments falling inside
// the session window (see RegisterSummary).
type CashRegister struct {
	ID            uuid.UUID      `json:"id"`
	CashierID     uuid.UUID      `json:"cashier_id"`
	OpeningAmount float64        `json:"opening_amount"`
	ClosingAmount *float64       `json:"closing_amount,omitempty"`
	OpenedAt      time.Time      `json:"opened_at"`
	ClosedAt      *time.Time     `json:"closed_at,omitempty"`
	Status        RegisterStatus `json:"status"`
}

// Window returns the interval used for attributing payments to this
// session: [OpenedAt, ClosedAt] while closed, [OpenedAt, now) while open.
func (r *CashRegister) Window(now time.Time) (time.Time, time.Time) {
	if r.ClosedAt != nil {
		return r.OpenedAt, *r.ClosedAt
	}
	return r.OpenedAt, now
}

// RegisterSummary is the read-time aggregation over a register session.
// Difference is only meaningful once a closing amount was entered.
type RegisterSummary struct {
	RegisterID    uuid.UUID `json:"register_id"`
	TotalSales    float64   `json:"total_sales"`
	TotalCash     float64   `json:"total_cash"`
	TotalCard     float64   `json:"total_card"`
	TotalTransfer float64   `json:"total_transfer"`
	PaymentCount  int       `json:"payment_count"`
	ExpectedCash  float64   `json:"expected_cash"`
	Difference    float64   `json:"difference"`
}
