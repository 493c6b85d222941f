package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PayCash     PaymentMethod = "cash"
	PayCard     PaymentMethod = "card"
	PayTransfer PaymentMethod = "transfer"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
	PaymentRefund  PaymentStatus = "refunded"
)

// InvoiceItem is a denormalized snapshot of an order item with the product
// name resolved at invoicing time.
type InvoiceItem struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Discount  float64   `json:"discount"`
	Total     float64   `json:"total"`
}

// Invoice converts an order into a billable document. PaymentStatus is a
// pure function of PaidAmount against Total: paid when paid >= total,
// partial when 0 < paid < total, pending otherwise.
type Invoice struct {
	ID              uuid.UUID     `json:"id"`
	OrderID         uuid.UUID     `json:"order_id"`
	InvoiceNumber   string        `json:"invoice_number"` // FAC-<year>-<seq>
	CustomerName    string        `json:"customer_name,omitempty"`
	CustomerEmail   string        `json:"customer_email,omitempty"`
	CustomerPhone   string        `json:"customer_phone,omitempty"`
	CustomerAddress string        `json:"customer_address,omitempty"`
	Items           []InvoiceItem `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	TaxRate         float64       `json:"tax_rate"` // fraction, e.g. 0.10
	TaxAmount       float64       `json:"tax_amount"`
	DiscountAmount  float64       `json:"discount_amount"`
	Total           float64       `json:"total"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaidAmount      float64       `json:"paid_amount"`
	ChangeAmount    float64       `json:"change_amount"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	PaidAt          *time.Time    `json:"paid_at,omitempty"`
	DueDate         *time.Time    `json:"due_date,omitempty"`
	CashierID       uuid.UUID     `json:"cashier_id"`
}

// DerivePaymentStatus computes the status implied by the current paid
// amount.
func (inv *Invoice) DerivePaymentStatus() PaymentStatus {
	switch {
	case inv.PaidAmount >= inv.Total:
		return PaymentPaid
	case inv.PaidAmount > 0:
		return PaymentPartial
	default:
		return PaymentPending
	}
}

// Payment is an append-only record of money received against an invoice.
// Register attribution happens by cashier and time window, not by a
// foreign key.
type Payment struct {
	ID        uuid.UUID     `json:"id"`
	InvoiceID uuid.UUID     `json:"invoice_id"`
	Amount    float64       `json:"amount"`
	Method    PaymentMethod `json:"method"`
	Reference string        `json:"reference,omitempty"`
	CashierID uuid.UUID     `json:"cashier_id"`
	CreatedAt time.Time     `json:"created_at"`
}
