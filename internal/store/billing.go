package store

import (
	"fmt"
	"strings"
	"time"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
)

// InvoiceCustomer carries optional customer overrides for CreateInvoice.
// Empty fields fall back to what the order knows.
type InvoiceCustomer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
	DueDate *time.Time
}

// CreateInvoice converts an order into an invoice: year-scoped sequential
// number, denormalized item snapshot with resolved product names, totals
// copied from the order. One invoice per order is enforced.
func (s *Store) CreateInvoice(orderID uuid.UUID, customer InvoiceCustomer, cashierID uuid.UUID) (model.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := s.findOrderLocked(orderID)
	if order == nil {
		return model.Invoice{}, ErrOrderNotFound
	}
	for _, inv := range s.invoices {
		if inv.OrderID == orderID {
			return model.Invoice{}, ErrInvoiceExists
		}
	}
	now := s.now()

	items := make([]model.InvoiceItem, 0, len(order.Items))
	for _, item := range order.Items {
		name := "Product"
		if product := s.findProductLocked(item.ProductID); product != nil {
			name = product.Name
		}
		items = append(items, model.InvoiceItem{
			ID:        uuid.New(),
			ProductID: item.ProductID,
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Discount:  0,
			Total:     item.Price * float64(item.Quantity),
		})
	}

	customerName := customer.Name
	if customerName == "" {
		customerName = order.CustomerName
	}

	invoice := model.Invoice{
		ID:              uuid.New(),
		OrderID:         orderID,
		InvoiceNumber:   s.nextInvoiceNumberLocked(now),
		CustomerName:    customerName,
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.Address,
		Items:           items,
		Subtotal:        order.Subtotal,
		TaxRate:         s.settings.TaxRate / 100,
		TaxAmount:       order.Tax,
		DiscountAmount:  order.Discount,
		Total:           order.Total,
		PaymentMethod:   model.PayCash,
		PaymentStatus:   model.PaymentPending,
		PaidAmount:      0,
		ChangeAmount:    0,
		Notes:           customer.Notes,
		CreatedAt:       now,
		DueDate:         customer.DueDate,
		CashierID:       cashierID,
	}
	s.invoices = append(s.invoices, invoice)
	return invoice, nil
}

// nextInvoiceNumberLocked issues FAC-<year>-<NNN>, sequential within the
// calendar year. Single writer assumed; not collision-proof beyond that.
func (s *Store) nextInvoiceNumberLocked(now time.Time) string {
	prefix := fmt.Sprintf("FAC-%d-", now.Year())
	seq := 1
	for _, inv := range s.invoices {
		if strings.HasPrefix(inv.InvoiceNumber, prefix) {
			seq++
		}
	}
	return fmt.Sprintf("%s%03d", prefix, seq)
}

// NewPayment is the input shape for ProcessPayment.
type NewPayment struct {
	Amount    float64
	Method    model.PaymentMethod
	Reference string
	CashierID uuid.UUID
}

// ProcessPayment appends a payment and re-derives the invoice: cumulative
// paid amount, payment status, change. Reaching full payment marks the
// linked order paid and, for dine-in orders, releases the table. The
// ledger accepts overpayment and reflects it as change; amount validation
// is the caller's job.
func (s *Store) ProcessPayment(invoiceID uuid.UUID, req NewPayment) (model.Invoice, model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	invoice := s.findInvoiceLocked(invoiceID)
	if invoice == nil {
		return model.Invoice{}, model.Payment{}, ErrInvoiceNotFound
	}
	now := s.now()

	payment := model.Payment{
		ID:        uuid.New(),
		InvoiceID: invoiceID,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		CashierID: req.CashierID,
		CreatedAt: now,
	}
	s.payments = append(s.payments, payment)

	invoice.PaidAmount += req.Amount
	invoice.PaymentStatus = invoice.DerivePaymentStatus()
	invoice.PaymentMethod = req.Method
	if invoice.PaidAmount > invoice.Total {
		invoice.ChangeAmount = invoice.PaidAmount - invoice.Total
	} else {
		invoice.ChangeAmount = 0
	}

	if invoice.PaymentStatus == model.PaymentPaid {
		if invoice.PaidAt == nil {
			paidAt := now
			invoice.PaidAt = &paidAt
		}
		if order := s.findOrderLocked(invoice.OrderID); order != nil {
			order.Status = model.OrderPaid
			order.Touch(now)
			if order.OrderType == model.OrderDineIn && order.TableID != nil {
				if table := s.findTableLocked(*order.TableID); table != nil {
					s.setTableStatusLocked(table, model.TableAvailable, nil)
				}
			}
		}
	}
	return *invoice, payment, nil
}

// InvoicePatch updates the mutable fringe of an invoice (customer data and
// notes); amounts and status only ever move through ProcessPayment.
type InvoicePatch struct {
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
	CustomerAddress *string
	Notes           *string
	DueDate         *time.Time
}

func (s *Store) UpdateInvoice(id uuid.UUID, patch InvoicePatch) (model.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	invoice := s.findInvoiceLocked(id)
	if invoice == nil {
		return model.Invoice{}, ErrInvoiceNotFound
	}
	if patch.CustomerName != nil {
		invoice.CustomerName = *patch.CustomerName
	}
	if patch.CustomerEmail != nil {
		invoice.CustomerEmail = *patch.CustomerEmail
	}
	if patch.CustomerPhone != nil {
		invoice.CustomerPhone = *patch.CustomerPhone
	}
	if patch.CustomerAddress != nil {
		invoice.CustomerAddress = *patch.CustomerAddress
	}
	if patch.Notes != nil {
		invoice.Notes = *patch.Notes
	}
	if patch.DueDate != nil {
		invoice.DueDate = patch.DueDate
	}
	return *invoice, nil
}

func (s *Store) Invoices() []model.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Invoice, len(s.invoices))
	for i := range s.invoices {
		out[i] = s.invoices[i]
		out[i].Items = make([]model.InvoiceItem, len(s.invoices[i].Items))
		copy(out[i].Items, s.invoices[i].Items)
	}
	return out
}

func (s *Store) Invoice(id uuid.UUID) (model.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if invoice := s.findInvoiceLocked(id); invoice != nil {
		out := *invoice
		out.Items = make([]model.InvoiceItem, len(invoice.Items))
		copy(out.Items, invoice.Items)
		return out, nil
	}
	return model.Invoice{}, ErrInvoiceNotFound
}

func (s *Store) Payments() []model.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}
