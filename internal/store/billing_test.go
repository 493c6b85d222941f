package store

import (
	"fmt"
	"testing"
	"time"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
)

// invoicedOrder creates a dine-in order on a table and invoices it.
func invoicedOrder(t *testing.T, s *Store, cashierID uuid.UUID) (model.Order, model.Table, model.Invoice) {
	t.Helper()
	pizza := addTestProduct(t, s, "Pizza Margherita", 18.50, 15)
	cola := addTestProduct(t, s, "Coca Cola", 3.50, 1)
	table := addTestTable(t, s, 2)

	order, err := s.CreateOrder(NewOrder{
		TableID:      &table.ID,
		CustomerName: "Juan",
		OrderType:    model.OrderDineIn,
		Status:       model.OrderServed,
		Items: []NewOrderItem{
			{ProductID: pizza.ID, Quantity: 2},
			{ProductID: cola.ID, Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	invoice, err := s.CreateInvoice(order.ID, InvoiceCustomer{}, cashierID)
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	return order, table, invoice
}

func TestCreateInvoiceSnapshot(t *testing.T) {
	s := newTestStore()
	cashier := addTestCashier(t, s)
	order, _, invoice := invoicedOrder(t, s, cashier.ID)

	if invoice.OrderID != order.ID {
		t.Errorf("OrderID mismatch")
	}
	if !almostEqual(invoice.Subtotal, 47.50) || !almostEqual(invoice.TaxAmount, 4.75) || !almostEqual(invoice.Total, 52.25) {
		t.Errorf("totals = %g/%g/%g, want 47.50/4.75/52.25", invoice.Subtotal, invoice.TaxAmount, invoice.Total)
	}
	if !almostEqual(invoice.TaxRate, 0.10) {
		t.Errorf("TaxRate = %g, want 0.10", invoice.TaxRate)
	}
	if invoice.PaymentStatus != model.PaymentPending {
		t.Errorf("PaymentStatus = %q, want pending", invoice.PaymentStatus)
	}
	if invoice.CustomerName != "Juan" {
		t.Errorf("customer name not taken from order")
	}
	if len(invoice.Items) != 2 || invoice.Items[0].Name != "Pizza Margherita" {
		t.Errorf("item snapshot missing resolved product names: %+v", invoice.Items)
	}
}

func TestOneInvoicePerOrder(t *testing.T) {
	s := newTestStore()
	cashier := addTestCashier(t, s)
	order, _, _ := invoicedOrder(t, s, cashier.ID)

	if _, err := s.CreateInvoice(order.ID, InvoiceCustomer{}, cashier.ID); err != ErrInvoiceExists {
		t.Fatalf("err = %v, want ErrInvoiceExists", err)
	}
}

func TestInvoiceNumbersAreYearScoped(t *testing.T) {
	s := newTestStore()
	cashier := addTestCashier(t, s)
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return now })

	pizza := addTestProduct(t, s, "Pizza", 18.50, 15)
	for i := 1; i <= 3; i++ {
		order, err := s.CreateOrder(NewOrder{
			OrderType: model.OrderTakeaway,
			Items:     []NewOrderItem{{ProductID: pizza.ID, Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
		invoice, err := s.CreateInvoice(order.ID, InvoiceCustomer{}, cashier.ID)
		if err != nil {
			t.Fatalf("CreateInvoice: %v", err)
		}
		want := fmt.Sprintf("FAC-2025-%03d", i)
		if invoice.InvoiceNumber != want {
			t.Errorf("InvoiceNumber = %q, want %q", invoice.InvoiceNumber, want)
		}
	}

	// A new year restarts the sequence.
	now = time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	order, _ := s.CreateOrder(NewOrder{
		OrderType: model.OrderTakeaway,
		Items:     []NewOrderItem{{ProductID: pizza.ID, Quantity: 1}},
	})
	invoice, err := s.CreateInvoice(order.ID, InvoiceCustomer{}, cashier.ID)
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	if invoice.InvoiceNumber != "FAC-2026-001" {
		t.Errorf("InvoiceNumber = %q, want FAC-2026-001", invoice.InvoiceNumber)
	}
}

func TestFullCashPayment(t *testing.T) {
	s := newTestStore()
	cashier := addTestCashier(t, s)
	order, table, invoice := invoicedOrder(t, s, cashier.ID)

	paid, payment, err := s.ProcessPayment(invoice.ID, NewPayment{
		Amount:    52.25,
		Method:    model.PayCash,
		CashierID: cashier.ID,
	})
	if err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}

	if paid.PaymentStatus != model.PaymentPaid {
		t.Errorf("PaymentStatus = %q, want paid", paid.PaymentStatus)
	}
	if !almostEqual(paid.PaidAmount, 52.25) || !almostEqual(paid.ChangeAmount, 0) {
		t.Errorf("PaidAmount/Change = %g/%g, want 52.25/0", paid.PaidAmount, paid.ChangeAmount)
	}
	if paid.PaidAt == nil {
		t.Errorf("PaidAt not stamped on full payment")
	}
	if payment.InvoiceID != invoice.ID || !almostEqual(payment.Amount, 52.25) {
		t.Errorf("payment record wrong: %+v", payment)
	}

	// Full payment cascades to the order and its table.
	gotOrder, _ := s.Order(order.ID)
	if gotOrder.Status != model.OrderPaid {
		t.Errorf("order status = %q, want paid", gotOrder.Status)
	}
	gotTable, _ := s.Table(table.ID)
	if gotTable.Status != model.TableAvailable || gotTable.CurrentOrder != nil {
		t.Errorf("table not released on full payment")
	}
}

func TestPartialThenFullPayment(t *testing.T) {
	s := newTestStore()
	cashier := addTestCashier(t, s)
	order, _, invoice := invoicedOrder(t, s, cashier.ID)

	partial, _, err := s.ProcessPayment(invoice.ID, NewPayment{
		Amount:    30.00,
		Method:    model.PayCard,
		CashierID: cashier.ID,
	})
	if err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}
	if partial.PaymentStatus != model.PaymentPartial {
		t.Errorf("PaymentStatus = %q, want partial", partial.PaymentStatus)
	}
	if partial.PaidAt != nil {
		t.Errorf("PaidAt stamped on partial payment")
	}

	// The order stays unpaid until the balance is settled.
	gotOrder, _ := s.Order(order.ID)
	if gotOrder.Status == model.OrderPaid {
		t.Errorf("order marked paid on partial payment")
	}

	full, _, err := s.ProcessPayment(invoice.ID, NewPayment{
		Amount:    22.25,
		Method:    model.PayCash,
		CashierID: cashier.ID,
	})
	if err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}
	if full.PaymentStatus != model.PaymentPaid {
		t.Errorf("PaymentStatus = %q, want paid", full.PaymentStatus)
	}
	if !almostEqual(full.PaidAmount, 52.25) {
		t.Errorf("PaidAmount = %g, want 52.25", full.PaidAmount)
	}

	gotOrder, _ = s.Order(order.ID)
	if gotOrder.Status != model.OrderPaid {
		t.Errorf("order not marked paid after settling balance")
	}
}

func TestOverpaymentYieldsChange(t *testing.T) {
	s := newTestStore()
	cashier := addTestCashier(t, s)
	_, _, invoice := invoicedOrder(t, s, cashier.ID)

	paid, _, err := s.ProcessPayment(invoice.ID, NewPayment{
		Amount:    60.00,
		Method:    model.PayCash,
		CashierID: cashier.ID,
	})
	if err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}
	if !almostEqual(paid.ChangeAmount, 7.75) {
		t.Errorf("ChangeAmount = %g, want 7.75", paid.ChangeAmount)
	}
	if paid.PaymentStatus != model.PaymentPaid {
		t.Errorf("PaymentStatus = %q, want paid", paid.PaymentStatus)
	}
}

func TestPaymentUnknownInvoice(t *testing.T) {
	s := newTestStore()
	_, _, err := s.ProcessPayment(uuid.New(), NewPayment{Amount: 10, Method: model.PayCash})
	if err != ErrInvoiceNotFound {
		t.Fatalf("err = %v, want ErrInvoiceNotFound", err)
	}
}
