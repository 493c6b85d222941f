package store

import (
	"testing"
	"time"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
)

func TestOpenRegisterOncePerCashier(t *testing.T) {
	s := newTestStore()
	cashier := addTestCashier(t, s)

	register, err := s.OpenRegister(cashier.ID, 100)
	if err != nil {
		t.Fatalf("OpenRegister: %v", err)
	}
	if register.Status != model.RegisterOpen || !almostEqual(register.OpeningAmount, 100) {
		t.Errorf("register = %+v", register)
	}

	if _, err := s.OpenRegister(cashier.ID, 50); err != ErrRegisterAlreadyOpen {
		t.Errorf("second open err = %v, want ErrRegisterAlreadyOpen", err)
	}

	// A different cashier can open in parallel.
	other := s.AddUser(model.User{Username: "other", FullName: "Other", Role: model.RoleCashier, IsActive: true})
	if _, err := s.OpenRegister(other.ID, 80); err != nil {
		t.Errorf("parallel open for another cashier failed: %v", err)
	}
}

func TestCloseRegister(t *testing.T) {
	s := newTestStore()
	cashier := addTestCashier(t, s)
	register, _ := s.OpenRegister(cashier.ID, 100)

	closed, err := s.CloseRegister(register.ID, 150)
	if err != nil {
		t.Fatalf("CloseRegister: %v", err)
	}
	if closed.Status != model.RegisterClosed || closed.ClosedAt == nil {
		t.Errorf("register not stamped closed: %+v", closed)
	}
	if closed.ClosingAmount == nil || !almostEqual(*closed.ClosingAmount, 150) {
		t.Errorf("ClosingAmount not recorded")
	}

	if _, err := s.CloseRegister(register.ID, 150); err != ErrRegisterNotOpen {
		t.Errorf("double close err = %v, want ErrRegisterNotOpen", err)
	}
	if _, err := s.CloseRegister(uuid.New(), 0); err != ErrRegisterNotFound {
		t.Errorf("unknown register err = %v, want ErrRegisterNotFound", err)
	}

	// The cashier can open a fresh session after closing.
	if _, err := s.OpenRegister(cashier.ID, 150); err != nil {
		t.Errorf("reopen after close failed: %v", err)
	}
}

func TestRegisterSummaryAggregatesByMethodAndWindow(t *testing.T) {
	s := newTestStore()
	cashier := addTestCashier(t, s)
	clock := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return clock })

	register, err := s.OpenRegister(cashier.ID, 100)
	if err != nil {
		t.Fatalf("OpenRegister: %v", err)
	}

	pizza := addTestProduct(t, s, "Pizza", 20.00, 15)
	pay := func(method model.PaymentMethod, amount float64) {
		t.Helper()
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
		if _, _, err := s.ProcessPayment(invoice.ID, NewPayment{
			Amount:    amount,
			Method:    method,
			CashierID: cashier.ID,
		}); err != nil {
			t.Fatalf("ProcessPayment: %v", err)
		}
	}

	clock = clock.Add(30 * time.Minute)
	pay(model.PayCash, 22.00)
	clock = clock.Add(30 * time.Minute)
	pay(model.PayCard, 22.00)
	clock = clock.Add(30 * time.Minute)
	pay(model.PayTransfer, 22.00)

	summary, err := s.RegisterSummary(register.ID)
	if err != nil {
		t.Fatalf("RegisterSummary: %v", err)
	}
	if !almostEqual(summary.TotalSales, 66.00) || summary.PaymentCount != 3 {
		t.Errorf("TotalSales/Count = %g/%d, want 66.00/3", summary.TotalSales, summary.PaymentCount)
	}
	if !almostEqual(summary.TotalCash, 22.00) || !almostEqual(summary.TotalCard, 22.00) || !almostEqual(summary.TotalTransfer, 22.00) {
		t.Errorf("per-method totals wrong: %+v", summary)
	}
	if !almostEqual(summary.ExpectedCash, 122.00) {
		t.Errorf("ExpectedCash = %g, want 122.00", summary.ExpectedCash)
	}

	// Close the register, then record a later payment. It must not count.
	clock = clock.Add(time.Hour)
	if _, err := s.CloseRegister(register.ID, 120.00); err != nil {
		t.Fatalf("CloseRegister: %v", err)
	}
	clock = clock.Add(time.Hour)
	pay(model.PayCash, 22.00)

	summary, err = s.RegisterSummary(register.ID)
	if err != nil {
		t.Fatalf("RegisterSummary: %v", err)
	}
	if summary.PaymentCount != 3 {
		t.Errorf("post-close payment leaked into the session window")
	}
	// Counted 120 against expected 122.
	if !almostEqual(summary.Difference, -2.00) {
		t.Errorf("Difference = %g, want -2.00", summary.Difference)
	}
}

func TestRegisterSummaryExcludesOtherCashiers(t *testing.T) {
	s := newTestStore()
	cashier := addTestCashier(t, s)
	other := s.AddUser(model.User{Username: "other", FullName: "Other", Role: model.RoleCashier, IsActive: true})

	register, _ := s.OpenRegister(cashier.ID, 100)

	pizza := addTestProduct(t, s, "Pizza", 20.00, 15)
	order, _ := s.CreateOrder(NewOrder{
		OrderType: model.OrderTakeaway,
		Items:     []NewOrderItem{{ProductID: pizza.ID, Quantity: 1}},
	})
	invoice, _ := s.CreateInvoice(order.ID, InvoiceCustomer{}, other.ID)
	if _, _, err := s.ProcessPayment(invoice.ID, NewPayment{
		Amount:    22.00,
		Method:    model.PayCash,
		CashierID: other.ID,
	}); err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}

	summary, err := s.RegisterSummary(register.ID)
	if err != nil {
		t.Fatalf("RegisterSummary: %v", err)
	}
	if summary.PaymentCount != 0 {
		t.Errorf("another cashier's payment attributed to this register")
	}
}
