package store

import (
	"math"
	"testing"
	"time"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
)

func testSettings() model.RestaurantSettings {
	return model.RestaurantSettings{
		Currency: model.CurrencyConfig{Code: "USD", Symbol: "$", Name: "US Dollar", ExchangeRate: 1},
		TaxRate:  10,
		Notifications: model.NotificationSettings{
			LowStock:        true,
			NewOrders:       true,
			PaymentReceived: true,
		},
	}
}

func newTestStore() *Store {
	return New(testSettings())
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func addTestProduct(t *testing.T, s *Store, name string, price float64, prepMinutes int) model.Product {
	t.Helper()
	category := s.AddCategory(model.Category{Name: "Test Category", IsActive: true})
	return s.AddProduct(model.Product{
		Name:            name,
		Price:           price,
		CategoryID:      category.ID,
		IsActive:        true,
		PreparationTime: prepMinutes,
	})
}

func addTestTable(t *testing.T, s *Store, number int) model.Table {
	t.Helper()
	return s.AddTable(model.Table{Number: number, Capacity: 4, Shape: model.ShapeSquare})
}

func addTestCashier(t *testing.T, s *Store) model.User {
	t.Helper()
	user := model.User{Username: "cashier", FullName: "Test Cashier", Role: model.RoleCashier, IsActive: true}
	if err := user.SetPassword("secret"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	return s.AddUser(user)
}

func TestUserLookup(t *testing.T) {
	s := newTestStore()
	user := addTestCashier(t, s)

	byName, err := s.UserByUsername("cashier")
	if err != nil {
		t.Fatalf("UserByUsername: %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("UserByUsername returned wrong user")
	}

	byID, err := s.UserByID(user.ID)
	if err != nil {
		t.Fatalf("UserByID: %v", err)
	}
	if !byID.CheckPassword("secret") {
		t.Errorf("stored password hash does not verify")
	}
	if byID.CheckPassword("wrong") {
		t.Errorf("wrong password verified")
	}

	if _, err := s.UserByID(uuid.New()); err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSetClock(t *testing.T) {
	s := newTestStore()
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return fixed })

	category := s.AddCategory(model.Category{Name: "Drinks"})
	if !category.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", category.CreatedAt, fixed)
	}
}

func TestSettingsPatch(t *testing.T) {
	s := newTestStore()

	newRate := 19.0
	updated := s.UpdateSettings(SettingsPatch{TaxRate: &newRate})
	if updated.TaxRate != 19 {
		t.Errorf("TaxRate = %g, want 19", updated.TaxRate)
	}
	// untouched fields survive
	if updated.Currency.Code != "USD" {
		t.Errorf("Currency.Code = %q, want USD", updated.Currency.Code)
	}
	if !s.Settings().Notifications.LowStock {
		t.Errorf("Notifications.LowStock lost on patch")
	}
}
