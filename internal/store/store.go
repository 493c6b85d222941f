// Package store owns the whole application state of the restaurant: one
// in-memory aggregate holding every collection, guarded by a single lock.
// All business mutations (order lifecycle, stock ledger, invoicing,
// register sessions) are methods here and apply atomically under that
// lock; the service layer on top only validates input and publishes
// events. State lives for the process lifetime and is rebuilt by Seed on
// every start.
package store

import (
	"errors"
	"sync"
	"time"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrGroupNotFound         = errors.New("product group not found")
	ErrSubgroupNotFound      = errors.New("product subgroup not found")
	ErrDiscountNotFound      = errors.New("discount not found")
	ErrTableNotFound         = errors.New("table not found")
	ErrTableInUse            = errors.New("table is referenced by an open order")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderItemNotFound     = errors.New("order item not found")
	ErrTicketNotFound        = errors.New("kitchen ticket not found")
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrAlertNotFound         = errors.New("stock alert not found")
	ErrRecipeNotFound        = errors.New("recipe not found")
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrInvoiceExists         = errors.New("order already has an invoice")
	ErrRegisterNotFound      = errors.New("cash register not found")
	ErrRegisterAlreadyOpen   = errors.New("cashier already has an open register")
	ErrRegisterNotOpen       = errors.New("cash register is not open")
	ErrUserNotFound          = errors.New("user not found")
)

// Store is the single in-memory database. Collections are slices so that
// insertion order is preserved (item display order, kitchen order, ledger
// order all depend on it).
type Store struct {
	mu sync.RWMutex

	categories       []model.Category
	products         []model.Product
	productGroups    []model.ProductGroup
	productSubgroups []model.ProductSubgroup
	discounts        []model.Discount
	tables           []model.Table
	orders           []model.Order
	kitchenTickets   []model.KitchenTicket
	inventoryItems   []model.InventoryItem
	transactions     []model.InventoryTransaction
	stockAlerts      []model.StockAlert
	recipes          []model.Recipe
	invoices         []model.Invoice
	payments         []model.Payment
	registers        []model.CashRegister
	users            []model.User

	settings model.RestaurantSettings

	// now is swappable in tests for deterministic expiration windows.
	now func() time.Time
}

// New creates an empty store with the given settings. Call Seed for the
// demo dataset.
func New(settings model.RestaurantSettings) *Store {
	return &Store{
		settings: settings,
		now:      time.Now,
	}
}

// SetClock overrides the store's time source. Intended for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) findOrderLocked(id uuid.UUID) *model.Order {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i]
		}
	}
	return nil
}

func (s *Store) findTableLocked(id uuid.UUID) *model.Table {
	for i := range s.tables {
		if s.tables[i].ID == id {
			return &s.tables[i]
		}
	}
	return nil
}

func (s *Store) findProductLocked(id uuid.UUID) *model.Product {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i]
		}
	}
	return nil
}

func (s *Store) findInventoryItemLocked(id uuid.UUID) *model.InventoryItem {
	for i := range s.inventoryItems {
		if s.inventoryItems[i].ID == id {
			return &s.inventoryItems[i]
		}
	}
	return nil
}

func (s *Store) findInvoiceLocked(id uuid.UUID) *model.Invoice {
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			return &s.invoices[i]
		}
	}
	return nil
}

func (s *Store) findRegisterLocked(id uuid.UUID) *model.CashRegister {
	for i := range s.registers {
		if s.registers[i].ID == id {
			return &s.registers[i]
		}
	}
	return nil
}

// Users

func (s *Store) AddUser(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.Stamp(s.now())
	s.users = append(s.users, u)
	return u
}

func (s *Store) UserByUsername(username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

func (s *Store) UserByID(id uuid.UUID) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}
