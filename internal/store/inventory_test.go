package store

import (
	"testing"
	"time"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
)

func addTestInventoryItem(t *testing.T, s *Store, name string, stock, min float64) model.InventoryItem {
	t.Helper()
	return s.AddInventoryItem(model.InventoryItem{
		Name:         name,
		Unit:         "kg",
		CurrentStock: stock,
		MinStock:     min,
		MaxStock:     min * 3,
		UnitCost:     5,
		Category:     model.CategoryIngredients,
	})
}

func TestTransactionStockEffects(t *testing.T) {
	tests := []struct {
		name     string
		txType   model.TransactionType
		quantity float64
		want     float64
	}{
		{"purchase adds", model.TxPurchase, 10, 30},
		{"adjustment adds", model.TxAdjustment, 5, 25},
		{"usage subtracts", model.TxUsage, 8, 12},
		{"waste subtracts", model.TxWaste, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			item := addTestInventoryItem(t, s, "Flour", 20, 2)

			_, _, err := s.ApplyInventoryTransaction(NewTransaction{
				InventoryItemID: item.ID,
				Type:            tt.txType,
				Quantity:        tt.quantity,
				UserID:          "tester",
			})
			if err != nil {
				t.Fatalf("ApplyInventoryTransaction: %v", err)
			}

			got, _ := s.InventoryItem(item.ID)
			if !almostEqual(got.CurrentStock, tt.want) {
				t.Errorf("CurrentStock = %g, want %g", got.CurrentStock, tt.want)
			}
		})
	}
}

func TestUsageClampsAtZero(t *testing.T) {
	s := newTestStore()
	item := addTestInventoryItem(t, s, "Mozzarella", 8, 15)

	_, alerts, err := s.ApplyInventoryTransaction(NewTransaction{
		InventoryItemID: item.ID,
		Type:            model.TxUsage,
		Quantity:        100,
		UserID:          "tester",
	})
	if err != nil {
		t.Fatalf("ApplyInventoryTransaction: %v", err)
	}

	got, _ := s.InventoryItem(item.ID)
	if got.CurrentStock != 0 {
		t.Errorf("CurrentStock = %g, want clamp at 0", got.CurrentStock)
	}

	found := false
	for _, a := range alerts {
		if a.Type == model.AlertOutOfStock {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an out_of_stock alert, got %v", alerts)
	}
}

func TestLowStockAlertIdempotence(t *testing.T) {
	s := newTestStore()
	item := addTestInventoryItem(t, s, "Mozzarella", 8, 15)

	first := s.CheckStockLevels()
	if len(first) != 1 || first[0].Type != model.AlertLowStock {
		t.Fatalf("first check = %v, want one low_stock alert", first)
	}
	if first[0].InventoryItemID != item.ID {
		t.Errorf("alert points at %v, want %v", first[0].InventoryItemID, item.ID)
	}

	// Unchanged state: the unread alert suppresses a duplicate.
	second := s.CheckStockLevels()
	if len(second) != 0 {
		t.Errorf("second check raised %d alerts, want 0", len(second))
	}

	// Marking the alert read re-arms the condition.
	if _, err := s.MarkAlertRead(first[0].ID); err != nil {
		t.Fatalf("MarkAlertRead: %v", err)
	}
	third := s.CheckStockLevels()
	if len(third) != 1 {
		t.Errorf("check after read raised %d alerts, want 1", len(third))
	}
}

func TestAlertsPersistUntilRead(t *testing.T) {
	s := newTestStore()
	item := addTestInventoryItem(t, s, "Tomatoes", 2, 8)
	s.CheckStockLevels()

	// Restocking clears the condition but not the alert.
	if _, _, err := s.ApplyInventoryTransaction(NewTransaction{
		InventoryItemID: item.ID,
		Type:            model.TxPurchase,
		Quantity:        50,
		UserID:          "tester",
	}); err != nil {
		t.Fatalf("ApplyInventoryTransaction: %v", err)
	}

	alerts := s.StockAlerts()
	if len(alerts) != 1 || alerts[0].IsRead {
		t.Errorf("alert auto-resolved on restock: %v", alerts)
	}
}

func TestExpirationAlerts(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expires time.Time
		want    model.AlertType
		none    bool
	}{
		{"already expired", now.Add(-24 * time.Hour), model.AlertExpired, false},
		{"expires today", now.Add(-1 * time.Hour), model.AlertExpired, false},
		{"expires tomorrow", now.Add(20 * time.Hour), model.AlertExpiringSoon, false},
		{"expires in three days", now.Add(71 * time.Hour), model.AlertExpiringSoon, false},
		{"expires next week", now.Add(7 * 24 * time.Hour), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			s.SetClock(func() time.Time { return now })
			expires := tt.expires
			s.AddInventoryItem(model.InventoryItem{
				Name:           "Milk",
				Unit:           "l",
				CurrentStock:   10,
				MinStock:       2,
				Category:       model.CategoryIngredients,
				ExpirationDate: &expires,
			})

			alerts := s.CheckStockLevels()
			if tt.none {
				if len(alerts) != 0 {
					t.Fatalf("alerts = %v, want none", alerts)
				}
				return
			}
			if len(alerts) != 1 {
				t.Fatalf("alerts = %v, want exactly one", alerts)
			}
			if alerts[0].Type != tt.want {
				t.Errorf("alert type = %q, want %q", alerts[0].Type, tt.want)
			}
		})
	}
}

func TestPurchaseRecordsCostAndRestock(t *testing.T) {
	s := newTestStore()
	fixed := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return fixed })
	item := addTestInventoryItem(t, s, "Flour", 20, 2)

	unitCost := 2.50
	tx, _, err := s.ApplyInventoryTransaction(NewTransaction{
		InventoryItemID: item.ID,
		Type:            model.TxPurchase,
		Quantity:        10,
		UnitCost:        &unitCost,
		UserID:          "tester",
	})
	if err != nil {
		t.Fatalf("ApplyInventoryTransaction: %v", err)
	}
	if tx.UnitCost == nil || !almostEqual(*tx.UnitCost, 2.50) {
		t.Errorf("UnitCost not recorded on purchase")
	}
	if tx.TotalCost == nil || !almostEqual(*tx.TotalCost, 25.00) {
		t.Errorf("TotalCost not derived on purchase")
	}

	got, _ := s.InventoryItem(item.ID)
	if !got.LastRestocked.Equal(fixed) {
		t.Errorf("LastRestocked = %v, want %v", got.LastRestocked, fixed)
	}
}

func TestUsageCarriesNoCost(t *testing.T) {
	s := newTestStore()
	item := addTestInventoryItem(t, s, "Flour", 20, 2)

	cost := 9.99
	tx, _, err := s.ApplyInventoryTransaction(NewTransaction{
		InventoryItemID: item.ID,
		Type:            model.TxUsage,
		Quantity:        3,
		UnitCost:        &cost,
		UserID:          "tester",
	})
	if err != nil {
		t.Fatalf("ApplyInventoryTransaction: %v", err)
	}
	if tx.UnitCost != nil || tx.TotalCost != nil {
		t.Errorf("cost fields set on a usage transaction")
	}
}

func TestTransactionUnknownItem(t *testing.T) {
	s := newTestStore()
	_, _, err := s.ApplyInventoryTransaction(NewTransaction{
		InventoryItemID: uuid.New(),
		Type:            model.TxUsage,
		Quantity:        1,
	})
	if err != ErrInventoryItemNotFound {
		t.Fatalf("err = %v, want ErrInventoryItemNotFound", err)
	}
}

func TestDeleteInventoryItemCascades(t *testing.T) {
	s := newTestStore()
	item := addTestInventoryItem(t, s, "Flour", 20, 2)
	other := addTestInventoryItem(t, s, "Cheese", 10, 2)

	if _, _, err := s.ApplyInventoryTransaction(NewTransaction{
		InventoryItemID: item.ID,
		Type:            model.TxUsage,
		Quantity:        1,
		UserID:          "tester",
	}); err != nil {
		t.Fatalf("ApplyInventoryTransaction: %v", err)
	}

	if err := s.DeleteInventoryItem(item.ID); err != nil {
		t.Fatalf("DeleteInventoryItem: %v", err)
	}

	for _, tx := range s.InventoryTransactions() {
		if tx.InventoryItemID == item.ID {
			t.Errorf("ledger entry survived item delete")
		}
	}
	if _, err := s.InventoryItem(other.ID); err != nil {
		t.Errorf("unrelated item removed")
	}
}
