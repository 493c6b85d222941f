package store

import (
	"fmt"
	"math"
	"time"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
)

// expiringSoonDays is the warning window for expiration alerts.
const expiringSoonDays = 3

func (s *Store) AddInventoryItem(item model.InventoryItem) model.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.Stamp(s.now())
	if item.LastRestocked.IsZero() {
		item.LastRestocked = item.CreatedAt
	}
	s.inventoryItems = append(s.inventoryItems, item)
	return item
}

type InventoryItemPatch struct {
	Name           *string
	Description    *string
	Unit           *string
	CurrentStock   *float64
	MinStock       *float64
	MaxStock       *float64
	UnitCost       *float64
	Supplier       *string
	Category       *model.InventoryCategory
	ExpirationDate *time.Time
}

func (s *Store) UpdateInventoryItem(id uuid.UUID, patch InventoryItemPatch) (model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.findInventoryItemLocked(id)
	if item == nil {
		return model.InventoryItem{}, ErrInventoryItemNotFound
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.CurrentStock != nil {
		item.CurrentStock = *patch.CurrentStock
	}
	if patch.MinStock != nil {
		item.MinStock = *patch.MinStock
	}
	if patch.MaxStock != nil {
		item.MaxStock = *patch.MaxStock
	}
	if patch.UnitCost != nil {
		item.UnitCost = *patch.UnitCost
	}
	if patch.Supplier != nil {
		item.Supplier = *patch.Supplier
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.ExpirationDate != nil {
		item.ExpirationDate = patch.ExpirationDate
	}
	item.Touch(s.now())
	return *item, nil
}

// DeleteInventoryItem removes the item, cascades removal of its ledger
// entries and strips it from every recipe's ingredient list. Affected
// recipes are re-costed; a recipe left without ingredients survives with
// zero cost.
func (s *Store) DeleteInventoryItem(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.inventoryItems {
		if s.inventoryItems[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrInventoryItemNotFound
	}
	s.inventoryItems = append(s.inventoryItems[:idx], s.inventoryItems[idx+1:]...)

	keptTx := s.transactions[:0]
	for _, tx := range s.transactions {
		if tx.InventoryItemID != id {
			keptTx = append(keptTx, tx)
		}
	}
	s.transactions = keptTx

	for i := range s.recipes {
		recipe := &s.recipes[i]
		kept := recipe.Ingredients[:0]
		removed := false
		for _, ing := range recipe.Ingredients {
			if ing.InventoryItemID == id {
				removed = true
				continue
			}
			kept = append(kept, ing)
		}
		if removed {
			recipe.Ingredients = kept
			s.recostRecipeLocked(recipe)
			recipe.Touch(s.now())
		}
	}
	return nil
}

// NewTransaction is the input shape for ApplyInventoryTransaction.
type NewTransaction struct {
	InventoryItemID uuid.UUID
	Type            model.TransactionType
	Quantity        float64
	UnitCost        *float64
	Reason          string
	OrderID         *uuid.UUID
	UserID          string
}

// ApplyInventoryTransaction appends a ledger entry, applies its stock
// effect (clamped at zero) and synchronously re-evaluates stock alerts for
// the whole inventory. Newly raised alerts are returned so callers can
// publish them.
func (s *Store) ApplyInventoryTransaction(req NewTransaction) (model.InventoryTransaction, []model.StockAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.findInventoryItemLocked(req.InventoryItemID)
	if item == nil {
		return model.InventoryTransaction{}, nil, ErrInventoryItemNotFound
	}
	now := s.now()

	tx := model.InventoryTransaction{
		ID:              uuid.New(),
		InventoryItemID: req.InventoryItemID,
		Type:            req.Type,
		Quantity:        req.Quantity,
		Reason:          req.Reason,
		OrderID:         req.OrderID,
		UserID:          req.UserID,
		CreatedAt:       now,
	}
	if req.Type == model.TxPurchase && req.UnitCost != nil {
		unitCost := *req.UnitCost
		totalCost := unitCost * req.Quantity
		tx.UnitCost = &unitCost
		tx.TotalCost = &totalCost
	}
	s.transactions = append(s.transactions, tx)

	item.CurrentStock = math.Max(0, item.CurrentStock+req.Type.StockEffect(req.Quantity))
	if req.Type == model.TxPurchase {
		item.LastRestocked = now
	}
	item.Touch(now)

	alerts := s.checkStockLevelsLocked(now)
	return tx, alerts, nil
}

// CheckStockLevels evaluates low-stock and expiration conditions for every
// inventory item and returns the alerts it raised. Calling it again with
// unchanged state raises nothing: an unread alert of the same type for the
// same item suppresses re-emission. Alerts are never auto-resolved when
// the condition clears; they stay until marked read.
func (s *Store) CheckStockLevels() []model.StockAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkStockLevelsLocked(s.now())
}

func (s *Store) checkStockLevelsLocked(now time.Time) []model.StockAlert {
	var raised []model.StockAlert

	for i := range s.inventoryItems {
		item := &s.inventoryItems[i]

		if item.CurrentStock <= item.MinStock {
			alertType := model.AlertLowStock
			message := fmt.Sprintf("%s is below minimum stock (%g %s < %g %s)",
				item.Name, item.CurrentStock, item.Unit, item.MinStock, item.Unit)
			if item.CurrentStock == 0 {
				alertType = model.AlertOutOfStock
				message = fmt.Sprintf("%s is out of stock", item.Name)
			}
			if !s.hasUnreadAlertLocked(item.ID, alertType) {
				raised = append(raised, s.raiseAlertLocked(item.ID, alertType, message, now))
			}
		}

		if item.ExpirationDate == nil {
			continue
		}
		daysUntil := int(math.Ceil(item.ExpirationDate.Sub(now).Hours() / 24))
		switch {
		case daysUntil <= 0:
			if !s.hasUnreadAlertLocked(item.ID, model.AlertExpired) {
				message := fmt.Sprintf("%s has expired", item.Name)
				raised = append(raised, s.raiseAlertLocked(item.ID, model.AlertExpired, message, now))
			}
		case daysUntil <= expiringSoonDays:
			if !s.hasUnreadAlertLocked(item.ID, model.AlertExpiringSoon) {
				message := fmt.Sprintf("%s expires in %d days", item.Name, daysUntil)
				raised = append(raised, s.raiseAlertLocked(item.ID, model.AlertExpiringSoon, message, now))
			}
		}
	}
	return raised
}

func (s *Store) hasUnreadAlertLocked(itemID uuid.UUID, alertType model.AlertType) bool {
	for _, a := range s.stockAlerts {
		if a.InventoryItemID == itemID && a.Type == alertType && !a.IsRead {
			return true
		}
	}
	return false
}

func (s *Store) raiseAlertLocked(itemID uuid.UUID, alertType model.AlertType, message string, now time.Time) model.StockAlert {
	alert := model.StockAlert{
		ID:              uuid.New(),
		InventoryItemID: itemID,
		Type:            alertType,
		Message:         message,
		IsRead:          false,
		CreatedAt:       now,
	}
	s.stockAlerts = append(s.stockAlerts, alert)
	return alert
}

func (s *Store) MarkAlertRead(id uuid.UUID) (model.StockAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stockAlerts {
		if s.stockAlerts[i].ID == id {
			s.stockAlerts[i].IsRead = true
			return s.stockAlerts[i], nil
		}
	}
	return model.StockAlert{}, ErrAlertNotFound
}

func (s *Store) InventoryItems() []model.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.InventoryItem, len(s.inventoryItems))
	copy(out, s.inventoryItems)
	return out
}

func (s *Store) InventoryItem(id uuid.UUID) (model.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if item := s.findInventoryItemLocked(id); item != nil {
		return *item, nil
	}
	return model.InventoryItem{}, ErrInventoryItemNotFound
}

func (s *Store) InventoryTransactions() []model.InventoryTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.InventoryTransaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) StockAlerts() []model.StockAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.StockAlert, len(s.stockAlerts))
	copy(out, s.stockAlerts)
	return out
}
