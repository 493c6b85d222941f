package model

import (
	"time"

	"github.com/google/uuid"
)

type InventoryCategory string

const (
	CategoryIngredients InventoryCategory = "ingredients"
	CategoryBeverages   InventoryCategory = "beverages"
	CategorySupplies    InventoryCategory = "supplies"
	CategoryCleaning    InventoryCategory = "cleaning"
)

// InventoryItem tracks one stocked good. CurrentStock is only mutated by
// applying transactions and never goes below zero.
type InventoryItem struct {
	BaseModel
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	Unit           string            `json:"unit"` // kg, liters, pieces, ...
	CurrentStock   float64           `json:"current_stock"`
	MinStock       float64           `json:"min_stock"`
	MaxStock       float64           `json:"max_stock"`
	UnitCost       float64           `json:"unit_cost"`
	Supplier       string            `json:"supplier,omitempty"`
	Category       InventoryCategory `json:"category"`
	GroupID        *uuid.UUID        `json:"group_id,omitempty"`
	SubgroupID     *uuid.UUID        `json:"subgroup_id,omitempty"`
	ExpirationDate *time.Time        `json:"expiration_date,omitempty"`
	LastRestocked  time.Time         `json:"last_restocked"`
}

type TransactionType string

const (
	TxPurchase   TransactionType = "purchase"
	TxUsage      TransactionType = "usage"
	TxWaste      TransactionType = "waste"
	TxAdjustment TransactionType = "adjustment"
)

// StockEffect returns the signed stock delta this transaction type applies
// for a given quantity. Purchases and adjustments add, usage and waste
// subtract.
func (t TransactionType) StockEffect(quantity float64) float64 {
	switch t {
	case TxPurchase, TxAdjustment:
		return quantity
	case TxUsage, TxWaste:
		return -quantity
	}
	return 0
}

// InventoryTransaction is an append-only ledger entry. Immutable once
// created.
type InventoryTransaction struct {
	ID              uuid.UUID       `json:"id"`
	InventoryItemID uuid.UUID       `json:"inventory_item_id"`
	Type            TransactionType `json:"type"`
	Quantity        float64         `json:"quantity"`
	UnitCost        *float64        `json:"unit_cost,omitempty"`  // purchase only
	TotalCost       *float64        `json:"total_cost,omitempty"` // purchase only
	Reason          string          `json:"reason,omitempty"`
	OrderID         *uuid.UUID      `json:"order_id,omitempty"`
	UserID          string          `json:"user_id"`
	CreatedAt       time.Time       `json:"created_at"`
}

type AlertType string

const (
	AlertLowStock     AlertType = "low_stock"
	AlertOutOfStock   AlertType = "out_of_stock"
	AlertExpiringSoon AlertType = "expiring_soon"
	AlertExpired      AlertType = "expired"
)

// StockAlert persists until explicitly marked read; the level check never
// emits a duplicate while an unread alert of the same type exists for the
// same item.
type StockAlert struct {
	ID              uuid.UUID `json:"id"`
	InventoryItemID uuid.UUID `json:"inventory_item_id"`
	Type            AlertType `json:"type"`
	Message         string    `json:"message"`
	IsRead          bool      `json:"is_read"`
	CreatedAt       time.Time `json:"created_at"`
}
